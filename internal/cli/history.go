package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/codeshift/codeshift/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// HistoryEntry is the JSON shape of one conversion record.
type HistoryEntry struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"created_at"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
	SourceHash  string `json:"source_hash"`
	SourceBytes int    `json:"source_bytes"`
	OutputBytes int    `json:"output_bytes"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history <db>",
		Short:         "List recorded conversions, newest first",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum records to list (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(path)
	if err != nil {
		return commandError(formatter, ErrCodeStoreFailed, err.Error())
	}
	defer st.Close()

	records, err := st.List(context.Background(), opts.Limit)
	if err != nil {
		return commandError(formatter, ErrCodeStoreFailed, err.Error())
	}

	if formatter.Format == "json" {
		entries := make([]HistoryEntry, len(records))
		for i, rec := range records {
			entries[i] = HistoryEntry{
				ID:          rec.ID,
				CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
				SourceLang:  rec.SourceLang,
				TargetLang:  rec.TargetLang,
				SourceHash:  rec.SourceHash,
				SourceBytes: rec.SourceBytes,
				OutputBytes: rec.OutputBytes,
			}
		}
		return formatter.Success(entries)
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "no conversions recorded")
		return nil
	}
	for _, rec := range records {
		fmt.Fprintf(formatter.Writer, "%s  %s -> %s  %d -> %d bytes  %s\n",
			rec.CreatedAt.Format(time.RFC3339),
			rec.SourceLang, rec.TargetLang,
			rec.SourceBytes, rec.OutputBytes,
			rec.ID)
	}
	return nil
}
