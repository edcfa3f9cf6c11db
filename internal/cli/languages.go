package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeshift/codeshift/internal/convert"
)

// LanguageListing is the JSON payload for the languages command.
type LanguageListing struct {
	Sources []string `json:"sources"`
	Targets []string `json:"targets"`
}

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported source and target languages",
		Long: `List the languages conversions can read and emit.

Some languages are generator-only: they appear among the targets but can
never be a conversion source.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			listing := LanguageListing{}
			sources := map[string]bool{}
			for _, l := range convert.SourceLanguages() {
				listing.Sources = append(listing.Sources, string(l))
				sources[string(l)] = true
			}
			for _, l := range convert.TargetLanguages() {
				listing.Targets = append(listing.Targets, string(l))
			}

			if formatter.Format == "json" {
				return formatter.Success(listing)
			}

			fmt.Fprintln(formatter.Writer, "Sources:")
			for _, l := range listing.Sources {
				fmt.Fprintf(formatter.Writer, "  %s\n", l)
			}
			fmt.Fprintln(formatter.Writer, "Targets:")
			for _, l := range listing.Targets {
				suffix := ""
				if !sources[l] {
					suffix = " (target only)"
				}
				fmt.Fprintf(formatter.Writer, "  %s%s\n", l, suffix)
			}
			return nil
		},
	}
}
