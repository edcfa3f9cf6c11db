package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeshift/codeshift/internal/convert"
	"github.com/codeshift/codeshift/internal/parser"
	"github.com/codeshift/codeshift/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	From    string
	To      string
	Output  string
	Strict  bool
	History string // optional history database path
}

// ConversionReport is the JSON payload for a successful conversion.
type ConversionReport struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Output         string `json:"output"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a source file between languages",
		Long: `Convert source text from one language to another.

Reads the named file, or stdin when no file is given. The result goes to
stdout or to the --output path.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source language (required)")
	cmd.Flags().StringVar(&opts.To, "to", "", "target language (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "report lines that match no statement pattern")
	cmd.Flags().StringVar(&opts.History, "history", "", "append a record to this history database")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runConvert(opts *ConvertOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	src, name, err := readSource(args, cmd.InOrStdin())
	if err != nil {
		return commandError(formatter, ErrCodeReadFailed, err.Error())
	}
	formatter.VerboseLog("read %d bytes from %s", len(src), name)

	out, err := convert.ConvertWithOptions(src,
		convert.Language(opts.From), convert.Language(opts.To),
		convert.Options{Strict: opts.Strict})
	if err != nil {
		return convertError(formatter, err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
			return commandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing %s: %v", opts.Output, err))
		}
		formatter.VerboseLog("wrote %d bytes to %s", len(out), opts.Output)
	}

	if opts.History != "" {
		if err := appendHistory(opts.History, opts.From, opts.To, src, out); err != nil {
			return commandError(formatter, ErrCodeStoreFailed, err.Error())
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(ConversionReport{
			SourceLanguage: opts.From,
			TargetLanguage: opts.To,
			Output:         out,
		})
	}
	if opts.Output == "" {
		fmt.Fprintln(formatter.Writer, out)
	}
	return nil
}

// readSource returns the input text and a display name for it.
func readSource(args []string, stdin io.Reader) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

// appendHistory records a completed conversion in the history database.
func appendHistory(path, from, to, src, out string) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = st.Append(context.Background(), store.Record{
		SourceLang:  from,
		TargetLang:  to,
		SourceHash:  store.SourceHash(src),
		SourceBytes: len(src),
		OutputBytes: len(out),
	})
	return err
}

// convertError maps pipeline errors onto formatted output and exit codes:
// unknown languages are command errors, strict-mode diagnostics are
// conversion failures.
func convertError(formatter *OutputFormatter, err error) error {
	var unsupported *convert.UnsupportedLanguageError
	if errors.As(err, &unsupported) {
		return commandError(formatter, ErrCodeUnsupportedLanguage, unsupported.Error())
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		_ = formatter.Error(ErrCodeParseStrict, parseErr.Error(), parseErr.Diagnostics)
		return WrapExitError(ExitFailure, parseErr.Error(), err)
	}

	return commandError(formatter, ErrCodeReadFailed, err.Error())
}

// commandError reports a command-level failure (exit code 2).
func commandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), nil)
}
