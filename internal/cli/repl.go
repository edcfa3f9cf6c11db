package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/codeshift/codeshift/internal/convert"
)

// ReplOptions holds flags for the repl command.
type ReplOptions struct {
	*RootOptions
	Strict bool
}

// NewReplCommand creates the interactive conversion loop: prompt for the
// language pair, collect source lines until a blank line, print the
// converted program, repeat.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "repl",
		Short:         "Convert interactively from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "report lines that match no statement pattern")

	return cmd
}

func runRepl(opts *ReplOptions, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	sources := languageNames(convert.SourceLanguages())
	targets := languageNames(convert.TargetLanguages())
	fmt.Fprintf(out, "codeshift interactive converter\nsources: %s\ntargets: %s\n",
		strings.Join(sources, ", "), strings.Join(targets, ", "))
	fmt.Fprintln(out, "finish a program with an empty line; :quit exits")

	for {
		from, ok := promptChoice(ln, out, "source language: ", sources)
		if !ok {
			return nil
		}
		to, ok := promptChoice(ln, out, "target language: ", targets)
		if !ok {
			return nil
		}

		src, ok := promptProgram(ln, out)
		if !ok {
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		converted, err := convert.ConvertWithOptions(src,
			convert.Language(from), convert.Language(to),
			convert.Options{Strict: opts.Strict})
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		fmt.Fprintf(out, "\n--- %s ---\n%s\n\n", to, converted)
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// promptChoice reads a line until it names one of the given options.
// Returns false when input is closed or the user quits.
func promptChoice(ln *liner.State, out io.Writer, prompt string, options []string) (string, bool) {
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == ":quit" {
			return "", false
		}
		for _, opt := range options {
			if choice == opt {
				return choice, true
			}
		}
		fmt.Fprintf(out, "unknown language %q; choose from: %s\n", choice, strings.Join(options, ", "))
	}
}

// promptProgram collects source lines until the first empty line.
func promptProgram(ln *liner.State, out io.Writer) (string, bool) {
	fmt.Fprintln(out, "enter source (empty line to finish):")

	var b strings.Builder
	for {
		line, err := ln.Prompt("... ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}
		if line == "" {
			return b.String(), true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
}

func languageNames(ls []convert.Language) []string {
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = string(l)
	}
	return names
}
