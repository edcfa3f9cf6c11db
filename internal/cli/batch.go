package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codeshift/codeshift/internal/convert"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Strict  bool
	History string
}

// Manifest is a YAML batch description: a list of independent
// conversion jobs.
type Manifest struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one conversion in a manifest.
type Job struct {
	In   string `yaml:"in"`
	Out  string `yaml:"out"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// JobResult reports one job's outcome.
type JobResult struct {
	In     string `json:"in"`
	Out    string `json:"out"`
	From   string `json:"from"`
	To     string `json:"to"`
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error,omitempty"`
}

// BatchReport is the JSON payload for the batch command.
type BatchReport struct {
	Total  int         `json:"total"`
	Failed int         `json:"failed"`
	Jobs   []JobResult `json:"jobs"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Run every conversion job in a YAML manifest",
		Long: `Run a list of conversion jobs described in a YAML manifest:

    jobs:
      - in: examples/loop.cpp
        out: out/loop.py
        from: cpp
        to: python

Jobs run independently; one failure does not stop the rest.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "report lines that match no statement pattern")
	cmd.Flags().StringVar(&opts.History, "history", "", "append records to this history database")

	return cmd
}

func runBatch(opts *BatchOptions, manifestPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return commandError(formatter, ErrCodeBadManifest, err.Error())
	}
	formatter.VerboseLog("loaded %d job(s) from %s", len(manifest.Jobs), manifestPath)

	report := BatchReport{Total: len(manifest.Jobs)}
	for _, job := range manifest.Jobs {
		result := runJob(opts, job)
		if result.Status != "ok" {
			report.Failed++
		}
		report.Jobs = append(report.Jobs, result)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		for _, r := range report.Jobs {
			if r.Status == "ok" {
				fmt.Fprintf(formatter.Writer, "ok    %s -> %s\n", r.In, r.Out)
			} else {
				fmt.Fprintf(formatter.Writer, "error %s -> %s: %s\n", r.In, r.Out, r.Error)
			}
		}
		fmt.Fprintf(formatter.Writer, "%d job(s), %d failed\n", report.Total, report.Failed)
	}

	if report.Failed > 0 {
		return WrapExitError(ExitFailure, fmt.Sprintf("%d of %d jobs failed", report.Failed, report.Total), nil)
	}
	return nil
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(m.Jobs) == 0 {
		return nil, fmt.Errorf("manifest %s has no jobs", path)
	}
	for i, job := range m.Jobs {
		if job.In == "" || job.Out == "" || job.From == "" || job.To == "" {
			return nil, fmt.Errorf("job %d: in, out, from, and to are all required", i+1)
		}
	}
	return &m, nil
}

func runJob(opts *BatchOptions, job Job) JobResult {
	result := JobResult{In: job.In, Out: job.Out, From: job.From, To: job.To, Status: "ok"}

	fail := func(err error) JobResult {
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	src, err := os.ReadFile(job.In)
	if err != nil {
		return fail(err)
	}

	out, err := convert.ConvertWithOptions(string(src),
		convert.Language(job.From), convert.Language(job.To),
		convert.Options{Strict: opts.Strict})
	if err != nil {
		return fail(err)
	}

	if err := os.WriteFile(job.Out, []byte(out), 0o644); err != nil {
		return fail(err)
	}

	if opts.History != "" {
		if err := appendHistory(opts.History, job.From, job.To, string(src), out); err != nil {
			return fail(err)
		}
	}
	return result
}
