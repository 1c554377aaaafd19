// Package batchcmd provides the batch command.
package batchcmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/batch"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/report"
)

type batchOptions struct {
	*cmdutil.GlobalOptions

	outDir      string
	reportPath  string
	concurrency int
	fallback    bool
}

// NewCmdBatch creates the batch command.
func NewCmdBatch() *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Convert every spotlight page in a directory",
		Long: `Convert all spotlight pages (*.md, except _template.md) in a directory
concurrently. Without a directory argument the configured spotlights_dir is used.

A page that fails to convert is reported and does not stop the others.
The command exits with an error when any page failed.`,
		Example: `  # Convert and print a status table
  spotmd batch _spotlights

  # Write converted markdown and a summary report
  spotmd batch _spotlights --out converted --report report.md

  # Limit parallelism
  spotmd batch _spotlights --concurrency 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runBatch(cmd.Context(), cmdutil.InputArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.outDir, "out", "", "Directory to write converted markdown to")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Write a markdown summary report to this file")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Pages converted in parallel (default from config)")
	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "Use the generic converter for unsupported tags")

	return cmd
}

func runBatch(ctx context.Context, dir string, opts *batchOptions) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}

	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}

	if dir == "" {
		dir = cfg.SpotlightsDir
	}
	if dir == "" {
		return fmt.Errorf("no directory given and spotlights_dir is not configured")
	}

	concurrency := cfg.EffectiveConcurrency()
	if opts.concurrency > 0 {
		concurrency = opts.concurrency
	}

	convOpts := cfg.ConvertOptions()
	convOpts.Fallback = convOpts.Fallback || opts.fallback

	processor := batch.New(
		batch.WithConcurrency(concurrency),
		batch.WithLogger(opts.Logger()),
		batch.WithConvertOptions(convOpts),
	)

	results, err := processor.ProcessDir(ctx, dir)
	if err != nil {
		return err
	}

	if opts.outDir != "" {
		if _, err := batch.WriteOutputs(opts.outDir, results); err != nil {
			return err
		}
	}

	if opts.reportPath != "" {
		if err := writeReport(opts.reportPath, results); err != nil {
			return err
		}
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		status, detail := "converted", strconv.Itoa(len(r.Markdown))+" bytes"
		if !r.OK() {
			status, detail = "failed", r.Err.Error()
		}
		rows[i] = []string{r.Name(), status, r.Duration.Round(time.Millisecond).String(), detail}
	}
	renderer.RenderTable([]string{"FILE", "STATUS", "DURATION", "DETAIL"}, rows)

	summary := batch.Summarize(results)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d spotlight pages failed to convert", summary.Failed, summary.Total)
	}
	return nil
}

func writeReport(path string, results []batch.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := report.WriteMarkdown(f, results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return f.Close()
}
