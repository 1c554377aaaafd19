// Package export provides the export command.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/batch"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/spotlight"
	"github.com/open-cli-collective/spotlight-md/internal/view"
)

type exportOptions struct {
	*cmdutil.GlobalOptions

	outFile     string
	concurrency int
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Export spotlight pages as software records",
		Long: `Convert every spotlight page in a directory and map it to a software
record: slug, name, short statement, markdown description, DOI, repository,
license, keywords and organisations.

Pages that cannot be converted, or whose description exceeds the record
limit, are skipped and listed with the reason.`,
		Example: `  # Print records as JSON
  spotmd export _spotlights -o json

  # Write the records to a file
  spotmd export _spotlights --out records.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runExport(cmd.Context(), cmdutil.InputArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write the JSON export to this file")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Pages converted in parallel (default from config)")

	return cmd
}

// Skipped is a spotlight page left out of the export.
type Skipped struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Export is the result of exporting a spotlight directory.
type Export struct {
	Records []*spotlight.Record `json:"records"`
	Skipped []Skipped           `json:"skipped"`
}

// Build converts the batch results into records.
func Build(results []batch.Result) *Export {
	exp := &Export{
		Records: []*spotlight.Record{},
		Skipped: []Skipped{},
	}
	for _, r := range results {
		if !r.OK() {
			exp.Skipped = append(exp.Skipped, Skipped{File: r.Name(), Reason: r.Err.Error()})
			continue
		}
		rec, err := spotlight.ToRecord(r.Spotlight, r.Markdown)
		if err != nil {
			exp.Skipped = append(exp.Skipped, Skipped{File: r.Name(), Reason: err.Error()})
			continue
		}
		exp.Records = append(exp.Records, rec)
	}
	return exp
}

func runExport(ctx context.Context, dir string, opts *exportOptions) error {
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

	processor := batch.New(
		batch.WithConcurrency(concurrency),
		batch.WithLogger(opts.Logger()),
		batch.WithConvertOptions(cfg.ConvertOptions()),
	)
	results, err := processor.ProcessDir(ctx, dir)
	if err != nil {
		return err
	}

	exp := Build(results)

	if opts.outFile != "" {
		data, err := json.MarshalIndent(exp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		if err := os.WriteFile(opts.outFile, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		renderer.Success(fmt.Sprintf("Exported %d records to %s", len(exp.Records), opts.outFile))
	} else if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(exp)
	} else {
		rows := make([][]string, len(exp.Records))
		for i, rec := range exp.Records {
			repo := "-"
			if rec.RepositoryURL != nil {
				repo = rec.RepositoryURL.URL
			}
			rows[i] = []string{rec.Slug, rec.BrandName, repo, strconv.Itoa(len(rec.Warnings))}
		}
		renderer.RenderTable([]string{"SLUG", "NAME", "REPOSITORY", "WARNINGS"}, rows)
	}

	for _, rec := range exp.Records {
		for _, w := range rec.Warnings {
			renderer.Warning(rec.Slug + ": " + w)
		}
	}
	for _, s := range exp.Skipped {
		renderer.Warning("skipped " + s.File + ": " + strings.TrimPrefix(s.Reason, s.File+": "))
	}
	return nil
}
