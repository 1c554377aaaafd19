// Package batch converts many spotlight pages concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/open-cli-collective/spotlight-md/internal/spotlight"
	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

// DefaultConcurrency is used when no positive concurrency is configured.
const DefaultConcurrency = 4

// Result is the outcome of converting one spotlight page. Markdown is
// trimmed of surrounding blank lines.
type Result struct {
	Path      string
	Spotlight *spotlight.Spotlight
	Markdown  string
	Err       error
	Duration  time.Duration
}

// OK reports whether the page converted without error.
func (r Result) OK() bool {
	return r.Err == nil
}

// Name is the file name of the page.
func (r Result) Name() string {
	return filepath.Base(r.Path)
}

// Processor converts spotlight pages with bounded concurrency.
type Processor struct {
	concurrency int
	logger      *slog.Logger
	convert     md.ConvertOptions
}

// Option configures a Processor.
type Option func(*Processor)

// WithConcurrency sets the maximum number of pages converted at once.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger for batch progress.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithConvertOptions sets the options every page is converted with.
func WithConvertOptions(opts md.ConvertOptions) Option {
	return func(p *Processor) {
		p.convert = opts
	}
}

// New creates a Processor.
func New(opts ...Option) *Processor {
	p := &Processor{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.convert.Logger == nil {
		p.convert.Logger = p.logger
	}
	return p
}

// Concurrency returns the configured concurrency limit.
func (p *Processor) Concurrency() int {
	return p.concurrency
}

// Process converts the pages at paths. Results are in input order. A page
// that fails is recorded in its result and does not stop the others; the
// returned error is only set when ctx is cancelled.
func (p *Processor) Process(ctx context.Context, paths []string) ([]Result, error) {
	p.logger.Info("starting batch conversion",
		"total", len(paths),
		"concurrency", p.concurrency,
	)
	start := time.Now()

	// Each goroutine writes only its own index.
	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i].Path = path
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			p.logger.Debug("converting spotlight", "path", path, "index", i+1, "total", len(paths))
			results[i] = p.convertFile(path)

			if err := results[i].Err; err != nil {
				p.logger.Warn("conversion failed", "path", path, "error", err)
				return nil
			}
			p.logger.Debug("conversion completed", "path", path, "duration", results[i].Duration)
			return nil
		})
	}

	err := g.Wait()

	p.logger.Info("batch conversion complete",
		"total", len(paths),
		"failed", Summarize(results).Failed,
		"elapsed", time.Since(start),
	)
	return results, err
}

// ProcessDir converts every spotlight page found in dir.
func (p *Processor) ProcessDir(ctx context.Context, dir string) ([]Result, error) {
	paths, err := spotlight.Discover(dir)
	if err != nil {
		return nil, err
	}
	return p.Process(ctx, paths)
}

func (p *Processor) convertFile(path string) Result {
	start := time.Now()
	res := Result{Path: path}

	s, err := spotlight.Load(path)
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Spotlight = s

	markdown, err := md.FromHTMLWithOptions(s.Body, p.convert)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", res.Name(), err)
	}
	res.Markdown = strings.TrimSpace(markdown)
	res.Duration = time.Since(start)
	return res
}

// Summary counts batch outcomes.
type Summary struct {
	Total     int
	Converted int
	Failed    int
}

// Summarize counts the results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Converted++
		} else {
			s.Failed++
		}
	}
	return s
}

// WriteOutputs writes the markdown of every successful result into dir under
// the page's file name and returns the written paths.
func WriteOutputs(dir string, results []Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	for _, r := range results {
		if !r.OK() {
			continue
		}
		target := filepath.Join(dir, r.Name())
		if err := os.WriteFile(target, []byte(r.Markdown+"\n"), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", target, err)
		}
		written = append(written, target)
	}
	return written, nil
}
