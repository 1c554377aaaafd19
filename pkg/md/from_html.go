package md

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ConvertOptions configures the fragment to markdown conversion.
type ConvertOptions struct {
	// ImagePrefix and ImageBaseURL override the image source rewrite.
	// Empty values keep the defaults.
	ImagePrefix  string
	ImageBaseURL string

	// Fallback converts fragments containing unsupported tags with the
	// generic html-to-markdown converter instead of failing.
	Fallback bool

	// SkipNormalize returns the converter output without joining wrapped lines.
	SkipNormalize bool

	// Logger receives fallback notices. Defaults to slog.Default().
	Logger *slog.Logger
}

// Rewriter returns the image source rewrite described by the options.
func (o ConvertOptions) Rewriter() SourceRewriter {
	r := DefaultSourceRewriter()
	if o.ImagePrefix != "" {
		r.Prefix = o.ImagePrefix
	}
	if o.ImageBaseURL != "" {
		r.BaseURL = o.ImageBaseURL
	}
	return r
}

// FromHTML converts a spotlight fragment to normalized markdown.
func FromHTML(fragment string) (string, error) {
	return FromHTMLWithOptions(fragment, ConvertOptions{})
}

// FromHTMLWithOptions converts a spotlight fragment to markdown with
// configurable options.
func FromHTMLWithOptions(fragment string, opts ConvertOptions) (string, error) {
	if fragment == "" {
		return "", nil
	}

	conv := NewConverter(WithSourceRewriter(opts.Rewriter()))
	markdown, err := conv.Convert(fragment)
	if err != nil {
		var tagErr *UnsupportedTagError
		if !opts.Fallback || !errors.As(err, &tagErr) {
			return "", err
		}

		logger := opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("falling back to generic conversion", "tag", tagErr.Tag)

		markdown, err = fromGenericHTML(fragment)
		if err != nil {
			return "", err
		}
	}

	if opts.SkipNormalize {
		return markdown, nil
	}
	return Normalize(markdown)
}

// fromGenericHTML converts arbitrary HTML, trading exact output for coverage.
func fromGenericHTML(fragment string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("failed to convert with fallback: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}
