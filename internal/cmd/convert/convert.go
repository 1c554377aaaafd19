// Package convert provides the convert command.
package convert

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/spotlight"
	"github.com/open-cli-collective/spotlight-md/internal/view"
	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

type convertOptions struct {
	*cmdutil.GlobalOptions

	fallback     bool
	noNormalize  bool
	imageBaseURL string
	imagePrefix  string
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a spotlight fragment to markdown",
		Long: `Convert a spotlight page or bare markup fragment to markdown.

Front matter is stripped when present. Reads standard input when no file
is given or the file is "-".`,
		Example: `  # Convert a spotlight page
  spotmd convert _spotlights/tool.md

  # Convert from stdin, falling back to the generic converter
  echo '<h1>Title</h1>' | spotmd convert --fallback

  # Rewrite images to a different host
  spotmd convert tool.md --image-base-url https://example.org/img/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runConvert(cmdutil.InputArg(args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "Use the generic converter for unsupported tags")
	cmd.Flags().BoolVar(&opts.noNormalize, "no-normalize", false, "Keep the converter's line breaks")
	cmd.Flags().StringVar(&opts.imageBaseURL, "image-base-url", "", "Base URL for rewritten image sources")
	cmd.Flags().StringVar(&opts.imagePrefix, "image-prefix", "", "Image source prefix to rewrite")

	return cmd
}

type convertResult struct {
	Source   string `json:"source"`
	Markdown string `json:"markdown"`
}

func runConvert(input string, opts *convertOptions) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}

	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}

	convOpts := cfg.ConvertOptions()
	convOpts.Logger = opts.Logger()
	convOpts.Fallback = convOpts.Fallback || opts.fallback
	convOpts.SkipNormalize = opts.noNormalize
	if opts.imageBaseURL != "" {
		convOpts.ImageBaseURL = opts.imageBaseURL
	}
	if opts.imagePrefix != "" {
		convOpts.ImagePrefix = opts.imagePrefix
	}

	markdown, err := ConvertSource(opts.GlobalOptions, input, convOpts)
	if err != nil {
		return err
	}

	if renderer.Format() == view.FormatJSON {
		source := input
		if source == "" {
			source = "-"
		}
		return renderer.RenderJSON(convertResult{Source: source, Markdown: markdown})
	}

	renderer.RenderText(markdown)
	return nil
}

// ConvertSource reads input, strips any front matter and converts the body.
// The result is trimmed for display.
func ConvertSource(g *cmdutil.GlobalOptions, input string, opts md.ConvertOptions) (string, error) {
	data, err := g.ReadInput(input)
	if err != nil {
		return "", err
	}

	body, err := spotlight.Body(data)
	if err != nil {
		return "", err
	}

	markdown, err := md.FromHTMLWithOptions(body, opts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}
