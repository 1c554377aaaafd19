// Package preview provides the preview command.
package preview

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/convert"
	"github.com/open-cli-collective/spotlight-md/internal/view"
	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

type previewOptions struct {
	*cmdutil.GlobalOptions

	fallback bool
}

// NewCmdPreview creates the preview command.
func NewCmdPreview() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [file|-]",
		Short: "Render a converted spotlight as HTML",
		Long: `Convert a spotlight page to markdown and render the markdown back to HTML,
showing how the converted text will be displayed.`,
		Example: `  # Preview a spotlight page
  spotmd preview _spotlights/tool.md > tool.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runPreview(cmdutil.InputArg(args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "Use the generic converter for unsupported tags")

	return cmd
}

func runPreview(input string, opts *previewOptions) error {
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

	markdown, err := convert.ConvertSource(opts.GlobalOptions, input, convOpts)
	if err != nil {
		return err
	}

	html, err := md.ToHTML([]byte(markdown))
	if err != nil {
		return err
	}

	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(map[string]string{
			"markdown": markdown,
			"html":     html,
		})
	}
	_, err = opts.Stdout().Write([]byte(html))
	return err
}
