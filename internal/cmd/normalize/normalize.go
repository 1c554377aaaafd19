// Package normalize provides the normalize command.
package normalize

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/view"
	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

type normalizeOptions struct {
	*cmdutil.GlobalOptions
}

// NewCmdNormalize creates the normalize command.
func NewCmdNormalize() *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize [file|-]",
		Short: "Join hard-wrapped lines in markdown",
		Long: `Join lines that were wrapped mid-paragraph, leaving fenced code blocks
untouched. Fails when the input has an odd number of code fence markers.`,
		Example: `  # Normalize a markdown file
  spotmd normalize README.md

  # Normalize from stdin
  cat notes.md | spotmd normalize`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runNormalize(cmdutil.InputArg(args), opts)
		},
	}

	return cmd
}

func runNormalize(input string, opts *normalizeOptions) error {
	renderer, err := opts.Renderer(nil)
	if err != nil {
		return err
	}

	data, err := opts.ReadInput(input)
	if err != nil {
		return err
	}

	text, err := md.Normalize(string(data))
	if err != nil {
		return err
	}

	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(map[string]string{"markdown": text})
	}
	_, err = opts.Stdout().Write([]byte(text))
	return err
}
