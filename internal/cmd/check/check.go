// Package check provides the check command.
package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/convert"
	"github.com/open-cli-collective/spotlight-md/internal/view"
	"github.com/open-cli-collective/spotlight-md/pkg/md"
)

type checkOptions struct {
	*cmdutil.GlobalOptions

	markdown bool
	fallback bool
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Audit code fences before normalizing",
		Long: `Count the code fence markers of a converted spotlight and compare them with
the fenced code blocks a markdown parser finds.

Line joining treats every literal fence marker as a boundary, including
markers inside inline code. When the counts disagree the text is reported
as ambiguous. An odd marker count fails the check.`,
		Example: `  # Check a spotlight page
  spotmd check _spotlights/tool.md

  # Check markdown that is already converted
  spotmd check --markdown notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.FromCommand(cmd)
			return runCheck(cmdutil.InputArg(args), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "Treat the input as markdown instead of converting it")
	cmd.Flags().BoolVar(&opts.fallback, "fallback", false, "Use the generic converter for unsupported tags")

	return cmd
}

type checkResult struct {
	Markers   int  `json:"markers"`
	Blocks    int  `json:"blocks"`
	Balanced  bool `json:"balanced"`
	Ambiguous bool `json:"ambiguous"`
}

func runCheck(input string, opts *checkOptions) error {
	cfg, err := opts.LoadConfig()
	if err != nil {
		return err
	}

	renderer, err := opts.Renderer(cfg)
	if err != nil {
		return err
	}

	var text string
	if opts.markdown {
		data, err := opts.ReadInput(input)
		if err != nil {
			return err
		}
		text = string(data)
	} else {
		convOpts := cfg.ConvertOptions()
		convOpts.Logger = opts.Logger()
		convOpts.Fallback = convOpts.Fallback || opts.fallback
		convOpts.SkipNormalize = true

		text, err = convert.ConvertSource(opts.GlobalOptions, input, convOpts)
		if err != nil {
			return err
		}
	}

	audit := md.AuditFences(text)
	result := checkResult{
		Markers:   audit.Markers,
		Blocks:    audit.Blocks,
		Balanced:  audit.Balanced(),
		Ambiguous: audit.Ambiguous(),
	}

	if renderer.Format() == view.FormatJSON {
		if err := renderer.RenderJSON(result); err != nil {
			return err
		}
	} else {
		renderer.RenderKeyValue("Fence markers", strconv.Itoa(result.Markers))
		renderer.RenderKeyValue("Fenced blocks", strconv.Itoa(result.Blocks))
		renderer.RenderKeyValue("Balanced", yesNo(result.Balanced))
		renderer.RenderKeyValue("Ambiguous", yesNo(result.Ambiguous))
	}

	if !result.Balanced {
		return &md.UnbalancedFenceError{Markers: result.Markers}
	}
	if result.Ambiguous {
		renderer.Warning(fmt.Sprintf("%d fence markers but %d fenced blocks; check inline code containing %s",
			result.Markers, result.Blocks, strings.Repeat("`", 3)))
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
