// Package root provides the root command for the spotmd CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/batchcmd"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/check"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/completion"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/configcmd"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/convert"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/export"
	initcmd "github.com/open-cli-collective/spotlight-md/internal/cmd/init"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/normalize"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/preview"
	"github.com/open-cli-collective/spotlight-md/internal/version"
)

// NewCmdRoot creates the root command for spotmd.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotmd",
		Short: "Convert spotlight pages to markdown",
		Long: `spotmd converts the HTML-flavoured bodies of software spotlight pages
into clean markdown.

It converts single fragments or whole spotlight directories, joins
hard-wrapped lines outside code fences, audits fences, previews the result
and exports pages as software records.

Get started by running: spotmd init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/spotmd/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain (default: table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	// Set version template
	cmd.SetVersionTemplate(version.Info() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(normalize.NewCmdNormalize())
	cmd.AddCommand(batchcmd.NewCmdBatch())
	cmd.AddCommand(export.NewCmdExport())
	cmd.AddCommand(preview.NewCmdPreview())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
