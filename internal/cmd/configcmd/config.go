// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage spotmd configuration",
		Long:  `Commands for viewing and clearing spotmd configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars are the environment variables that override the config file.
var envVars = []string{
	"SPOTMD_IMAGE_BASE_URL",
	"SPOTMD_IMAGE_PREFIX",
	"SPOTMD_SPOTLIGHTS_DIR",
	"SPOTMD_CONCURRENCY",
}
