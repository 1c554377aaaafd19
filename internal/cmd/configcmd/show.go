package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current spotmd configuration with value source indicators.`,
		Example: `  # Show current config
  spotmd config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.FromCommand(cmd)
			return runShow(g.Path(), g.NoColor, g.Stdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = config.Default()
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(out, "%-16s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}

		fmt.Fprint(out, value)

		// Determine source
		source := "config"
		if fileErr != nil {
			source = "default"
		}
		if envVar != "" {
			if v := os.Getenv(envVar); v != "" && v == value {
				source = envVar
			}
		}
		if fileValue != value && source == "config" {
			source = "-"
		}

		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	printField("Image base URL", cfg.ImageBaseURL, fileCfg.ImageBaseURL, "SPOTMD_IMAGE_BASE_URL")
	printField("Image prefix", cfg.ImagePrefix, fileCfg.ImagePrefix, "SPOTMD_IMAGE_PREFIX")
	printField("Spotlights", cfg.SpotlightsDir, fileCfg.SpotlightsDir, "SPOTMD_SPOTLIGHTS_DIR")
	printField("Concurrency", strconv.Itoa(cfg.EffectiveConcurrency()),
		strconv.Itoa(fileCfg.EffectiveConcurrency()), "SPOTMD_CONCURRENCY")
	printField("Fallback", strconv.FormatBool(cfg.Fallback), strconv.FormatBool(fileCfg.Fallback), "")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "")

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}
