// Package init provides the init command for spotmd.
package init

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/config"
	"github.com/open-cli-collective/spotlight-md/internal/view"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		imageBaseURL  string
		spotlightsDir string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize spotmd configuration",
		Long: `Initialize spotmd with the settings used when converting spotlight pages.

This command will guide you through setting the image host, the image
source prefix to rewrite, the spotlights directory and batch concurrency.
The configuration will be saved to ~/.config/spotmd/config.yml.`,
		Example: `  # Interactive setup
  spotmd init

  # Pre-populate the spotlights directory
  spotmd init --spotlights-dir ./_spotlights`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.FromCommand(cmd)
			return runInit(g.Path(), imageBaseURL, spotlightsDir, g.Stdout())
		},
	}

	cmd.Flags().StringVar(&imageBaseURL, "image-base-url", "", "Base URL for rewritten image sources")
	cmd.Flags().StringVar(&spotlightsDir, "spotlights-dir", "", "Directory containing spotlight pages")

	return cmd
}

// answers are the form values before they are applied to a config.
type answers struct {
	imageBaseURL  string
	imagePrefix   string
	spotlightsDir string
	concurrency   string
	fallback      bool
	outputFormat  string
}

func answersFrom(cfg *config.Config) *answers {
	format := cfg.OutputFormat
	if format == "" {
		format = string(view.FormatTable)
	}
	return &answers{
		imageBaseURL:  cfg.ImageBaseURL,
		imagePrefix:   cfg.ImagePrefix,
		spotlightsDir: cfg.SpotlightsDir,
		concurrency:   strconv.Itoa(cfg.EffectiveConcurrency()),
		fallback:      cfg.Fallback,
		outputFormat:  format,
	}
}

func (a *answers) apply(cfg *config.Config) error {
	n, err := parseConcurrency(a.concurrency)
	if err != nil {
		return err
	}

	cfg.ImageBaseURL = strings.TrimSpace(a.imageBaseURL)
	cfg.ImagePrefix = strings.TrimSpace(a.imagePrefix)
	cfg.SpotlightsDir = strings.TrimSpace(a.spotlightsDir)
	cfg.Concurrency = n
	cfg.Fallback = a.fallback
	cfg.OutputFormat = a.outputFormat
	return cfg.Validate()
}

func parseConcurrency(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("concurrency must be a positive number")
	}
	return n, nil
}

func validateBaseURL(s string) error {
	if s == "" {
		return fmt.Errorf("image base URL is required")
	}
	return (&config.Config{ImageBaseURL: s}).Validate()
}

func runInit(configPath, prefillBaseURL, prefillDir string, out io.Writer) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()
	a := answersFrom(cfg)
	if prefillBaseURL != "" {
		a.imageBaseURL = prefillBaseURL
	}
	if prefillDir != "" {
		a.spotlightsDir = prefillDir
	}

	formats := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formats = append(formats, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Image base URL").
				Description("Where rewritten image sources point to").
				Placeholder(config.Default().ImageBaseURL).
				Value(&a.imageBaseURL).
				Validate(validateBaseURL),

			huh.NewInput().
				Title("Image source prefix").
				Description("Template prefix replaced by the base URL").
				Value(&a.imagePrefix),

			huh.NewInput().
				Title("Spotlights directory (optional)").
				Description("Default directory for batch and export").
				Placeholder("_spotlights").
				Value(&a.spotlightsDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Concurrency").
				Description("Pages converted in parallel").
				Value(&a.concurrency).
				Validate(func(s string) error {
					_, err := parseConcurrency(s)
					return err
				}),

			huh.NewConfirm().
				Title("Fall back for unsupported tags?").
				Description("Convert unknown markup with a generic converter instead of failing").
				Value(&a.fallback),

			huh.NewSelect[string]().
				Title("Output format").
				Options(formats...).
				Value(&a.outputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := a.apply(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  spotmd convert <spotlight.md>")
	fmt.Fprintln(out, "  spotmd batch <spotlights-dir>")

	return nil
}
