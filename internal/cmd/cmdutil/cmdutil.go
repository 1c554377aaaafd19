// Package cmdutil holds the plumbing shared by spotmd commands.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/spotlight-md/internal/config"
	"github.com/open-cli-collective/spotlight-md/internal/view"
)

// GlobalOptions carries the persistent root flags and the command's streams.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// FromCommand reads the persistent flags of cmd.
func FromCommand(cmd *cobra.Command) *GlobalOptions {
	g := &GlobalOptions{
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

func (g *GlobalOptions) streams() (io.Reader, io.Writer, io.Writer) {
	in, out, errOut := g.In, g.Out, g.ErrOut
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return in, out, errOut
}

// Stdout returns the writer command output goes to.
func (g *GlobalOptions) Stdout() io.Writer {
	_, out, _ := g.streams()
	return out
}

// Path returns the config file path, honouring --config.
func (g *GlobalOptions) Path() string {
	if g.ConfigPath != "" {
		return g.ConfigPath
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads the config file with environment overrides and validates it.
// A missing file yields the defaults.
func (g *GlobalOptions) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(g.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'spotmd init' to configure)", err)
	}
	return cfg, nil
}

// Renderer returns a renderer for --output, falling back to the configured
// format and then to table.
func (g *GlobalOptions) Renderer(cfg *config.Config) (*view.Renderer, error) {
	format := g.Output
	if format == "" && cfg != nil {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return nil, err
	}

	_, out, errOut := g.streams()
	r := view.NewRenderer(view.Format(format), g.NoColor)
	r.SetWriter(out)
	r.SetErrWriter(errOut)
	return r, nil
}

// Logger returns a text logger on the error stream, at debug level with
// --verbose and warn level otherwise.
func (g *GlobalOptions) Logger() *slog.Logger {
	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	_, _, errOut := g.streams()
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
}

// ReadInput returns the contents of the named file, or of standard input
// when name is empty or "-".
func (g *GlobalOptions) ReadInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		in, _, _ := g.streams()
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// InputArg returns the optional positional input argument.
func InputArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
