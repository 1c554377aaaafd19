package cmdutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/spotlight-md/internal/config"
	"github.com/open-cli-collective/spotlight-md/internal/view"
)

func TestFromCommand(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("output", "", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().Bool("verbose", false, "")
	require.NoError(t, cmd.ParseFlags([]string{"--config", "/tmp/c.yml", "--output", "json", "--no-color", "--verbose"}))

	var out bytes.Buffer
	cmd.SetOut(&out)

	g := FromCommand(cmd)
	assert.Equal(t, "/tmp/c.yml", g.ConfigPath)
	assert.Equal(t, "json", g.Output)
	assert.True(t, g.NoColor)
	assert.True(t, g.Verbose)
	assert.Same(t, &out, g.Out)
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "spotmd", "config.yml"), (&GlobalOptions{}).Path())
	assert.Equal(t, "/custom.yml", (&GlobalOptions{ConfigPath: "/custom.yml"}).Path())
}

func TestLoadConfig(t *testing.T) {
	for _, v := range []string{"SPOTMD_IMAGE_PREFIX", "SPOTMD_IMAGE_BASE_URL", "SPOTMD_SPOTLIGHTS_DIR", "SPOTMD_CONCURRENCY"} {
		t.Setenv(v, "")
	}
	path := filepath.Join(t.TempDir(), "config.yml")

	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := (&GlobalOptions{ConfigPath: path}).LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := &config.Config{ImageBaseURL: "ftp://example.org"}
		require.NoError(t, bad.Save(path))

		_, err := (&GlobalOptions{ConfigPath: path}).LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spotmd init")
	})
}

func TestRenderer(t *testing.T) {
	var out bytes.Buffer
	g := &GlobalOptions{Out: &out, NoColor: true}

	r, err := g.Renderer(&config.Config{OutputFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, view.FormatJSON, r.Format())

	g.Output = "plain"
	r, err = g.Renderer(&config.Config{OutputFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, view.FormatPlain, r.Format())

	r, err = (&GlobalOptions{}).Renderer(nil)
	require.NoError(t, err)
	assert.Equal(t, view.FormatTable, r.Format())

	_, err = (&GlobalOptions{Output: "xml"}).Renderer(nil)
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	var errOut bytes.Buffer

	quiet := (&GlobalOptions{ErrOut: &errOut}).Logger()
	assert.False(t, quiet.Enabled(context.Background(), slog.LevelDebug))
	quiet.Info("hidden")
	assert.Empty(t, errOut.String())

	verbose := (&GlobalOptions{ErrOut: &errOut, Verbose: true}).Logger()
	verbose.Debug("shown", "key", "value")
	assert.Contains(t, errOut.String(), "key=value")
}

func TestReadInput(t *testing.T) {
	g := &GlobalOptions{In: strings.NewReader("from stdin")}

	data, err := g.ReadInput("-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0600))
	data, err = g.ReadInput(path)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	_, err = g.ReadInput(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputArg(t *testing.T) {
	assert.Equal(t, "", InputArg(nil))
	assert.Equal(t, "a.md", InputArg([]string{"a.md"}))
}
