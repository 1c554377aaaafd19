package init

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/spotlight-md/internal/config"
)

func TestAnswersFrom_Defaults(t *testing.T) {
	a := answersFrom(config.Default())

	assert.Equal(t, config.Default().ImageBaseURL, a.imageBaseURL)
	assert.Equal(t, config.Default().ImagePrefix, a.imagePrefix)
	assert.Equal(t, "4", a.concurrency)
	assert.Equal(t, "table", a.outputFormat)
	assert.False(t, a.fallback)
}

func TestAnswers_Apply(t *testing.T) {
	a := &answers{
		imageBaseURL:  " https://img.example.org/ ",
		imagePrefix:   "/assets",
		spotlightsDir: "_spotlights",
		concurrency:   "8",
		fallback:      true,
		outputFormat:  "json",
	}

	cfg := config.Default()
	require.NoError(t, a.apply(cfg))

	assert.Equal(t, &config.Config{
		ImageBaseURL:  "https://img.example.org/",
		ImagePrefix:   "/assets",
		SpotlightsDir: "_spotlights",
		Concurrency:   8,
		Fallback:      true,
		OutputFormat:  "json",
	}, cfg)
}

func TestAnswers_ApplyInvalid(t *testing.T) {
	tests := []struct {
		name string
		a    answers
	}{
		{"bad concurrency", answers{imageBaseURL: "https://x.org", concurrency: "many"}},
		{"zero concurrency", answers{imageBaseURL: "https://x.org", concurrency: "0"}},
		{"bad url", answers{imageBaseURL: "x.org", concurrency: "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.a.apply(config.Default()))
		})
	}
}

func TestParseConcurrency(t *testing.T) {
	n, err := parseConcurrency(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseConcurrency("-1")
	assert.Error(t, err)
}

func TestValidateBaseURL(t *testing.T) {
	assert.NoError(t, validateBaseURL("https://hifis.net/assets/img/"))
	assert.Error(t, validateBaseURL(""))
	assert.Error(t, validateBaseURL("ftp://example.org"))
}

func TestConfigFilePermissions(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yml")

	require.NoError(t, config.Default().Save(configPath))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "config file should have 0600 permissions")
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"image-base-url", "spotlights-dir"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}
}
