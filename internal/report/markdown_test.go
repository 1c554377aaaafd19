package report

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/spotlight-md/internal/batch"
	"github.com/open-cli-collective/spotlight-md/internal/spotlight"
)

func TestWriteMarkdown_Mixed(t *testing.T) {
	results := []batch.Result{
		{
			Path:      "/spotlights/tool.md",
			Spotlight: &spotlight.Spotlight{Metadata: spotlight.Metadata{Name: "Tool"}},
			Markdown:  "text",
			Duration:  12 * time.Millisecond,
		},
		{
			Path: "/spotlights/broken.md",
			Err:  errors.New("table tags are not implemented"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, results))
	out := buf.String()

	assert.Contains(t, out, "# "+Title)
	assert.Contains(t, out, "## Summary")
	assert.Contains(t, out, "## Pages")
	assert.Contains(t, out, "`tool.md`")
	assert.Contains(t, out, "Tool")
	assert.Contains(t, out, "12ms")
	assert.Contains(t, out, "## Failures")
	assert.Contains(t, out, "`broken.md`: table tags are not implemented")
	assert.Contains(t, out, "mermaid")
	assert.Contains(t, out, "[!WARNING]")
}

func TestWriteMarkdown_AllConverted(t *testing.T) {
	results := []batch.Result{{Path: "a.md", Markdown: "a"}}

	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, results))
	out := buf.String()

	assert.Contains(t, out, "[!TIP]")
	assert.NotContains(t, out, "## Failures")
	assert.NotContains(t, out, "mermaid")
}

func TestWriteMarkdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, nil))
	out := buf.String()

	assert.Contains(t, out, "[!NOTE]")
	assert.NotContains(t, out, "## Pages")
}

func TestEscapeCell(t *testing.T) {
	assert.Equal(t, `a\|b`, escapeCell("a|b"))
	assert.Equal(t, "plain", escapeCell("plain"))
}
