package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/spotlight-md/internal/batch"
	"github.com/open-cli-collective/spotlight-md/internal/cmd/cmdutil"
	"github.com/open-cli-collective/spotlight-md/internal/spotlight"
)

const toolPage = `---
name: Data Tool
excerpt: Moves data.
doi: 10.5281/zenodo.42
platforms:
  - type: gitlab
    link_as: https://gitlab.example.org/data-tool
hgf_centers:
  - DESY
---
<p>Data <b>Tool</b> moves data.</p>
`

func newOptions(t *testing.T) (*exportOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	for _, v := range []string{"SPOTMD_IMAGE_PREFIX", "SPOTMD_IMAGE_BASE_URL", "SPOTMD_SPOTLIGHTS_DIR", "SPOTMD_CONCURRENCY"} {
		t.Setenv(v, "")
	}
	var out, errOut bytes.Buffer
	return &exportOptions{GlobalOptions: &cmdutil.GlobalOptions{
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		NoColor:    true,
		Out:        &out,
		ErrOut:     &errOut,
	}}, &out, &errOut
}

func TestBuild(t *testing.T) {
	results := []batch.Result{
		{
			Path:      "/s/tool.md",
			Spotlight: &spotlight.Spotlight{Metadata: spotlight.Metadata{Name: "Tool"}},
			Markdown:  "desc",
		},
		{Path: "/s/broken.md", Err: errors.New("broken.md: table tags are not implemented")},
		{
			Path:      "/s/long.md",
			Spotlight: &spotlight.Spotlight{Metadata: spotlight.Metadata{Name: "Long"}},
			Markdown:  strings.Repeat("x", spotlight.MaxDescriptionLength+1),
		},
	}

	exp := Build(results)
	require.Len(t, exp.Records, 1)
	assert.Equal(t, "tool", exp.Records[0].Slug)
	assert.Equal(t, "desc", exp.Records[0].Description)

	require.Len(t, exp.Skipped, 2)
	assert.Equal(t, "broken.md", exp.Skipped[0].File)
	assert.Equal(t, "long.md", exp.Skipped[1].File)
	assert.Contains(t, exp.Skipped[1].Reason, "10.000 characters")
}

func TestRunExport_JSON(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "data-tool.md"), []byte(toolPage), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "bad.md"), []byte("---\nname: Bad\n---\n<table></table>"), 0600))

	opts, out, errOut := newOptions(t)
	opts.Output = "json"

	require.NoError(t, runExport(context.Background(), src, opts))

	var exp Export
	require.NoError(t, json.Unmarshal(out.Bytes(), &exp))
	require.Len(t, exp.Records, 1)

	rec := exp.Records[0]
	assert.Equal(t, "data-tool", rec.Slug)
	assert.Equal(t, "Data Tool", rec.BrandName)
	assert.Equal(t, "Data **Tool** moves data.", rec.Description)
	assert.Equal(t, "10.5281/zenodo.42", rec.ConceptDOI)
	require.NotNil(t, rec.RepositoryURL)
	assert.Equal(t, "gitlab", rec.RepositoryURL.CodePlatform)
	assert.Equal(t, []spotlight.Organisation{{Name: "DESY", Slug: "desy"}}, rec.Organisations)

	require.Len(t, exp.Skipped, 1)
	assert.Equal(t, "bad.md", exp.Skipped[0].File)
	assert.Contains(t, errOut.String(), "skipped bad.md: table tags are not implemented")
}

func TestRunExport_Table(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "data-tool.md"), []byte(toolPage), 0600))

	opts, out, _ := newOptions(t)
	require.NoError(t, runExport(context.Background(), src, opts))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "SLUG"))
	assert.Contains(t, lines[1], "data-tool")
	assert.Contains(t, lines[1], "https://gitlab.example.org/data-tool")
}

func TestRunExport_OutFile(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "data-tool.md"), []byte(toolPage), 0600))
	target := filepath.Join(t.TempDir(), "records.json")

	opts, out, _ := newOptions(t)
	opts.outFile = target
	require.NoError(t, runExport(context.Background(), src, opts))
	assert.Contains(t, out.String(), "Exported 1 records")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	var exp Export
	require.NoError(t, json.Unmarshal(data, &exp))
	assert.Len(t, exp.Records, 1)
	assert.Empty(t, exp.Skipped)
}

func TestRunExport_Warnings(t *testing.T) {
	src := t.TempDir()
	page := "---\nname: Multi\ndoi:\n  - 10.1/a\n  - 10.1/b\n---\n<p>x</p>"
	require.NoError(t, os.WriteFile(filepath.Join(src, "multi.md"), []byte(page), 0600))

	opts, _, errOut := newOptions(t)
	require.NoError(t, runExport(context.Background(), src, opts))
	assert.Contains(t, errOut.String(), "multi: multiple DOIs are not supported")
}
