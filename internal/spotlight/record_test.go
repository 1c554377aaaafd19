package spotlight

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameToSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Helmholtz Tool", "helmholtz-tool"},
		{"C++ Library", "c-library"},
		{"A + B", "a-b"},
		{"Multi   Space", "multi-space"},
		{"already-slug", "already-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NameToSlug(tt.input))
		})
	}
}

func TestOrgNameToSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Forschungszentrum Jülich (FZJ)", "forschungszentrum-jülich-fzj"},
		{"DESY", "desy"},
		{"A + B", "a--b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, OrgNameToSlug(tt.input))
		})
	}
}

func TestToRecord(t *testing.T) {
	s, err := Parse([]byte(samplePage))
	require.NoError(t, err)

	rec, err := ToRecord(s, "**Tool** helps.")
	require.NoError(t, err)

	assert.Equal(t, "helmholtz-tool", rec.Slug)
	assert.Equal(t, "Helmholtz Tool+", rec.BrandName)
	assert.True(t, rec.IsPublished)
	assert.Equal(t, "A tool for things.", rec.ShortStatement)
	assert.Equal(t, "**Tool** helps.", rec.Description)
	assert.Equal(t, "10.5281/zenodo.1234", rec.ConceptDOI)
	assert.Equal(t, &RepositoryURL{CodePlatform: "gitlab", URL: "https://gitlab.example.org/tool"}, rec.RepositoryURL)
	assert.Equal(t, "https://tool.example.org", rec.GetStartedURL)
	assert.Equal(t, "MIT", rec.License)
	assert.Equal(t, []string{"Analysis", "Python", "Energy"}, rec.Keywords)
	assert.Equal(t, []Organisation{{Name: "Forschungszentrum Jülich (FZJ)", Slug: "forschungszentrum-jülich-fzj"}}, rec.Organisations)
	assert.Empty(t, rec.Warnings)
}

func TestToRecord_GitHubOnly(t *testing.T) {
	s := &Spotlight{Metadata: Metadata{
		Name:      "Tool",
		Platforms: []Platform{{Type: "github", LinkAs: "https://github.com/x/tool"}},
	}}

	rec, err := ToRecord(s, "")
	require.NoError(t, err)
	assert.Equal(t, &RepositoryURL{CodePlatform: "github", URL: "https://github.com/x/tool"}, rec.RepositoryURL)
	assert.Empty(t, rec.GetStartedURL)
}

func TestToRecord_DOIs(t *testing.T) {
	tests := []struct {
		name        string
		doi         any
		wantDOI     string
		wantWarning string
	}{
		{"none", nil, "", ""},
		{"valid", "10.1000/xyz", "10.1000/xyz", ""},
		{"invalid", "doi.org/10.1000/xyz", "", "is not a valid DOI"},
		{"list", []any{"10.1/a", "10.1/b"}, "", "multiple DOIs are not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Spotlight{Metadata: Metadata{Name: "Tool", DOI: tt.doi}}
			rec, err := ToRecord(s, "")
			require.NoError(t, err)
			assert.Equal(t, tt.wantDOI, rec.ConceptDOI)
			if tt.wantWarning == "" {
				assert.Empty(t, rec.Warnings)
			} else {
				require.Len(t, rec.Warnings, 1)
				assert.Contains(t, rec.Warnings[0], tt.wantWarning)
			}
		})
	}
}

func TestToRecord_ResearchFieldNotDuplicated(t *testing.T) {
	s := &Spotlight{Metadata: Metadata{
		Name:          "Tool",
		Keywords:      []string{"Energy"},
		ResearchField: "Energy",
	}}
	rec, err := ToRecord(s, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy"}, rec.Keywords)
}

func TestToRecord_Limits(t *testing.T) {
	s := &Spotlight{Metadata: Metadata{
		Name:    "Tool",
		Excerpt: strings.Repeat("ä", MaxShortStatementLength+20),
	}}

	rec, err := ToRecord(s, strings.Repeat("ü", MaxDescriptionLength))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ä", MaxShortStatementLength), rec.ShortStatement)

	_, err = ToRecord(s, strings.Repeat("x", MaxDescriptionLength+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDescriptionTooLong))
	assert.Contains(t, err.Error(), "Tool")
}
