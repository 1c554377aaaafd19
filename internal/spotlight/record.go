package spotlight

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Limits of the software record.
const (
	MaxDescriptionLength    = 10000
	MaxShortStatementLength = 300
)

// ErrDescriptionTooLong marks spotlights whose converted description does
// not fit into a record. Such spotlights are skipped, not fixed up.
var ErrDescriptionTooLong = errors.New("description has more than 10.000 characters")

// Code platforms a record can link to. GitLab wins over GitHub because a
// record holds a single repository URL.
const (
	PlatformGitLab  = "gitlab"
	PlatformGitHub  = "github"
	PlatformWebpage = "webpage"
)

// RepositoryURL is the code repository of a record.
type RepositoryURL struct {
	CodePlatform string `json:"code_platform"`
	URL          string `json:"url"`
}

// Organisation is a research centre associated with a record.
type Organisation struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Record is a software entry built from a spotlight.
type Record struct {
	Slug           string         `json:"slug"`
	BrandName      string         `json:"brand_name"`
	IsPublished    bool           `json:"is_published"`
	ShortStatement string         `json:"short_statement"`
	Description    string         `json:"description"`
	ConceptDOI     string         `json:"concept_doi,omitempty"`
	RepositoryURL  *RepositoryURL `json:"repository_url,omitempty"`
	GetStartedURL  string         `json:"get_started_url,omitempty"`
	License        string         `json:"license,omitempty"`
	Keywords       []string       `json:"keywords,omitempty"`
	Organisations  []Organisation `json:"organisations,omitempty"`
	Warnings       []string       `json:"warnings,omitempty"`
}

var dashRuns = regexp.MustCompile(`-+`)

// NameToSlug turns a software name into a record slug: spaces become dashes,
// plus signs are dropped, and runs of dashes collapse into one.
func NameToSlug(name string) string {
	s := strings.ToLower(strings.NewReplacer(" ", "-", "+", "").Replace(name))
	return dashRuns.ReplaceAllString(s, "-")
}

var orgSlugReplacer = strings.NewReplacer("(", "", ")", "", " ", "-", "+", "")

// OrgNameToSlug turns an organisation name into a slug. Unlike NameToSlug it
// also drops parentheses and keeps repeated dashes.
func OrgNameToSlug(name string) string {
	return strings.ToLower(orgSlugReplacer.Replace(name))
}

// ToRecord builds the software record for a spotlight whose body has already
// been converted to description.
func ToRecord(s *Spotlight, description string) (*Record, error) {
	meta := s.Metadata
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("%s: %w", meta.Name, ErrDescriptionTooLong)
	}

	rec := &Record{
		Slug:           NameToSlug(meta.Name),
		BrandName:      meta.Name,
		IsPublished:    true,
		ShortStatement: truncateRunes(meta.Excerpt, MaxShortStatementLength),
		Description:    description,
		License:        meta.License,
	}

	switch doi := meta.DOI.(type) {
	case []any:
		rec.warn("multiple DOIs are not supported, consider adding %s as a project", meta.Name)
	case string:
		if strings.HasPrefix(doi, "10.") {
			rec.ConceptDOI = doi
		} else if doi != "" {
			rec.warn("%s is not a valid DOI", doi)
		}
	}

	if link, ok := meta.PlatformLink(PlatformGitLab); ok {
		rec.RepositoryURL = &RepositoryURL{CodePlatform: PlatformGitLab, URL: link}
	} else if link, ok := meta.PlatformLink(PlatformGitHub); ok {
		rec.RepositoryURL = &RepositoryURL{CodePlatform: PlatformGitHub, URL: link}
	}
	if link, ok := meta.PlatformLink(PlatformWebpage); ok {
		rec.GetStartedURL = link
	}

	rec.Keywords = append(rec.Keywords, meta.Keywords...)
	if meta.ResearchField != "" && !slices.Contains(rec.Keywords, meta.ResearchField) {
		rec.Keywords = append(rec.Keywords, meta.ResearchField)
	}

	for _, center := range meta.Centers {
		rec.Organisations = append(rec.Organisations, Organisation{
			Name: center,
			Slug: OrgNameToSlug(center),
		})
	}

	return rec, nil
}

func (r *Record) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
