// Package spotlight reads spotlight pages and maps them to software records.
//
// A spotlight page is a markdown file whose YAML front matter describes a
// piece of research software and whose body is an HTML-flavoured fragment.
// The body is handed to pkg/md unchanged; this package only isolates it.
package spotlight

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// TemplateFile is the page skeleton kept next to real spotlights.
const TemplateFile = "_template.md"

// ErrMissingName is returned for pages whose front matter has no name.
var ErrMissingName = errors.New("spotlight has no name")

// yamlFormat decodes "---" delimited front matter with yaml.v3.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Platform is an entry of the platforms list, e.g. a GitLab project.
type Platform struct {
	Type   string `yaml:"type"`
	LinkAs string `yaml:"link_as"`
}

// Metadata is the front matter of a spotlight page.
type Metadata struct {
	Name          string     `yaml:"name"`
	Excerpt       string     `yaml:"excerpt"`
	DOI           any        `yaml:"doi"` // string, or a list the record cannot hold
	License       string     `yaml:"license"`
	Keywords      []string   `yaml:"keywords"`
	Platforms     []Platform `yaml:"platforms"`
	Centers       []string   `yaml:"hgf_centers"`
	ResearchField string     `yaml:"hgf_research_field"`
}

// Spotlight is a parsed spotlight page.
type Spotlight struct {
	Path     string
	Metadata Metadata
	// Body is the markup following the front matter.
	Body string
}

// Parse splits a page into front matter and body. Pages without front
// matter are rejected because they carry no name.
func Parse(source []byte) (*Spotlight, error) {
	var meta Metadata
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if strings.TrimSpace(meta.Name) == "" {
		return nil, ErrMissingName
	}

	return &Spotlight{
		Metadata: meta,
		Body:     string(body),
	}, nil
}

// Load reads and parses the spotlight at path.
func Load(path string) (*Spotlight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spotlight: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	s.Path = path
	return s, nil
}

// Discover lists the spotlight pages in dir, skipping the template, sorted by path.
func Discover(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list spotlights: %w", err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		if filepath.Base(m) == TemplateFile {
			continue
		}
		paths = append(paths, m)
	}
	sort.Strings(paths)
	return paths, nil
}

// PlatformLink returns the link of the last platform of the given type.
func (m Metadata) PlatformLink(kind string) (string, bool) {
	link, found := "", false
	for _, p := range m.Platforms {
		if p.Type == kind {
			link, found = p.LinkAs, true
		}
	}
	return link, found
}

// Body returns source without its front matter. Sources without front
// matter are returned unchanged and no name is required.
func Body(source []byte) (string, error) {
	if len(bytes.TrimSpace(source)) == 0 {
		return "", nil
	}

	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return "", fmt.Errorf("parse frontmatter: %w", err)
	}
	return string(body), nil
}
