// preview.go renders converted markdown back to HTML and inspects its fences.

package md

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// mdParser is a pre-configured goldmark instance with GFM table extension.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// ToHTML renders markdown to HTML so converted descriptions can be reviewed
// the way a markdown consumer will display them.
func ToHTML(markdown []byte) (string, error) {
	if len(markdown) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	if err := mdParser.Convert(markdown, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FenceReport compares literal fence markers against parsed fenced blocks.
type FenceReport struct {
	Markers int // literal ``` occurrences
	Blocks  int // fenced code blocks found by a markdown parser
}

// Balanced reports whether Normalize will accept the text.
func (r FenceReport) Balanced() bool {
	return r.Markers%2 == 0
}

// Ambiguous reports whether the marker count disagrees with the parsed
// blocks, e.g. ``` used inside inline code, ~~~ fences, or an unclosed fence.
// Normalize splits on markers alone, so such text may be joined in places a
// reader would consider code.
func (r FenceReport) Ambiguous() bool {
	return r.Markers != 2*r.Blocks
}

// AuditFences counts fence markers and the fenced code blocks goldmark parses.
func AuditFences(markdown string) FenceReport {
	report := FenceReport{Markers: strings.Count(markdown, FenceMarker)}

	src := []byte(markdown)
	doc := mdParser.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindFencedCodeBlock {
			report.Blocks++
		}
		return ast.WalkContinue, nil
	})

	return report
}
