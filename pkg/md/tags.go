// tags.go defines the allow-list of markup tags the converter understands.
package md

import "strings"

// TagKind identifies how the converter treats a tag.
type TagKind int

const (
	TagIgnored   TagKind = iota // accepted, produces nothing
	TagAnchor                   // <a>: link or cross-reference
	TagBold                     // <b>: ** on both edges
	TagLineBreak                // <br>
	TagParagraph                // <p>: blank line before content
	TagBlock                    // <div>: whitespace-only text is indentation
	TagImage                    // <img>
	TagInline                   // <span>: tracked, no rendering effect
	TagCode                     // <tt>: inline code
	TagItalic                   // <i>: emphasis, or a decorative icon when it has attributes
)

// TagRegistry maps lowercase tag names to their kind.
// Adding support for a tag = adding one entry here and handling its kind.
var TagRegistry = map[string]TagKind{
	"a":        TagAnchor,
	"b":        TagBold,
	"br":       TagLineBreak,
	"p":        TagParagraph,
	"div":      TagBlock,
	"img":      TagImage,
	"span":     TagInline,
	"tt":       TagCode,
	"i":        TagItalic,
	"iframe":   TagIgnored,
	"center":   TagIgnored,
	"centered": TagIgnored,
	"video":    TagIgnored,
}

// LookupTag returns the kind of a tag, normalizing to lowercase.
// Returns ok=false if the tag is not in the allow-list.
func LookupTag(name string) (TagKind, bool) {
	kind, ok := TagRegistry[strings.ToLower(name)]
	return kind, ok
}
