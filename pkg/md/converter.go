// Package md converts spotlight markup fragments to markdown.
package md

import (
	"strings"
)

// Converter turns markup fragments into markdown. A Converter holds only
// configuration, so one value may be shared by concurrent callers; every
// conversion builds its own document and context flags.
type Converter struct {
	rewriter SourceRewriter
}

// Option configures a Converter.
type Option func(*Converter)

// WithSourceRewriter sets the rule applied to image sources.
func WithSourceRewriter(r SourceRewriter) Option {
	return func(c *Converter) {
		c.rewriter = r
	}
}

// NewConverter creates a Converter using the default image rewrite unless
// overridden.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{rewriter: DefaultSourceRewriter()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts a fragment to markdown without normalization.
// It fails with *UnsupportedTagError when the fragment opens a tag outside
// TagRegistry; no partial output is returned in that case.
func (c *Converter) Convert(fragment string) (string, error) {
	doc, err := c.ConvertDocument(fragment)
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// ConvertDocument tokenizes a fragment and converts its events.
func (c *Converter) ConvertDocument(fragment string) (*Document, error) {
	events, err := TokenizeHTML(fragment)
	if err != nil {
		return nil, err
	}
	return c.ConvertEvents(events)
}

// ConvertEvents runs the converter over an already tokenized event stream.
func (c *Converter) ConvertEvents(events []Event) (*Document, error) {
	cv := &conversion{
		doc:      &Document{},
		rewriter: c.rewriter,
	}
	for _, ev := range events {
		if err := cv.handle(ev); err != nil {
			return nil, err
		}
	}
	return cv.doc, nil
}

// contextFlags is the transient state of one conversion. Several flags may be
// set at once, e.g. an italic span inside an anchor.
type contextFlags struct {
	inAnchor bool
	inBlock  bool
	inInline bool
	inCode   bool
	inIcon   bool
	inItalic bool
}

// conversion is a single streaming pass over one fragment.
type conversion struct {
	doc      *Document
	flags    contextFlags
	rewriter SourceRewriter
}

func (cv *conversion) handle(ev Event) error {
	switch ev.Type {
	case EventComment:
		cv.doc.Append(Text("<!-- " + strings.TrimSpace(ev.Data) + " -->"))
	case EventText:
		cv.text(ev.Data)
	case EventStartTag:
		return cv.start(ev)
	case EventEndTag:
		cv.end(ev)
	}
	return nil
}

func (cv *conversion) text(data string) {
	switch {
	case cv.flags.inAnchor:
		// A link's text always follows its own start tag, so the trailing
		// Link is updated in place rather than adding a node.
		cv.doc.setLinkText(strings.TrimSpace(data))
	case cv.flags.inBlock && strings.TrimSpace(data) == "":
		// indentation
	case cv.flags.inIcon:
	default:
		cv.doc.Append(Text(data))
	}
}

func (cv *conversion) start(ev Event) error {
	kind, ok := LookupTag(ev.Tag)
	if !ok {
		return &UnsupportedTagError{Tag: ev.Tag, Last: cv.doc.Last()}
	}

	switch kind {
	case TagAnchor:
		cv.flags.inAnchor = true
		cv.doc.Append(newLink(ev))
	case TagBold:
		cv.doc.Append(Text("**"))
	case TagLineBreak:
		cv.doc.Append(Text("<br>"))
	case TagParagraph:
		cv.doc.Append(Text("\n\n"))
	case TagBlock:
		cv.flags.inBlock = true
	case TagImage:
		img := &Image{}
		if alt, ok := ev.Attr("alt"); ok {
			img.Alt = alt
		}
		if src, ok := ev.Attr("src"); ok {
			img.Src = cv.rewriter.Rewrite(src)
		}
		cv.doc.Append(img)
	case TagInline:
		cv.flags.inInline = true
	case TagCode:
		cv.flags.inCode = true
		cv.doc.Append(Text("`"))
	case TagItalic:
		if len(ev.Attrs) > 0 {
			// Icon fonts are attached through class attributes; their
			// content is a glyph, not text.
			cv.flags.inIcon = true
			return nil
		}
		cv.flags.inItalic = true
		cv.doc.Append(Text("*"))
	case TagIgnored:
	}
	return nil
}

// end handles closing tags. Unknown closing tags are ignored; only opening
// an unsupported tag is an error.
func (cv *conversion) end(ev Event) {
	kind, ok := LookupTag(ev.Tag)
	if !ok {
		return
	}

	switch kind {
	case TagAnchor:
		cv.flags.inAnchor = false
	case TagBold:
		cv.doc.Append(Text("**"))
	case TagBlock:
		cv.flags.inBlock = false
	case TagInline:
		cv.flags.inInline = false
	case TagCode:
		cv.doc.Append(Text("`"))
		cv.flags.inCode = false
	case TagItalic:
		if cv.flags.inItalic {
			cv.doc.Append(Text("*"))
			cv.flags.inItalic = false
		} else {
			cv.flags.inIcon = false
		}
	}
}
