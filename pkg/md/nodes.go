// nodes.go defines the output nodes produced by the converter.
package md

import "strings"

// Node is a single piece of converted output.
type Node interface {
	// Markdown returns the textual form of the node.
	Markdown() string
}

// Text is literal content or a control marker such as "**" or "<br>".
type Text string

// Markdown returns the text unchanged.
func (t Text) Markdown() string {
	return string(t)
}

// Link is a hyperlink or, when IsAnchor is set, a cross-reference to an
// internal identifier.
type Link struct {
	Href     string
	Text     string
	AnchorID string
	IsAnchor bool
}

// newLink builds a Link from start tag attributes. An id attribute turns the
// link into a cross-reference and its href is no longer rendered.
func newLink(ev Event) *Link {
	l := &Link{}
	if href, ok := ev.Attr("href"); ok {
		l.Href = href
	}
	if id, ok := ev.Attr("id"); ok {
		l.IsAnchor = true
		l.AnchorID = id
	}
	return l
}

// Markdown renders [text](href) or [text]{id}.
func (l *Link) Markdown() string {
	if l.IsAnchor {
		return "[" + l.Text + "]{" + l.AnchorID + "}"
	}
	return "[" + l.Text + "](" + l.Href + ")"
}

// Image is an embedded image.
type Image struct {
	Alt string
	Src string
}

// Markdown renders ![alt](src).
func (i *Image) Markdown() string {
	return "![" + i.Alt + "](" + i.Src + ")"
}

// Document is the ordered node sequence built during one conversion.
// Nodes are only ever appended; the single exception is setLinkText.
type Document struct {
	nodes    []Node
	lastLink *Link
}

// Append adds a node to the end of the document.
func (d *Document) Append(n Node) {
	if l, ok := n.(*Link); ok {
		d.lastLink = l
	}
	d.nodes = append(d.nodes, n)
}

// Last returns the most recently appended node, or nil for an empty document.
func (d *Document) Last() Node {
	if len(d.nodes) == 0 {
		return nil
	}
	return d.nodes[len(d.nodes)-1]
}

// Len returns the number of nodes.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Nodes returns a copy of the node sequence.
func (d *Document) Nodes() []Node {
	out := make([]Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// setLinkText replaces the text of the most recently appended Link.
func (d *Document) setLinkText(text string) {
	if d.lastLink != nil {
		d.lastLink.Text = text
	}
}

// Markdown concatenates the textual form of every node in order.
func (d *Document) Markdown() string {
	var sb strings.Builder
	for _, n := range d.nodes {
		sb.WriteString(n.Markdown())
	}
	return sb.String()
}
