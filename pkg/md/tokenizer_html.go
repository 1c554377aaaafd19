// tokenizer_html.go turns a markup fragment into a flat stream of events.
package md

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TokenizeHTML scans a markup fragment and returns its events in source order.
//
// Character references in text and attribute values are decoded. Adjacent
// text runs are merged into one event. A self-closing tag such as <br/> is
// reported as a start event immediately followed by an end event, so callers
// never need to distinguish the two spellings. Doctype declarations are dropped.
// Only script and style bodies are read as raw text; markup inside elements
// such as iframe or textarea is tokenized like any other markup.
func TokenizeHTML(input string) ([]Event, error) {
	var events []Event
	z := html.NewTokenizer(strings.NewReader(input))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return events, nil
			}
			return nil, fmt.Errorf("failed to tokenize markup: %w", z.Err())
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			// Merge adjacent text runs
			if n := len(events); n > 0 && events[n-1].Type == EventText {
				events[n-1].Data += tok.Data
				continue
			}
			events = append(events, Event{Type: EventText, Data: tok.Data})

		case html.StartTagToken:
			events = append(events, startEvent(tok))
			keepParsingTags(z, tok.Data)

		case html.SelfClosingTagToken:
			events = append(events, startEvent(tok))
			events = append(events, Event{Type: EventEndTag, Tag: tok.Data})
			keepParsingTags(z, tok.Data)

		case html.EndTagToken:
			events = append(events, Event{Type: EventEndTag, Tag: tok.Data})

		case html.CommentToken:
			events = append(events, Event{Type: EventComment, Data: tok.Data})
		}
	}
}

func startEvent(tok html.Token) Event {
	ev := Event{Type: EventStartTag, Tag: tok.Data}
	if len(tok.Attr) > 0 {
		ev.Attrs = make([]Attr, 0, len(tok.Attr))
		for _, a := range tok.Attr {
			ev.Attrs = append(ev.Attrs, Attr{Key: a.Key, Value: a.Val})
		}
	}
	return ev
}

// keepParsingTags undoes the raw text mode x/net/html enters after tags like
// iframe, noscript or title.
func keepParsingTags(z *html.Tokenizer, tag string) {
	switch tag {
	case "script", "style":
		return
	}
	z.NextIsNotRawText()
}
