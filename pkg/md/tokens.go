// tokens.go defines the markup event types consumed by the converter.
package md

// EventType represents the kind of a markup event.
type EventType int

const (
	EventText     EventType = iota // character data, entity references already decoded
	EventStartTag                  // <tag attr="...">
	EventEndTag                    // </tag>
	EventComment                   // <!-- ... -->
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventText:
		return "text"
	case EventStartTag:
		return "start"
	case EventEndTag:
		return "end"
	case EventComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Attr is a single tag attribute.
type Attr struct {
	Key   string
	Value string
}

// Event represents a single markup event in source order.
type Event struct {
	Type  EventType
	Tag   string // lowercase tag name, set for StartTag and EndTag
	Attrs []Attr // set for StartTag
	Data  string // set for Text and Comment
}

// Attr returns the value of the named attribute and whether it was present.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
