// ABOUTME: Defines the Event value type emitted by the decoder for each semantic key.
// ABOUTME: Sequence always carries the literal input text that produced the event.

package keys

import "strings"

// Event is a single decoded key event. It is a plain value: once emitted
// it is never mutated, and it owns no resources.
//
// Name is the symbolic key identity ("up", "return", "a"); it is empty for
// raw passthrough and paste payload events. Sequence is the literal input
// that produced the event, so concatenating the Sequence fields of every
// emitted event reconstructs the original input (consumed framing markers
// excepted).
type Event struct {
	Name     string
	Ctrl     bool
	Meta     bool
	Shift    bool
	Paste    bool
	Sequence string
	Protocol string // set when extended-protocol parsing produced the event
}

// String returns a human-readable representation for debug display,
// e.g. "ctrl+shift+up" or `raw("\x1b[?")`.
func (e Event) String() string {
	var sb strings.Builder
	if e.Ctrl {
		sb.WriteString("ctrl+")
	}
	if e.Meta {
		sb.WriteString("meta+")
	}
	if e.Shift {
		sb.WriteString("shift+")
	}
	switch {
	case e.Name != "":
		sb.WriteString(e.Name)
	case e.Paste:
		sb.WriteString("paste")
	default:
		sb.WriteString("raw")
	}
	return sb.String()
}
