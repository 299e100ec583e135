// ABOUTME: Escape-sequence classifier for legacy CSI and Kitty keyboard protocol input.
// ABOUTME: ParsePrefix matches one sequence at the start of a buffer; CouldBePrefix guards ambiguous waits.

package keys

import (
	"strconv"
	"strings"
)

// Protocol constants shared with the decoder. These must match the host
// terminal's conventions bit-for-bit and are never negotiated at runtime.
const (
	ESC = "\x1b"
	CSI = "\x1b["
)

// Kitty modifier bitmask values, decoded from the 1-based wire value.
const (
	modShift = 1 << iota // bit 0
	modAlt               // bit 1
	modCtrl              // bit 2
)

// eventTypeOffset collapses key-repeat/key-release modifier encodings onto
// the press encoding. The decoder does not distinguish press from release.
const eventTypeOffset = 128

// paramLetterNames maps CSI 1;<mods><letter> terminators to key names.
var paramLetterNames = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
	'P': "f1",
	'Q': "f2",
	'R': "f3",
	'S': "f4",
}

// legacyLetterNames maps bare CSI <letter> terminators to key names.
// The function-key letters are only valid in the parameterized form.
var legacyLetterNames = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// tildeNames maps CSI <code>~ numeric codes to key names.
var tildeNames = map[int]string{
	1: "home",
	2: "insert",
	3: "delete",
	4: "end",
	5: "pageup",
	6: "pagedown",
}

// csiUNames maps CSI <code>u codepoints to key names. 13 is the main Enter
// key, 57414 the numpad Enter; both decode to "return".
var csiUNames = map[int]string{
	27:    "escape",
	9:     "tab",
	127:   "backspace",
	13:    "return",
	57414: "return",
}

// ParsePrefix attempts to classify one complete escape sequence at the
// start of buf. On success it returns the decoded event, the number of
// bytes consumed from the start of buf, and true. It never consumes past
// one complete sequence; callers re-invoke on the remainder to drain
// batched input.
func ParsePrefix(buf string) (Event, int, bool) {
	if len(buf) < 3 || !strings.HasPrefix(buf, CSI) {
		return Event{}, 0, false
	}

	// Scan parameter bytes up to the terminator.
	i := 2
	for i < len(buf) && isParamByte(buf[i]) {
		i++
	}
	if i >= len(buf) {
		// No terminator yet.
		return Event{}, 0, false
	}

	term := buf[i]
	params := buf[2:i]
	consumed := i + 1
	seq := buf[:consumed]

	switch {
	case term == 'Z':
		return parseReverseTab(params, seq, consumed)
	case term == 'u' || term == '~':
		return parseCodeForm(params, term, seq, consumed)
	default:
		return parseLetterForm(params, term, seq, consumed)
	}
}

// parseReverseTab handles CSI Z and CSI 1;<mods> Z. Reverse tab is always
// treated as Shift+Tab regardless of the encoded modifiers.
func parseReverseTab(params, seq string, consumed int) (Event, int, bool) {
	if params == "" {
		return Event{Name: "tab", Shift: true, Sequence: seq}, consumed, true
	}
	first, modField := cutByte(params, ';')
	if first != "1" || modField == "" {
		return Event{}, 0, false
	}
	mods, ok := decodeModifiers(modField)
	if !ok {
		return Event{}, 0, false
	}
	ev := Event{Name: "tab", Shift: true, Sequence: seq, Protocol: "kitty"}
	ev.Ctrl = mods&modCtrl != 0
	ev.Meta = mods&modAlt != 0
	return ev, consumed, true
}

// parseLetterForm handles CSI <letter> (legacy, no modifiers) and
// CSI 1;<mods><letter> (parameterized functional keys).
func parseLetterForm(params string, term byte, seq string, consumed int) (Event, int, bool) {
	if params == "" {
		name, ok := legacyLetterNames[term]
		if !ok {
			return Event{}, 0, false
		}
		return Event{Name: name, Sequence: seq}, consumed, true
	}

	name, ok := paramLetterNames[term]
	if !ok {
		return Event{}, 0, false
	}
	first, modField := cutByte(params, ';')
	if first != "1" || modField == "" {
		return Event{}, 0, false
	}
	mods, ok := decodeModifiers(modField)
	if !ok {
		return Event{}, 0, false
	}
	ev := Event{Name: name, Sequence: seq, Protocol: "kitty"}
	applyModifiers(&ev, mods)
	return ev, consumed, true
}

// parseCodeForm handles CSI <code>(;<mods>)? followed by 'u' or '~'.
func parseCodeForm(params string, term byte, seq string, consumed int) (Event, int, bool) {
	codeStr, modField := cutByte(params, ';')
	// The code may carry a colon-separated alternate (shifted:base); only
	// the primary codepoint matters here.
	codeStr, _ = cutByte(codeStr, ':')
	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return Event{}, 0, false
	}

	mods := 0
	if modField != "" {
		var ok bool
		mods, ok = decodeModifiers(modField)
		if !ok {
			return Event{}, 0, false
		}
	}

	var name string
	if term == '~' {
		var ok bool
		name, ok = tildeNames[code]
		if !ok {
			return Event{}, 0, false
		}
	} else {
		var ok bool
		name, ok = csiUNames[code]
		if !ok {
			// Ctrl/Alt chords arrive as the plain lowercase codepoint.
			if mods&(modCtrl|modAlt) != 0 && code >= 'a' && code <= 'z' {
				name = string(rune(code))
			} else {
				return Event{}, 0, false
			}
		}
	}

	ev := Event{Name: name, Sequence: seq, Protocol: "kitty"}
	applyModifiers(&ev, mods)
	return ev, consumed, true
}

// CouldBePrefix reports whether buf could still become a recognizable
// sequence if more bytes arrive. The accumulator uses this to decide
// between waiting (bounded by the escape timeout) and emitting verbatim.
func CouldBePrefix(buf string) bool {
	if buf == "" || buf == ESC {
		return true
	}
	if buf[0] != 0x1b {
		return false
	}
	if buf[1] != '[' {
		return false
	}
	for i := 2; i < len(buf); i++ {
		if !isParamByte(buf[i]) {
			return false
		}
	}
	return true
}

// decodeModifiers decodes the 1-based wire modifier value into a bitmask.
// A colon-suffixed event-type field ("<mods>:<event>") is tolerated and
// ignored, and values carrying the event-type offset are collapsed onto
// the press encoding.
func decodeModifiers(field string) (int, bool) {
	modStr, _ := cutByte(field, ':')
	v, err := strconv.Atoi(modStr)
	if err != nil {
		return 0, false
	}
	if v >= eventTypeOffset {
		v -= eventTypeOffset
	}
	v-- // wire value is modifiers+1
	if v < 0 {
		return 0, false
	}
	return v, true
}

// applyModifiers sets the modifier flags on ev from the decoded bitmask.
func applyModifiers(ev *Event, mods int) {
	if mods&modShift != 0 {
		ev.Shift = true
	}
	if mods&modAlt != 0 {
		ev.Meta = true
	}
	if mods&modCtrl != 0 {
		ev.Ctrl = true
	}
}

// isParamByte reports whether b may appear between the CSI introducer and
// the terminator: digits, ';' parameter separators, and ':' sub-parameter
// separators.
func isParamByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == ';' || b == ':'
}

// cutByte splits s on the first occurrence of sep.
func cutByte(s string, sep byte) (string, string) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:]
		}
	}
	return s, ""
}
