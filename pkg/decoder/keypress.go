// ABOUTME: Keypress is the low-level notification fed into the Dispatcher.
// ABOUTME: synthesize builds best-effort Keypresses from raw bytes when no base tokenizer runs.

package decoder

import "unicode/utf8"

// Keypress is a low-level key notification carrying the base tokenizer's
// best-effort decoding. Sequence is always the literal input; Name and the
// modifier flags may be empty when the tokenizer could not classify it.
type Keypress struct {
	Name     string
	Sequence string
	Ctrl     bool
	Meta     bool
	Shift    bool
}

// singleByteNames maps unambiguous single-byte inputs to key names.
var singleByteNames = map[byte]string{
	0x0d: "return",
	0x09: "tab",
	0x7f: "backspace",
	0x1b: "escape",
}

// synthesize builds a Keypress from a raw fragment on transports without a
// base tokenizer. Control bytes 0x01..0x1a become ctrl+letter; printable
// single runes carry their own name; everything else passes through with
// only Sequence set.
func synthesize(s string) Keypress {
	k := Keypress{Sequence: s}
	if len(s) == 1 {
		b := s[0]
		if name, ok := singleByteNames[b]; ok {
			k.Name = name
			return k
		}
		if b >= 0x01 && b <= 0x1a {
			k.Name = string(rune('a' + b - 1))
			k.Ctrl = true
			return k
		}
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError && r >= 0x20 {
		k.Name = s
	}
	return k
}
