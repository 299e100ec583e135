// ABOUTME: Maps precomposed Option/Alt characters back to their base letter with meta set.
// ABOUTME: Fixed 26-entry macOS Option table, plus optional NFD decomposition fallback.

package keys

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// optionLetters is the fixed table of characters produced by Option+<letter>
// on keyboards that emit composed Unicode instead of ESC-prefixed letters.
var optionLetters = map[rune]rune{
	'å': 'a',
	'∫': 'b',
	'ç': 'c',
	'∂': 'd',
	'´': 'e',
	'ƒ': 'f',
	'©': 'g',
	'˙': 'h',
	'ˆ': 'i',
	'∆': 'j',
	'˚': 'k',
	'¬': 'l',
	'µ': 'm',
	'˜': 'n',
	'ø': 'o',
	'π': 'p',
	'œ': 'q',
	'®': 'r',
	'ß': 's',
	'†': 't',
	'¨': 'u',
	'√': 'v',
	'∑': 'w',
	'≈': 'x',
	'¥': 'y',
	'Ω': 'z',
}

// MetaLetter reports the base letter an Option/Alt chord produced r for.
//
// The fixed table is always consulted. When decompose is true, precomposed
// accented letters (e.g. "á") are additionally NFD-decomposed and their base
// letter returned; this catches more layouts but misreads accented letters
// typed deliberately, so it is off by default.
func MetaLetter(r rune, decompose bool) (rune, bool) {
	if base, ok := optionLetters[r]; ok {
		return base, true
	}
	if !decompose {
		return 0, false
	}
	d := norm.NFD.String(string(r))
	if d == string(r) {
		return 0, false
	}
	base, _ := utf8.DecodeRuneInString(d)
	if base >= 'a' && base <= 'z' {
		return base, true
	}
	return 0, false
}
