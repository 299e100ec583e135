// ABOUTME: Tests for raw-byte Keypress synthesis.

package decoder

import "testing"

func TestSynthesize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Keypress
	}{
		{"\r", Keypress{Name: "return", Sequence: "\r"}},
		{"\t", Keypress{Name: "tab", Sequence: "\t"}},
		{"\x7f", Keypress{Name: "backspace", Sequence: "\x7f"}},
		{"\x1b", Keypress{Name: "escape", Sequence: "\x1b"}},
		{"\x03", Keypress{Name: "c", Ctrl: true, Sequence: "\x03"}},
		{"\x01", Keypress{Name: "a", Ctrl: true, Sequence: "\x01"}},
		{"a", Keypress{Name: "a", Sequence: "a"}},
		{"é", Keypress{Name: "é", Sequence: "é"}},
		{"ab", Keypress{Sequence: "ab"}},
		{"\x1b[A", Keypress{Sequence: "\x1b[A"}},
	}

	for _, tt := range tests {
		if got := synthesize(tt.in); got != tt.want {
			t.Errorf("synthesize(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
