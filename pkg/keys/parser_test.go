// ABOUTME: Tests for the escape-sequence classifier: grammar priority, modifiers, consumed lengths.
// ABOUTME: Covers reverse-tab, parameterized functional, CSI-u, tilde, legacy, and prefix detection.

package keys

import "testing"

func TestParsePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		buf          string
		want         Event
		wantConsumed int
		wantOK       bool
	}{
		// Legacy reverse-tab: CSI Z
		{
			name:         "reverse tab",
			buf:          "\x1b[Z",
			want:         Event{Name: "tab", Shift: true, Sequence: "\x1b[Z"},
			wantConsumed: 3,
			wantOK:       true,
		},
		// Parameterized reverse-tab: CSI 1;<mods>Z (shift forced on)
		{
			name:         "ctrl+shift+tab",
			buf:          "\x1b[1;5Z",
			want:         Event{Name: "tab", Shift: true, Ctrl: true, Sequence: "\x1b[1;5Z", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:         "alt+shift+tab",
			buf:          "\x1b[1;3Z",
			want:         Event{Name: "tab", Shift: true, Meta: true, Sequence: "\x1b[1;3Z", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},

		// Parameterized functional: CSI 1;<mods><letter>
		{
			name:         "ctrl+up",
			buf:          "\x1b[1;5A",
			want:         Event{Name: "up", Ctrl: true, Sequence: "\x1b[1;5A", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:         "shift+right",
			buf:          "\x1b[1;2C",
			want:         Event{Name: "right", Shift: true, Sequence: "\x1b[1;2C", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:         "alt+home",
			buf:          "\x1b[1;3H",
			want:         Event{Name: "home", Meta: true, Sequence: "\x1b[1;3H", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:         "ctrl+f1",
			buf:          "\x1b[1;5P",
			want:         Event{Name: "f1", Ctrl: true, Sequence: "\x1b[1;5P", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:         "ctrl+shift+alt+down",
			buf:          "\x1b[1;8B",
			want:         Event{Name: "down", Ctrl: true, Meta: true, Shift: true, Sequence: "\x1b[1;8B", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},

		// Tilde form: CSI <code>(;<mods>)?~
		{
			name:         "delete",
			buf:          "\x1b[3~",
			want:         Event{Name: "delete", Sequence: "\x1b[3~", Protocol: "kitty"},
			wantConsumed: 4,
			wantOK:       true,
		},
		{
			name:         "insert",
			buf:          "\x1b[2~",
			want:         Event{Name: "insert", Sequence: "\x1b[2~", Protocol: "kitty"},
			wantConsumed: 4,
			wantOK:       true,
		},
		{
			name:         "shift+pagedown",
			buf:          "\x1b[6;2~",
			want:         Event{Name: "pagedown", Shift: true, Sequence: "\x1b[6;2~", Protocol: "kitty"},
			wantConsumed: 6,
			wantOK:       true,
		},
		{
			name:   "unknown tilde code",
			buf:    "\x1b[7~",
			wantOK: false,
		},
		{
			name:   "paste marker is not a key",
			buf:    "\x1b[200~",
			wantOK: false,
		},

		// CSI-u form
		{
			name:         "escape",
			buf:          "\x1b[27u",
			want:         Event{Name: "escape", Sequence: "\x1b[27u", Protocol: "kitty"},
			wantConsumed: 5,
			wantOK:       true,
		},
		{
			name:         "return",
			buf:          "\x1b[13u",
			want:         Event{Name: "return", Sequence: "\x1b[13u", Protocol: "kitty"},
			wantConsumed: 5,
			wantOK:       true,
		},
		{
			name:         "numpad return",
			buf:          "\x1b[57414u",
			want:         Event{Name: "return", Sequence: "\x1b[57414u", Protocol: "kitty"},
			wantConsumed: 8,
			wantOK:       true,
		},
		{
			name:         "shift+return",
			buf:          "\x1b[13;2u",
			want:         Event{Name: "return", Shift: true, Sequence: "\x1b[13;2u", Protocol: "kitty"},
			wantConsumed: 7,
			wantOK:       true,
		},
		{
			name:         "ctrl+a",
			buf:          "\x1b[97;5u",
			want:         Event{Name: "a", Ctrl: true, Sequence: "\x1b[97;5u", Protocol: "kitty"},
			wantConsumed: 7,
			wantOK:       true,
		},
		{
			name:         "alt+z",
			buf:          "\x1b[122;3u",
			want:         Event{Name: "z", Meta: true, Sequence: "\x1b[122;3u", Protocol: "kitty"},
			wantConsumed: 8,
			wantOK:       true,
		},
		{
			name:   "plain letter codepoint without ctrl or alt",
			buf:    "\x1b[97u",
			wantOK: false,
		},
		{
			name:   "uppercase codepoint with ctrl",
			buf:    "\x1b[65;5u",
			wantOK: false,
		},
		{
			name:         "release event type collapses onto press",
			buf:          "\x1b[13;1:3u",
			want:         Event{Name: "return", Sequence: "\x1b[13;1:3u", Protocol: "kitty"},
			wantConsumed: 9,
			wantOK:       true,
		},
		{
			name:         "event-type offset is subtracted",
			buf:          "\x1b[13;133u",
			want:         Event{Name: "return", Ctrl: true, Sequence: "\x1b[13;133u", Protocol: "kitty"},
			wantConsumed: 9,
			wantOK:       true,
		},

		// Legacy functional: CSI <letter>, no modifiers
		{
			name:         "legacy up",
			buf:          "\x1b[A",
			want:         Event{Name: "up", Sequence: "\x1b[A"},
			wantConsumed: 3,
			wantOK:       true,
		},
		{
			name:         "legacy end",
			buf:          "\x1b[F",
			want:         Event{Name: "end", Sequence: "\x1b[F"},
			wantConsumed: 3,
			wantOK:       true,
		},
		{
			name:   "bare function-key letter is not legacy",
			buf:    "\x1b[P",
			wantOK: false,
		},

		// Non-matches
		{
			name:   "empty",
			buf:    "",
			wantOK: false,
		},
		{
			name:   "lone escape",
			buf:    "\x1b",
			wantOK: false,
		},
		{
			name:   "incomplete CSI",
			buf:    "\x1b[1;5",
			wantOK: false,
		},
		{
			name:   "not an escape sequence",
			buf:    "abc",
			wantOK: false,
		},
		{
			name:   "focus-in is not a key",
			buf:    "\x1b[I",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed, ok := ParsePrefix(tt.buf)
			if ok != tt.wantOK {
				t.Fatalf("ParsePrefix(%q) ok = %v, want %v", tt.buf, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("ParsePrefix(%q) = %+v, want %+v", tt.buf, got, tt.want)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("ParsePrefix(%q) consumed = %d, want %d", tt.buf, consumed, tt.wantConsumed)
			}
		})
	}
}

func TestParsePrefix_ConsumesOnlyFirstSequence(t *testing.T) {
	t.Parallel()

	buf := "\x1b[A\x1b[B"
	got, consumed, ok := ParsePrefix(buf)
	if !ok {
		t.Fatal("expected a match")
	}
	if got.Name != "up" || consumed != 3 {
		t.Errorf("got %+v consumed %d, want up consumed 3", got, consumed)
	}

	got, consumed, ok = ParsePrefix(buf[consumed:])
	if !ok || got.Name != "down" || consumed != 3 {
		t.Errorf("second parse: got %+v consumed %d ok %v, want down 3 true", got, consumed, ok)
	}
}

func TestCouldBePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		buf  string
		want bool
	}{
		{"", true},
		{"\x1b", true},
		{"\x1b[", true},
		{"\x1b[1", true},
		{"\x1b[1;5", true},
		{"\x1b[200", true},
		{"\x1b[1:2;5", true},
		{"\x1b[A", false}, // already terminated; never extends
		{"\x1bO", false},  // SS3 is not a recognized grammar
		{"a", false},
		{"\x1b[?25", false},
	}

	for _, tt := range tests {
		if got := CouldBePrefix(tt.buf); got != tt.want {
			t.Errorf("CouldBePrefix(%q) = %v, want %v", tt.buf, got, tt.want)
		}
	}
}
