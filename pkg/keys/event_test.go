// ABOUTME: Tests for Event debug rendering.

package keys

import "testing"

func TestEventString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"named", Event{Name: "up"}, "up"},
		{"ctrl", Event{Name: "c", Ctrl: true}, "ctrl+c"},
		{"all modifiers", Event{Name: "up", Ctrl: true, Meta: true, Shift: true}, "ctrl+meta+shift+up"},
		{"paste", Event{Paste: true, Sequence: "hello"}, "paste"},
		{"raw", Event{Sequence: "\x1b[?"}, "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
