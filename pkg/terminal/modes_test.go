// ABOUTME: Tests for reporting-mode enable/disable sequences and ordering.

package terminal

import "testing"

func TestEnableReporting(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if err := EnableReporting(vt); err != nil {
		t.Fatalf("EnableReporting: %v", err)
	}

	want := "\x1b[?2004h\x1b[?1004h\x1b[>1u"
	if got := vt.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}

func TestDisableReporting_ReverseOrder(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if err := DisableReporting(vt); err != nil {
		t.Fatalf("DisableReporting: %v", err)
	}

	// Kitty pop must come first so the pop targets our push, then focus
	// and bracketed paste come off in reverse of how they went on.
	want := "\x1b[<u\x1b[?1004l\x1b[?2004l"
	if got := vt.Output(); got != want {
		t.Errorf("Output() = %q, want %q", got, want)
	}
}
