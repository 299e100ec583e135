// ABOUTME: Tests for the fuzzy matching wrapper
// ABOUTME: Verifies match ranking and filtering behavior

package fuzzy

import "testing"

func TestFind_BasicMatch(t *testing.T) {
	t.Parallel()

	items := []string{"pageup", "pagedown", "home", "end"}
	matches := Find("page", items)

	if len(matches) < 2 {
		t.Fatalf("expected at least 2 matches for 'page', got %d", len(matches))
	}
	for _, m := range matches[:2] {
		if m.Str != "pageup" && m.Str != "pagedown" {
			t.Errorf("unexpected top match %q", m.Str)
		}
	}
}

func TestFind_NoMatch(t *testing.T) {
	t.Parallel()

	items := []string{"up", "down", "left"}
	matches := Find("zzz", items)

	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestBest(t *testing.T) {
	t.Parallel()

	items := []string{"backspace", "backtab", "escape"}
	m, ok := Best("bksp", items)
	if !ok {
		t.Fatal("expected a match for 'bksp'")
	}
	if m.Str != "backspace" {
		t.Errorf("Best = %q, want backspace", m.Str)
	}

	if _, ok := Best("qqq", items); ok {
		t.Error("expected no match for 'qqq'")
	}
}
