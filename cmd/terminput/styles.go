// ABOUTME: Event formatting for the inspector: lipgloss-styled columns with width-aware padding.
// ABOUTME: One event renders to one line: kind badge, chord name, protocol tag, hex bytes.

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/terminput/pkg/keys"
	"github.com/mauromedda/terminput/pkg/width"
)

var (
	keyBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	pasteBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("5")) // magenta
	rawBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	nameStyle  = lipgloss.NewStyle().Bold(true)
	protoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
	dimStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
)

const (
	badgeCol = 8
	nameCol  = 22
	protoCol = 8
)

// banner is the inspector's opening line.
func banner() string {
	return titleStyle.Render("terminput") +
		dimStyle.Render("  press keys to inspect; ctrl+d or double ctrl+c to quit")
}

// formatResize renders a terminal-resize notice.
func formatResize(w, h int) string {
	return dimStyle.Render(fmt.Sprintf("resize %dx%d", w, h))
}

// formatEvent renders one decoded event as a display line.
func formatEvent(ev keys.Event) string {
	var badge, name string
	switch {
	case ev.Paste:
		badge = pasteBadge.Render("paste")
		name = fmt.Sprintf("%d bytes", len(ev.Sequence))
	case ev.Name == "paste-start":
		badge = pasteBadge.Render("paste")
		name = "start"
	case ev.Name != "":
		badge = keyBadge.Render("key")
		name = nameStyle.Render(ev.String())
	default:
		badge = rawBadge.Render("raw")
		name = nameStyle.Render(printable(ev.Sequence))
	}

	proto := ""
	if ev.Protocol != "" {
		proto = protoStyle.Render(ev.Protocol)
	}

	return width.Pad(badge, badgeCol) +
		width.Pad(name, nameCol) +
		width.Pad(proto, protoCol) +
		dimStyle.Render(hexBytes(ev.Sequence))
}

// hexBytes renders a byte string as space-separated hex pairs, truncated
// for long paste payloads.
func hexBytes(s string) string {
	const maxBytes = 24
	truncated := false
	if len(s) > maxBytes {
		s = s[:maxBytes]
		truncated = true
	}
	parts := make([]string, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		parts = append(parts, fmt.Sprintf("%02x", s[i]))
	}
	if truncated {
		parts = append(parts, "…")
	}
	return strings.Join(parts, " ")
}

// printable makes a raw sequence safe to show on the inspector line.
func printable(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == 0x1b:
			b.WriteString("^[")
		case c < 0x20:
			b.WriteString(fmt.Sprintf("^%c", c+'@'))
		case c == 0x7f:
			b.WriteString("^?")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
