// ABOUTME: Reporting-mode toggles the decoder relies on: bracketed paste, focus, kitty keyboard.
// ABOUTME: Each is a DEC private mode or kitty stack write; disable mirrors enable in reverse.

package terminal

// Escape sequences for the input reporting modes.
const (
	bracketedPasteOn  = "\x1b[?2004h"
	bracketedPasteOff = "\x1b[?2004l"
	focusReportingOn  = "\x1b[?1004h"
	focusReportingOff = "\x1b[?1004l"
	// Push disambiguate-escape-codes onto the kitty keyboard stack; pop on exit.
	kittyKeyboardPush = "\x1b[>1u"
	kittyKeyboardPop  = "\x1b[<u"
)

// EnableReporting turns on bracketed paste, focus reporting, and the kitty
// keyboard protocol. Terminals that do not support a mode ignore the write.
func EnableReporting(t Terminal) error {
	for _, seq := range []string{bracketedPasteOn, focusReportingOn, kittyKeyboardPush} {
		if _, err := t.Write([]byte(seq)); err != nil {
			return err
		}
	}
	return nil
}

// DisableReporting undoes EnableReporting in reverse order. Call before
// exiting raw mode so the shell gets a clean terminal back.
func DisableReporting(t Terminal) error {
	for _, seq := range []string{kittyKeyboardPop, focusReportingOff, bracketedPasteOff} {
		if _, err := t.Write([]byte(seq)); err != nil {
			return err
		}
	}
	return nil
}
