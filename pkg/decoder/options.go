// ABOUTME: Options for the Dispatcher: protocol constants, timeouts, heuristic thresholds, collaborators.
// ABOUTME: Protocol constants are fixed; timing thresholds are tunable configuration.

package decoder

import (
	"log/slog"
	"time"
)

// Fixed framing sequences. These must match the host terminal bit-for-bit
// and are deliberately not part of Options.
const (
	pasteStartMarker = "\x1b[200~"
	pasteEndMarker   = "\x1b[201~"
	focusInSeq       = "\x1b[I"
	focusOutSeq      = "\x1b[O"
)

// Default timing and threshold values. The escape timeout bounds how long
// an ambiguous prefix may wait for continuation bytes; the debounce values
// decide when an accumulated heuristic buffer is considered complete. The
// heuristic thresholds are probabilistic trade-offs, not protocol values.
const (
	DefaultEscapeTimeout    = 50 * time.Millisecond
	DefaultMaxEscapeBuffer  = 1024
	DefaultPasteDebounce    = 100 * time.Millisecond
	DefaultPasteQuietPeriod = 50 * time.Millisecond
	DefaultPasteMinLength   = 8
	DefaultPasteCRMinLength = 3
	DefaultDragDebounce     = 150 * time.Millisecond
	DefaultBackslashWindow  = 500 * time.Millisecond
)

// OverflowFunc is notified when the escape-sequence buffer is discarded for
// exceeding MaxEscapeBuffer. It is telemetry only; it must not feed back
// into decoding.
type OverflowFunc func(length int, content string)

// Options configures a Dispatcher. The zero value is usable: every duration
// and threshold falls back to its default, heuristics stay disabled, and
// logging is off.
type Options struct {
	// EscapeTimeout bounds the wait for continuation bytes of an ambiguous
	// escape-sequence prefix. Ordinary keystrokes never wait.
	EscapeTimeout time.Duration

	// MaxEscapeBuffer is the maximum escape-buffer length before the buffer
	// is emitted verbatim and Overflow is notified.
	MaxEscapeBuffer int

	// PasteHeuristic enables the unmarked-paste fallback used on platforms
	// where bracketed-paste markers are unreliable (chiefly Windows
	// transports). Raw chunks that look paste-like accumulate under
	// PasteDebounce instead of being decoded per key.
	PasteHeuristic bool

	// PasteDebounce is the quiet period after which an accumulated
	// heuristic paste buffer is emitted as one paste event.
	PasteDebounce time.Duration

	// PasteQuietPeriod is the maximum gap between chunks for a follow-up
	// chunk to be considered part of an ongoing unmarked paste.
	PasteQuietPeriod time.Duration

	// PasteMinLength is the chunk length above which a raw chunk is
	// classified paste-like on its own.
	PasteMinLength int

	// PasteCRMinLength is the length threshold for chunks containing a
	// carriage return to be classified paste-like.
	PasteCRMinLength int

	// DragHeuristic enables the file-drag quote heuristic: a quote
	// character opens an accumulation window flushed as one paste event
	// after DragDebounce. A user literally typing a quote pays the
	// debounce delay; that false positive is inherent to the heuristic.
	DragHeuristic bool

	// DragDebounce is the idle window that ends a drag accumulation.
	DragDebounce time.Duration

	// BackslashWindow is how long a lone backslash waits for a Return
	// before being emitted verbatim.
	BackslashWindow time.Duration

	// AltDecompose extends the fixed Option-key remap table with NFD
	// decomposition of precomposed letters. See keys.MetaLetter.
	AltDecompose bool

	// Overflow is the telemetry collaborator for escape-buffer overflow.
	Overflow OverflowFunc

	// Logger receives structured records of buffer transitions. It never
	// alters decoding behavior. Nil disables debug logging.
	Logger *slog.Logger
}

// withDefaults fills unset fields with their default values.
func (o Options) withDefaults() Options {
	if o.EscapeTimeout <= 0 {
		o.EscapeTimeout = DefaultEscapeTimeout
	}
	if o.MaxEscapeBuffer <= 0 {
		o.MaxEscapeBuffer = DefaultMaxEscapeBuffer
	}
	if o.PasteDebounce <= 0 {
		o.PasteDebounce = DefaultPasteDebounce
	}
	if o.PasteQuietPeriod <= 0 {
		o.PasteQuietPeriod = DefaultPasteQuietPeriod
	}
	if o.PasteMinLength <= 0 {
		o.PasteMinLength = DefaultPasteMinLength
	}
	if o.PasteCRMinLength <= 0 {
		o.PasteCRMinLength = DefaultPasteCRMinLength
	}
	if o.DragDebounce <= 0 {
		o.DragDebounce = DefaultDragDebounce
	}
	if o.BackslashWindow <= 0 {
		o.BackslashWindow = DefaultBackslashWindow
	}
	return o
}
