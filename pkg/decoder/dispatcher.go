// ABOUTME: Dispatcher routes key notifications through the decoding pipeline and fans out events.
// ABOUTME: Owns all accumulation buffers and their timers; all mutation is serialized under one mutex.

package decoder

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mauromedda/terminput/internal/eventbus"
	"github.com/mauromedda/terminput/pkg/keys"
)

// Dispatcher decodes a stream of low-level key notifications and raw byte
// chunks into semantic key events. One Dispatcher owns its buffers and
// timers exclusively for the lifetime of one terminal session.
//
// Processing order per incoming unit: pending-backslash resolution,
// focus-sequence interrupt, paste markers, active-paste accumulation,
// drag heuristic, alt-key remap, Ctrl+C interrupt, backslash
// continuation, escape-sequence accumulation, default passthrough.
//
// Every entry point and every timer callback serializes on an internal
// mutex, so buffer mutation is single-threaded. Subscribers are invoked
// synchronously from that context and must not call back into the
// Dispatcher.
type Dispatcher struct {
	mu   sync.Mutex
	opts Options
	bus  *eventbus.Bus[keys.Event]

	// Escape-sequence buffer and its bounded-wait timer.
	escape   string
	escTimer *time.Timer
	escGen   int

	// Bracketed-paste payload.
	pasteActive bool
	pasteBuf    strings.Builder

	// Cross-chunk tail that may be an unterminated marker prefix.
	carry string

	// Platform paste-heuristic buffer (unmarked-paste fallback).
	heurBuf   strings.Builder
	heurLast  time.Time
	heurTimer *time.Timer
	heurGen   int

	// Drag-heuristic buffer.
	drag      strings.Builder
	dragOpen  bool
	dragTimer *time.Timer
	dragGen   int

	// Backslash-continuation window.
	bsWait  bool
	bsTimer *time.Timer
	bsGen   int

	closed bool
}

// New creates a Dispatcher with the given options.
func New(opts Options) *Dispatcher {
	return &Dispatcher{
		opts: opts.withDefaults(),
		bus:  eventbus.New[keys.Event](),
	}
}

// Subscribe registers a handler for decoded events and returns an
// unsubscribe function. Handlers run synchronously in emission order and
// must not call back into the Dispatcher.
func (d *Dispatcher) Subscribe(fn func(keys.Event)) func() {
	return d.bus.Subscribe(fn)
}

// Feed processes one low-level key notification.
func (d *Dispatcher) Feed(k Keypress) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.feedLocked(k)
}

// feedLocked runs the decoding pipeline for one notification.
// Must be called with d.mu held.
func (d *Dispatcher) feedLocked(k Keypress) {
	seq := k.Sequence

	// A pending backslash resolves on the very next input: Return
	// completes the continuation, anything else emits the backslash
	// first. Resolving here, ahead of every other stage, keeps the
	// backslash from being reordered behind later-arriving input.
	if d.bsWait {
		d.cancelBackslash()
		if k.Name == "return" || seq == "\r" {
			d.publish(keys.Event{Name: "return", Shift: true, Sequence: "\r"})
			return
		}
		d.publish(keys.Event{Sequence: `\`})
		// The interrupting input is processed normally below.
	}

	// Focus framing is an unconditional interrupt: flush any pending
	// escape buffer before swallowing the sequence itself.
	if seq == focusInSeq || seq == focusOutSeq {
		d.flushEscape("focus interrupt")
		d.logf("focus sequence swallowed", "seq", seq)
		return
	}

	// Bracketed-paste markers delivered as whole notifications. A start
	// marker interrupts every open accumulation; each buffer is flushed
	// before the paste opens so earlier-arrived input is emitted first.
	if seq == pasteStartMarker {
		d.flushEscape("paste start")
		d.flushDrag("paste start")
		d.flushHeuristic("paste start")
		d.beginPaste()
		return
	}
	if seq == pasteEndMarker {
		if !d.pasteActive {
			// Unmatched end marker: not consumed framing, so emit it.
			d.flushEscape("stray paste end")
			d.publish(keys.Event{Sequence: seq})
			return
		}
		d.endPaste()
		return
	}

	// Everything between the markers is payload, never decoded.
	if d.pasteActive {
		d.pasteBuf.WriteString(seq)
		return
	}

	// Drag heuristic: accumulate printable input after a quote.
	if d.dragOpen {
		if isDragText(k) {
			d.drag.WriteString(seq)
			d.scheduleDrag()
			return
		}
		// A named or control key ends the window; preserve order by
		// flushing before the key is processed.
		d.flushDrag("interrupted by key")
	} else if d.opts.DragHeuristic && (seq == `"` || seq == `'`) && !d.accumulating() {
		d.dragOpen = true
		d.drag.WriteString(seq)
		d.scheduleDrag()
		return
	}

	// Alt-key remap for keyboards that emit composed Unicode for
	// Option+letter.
	if d.escape == "" && !k.Ctrl && !k.Meta {
		if r, size := utf8.DecodeRuneInString(seq); size == len(seq) && size > 1 {
			if base, ok := keys.MetaLetter(r, d.opts.AltDecompose); ok {
				d.publish(keys.Event{Name: string(base), Meta: true, Sequence: seq})
				return
			}
		}
	}

	// Ctrl+C is an unconditional interrupt: the pending escape buffer is
	// flushed first so nothing is reordered behind it. Any pending
	// backslash was already resolved at the top of the pipeline.
	if k.Ctrl && k.Name == "c" {
		d.flushEscape("ctrl+c interrupt")
		d.publish(keys.Event{Name: "c", Ctrl: true, Sequence: seq})
		return
	}

	// Backslash continuation: a lone backslash waits briefly for Return.
	if seq == `\` && !k.Ctrl && !k.Meta && d.escape == "" {
		d.bsWait = true
		d.scheduleBackslash()
		return
	}

	// Escape-sequence accumulation.
	if d.escape != "" || strings.HasPrefix(seq, keys.ESC) {
		d.escape += seq
		d.processEscape()
		return
	}

	// Default passthrough.
	d.publish(keys.Event{
		Name:     k.Name,
		Ctrl:     k.Ctrl,
		Meta:     k.Meta,
		Shift:    k.Shift,
		Sequence: seq,
	})
}

// Close cancels all timers and flushes every non-empty buffer exactly once,
// in this order: escape buffer (verbatim), pending backslash, drag buffer
// (paste), heuristic buffer (paste), paste payload (paste), cross-chunk
// carry (verbatim). Safe to call multiple times.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.flushEscape("teardown")
	d.flushBackslash()
	if d.dragOpen {
		d.flushDrag("teardown")
	}
	if d.heurBuf.Len() > 0 {
		d.flushHeuristic("teardown")
	}
	if d.pasteActive {
		d.endPaste()
	}
	if d.carry != "" {
		d.publish(keys.Event{Sequence: d.carry})
		d.carry = ""
	}

	d.cancelEscape()
	d.cancelBackslash()
	d.cancelDrag()
	d.cancelHeuristic()
	d.closed = true
}

// accumulating reports whether any pending accumulation is active.
// The drag heuristic must not trigger inside one.
func (d *Dispatcher) accumulating() bool {
	return d.escape != "" || d.pasteActive || d.heurBuf.Len() > 0 ||
		d.dragOpen || d.bsWait
}

// beginPaste opens bracketed-paste accumulation and announces it.
// The start marker itself is consumed framing, so the event carries no
// sequence text.
func (d *Dispatcher) beginPaste() {
	d.pasteActive = true
	d.pasteBuf.Reset()
	d.logf("paste start")
	d.publish(keys.Event{Name: "paste-start"})
}

// endPaste emits the accumulated payload as a single paste event.
func (d *Dispatcher) endPaste() {
	if !d.pasteActive {
		return
	}
	payload := d.pasteBuf.String()
	d.pasteActive = false
	d.pasteBuf.Reset()
	d.logf("paste end", "len", len(payload))
	d.publish(keys.Event{Paste: true, Sequence: payload})
}

// publish logs and fans out one finished event.
func (d *Dispatcher) publish(ev keys.Event) {
	if d.opts.Logger != nil {
		d.opts.Logger.Debug("emit",
			"name", ev.Name,
			"ctrl", ev.Ctrl,
			"meta", ev.Meta,
			"shift", ev.Shift,
			"paste", ev.Paste,
			"len", len(ev.Sequence),
			"protocol", ev.Protocol,
		)
	}
	d.bus.Publish(ev)
}

// logf writes a structured debug record. Logging never feeds back into
// decoding.
func (d *Dispatcher) logf(msg string, args ...any) {
	if d.opts.Logger != nil {
		d.opts.Logger.Debug(msg, args...)
	}
}

// isDragText reports whether a notification extends a drag accumulation:
// printable text with no modifiers, as produced by a file manager
// injecting a quoted path.
func isDragText(k Keypress) bool {
	if k.Ctrl || k.Meta || k.Sequence == "" {
		return false
	}
	b := k.Sequence[0]
	return b >= 0x20 && b != 0x7f
}
