// ABOUTME: Escape-sequence accumulation: peel-and-continue classification, bounded-wait timeout, overflow.
// ABOUTME: Ambiguous prefixes wait at most EscapeTimeout; dead ends are emitted verbatim immediately.

package decoder

import (
	"strings"
	"time"

	"github.com/mauromedda/terminput/pkg/keys"
)

// processEscape drives repeated classification of the escape buffer.
// Must be called with d.mu held.
//
// Each iteration either peels one complete sequence off the front, drops
// garbage preceding a later ESC, parks the buffer behind the bounded-wait
// timer, or emits a dead-end buffer verbatim.
func (d *Dispatcher) processEscape() {
	if len(d.escape) > d.opts.MaxEscapeBuffer {
		d.overflowEscape()
		return
	}

	for d.escape != "" {
		if ev, n, ok := keys.ParsePrefix(d.escape); ok {
			d.escape = d.escape[n:]
			d.publish(ev)
			continue
		}

		// A later ESC means the prefix is garbage that can never parse;
		// drop it so it cannot block the sequence behind it.
		if i := strings.Index(d.escape[1:], keys.ESC); i >= 0 {
			d.logf("escape garbage dropped", "len", i+1)
			d.escape = d.escape[i+1:]
			continue
		}

		if keys.CouldBePrefix(d.escape) {
			// Still ambiguous: wait for continuation bytes, bounded by
			// the escape timeout. Reschedule replaces any prior timer.
			d.scheduleEscape()
			return
		}

		// Dead end: cannot become valid no matter what arrives. Emit
		// verbatim in the same turn; no timer, no added latency.
		d.emitEscapeVerbatim()
	}

	d.cancelEscape()
}

// emitEscapeVerbatim emits the buffer as a raw unnamed event and clears it.
func (d *Dispatcher) emitEscapeVerbatim() {
	buf := d.escape
	d.escape = ""
	d.cancelEscape()
	d.publish(keys.Event{Sequence: buf})
}

// flushEscape force-emits a pending escape buffer verbatim. Used by the
// interrupt paths (Ctrl+C, focus sequences) and teardown so nothing is
// reordered behind a pending timeout.
func (d *Dispatcher) flushEscape(reason string) {
	if d.escape == "" {
		return
	}
	d.logf("escape flush", "reason", reason, "len", len(d.escape))
	d.emitEscapeVerbatim()
}

// overflowEscape discards an oversized buffer: telemetry is notified and
// the content is emitted verbatim so no input is lost.
func (d *Dispatcher) overflowEscape() {
	buf := d.escape
	d.logf("escape overflow", "len", len(buf))
	if d.opts.Overflow != nil {
		d.opts.Overflow(len(buf), buf)
	}
	d.emitEscapeVerbatim()
}

// scheduleEscape arms (or re-arms) the bounded-wait timer for the current
// buffer. The generation counter invalidates callbacks from replaced
// timers.
func (d *Dispatcher) scheduleEscape() {
	d.escGen++
	gen := d.escGen
	if d.escTimer != nil {
		d.escTimer.Stop()
	}
	d.escTimer = time.AfterFunc(d.opts.EscapeTimeout, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || gen != d.escGen || d.escape == "" {
			return
		}
		d.logf("escape timeout", "len", len(d.escape))
		d.emitEscapeVerbatim()
	})
}

// cancelEscape invalidates any pending escape timer.
func (d *Dispatcher) cancelEscape() {
	d.escGen++
	if d.escTimer != nil {
		d.escTimer.Stop()
		d.escTimer = nil
	}
}
