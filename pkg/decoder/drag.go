// ABOUTME: Drag-heuristic accumulation: a quote character opens a window that collects
// ABOUTME: the quoted path a file-manager drop injects, flushed as one paste event.

package decoder

import (
	"time"

	"github.com/mauromedda/terminput/pkg/keys"
)

// flushDrag emits the drag buffer as one paste event and closes the window.
func (d *Dispatcher) flushDrag(reason string) {
	if !d.dragOpen {
		return
	}
	payload := d.drag.String()
	d.drag.Reset()
	d.dragOpen = false
	d.cancelDrag()
	d.logf("drag flush", "reason", reason, "len", len(payload))
	d.publish(keys.Event{Paste: true, Sequence: payload})
}

// scheduleDrag re-arms the drag idle debounce. Distinct from the paste
// debounce: a drop injects its characters in a tight burst, so the window
// is short.
func (d *Dispatcher) scheduleDrag() {
	d.dragGen++
	gen := d.dragGen
	if d.dragTimer != nil {
		d.dragTimer.Stop()
	}
	d.dragTimer = time.AfterFunc(d.opts.DragDebounce, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || gen != d.dragGen {
			return
		}
		d.flushDrag("debounce")
	})
}

// cancelDrag invalidates any pending drag timer.
func (d *Dispatcher) cancelDrag() {
	d.dragGen++
	if d.dragTimer != nil {
		d.dragTimer.Stop()
		d.dragTimer = nil
	}
}

// scheduleBackslash arms the continuation window for a lone backslash.
func (d *Dispatcher) scheduleBackslash() {
	d.bsGen++
	gen := d.bsGen
	if d.bsTimer != nil {
		d.bsTimer.Stop()
	}
	d.bsTimer = time.AfterFunc(d.opts.BackslashWindow, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || gen != d.bsGen || !d.bsWait {
			return
		}
		d.bsWait = false
		d.logf("backslash window elapsed")
		d.publish(keys.Event{Sequence: `\`})
	})
}

// cancelBackslash invalidates the continuation window without emitting.
func (d *Dispatcher) cancelBackslash() {
	d.bsWait = false
	d.bsGen++
	if d.bsTimer != nil {
		d.bsTimer.Stop()
		d.bsTimer = nil
	}
}

// flushBackslash emits a pending lone backslash verbatim. Used by the
// interrupt paths and teardown.
func (d *Dispatcher) flushBackslash() {
	if !d.bsWait {
		return
	}
	d.cancelBackslash()
	d.publish(keys.Event{Sequence: `\`})
}
