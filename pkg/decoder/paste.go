// ABOUTME: Raw-chunk handling: bracketed-paste marker scanning with cross-chunk carry,
// ABOUTME: plus the unmarked-paste heuristic for transports without reliable markers.

package decoder

import (
	"strings"
	"time"

	"github.com/mauromedda/terminput/pkg/keys"
)

// FeedRaw processes a raw byte chunk from the transport. It is used on
// platforms where the base tokenizer is unreliable: paste markers are
// scanned here, and remaining text is either routed through the paste
// heuristic or synthesized into key notifications.
func (d *Dispatcher) FeedRaw(data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || len(data) == 0 {
		return
	}

	// A held-back tail from the previous chunk is re-scanned first.
	chunk := d.carry + string(data)
	d.carry = ""

	for chunk != "" {
		if d.pasteActive {
			idx := strings.Index(chunk, pasteEndMarker)
			if idx >= 0 {
				d.pasteBuf.WriteString(chunk[:idx])
				d.endPaste()
				chunk = chunk[idx+len(pasteEndMarker):]
				continue
			}
			body, tail := splitMarkerTail(chunk, pasteEndMarker)
			d.pasteBuf.WriteString(body)
			d.carry = tail
			return
		}

		idx := strings.Index(chunk, pasteStartMarker)
		if idx >= 0 {
			d.routeText(chunk[:idx])
			d.flushEscape("paste start")
			d.flushDrag("paste start")
			d.flushHeuristic("paste start")
			d.beginPaste()
			chunk = chunk[idx+len(pasteStartMarker):]
			continue
		}

		body, tail := splitMarkerTail(chunk, pasteStartMarker)
		d.carry = tail
		d.routeText(body)
		return
	}
}

// splitMarkerTail splits chunk so that any trailing bytes which could be
// the unterminated prefix of marker are held back. The lookback is bounded
// by the marker length.
func splitMarkerTail(chunk, marker string) (body, tail string) {
	maxTail := len(marker) - 1
	if maxTail > len(chunk) {
		maxTail = len(chunk)
	}
	for n := maxTail; n > 0; n-- {
		suffix := chunk[len(chunk)-n:]
		if strings.HasPrefix(marker, suffix) {
			return chunk[:len(chunk)-n], suffix
		}
	}
	return chunk, ""
}

// routeText forwards marker-free text onward: through the paste heuristic
// when enabled, otherwise split into fragments at escape boundaries and run
// through the normal pipeline.
// Must be called with d.mu held.
func (d *Dispatcher) routeText(text string) {
	if text == "" {
		return
	}
	if d.opts.PasteHeuristic {
		d.heuristicRoute(text)
		return
	}
	d.feedRawText(text)
}

// feedRawText synthesizes notifications from raw text. Text before an ESC
// is one fragment; the ESC-initiated remainder is another, so escape
// accumulation sees sequences with their introducer first.
func (d *Dispatcher) feedRawText(text string) {
	for text != "" {
		i := strings.IndexByte(text, 0x1b)
		switch {
		case i > 0:
			d.feedLocked(synthesize(text[:i]))
			text = text[i:]
		case i == 0:
			d.feedLocked(synthesize(text))
			text = ""
		default:
			d.feedLocked(synthesize(text))
			text = ""
		}
	}
}

// heuristicRoute classifies a raw chunk as paste-like or ordinary input.
//
// Paste-like: not a recognized special key, and either longer than
// PasteMinLength, or arriving within PasteQuietPeriod of an active
// heuristic accumulation, or containing a carriage return while exceeding
// PasteCRMinLength. Paste-like chunks accumulate under a debounce timer; a
// special key flushes the accumulation first so emission order is kept.
func (d *Dispatcher) heuristicRoute(text string) {
	if isSpecialChunk(text) {
		if d.heurBuf.Len() > 0 {
			d.flushHeuristic("special key")
		}
		d.feedRawText(text)
		return
	}

	now := time.Now()
	pasteLike := len(text) > d.opts.PasteMinLength ||
		(d.heurBuf.Len() > 0 && now.Sub(d.heurLast) < d.opts.PasteQuietPeriod) ||
		(strings.Contains(text, "\r") && len(text) > d.opts.PasteCRMinLength)

	if !pasteLike {
		d.feedRawText(text)
		return
	}

	d.heurBuf.WriteString(text)
	d.heurLast = now
	d.scheduleHeuristic()
}

// flushHeuristic emits the heuristic buffer as one paste event.
func (d *Dispatcher) flushHeuristic(reason string) {
	if d.heurBuf.Len() == 0 {
		return
	}
	payload := d.heurBuf.String()
	d.heurBuf.Reset()
	d.cancelHeuristic()
	d.logf("heuristic paste flush", "reason", reason, "len", len(payload))
	d.publish(keys.Event{Paste: true, Sequence: payload})
}

// scheduleHeuristic re-arms the paste debounce timer.
func (d *Dispatcher) scheduleHeuristic() {
	d.heurGen++
	gen := d.heurGen
	if d.heurTimer != nil {
		d.heurTimer.Stop()
	}
	d.heurTimer = time.AfterFunc(d.opts.PasteDebounce, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed || gen != d.heurGen {
			return
		}
		d.flushHeuristic("debounce")
	})
}

// cancelHeuristic invalidates any pending debounce timer.
func (d *Dispatcher) cancelHeuristic() {
	d.heurGen++
	if d.heurTimer != nil {
		d.heurTimer.Stop()
		d.heurTimer = nil
	}
}

// isSpecialChunk reports whether a chunk is a single recognized special
// key: a control byte, a lone ESC, or one complete escape sequence.
func isSpecialChunk(s string) bool {
	if len(s) == 1 {
		return s[0] < 0x20 || s[0] == 0x7f
	}
	if s[0] != 0x1b {
		return false
	}
	if _, n, ok := keys.ParsePrefix(s); ok && n == len(s) {
		return true
	}
	return false
}
