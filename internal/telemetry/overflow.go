// ABOUTME: Tracker accumulates escape-buffer overflow notifications for diagnostics.
// ABOUTME: Keeps counts, byte totals, and a bounded ring of recent samples; concurrency-safe.

package telemetry

import "sync"

// maxSamples bounds how many recent overflow contents are retained.
const maxSamples = 8

// samplePreviewLen bounds how much of each overflowing buffer is kept.
const samplePreviewLen = 64

// Sample is one retained overflow occurrence.
type Sample struct {
	Length  int
	Preview string // first bytes of the discarded buffer
}

// Summary is a point-in-time snapshot of overflow accounting.
type Summary struct {
	Count      int
	TotalBytes int
	MaxLength  int
	Samples    []Sample
}

// Tracker accumulates overflow notifications from the decoder. It is the
// telemetry collaborator only; it never feeds back into decoding.
type Tracker struct {
	mu      sync.Mutex
	count   int
	total   int
	maxLen  int
	samples []Sample
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record notes one discarded escape buffer. It matches the decoder's
// OverflowFunc signature.
func (t *Tracker) Record(length int, content string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	t.total += length
	if length > t.maxLen {
		t.maxLen = length
	}

	preview := content
	if len(preview) > samplePreviewLen {
		preview = preview[:samplePreviewLen]
	}
	t.samples = append(t.samples, Sample{Length: length, Preview: preview})
	if len(t.samples) > maxSamples {
		t.samples = t.samples[len(t.samples)-maxSamples:]
	}
}

// Summary returns a snapshot of the accumulated state.
func (t *Tracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	samples := make([]Sample, len(t.samples))
	copy(samples, t.samples)
	return Summary{
		Count:      t.count,
		TotalBytes: t.total,
		MaxLength:  t.maxLen,
		Samples:    samples,
	}
}

// Reset clears all accumulated state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count = 0
	t.total = 0
	t.maxLen = 0
	t.samples = nil
}
