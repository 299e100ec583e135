// ABOUTME: Tests for the overflow tracker: accounting, sample ring bounds, reset, concurrency.

package telemetry

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestTracker_Record(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Record(100, strings.Repeat("x", 100))
	tr.Record(40, strings.Repeat("y", 40))

	s := tr.Summary()
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.TotalBytes != 140 {
		t.Errorf("TotalBytes = %d, want 140", s.TotalBytes)
	}
	if s.MaxLength != 100 {
		t.Errorf("MaxLength = %d, want 100", s.MaxLength)
	}
	if len(s.Samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(s.Samples))
	}
	if len(s.Samples[0].Preview) != samplePreviewLen {
		t.Errorf("preview length = %d, want %d", len(s.Samples[0].Preview), samplePreviewLen)
	}
	if s.Samples[1].Preview != strings.Repeat("y", 40) {
		t.Error("short content must be retained whole")
	}
}

func TestTracker_SampleRingBounded(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	for i := 0; i < maxSamples+5; i++ {
		tr.Record(i+1, fmt.Sprintf("buf-%d", i))
	}

	s := tr.Summary()
	if len(s.Samples) != maxSamples {
		t.Fatalf("got %d samples, want %d", len(s.Samples), maxSamples)
	}
	// Oldest entries are evicted first.
	if s.Samples[0].Preview != "buf-5" {
		t.Errorf("oldest retained sample = %q, want buf-5", s.Samples[0].Preview)
	}
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	tr.Record(10, "xxxxxxxxxx")
	tr.Reset()

	s := tr.Summary()
	if s.Count != 0 || s.TotalBytes != 0 || s.MaxLength != 0 || len(s.Samples) != 0 {
		t.Errorf("Summary after reset = %+v, want zero", s)
	}
}

func TestTracker_Concurrent(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record(1, "x")
			}
		}()
	}
	wg.Wait()

	if s := tr.Summary(); s.Count != 1000 {
		t.Errorf("Count = %d, want 1000", s.Count)
	}
}
