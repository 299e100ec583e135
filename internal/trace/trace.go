// ABOUTME: slog.Handler writing one compact JSON record per line via easyjson's jwriter.
// ABOUTME: Built for the per-keystroke debug trace: zero-reflection encoding, no allocation churn.

package trace

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mailru/easyjson/jwriter"
)

// Handler is a minimal JSONL slog handler for high-rate decoder traces.
// Groups are flattened; attribute keys are emitted as-is.
type Handler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewHandler creates a Handler writing JSON lines to out at the given
// minimum level.
func NewHandler(out io.Writer, level slog.Level) *Handler {
	return &Handler{
		mu:    &sync.Mutex{},
		out:   out,
		level: level,
	}
}

// Enabled reports whether records at level are emitted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle encodes one record as a single JSON line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	w := &jwriter.Writer{}
	w.RawByte('{')

	w.String("ts")
	w.RawByte(':')
	w.String(r.Time.Format(time.RFC3339Nano))

	w.RawString(`,"level":`)
	w.String(r.Level.String())

	w.RawString(`,"msg":`)
	w.String(r.Message)

	for _, a := range h.attrs {
		appendAttr(w, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(w, a)
		return true
	})

	w.RawByte('}')
	w.RawByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := w.DumpTo(h.out)
	return err
}

// WithAttrs returns a handler that prepends attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{
		mu:    h.mu,
		out:   h.out,
		level: h.level,
		attrs: merged,
	}
}

// WithGroup flattens groups: the group name is dropped and the grouped
// attributes are emitted at the top level.
func (h *Handler) WithGroup(string) slog.Handler {
	return h
}

// appendAttr writes one key/value pair without reflection for the common
// scalar kinds.
func appendAttr(w *jwriter.Writer, a slog.Attr) {
	w.RawByte(',')
	w.String(a.Key)
	w.RawByte(':')

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		w.String(v.String())
	case slog.KindInt64:
		w.Int64(v.Int64())
	case slog.KindUint64:
		w.Uint64(v.Uint64())
	case slog.KindBool:
		w.Bool(v.Bool())
	case slog.KindFloat64:
		w.Float64(v.Float64())
	case slog.KindDuration:
		w.String(v.Duration().String())
	case slog.KindTime:
		w.String(v.Time().Format(time.RFC3339Nano))
	default:
		w.String(v.String())
	}
}
