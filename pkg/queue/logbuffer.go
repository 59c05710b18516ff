package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// maxCapturedLogBytes caps the per-run captured log so a chatty pass
// cannot bloat the run row. Lines past the cap are dropped.
const maxCapturedLogBytes = 256 * 1024

// logBuffer accumulates formatted log lines for one executor pass.
// All handlers derived from the same capture share one buffer so the
// whole pass flushes as a single document.
type logBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *logBuffer) append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.buf.Len()+len(line) <= maxCapturedLogBytes {
		b.buf.WriteString(line)
	}
}

func (b *logBuffer) flush() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.buf.String()
	b.buf.Reset()
	return out
}

// logCapture is a slog.Handler that tees records to an inner handler
// and keeps a plain-text copy for flushing onto the run record.
type logCapture struct {
	inner  slog.Handler
	attrs  []slog.Attr
	buffer *logBuffer
}

func newLogCapture(inner slog.Handler) *logCapture {
	return &logCapture{inner: inner, buffer: &logBuffer{}}
}

func (c *logCapture) Enabled(ctx context.Context, level slog.Level) bool {
	return c.inner.Enabled(ctx, level)
}

func (c *logCapture) Handle(ctx context.Context, r slog.Record) error {
	var line strings.Builder
	line.WriteString(r.Time.Format(time.RFC3339))
	line.WriteString(" ")
	line.WriteString(r.Level.String())
	line.WriteString(" ")
	line.WriteString(r.Message)
	for _, a := range c.attrs {
		fmt.Fprintf(&line, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&line, " %s=%v", a.Key, a.Value)
		return true
	})
	line.WriteString("\n")
	c.buffer.append(line.String())

	return c.inner.Handle(ctx, r)
}

func (c *logCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	merged = append(merged, c.attrs...)
	merged = append(merged, attrs...)
	return &logCapture{inner: c.inner.WithAttrs(attrs), attrs: merged, buffer: c.buffer}
}

func (c *logCapture) WithGroup(name string) slog.Handler {
	return &logCapture{inner: c.inner.WithGroup(name), attrs: c.attrs, buffer: c.buffer}
}

// Flush returns the captured text and resets the shared buffer.
func (c *logCapture) Flush() string {
	return c.buffer.flush()
}
