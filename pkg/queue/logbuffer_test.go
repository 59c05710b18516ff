package queue

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardCapture() *logCapture {
	return newLogCapture(slog.NewTextHandler(io.Discard, nil))
}

func TestLogCaptureBuffersLines(t *testing.T) {
	capture := discardCapture()
	log := slog.New(capture)

	log.Info("claimed", "cr_id", "cr-1")
	log.Warn("heartbeat failed", "error", "timeout")

	out := capture.Flush()
	assert.Contains(t, out, "INFO claimed cr_id=cr-1")
	assert.Contains(t, out, "WARN heartbeat failed error=timeout")

	// Flush resets the buffer.
	assert.Empty(t, capture.Flush())
}

func TestLogCaptureSharesBufferAcrossWith(t *testing.T) {
	capture := discardCapture()
	log := slog.New(capture).With("cr_id", "cr-2")

	log.Info("started")
	log.WithGroup("git").Info("pushed")

	out := capture.Flush()
	assert.Contains(t, out, "started cr_id=cr-2")
	assert.Contains(t, out, "pushed")
}

func TestLogCaptureCapsSize(t *testing.T) {
	capture := discardCapture()
	log := slog.New(capture)

	big := strings.Repeat("x", 64*1024)
	for i := 0; i < 10; i++ {
		log.Info(big)
	}

	out := capture.Flush()
	assert.LessOrEqual(t, len(out), maxCapturedLogBytes)
	// The earliest lines are kept; later ones are dropped.
	assert.Contains(t, out, "INFO")
}
