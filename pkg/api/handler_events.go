package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// eventStreamHandler handles GET /api/events/stream. It delivers a
// CR's event stream as Server-Sent Events: replay from the last seen
// sequence id, then live until a stream-terminal event.
//
// The client resumes with either the standard Last-Event-ID header or
// the last_seen_id query parameter (the header wins).
func (s *Server) eventStreamHandler(c *gin.Context) {
	if s.streamer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	crID := c.Query("cr_id")
	if crID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cr_id is required"})
		return
	}
	if _, err := s.runs.GetRun(c.Request.Context(), crID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	var lastSeen int64
	if v := c.Query("last_seen_id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last_seen_id must be a non-negative integer"})
			return
		}
		lastSeen = n
	}
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			lastSeen = n
		}
	}

	ctx := c.Request.Context()
	stream, err := s.streamer.StreamFrom(ctx, crID, lastSeen)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	s.logger.Info("event stream opened", "cr_id", crID, "last_seen_id", lastSeen)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("event stream client disconnected", "cr_id", crID)
			return
		case evt, open := <-stream:
			if !open {
				// Stream-terminal event delivered (or replay failed);
				// the client reconnects with its Last-Event-ID.
				s.logger.Info("event stream closed", "cr_id", crID)
				return
			}
			data, err := json.Marshal(evt)
			if err != nil {
				s.logger.Warn("event marshal failed", "cr_id", crID, "error", err)
				continue
			}
			fmt.Fprintf(c.Writer, "id: %d\nevent: %s\ndata: %s\n\n", evt.SequenceID, evt.Type, data)
			flusher.Flush()
		}
	}
}
