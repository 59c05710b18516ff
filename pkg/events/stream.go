package events

import (
	"context"
	"fmt"
)

// streamPageSize bounds each replay query during StreamFrom.
const streamPageSize = 500

// Streamer produces gap-free per-CR event iterators by combining the
// Broker's live delivery with the stored stream.
type Streamer struct {
	broker  *Broker
	querier CatchupQuerier
}

// NewStreamer creates a Streamer.
func NewStreamer(broker *Broker, querier CatchupQuerier) *Streamer {
	return &Streamer{broker: broker, querier: querier}
}

// StreamFrom delivers every event of a CR with sequence id greater
// than lastSeenID, exactly once and in order, then follows the live
// stream until a stream-terminal event or context cancellation.
//
// Protocol: subscribe FIRST (live events buffer while we replay), then
// replay the stored stream, then forward buffered live events dropping
// any with sequence id at or below the highest replayed id. Replaying
// first would race events appended during the replay; this ordering is
// what makes the handover gap-free.
//
// The returned channel is closed when the stream ends. The caller must
// drain it or cancel ctx.
func (s *Streamer) StreamFrom(ctx context.Context, crID string, lastSeenID int64) (<-chan *Event, error) {
	live, cancel, err := s.broker.Subscribe(ctx, crID)
	if err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", crID, err)
	}

	out := make(chan *Event, 32)
	go func() {
		defer close(out)
		defer cancel()

		maxSeen := lastSeenID
		// Replay the stored stream in pages.
		for {
			page, err := s.querier.GetEventsSince(ctx, crID, maxSeen, streamPageSize)
			if err != nil {
				return
			}
			for _, evt := range page {
				if !s.emit(ctx, out, evt) {
					return
				}
				maxSeen = evt.SequenceID
				if evt.Type.StreamTerminal() {
					return
				}
			}
			if len(page) < streamPageSize {
				break
			}
		}

		// Live phase: forward buffered and future events, filtering
		// duplicates already delivered by the replay.
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-live:
				if !ok {
					return // Subscriber closed (overflow); client replays
				}
				if evt.SequenceID <= maxSeen {
					continue
				}
				if evt.Truncated {
					// NOTIFY envelope was truncated; refetch the row.
					full := s.refetch(ctx, crID, evt.SequenceID)
					if full != nil {
						evt = full
					}
				}
				if !s.emit(ctx, out, evt) {
					return
				}
				maxSeen = evt.SequenceID
				if evt.Type.StreamTerminal() {
					return
				}
			}
		}
	}()
	return out, nil
}

func (s *Streamer) emit(ctx context.Context, out chan<- *Event, evt *Event) bool {
	select {
	case out <- evt:
		return true
	case <-ctx.Done():
		return false
	}
}

// refetch loads a single event row whose NOTIFY envelope was truncated.
func (s *Streamer) refetch(ctx context.Context, crID string, seqID int64) *Event {
	page, err := s.querier.GetEventsSince(ctx, crID, seqID-1, 1)
	if err != nil || len(page) == 0 || page[0].SequenceID != seqID {
		return nil
	}
	return page[0]
}
