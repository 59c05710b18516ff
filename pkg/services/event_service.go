package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/ent/event"
	"github.com/CollideNV/hadron/pkg/events"
)

// EventService reads the stored event stream. It implements
// events.CatchupQuerier for the broker's catchup and for StreamFrom.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves events with sequence id greater than
// afterSeq, in order, up to limit (0 means no limit).
func (s *EventService) GetEventsSince(ctx context.Context, crID string, afterSeq int64, limit int) ([]*events.Event, error) {
	q := s.client.Event.Query().
		Where(
			event.CrIDEQ(crID),
			event.IDGT(afterSeq),
		).
		Order(ent.Asc(event.FieldID))
	if limit > 0 {
		q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	out := make([]*events.Event, 0, len(rows))
	for _, row := range rows {
		typ, err := events.ParseEventType(row.EventType)
		if err != nil {
			// Unknown variants are dropped at the boundary, never
			// passed through.
			continue
		}
		out = append(out, &events.Event{
			SequenceID: row.ID,
			CRID:       row.CrID,
			Stage:      row.Stage,
			Type:       typ,
			Data:       row.Payload,
			Timestamp:  row.CreatedAt,
		})
	}
	return out, nil
}

// CleanupRunEvents removes all events for one run.
func (s *EventService) CleanupRunEvents(ctx context.Context, crID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CrIDEQ(crID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup run events: %w", err)
	}
	return count, nil
}

// CleanupExpiredStreams removes event streams of runs that reached a
// terminal status more than the retention buffer ago.
func (s *EventService) CleanupExpiredStreams(ctx context.Context, buffer time.Duration) (int, error) {
	cutoff := time.Now().Add(-buffer)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	expired, err := s.client.CRRun.Query().
		Where(
			crrun.StatusIn(crrun.StatusCompleted, crrun.StatusFailed, crrun.StatusCancelled),
			crrun.UpdatedAtLT(cutoff),
		).
		IDs(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired runs: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	count, err := s.client.Event.Delete().
		Where(event.CrIDIn(expired...)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup expired streams: %w", err)
	}
	return count, nil
}
