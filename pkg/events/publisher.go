package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher appends events to a CR's stream. Every append persists the
// event row and fires pg_notify on the CR's channel in one transaction,
// so the stored stream and live notifications can never diverge.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// Append persists one event and notifies subscribers. The returned
// sequence id is the bigserial row id assigned by the insert.
func (p *Publisher) Append(ctx context.Context, crID, stage string, eventType EventType, data map[string]any) (int64, error) {
	if _, err := ParseEventType(string(eventType)); err != nil {
		return 0, err
	}
	if data == nil {
		data = map[string]any{}
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal event data: %w", err)
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	var seqID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (cr_id, stage, event_type, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		crID, stage, string(eventType), dataJSON, now,
	).Scan(&seqID)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	envelope, err := buildNotifyEnvelope(&Event{
		SequenceID: seqID,
		CRID:       crID,
		Stage:      stage,
		Type:       eventType,
		Data:       data,
		Timestamp:  now,
	})
	if err != nil {
		return 0, err
	}

	// pg_notify is transactional: held until COMMIT, so the row is
	// always visible to catchup queries by the time listeners see it.
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", CRChannel(crID), envelope); err != nil {
		return 0, fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return seqID, nil
}

// NotifyRunStatus broadcasts a transient run-status update to the
// global runs channel (no DB persistence; the run row is the record).
func (p *Publisher) NotifyRunStatus(ctx context.Context, crID, status string) error {
	payload, err := json.Marshal(map[string]any{
		"cr_id":  crID,
		"status": status,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run status: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", GlobalRunsChannel, string(payload)); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// buildNotifyEnvelope marshals the full event for NOTIFY delivery,
// falling back to a truncation envelope when the result exceeds
// PostgreSQL's 8000-byte NOTIFY limit. Subscribers refetch truncated
// events from the events table using the sequence id.
func buildNotifyEnvelope(e *Event) (string, error) {
	full, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY envelope: %w", err)
	}
	if len(full) <= 7900 {
		return string(full), nil
	}

	truncated, err := json.Marshal(&Event{
		SequenceID: e.SequenceID,
		CRID:       e.CRID,
		Stage:      e.Stage,
		Type:       e.Type,
		Data:       map[string]any{},
		Timestamp:  e.Timestamp,
		Truncated:  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated envelope: %w", err)
	}
	return string(truncated), nil
}
