// Package interventions stores pending operator commands for running
// CRs and delivers each of them to at most one consumer.
package interventions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CollideNV/hadron/pkg/events"
)

// Kind identifies one variant of the closed intervention enum.
type Kind string

const (
	// KindInstructions is free-text guidance merged into the next
	// agent prompts. Consumed between nodes.
	KindInstructions Kind = "instructions"
	// KindNudge is guidance for one agent role, consumed between tool
	// rounds. Keyed by role.
	KindNudge Kind = "nudge"
	// KindResumeOverrides are structured state patches consumed at
	// worker startup. They expire after one hour.
	KindResumeOverrides Kind = "resume_overrides"
)

// ResumeOverridesTTL bounds how long stored overrides stay valid.
const ResumeOverridesTTL = time.Hour

var knownKinds = map[Kind]bool{
	KindInstructions:    true,
	KindNudge:           true,
	KindResumeOverrides: true,
}

// Registry is the per-CR key-value store of pending interventions.
// Consumption uses a single DELETE ... RETURNING, so an intervention
// is delivered to exactly one caller.
type Registry struct {
	db        *sql.DB
	publisher *events.Publisher
}

// NewRegistry creates a Registry. The publisher may be nil in tests;
// intervention_set events are then skipped.
func NewRegistry(db *sql.DB, publisher *events.Publisher) *Registry {
	return &Registry{db: db, publisher: publisher}
}

// Set stores an intervention, overwriting any existing one of the same
// kind and key, and emits an intervention_set event.
func (r *Registry) Set(ctx context.Context, crID string, kind Kind, key string, payload map[string]any, ttl time.Duration) error {
	if !knownKinds[kind] {
		return fmt.Errorf("unknown intervention kind %q", kind)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal intervention payload: %w", err)
	}

	var expiresAt any
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO interventions (cr_id, kind, key, payload, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (cr_id, kind, key)
		 DO UPDATE SET payload = EXCLUDED.payload,
		               expires_at = EXCLUDED.expires_at,
		               created_at = EXCLUDED.created_at`,
		crID, string(kind), key, payloadJSON, expiresAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to store intervention: %w", err)
	}

	if r.publisher != nil {
		_, err = r.publisher.Append(ctx, crID, "", events.TypeInterventionSet, map[string]any{
			"kind": string(kind),
			"key":  key,
		})
		if err != nil {
			return fmt.Errorf("failed to publish intervention_set: %w", err)
		}
	}
	return nil
}

// GetAndDelete atomically consumes an intervention. Returns nil when
// none is pending (or the stored one has expired).
func (r *Registry) GetAndDelete(ctx context.Context, crID string, kind Kind, key string) (map[string]any, error) {
	var payloadJSON []byte
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM interventions
		 WHERE cr_id = $1 AND kind = $2 AND key = $3
		   AND (expires_at IS NULL OR expires_at > now())
		 RETURNING payload`,
		crID, string(kind), key).Scan(&payloadJSON)
	if errors.Is(err, sql.ErrNoRows) {
		// Sweep an expired row if that is what blocked the delete.
		_, _ = r.db.ExecContext(ctx,
			`DELETE FROM interventions
			 WHERE cr_id = $1 AND kind = $2 AND key = $3 AND expires_at <= now()`,
			crID, string(kind), key)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to consume intervention: %w", err)
	}
	return decodePayload(payloadJSON)
}

// Peek returns a pending intervention without consuming it. Used by
// resume-routing to inspect overrides before the worker claims the run.
func (r *Registry) Peek(ctx context.Context, crID string, kind Kind, key string) (map[string]any, error) {
	var payloadJSON []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM interventions
		 WHERE cr_id = $1 AND kind = $2 AND key = $3
		   AND (expires_at IS NULL OR expires_at > now())`,
		crID, string(kind), key).Scan(&payloadJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to peek intervention: %w", err)
	}
	return decodePayload(payloadJSON)
}

func decodePayload(raw []byte) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("malformed intervention payload: %w", err)
	}
	return payload, nil
}
