// Package services implements the persistence layer: run lifecycle,
// checkpoints, event catchup, conversations, and audit records.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/google/uuid"
)

// defaultListLimit caps ListRuns when the caller passes no limit.
const defaultListLimit = 100

// RunService manages CRRun lifecycle: creation with dedup, status
// compare-and-set, cost accumulation, and worker bookkeeping.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// NewCRID generates a run identifier. Format: "cr-" + 8 hex chars.
func NewCRID() string {
	return "cr-" + strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// CreateRun inserts a pending run with a frozen config snapshot.
// Returns ErrAlreadyExists when another run with the same
// (source, external_id) is still live; the partial unique index is the
// arbiter, so concurrent triggers cannot both win.
func (s *RunService) CreateRun(httpCtx context.Context, raw *models.RawChangeRequest, snapshot *models.ConfigSnapshot) (*ent.CRRun, error) {
	if err := raw.Validate(); err != nil {
		return nil, NewValidationError("request", err.Error())
	}
	if snapshot == nil {
		return nil, NewValidationError("config_snapshot", "required")
	}

	snapshotJSON, err := toJSONMap(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config snapshot: %w", err)
	}
	rawJSON, err := toJSONMap(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode raw request: %w", err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.CRRun.Create().
		SetID(NewCRID()).
		SetSource(raw.Source).
		SetTitle(raw.Title).
		SetStatus(crrun.StatusPending).
		SetConfigSnapshot(snapshotJSON).
		SetRawRequest(rawJSON)
	if raw.ExternalID != "" {
		builder.SetExternalID(raw.ExternalID)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// ListRuns returns the newest runs first.
func (s *RunService) ListRuns(ctx context.Context, limit int) ([]*ent.CRRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	runs, err := s.client.CRRun.Query().
		Order(ent.Desc(crrun.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run or ErrNotFound.
func (s *RunService) GetRun(ctx context.Context, crID string) (*ent.CRRun, error) {
	run, err := s.client.CRRun.Get(ctx, crID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// UpdateStatus performs a compare-and-set status transition. Returns
// false when the current status differs from fromStatus; the caller
// lost the race and must not treat the run as owned.
func (s *RunService) UpdateStatus(ctx context.Context, crID, fromStatus, toStatus string) (bool, error) {
	n, err := s.client.CRRun.Update().
		Where(crrun.IDEQ(crID), crrun.StatusEQ(crrun.Status(fromStatus))).
		SetStatus(crrun.Status(toStatus)).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	return n == 1, nil
}

// SetRunning marks a claimed run as running and records the worker's
// pod id. Separate from the claim CAS, which the queue performs inside
// its own transaction.
func (s *RunService) SetRunning(ctx context.Context, crID, podID string) error {
	return s.client.CRRun.Update().
		Where(crrun.IDEQ(crID)).
		SetPodID(podID).
		SetLastInteractionAt(time.Now()).
		ClearResumeRequestedAt().
		Exec(ctx)
}

// Pause performs the running → paused CAS, recording the stage, the
// pause reason, and the error (if any). The error message is preserved
// until the next successful transition.
func (s *RunService) Pause(ctx context.Context, crID, stage, reason, errMsg string) (bool, error) {
	upd := s.client.CRRun.Update().
		Where(crrun.IDEQ(crID), crrun.StatusEQ(crrun.StatusRunning)).
		SetStatus(crrun.StatusPaused).
		SetCurrentStage(stage).
		SetPauseReason(reason).
		ClearPodID()
	if errMsg != "" {
		upd.SetErrorMessage(errMsg)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to pause run: %w", err)
	}
	return n == 1, nil
}

// Complete performs the running → completed CAS and clears pause and
// error leftovers from earlier cycles.
func (s *RunService) Complete(ctx context.Context, crID string) (bool, error) {
	n, err := s.client.CRRun.Update().
		Where(crrun.IDEQ(crID), crrun.StatusEQ(crrun.StatusRunning)).
		SetStatus(crrun.StatusCompleted).
		ClearPauseReason().
		ClearErrorMessage().
		ClearPodID().
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to complete run: %w", err)
	}
	return n == 1, nil
}

// SetStage records the stage the executor is currently in.
func (s *RunService) SetStage(ctx context.Context, crID, stage string) error {
	return s.client.CRRun.Update().
		Where(crrun.IDEQ(crID)).
		SetCurrentStage(stage).
		ClearErrorMessage().
		Exec(ctx)
}

// RequestResume marks a paused run as resume-requested so a worker
// will pick it up. Returns ErrNotPaused for any other status. The
// paused → running CAS itself happens at claim time, not here.
func (s *RunService) RequestResume(ctx context.Context, crID string) error {
	n, err := s.client.CRRun.Update().
		Where(crrun.IDEQ(crID), crrun.StatusEQ(crrun.StatusPaused)).
		SetResumeRequestedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request resume: %w", err)
	}
	if n == 0 {
		if _, err := s.GetRun(ctx, crID); err != nil {
			return err
		}
		return ErrNotPaused
	}
	return nil
}

// Cancel transitions paused → cancelled. Cancellation of a running CR
// is not supported; it must reach a pause point first.
func (s *RunService) Cancel(ctx context.Context, crID string) error {
	n, err := s.client.CRRun.Update().
		Where(crrun.IDEQ(crID), crrun.StatusEQ(crrun.StatusPaused)).
		SetStatus(crrun.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel run: %w", err)
	}
	if n == 0 {
		if _, err := s.GetRun(ctx, crID); err != nil {
			return err
		}
		return ErrNotPaused
	}
	return nil
}

// IncrementCost atomically adds one invocation's usage to the run's
// accumulated totals. cost_usd only ever grows.
func (s *RunService) IncrementCost(ctx context.Context, crID string, deltaUSD float64, deltaInTok, deltaOutTok int64) error {
	if deltaUSD < 0 || deltaInTok < 0 || deltaOutTok < 0 {
		return NewValidationError("cost", "deltas must be non-negative")
	}
	return s.client.CRRun.Update().
		Where(crrun.IDEQ(crID)).
		AddCostUsd(deltaUSD).
		AddInputTokens(deltaInTok).
		AddOutputTokens(deltaOutTok).
		Exec(ctx)
}

// Heartbeat refreshes last_interaction_at for orphan detection.
func (s *RunService) Heartbeat(ctx context.Context, crID string) error {
	return s.client.CRRun.Update().
		Where(crrun.IDEQ(crID)).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// AppendWorkerLog flushes captured worker logs onto the run record.
func (s *RunService) AppendWorkerLog(ctx context.Context, crID, logText string) error {
	if logText == "" {
		return nil
	}
	run, err := s.GetRun(ctx, crID)
	if err != nil {
		return err
	}
	existing := ""
	if run.WorkerLog != nil {
		existing = *run.WorkerLog
	}
	return s.client.CRRun.Update().
		Where(crrun.IDEQ(crID)).
		SetWorkerLog(existing + logText).
		Exec(ctx)
}

// Snapshot decodes the frozen config snapshot stored on a run.
func Snapshot(run *ent.CRRun) (*models.ConfigSnapshot, error) {
	data, err := json.Marshal(run.ConfigSnapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode config snapshot: %w", err)
	}
	var snap models.ConfigSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("malformed config snapshot on run %s: %w", run.ID, err)
	}
	return &snap, nil
}

// RawRequest decodes the original trigger payload stored on a run.
func RawRequest(run *ent.CRRun) (*models.RawChangeRequest, error) {
	var raw models.RawChangeRequest
	if err := fromJSONMap(run.RawRequest, &raw); err != nil {
		return nil, fmt.Errorf("malformed raw request on run %s: %w", run.ID, err)
	}
	return &raw, nil
}

func toJSONMap(v any) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromJSONMap(m map[string]interface{}, out any) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
