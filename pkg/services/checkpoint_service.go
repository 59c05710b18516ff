package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/checkpoint"
	"github.com/CollideNV/hadron/pkg/models"
)

// CheckpointService appends and reads PipelineState checkpoints.
// Checkpoints are immutable; the highest sequence per run wins.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// WriteCheckpoint appends a checkpoint for a node. The state is
// serialized as stored; callers pass a copy, never the live state.
// Retries once on the (cr_id, sequence) unique conflict that two
// concurrent writers can produce; in practice a run has one executor,
// so the retry only fires during orphan-recovery hand-offs.
func (s *CheckpointService) WriteCheckpoint(httpCtx context.Context, crID, nodeName string, state *models.PipelineState) error {
	stateJSON, err := toJSONMap(state)
	if err != nil {
		return fmt.Errorf("failed to encode pipeline state: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for attempt := 0; attempt < 2; attempt++ {
		next, err := s.nextSequence(ctx, crID)
		if err != nil {
			return err
		}
		_, err = s.client.Checkpoint.Create().
			SetCrID(crID).
			SetSequence(next).
			SetNodeName(nodeName).
			SetStateBlob(stateJSON).
			Save(ctx)
		if err == nil {
			return nil
		}
		if !ent.IsConstraintError(err) || attempt == 1 {
			return fmt.Errorf("failed to write checkpoint: %w", err)
		}
	}
	return nil
}

// LatestCheckpoint returns the authoritative checkpoint for a run, or
// (nil, "") when the run has none.
func (s *CheckpointService) LatestCheckpoint(ctx context.Context, crID string) (*models.PipelineState, string, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.CrIDEQ(crID)).
		Order(ent.Desc(checkpoint.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to load checkpoint: %w", err)
	}

	var state models.PipelineState
	if err := fromJSONMap(cp.StateBlob, &state); err != nil {
		return nil, "", fmt.Errorf("malformed checkpoint %s/%d: %w", crID, cp.Sequence, err)
	}
	return &state, cp.NodeName, nil
}

// CountCheckpoints returns how many checkpoints a run has written.
func (s *CheckpointService) CountCheckpoints(ctx context.Context, crID string) (int, error) {
	n, err := s.client.Checkpoint.Query().
		Where(checkpoint.CrIDEQ(crID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count checkpoints: %w", err)
	}
	return n, nil
}

func (s *CheckpointService) nextSequence(ctx context.Context, crID string) (int, error) {
	last, err := s.client.Checkpoint.Query().
		Where(checkpoint.CrIDEQ(crID)).
		Order(ent.Desc(checkpoint.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to read checkpoint sequence: %w", err)
	}
	return last.Sequence + 1, nil
}
