package pipeline

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/models"
)

func multiRepoState() *models.PipelineState {
	state := testState()
	state.Repos = []models.RepoContext{
		{RepoName: "api", RepoURL: "https://example.com/api.git"},
		{RepoName: "web", RepoURL: "https://example.com/web.git"},
		{RepoName: "worker", RepoURL: "https://example.com/worker.git"},
	}
	return state
}

func TestFanOutCollectsAllDeltas(t *testing.T) {
	state := multiRepoState()

	results, err := fanOut(context.Background(), state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (string, error) {
		return "done:" + repo.RepoName, nil
	})
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "done:api", results["api"])
	assert.Equal(t, "done:worker", results["worker"])
}

func TestFanOutBarrierWaitsForAll(t *testing.T) {
	state := multiRepoState()
	var finished atomic.Int32

	_, err := fanOut(context.Background(), state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (struct{}, error) {
		if repo.RepoName == "api" {
			return struct{}{}, errors.New("boom")
		}
		time.Sleep(20 * time.Millisecond)
		finished.Add(1)
		return struct{}{}, nil
	})

	// One failure does not release the barrier early: both slow
	// sub-tasks ran to completion before fanOut returned.
	require.Error(t, err)
	assert.Equal(t, int32(2), finished.Load())
}

func TestFanOutSnapshotsAreIsolated(t *testing.T) {
	state := multiRepoState()
	state.InterventionSlot = "original"

	_, err := fanOut(context.Background(), state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (struct{}, error) {
		// Mutating the snapshot must never reach the live state or the
		// other sub-tasks.
		snap.InterventionSlot = "mutated by " + repo.RepoName
		snap.Repos = nil
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "original", state.InterventionSlot)
	assert.Len(t, state.Repos, 3)
}

func TestFanOutErrorNamesRepo(t *testing.T) {
	state := multiRepoState()

	_, err := fanOut(context.Background(), state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (struct{}, error) {
		if repo.RepoName == "web" {
			return struct{}{}, errors.New("clone failed")
		}
		return struct{}{}, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web: clone failed")
}

func TestFanOutNoRepos(t *testing.T) {
	state := testState()
	results, err := fanOut(context.Background(), state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}
