package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

func newRunService(t *testing.T) (*services.RunService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewRunService(client.Client), client.Client
}

func testSnapshot() *models.ConfigSnapshot {
	return &models.ConfigSnapshot{
		MaxVerificationLoops: 3,
		MaxCostUSD:           10,
		DefaultModel:         "gemini-2.5-pro",
		DeliveryStrategy:     models.DeliverySelfContained,
	}
}

func createRun(t *testing.T, svc *services.RunService, title string) *ent.CRRun {
	t.Helper()
	run, err := svc.CreateRun(context.Background(),
		&models.RawChangeRequest{Title: title, Source: "api"}, testSnapshot())
	require.NoError(t, err)
	return run
}

func TestCreateRunFreezesSnapshotAndRequest(t *testing.T) {
	svc, _ := newRunService(t)

	run := createRun(t, svc, "add audit logging")
	assert.Regexp(t, "^cr-[0-9a-f]{8}$", run.ID)
	assert.Equal(t, crrun.StatusPending, run.Status)

	snap, err := services.Snapshot(run)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.MaxVerificationLoops)
	assert.Equal(t, "gemini-2.5-pro", snap.DefaultModel)

	raw, err := services.RawRequest(run)
	require.NoError(t, err)
	assert.Equal(t, "add audit logging", raw.Title)
	// Validate ran during create, so defaults are persisted.
	assert.Equal(t, "main", raw.RepoDefaultBranch)
}

func TestCreateRunDedupsLiveExternalID(t *testing.T) {
	svc, client := newRunService(t)
	ctx := context.Background()

	first, err := svc.CreateRun(ctx, &models.RawChangeRequest{
		Title: "first", Source: "jira", ExternalID: "PROJ-42",
	}, testSnapshot())
	require.NoError(t, err)

	_, err = svc.CreateRun(ctx, &models.RawChangeRequest{
		Title: "second", Source: "jira", ExternalID: "PROJ-42",
	}, testSnapshot())
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// Once the first run is terminal, the same external id may trigger again.
	require.NoError(t, client.CRRun.UpdateOneID(first.ID).
		SetStatus(crrun.StatusCompleted).Exec(ctx))
	_, err = svc.CreateRun(ctx, &models.RawChangeRequest{
		Title: "retrigger", Source: "jira", ExternalID: "PROJ-42",
	}, testSnapshot())
	assert.NoError(t, err)
}

func TestCreateRunValidates(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()

	_, err := svc.CreateRun(ctx, &models.RawChangeRequest{Title: " "}, testSnapshot())
	assert.True(t, services.IsValidationError(err))

	_, err = svc.CreateRun(ctx, &models.RawChangeRequest{Title: "ok"}, nil)
	assert.True(t, services.IsValidationError(err))
}

func TestStatusCASTransitions(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()
	run := createRun(t, svc, "cas run")

	// pending → running wins once.
	ok, err := svc.UpdateStatus(ctx, run.ID, models.StatusPending, models.StatusRunning)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = svc.UpdateStatus(ctx, run.ID, models.StatusPending, models.StatusRunning)
	require.NoError(t, err)
	assert.False(t, ok, "a second claimer loses the CAS")

	// running → paused records stage and reason.
	ok, err = svc.Pause(ctx, run.ID, "review", models.PauseReviewLimit, "3 blocking findings remain")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusPaused, got.Status)
	require.NotNil(t, got.PauseReason)
	assert.Equal(t, models.PauseReviewLimit, *got.PauseReason)
	require.NotNil(t, got.CurrentStage)
	assert.Equal(t, "review", *got.CurrentStage)

	// Complete requires running; a paused run cannot complete.
	ok, err = svc.Complete(ctx, run.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.UpdateStatus(ctx, run.ID, models.StatusPaused, models.StatusRunning)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = svc.Complete(ctx, run.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Completion cleared the pause leftovers.
	got, err = svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PauseReason)
	assert.Nil(t, got.ErrorMessage)
}

func TestRequestResumeOnlyWhenPaused(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()
	run := createRun(t, svc, "resume run")

	assert.ErrorIs(t, svc.RequestResume(ctx, run.ID), services.ErrNotPaused)
	assert.ErrorIs(t, svc.RequestResume(ctx, "cr-missing1"), services.ErrNotFound)

	_, err := svc.UpdateStatus(ctx, run.ID, models.StatusPending, models.StatusRunning)
	require.NoError(t, err)
	_, err = svc.Pause(ctx, run.ID, "delivery", models.PauseWaitingCI, "")
	require.NoError(t, err)

	require.NoError(t, svc.RequestResume(ctx, run.ID))
	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.ResumeRequestedAt)

	// SetRunning at claim time clears the request marker.
	require.NoError(t, svc.SetRunning(ctx, run.ID, "pod-1"))
	got, err = svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ResumeRequestedAt)
	require.NotNil(t, got.PodID)
	assert.Equal(t, "pod-1", *got.PodID)
}

func TestCancelRequiresPaused(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()
	run := createRun(t, svc, "cancel run")

	assert.ErrorIs(t, svc.Cancel(ctx, run.ID), services.ErrNotPaused)

	_, err := svc.UpdateStatus(ctx, run.ID, models.StatusPending, models.StatusRunning)
	require.NoError(t, err)
	_, err = svc.Pause(ctx, run.ID, "tdd", models.PauseNodeError, "agent chain exhausted")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, run.ID))
	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusCancelled, got.Status)
}

func TestIncrementCostAccumulates(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()
	run := createRun(t, svc, "cost run")

	require.NoError(t, svc.IncrementCost(ctx, run.ID, 0.01, 120, 40))
	require.NoError(t, svc.IncrementCost(ctx, run.ID, 0.02, 200, 80))
	assert.Error(t, svc.IncrementCost(ctx, run.ID, -1, 0, 0))

	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.03, got.CostUsd, 1e-9)
	assert.Equal(t, int64(320), got.InputTokens)
	assert.Equal(t, int64(120), got.OutputTokens)
}

func TestAppendWorkerLogConcatenates(t *testing.T) {
	svc, _ := newRunService(t)
	ctx := context.Background()
	run := createRun(t, svc, "log run")

	require.NoError(t, svc.AppendWorkerLog(ctx, run.ID, "INFO run claimed\n"))
	require.NoError(t, svc.AppendWorkerLog(ctx, run.ID, "INFO stage entered stage=intake\n"))
	require.NoError(t, svc.AppendWorkerLog(ctx, run.ID, ""))

	got, err := svc.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WorkerLog)
	assert.Equal(t, "INFO run claimed\nINFO stage entered stage=intake\n", *got.WorkerLog)
}
