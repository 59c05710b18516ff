package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

// fakeExecutor records executed runs and optionally releases them.
type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	release  func(ctx context.Context, client *ent.Client, crID string)
	client   *ent.Client
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, crID string) error {
	f.mu.Lock()
	f.executed = append(f.executed, crID)
	f.mu.Unlock()
	if f.release != nil {
		f.release(ctx, f.client, crID)
	}
	return f.err
}

func (f *fakeExecutor) executedRuns() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.executed...)
}

func completeRun(ctx context.Context, client *ent.Client, crID string) {
	_ = client.CRRun.UpdateOneID(crID).
		SetStatus(crrun.StatusCompleted).
		ClearPodID().
		Exec(ctx)
}

func testQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 50 * time.Millisecond
	return cfg
}

func createRun(t *testing.T, runs *services.RunService, title string) *ent.CRRun {
	t.Helper()
	raw := &models.RawChangeRequest{
		Title:   title,
		Source:  "api",
		RepoURL: "https://example.com/api.git",
	}
	run, err := runs.CreateRun(context.Background(), raw, &models.ConfigSnapshot{})
	require.NoError(t, err)
	return run
}

func newTestWorker(t *testing.T, client *ent.Client, executor *fakeExecutor, cfg *config.QueueConfig) (*Worker, *services.RunService) {
	t.Helper()
	runs := services.NewRunService(client)
	pool := NewWorkerPool("test-pod", client, cfg, executor, runs, nil)
	worker := NewWorker("test-pod-worker-0", "test-pod", client, cfg, executor, runs, nil, pool)
	return worker, runs
}

func TestWorkerClaimsPendingRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client, release: completeRun}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "pending run")

	err := worker.pollAndProcess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{run.ID}, executor.executedRuns())

	got, err := client.CRRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusCompleted, got.Status)
}

func TestWorkerClaimsResumeRequestedRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client, release: completeRun}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "paused run")
	require.NoError(t, client.CRRun.UpdateOneID(run.ID).
		SetStatus(crrun.StatusPaused).
		SetResumeRequestedAt(time.Now()).
		Exec(context.Background()))

	err := worker.pollAndProcess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{run.ID}, executor.executedRuns())

	// The resume request was consumed at claim time.
	got, err := client.CRRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ResumeRequestedAt)
}

func TestWorkerSkipsPausedRunWithoutResumeRequest(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "paused run")
	require.NoError(t, client.CRRun.UpdateOneID(run.ID).
		SetStatus(crrun.StatusPaused).
		Exec(context.Background()))

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoRunsAvailable)
	assert.Empty(t, executor.executedRuns())
}

func TestWorkerRespectsCapacity(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	cfg.MaxConcurrentRuns = 1
	executor := &fakeExecutor{client: client}
	worker, runs := newTestWorker(t, client, executor, cfg)

	running := createRun(t, runs, "already running")
	require.NoError(t, client.CRRun.UpdateOneID(running.ID).
		SetStatus(crrun.StatusRunning).
		SetPodID("other-pod").
		Exec(context.Background()))
	createRun(t, runs, "waiting")

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
	assert.Empty(t, executor.executedRuns())
}

func TestWorkerClaimsOldestFirst(t *testing.T) {
	tc := testdb.NewTestClient(t)
	client := tc.Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client, release: completeRun}
	worker, runs := newTestWorker(t, client, executor, cfg)

	first := createRun(t, runs, "first")
	// Force distinct created_at ordering. The field is immutable in the
	// Ent schema, so backdate it with raw SQL.
	_, err := tc.DB().ExecContext(context.Background(),
		"UPDATE cr_runs SET created_at = $1 WHERE id = $2",
		time.Now().Add(-time.Minute), first.ID)
	require.NoError(t, err)
	createRun(t, runs, "second")

	require.NoError(t, worker.pollAndProcess(context.Background()))
	assert.Equal(t, []string{first.ID}, executor.executedRuns())
}

func TestWorkerSafetyNetPausesUnreleasedRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	// Executor "crashes": returns an error without releasing the run.
	executor := &fakeExecutor{client: client, err: errors.New("unexpected executor failure")}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "doomed run")

	err := worker.pollAndProcess(context.Background())
	require.NoError(t, err)

	got, err := client.CRRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusPaused, got.Status)
	require.NotNil(t, got.PauseReason)
	assert.Equal(t, models.PauseNodeError, *got.PauseReason)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "unexpected executor failure")
	// Paused without a resume request: not claimable until an operator
	// asks for a resume.
	assert.Nil(t, got.ResumeRequestedAt)
}

func TestWorkerFlushesWorkerLog(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client, release: completeRun}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "logged run")
	require.NoError(t, worker.pollAndProcess(context.Background()))

	got, err := client.CRRun.Get(context.Background(), run.ID)
	require.NoError(t, err)
	require.NotNil(t, got.WorkerLog)
	assert.Contains(t, *got.WorkerLog, "Run claimed")
}

func TestWorkerLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	executor := &fakeExecutor{client: client, release: completeRun}
	worker, runs := newTestWorker(t, client, executor, cfg)

	run := createRun(t, runs, "lifecycle run")

	worker.Start(context.Background())
	require.Eventually(t, func() bool {
		got, err := client.CRRun.Get(context.Background(), run.ID)
		return err == nil && got.Status == crrun.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)
	worker.Stop()

	health := worker.Health()
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.GreaterOrEqual(t, health.RunsProcessed, 1)
}
