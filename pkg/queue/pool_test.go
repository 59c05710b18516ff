package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

func TestPoolProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	executor := &fakeExecutor{client: client, release: completeRun}
	runs := services.NewRunService(client)
	pool := NewWorkerPool("test-pod", client, cfg, executor, runs, nil)

	first := createRun(t, runs, "first")
	second := createRun(t, runs, "second")

	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		done := 0
		for _, id := range []string{first.ID, second.ID} {
			got, err := client.CRRun.Get(context.Background(), id)
			if err == nil && got.Status == crrun.StatusCompleted {
				done++
			}
		}
		return done == 2
	}, 5*time.Second, 20*time.Millisecond)

	assert.Len(t, executor.executedRuns(), 2)
}

func TestPoolStartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	runs := services.NewRunService(client)
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{client: client}, runs, nil)

	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Len(t, pool.workers, cfg.WorkerCount)
}

func TestPoolHealth(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	runs := services.NewRunService(client)
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{client: client}, runs, nil)

	createRun(t, runs, "queued")
	paused := createRun(t, runs, "resume requested")
	require.NoError(t, client.CRRun.UpdateOneID(paused.ID).
		SetStatus(crrun.StatusPaused).
		SetResumeRequestedAt(time.Now()).
		Exec(context.Background()))

	// Before Start: no workers, so not healthy.
	health := pool.Health()
	assert.False(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.QueueDepth)
	assert.Equal(t, "test-pod", health.PodID)
}

func TestOrphanDetectionRequeuesStaleRun(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	cfg := testQueueConfig()
	cfg.OrphanThreshold = time.Minute
	runs := services.NewRunService(client)
	pool := NewWorkerPool("test-pod", client, cfg, &fakeExecutor{client: client}, runs, nil)

	stale := createRun(t, runs, "stale run")
	require.NoError(t, client.CRRun.UpdateOneID(stale.ID).
		SetStatus(crrun.StatusRunning).
		SetPodID("dead-pod").
		SetLastInteractionAt(time.Now().Add(-10*time.Minute)).
		Exec(context.Background()))

	fresh := createRun(t, runs, "fresh run")
	require.NoError(t, client.CRRun.UpdateOneID(fresh.ID).
		SetStatus(crrun.StatusRunning).
		SetPodID("live-pod").
		SetLastInteractionAt(time.Now()).
		Exec(context.Background()))

	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	got, err := client.CRRun.Get(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "dead-pod")

	untouched, err := client.CRRun.Get(context.Background(), fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusRunning, untouched.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 1, pool.orphans.orphansRecovered)
	pool.orphans.mu.Unlock()
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	runs := services.NewRunService(client)

	mine := createRun(t, runs, "my orphan")
	require.NoError(t, client.CRRun.UpdateOneID(mine.ID).
		SetStatus(crrun.StatusRunning).
		SetPodID("test-pod").
		Exec(context.Background()))

	other := createRun(t, runs, "other pod's run")
	require.NoError(t, client.CRRun.UpdateOneID(other.ID).
		SetStatus(crrun.StatusRunning).
		SetPodID("other-pod").
		Exec(context.Background()))

	require.NoError(t, CleanupStartupOrphans(context.Background(), client, "test-pod"))

	got, err := client.CRRun.Get(context.Background(), mine.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusPending, got.Status)

	untouched, err := client.CRRun.Get(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusRunning, untouched.Status)
}
