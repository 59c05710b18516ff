package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/metrics"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned runs.
// All pods run this independently; operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running runs with stale heartbeats and
// re-queues them as pending. The run's latest checkpoint survives the
// crash, so the next claimer resumes from where the dead pod stopped
// instead of starting over.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.CRRun.Query().
		Where(
			crrun.StatusEQ(crrun.StatusRunning),
			crrun.LastInteractionAtNotNil(),
			crrun.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := requeueOrphan(ctx, p.client, run, "no heartbeat"); err != nil {
			slog.Error("Failed to recover orphaned run",
				"cr_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// requeueOrphan returns a single orphaned run to the pending queue.
// The status CAS guards against racing with a worker that is actually
// still alive and about to write.
func requeueOrphan(ctx context.Context, client *ent.Client, run *ent.CRRun, cause string) error {
	podID := "unknown"
	if run.PodID != nil {
		podID = *run.PodID
	}
	lastHeartbeat := "unknown"
	if run.LastInteractionAt != nil {
		lastHeartbeat = run.LastInteractionAt.Format(time.RFC3339)
	}

	n, err := client.CRRun.Update().
		Where(
			crrun.IDEQ(run.ID),
			crrun.StatusEQ(crrun.StatusRunning),
		).
		SetStatus(crrun.StatusPending).
		ClearPodID().
		SetErrorMessage(fmt.Sprintf("Orphaned (%s): pod %s last seen %s", cause, podID, lastHeartbeat)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to re-queue orphaned run: %w", err)
	}
	if n == 0 {
		return nil // someone else recovered or released it first
	}
	metrics.OrphansRecovered.Inc()

	slog.Warn("Orphaned run re-queued",
		"cr_id", run.ID,
		"old_pod_id", podID,
		"last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans re-queues runs owned by this pod that were
// running when the pod previously crashed. Called once during startup,
// before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.CRRun.Query().
		Where(
			crrun.StatusEQ(crrun.StatusRunning),
			crrun.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run of this pod",
		"pod_id", podID,
		"count", len(orphans))

	for _, run := range orphans {
		if err := requeueOrphan(ctx, client, run, "pod restart"); err != nil {
			slog.Error("Failed to re-queue startup orphan",
				"cr_id", run.ID,
				"error", err)
		}
	}

	return nil
}
