package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/metrics"
	"github.com/CollideNV/hadron/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration.
type RunRegistry interface {
	RegisterRun(crID string, cancel context.CancelFunc)
	UnregisterRun(crID string)
}

// Worker is a single queue worker that polls for and processes runs.
// A claimable run is either pending (never started) or paused with a
// resume request; both resolve to the same claim CAS.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  RunExecutor
	runs      *services.RunService
	publisher *events.Publisher
	pool      RunRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (status notifications disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, runs *services.RunService, publisher *events.Publisher, pool RunRegistry) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		runs:         runs,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoRunsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing run", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a run, and processes one
// executor pass. The pass ends when the run completes or reaches a
// pause point; long waits (CI, approval) never hold a worker.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers
	// but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.CRRun.Query().
		Where(crrun.StatusEQ(crrun.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active runs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}

	capture := newLogCapture(slog.Default().Handler())
	log := slog.New(capture).With("cr_id", run.ID, "worker_id", w.id)
	log.Info("Run claimed", "previous_status", run.Status)
	metrics.RunsClaimed.WithLabelValues(string(run.Status)).Inc()

	w.notifyStatus(ctx, run.ID, string(crrun.StatusRunning))

	w.setStatus(WorkerStatusWorking, run.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	runCtx, cancelRun := context.WithTimeout(ctx, w.config.RunTimeout)
	defer cancelRun()

	// Register the cancel function for shutdown-triggered cancellation.
	w.pool.RegisterRun(run.ID, cancelRun)
	defer w.pool.UnregisterRun(run.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, run.ID)

	execErr := w.executor.Execute(runCtx, run.ID)
	cancelHeartbeat()

	if execErr != nil {
		log.Error("Executor pass failed", "error", execErr)
	}

	// Safety net: the executor is responsible for leaving the run in a
	// terminal or paused status. If the row is still running (panic
	// recovery, pass timeout, lost DB write), pause it here so the run
	// stays resumable instead of wedged.
	w.ensureReleased(run.ID, runCtx, execErr, log)

	// Terminal status update and flush use a background context; the
	// run context may already be cancelled.
	if captured := capture.Flush(); captured != "" {
		flushCtx, cancelFlush := context.WithTimeout(context.Background(), 10*time.Second)
		if err := w.runs.AppendWorkerLog(flushCtx, run.ID, captured); err != nil {
			slog.Warn("Failed to flush worker log", "cr_id", run.ID, "error", err)
		}
		cancelFlush()
	}

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()

	log.Info("Run pass complete")
	return nil
}

// claimNextRun atomically claims the next runnable run using
// FOR UPDATE SKIP LOCKED. Pending runs and paused runs with a resume
// request compete in FIFO order by creation time.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.CRRun, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	run, err := tx.CRRun.Query().
		Where(
			crrun.Or(
				crrun.StatusEQ(crrun.StatusPending),
				crrun.And(
					crrun.StatusEQ(crrun.StatusPaused),
					crrun.ResumeRequestedAtNotNil(),
				),
			),
		).
		Order(ent.Asc(crrun.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoRunsAvailable
		}
		return nil, fmt.Errorf("failed to query runnable run: %w", err)
	}

	// The claim CAS: whatever the previous status was, the run now
	// belongs to this pod. Clearing resume_requested_at consumes the
	// resume request.
	err = run.Update().
		SetStatus(crrun.StatusRunning).
		SetPodID(w.podID).
		SetLastInteractionAt(time.Now()).
		ClearResumeRequestedAt().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	// run still carries the pre-claim status, which the caller logs.
	return run, nil
}

// runHeartbeat periodically refreshes last_interaction_at for orphan
// detection.
func (w *Worker) runHeartbeat(ctx context.Context, crID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.runs.Heartbeat(ctx, crID); err != nil {
				slog.Warn("Heartbeat update failed", "cr_id", crID, "error", err)
			}
		}
	}
}

// ensureReleased pauses the run if the executor left it in running
// status on this pod.
func (w *Worker) ensureReleased(crID string, runCtx context.Context, execErr error, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	run, err := w.runs.GetRun(ctx, crID)
	if err != nil {
		log.Error("Failed to read run for release check", "error", err)
		return
	}
	if run.Status != crrun.StatusRunning || run.PodID == nil || *run.PodID != w.podID {
		return
	}

	msg := "executor pass ended without releasing the run"
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		msg = fmt.Sprintf("run pass exceeded %v", w.config.RunTimeout)
	case execErr != nil:
		msg = execErr.Error()
	}

	stage := ""
	if run.CurrentStage != nil {
		stage = *run.CurrentStage
	}
	paused, err := w.runs.Pause(ctx, crID, stage, "node_error", msg)
	if err != nil {
		log.Error("Safety-net pause failed", "error", err)
		return
	}
	if paused {
		log.Warn("Run paused by worker safety net", "reason", msg)
		w.notifyStatus(ctx, crID, string(crrun.StatusPaused))
	}
}

// notifyStatus publishes a run status change for live listeners.
// Non-blocking: errors are logged.
func (w *Worker) notifyStatus(ctx context.Context, crID, status string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.NotifyRunStatus(ctx, crID, status); err != nil {
		slog.Warn("Failed to publish run status", "cr_id", crID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, crID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentRunID = crID
	w.lastActivity = time.Now()
}
