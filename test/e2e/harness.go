// Package e2e exercises the full pipeline against a real PostgreSQL
// database and real git repositories, with agent calls answered by a
// scripted backend.
package e2e

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/database"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/pipeline"
	"github.com/CollideNV/hadron/pkg/queue"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

// TestApp wires a complete single-pod deployment for one test: worker
// pool, pipeline executor, scripted agents, and a dedicated database
// schema.
type TestApp struct {
	Client      *database.Client
	Runs        *services.RunService
	Checkpoints *services.CheckpointService
	Events      *services.EventService
	Registry    *interventions.Registry
	Backend     *ScriptedBackend
	Pipeline    *config.PipelineConfig

	pool *queue.WorkerPool
}

// NewTestApp builds the app. Callers may adjust app.Pipeline before
// triggering; the snapshot is frozen per run at trigger time.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	client := testdb.NewTestClient(t)
	backend := NewScriptedBackend()

	runs := services.NewRunService(client.Client)
	checkpoints := services.NewCheckpointService(client.Client)
	conversations := services.NewConversationService(client.Client)
	eventService := services.NewEventService(client.Client)
	publisher := events.NewPublisher(client.DB())
	registry := interventions.NewRegistry(client.DB(), publisher)

	pipelineCfg := config.DefaultPipelineConfig()
	pipelineCfg.WorkspaceDir = t.TempDir()

	runtime := &pipeline.Runtime{
		Runs:          runs,
		Checkpoints:   checkpoints,
		Conversations: conversations,
		Publisher:     publisher,
		Registry:      registry,
		Agents:        backend,
		Git:           git.NewManager(pipelineCfg.WorkspaceDir),
		Logger:        slog.Default().With("component", "pipeline"),
	}
	executor := pipeline.NewExecutor(runtime)

	queueCfg := &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentRuns:       2,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		RunTimeout:              60 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		HeartbeatInterval:       1 * time.Second,
		OrphanDetectionInterval: 1 * time.Hour,
		OrphanThreshold:         1 * time.Hour,
	}
	pool := queue.NewWorkerPool("e2e-pod", client.Client, queueCfg, executor, runs, publisher)

	app := &TestApp{
		Client:      client,
		Runs:        runs,
		Checkpoints: checkpoints,
		Events:      eventService,
		Registry:    registry,
		Backend:     backend,
		Pipeline:    pipelineCfg,
		pool:        pool,
	}

	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	return app
}

// Trigger creates a pending run for one seeded repository, the way the
// API trigger endpoint does.
func (app *TestApp) Trigger(t *testing.T, repoURL string) string {
	t.Helper()
	raw := &models.RawChangeRequest{
		Title:       "Add audit logging to the payment service",
		Description: "Every payment mutation must leave an audit record.",
		Source:      "api",
		RepoURLs:    []string{repoURL},
		TestCommand: "true",
		Language:    "go",
	}
	run, err := app.Runs.CreateRun(context.Background(), raw, app.Pipeline.Snapshot(raw))
	require.NoError(t, err)
	return run.ID
}

// Resume stores overrides (if any) and requests a resume, the way the
// API resume endpoint does.
func (app *TestApp) Resume(t *testing.T, crID string, overrides map[string]interface{}) {
	t.Helper()
	ctx := context.Background()
	if len(overrides) > 0 {
		require.NoError(t, app.Registry.Set(ctx, crID, interventions.KindResumeOverrides, "",
			overrides, interventions.ResumeOverridesTTL))
	}
	require.NoError(t, app.Runs.RequestResume(ctx, crID))
}

// WaitForStatus blocks until the run reaches the status or the test
// deadline expires.
func (app *TestApp) WaitForStatus(t *testing.T, crID string, status crrun.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		run, err := app.Runs.GetRun(context.Background(), crID)
		return err == nil && run.Status == status
	}, 60*time.Second, 100*time.Millisecond, "run %s never reached status %s", crID, status)
}

// seedOriginRepo creates a bare repository with one commit on main and
// returns its path, usable as a clone URL.
func seedOriginRepo(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	work := filepath.Join(base, "seed")
	origin := filepath.Join(base, "payments.git")

	runGit(t, base, "init", "-b", "main", work)
	runGit(t, work, "config", "user.email", "e2e@test")
	runGit(t, work, "config", "user.name", "e2e")
	require.NoError(t, os.WriteFile(filepath.Join(work, "README.md"), []byte("# payments\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(work, "AGENTS.md"), []byte("Use table-driven tests.\n"), 0o644))
	runGit(t, work, "add", "-A")
	runGit(t, work, "commit", "-m", "initial")
	runGit(t, base, "clone", "--bare", work, origin)
	return origin
}

// runGit executes git in dir and fails the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
	return string(out)
}

// branchExists reports whether a bare repository carries the branch.
func branchExists(dir, branch string) bool {
	cmd := exec.Command("git", "rev-parse", "--verify", "refs/heads/"+branch)
	cmd.Dir = dir
	return cmd.Run() == nil
}
