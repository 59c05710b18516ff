package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/models"
)

// The happy path: trigger → intake → specs → verification → TDD →
// review → rebase → delivery (self_contained) → auto-approved gate →
// release → retrospective → completed.
func TestPipelineRunsToCompletion(t *testing.T) {
	app := NewTestApp(t)
	origin := seedOriginRepo(t)

	crID := app.Trigger(t, origin)
	app.WaitForStatus(t, crID, crrun.StatusCompleted)

	ctx := context.Background()
	run, err := app.Runs.GetRun(ctx, crID)
	require.NoError(t, err)
	assert.Nil(t, run.PauseReason)
	assert.Greater(t, run.InputTokens, int64(0))
	assert.Greater(t, run.CostUsd, 0.0)

	// A checkpoint per top-level node.
	count, err := app.Checkpoints.CountCheckpoints(ctx, crID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 10)

	// The feature branch was pushed to the origin.
	assert.True(t, branchExists(origin, git.BranchName(crID)))

	// The event stream ends with pipeline_completed.
	evts, err := app.Events.GetEventsSince(ctx, crID, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, evts)
	assert.Equal(t, events.TypePipelineCompleted, evts[len(evts)-1].Type)

	// Agent activity is visible in the stream: every agent invocation
	// publishes a matched started/completed pair carrying its role.
	var agentStarted, agentCompleted int
	for _, e := range evts {
		switch e.Type {
		case events.TypeAgentStarted:
			agentStarted++
			assert.NotEmpty(t, e.Data["role"])
		case events.TypeAgentCompleted:
			agentCompleted++
		}
	}
	assert.Greater(t, agentStarted, 0, "agent_started events reach the per-run stream")
	assert.Equal(t, agentStarted, agentCompleted)

	// The final state carries a release result for the repository.
	state, node, err := app.Checkpoints.LatestCheckpoint(ctx, crID)
	require.NoError(t, err)
	assert.Equal(t, "retrospective", node)
	require.Contains(t, state.ReleaseResults, "payments")
	assert.True(t, state.ReleaseResults["payments"].Released)
}

// A verifier that never accepts the specs trips the loop breaker: the
// run pauses rather than failing, and an operator override resumes it
// past verification to completion.
func TestVerificationBreakerPausesThenOverrideResumes(t *testing.T) {
	app := NewTestApp(t)
	origin := seedOriginRepo(t)

	app.Backend.ScriptOutput(agent.RoleSpecVerifier,
		`{"verified":false,"feedback":"missing failure-path scenarios"}`)

	crID := app.Trigger(t, origin)
	app.WaitForStatus(t, crID, crrun.StatusPaused)

	ctx := context.Background()
	run, err := app.Runs.GetRun(ctx, crID)
	require.NoError(t, err)
	require.NotNil(t, run.PauseReason)
	assert.Equal(t, models.PauseVerificationLimit, *run.PauseReason)
	assert.Equal(t, app.Pipeline.MaxVerificationLoops, app.Backend.Calls(agent.RoleSpecVerifier))

	// Override the verification verdict and resume.
	app.Resume(t, crID, map[string]interface{}{"behaviour_verified": true})
	app.WaitForStatus(t, crID, crrun.StatusCompleted)

	// The override skipped re-verification; the verifier was not
	// called again after the resume.
	assert.Equal(t, app.Pipeline.MaxVerificationLoops, app.Backend.Calls(agent.RoleSpecVerifier))

	evts, err := app.Events.GetEventsSince(ctx, crID, 0, 0)
	require.NoError(t, err)
	var resumed bool
	for _, e := range evts {
		if e.Type == events.TypePipelineResumed {
			resumed = true
		}
	}
	assert.True(t, resumed, "expected a pipeline_resumed event")
}

// With approval required, the release gate parks the run until an
// approval arrives through a resume override.
func TestReleaseGateWaitsForApproval(t *testing.T) {
	app := NewTestApp(t)
	app.Pipeline.RequireApproval = true
	origin := seedOriginRepo(t)

	crID := app.Trigger(t, origin)
	app.WaitForStatus(t, crID, crrun.StatusPaused)

	ctx := context.Background()
	run, err := app.Runs.GetRun(ctx, crID)
	require.NoError(t, err)
	require.NotNil(t, run.PauseReason)
	assert.Equal(t, models.PauseWaitingApproval, *run.PauseReason)

	// No release happened while waiting.
	assert.Equal(t, 0, app.Backend.Calls(agent.RoleReleaseWriter))

	app.Resume(t, crID, map[string]interface{}{"approved": true})
	app.WaitForStatus(t, crID, crrun.StatusCompleted)

	assert.Equal(t, 1, app.Backend.Calls(agent.RoleReleaseWriter))
}
