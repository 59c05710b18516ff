package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/services"
)

func TestTriggerCreatesRun(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/trigger", map[string]any{
		"title":       "Add rate limiting",
		"description": "Limit login attempts per IP",
		"source":      "api",
		"repo_url":    "https://example.com/api.git",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp TriggerResponse
	ts.decode(t, rec, &resp)
	assert.NotEmpty(t, resp.CRID)
	assert.Equal(t, "pending", resp.Status)

	run, err := ts.runs.GetRun(context.Background(), resp.CRID)
	require.NoError(t, err)
	assert.Equal(t, "Add rate limiting", run.Title)
	// The snapshot is frozen at trigger time.
	assert.NotEmpty(t, run.ConfigSnapshot)
}

func TestTriggerRejectsDuplicateExternalID(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"title":       "Tracked change",
		"source":      "jira",
		"external_id": "PROJ-123",
	}
	rec := ts.do(t, http.MethodPost, "/api/pipeline/trigger", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/pipeline/trigger", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTriggerValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/trigger", map[string]any{
		"title":  "",
		"source": "api",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/pipeline/trigger", map[string]any{
		"title":  "valid title",
		"source": "carrier-pigeon",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndGetRuns(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "listed run")

	rec := ts.do(t, http.MethodGet, "/api/pipeline/runs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Runs []RunResponse `json:"runs"`
	}
	ts.decode(t, rec, &list)
	require.Len(t, list.Runs, 1)
	assert.Equal(t, crID, list.Runs[0].CRID)

	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail RunDetailResponse
	ts.decode(t, rec, &detail)
	assert.Equal(t, crID, detail.CRID)
	assert.Equal(t, 0, detail.CheckpointCount)

	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs/cr-missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRunsLimitValidation(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/pipeline/runs?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs?limit=9999", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumePausedRunStoresOverrides(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "paused run")
	ts.setStatus(t, crID, crrun.StatusPaused)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/resume", map[string]any{
		"overrides": map[string]any{"ci_passed": true},
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	run, err := ts.runs.GetRun(context.Background(), crID)
	require.NoError(t, err)
	assert.NotNil(t, run.ResumeRequestedAt)

	payload, err := ts.registry.Peek(context.Background(), crID, interventions.KindResumeOverrides, "")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, true, payload["ci_passed"])
}

func TestResumeWithoutOverrides(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "paused run")
	ts.setStatus(t, crID, crrun.StatusPaused)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/resume", nil)
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestResumeRejectsUnknownOverride(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "paused run")
	ts.setStatus(t, crID, crrun.StatusPaused)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/resume", map[string]any{
		"overrides": map[string]any{"ci_pased": true},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResumeNonPausedRunRollsBackOverrides(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "running run")
	ts.setStatus(t, crID, crrun.StatusRunning)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/resume", map[string]any{
		"overrides": map[string]any{"approved": true},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	payload, err := ts.registry.Peek(context.Background(), crID, interventions.KindResumeOverrides, "")
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestInterveneStoresInstructions(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "guided run")

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/intervene", map[string]any{
		"text": "Prefer the v2 endpoint",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	payload, err := ts.registry.Peek(context.Background(), crID, interventions.KindInstructions, "")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "Prefer the v2 endpoint", payload["text"])
}

func TestInterveneValidation(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "guided run")

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/intervene", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/pipeline/runs/cr-missing/intervene", map[string]any{"text": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNudgeKeyedByRole(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "nudged run")

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/nudge", map[string]any{
		"role":    "code_writer",
		"message": "The failing test is flaky, rerun it",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	payload, err := ts.registry.Peek(context.Background(), crID, interventions.KindNudge, "code_writer")
	require.NoError(t, err)
	require.NotNil(t, payload)
	assert.Equal(t, "The failing test is flaky, rerun it", payload["message"])
}

func TestNudgeRejectsUnknownRole(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "nudged run")

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/nudge", map[string]any{
		"role":    "astrologer",
		"message": "consult the stars",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelPausedRun(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "cancelled run")
	ts.setStatus(t, crID, crrun.StatusPaused)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	run, err := ts.runs.GetRun(context.Background(), crID)
	require.NoError(t, err)
	assert.Equal(t, crrun.StatusCancelled, run.Status)
}

func TestCancelRunningRunConflicts(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "running run")
	ts.setStatus(t, crID, crrun.StatusRunning)

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestConversationEndpoints(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "conversed run")

	convs := services.NewConversationService(ts.client)
	require.NoError(t, convs.Store(context.Background(), crID, "code_writer:api:1", "code_writer", "api",
		[]map[string]interface{}{{"role": "user", "content": "fix it"}}))

	rec := ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID+"/conversations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Keys []string `json:"keys"`
	}
	ts.decode(t, rec, &list)
	assert.Equal(t, []string{"code_writer:api:1"}, list.Keys)

	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID+"/conversations/code_writer:api:1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID+"/conversations/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuditTrailRecordsActions(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "audited run")

	rec := ts.do(t, http.MethodPost, "/api/pipeline/runs/"+crID+"/intervene", map[string]any{"text": "hello"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID+"/audit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trail struct {
		Entries []map[string]any `json:"entries"`
	}
	ts.decode(t, rec, &trail)
	require.Len(t, trail.Entries, 1)
	assert.Equal(t, "intervene", trail.Entries[0]["action"])
}

func TestWorkerLogEndpoint(t *testing.T) {
	ts := newTestServer(t)
	crID := ts.createRun(t, "logged run")
	require.NoError(t, ts.client.CRRun.UpdateOneID(crID).
		SetWorkerLog("INFO run claimed\n").
		Exec(context.Background()))

	rec := ts.do(t, http.MethodGet, "/api/pipeline/runs/"+crID+"/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "run claimed")
}
