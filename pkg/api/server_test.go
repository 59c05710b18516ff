package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/ent"
	"github.com/CollideNV/hadron/ent/crrun"
	"github.com/CollideNV/hadron/pkg/config"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

type testServer struct {
	router   *gin.Engine
	client   *ent.Client
	runs     *services.RunService
	registry *interventions.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	runs := services.NewRunService(dbClient.Client)
	registry := interventions.NewRegistry(dbClient.DB(), nil)

	srv := NewServer(Deps{
		PipelineConfig: config.DefaultPipelineConfig(),
		DB:             dbClient,
		Runs:           runs,
		Checkpoints:    services.NewCheckpointService(dbClient.Client),
		Conversations:  services.NewConversationService(dbClient.Client),
		Audit:          services.NewAuditService(dbClient.Client),
		Registry:       registry,
	})

	return &testServer{
		router:   srv.Router(),
		client:   dbClient.Client,
		runs:     runs,
		registry: registry,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (ts *testServer) createRun(t *testing.T, title string) string {
	t.Helper()
	raw := &models.RawChangeRequest{Title: title, Source: "api", RepoURL: "https://example.com/api.git"}
	run, err := ts.runs.CreateRun(context.Background(), raw, &models.ConfigSnapshot{})
	require.NoError(t, err)
	return run.ID
}

func (ts *testServer) setStatus(t *testing.T, crID string, status crrun.Status) {
	t.Helper()
	require.NoError(t, ts.client.CRRun.UpdateOneID(crID).SetStatus(status).Exec(context.Background()))
}

func TestReadyzReportsDatabase(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	ts.decode(t, rec, &body)
	require.Equal(t, "healthy", body["status"])
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}
