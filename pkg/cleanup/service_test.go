package cleanup

import (
	"context"
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

func setup(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	cfg := &config.RetentionConfig{
		EventBuffer:           time.Hour,
		ConversationRetention: time.Hour,
		CleanupInterval:       time.Minute,
	}
	svc := NewService(cfg, services.NewEventService(client), services.NewConversationService(client))
	return client, svc
}

func seedRun(t *testing.T, client *ent.Client, status crrun.Status, age time.Duration) string {
	t.Helper()
	runs := services.NewRunService(client)
	raw := &models.RawChangeRequest{Title: "retention test", Source: "api"}
	run, err := runs.CreateRun(context.Background(), raw, &models.ConfigSnapshot{})
	require.NoError(t, err)
	require.NoError(t, client.CRRun.UpdateOneID(run.ID).
		SetStatus(status).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(context.Background()))
	return run.ID
}

func seedEvent(t *testing.T, client *ent.Client, crID string) {
	t.Helper()
	require.NoError(t, client.Event.Create().
		SetCrID(crID).
		SetStage("intake").
		SetEventType("stage_entered").
		SetPayload(map[string]interface{}{}).
		Exec(context.Background()))
}

func TestCleanupRemovesExpiredTerminalStreams(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	expired := seedRun(t, client, crrun.StatusCompleted, 2*time.Hour)
	seedEvent(t, client, expired)

	recent := seedRun(t, client, crrun.StatusCompleted, time.Minute)
	seedEvent(t, client, recent)

	live := seedRun(t, client, crrun.StatusPaused, 2*time.Hour)
	seedEvent(t, client, live)

	svc.runAll(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	crIDs := make([]string, len(remaining))
	for i, e := range remaining {
		crIDs[i] = e.CrID
	}
	assert.NotContains(t, crIDs, expired)
	assert.Contains(t, crIDs, recent)
	// Paused runs keep their stream no matter how old: they can resume.
	assert.Contains(t, crIDs, live)
}

func TestCleanupRemovesOldConversations(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()

	crID := seedRun(t, client, crrun.StatusCompleted, time.Minute)
	require.NoError(t, client.Conversation.Create().
		SetCrID(crID).
		SetKey("code_writer:api:1").
		SetRole("code_writer").
		SetRepo("api").
		SetMessages([]map[string]interface{}{{"role": "user", "content": "hi"}}).
		SetCreatedAt(time.Now().Add(-2*time.Hour)).
		Exec(ctx))
	require.NoError(t, client.Conversation.Create().
		SetCrID(crID).
		SetKey("code_writer:api:2").
		SetRole("code_writer").
		SetRepo("api").
		SetMessages([]map[string]interface{}{{"role": "user", "content": "hi"}}).
		Exec(ctx))

	svc.runAll(ctx)

	keys, err := services.NewConversationService(client).ListKeys(ctx, crID)
	require.NoError(t, err)
	assert.Equal(t, []string{"code_writer:api:2"}, keys)
}

func TestServiceStartStop(t *testing.T) {
	_, svc := setup(t)

	svc.Start(context.Background())
	svc.Start(context.Background()) // idempotent
	svc.Stop()
}
