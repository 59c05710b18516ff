package interventions_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

func TestSetAndConsumeOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)
	ctx := context.Background()

	payload := map[string]any{"text": "prefer the v2 client"}
	require.NoError(t, reg.Set(ctx, "cr-int01", interventions.KindInstructions, "", payload, 0))

	got, err := reg.GetAndDelete(ctx, "cr-int01", interventions.KindInstructions, "")
	require.NoError(t, err)
	assert.Equal(t, "prefer the v2 client", got["text"])

	// Exactly-once: a second consumer sees nothing.
	got, err = reg.GetAndDelete(ctx, "cr-int01", interventions.KindInstructions, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSetOverwritesSameKindAndKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)
	ctx := context.Background()

	require.NoError(t, reg.Set(ctx, "cr-int02", interventions.KindInstructions, "",
		map[string]any{"text": "first"}, 0))
	require.NoError(t, reg.Set(ctx, "cr-int02", interventions.KindInstructions, "",
		map[string]any{"text": "second"}, 0))

	got, err := reg.GetAndDelete(ctx, "cr-int02", interventions.KindInstructions, "")
	require.NoError(t, err)
	assert.Equal(t, "second", got["text"])
}

func TestNudgesAreKeyedByRole(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)
	ctx := context.Background()

	require.NoError(t, reg.Set(ctx, "cr-int03", interventions.KindNudge, "code_writer",
		map[string]any{"text": "smaller commits"}, 0))

	got, err := reg.GetAndDelete(ctx, "cr-int03", interventions.KindNudge, "test_writer")
	require.NoError(t, err)
	assert.Nil(t, got, "a nudge for one role is invisible to another")

	got, err = reg.GetAndDelete(ctx, "cr-int03", interventions.KindNudge, "code_writer")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "smaller commits", got["text"])
}

func TestExpiredOverridesAreNotDelivered(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)
	ctx := context.Background()

	require.NoError(t, reg.Set(ctx, "cr-int04", interventions.KindResumeOverrides, "",
		map[string]any{"approved": true}, time.Millisecond))
	time.Sleep(50 * time.Millisecond)

	got, err := reg.GetAndDelete(ctx, "cr-int04", interventions.KindResumeOverrides, "")
	require.NoError(t, err)
	assert.Nil(t, got)

	// The expired row was swept, so a fresh override stores cleanly.
	require.NoError(t, reg.Set(ctx, "cr-int04", interventions.KindResumeOverrides, "",
		map[string]any{"approved": true}, interventions.ResumeOverridesTTL))
	got, err = reg.GetAndDelete(ctx, "cr-int04", interventions.KindResumeOverrides, "")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, true, got["approved"])
}

func TestPeekDoesNotConsume(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)
	ctx := context.Background()

	require.NoError(t, reg.Set(ctx, "cr-int05", interventions.KindResumeOverrides, "",
		map[string]any{"ci_passed": true}, interventions.ResumeOverridesTTL))

	for i := 0; i < 2; i++ {
		got, err := reg.Peek(ctx, "cr-int05", interventions.KindResumeOverrides, "")
		require.NoError(t, err)
		require.NotNil(t, got)
	}

	got, err := reg.GetAndDelete(ctx, "cr-int05", interventions.KindResumeOverrides, "")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSetRejectsUnknownKind(t *testing.T) {
	client := testdb.NewTestClient(t)
	reg := interventions.NewRegistry(client.DB(), nil)

	err := reg.Set(context.Background(), "cr-int06", interventions.Kind("poke"), "", nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown intervention kind")
}

func TestSetPublishesInterventionEvent(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher := events.NewPublisher(client.DB())
	reg := interventions.NewRegistry(client.DB(), publisher)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	require.NoError(t, reg.Set(ctx, "cr-int07", interventions.KindNudge, "code_writer",
		map[string]any{"text": "mind the linter"}, 0))

	evts, err := eventService.GetEventsSince(ctx, "cr-int07", 0, 0)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, events.TypeInterventionSet, evts[0].Type)
	assert.Equal(t, "nudge", evts[0].Data["kind"])
	assert.Equal(t, "code_writer", evts[0].Data["key"])
}
