package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
	testdb "github.com/CollideNV/hadron/test/database"
)

func TestCheckpointSequenceAndLatest(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewCheckpointService(client.Client)
	ctx := context.Background()

	state, node, err := svc.LatestCheckpoint(ctx, "cr-ckpt01")
	require.NoError(t, err)
	assert.Nil(t, state)
	assert.Empty(t, node)

	s1 := models.NewPipelineState("cr-ckpt01", &models.RawChangeRequest{Title: "t"}, &models.ConfigSnapshot{})
	require.NoError(t, svc.WriteCheckpoint(ctx, "cr-ckpt01", "intake", s1))

	s2, err := s1.Clone()
	require.NoError(t, err)
	s2.Verified = true
	s2.VerificationLoops = 2
	require.NoError(t, svc.WriteCheckpoint(ctx, "cr-ckpt01", "behaviour_verification", s2))

	// Another run's checkpoints never leak in.
	require.NoError(t, svc.WriteCheckpoint(ctx, "cr-ckpt02", "intake", s1))

	state, node, err = svc.LatestCheckpoint(ctx, "cr-ckpt01")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "behaviour_verification", node)
	assert.True(t, state.Verified)
	assert.Equal(t, 2, state.VerificationLoops)

	count, err := svc.CountCheckpoints(ctx, "cr-ckpt01")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConversationStoreAndRetrieve(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewConversationService(client.Client)
	ctx := context.Background()

	messages := []map[string]interface{}{
		{"role": "system", "content": "you translate change requests"},
		{"role": "assistant", "content": "Feature: audit logging"},
	}
	require.NoError(t, svc.Store(ctx, "cr-conv01", "k1", "spec_writer", "payments", messages))
	require.NoError(t, svc.Store(ctx, "cr-conv01", "k2", "spec_verifier", "payments", messages[:1]))

	keys, err := svc.ListKeys(ctx, "cr-conv01")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"k1", "k2"}, keys)

	got, err := svc.Get(ctx, "cr-conv01", "k1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Feature: audit logging", got[1]["content"])

	_, err = svc.Get(ctx, "cr-conv01", "k-missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
