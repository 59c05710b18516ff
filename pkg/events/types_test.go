package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventType(t *testing.T) {
	for _, s := range []string{
		"pipeline_started", "stage_entered", "stage_completed",
		"agent_started", "agent_completed", "agent_tool_call",
		"agent_output", "agent_nudge", "phase_started", "phase_completed",
		"test_run", "review_finding", "cost_update", "intervention_set",
		"pipeline_paused", "pipeline_resumed", "pipeline_completed",
		"pipeline_failed",
	} {
		got, err := ParseEventType(s)
		require.NoError(t, err, s)
		assert.Equal(t, EventType(s), got)
	}

	_, err := ParseEventType("session.status")
	assert.Error(t, err)
	_, err = ParseEventType("")
	assert.Error(t, err)
}

func TestDecodeEventRejectsUnknownType(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"sequence_id": 7,
		"cr_id":       "cr-1a2b3c4d",
		"event_type":  "totally_new_thing",
		"data":        map[string]any{},
	})
	_, err := DecodeEvent(raw)
	assert.Error(t, err)

	_, err = DecodeEvent([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeEventRoundTrip(t *testing.T) {
	in := &Event{
		SequenceID: 42,
		CRID:       "cr-1a2b3c4d",
		Stage:      "review",
		Type:       TypeReviewFinding,
		Data:       map[string]any{"severity": "major"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	out, err := DecodeEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.SequenceID)
	assert.Equal(t, TypeReviewFinding, out.Type)
	assert.Equal(t, "major", out.Data["severity"])
}

func TestStreamTerminal(t *testing.T) {
	assert.True(t, TypePipelineCompleted.StreamTerminal())
	assert.True(t, TypePipelineFailed.StreamTerminal())
	assert.True(t, TypePipelinePaused.StreamTerminal())
	assert.False(t, TypeStageCompleted.StreamTerminal())
	assert.False(t, TypePipelineResumed.StreamTerminal())
}

func TestCRChannel(t *testing.T) {
	assert.Equal(t, "cr:cr-1a2b3c4d", CRChannel("cr-1a2b3c4d"))

	id, ok := crIDFromChannel("cr:cr-1a2b3c4d")
	assert.True(t, ok)
	assert.Equal(t, "cr-1a2b3c4d", id)

	_, ok = crIDFromChannel("runs")
	assert.False(t, ok)
}
