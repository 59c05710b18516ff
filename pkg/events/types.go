// Package events provides the per-CR event stream: persistent append
// with PostgreSQL NOTIFY fan-out, WebSocket and in-process delivery,
// and gap-free replay-then-subscribe streaming.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType identifies one variant of the closed pipeline event enum.
type EventType string

// Pipeline event types. This set is closed: the decoder rejects
// anything else, logging and dropping unknown variants.
const (
	TypePipelineStarted   EventType = "pipeline_started"
	TypeStageEntered      EventType = "stage_entered"
	TypeStageCompleted    EventType = "stage_completed"
	TypeAgentStarted      EventType = "agent_started"
	TypeAgentCompleted    EventType = "agent_completed"
	TypeAgentToolCall     EventType = "agent_tool_call"
	TypeAgentOutput       EventType = "agent_output"
	TypeAgentNudge        EventType = "agent_nudge"
	TypePhaseStarted      EventType = "phase_started"
	TypePhaseCompleted    EventType = "phase_completed"
	TypeTestRun           EventType = "test_run"
	TypeReviewFinding     EventType = "review_finding"
	TypeCostUpdate        EventType = "cost_update"
	TypeInterventionSet   EventType = "intervention_set"
	TypePipelinePaused    EventType = "pipeline_paused"
	TypePipelineResumed   EventType = "pipeline_resumed"
	TypePipelineCompleted EventType = "pipeline_completed"
	TypePipelineFailed    EventType = "pipeline_failed"
)

var knownTypes = map[EventType]bool{
	TypePipelineStarted: true, TypeStageEntered: true, TypeStageCompleted: true,
	TypeAgentStarted: true, TypeAgentCompleted: true, TypeAgentToolCall: true,
	TypeAgentOutput: true, TypeAgentNudge: true, TypePhaseStarted: true,
	TypePhaseCompleted: true, TypeTestRun: true, TypeReviewFinding: true,
	TypeCostUpdate: true, TypeInterventionSet: true, TypePipelinePaused: true,
	TypePipelineResumed: true, TypePipelineCompleted: true, TypePipelineFailed: true,
}

// ParseEventType validates a wire string against the closed enum.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !knownTypes[t] {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}

// StreamTerminal reports whether reception of this event closes a live
// stream. pipeline_paused is not terminal for the CR but ends the
// stream until resume.
func (t EventType) StreamTerminal() bool {
	return t == TypePipelineCompleted || t == TypePipelineFailed || t == TypePipelinePaused
}

// Event is one entry of a CR's ordered stream. SequenceID is the
// bigserial row id, strictly monotonic within the CR.
type Event struct {
	SequenceID int64          `json:"sequence_id"`
	CRID       string         `json:"cr_id"`
	Stage      string         `json:"stage,omitempty"`
	Type       EventType      `json:"event_type"`
	Data       map[string]any `json:"data"`
	Timestamp  time.Time      `json:"timestamp"`

	// Truncated marks a NOTIFY envelope whose data was dropped to fit
	// the 8000-byte NOTIFY limit; the full row is available via catchup.
	Truncated bool `json:"truncated,omitempty"`
}

// DecodeEvent parses a wire envelope, enforcing the closed enum.
func DecodeEvent(raw []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("malformed event envelope: %w", err)
	}
	if _, err := ParseEventType(string(e.Type)); err != nil {
		return nil, err
	}
	return &e, nil
}

// CRChannel returns the NOTIFY channel name for a CR's event stream.
// Format: "cr:{cr_id}"
func CRChannel(crID string) string {
	return "cr:" + crID
}

// GlobalRunsChannel carries transient run-status updates for the run
// list; the dashboard subscribes here instead of per-CR channels.
const GlobalRunsChannel = "runs"

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "cr:cr-1a2b3c4d")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
