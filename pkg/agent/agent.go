// Package agent defines the backend-neutral task and result types for
// LLM agent invocations, the file tools delivered to agents, and the
// provider chain that routes calls across backends.
package agent

import (
	"context"
	"errors"
	"time"
)

// Agent roles. Each maps to a versioned prompt template.
const (
	RoleIntake           = "intake"
	RoleSpecWriter       = "spec_writer"
	RoleSpecVerifier     = "spec_verifier"
	RoleTestWriter       = "test_writer"
	RoleCodeWriter       = "code_writer"
	RoleSecurityReviewer = "security_reviewer"
	RoleQualityReviewer  = "quality_reviewer"
	RoleSpecReviewer     = "spec_compliance_reviewer"
	RoleConflictResolver = "conflict_resolver"
	RoleReleaseWriter    = "release_writer"
	RoleRetrospective    = "retrospective"
)

// ErrRateLimited wraps provider rate-limit responses. Only this error
// class is retried with back-off; everything else fails the call.
var ErrRateLimited = errors.New("provider rate limited")

// Task is one agent invocation.
type Task struct {
	Role         string
	SystemPrompt string
	UserPrompt   string

	// Model is the model id for the act phase (or the whole call when
	// the phase models are empty).
	Model        string
	ExploreModel string
	PlanModel    string

	// Tools is the tool allowlist by name. Empty means no tools.
	Tools []string

	// WorkingDir confines all file tool paths.
	WorkingDir string

	// Timeout bounds one provider invocation. Zero means the chain's
	// default.
	Timeout time.Duration

	// Nudge, when non-nil, is polled between tool-use rounds. A
	// non-empty return is injected into the conversation as an
	// operator message.
	Nudge func(ctx context.Context) string
}

// Result is the outcome of one agent invocation.
type Result struct {
	Output       string
	InputTokens  int64
	OutputTokens int64
	ModelID      string

	// Conversation is the full message transcript, stored for the
	// conversation API.
	Conversation []map[string]interface{}
}

// Event types emitted while an agent runs.
const (
	EventAgentStarted   = "agent_started"
	EventToolCall       = "tool_call"
	EventToolResult     = "tool_result"
	EventOutput         = "output"
	EventNudge          = "nudge"
	EventPhaseStarted   = "phase_started"
	EventPhaseCompleted = "phase_completed"
	EventAgentCompleted = "agent_completed"
)

// Event is one observable step of a running agent.
type Event struct {
	Type  string `json:"type"`
	Phase string `json:"phase,omitempty"`
	Tool  string `json:"tool,omitempty"`
	Input string `json:"input,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Backend executes agent tasks against one LLM provider.
type Backend interface {
	// Execute runs the task to completion.
	Execute(ctx context.Context, task *Task) (*Result, error)

	// Stream runs the task and delivers observable events as they
	// happen. The channel closes after the final event; the Result
	// arrives through the returned function once the channel closed.
	Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error)
}

// sink receives events during execution. Backends call it inline; a
// nil-safe wrapper keeps call sites unconditional.
type sink func(*Event)

func (s sink) emit(e *Event) {
	if s != nil {
		s(e)
	}
}
