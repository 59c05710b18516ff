package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records the tasks it received and replays canned results.
// Its stream brackets each call with agent_started/agent_completed and
// replays any canned mid-call events, the way real backends do.
type fakeBackend struct {
	calls   []*Task
	results []*Result
	events  []*Event
	err     error
}

func (f *fakeBackend) Execute(ctx context.Context, task *Task) (*Result, error) {
	copied := *task
	f.calls = append(f.calls, &copied)
	if f.err != nil {
		return nil, f.err
	}
	r := f.results[len(f.calls)-1]
	return r, nil
}

func (f *fakeBackend) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, func(ctx context.Context, task *Task, s sink) (*Result, error) {
		s.emit(&Event{Type: EventAgentStarted})
		for _, e := range f.events {
			s.emit(e)
		}
		result, err := f.Execute(ctx, task)
		if err == nil {
			s.emit(&Event{Type: EventAgentCompleted})
		}
		return result, err
	})
}

func TestThreePhaseSinglePhaseWhenModelsEmpty(t *testing.T) {
	backend := &fakeBackend{results: []*Result{
		{Output: "done", InputTokens: 10, OutputTokens: 5, ModelID: "m"},
	}}
	task := &Task{Role: RoleCodeWriter, Model: "m", UserPrompt: "do it", Tools: AllTools}

	result, err := ThreePhase(context.Background(), backend, task, nil)
	require.NoError(t, err)
	require.Len(t, backend.calls, 1)
	assert.Equal(t, "do it", backend.calls[0].UserPrompt)
	assert.Equal(t, "done", result.Output)
	assert.Equal(t, int64(10), result.InputTokens)
}

func TestThreePhaseRunsAllPhases(t *testing.T) {
	backend := &fakeBackend{results: []*Result{
		{Output: "explored the repo", InputTokens: 1, OutputTokens: 1, ModelID: "cheap"},
		{Output: "the plan", InputTokens: 2, OutputTokens: 2, ModelID: "mid"},
		{Output: "implemented", InputTokens: 3, OutputTokens: 3, ModelID: "big"},
	}}
	task := &Task{
		Role:         RoleCodeWriter,
		Model:        "big",
		ExploreModel: "cheap",
		PlanModel:    "mid",
		UserPrompt:   "fix the bug",
		Tools:        AllTools,
	}

	var phases []string
	result, err := ThreePhase(context.Background(), backend, task, func(e *Event) {
		if e.Type == EventPhaseStarted {
			phases = append(phases, e.Phase)
		}
	})
	require.NoError(t, err)
	require.Len(t, backend.calls, 3)

	// Explore runs on the explore model with read-only tools.
	assert.Equal(t, "cheap", backend.calls[0].Model)
	assert.ElementsMatch(t, ReadOnlyTools, backend.calls[0].Tools)

	// Plan is a tool-less call seeded with the explore summary.
	assert.Equal(t, "mid", backend.calls[1].Model)
	assert.Empty(t, backend.calls[1].Tools)
	assert.Contains(t, backend.calls[1].UserPrompt, "explored the repo")

	// Act gets the full allowlist and both earlier outputs.
	assert.Equal(t, "big", backend.calls[2].Model)
	assert.ElementsMatch(t, AllTools, backend.calls[2].Tools)
	assert.Contains(t, backend.calls[2].UserPrompt, "explored the repo")
	assert.Contains(t, backend.calls[2].UserPrompt, "the plan")

	assert.Equal(t, []string{PhaseExplore, PhasePlan, PhaseAct}, phases)
	assert.Equal(t, "implemented", result.Output)
	assert.Equal(t, int64(6), result.InputTokens)
	assert.Equal(t, int64(6), result.OutputTokens)
}

func TestThreePhaseSkipsPlanOnly(t *testing.T) {
	backend := &fakeBackend{results: []*Result{
		{Output: "explored", ModelID: "cheap"},
		{Output: "acted", ModelID: "big"},
	}}
	task := &Task{Model: "big", ExploreModel: "cheap", UserPrompt: "x"}

	result, err := ThreePhase(context.Background(), backend, task, nil)
	require.NoError(t, err)
	require.Len(t, backend.calls, 2)
	assert.Contains(t, backend.calls[1].UserPrompt, "explored")
	assert.Equal(t, "acted", result.Output)
}

// Agent-level events emitted inside a backend must surface through
// ThreePhase's observer, not just the phase markers.
func TestThreePhaseForwardsAgentEvents(t *testing.T) {
	backend := &fakeBackend{
		results: []*Result{{Output: "done", ModelID: "m"}},
		events: []*Event{
			{Type: EventToolCall, Tool: "read_file", Input: `{"path":"main.go"}`},
			{Type: EventOutput, Text: "looks fine"},
		},
	}
	task := &Task{Role: RoleCodeWriter, Model: "m", UserPrompt: "do it"}

	var observed []string
	_, err := ThreePhase(context.Background(), backend, task, func(e *Event) {
		observed = append(observed, e.Type)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		EventPhaseStarted,
		EventAgentStarted,
		EventToolCall,
		EventOutput,
		EventAgentCompleted,
		EventPhaseCompleted,
	}, observed)
}

func TestThreePhaseForwardsEventsFromEveryPhase(t *testing.T) {
	backend := &fakeBackend{results: []*Result{
		{Output: "explored", ModelID: "cheap"},
		{Output: "planned", ModelID: "mid"},
		{Output: "acted", ModelID: "big"},
	}}
	task := &Task{Model: "big", ExploreModel: "cheap", PlanModel: "mid", UserPrompt: "x"}

	started := 0
	_, err := ThreePhase(context.Background(), backend, task, func(e *Event) {
		if e.Type == EventAgentStarted {
			started++
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 3, started, "each phase is one streamed backend call")
}

func TestStreamViaRunDeliversEventsThenResult(t *testing.T) {
	run := func(ctx context.Context, task *Task, s sink) (*Result, error) {
		s.emit(&Event{Type: EventAgentStarted})
		s.emit(&Event{Type: EventOutput, Text: "hi"})
		s.emit(&Event{Type: EventAgentCompleted})
		return &Result{Output: "hi"}, nil
	}

	events, wait, err := streamViaRun(context.Background(), &Task{}, run)
	require.NoError(t, err)

	var types []string
	for e := range events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{EventAgentStarted, EventOutput, EventAgentCompleted}, types)

	result, err := wait()
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Output)
}
