package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingBackend never returns until its context is cancelled.
type blockingBackend struct{}

func (b *blockingBackend) Execute(ctx context.Context, task *Task) (*Result, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingBackend) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, func(ctx context.Context, task *Task, s sink) (*Result, error) {
		return b.Execute(ctx, task)
	})
}

func testResolver(model string) string {
	switch model {
	case "g-model":
		return "gemini"
	case "a-model":
		return "anthropic"
	}
	return ""
}

func TestChainPrefersModelProvider(t *testing.T) {
	chain := NewChain([]string{"gemini", "anthropic"}, testResolver)
	assert.Equal(t, []string{"anthropic", "gemini"}, chain.attemptOrder("a-model"))
	assert.Equal(t, []string{"gemini", "anthropic"}, chain.attemptOrder("g-model"))
	assert.Equal(t, []string{"gemini", "anthropic"}, chain.attemptOrder("unknown"))
}

func TestChainExecutesOnPreferredProvider(t *testing.T) {
	gemini := &fakeBackend{results: []*Result{{Output: "from gemini", ModelID: "g-model"}}}
	anthropic := &fakeBackend{results: []*Result{{Output: "from anthropic", ModelID: "a-model"}}}

	chain := NewChain([]string{"gemini", "anthropic"}, testResolver)
	chain.Register("gemini", gemini, "g-model", 100, 10)
	chain.Register("anthropic", anthropic, "a-model", 100, 10)

	result, err := chain.Execute(context.Background(), &Task{Model: "a-model", UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "from anthropic", result.Output)
	assert.Empty(t, gemini.calls)
	require.Len(t, anthropic.calls, 1)
	assert.Equal(t, "a-model", anthropic.calls[0].Model)
}

func TestChainFallsBackWithProviderDefaultModel(t *testing.T) {
	gemini := &fakeBackend{err: errors.New("provider down")}
	anthropic := &fakeBackend{results: []*Result{{Output: "rescued", ModelID: "a-model"}}}

	chain := NewChain([]string{"gemini", "anthropic"}, testResolver)
	chain.Register("gemini", gemini, "g-model", 100, 10)
	chain.Register("anthropic", anthropic, "a-model", 100, 10)

	result, err := chain.Execute(context.Background(), &Task{Model: "g-model", UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "rescued", result.Output)

	// The fallback provider runs its own default model, not the
	// original provider's model id.
	require.Len(t, anthropic.calls, 1)
	assert.Equal(t, "a-model", anthropic.calls[0].Model)
}

func TestChainAllProvidersFailed(t *testing.T) {
	chain := NewChain([]string{"gemini"}, testResolver)
	chain.Register("gemini", &fakeBackend{err: errors.New("boom")}, "g-model", 100, 10)

	_, err := chain.Execute(context.Background(), &Task{Model: "g-model"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all providers failed")
}

func TestChainNoProviders(t *testing.T) {
	chain := NewChain(nil, testResolver)
	_, err := chain.Execute(context.Background(), &Task{Model: "g-model"})
	require.Error(t, err)
}

func TestPerCallTimeoutPrefersTask(t *testing.T) {
	assert.Equal(t, defaultCallTimeout, perCallTimeout(&Task{}))
	assert.Equal(t, 30*time.Second, perCallTimeout(&Task{Timeout: 30 * time.Second}))
}

func TestChainHonorsTaskTimeout(t *testing.T) {
	chain := NewChain([]string{"gemini"}, testResolver)
	chain.Register("gemini", &blockingBackend{}, "g-model", 100, 10)

	start := time.Now()
	_, err := chain.Execute(context.Background(),
		&Task{Model: "g-model", Timeout: 50 * time.Millisecond})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second,
		"the task timeout cuts the call short of the 120s default")
}

func TestChainStreamForwardsBackendEvents(t *testing.T) {
	backend := &fakeBackend{
		results: []*Result{{Output: "hi", ModelID: "g-model"}},
		events:  []*Event{{Type: EventToolCall, Tool: "list_dir"}},
	}
	chain := NewChain([]string{"gemini"}, testResolver)
	chain.Register("gemini", backend, "g-model", 100, 10)

	events, wait, err := chain.Stream(context.Background(), &Task{Model: "g-model"})
	require.NoError(t, err)

	var types []string
	for e := range events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{EventAgentStarted, EventToolCall, EventAgentCompleted}, types)

	result, err := wait()
	require.NoError(t, err)
	assert.Equal(t, "hi", result.Output)
}

func TestChainDoesNotRetryNonRateLimitErrors(t *testing.T) {
	backend := &fakeBackend{err: errors.New("invalid request")}
	chain := NewChain([]string{"gemini"}, testResolver)
	chain.Register("gemini", backend, "g-model", 100, 10)

	_, err := chain.Execute(context.Background(), &Task{Model: "g-model"})
	require.Error(t, err)
	assert.Len(t, backend.calls, 1)
}
