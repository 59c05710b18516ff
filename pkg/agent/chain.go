package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

const (
	// defaultCallTimeout bounds a single provider invocation when the
	// task carries no timeout of its own.
	defaultCallTimeout = 120 * time.Second

	// Rate-limit errors are retried with exponential back-off; other
	// errors fail the provider immediately.
	maxRateLimitRetries = 5
	baseBackoff         = 60 * time.Second
)

// providerEntry is one registered backend with its throttle.
type providerEntry struct {
	backend      Backend
	limiter      *rate.Limiter
	defaultModel string
}

// Chain routes agent tasks to the provider serving the requested model
// and falls back through the configured provider order when a provider
// fails. Each provider carries a token bucket shared across all runs
// in the process.
type Chain struct {
	order     []string
	providers map[string]*providerEntry
	resolve   func(model string) string
	logger    *slog.Logger
}

// NewChain builds an empty chain. order is the fallback sequence;
// resolve maps a model id to its provider name.
func NewChain(order []string, resolve func(model string) string) *Chain {
	return &Chain{
		order:     append([]string(nil), order...),
		providers: make(map[string]*providerEntry),
		resolve:   resolve,
		logger:    slog.Default().With("component", "agent.chain"),
	}
}

// Register adds a provider backend. defaultModel is used when the
// chain falls back to this provider for a task whose model belongs to
// another provider. rps/burst configure the provider's token bucket.
func (c *Chain) Register(provider string, backend Backend, defaultModel string, rps float64, burst int) {
	c.providers[provider] = &providerEntry{
		backend:      backend,
		limiter:      rate.NewLimiter(rate.Limit(rps), burst),
		defaultModel: defaultModel,
	}
}

// Execute runs the task on the provider serving task.Model, falling
// back through the chain order on failure.
func (c *Chain) Execute(ctx context.Context, task *Task) (*Result, error) {
	return c.executeWithSink(ctx, task, nil)
}

// Stream is Execute with event delivery: backend events flow into the
// channel while the task runs, with the same per-call timeout and
// rate-limit retry. A provider that fails mid-stream may already have
// emitted events; the fallback re-runs the task, so consumers can see
// a second agent_started for the same call.
func (c *Chain) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, func(ctx context.Context, task *Task, s sink) (*Result, error) {
		return c.executeWithSink(ctx, task, s)
	})
}

func (c *Chain) executeWithSink(ctx context.Context, task *Task, s sink) (*Result, error) {
	var lastErr error
	for _, provider := range c.attemptOrder(task.Model) {
		entry := c.providers[provider]
		if entry == nil {
			continue
		}
		attempt := *task
		if c.resolve(task.Model) != provider {
			attempt.Model = entry.defaultModel
		}
		result, err := c.callWithRetry(ctx, provider, entry, &attempt, s)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("provider failed, falling back",
			"provider", provider, "role", task.Role, "error", err)
	}
	if lastErr == nil {
		lastErr = errors.New("no providers registered")
	}
	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// attemptOrder puts the model's own provider first, then the rest of
// the chain order.
func (c *Chain) attemptOrder(model string) []string {
	preferred := c.resolve(model)
	order := make([]string, 0, len(c.order)+1)
	if preferred != "" {
		order = append(order, preferred)
	}
	for _, p := range c.order {
		if p != preferred {
			order = append(order, p)
		}
	}
	return order
}

func (c *Chain) callWithRetry(ctx context.Context, provider string, entry *providerEntry, task *Task, s sink) (*Result, error) {
	backoff := baseBackoff
	for attempt := 0; ; attempt++ {
		if err := entry.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, perCallTimeout(task))
		result, err := c.invoke(callCtx, entry.backend, task, s)
		cancel()
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrRateLimited) || attempt >= maxRateLimitRetries-1 {
			return nil, err
		}

		c.logger.Info("rate limited, backing off",
			"provider", provider, "attempt", attempt+1, "backoff", backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
}

// invoke runs one provider attempt. Without a sink it uses the plain
// Execute path; with one it drains the backend's stream inline.
func (c *Chain) invoke(ctx context.Context, backend Backend, task *Task, s sink) (*Result, error) {
	if s == nil {
		return backend.Execute(ctx, task)
	}
	events, wait, err := backend.Stream(ctx, task)
	if err != nil {
		return nil, err
	}
	for e := range events {
		s.emit(e)
	}
	return wait()
}

// perCallTimeout is the task's timeout, from the run's frozen config
// snapshot, falling back to the chain default.
func perCallTimeout(task *Task) time.Duration {
	if task.Timeout > 0 {
		return task.Timeout
	}
	return defaultCallTimeout
}
