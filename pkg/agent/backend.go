package agent

import (
	"context"
)

// runFunc is the backend-internal execution primitive both Execute and
// Stream are built on.
type runFunc func(ctx context.Context, task *Task, s sink) (*Result, error)

// streamViaRun adapts a runFunc to the Stream contract: events flow on
// the channel while the task runs, and the result function blocks
// until the channel closed.
func streamViaRun(ctx context.Context, task *Task, run runFunc) (<-chan *Event, func() (*Result, error), error) {
	events := make(chan *Event, 64)
	done := make(chan struct{})

	var result *Result
	var runErr error

	go func() {
		defer close(events)
		defer close(done)
		result, runErr = run(ctx, task, func(e *Event) {
			select {
			case events <- e:
			case <-ctx.Done():
			}
		})
	}()

	wait := func() (*Result, error) {
		<-done
		return result, runErr
	}
	return events, wait, nil
}

// prepareTools builds the toolbox and definitions for a task. Tasks
// without tools get a nil toolbox and no definitions.
func prepareTools(task *Task) (*Toolbox, []ToolDefinition, error) {
	if len(task.Tools) == 0 {
		return nil, nil, nil
	}
	toolbox, err := NewToolbox(task.WorkingDir, task.Tools)
	if err != nil {
		return nil, nil, err
	}
	return toolbox, Definitions(task.Tools), nil
}

func pollNudge(ctx context.Context, task *Task) string {
	if task.Nudge == nil {
		return ""
	}
	return task.Nudge(ctx)
}

// transcript accumulates the conversation for storage.
type transcript struct {
	messages []map[string]interface{}
}

func newTranscript(task *Task) *transcript {
	t := &transcript{}
	t.add("system", task.SystemPrompt)
	t.add("user", task.UserPrompt)
	return t
}

func (t *transcript) add(role, content string) {
	t.messages = append(t.messages, map[string]interface{}{
		"role":    role,
		"content": content,
	})
}

func (t *transcript) addToolCall(tool, input string) {
	t.messages = append(t.messages, map[string]interface{}{
		"role":  "assistant",
		"tool":  tool,
		"input": input,
	})
}

func (t *transcript) addToolResult(tool, output string) {
	t.messages = append(t.messages, map[string]interface{}{
		"role":   "tool",
		"tool":   tool,
		"output": output,
	})
}
