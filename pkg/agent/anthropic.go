package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// maxToolRounds bounds the tool-use loop of a single invocation.
const maxToolRounds = 30

// AnthropicBackend executes agent tasks against the Anthropic API.
type AnthropicBackend struct {
	client    anthropic.Client
	maxTokens int64
	logger    *slog.Logger
}

// NewAnthropicBackend builds a backend from an API key.
func NewAnthropicBackend(apiKey string) *AnthropicBackend {
	return &AnthropicBackend{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		maxTokens: 8192,
		logger:    slog.Default().With("component", "agent.anthropic"),
	}
}

// Execute runs the task to completion without event delivery.
func (b *AnthropicBackend) Execute(ctx context.Context, task *Task) (*Result, error) {
	return b.run(ctx, task, nil)
}

// Stream runs the task and delivers events as they happen.
func (b *AnthropicBackend) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, b.run)
}

func (b *AnthropicBackend) run(ctx context.Context, task *Task, s sink) (*Result, error) {
	toolbox, defs, err := prepareTools(task)
	if err != nil {
		return nil, err
	}

	var tools []anthropic.ToolUnionParam
	for _, def := range defs {
		tools = append(tools, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        def.Name,
			Description: anthropic.String(def.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: def.Schema["properties"],
				ExtraFields: map[string]any{
					"required": def.Schema["required"],
				},
			},
		}})
	}

	messages := []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(task.UserPrompt)),
	}
	transcript := newTranscript(task)
	result := &Result{ModelID: task.Model}

	s.emit(&Event{Type: EventAgentStarted})

	for round := 0; round < maxToolRounds; round++ {
		message, err := b.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(task.Model),
			MaxTokens: b.maxTokens,
			System:    []anthropic.TextBlockParam{{Text: task.SystemPrompt}},
			Messages:  messages,
			Tools:     tools,
		})
		if err != nil {
			return nil, classifyAnthropicError(err)
		}

		result.InputTokens += message.Usage.InputTokens
		result.OutputTokens += message.Usage.OutputTokens

		var toolResults []anthropic.ContentBlockParamUnion
		for _, block := range message.Content {
			switch v := block.AsAny().(type) {
			case anthropic.TextBlock:
				result.Output += v.Text
				transcript.add("assistant", v.Text)
				s.emit(&Event{Type: EventOutput, Text: v.Text})
			case anthropic.ToolUseBlock:
				input := string(v.JSON.Input.Raw())
				s.emit(&Event{Type: EventToolCall, Tool: v.Name, Input: input})
				transcript.addToolCall(v.Name, input)
				out, err := toolbox.Dispatch(ctx, v.Name, input)
				if err != nil {
					return nil, fmt.Errorf("tool %s: %w", v.Name, err)
				}
				s.emit(&Event{Type: EventToolResult, Tool: v.Name, Text: out})
				transcript.addToolResult(v.Name, out)
				toolResults = append(toolResults, anthropic.NewToolResultBlock(v.ID, out, false))
			}
		}

		if message.StopReason != anthropic.StopReasonToolUse {
			s.emit(&Event{Type: EventAgentCompleted})
			result.Conversation = transcript.messages
			return result, nil
		}

		messages = append(messages, message.ToParam())
		messages = append(messages, anthropic.NewUserMessage(toolResults...))

		if nudge := pollNudge(ctx, task); nudge != "" {
			s.emit(&Event{Type: EventNudge, Text: nudge})
			transcript.add("operator", nudge)
			messages = append(messages, anthropic.NewUserMessage(
				anthropic.NewTextBlock("Operator guidance: "+nudge)))
		}
	}
	return nil, fmt.Errorf("agent exceeded %d tool rounds", maxToolRounds)
}

func classifyAnthropicError(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == 429 || apierr.StatusCode == 529 {
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	return err
}
