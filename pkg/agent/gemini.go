package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiBackend executes agent tasks against the Google Gemini API.
type GeminiBackend struct {
	client *genai.Client
	logger *slog.Logger
}

// NewGeminiBackend builds a backend from an API key.
func NewGeminiBackend(ctx context.Context, apiKey string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiBackend{
		client: client,
		logger: slog.Default().With("component", "agent.gemini"),
	}, nil
}

// Close releases the underlying client.
func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

// Execute runs the task to completion without event delivery.
func (b *GeminiBackend) Execute(ctx context.Context, task *Task) (*Result, error) {
	return b.run(ctx, task, nil)
}

// Stream runs the task and delivers events as they happen.
func (b *GeminiBackend) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, b.run)
}

func (b *GeminiBackend) run(ctx context.Context, task *Task, s sink) (*Result, error) {
	toolbox, defs, err := prepareTools(task)
	if err != nil {
		return nil, err
	}

	model := b.client.GenerativeModel(task.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(task.SystemPrompt)},
	}
	if len(defs) > 0 {
		tool := &genai.Tool{}
		for _, def := range defs {
			tool.FunctionDeclarations = append(tool.FunctionDeclarations, &genai.FunctionDeclaration{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  toGenaiSchema(def.Schema),
			})
		}
		model.Tools = []*genai.Tool{tool}
	}

	session := model.StartChat()
	transcript := newTranscript(task)
	result := &Result{ModelID: task.Model}

	s.emit(&Event{Type: EventAgentStarted})

	parts := []genai.Part{genai.Text(task.UserPrompt)}
	for round := 0; round < maxToolRounds; round++ {
		resp, err := session.SendMessage(ctx, parts...)
		if err != nil {
			return nil, classifyGeminiError(err)
		}
		if resp.UsageMetadata != nil {
			result.InputTokens += int64(resp.UsageMetadata.PromptTokenCount)
			result.OutputTokens += int64(resp.UsageMetadata.CandidatesTokenCount)
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			break
		}

		parts = parts[:0]
		for _, part := range resp.Candidates[0].Content.Parts {
			switch v := part.(type) {
			case genai.Text:
				result.Output += string(v)
				transcript.add("assistant", string(v))
				s.emit(&Event{Type: EventOutput, Text: string(v)})
			case genai.FunctionCall:
				input, _ := json.Marshal(v.Args)
				s.emit(&Event{Type: EventToolCall, Tool: v.Name, Input: string(input)})
				transcript.addToolCall(v.Name, string(input))
				out, err := toolbox.Dispatch(ctx, v.Name, string(input))
				if err != nil {
					return nil, fmt.Errorf("tool %s: %w", v.Name, err)
				}
				s.emit(&Event{Type: EventToolResult, Tool: v.Name, Text: out})
				transcript.addToolResult(v.Name, out)
				parts = append(parts, genai.FunctionResponse{
					Name:     v.Name,
					Response: map[string]any{"output": out},
				})
			}
		}

		if len(parts) == 0 {
			// No tool calls this round; the agent is done.
			s.emit(&Event{Type: EventAgentCompleted})
			result.Conversation = transcript.messages
			return result, nil
		}

		if nudge := pollNudge(ctx, task); nudge != "" {
			s.emit(&Event{Type: EventNudge, Text: nudge})
			transcript.add("operator", nudge)
			parts = append(parts, genai.Text("Operator guidance: "+nudge))
		}
	}
	return nil, fmt.Errorf("agent exceeded %d tool rounds", maxToolRounds)
}

func toGenaiSchema(schema map[string]interface{}) *genai.Schema {
	out := &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}
	props, _ := schema["properties"].(map[string]interface{})
	for name, raw := range props {
		p, _ := raw.(map[string]interface{})
		t, _ := p["type"].(string)
		switch t {
		case "integer":
			out.Properties[name] = &genai.Schema{Type: genai.TypeInteger}
		default:
			out.Properties[name] = &genai.Schema{Type: genai.TypeString}
		}
	}
	if req, ok := schema["required"].([]string); ok {
		out.Required = req
	}
	return out
}

func classifyGeminiError(err error) error {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) && apierr.Code == 429 {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return err
}
