package agent

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	llmv1 "github.com/CollideNV/hadron/proto"
)

// GRPCBackend executes agent tasks through an out-of-process sidecar
// speaking hadron.llm.v1.AgentService. The sidecar owns the provider
// SDK and tool execution; path confinement is the sidecar's contract.
type GRPCBackend struct {
	conn   *grpc.ClientConn
	client llmv1.AgentServiceClient
}

// NewGRPCBackend connects to the sidecar at addr.
func NewGRPCBackend(addr string) (*GRPCBackend, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connect to agent sidecar at %s: %w", addr, err)
	}
	return &GRPCBackend{
		conn:   conn,
		client: llmv1.NewAgentServiceClient(conn),
	}, nil
}

// Close releases the gRPC connection.
func (b *GRPCBackend) Close() error {
	return b.conn.Close()
}

// Execute runs the task to completion without event delivery.
func (b *GRPCBackend) Execute(ctx context.Context, task *Task) (*Result, error) {
	return b.run(ctx, task, nil)
}

// Stream runs the task and delivers events as they happen.
func (b *GRPCBackend) Stream(ctx context.Context, task *Task) (<-chan *Event, func() (*Result, error), error) {
	return streamViaRun(ctx, task, b.run)
}

func (b *GRPCBackend) run(ctx context.Context, task *Task, s sink) (*Result, error) {
	stream, err := b.client.Execute(ctx, &llmv1.AgentTask{
		Role:         task.Role,
		SystemPrompt: task.SystemPrompt,
		UserPrompt:   task.UserPrompt,
		Model:        task.Model,
		Tools:        task.Tools,
		WorkingDir:   task.WorkingDir,
	})
	if err != nil {
		return nil, fmt.Errorf("sidecar Execute: %w", err)
	}

	transcript := newTranscript(task)
	result := &Result{ModelID: task.Model}

	s.emit(&Event{Type: EventAgentStarted})
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			s.emit(&Event{Type: EventAgentCompleted})
			result.Conversation = transcript.messages
			return result, nil
		}
		if err != nil {
			return nil, fmt.Errorf("sidecar stream: %w", err)
		}
		switch c := chunk.Content.(type) {
		case *llmv1.AgentChunk_Text:
			result.Output += c.Text.Content
			transcript.add("assistant", c.Text.Content)
			s.emit(&Event{Type: EventOutput, Text: c.Text.Content})
		case *llmv1.AgentChunk_ToolCall:
			transcript.addToolCall(c.ToolCall.Tool, c.ToolCall.Input)
			s.emit(&Event{Type: EventToolCall, Tool: c.ToolCall.Tool, Input: c.ToolCall.Input})
		case *llmv1.AgentChunk_ToolResult:
			transcript.addToolResult(c.ToolResult.Tool, c.ToolResult.Output)
			s.emit(&Event{Type: EventToolResult, Tool: c.ToolResult.Tool, Text: c.ToolResult.Output})
		case *llmv1.AgentChunk_Usage:
			result.InputTokens += c.Usage.InputTokens
			result.OutputTokens += c.Usage.OutputTokens
			if c.Usage.ModelId != "" {
				result.ModelID = c.Usage.ModelId
			}
		case *llmv1.AgentChunk_Error:
			if c.Error.Retryable {
				return nil, fmt.Errorf("%w: %s", ErrRateLimited, c.Error.Message)
			}
			return nil, fmt.Errorf("sidecar error: %s", c.Error.Message)
		}
	}
}
