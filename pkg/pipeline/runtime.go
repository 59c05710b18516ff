package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/agent/prompt"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/metrics"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
)

// maxEventText caps free-text payloads carried in bus events.
const maxEventText = 2000

// Runtime bundles the collaborators stage nodes use. One Runtime is
// shared across all workers; per-run state travels in PipelineState.
type Runtime struct {
	Runs          *services.RunService
	Checkpoints   *services.CheckpointService
	Conversations *services.ConversationService
	Publisher     *events.Publisher
	Registry      *interventions.Registry
	Agents        agent.Backend
	Git           *git.Manager
	Logger        *slog.Logger
}

// emit appends a bus event. Event loss must never fail a run, so
// failures are logged and swallowed.
func (rt *Runtime) emit(ctx context.Context, crID, stage string, t events.EventType, data map[string]any) {
	if _, err := rt.Publisher.Append(ctx, crID, stage, t, data); err != nil {
		rt.Logger.Warn("event append failed", "cr_id", crID, "event_type", t, "error", err)
		return
	}
	metrics.EventsAppended.Inc()
}

// agentCall describes one agent invocation a node wants.
type agentCall struct {
	Role        string
	Stage       string
	Repo        *models.RepoContext
	Task        string
	LoopContext []string
	Tools       []string
	WorkingDir  string

	// ThreePhase enables the explore/plan/act decomposition using the
	// snapshot's phase models.
	ThreePhase bool
}

// runAgent composes the prompt, executes the call through the provider
// chain, publishes the agent's observable steps as bus events, and
// stores the conversation. Safe to call from fan-out goroutines: it
// only reads the snapshot and touches no shared state.
func (rt *Runtime) runAgent(ctx context.Context, snap *models.PipelineState, call agentCall) (*agent.Result, error) {
	system, user, err := prompt.Compose(prompt.Input{
		Role:         call.Role,
		Repo:         call.Repo,
		Task:         call.Task,
		LoopContext:  call.LoopContext,
		Instructions: snap.InterventionSlot,
	})
	if err != nil {
		return nil, err
	}

	crID := snap.CRID
	task := &agent.Task{
		Role:         call.Role,
		SystemPrompt: system,
		UserPrompt:   user,
		Model:        snap.Config.DefaultModel,
		Tools:        call.Tools,
		WorkingDir:   call.WorkingDir,
		Timeout:      time.Duration(snap.Config.AgentTimeoutSecs) * time.Second,
		Nudge: func(ctx context.Context) string {
			payload, err := rt.Registry.GetAndDelete(ctx, crID, interventions.KindNudge, call.Role)
			if err != nil || payload == nil {
				return ""
			}
			msg, _ := payload["message"].(string)
			return msg
		},
	}
	if call.ThreePhase {
		task.ExploreModel = snap.Config.ExploreModel
		task.PlanModel = snap.Config.PlanModel
	}

	observe := func(e *agent.Event) {
		rt.publishAgentEvent(ctx, crID, call.Stage, call.Role, call.Repo, e)
	}

	result, err := agent.ThreePhase(ctx, rt.Agents, task, observe)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", call.Role, err)
	}

	repoName := ""
	if call.Repo != nil {
		repoName = call.Repo.RepoName
	}
	key := services.ConversationKey(call.Role, repoName, time.Now())
	if err := rt.Conversations.Store(ctx, crID, key, call.Role, repoName, result.Conversation); err != nil {
		rt.Logger.Warn("conversation store failed", "cr_id", crID, "key", key, "error", err)
	}

	return result, nil
}

func (rt *Runtime) publishAgentEvent(ctx context.Context, crID, stage, role string, repo *models.RepoContext, e *agent.Event) {
	data := map[string]any{"role": role}
	if repo != nil {
		data["repo"] = repo.RepoName
	}
	var t events.EventType
	switch e.Type {
	case agent.EventAgentStarted:
		t = events.TypeAgentStarted
	case agent.EventAgentCompleted:
		t = events.TypeAgentCompleted
	case agent.EventToolCall:
		t = events.TypeAgentToolCall
		data["tool"] = e.Tool
		data["input"] = clip(e.Input)
	case agent.EventToolResult:
		// Tool results flow into the conversation record; they are too
		// bulky for the live stream.
		return
	case agent.EventOutput:
		t = events.TypeAgentOutput
		data["text"] = clip(e.Text)
	case agent.EventNudge:
		t = events.TypeAgentNudge
		data["message"] = clip(e.Text)
	case agent.EventPhaseStarted:
		t = events.TypePhaseStarted
		data["phase"] = e.Phase
	case agent.EventPhaseCompleted:
		t = events.TypePhaseCompleted
		data["phase"] = e.Phase
	default:
		return
	}
	rt.emit(ctx, crID, stage, t, data)
}

// recordCost folds one agent result into the run's cost ledger. Must
// run on the executor goroutine, never inside fan-out sub-tasks.
func (rt *Runtime) recordCost(ctx context.Context, state *models.PipelineState, r *agent.Result) {
	if r == nil {
		return
	}
	delta := state.Config.CostOf(r.ModelID, r.InputTokens, r.OutputTokens)
	state.Cost.Add(r.ModelID, r.InputTokens, r.OutputTokens, delta)
	metrics.RecordAgentUsage(delta, r.InputTokens, r.OutputTokens)

	if err := rt.Runs.IncrementCost(ctx, state.CRID, delta, r.InputTokens, r.OutputTokens); err != nil {
		rt.Logger.Warn("cost increment failed", "cr_id", state.CRID, "error", err)
	}
	rt.emit(ctx, state.CRID, "", events.TypeCostUpdate, map[string]any{
		"model":         r.ModelID,
		"delta_usd":     delta,
		"total_usd":     state.Cost.TotalUSD,
		"input_tokens":  state.Cost.InputTokens,
		"output_tokens": state.Cost.OutputTokens,
	})
}

// decodeJSONOutput extracts a JSON object from agent output that may
// be wrapped in prose or a code fence.
func decodeJSONOutput(output string, v any) error {
	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON object in agent output")
	}
	return json.Unmarshal([]byte(output[start:end+1]), v)
}

func clip(s string) string {
	if len(s) > maxEventText {
		return s[:maxEventText] + "…"
	}
	return s
}
