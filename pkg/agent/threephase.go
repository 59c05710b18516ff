package agent

import (
	"context"
)

// Phase labels.
const (
	PhaseExplore = "explore"
	PhasePlan    = "plan"
	PhaseAct     = "act"
)

// ThreePhase runs a task as an explore/plan/act decomposition. The
// explore phase uses the explore model with read-only tools; the plan
// phase is a single tool-less call on the plan model seeded with the
// explore summary; the act phase uses the task's model and full
// allowlist, seeded with both earlier outputs. An empty phase model
// skips that phase, so a task with neither set is a single streamed
// call. Every phase runs through the backend's stream so agent-level
// events (agent_started, tool calls, output, nudges) reach observe.
func ThreePhase(ctx context.Context, backend Backend, task *Task, observe func(*Event)) (*Result, error) {
	emit := sink(observe)

	total := &Result{ModelID: task.Model}
	var exploreOut, planOut string

	if task.ExploreModel != "" {
		emit.emit(&Event{Type: EventPhaseStarted, Phase: PhaseExplore})
		explore := *task
		explore.Model = task.ExploreModel
		explore.Tools = intersectTools(task.Tools, ReadOnlyTools)
		explore.UserPrompt = task.UserPrompt +
			"\n\nThis is the exploration phase. Investigate the working directory and summarise everything relevant to the task. Do not make changes."
		result, err := runPhase(ctx, backend, &explore, emit)
		if err != nil {
			return nil, err
		}
		accumulate(total, result)
		exploreOut = result.Output
		emit.emit(&Event{Type: EventPhaseCompleted, Phase: PhaseExplore})
	}

	if task.PlanModel != "" {
		emit.emit(&Event{Type: EventPhaseStarted, Phase: PhasePlan})
		plan := *task
		plan.Model = task.PlanModel
		plan.Tools = nil
		plan.UserPrompt = task.UserPrompt
		if exploreOut != "" {
			plan.UserPrompt += "\n\nExploration summary:\n" + exploreOut
		}
		plan.UserPrompt += "\n\nThis is the planning phase. Produce a concrete step-by-step plan. Do not make changes."
		result, err := runPhase(ctx, backend, &plan, emit)
		if err != nil {
			return nil, err
		}
		accumulate(total, result)
		planOut = result.Output
		emit.emit(&Event{Type: EventPhaseCompleted, Phase: PhasePlan})
	}

	emit.emit(&Event{Type: EventPhaseStarted, Phase: PhaseAct})
	act := *task
	if exploreOut != "" {
		act.UserPrompt += "\n\nExploration summary:\n" + exploreOut
	}
	if planOut != "" {
		act.UserPrompt += "\n\nPlan:\n" + planOut
	}
	result, err := runPhase(ctx, backend, &act, emit)
	if err != nil {
		return nil, err
	}
	accumulate(total, result)
	total.Output = result.Output
	total.Conversation = result.Conversation
	emit.emit(&Event{Type: EventPhaseCompleted, Phase: PhaseAct})

	return total, nil
}

// runPhase executes one phase through the backend's stream, draining
// its events into the sink, and returns the phase result.
func runPhase(ctx context.Context, backend Backend, task *Task, s sink) (*Result, error) {
	events, wait, err := backend.Stream(ctx, task)
	if err != nil {
		return nil, err
	}
	for e := range events {
		s.emit(e)
	}
	return wait()
}

func accumulate(total, r *Result) {
	total.InputTokens += r.InputTokens
	total.OutputTokens += r.OutputTokens
}

func intersectTools(allowlist, subset []string) []string {
	allowed := make(map[string]bool, len(allowlist))
	for _, t := range allowlist {
		allowed[t] = true
	}
	var out []string
	for _, t := range subset {
		if allowed[t] {
			out = append(out, t)
		}
	}
	return out
}
