package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/interventions"
	"github.com/CollideNV/hadron/pkg/metrics"
	"github.com/CollideNV/hadron/pkg/models"
	"github.com/CollideNV/hadron/pkg/services"
)

type nodeFunc func(ctx context.Context, state *models.PipelineState) error

// Executor drives one claimed CR along the graph from its latest
// checkpoint to the next pause or to completion. The queue worker owns
// the claim CAS; by the time Execute runs, the row is in status
// running with this worker's pod id on it.
type Executor struct {
	rt     *Runtime
	nodes  map[string]nodeFunc
	logger *slog.Logger
}

// NewExecutor wires the stage nodes onto a runtime.
func NewExecutor(rt *Runtime) *Executor {
	n := &stageNodes{rt: rt}
	return &Executor{
		rt: rt,
		nodes: map[string]nodeFunc{
			NodeIntake:                n.intake,
			NodeRepoIdentification:    n.repoIdentification,
			NodeWorktreeSetup:         n.worktreeSetup,
			NodeBehaviourTranslation:  n.behaviourTranslation,
			NodeBehaviourVerification: n.behaviourVerification,
			NodeTDD:                   n.tdd,
			NodeReview:                n.review,
			NodeRebase:                n.rebase,
			NodeDelivery:              n.delivery,
			NodeReleaseGate:           n.releaseGate,
			NodeRelease:               n.release,
			NodeRetrospective:         n.retrospective,
		},
		logger: slog.Default().With("component", "pipeline.executor"),
	}
}

// Execute processes one run until it pauses, completes, or hits a
// fatal error. Fatal errors pause the run with the error recorded; the
// pipeline never transitions to failed on its own.
func (e *Executor) Execute(ctx context.Context, crID string) error {
	run, err := e.rt.Runs.GetRun(ctx, crID)
	if err != nil {
		return err
	}
	if models.IsTerminalStatus(string(run.Status)) {
		return nil
	}

	snap, err := services.Snapshot(run)
	if err != nil {
		return err
	}

	state, checkpointNode, err := e.rt.Checkpoints.LatestCheckpoint(ctx, crID)
	if err != nil {
		return err
	}

	var current string
	if state == nil {
		raw, err := services.RawRequest(run)
		if err != nil {
			return err
		}
		state = models.NewPipelineState(crID, raw, snap)
		current = NodeIntake
		e.rt.emit(ctx, crID, "", events.TypePipelineStarted, map[string]any{
			"title":  run.Title,
			"source": run.Source,
		})
	} else {
		// The run row's snapshot is authoritative; checkpoints may
		// predate a redeploy but the frozen config never changes.
		state.Config = snap

		overrides := e.consumeOverrides(ctx, crID)
		overrides.Apply(state)

		from := ResumeFrom(checkpointNode, overrides)
		var reason string
		current, reason = Route(from, state)
		e.rt.emit(ctx, crID, current, events.TypePipelineResumed, map[string]any{
			"checkpoint_node": checkpointNode,
			"resume_node":     current,
		})
		if current == NodePaused {
			e.pause(ctx, state, from, reason, "")
			return nil
		}
	}

	return e.loop(ctx, state, current)
}

func (e *Executor) loop(ctx context.Context, state *models.PipelineState, current string) error {
	crID := state.CRID
	for current != NodeDone {
		e.consumeInstructions(ctx, state)

		if err := e.rt.Runs.SetStage(ctx, crID, current); err != nil {
			e.logger.Warn("set stage failed", "cr_id", crID, "stage", current, "error", err)
		}
		e.rt.emit(ctx, crID, current, events.TypeStageEntered, map[string]any{"stage": current})

		nodeCtx := ctx
		var cancel context.CancelFunc
		if secs := state.Config.StageTimeoutSecs; secs > 0 {
			nodeCtx, cancel = context.WithTimeout(ctx, time.Duration(secs)*time.Second)
		}
		started := time.Now()
		err := e.nodes[current](nodeCtx, state)
		metrics.StageDuration.WithLabelValues(current).Observe(time.Since(started).Seconds())
		timedOut := nodeCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil
		if cancel != nil {
			cancel()
		}
		if err != nil {
			reason := models.PauseNodeError
			if timedOut {
				reason = models.PauseStageTimeout
			}
			e.logger.Error("node failed", "cr_id", crID, "node", current, "reason", reason, "error", err)
			e.pause(ctx, state, current, reason, err.Error())
			return nil
		}

		e.rt.emit(ctx, crID, current, events.TypeStageCompleted, map[string]any{"stage": current})

		if err := e.rt.Checkpoints.WriteCheckpoint(ctx, crID, current, state); err != nil {
			// An unrecovered checkpoint write is fatal for this pass;
			// the next worker re-attempts from the last durable one.
			e.pause(ctx, state, current, models.PauseNodeError, "checkpoint write failed: "+err.Error())
			return err
		}

		if max := state.Config.MaxCostUSD; max > 0 && state.Cost.TotalUSD >= max {
			e.pause(ctx, state, current, models.PauseCostLimit, "")
			return nil
		}

		next, reason := Route(current, state)
		if next == NodePaused {
			e.pause(ctx, state, current, reason, "")
			return nil
		}
		current = next
	}

	if ok, err := e.rt.Runs.Complete(ctx, crID); err != nil || !ok {
		e.logger.Error("completion CAS failed", "cr_id", crID, "ok", ok, "error", err)
		return errors.New("completion transition lost")
	}
	metrics.RunsFinished.WithLabelValues(models.StatusCompleted).Inc()
	e.rt.emit(ctx, crID, "", events.TypePipelineCompleted, map[string]any{
		"cost_usd": state.Cost.TotalUSD,
	})
	if err := e.rt.Publisher.NotifyRunStatus(ctx, crID, models.StatusCompleted); err != nil {
		e.logger.Warn("run status notify failed", "cr_id", crID, "error", err)
	}
	return nil
}

// consumeInstructions folds a pending instructions intervention into
// the state so subsequent agent prompts carry it.
func (e *Executor) consumeInstructions(ctx context.Context, state *models.PipelineState) {
	payload, err := e.rt.Registry.GetAndDelete(ctx, state.CRID, interventions.KindInstructions, "")
	if err != nil {
		e.logger.Warn("intervention poll failed", "cr_id", state.CRID, "error", err)
		return
	}
	if payload == nil {
		return
	}
	text, _ := payload["text"].(string)
	if text == "" {
		return
	}
	if state.InterventionSlot != "" {
		state.InterventionSlot += "\n"
	}
	state.InterventionSlot += text
}

func (e *Executor) consumeOverrides(ctx context.Context, crID string) *models.ResumeOverrides {
	payload, err := e.rt.Registry.GetAndDelete(ctx, crID, interventions.KindResumeOverrides, "")
	if err != nil {
		e.logger.Warn("override fetch failed", "cr_id", crID, "error", err)
		return nil
	}
	if payload == nil {
		return nil
	}
	overrides, err := models.DecodeResumeOverrides(payload)
	if err != nil {
		e.logger.Warn("dropping malformed resume overrides", "cr_id", crID, "error", err)
		return nil
	}
	return overrides
}

// pause transitions running → paused and emits the corresponding
// event: pipeline_failed for node errors, pipeline_paused otherwise.
func (e *Executor) pause(ctx context.Context, state *models.PipelineState, stage, reason, errMsg string) {
	crID := state.CRID
	ok, err := e.rt.Runs.Pause(ctx, crID, stage, reason, errMsg)
	if err != nil || !ok {
		e.logger.Error("pause CAS failed", "cr_id", crID, "stage", stage, "ok", ok, "error", err)
	}
	metrics.RunsPaused.WithLabelValues(reason).Inc()
	metrics.RunsFinished.WithLabelValues(models.StatusPaused).Inc()

	t := events.TypePipelinePaused
	if reason == models.PauseNodeError || reason == models.PauseStageTimeout {
		t = events.TypePipelineFailed
	}
	data := map[string]any{"stage": stage, "reason": reason}
	if errMsg != "" {
		data["error"] = errMsg
	}
	e.rt.emit(ctx, crID, stage, t, data)
	if err := e.rt.Publisher.NotifyRunStatus(ctx, crID, models.StatusPaused); err != nil {
		e.logger.Warn("run status notify failed", "cr_id", crID, "error", err)
	}
}
