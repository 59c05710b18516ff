package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/models"
)

// stageNodes carries the runtime into the node bodies. Every method is
// a function from state to state; routing decisions stay in Route.
type stageNodes struct {
	rt *Runtime
}

// intake parses the raw request into a StructuredCR. Unparseable agent
// output falls back to a machine-defaulted structure flagged with
// intake_parse_failed; the run continues either way.
func (n *stageNodes) intake(ctx context.Context, state *models.PipelineState) error {
	payload, err := json.MarshalIndent(state.Raw, "", "  ")
	if err != nil {
		return err
	}

	result, err := n.rt.runAgent(ctx, state, agentCall{
		Role:  agent.RoleIntake,
		Stage: NodeIntake,
		Task:  fmt.Sprintf("Raw change request:\n```json\n%s\n```", payload),
	})
	if err != nil {
		return err
	}
	n.rt.recordCost(ctx, state, result)

	var cr models.StructuredCR
	if err := decodeJSONOutput(result.Output, &cr); err != nil || cr.Title == "" {
		n.rt.Logger.Warn("intake parse failed, using fallback", "cr_id", state.CRID, "error", err)
		state.CR = models.FallbackStructuredCR(state.Raw)
		return nil
	}
	state.CR = &cr
	return nil
}
