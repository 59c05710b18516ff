package pipeline

import (
	"github.com/CollideNV/hadron/pkg/models"
)

// Route decides the node that follows current. It is a pure function
// of the node name and the state; node bodies never choose their
// successor. When the result is NodePaused, the second return value
// carries the pause reason for the status record and event payload.
func Route(current string, state *models.PipelineState) (string, string) {
	cfg := state.Config

	switch current {
	case NodeIntake:
		return NodeRepoIdentification, ""
	case NodeRepoIdentification:
		return NodeWorktreeSetup, ""
	case NodeWorktreeSetup:
		return NodeBehaviourTranslation, ""
	case NodeBehaviourTranslation:
		return NodeBehaviourVerification, ""

	case NodeBehaviourVerification:
		if state.Verified {
			return NodeTDD, ""
		}
		if state.VerificationLoops < cfg.MaxVerificationLoops {
			return NodeBehaviourTranslation, ""
		}
		return NodePaused, models.PauseVerificationLimit

	case NodeTDD:
		return NodeReview, ""

	case NodeReview:
		if len(state.BlockingFindings()) == 0 {
			return NodeRebase, ""
		}
		if state.ReviewLoops < cfg.MaxReviewLoops {
			return NodeTDD, ""
		}
		return NodePaused, models.PauseReviewLimit

	case NodeRebase:
		// Absent rebase_clean routes the same as true.
		if state.RebaseClean == nil || *state.RebaseClean {
			return NodeDelivery, ""
		}
		return NodePaused, models.PauseRebaseConflict

	case NodeDelivery:
		// push_and_wait ends the pass by parking the run until an
		// external CI verdict resumes it. A negative verdict loops
		// back to development, subject to its own breaker.
		if state.AwaitingCI {
			return NodePaused, models.PauseWaitingCI
		}
		if cfg.DeliveryStrategy == models.DeliveryPushAndWait && !state.AllVerified {
			if state.CILoops < cfg.MaxCILoops {
				return NodeTDD, ""
			}
			return NodePaused, models.PauseCILimit
		}
		return NodeReleaseGate, ""

	case NodeReleaseGate:
		if state.Approved {
			return NodeRelease, ""
		}
		return NodePaused, models.PauseWaitingApproval

	case NodeRelease:
		return NodeRetrospective, ""
	case NodeRetrospective:
		return NodeDone, ""
	}
	return NodePaused, models.PauseNodeError
}

// overrideNodes maps each resume override to the node whose outcome it
// rewrites, in pipeline order.
var overrideNodes = []struct {
	node string
	set  func(*models.ResumeOverrides) bool
}{
	{NodeBehaviourVerification, func(o *models.ResumeOverrides) bool { return o.BehaviourVerified != nil }},
	{NodeReview, func(o *models.ResumeOverrides) bool { return o.ReviewPassed != nil }},
	{NodeRebase, func(o *models.ResumeOverrides) bool { return o.RebaseClean != nil }},
	{NodeDelivery, func(o *models.ResumeOverrides) bool { return o.CIPassed != nil }},
	{NodeReleaseGate, func(o *models.ResumeOverrides) bool { return o.Approved != nil }},
}

// ResumeFrom selects the node a resumed worker routes from. With no
// overrides it is the checkpointed node itself; routing then yields
// the node immediately after it. With overrides it is the latest node
// in pipeline order that an override targets, so an override of
// rebase_clean resumes at rebase even when review_passed is also set.
func ResumeFrom(checkpointNode string, overrides *models.ResumeOverrides) string {
	from := checkpointNode
	if overrides == nil || overrides.IsZero() {
		return from
	}
	for _, on := range overrideNodes {
		if on.set(overrides) {
			from = on.node
		}
	}
	return from
}
