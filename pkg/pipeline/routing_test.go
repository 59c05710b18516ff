package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CollideNV/hadron/pkg/models"
)

func testState() *models.PipelineState {
	return &models.PipelineState{
		CRID: "cr-test0001",
		Config: &models.ConfigSnapshot{
			MaxVerificationLoops: 3,
			MaxReviewLoops:       3,
			MaxTDDIterations:     5,
			MaxRebaseAttempts:    3,
			MaxCILoops:           3,
			DeliveryStrategy:     models.DeliverySelfContained,
		},
	}
}

func TestRouteStraightLine(t *testing.T) {
	state := testState()
	state.Verified = true
	state.AllVerified = true
	state.Approved = true

	order := []string{NodeIntake}
	current := NodeIntake
	for current != NodeDone {
		next, reason := Route(current, state)
		assert.Empty(t, reason)
		if next != NodeDone {
			order = append(order, next)
		}
		current = next
	}
	assert.Equal(t, pipelineOrder, order)
}

func TestRouteVerificationLoop(t *testing.T) {
	state := testState()
	state.Verified = false
	state.VerificationLoops = 1

	next, _ := Route(NodeBehaviourVerification, state)
	assert.Equal(t, NodeBehaviourTranslation, next)

	state.VerificationLoops = 3
	next, reason := Route(NodeBehaviourVerification, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseVerificationLimit, reason)
}

func TestRouteReviewLoop(t *testing.T) {
	state := testState()
	state.Findings = []models.Finding{{Severity: models.SeverityCritical, Message: "sql injection"}}
	state.ReviewLoops = 2

	next, _ := Route(NodeReview, state)
	assert.Equal(t, NodeTDD, next)

	state.ReviewLoops = 3
	next, reason := Route(NodeReview, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseReviewLimit, reason)

	// Minor findings never block.
	state.Findings = []models.Finding{{Severity: models.SeverityMinor, Message: "naming"}}
	next, _ = Route(NodeReview, state)
	assert.Equal(t, NodeRebase, next)
}

func TestRouteRebaseTriState(t *testing.T) {
	state := testState()

	// Absent routes like true.
	next, _ := Route(NodeRebase, state)
	assert.Equal(t, NodeDelivery, next)

	dirty := false
	state.RebaseClean = &dirty
	next, reason := Route(NodeRebase, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseRebaseConflict, reason)

	clean := true
	state.RebaseClean = &clean
	next, _ = Route(NodeRebase, state)
	assert.Equal(t, NodeDelivery, next)
}

func TestRouteDeliveryPushAndWait(t *testing.T) {
	state := testState()
	state.Config.DeliveryStrategy = models.DeliveryPushAndWait

	// First pass pushed and is waiting for the CI verdict.
	state.AwaitingCI = true
	next, reason := Route(NodeDelivery, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseWaitingCI, reason)

	// Negative verdict loops back to development.
	state.AwaitingCI = false
	state.AllVerified = false
	state.CILoops = 1
	next, _ = Route(NodeDelivery, state)
	assert.Equal(t, NodeTDD, next)

	// The CI loop has its own breaker.
	state.CILoops = 3
	next, reason = Route(NodeDelivery, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseCILimit, reason)

	// Positive verdict proceeds.
	state.AllVerified = true
	next, _ = Route(NodeDelivery, state)
	assert.Equal(t, NodeReleaseGate, next)
}

func TestRouteReleaseGate(t *testing.T) {
	state := testState()
	next, reason := Route(NodeReleaseGate, state)
	assert.Equal(t, NodePaused, next)
	assert.Equal(t, models.PauseWaitingApproval, reason)

	state.Approved = true
	next, _ = Route(NodeReleaseGate, state)
	assert.Equal(t, NodeRelease, next)
}

func TestResumeFromWithoutOverrides(t *testing.T) {
	assert.Equal(t, NodeTDD, ResumeFrom(NodeTDD, nil))
	assert.Equal(t, NodeTDD, ResumeFrom(NodeTDD, &models.ResumeOverrides{}))
}

func TestResumeFromSelectsLatestOverride(t *testing.T) {
	yes := true
	overrides := &models.ResumeOverrides{ReviewPassed: &yes, RebaseClean: &yes}

	// rebase_clean is later in pipeline order than review_passed.
	assert.Equal(t, NodeRebase, ResumeFrom(NodeReview, overrides))

	overrides = &models.ResumeOverrides{BehaviourVerified: &yes}
	assert.Equal(t, NodeBehaviourVerification, ResumeFrom(NodeTDD, overrides))
}

func TestResumeReviewOverrideProceedsToRebase(t *testing.T) {
	state := testState()
	state.Findings = []models.Finding{{Severity: models.SeverityCritical, Message: "x"}}
	state.ReviewLoops = 3

	yes := true
	overrides := &models.ResumeOverrides{ReviewPassed: &yes}
	overrides.Apply(state)

	from := ResumeFrom(NodeReview, overrides)
	next, _ := Route(from, state)
	assert.Equal(t, NodeRebase, next)
	assert.Empty(t, state.BlockingFindings())
}

func TestNodeIndexAndOrder(t *testing.T) {
	assert.Equal(t, 0, NodeIndex(NodeIntake))
	assert.Equal(t, len(pipelineOrder)-1, NodeIndex(NodeRetrospective))
	assert.Equal(t, -1, NodeIndex(NodePaused))
	assert.True(t, IsNodeName(NodeDelivery))
	assert.False(t, IsNodeName("unknown"))
}
