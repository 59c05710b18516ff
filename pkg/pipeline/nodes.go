// Package pipeline contains the graph executor, routing rules, and the
// stage node implementations that drive one change request from intake
// to release.
package pipeline

// Node names. These are the values recorded in CRRun.current_stage and
// in checkpoint rows; renaming one breaks resume of in-flight runs.
const (
	NodeIntake                = "intake"
	NodeRepoIdentification    = "repo_identification"
	NodeWorktreeSetup         = "worktree_setup"
	NodeBehaviourTranslation  = "behaviour_translation"
	NodeBehaviourVerification = "behaviour_verification"
	NodeTDD                   = "tdd"
	NodeReview                = "review"
	NodeRebase                = "rebase"
	NodeDelivery              = "delivery"
	NodeReleaseGate           = "release_gate"
	NodeRelease               = "release"
	NodeRetrospective         = "retrospective"

	// NodePaused is the synthetic terminal routing returns when a
	// circuit breaker trips or a long wait begins.
	NodePaused = "paused"

	// NodeDone marks normal completion of the graph.
	NodeDone = ""
)

// Sub-stage labels used in stage_entered events for composite nodes.
const (
	SubStageTestWriter = "tdd:test_writer"
	SubStageCodeWriter = "tdd:code_writer"
)

// pipelineOrder is the straight-line topological order of the graph.
// Loop back-edges and pause edges live in Route, not here.
var pipelineOrder = []string{
	NodeIntake,
	NodeRepoIdentification,
	NodeWorktreeSetup,
	NodeBehaviourTranslation,
	NodeBehaviourVerification,
	NodeTDD,
	NodeReview,
	NodeRebase,
	NodeDelivery,
	NodeReleaseGate,
	NodeRelease,
	NodeRetrospective,
}

// NodeIndex returns a node's position in pipeline order, or -1 for
// names outside the straight-line graph.
func NodeIndex(name string) int {
	for i, n := range pipelineOrder {
		if n == name {
			return i
		}
	}
	return -1
}

// IsNodeName reports whether name is one of the twelve stage nodes.
func IsNodeName(name string) bool {
	return NodeIndex(name) >= 0
}
