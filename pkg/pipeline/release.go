package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/models"
)

// releaseGate decides whether the run may proceed to release. Without
// a required approval it auto-approves; otherwise the approval arrives
// through a resume override while the run waits.
func (n *stageNodes) releaseGate(ctx context.Context, state *models.PipelineState) error {
	if !state.Config.RequireApproval {
		state.Approved = true
	}
	return nil
}

// release has the release writer produce the PR description from the
// run summary, one per repository.
func (n *stageNodes) release(ctx context.Context, state *models.PipelineState) error {
	summary := runSummary(state)

	results, err := fanOut(ctx, state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (releaseOut, error) {
		result, err := n.rt.runAgent(ctx, snap, agentCall{
			Role:  agent.RoleReleaseWriter,
			Stage: NodeRelease,
			Repo:  &repo,
			Task:  fmt.Sprintf("Write the pull-request description for repository %s.\n\n%s", repo.RepoName, summary),
		})
		if err != nil {
			return releaseOut{}, err
		}
		return releaseOut{
			result: &models.ReleaseResult{
				RepoName:      repo.RepoName,
				PRDescription: result.Output,
				Released:      true,
			},
			usage: result,
		}, nil
	})
	if err != nil {
		return err
	}

	if state.ReleaseResults == nil {
		state.ReleaseResults = make(map[string]*models.ReleaseResult)
	}
	for repo, out := range results {
		state.ReleaseResults[repo] = out.result
		n.rt.recordCost(ctx, state, out.usage)
	}
	return nil
}

type releaseOut struct {
	result *models.ReleaseResult
	usage  *agent.Result
}

// retrospective logs the run summary. Non-blocking: nothing here may
// change the CR outcome, so every failure is swallowed after logging.
func (n *stageNodes) retrospective(ctx context.Context, state *models.PipelineState) error {
	result, err := n.rt.runAgent(ctx, state, agentCall{
		Role:  agent.RoleRetrospective,
		Stage: NodeRetrospective,
		Task:  runSummary(state),
	})
	if err != nil {
		n.rt.Logger.Warn("retrospective agent failed", "cr_id", state.CRID, "error", err)
		return nil
	}
	n.rt.recordCost(ctx, state, result)

	n.rt.Logger.Info("run retrospective",
		"cr_id", state.CRID,
		"cost_usd", state.Cost.TotalUSD,
		"verification_loops", state.VerificationLoops,
		"review_loops", state.ReviewLoops,
		"summary", clip(result.Output))
	return nil
}

// runSummary flattens the state into the textual summary used by the
// release writer and the retrospective.
func runSummary(state *models.PipelineState) string {
	var b strings.Builder
	b.WriteString("# Run Summary\n")
	b.WriteString(describeCR(state.CR))

	b.WriteString("\n## Specifications\n")
	for _, repo := range sortedRepoNames(state.Specs) {
		s := state.Specs[repo]
		fmt.Fprintf(&b, "- %s: %s\n", repo, strings.Join(s.SpecFiles, ", "))
	}

	b.WriteString("\n## Development\n")
	for _, repo := range sortedRepoNames(state.DevResults) {
		d := state.DevResults[repo]
		passed := d.TestResult != nil && d.TestResult.Passed
		fmt.Fprintf(&b, "- %s: %d files changed, %d TDD iterations, tests passed: %t\n",
			repo, len(d.GeneratedFiles), d.Iterations, passed)
		for _, f := range d.GeneratedFiles {
			b.WriteString("  - " + f + "\n")
		}
	}

	if len(state.Findings) > 0 {
		b.WriteString("\n## Review Findings\n")
		for _, f := range state.Findings {
			fmt.Fprintf(&b, "- [%s] %s: %s (%s)\n", f.Severity, f.RepoName, f.Message, f.Reviewer)
		}
	}
	if len(state.ScopeFlags) > 0 {
		b.WriteString("\n## Scope Flags\n")
		for _, f := range state.ScopeFlags {
			fmt.Fprintf(&b, "- %s: %s\n", f.RepoName, f.Message)
		}
	}

	fmt.Fprintf(&b, "\n## Loops\nverification: %d, review: %d, ci: %d\n",
		state.VerificationLoops, state.ReviewLoops, state.CILoops)
	fmt.Fprintf(&b, "\n## Cost\nUSD %.4f (%d input tokens, %d output tokens)\n",
		state.Cost.TotalUSD, state.Cost.InputTokens, state.Cost.OutputTokens)
	return b.String()
}
