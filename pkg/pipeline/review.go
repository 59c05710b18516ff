package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/models"
)

type reviewDelta struct {
	findings []models.Finding
	flags    []models.ScopeFlag
	usage    []*agent.Result
}

// review runs the deterministic diff-scope pre-pass and then three
// reviewer agents in parallel per repository. Only critical and major
// findings affect routing; everything else is informational.
func (n *stageNodes) review(ctx context.Context, state *models.PipelineState) error {
	results, err := fanOut(ctx, state, n.reviewRepo)
	if err != nil {
		return err
	}

	state.Findings = state.Findings[:0]
	state.ScopeFlags = state.ScopeFlags[:0]
	for _, repo := range sortedRepoNames(results) {
		d := results[repo]
		state.Findings = append(state.Findings, d.findings...)
		state.ScopeFlags = append(state.ScopeFlags, d.flags...)
		for _, u := range d.usage {
			n.rt.recordCost(ctx, state, u)
		}
	}

	if len(state.BlockingFindings()) > 0 {
		state.ReviewLoops++
	}
	return nil
}

func (n *stageNodes) reviewRepo(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (reviewDelta, error) {
	diff, err := n.rt.Git.Diff(ctx, repo.WorktreePath, repo.DefaultBranch)
	if err != nil {
		return reviewDelta{}, err
	}

	delta := reviewDelta{flags: DiffScopeFlags(repo.RepoName, diff)}
	for _, flag := range delta.flags {
		n.rt.emit(ctx, snap.CRID, NodeReview, events.TypeReviewFinding, map[string]any{
			"repo":     repo.RepoName,
			"kind":     "scope_flag",
			"category": flag.Category,
			"file":     flag.File,
			"message":  flag.Message,
		})
	}

	task := fmt.Sprintf("Change request:\n%s\nDiff against %s:\n```diff\n%s\n```",
		describeCR(snap.CR), repo.DefaultBranch, clipDiff(diff))
	var scopeCtx []string
	for _, flag := range delta.flags {
		scopeCtx = append(scopeCtx, "Scope warning: "+flag.Message)
	}

	reviewers := []struct {
		role string
		task string
	}{
		{agent.RoleSecurityReviewer, task},
		{agent.RoleQualityReviewer, task},
		{agent.RoleSpecReviewer, task + "\n\nOther repositories' spec summaries:\n" + n.otherSpecSummaries(snap, repo.RepoName)},
	}

	// The three reviewers are independent; run them in parallel.
	type reviewerOut struct {
		findings []models.Finding
		usage    *agent.Result
		err      error
	}
	outs := make([]reviewerOut, len(reviewers))
	var wg sync.WaitGroup
	for i, r := range reviewers {
		wg.Add(1)
		go func(i int, role, task string) {
			defer wg.Done()
			result, err := n.rt.runAgent(ctx, snap, agentCall{
				Role:        role,
				Stage:       NodeReview,
				Repo:        &repo,
				Task:        task,
				LoopContext: scopeCtx,
				Tools:       agent.ReadOnlyTools,
				WorkingDir:  repo.WorktreePath,
			})
			if err != nil {
				outs[i] = reviewerOut{err: err}
				return
			}
			var parsed struct {
				Findings []models.Finding `json:"findings"`
			}
			if err := decodeJSONOutput(result.Output, &parsed); err != nil {
				outs[i] = reviewerOut{err: fmt.Errorf("%s output unparseable: %w", role, err)}
				return
			}
			for j := range parsed.Findings {
				parsed.Findings[j].RepoName = repo.RepoName
				parsed.Findings[j].Reviewer = role
			}
			outs[i] = reviewerOut{findings: parsed.Findings, usage: result}
		}(i, r.role, r.task)
	}
	wg.Wait()

	for _, out := range outs {
		if out.err != nil {
			return reviewDelta{}, out.err
		}
		delta.findings = append(delta.findings, out.findings...)
		delta.usage = append(delta.usage, out.usage)
	}
	sortFindings(delta.findings)

	for _, f := range delta.findings {
		n.rt.emit(ctx, snap.CRID, NodeReview, events.TypeReviewFinding, map[string]any{
			"repo":     f.RepoName,
			"severity": f.Severity,
			"category": f.Category,
			"file":     f.File,
			"line":     f.Line,
			"message":  f.Message,
			"reviewer": f.Reviewer,
		})
	}
	return delta, nil
}

// sortFindings orders findings most severe first. Unknown severities
// sort last.
func sortFindings(findings []models.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return severityRank(findings[i].Severity) < severityRank(findings[j].Severity)
	})
}

func severityRank(severity string) int {
	switch severity {
	case models.SeverityCritical:
		return 0
	case models.SeverityMajor:
		return 1
	case models.SeverityMinor:
		return 2
	case models.SeverityInfo:
		return 3
	}
	return 4
}

func (n *stageNodes) otherSpecSummaries(snap *models.PipelineState, exclude string) string {
	var b strings.Builder
	for _, repo := range sortedRepoNames(snap.Specs) {
		if repo == exclude {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n", repo, snap.Specs[repo].Summary)
	}
	if b.Len() == 0 {
		return "(single-repository change)"
	}
	return b.String()
}

func clipDiff(diff string) string {
	const maxDiffChars = 40_000
	if len(diff) > maxDiffChars {
		return diff[:maxDiffChars] + "\n[diff truncated; use read tools for the full files]"
	}
	return diff
}
