package pipeline

import (
	"context"
	"strings"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/models"
)

type rebaseDelta struct {
	outcome *models.RebaseOutcome
	usage   []*agent.Result
}

// rebase replays every repository's feature branch onto the latest
// base branch. Conflicts go to the conflict resolver agent; a
// multi-commit rebase may re-conflict on each replayed commit, so
// resolution loops through rebase --continue until done or the attempt
// limit is hit. Unresolved conflicts abort the rebase and mark the
// repository dirty; routing pauses the run.
func (n *stageNodes) rebase(ctx context.Context, state *models.PipelineState) error {
	results, err := fanOut(ctx, state, n.rebaseRepo)
	if err != nil {
		return err
	}

	if state.RebaseOutcomes == nil {
		state.RebaseOutcomes = make(map[string]*models.RebaseOutcome)
	}
	allClean := true
	for repo, d := range results {
		state.RebaseOutcomes[repo] = d.outcome
		for _, u := range d.usage {
			n.rt.recordCost(ctx, state, u)
		}
		if !d.outcome.Clean {
			allClean = false
		}
	}
	state.RebaseClean = &allClean
	return nil
}

func (n *stageNodes) rebaseRepo(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (rebaseDelta, error) {
	outcome := &models.RebaseOutcome{RepoName: repo.RepoName}
	var usage []*agent.Result

	conflicts, done, err := n.rt.Git.Rebase(ctx, repo.WorktreePath, repo.DefaultBranch)
	if err != nil {
		return rebaseDelta{}, err
	}

	for !done && outcome.Attempts < snap.Config.MaxRebaseAttempts {
		outcome.Attempts++
		outcome.ConflictFiles = conflicts

		result, err := n.rt.runAgent(ctx, snap, agentCall{
			Role:  agent.RoleConflictResolver,
			Stage: NodeRebase,
			Repo:  &repo,
			Task: "A rebase onto " + repo.DefaultBranch + " hit conflicts in these files:\n" +
				strings.Join(conflicts, "\n") +
				"\nResolve the conflict markers and stage the files.",
			Tools:      agent.AllTools,
			WorkingDir: repo.WorktreePath,
		})
		if err != nil {
			n.rt.Git.RebaseAbort(ctx, repo.WorktreePath)
			return rebaseDelta{}, err
		}
		usage = append(usage, result)

		conflicts, done, err = n.rt.Git.RebaseContinue(ctx, repo.WorktreePath)
		if err != nil {
			n.rt.Git.RebaseAbort(ctx, repo.WorktreePath)
			return rebaseDelta{}, err
		}
	}

	if !done {
		if err := n.rt.Git.RebaseAbort(ctx, repo.WorktreePath); err != nil {
			n.rt.Logger.Warn("rebase abort failed", "cr_id", snap.CRID, "repo", repo.RepoName, "error", err)
		}
		outcome.Clean = false
		outcome.ConflictFiles = conflicts
		return rebaseDelta{outcome: outcome, usage: usage}, nil
	}

	outcome.Clean = true
	outcome.ConflictFiles = nil
	outcome.TestResult = n.runTests(ctx, snap, &repo)
	return rebaseDelta{outcome: outcome, usage: usage}, nil
}
