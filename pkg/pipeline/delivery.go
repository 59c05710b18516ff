package pipeline

import (
	"context"

	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/models"
)

// delivery publishes every repository's feature branch according to
// the run's delivery strategy. self_contained verifies in-process,
// push_and_wait parks the run until an external CI verdict, and
// push_and_forget pushes and moves on.
func (n *stageNodes) delivery(ctx context.Context, state *models.PipelineState) error {
	strategy := state.Config.DeliveryStrategy

	results, err := fanOut(ctx, state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (*models.DeliveryResult, error) {
		result := &models.DeliveryResult{RepoName: repo.RepoName, Strategy: strategy}

		// The rebase rewrote history; publish with force-with-lease.
		if err := n.rt.Git.Push(ctx, repo.WorktreePath, git.BranchName(snap.CRID)); err != nil {
			return nil, err
		}
		result.Pushed = true

		if strategy == models.DeliverySelfContained {
			tr := n.runTests(ctx, snap, &repo)
			result.Verified = tr.Passed
			if !tr.Passed {
				result.Detail = "verification test run failed"
			}
		}
		return result, nil
	})
	if err != nil {
		return err
	}

	if state.DeliveryResults == nil {
		state.DeliveryResults = make(map[string]*models.DeliveryResult)
	}
	allVerified := true
	for repo, d := range results {
		state.DeliveryResults[repo] = d
		if !d.Verified {
			allVerified = false
		}
	}

	switch strategy {
	case models.DeliverySelfContained:
		state.AllVerified = allVerified
		state.AwaitingCI = false
	case models.DeliveryPushAndWait:
		// The CI verdict arrives via resume overrides.
		state.AllVerified = false
		state.AwaitingCI = true
	case models.DeliveryPushAndForget:
		state.AllVerified = true
		state.AwaitingCI = false
	}
	return nil
}
