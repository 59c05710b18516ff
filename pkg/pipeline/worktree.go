package pipeline

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/CollideNV/hadron/pkg/models"
)

// repoIdentification builds one RepoContext per repository named in
// the trigger payload. A CR without repositories cannot proceed.
func (n *stageNodes) repoIdentification(ctx context.Context, state *models.PipelineState) error {
	if len(state.Raw.RepoURLs) == 0 {
		return fmt.Errorf("no repositories specified in the change request")
	}

	state.Repos = state.Repos[:0]
	for _, url := range state.Raw.RepoURLs {
		state.Repos = append(state.Repos, models.RepoContext{
			RepoURL:       url,
			RepoName:      repoNameFromURL(url),
			DefaultBranch: state.Raw.RepoDefaultBranch,
			Language:      state.Raw.Language,
			TestCommand:   state.Raw.TestCommand,
		})
	}
	return nil
}

// worktreeSetup materialises every repository's worktree on the run's
// feature branch and captures conventions and a directory snapshot.
func (n *stageNodes) worktreeSetup(ctx context.Context, state *models.PipelineState) error {
	type delta struct {
		worktree    string
		conventions string
		tree        string
	}
	results, err := fanOut(ctx, state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (delta, error) {
		worktree, err := n.rt.Git.EnsureWorktree(ctx, snap.CRID, repo.RepoURL, repo.RepoName, repo.DefaultBranch)
		if err != nil {
			return delta{}, err
		}
		return delta{
			worktree:    worktree,
			conventions: n.rt.Git.ReadConventions(worktree),
			tree:        n.rt.Git.DirectoryTree(worktree),
		}, nil
	})
	if err != nil {
		return err
	}

	for i := range state.Repos {
		d, ok := results[state.Repos[i].RepoName]
		if !ok {
			continue
		}
		state.Repos[i].WorktreePath = d.worktree
		state.Repos[i].Conventions = d.conventions
		state.Repos[i].DirectoryTree = d.tree
	}
	return nil
}

func repoNameFromURL(url string) string {
	name := path.Base(strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git"))
	if name == "." || name == "/" || name == "" {
		return "repo"
	}
	return name
}
