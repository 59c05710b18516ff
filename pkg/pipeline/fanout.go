package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/CollideNV/hadron/pkg/models"
)

// fanOut runs fn once per repository concurrently and collects the
// per-repo deltas. Every sub-task receives its own deep copy of the
// pre-stage state; the live state is never shared across goroutines.
// The barrier is unconditional: fanOut returns only after every
// sub-task finished, even when some failed.
func fanOut[T any](ctx context.Context, state *models.PipelineState, fn func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (T, error)) (map[string]T, error) {
	type result struct {
		repo  string
		delta T
		err   error
	}

	results := make(chan result, len(state.Repos))
	var wg sync.WaitGroup

	for _, repo := range state.Repos {
		snap, err := state.Clone()
		if err != nil {
			return nil, fmt.Errorf("snapshot state for %s: %w", repo.RepoName, err)
		}
		wg.Add(1)
		go func(repo models.RepoContext, snap *models.PipelineState) {
			defer wg.Done()
			delta, err := fn(ctx, repo, snap)
			results <- result{repo: repo.RepoName, delta: delta, err: err}
		}(repo, snap)
	}

	wg.Wait()
	close(results)

	out := make(map[string]T, len(state.Repos))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.repo, r.err))
			continue
		}
		out[r.repo] = r.delta
	}
	if len(errs) > 0 {
		return out, errors.Join(errs...)
	}
	return out, nil
}
