package pipeline

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/events"
	"github.com/CollideNV/hadron/pkg/git"
	"github.com/CollideNV/hadron/pkg/models"
)

type tddDelta struct {
	dev   *models.DevResult
	usage []*agent.Result
}

// tdd runs the red/green workflow per repository: the test writer
// produces failing tests, then the code writer iterates until the
// suite passes or the iteration limit is reached. The branch is pushed
// afterwards either way so work survives worker death.
func (n *stageNodes) tdd(ctx context.Context, state *models.PipelineState) error {
	results, err := fanOut(ctx, state, n.tddRepo)
	if err != nil {
		return err
	}

	if state.DevResults == nil {
		state.DevResults = make(map[string]*models.DevResult)
	}
	for repo, d := range results {
		state.DevResults[repo] = d.dev
		for _, u := range d.usage {
			n.rt.recordCost(ctx, state, u)
		}
	}
	return nil
}

func (n *stageNodes) tddRepo(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (tddDelta, error) {
	crID := snap.CRID
	var usage []*agent.Result

	var loopCtx []string
	for _, f := range snap.BlockingFindings() {
		if f.RepoName == repo.RepoName {
			loopCtx = append(loopCtx, fmt.Sprintf("Review finding (%s, %s): %s", f.Severity, f.File, f.Message))
		}
	}
	if snap.CILoops > 0 {
		loopCtx = append(loopCtx, "The previous push failed CI; fix the build before anything else.")
	}

	specSummary := ""
	if s := snap.Specs[repo.RepoName]; s != nil {
		specSummary = s.Summary + "\nSpec files: " + strings.Join(s.SpecFiles, ", ")
	}

	// RED: failing tests from the behaviour specs.
	n.rt.emit(ctx, crID, SubStageTestWriter, events.TypeStageEntered,
		map[string]any{"stage": SubStageTestWriter, "repo": repo.RepoName})
	result, err := n.rt.runAgent(ctx, snap, agentCall{
		Role:        agent.RoleTestWriter,
		Stage:       SubStageTestWriter,
		Repo:        &repo,
		Task:        "Write failing tests for the behaviour specifications:\n\n" + specSummary,
		LoopContext: loopCtx,
		Tools:       agent.AllTools,
		WorkingDir:  repo.WorktreePath,
	})
	if err != nil {
		return tddDelta{}, err
	}
	usage = append(usage, result)
	n.rt.emit(ctx, crID, SubStageTestWriter, events.TypeStageCompleted,
		map[string]any{"stage": SubStageTestWriter, "repo": repo.RepoName})

	// GREEN: implement until the suite passes.
	dev := &models.DevResult{RepoName: repo.RepoName}
	n.rt.emit(ctx, crID, SubStageCodeWriter, events.TypeStageEntered,
		map[string]any{"stage": SubStageCodeWriter, "repo": repo.RepoName})
	for dev.Iterations = 1; dev.Iterations <= snap.Config.MaxTDDIterations; dev.Iterations++ {
		iterCtx := loopCtx
		if dev.TestResult != nil {
			iterCtx = append(iterCtx, "Previous test run failed:\n"+clip(dev.TestResult.Output))
		}
		result, err := n.rt.runAgent(ctx, snap, agentCall{
			Role:        agent.RoleCodeWriter,
			Stage:       SubStageCodeWriter,
			Repo:        &repo,
			Task:        "Make the failing tests pass. Specifications:\n\n" + specSummary,
			LoopContext: iterCtx,
			Tools:       agent.AllTools,
			WorkingDir:  repo.WorktreePath,
			ThreePhase:  true,
		})
		if err != nil {
			return tddDelta{}, err
		}
		usage = append(usage, result)

		dev.TestResult = n.runTests(ctx, snap, &repo)
		if dev.TestResult.Passed {
			break
		}
	}
	if dev.Iterations > snap.Config.MaxTDDIterations {
		dev.Iterations = snap.Config.MaxTDDIterations
	}
	n.rt.emit(ctx, crID, SubStageCodeWriter, events.TypeStageCompleted,
		map[string]any{"stage": SubStageCodeWriter, "repo": repo.RepoName})

	// Commit and push even when the final iteration still fails; the
	// review stage sees the real state of the work.
	if _, err := n.rt.Git.CommitAll(ctx, repo.WorktreePath, "Implement "+snap.CRID); err != nil {
		return tddDelta{}, err
	}
	if err := n.rt.Git.Push(ctx, repo.WorktreePath, git.BranchName(crID)); err != nil {
		return tddDelta{}, err
	}

	changed, err := changedFiles(ctx, repo.WorktreePath, repo.DefaultBranch)
	if err == nil {
		dev.GeneratedFiles = changed
	}
	return tddDelta{dev: dev, usage: usage}, nil
}

// runTests executes the repository's test command in the worktree and
// emits a test_run event. Failures are data, not errors.
func (n *stageNodes) runTests(ctx context.Context, snap *models.PipelineState, repo *models.RepoContext) *models.TestRunResult {
	timeout := time.Duration(snap.Config.TestTimeoutSecs) * time.Second
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, "sh", "-c", repo.TestCommand)
	cmd.Dir = repo.WorktreePath
	out, err := cmd.CombinedOutput()

	result := &models.TestRunResult{
		Command: repo.TestCommand,
		Passed:  err == nil,
		Output:  string(out),
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		result.ExitCode = -1
	}
	if len(result.Output) > maxEventText*4 {
		result.Output = result.Output[:maxEventText*4] + "\n[truncated]"
	}

	n.rt.emit(ctx, snap.CRID, NodeTDD, events.TypeTestRun, map[string]any{
		"repo":      repo.RepoName,
		"command":   result.Command,
		"passed":    result.Passed,
		"exit_code": result.ExitCode,
	})
	return result
}

func changedFiles(ctx context.Context, worktree, baseBranch string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", baseBranch+"...HEAD")
	cmd.Dir = worktree
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}
