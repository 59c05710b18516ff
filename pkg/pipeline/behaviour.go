package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/models"
)

type behaviourDelta struct {
	spec  *models.BehaviourSpec
	usage *agent.Result
}

// behaviourTranslation has the spec-writer agent produce Gherkin
// feature files per repository. Re-entries from verification carry the
// previous verdict's feedback as loop context.
func (n *stageNodes) behaviourTranslation(ctx context.Context, state *models.PipelineState) error {
	task := fmt.Sprintf("Translate this change request into Gherkin .feature files:\n\n%s", describeCR(state.CR))

	results, err := fanOut(ctx, state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (behaviourDelta, error) {
		var loopCtx []string
		if v := snap.Verifications[repo.RepoName]; v != nil && !v.Verified {
			loopCtx = append(loopCtx, "Previous verification feedback: "+v.Feedback)
			if len(v.MissingScenarios) > 0 {
				loopCtx = append(loopCtx, "Missing scenarios: "+strings.Join(v.MissingScenarios, "; "))
			}
		}
		if snap.ConsistencyFeedback != "" {
			loopCtx = append(loopCtx, "Cross-repository consistency feedback: "+snap.ConsistencyFeedback)
		}

		result, err := n.rt.runAgent(ctx, snap, agentCall{
			Role:        agent.RoleSpecWriter,
			Stage:       NodeBehaviourTranslation,
			Repo:        &repo,
			Task:        task,
			LoopContext: loopCtx,
			Tools:       agent.AllTools,
			WorkingDir:  repo.WorktreePath,
		})
		if err != nil {
			return behaviourDelta{}, err
		}

		spec := &models.BehaviourSpec{RepoName: repo.RepoName}
		var parsed struct {
			SpecFiles []string `json:"spec_files"`
			Summary   string   `json:"summary"`
		}
		if err := decodeJSONOutput(result.Output, &parsed); err == nil {
			spec.SpecFiles = parsed.SpecFiles
			spec.Summary = parsed.Summary
		}
		if spec.Summary == "" {
			spec.Summary = clip(result.Output)
		}

		if _, err := n.rt.Git.CommitAll(ctx, repo.WorktreePath, "Add behaviour specs for "+snap.CRID); err != nil {
			return behaviourDelta{}, err
		}
		return behaviourDelta{spec: spec, usage: result}, nil
	})
	if err != nil {
		return err
	}

	if state.Specs == nil {
		state.Specs = make(map[string]*models.BehaviourSpec)
	}
	for repo, d := range results {
		state.Specs[repo] = d.spec
		n.rt.recordCost(ctx, state, d.usage)
	}
	return nil
}

type verificationDelta struct {
	verdict *models.VerificationResult
	usage   *agent.Result
}

// behaviourVerification checks every repository's specs in parallel,
// then runs the serial cross-repo consistency check. The composite
// verdict requires every repository verified and consistency passed.
func (n *stageNodes) behaviourVerification(ctx context.Context, state *models.PipelineState) error {
	task := fmt.Sprintf("Verify the .feature files in the worktree against this change request:\n\n%s", describeCR(state.CR))

	results, err := fanOut(ctx, state, func(ctx context.Context, repo models.RepoContext, snap *models.PipelineState) (verificationDelta, error) {
		result, err := n.rt.runAgent(ctx, snap, agentCall{
			Role:       agent.RoleSpecVerifier,
			Stage:      NodeBehaviourVerification,
			Repo:       &repo,
			Task:       task,
			Tools:      agent.ReadOnlyTools,
			WorkingDir: repo.WorktreePath,
		})
		if err != nil {
			return verificationDelta{}, err
		}

		verdict := &models.VerificationResult{RepoName: repo.RepoName}
		if err := decodeJSONOutput(result.Output, verdict); err != nil {
			return verificationDelta{}, fmt.Errorf("verifier output unparseable: %w", err)
		}
		verdict.RepoName = repo.RepoName
		return verificationDelta{verdict: verdict, usage: result}, nil
	})
	if err != nil {
		return err
	}

	if state.Verifications == nil {
		state.Verifications = make(map[string]*models.VerificationResult)
	}
	allVerified := true
	for repo, d := range results {
		state.Verifications[repo] = d.verdict
		n.rt.recordCost(ctx, state, d.usage)
		if !d.verdict.Verified {
			allVerified = false
		}
	}

	state.ConsistencyFeedback = ""
	if allVerified && len(state.Repos) > 1 {
		consistent, feedback, err := n.checkConsistency(ctx, state)
		if err != nil {
			return err
		}
		if !consistent {
			allVerified = false
			state.ConsistencyFeedback = feedback
		}
	}

	state.Verified = allVerified
	if !allVerified {
		state.VerificationLoops++
	}
	return nil
}

// checkConsistency runs serially after fan-in, seeing all specs
// together for cross-repo contract checks.
func (n *stageNodes) checkConsistency(ctx context.Context, state *models.PipelineState) (bool, string, error) {
	var b strings.Builder
	b.WriteString("All repository spec summaries for this change request:\n")
	for _, repo := range sortedRepoNames(state.Specs) {
		fmt.Fprintf(&b, "\n## %s\n%s\n", repo, state.Specs[repo].Summary)
	}
	b.WriteString("\nCheck the specs for cross-repository contract inconsistencies (mismatched endpoints, payloads, event names, sequencing).")

	result, err := n.rt.runAgent(ctx, state, agentCall{
		Role:  agent.RoleSpecVerifier,
		Stage: NodeBehaviourVerification,
		Task:  b.String(),
	})
	if err != nil {
		return false, "", err
	}
	n.rt.recordCost(ctx, state, result)

	var verdict struct {
		Verified bool   `json:"verified"`
		Feedback string `json:"feedback"`
	}
	if err := decodeJSONOutput(result.Output, &verdict); err != nil {
		return false, "", fmt.Errorf("consistency verdict unparseable: %w", err)
	}
	return verdict.Verified, verdict.Feedback, nil
}

func describeCR(cr *models.StructuredCR) string {
	var b strings.Builder
	b.WriteString("Title: " + cr.Title + "\n")
	b.WriteString("Description: " + cr.Description + "\n")
	if len(cr.AcceptanceCriteria) > 0 {
		b.WriteString("Acceptance criteria:\n")
		for _, ac := range cr.AcceptanceCriteria {
			b.WriteString("- " + ac + "\n")
		}
	}
	if len(cr.Constraints) > 0 {
		b.WriteString("Constraints: " + strings.Join(cr.Constraints, "; ") + "\n")
	}
	if len(cr.RiskFlags) > 0 {
		b.WriteString("Risk flags: " + strings.Join(cr.RiskFlags, "; ") + "\n")
	}
	return b.String()
}

func sortedRepoNames[T any](m map[string]T) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
