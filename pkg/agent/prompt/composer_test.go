package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/agent"
	"github.com/CollideNV/hadron/pkg/models"
)

func TestComposeAllLayers(t *testing.T) {
	system, user, err := Compose(Input{
		Role: agent.RoleCodeWriter,
		Repo: &models.RepoContext{
			RepoName:      "api",
			DefaultBranch: "main",
			Language:      "python",
			TestCommand:   "pytest",
			Conventions:   "Use type hints everywhere.",
			DirectoryTree: "src/\n  app.py\n",
		},
		Task:         "Implement the /health endpoint.",
		LoopContext:  []string{"Previous test run failed: assertion error"},
		Instructions: "Prefer FastAPI idioms.",
	})
	require.NoError(t, err)

	assert.Contains(t, system, "TDD workflow")
	assert.Contains(t, user, "Repository: api (default branch main)")
	assert.Contains(t, user, "Use type hints everywhere.")
	assert.Contains(t, user, "Implement the /health endpoint.")
	assert.Contains(t, user, "assertion error")
	assert.Contains(t, user, "Operator instructions: Prefer FastAPI idioms.")
}

func TestComposeUnknownRole(t *testing.T) {
	_, _, err := Compose(Input{Role: "nonexistent", Task: "x"})
	require.Error(t, err)
}

func TestComposeWithoutRepoSkipsContextLayer(t *testing.T) {
	_, user, err := Compose(Input{Role: agent.RoleIntake, Task: "parse this"})
	require.NoError(t, err)
	assert.NotContains(t, user, "Repository Context")
	assert.Contains(t, user, "parse this")
}

func TestComposeCapsRepoContext(t *testing.T) {
	_, user, err := Compose(Input{
		Role: agent.RoleCodeWriter,
		Repo: &models.RepoContext{
			RepoName:      "api",
			DefaultBranch: "main",
			Conventions:   strings.Repeat("x", maxRepoContextChars*2),
		},
		Task: "the task",
	})
	require.NoError(t, err)
	assert.Less(t, len(user), maxRepoContextChars+1000)
	assert.Contains(t, user, "[context truncated")
	assert.Contains(t, user, "the task")
}

func TestAllRolesHaveTemplates(t *testing.T) {
	roles := []string{
		agent.RoleIntake, agent.RoleSpecWriter, agent.RoleSpecVerifier,
		agent.RoleTestWriter, agent.RoleCodeWriter,
		agent.RoleSecurityReviewer, agent.RoleQualityReviewer, agent.RoleSpecReviewer,
		agent.RoleConflictResolver, agent.RoleReleaseWriter, agent.RoleRetrospective,
	}
	for _, role := range roles {
		assert.NotEmpty(t, SystemPrompt(role), "missing template for %s", role)
	}
}

func TestSecurityReviewerMarksUntrustedInput(t *testing.T) {
	assert.Contains(t, SystemPrompt(agent.RoleSecurityReviewer), "untrusted input")
}
