package prompt

import (
	"fmt"
	"strings"

	"github.com/CollideNV/hadron/pkg/models"
)

// maxRepoContextChars caps the repo-context layer at roughly 12k
// tokens. Agents discover anything beyond the cap through their read
// tools.
const maxRepoContextChars = 48_000

// Input carries the material for one prompt.
type Input struct {
	Role string

	// Layer 2: repository context.
	Repo      *models.RepoContext
	Learnings string

	// Layer 3: task payload.
	Task string

	// Layer 4: loop context.
	LoopContext  []string
	Instructions string
}

// Compose assembles the system and user prompts for a task.
func Compose(in Input) (system, user string, err error) {
	system = SystemPrompt(in.Role)
	if system == "" {
		return "", "", fmt.Errorf("no prompt template for role %q", in.Role)
	}

	var b strings.Builder

	if in.Repo != nil {
		b.WriteString("## Repository Context\n")
		b.WriteString(separator + "\n")
		fmt.Fprintf(&b, "Repository: %s (default branch %s)\n", in.Repo.RepoName, in.Repo.DefaultBranch)
		fmt.Fprintf(&b, "Language: %s\nTest command: %s\n", in.Repo.Language, in.Repo.TestCommand)
		if in.Repo.Conventions != "" {
			b.WriteString("\n### Conventions\n" + in.Repo.Conventions + "\n")
		}
		if in.Repo.DirectoryTree != "" {
			b.WriteString("\n### Directory Tree\n" + in.Repo.DirectoryTree + "\n")
		}
		if in.Learnings != "" {
			b.WriteString("\n### Learnings From Previous Runs\n" + in.Learnings + "\n")
		}
		if b.Len() > maxRepoContextChars {
			truncated := b.String()[:maxRepoContextChars]
			b.Reset()
			b.WriteString(truncated + "\n[context truncated; use read tools for more]\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Task\n")
	b.WriteString(separator + "\n")
	b.WriteString(in.Task + "\n")

	if len(in.LoopContext) > 0 || in.Instructions != "" {
		b.WriteString("\n## Previous Iteration Context\n")
		b.WriteString(separator + "\n")
		for _, c := range in.LoopContext {
			b.WriteString(c + "\n")
		}
		if in.Instructions != "" {
			b.WriteString("\nOperator instructions: " + in.Instructions + "\n")
		}
	}

	return system, b.String(), nil
}
