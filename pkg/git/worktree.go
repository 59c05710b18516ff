// Package git manages per-run worktrees backed by shared bare clones
// and the rebase workflow against each repository's base branch. All
// operations shell out to the system git binary.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Directory names excluded from the directory-tree snapshot.
var treeExcludes = map[string]bool{
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

const treeDepth = 3

// Manager creates and operates worktrees under one workspace root.
type Manager struct {
	workspaceDir string
	logger       *slog.Logger
}

// NewManager builds a manager rooted at workspaceDir.
func NewManager(workspaceDir string) *Manager {
	return &Manager{
		workspaceDir: workspaceDir,
		logger:       slog.Default().With("component", "git"),
	}
}

// BranchName returns the feature branch for a run.
func BranchName(crID string) string {
	return "ai/" + crID
}

// BareClonePath is the shared bare clone location for a repository.
func (m *Manager) BareClonePath(repoName string) string {
	return filepath.Join(m.workspaceDir, "repos", repoName+".git")
}

// WorktreePath is the per-run worktree location for a repository.
func (m *Manager) WorktreePath(crID, repoName string) string {
	return filepath.Join(m.workspaceDir, "runs", crID, repoName)
}

// EnsureWorktree makes the worktree for (crID, repo) exist on the
// run's feature branch. The bare clone is created on first use and
// fetched otherwise. When the remote already has the feature branch
// (a previous worker pushed before dying), the worktree is recreated
// from the remote branch so no pushed work is lost.
func (m *Manager) EnsureWorktree(ctx context.Context, crID, repoURL, repoName, defaultBranch string) (string, error) {
	bare := m.BareClonePath(repoName)
	if _, err := os.Stat(bare); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(bare), 0o755); err != nil {
			return "", err
		}
		if _, err := m.run(ctx, "", "clone", "--bare", repoURL, bare); err != nil {
			return "", fmt.Errorf("bare clone %s: %w", repoName, err)
		}
	} else {
		if _, err := m.run(ctx, bare, "fetch", "origin", "+refs/heads/*:refs/heads/*"); err != nil {
			return "", fmt.Errorf("fetch %s: %w", repoName, err)
		}
	}

	worktree := m.WorktreePath(crID, repoName)
	branch := BranchName(crID)

	// A stale worktree from a dead worker is rebuilt from scratch.
	if _, err := os.Stat(worktree); err == nil {
		if _, err := m.run(ctx, bare, "worktree", "remove", "--force", worktree); err != nil {
			os.RemoveAll(worktree)
		}
		m.run(ctx, bare, "worktree", "prune")
		m.run(ctx, bare, "branch", "-D", branch)
	}
	if err := os.MkdirAll(filepath.Dir(worktree), 0o755); err != nil {
		return "", err
	}

	if m.branchExists(ctx, bare, branch) {
		// Remote recovery: continue from the pushed feature branch.
		if _, err := m.run(ctx, bare, "worktree", "add", worktree, branch); err != nil {
			return "", fmt.Errorf("recreate worktree %s: %w", repoName, err)
		}
	} else {
		if _, err := m.run(ctx, bare, "worktree", "add", "-b", branch, worktree, defaultBranch); err != nil {
			return "", fmt.Errorf("create worktree %s: %w", repoName, err)
		}
	}

	// Commit identity, written once to the shared clone config.
	m.run(ctx, worktree, "config", "user.name", "hadron")
	m.run(ctx, worktree, "config", "user.email", "hadron@noreply.local")
	return worktree, nil
}

// RemoveWorktree drops the run's worktree for a repository.
func (m *Manager) RemoveWorktree(ctx context.Context, crID, repoName string) error {
	bare := m.BareClonePath(repoName)
	worktree := m.WorktreePath(crID, repoName)
	if _, err := m.run(ctx, bare, "worktree", "remove", "--force", worktree); err != nil {
		return os.RemoveAll(worktree)
	}
	_, err := m.run(ctx, bare, "worktree", "prune")
	return err
}

// ReadConventions returns the repository's agent conventions file:
// AGENTS.md, falling back to CLAUDE.md, empty when neither exists.
func (m *Manager) ReadConventions(worktree string) string {
	for _, name := range []string{"AGENTS.md", "CLAUDE.md"} {
		if data, err := os.ReadFile(filepath.Join(worktree, name)); err == nil {
			return string(data)
		}
	}
	return ""
}

// DirectoryTree snapshots the worktree layout down to three levels,
// skipping hidden entries and common vendored directories.
func (m *Manager) DirectoryTree(worktree string) string {
	var b strings.Builder
	m.walkTree(&b, worktree, "", 0)
	return b.String()
}

func (m *Manager) walkTree(b *strings.Builder, dir, indent string, depth int) {
	if depth >= treeDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || treeExcludes[name] {
			continue
		}
		if e.IsDir() {
			b.WriteString(indent + name + "/\n")
			m.walkTree(b, filepath.Join(dir, name), indent+"  ", depth+1)
		} else {
			b.WriteString(indent + name + "\n")
		}
	}
}

// CommitAll stages everything and commits. A clean tree is not an
// error; it reports false.
func (m *Manager) CommitAll(ctx context.Context, worktree, message string) (bool, error) {
	if _, err := m.run(ctx, worktree, "add", "-A"); err != nil {
		return false, err
	}
	out, err := m.run(ctx, worktree, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	if strings.TrimSpace(out) == "" {
		return false, nil
	}
	if _, err := m.run(ctx, worktree, "commit", "-m", message); err != nil {
		return false, err
	}
	return true, nil
}

// Push publishes the run's feature branch.
func (m *Manager) Push(ctx context.Context, worktree, branch string) error {
	_, err := m.run(ctx, worktree, "push", "--force-with-lease", "origin", branch)
	return err
}

// Diff returns the unified diff of the feature branch against the
// base branch.
func (m *Manager) Diff(ctx context.Context, worktree, baseBranch string) (string, error) {
	return m.run(ctx, worktree, "diff", baseBranch+"...HEAD")
}

// Rebase fetches the base branch and rebases the feature branch onto
// it. On conflict it returns the conflicted files and done=false,
// leaving the rebase in progress for the conflict resolver.
//
// The bare clone carries no refs/remotes, so the fetch updates the
// local base branch directly and the rebase targets that.
func (m *Manager) Rebase(ctx context.Context, worktree, baseBranch string) (conflicts []string, done bool, err error) {
	refspec := fmt.Sprintf("+refs/heads/%s:refs/heads/%s", baseBranch, baseBranch)
	if _, err := m.run(ctx, worktree, "fetch", "origin", refspec); err != nil {
		return nil, false, err
	}
	if _, err := m.run(ctx, worktree, "rebase", baseBranch); err != nil {
		conflicts, cerr := m.conflictedFiles(ctx, worktree)
		if cerr != nil {
			return nil, false, cerr
		}
		if len(conflicts) == 0 {
			return nil, false, err
		}
		return conflicts, false, nil
	}
	return nil, true, nil
}

// RebaseContinue resumes an in-progress rebase after conflicts were
// resolved. A multi-commit rebase may re-conflict on each replayed
// commit, so the caller loops until done.
func (m *Manager) RebaseContinue(ctx context.Context, worktree string) (conflicts []string, done bool, err error) {
	if _, err := m.runEnv(ctx, worktree, []string{"GIT_EDITOR=true"}, "rebase", "--continue"); err != nil {
		conflicts, cerr := m.conflictedFiles(ctx, worktree)
		if cerr != nil {
			return nil, false, cerr
		}
		if len(conflicts) == 0 {
			return nil, false, err
		}
		return conflicts, false, nil
	}
	return nil, true, nil
}

// RebaseAbort abandons an in-progress rebase.
func (m *Manager) RebaseAbort(ctx context.Context, worktree string) error {
	_, err := m.run(ctx, worktree, "rebase", "--abort")
	return err
}

func (m *Manager) conflictedFiles(ctx context.Context, worktree string) ([]string, error) {
	out, err := m.run(ctx, worktree, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func (m *Manager) branchExists(ctx context.Context, bare, branch string) bool {
	_, err := m.run(ctx, bare, "rev-parse", "--verify", "refs/heads/"+branch)
	return err == nil
}

func (m *Manager) run(ctx context.Context, dir string, args ...string) (string, error) {
	return m.runEnv(ctx, dir, nil, args...)
}

func (m *Manager) runEnv(ctx context.Context, dir string, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if env != nil {
		cmd.Env = append(os.Environ(), env...)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
