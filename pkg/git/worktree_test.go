package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CollideNV/hadron/pkg/git"
)

// seedOrigin builds a bare repository with one commit on main and
// returns its path plus the seed working copy used to push base-branch
// updates later.
func seedOrigin(t *testing.T) (origin, seed string) {
	t.Helper()
	base := t.TempDir()
	seed = filepath.Join(base, "seed")
	origin = filepath.Join(base, "origin.git")

	gitRun(t, base, "init", "-b", "main", seed)
	gitRun(t, seed, "config", "user.name", "seeder")
	gitRun(t, seed, "config", "user.email", "seed@test")
	writeFile(t, seed, "README.md", "# service\n")
	writeFile(t, seed, "AGENTS.md", "Use table-driven tests.\n")
	writeFile(t, seed, "app/handler.go", "package app\n")
	gitRun(t, seed, "add", "-A")
	gitRun(t, seed, "commit", "-m", "initial")
	gitRun(t, base, "clone", "--bare", seed, origin)
	gitRun(t, seed, "remote", "add", "origin", origin)
	return origin, seed
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBranchName(t *testing.T) {
	assert.Equal(t, "ai/cr-20260810-abc123", git.BranchName("cr-20260810-abc123"))
}

func TestEnsureWorktreeAndCommitPush(t *testing.T) {
	origin, _ := seedOrigin(t)
	m := git.NewManager(t.TempDir())
	ctx := context.Background()

	worktree, err := m.EnsureWorktree(ctx, "cr-wt01", origin, "svc", "main")
	require.NoError(t, err)
	assert.Equal(t, m.WorktreePath("cr-wt01", "svc"), worktree)
	assert.FileExists(t, filepath.Join(worktree, "README.md"))

	// A clean tree commits nothing.
	committed, err := m.CommitAll(ctx, worktree, "noop")
	require.NoError(t, err)
	assert.False(t, committed)

	writeFile(t, worktree, "features/change.feature", "Feature: audit\n")
	committed, err = m.CommitAll(ctx, worktree, "add behaviour specs")
	require.NoError(t, err)
	assert.True(t, committed)

	diff, err := m.Diff(ctx, worktree, "main")
	require.NoError(t, err)
	assert.Contains(t, diff, "features/change.feature")

	require.NoError(t, m.Push(ctx, worktree, git.BranchName("cr-wt01")))
	cmd := exec.Command("git", "rev-parse", "--verify", "refs/heads/"+git.BranchName("cr-wt01"))
	cmd.Dir = origin
	assert.NoError(t, cmd.Run(), "feature branch reaches the origin")
}

func TestEnsureWorktreeRecoversPushedBranch(t *testing.T) {
	origin, _ := seedOrigin(t)
	ctx := context.Background()

	// First worker pushes, then dies; its workspace is lost.
	first := git.NewManager(t.TempDir())
	worktree, err := first.EnsureWorktree(ctx, "cr-wt02", origin, "svc", "main")
	require.NoError(t, err)
	writeFile(t, worktree, "impl.txt", "work in progress\n")
	_, err = first.CommitAll(ctx, worktree, "wip")
	require.NoError(t, err)
	require.NoError(t, first.Push(ctx, worktree, git.BranchName("cr-wt02")))

	// A second worker on a fresh workspace continues from the push.
	second := git.NewManager(t.TempDir())
	recovered, err := second.EnsureWorktree(ctx, "cr-wt02", origin, "svc", "main")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(recovered, "impl.txt"))
}

func TestRebaseCleanAfterBaseAdvances(t *testing.T) {
	origin, seed := seedOrigin(t)
	m := git.NewManager(t.TempDir())
	ctx := context.Background()

	worktree, err := m.EnsureWorktree(ctx, "cr-wt03", origin, "svc", "main")
	require.NoError(t, err)
	writeFile(t, worktree, "feature.txt", "new behaviour\n")
	_, err = m.CommitAll(ctx, worktree, "feature work")
	require.NoError(t, err)

	// Someone lands an unrelated change on main.
	writeFile(t, seed, "docs.md", "release notes\n")
	gitRun(t, seed, "add", "-A")
	gitRun(t, seed, "commit", "-m", "docs")
	gitRun(t, seed, "push", "origin", "main")

	conflicts, done, err := m.Rebase(ctx, worktree, "main")
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, conflicts)
	assert.FileExists(t, filepath.Join(worktree, "docs.md"), "rebase picked up the new base commit")
}

func TestRebaseConflictResolveContinue(t *testing.T) {
	origin, seed := seedOrigin(t)
	m := git.NewManager(t.TempDir())
	ctx := context.Background()

	worktree, err := m.EnsureWorktree(ctx, "cr-wt04", origin, "svc", "main")
	require.NoError(t, err)
	writeFile(t, worktree, "README.md", "# service, feature edition\n")
	_, err = m.CommitAll(ctx, worktree, "rewrite readme")
	require.NoError(t, err)

	// Conflicting edit on main.
	writeFile(t, seed, "README.md", "# service, mainline edition\n")
	gitRun(t, seed, "add", "-A")
	gitRun(t, seed, "commit", "-m", "readme")
	gitRun(t, seed, "push", "origin", "main")

	conflicts, done, err := m.Rebase(ctx, worktree, "main")
	require.NoError(t, err)
	assert.False(t, done)
	require.Equal(t, []string{"README.md"}, conflicts)

	// Resolve in place and continue.
	writeFile(t, worktree, "README.md", "# service, merged edition\n")
	gitRun(t, worktree, "add", "README.md")
	conflicts, done, err = m.RebaseContinue(ctx, worktree)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Empty(t, conflicts)
}

func TestRebaseAbortRestoresBranch(t *testing.T) {
	origin, seed := seedOrigin(t)
	m := git.NewManager(t.TempDir())
	ctx := context.Background()

	worktree, err := m.EnsureWorktree(ctx, "cr-wt05", origin, "svc", "main")
	require.NoError(t, err)
	writeFile(t, worktree, "README.md", "feature\n")
	_, err = m.CommitAll(ctx, worktree, "feature readme")
	require.NoError(t, err)

	writeFile(t, seed, "README.md", "mainline\n")
	gitRun(t, seed, "add", "-A")
	gitRun(t, seed, "commit", "-m", "mainline readme")
	gitRun(t, seed, "push", "origin", "main")

	_, done, err := m.Rebase(ctx, worktree, "main")
	require.NoError(t, err)
	require.False(t, done)

	require.NoError(t, m.RebaseAbort(ctx, worktree))
	data, err := os.ReadFile(filepath.Join(worktree, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "feature\n", string(data))
}

func TestReadConventionsAndDirectoryTree(t *testing.T) {
	origin, _ := seedOrigin(t)
	m := git.NewManager(t.TempDir())

	worktree, err := m.EnsureWorktree(context.Background(), "cr-wt06", origin, "svc", "main")
	require.NoError(t, err)

	assert.Equal(t, "Use table-driven tests.\n", m.ReadConventions(worktree))

	tree := m.DirectoryTree(worktree)
	assert.Contains(t, tree, "app/")
	assert.Contains(t, tree, "README.md")
	assert.NotContains(t, tree, ".git")

	assert.Empty(t, m.ReadConventions(t.TempDir()))
}

func TestRemoveWorktree(t *testing.T) {
	origin, _ := seedOrigin(t)
	m := git.NewManager(t.TempDir())
	ctx := context.Background()

	worktree, err := m.EnsureWorktree(ctx, "cr-wt07", origin, "svc", "main")
	require.NoError(t, err)
	require.NoError(t, m.RemoveWorktree(ctx, "cr-wt07", "svc"))
	assert.NoDirExists(t, worktree)
}
