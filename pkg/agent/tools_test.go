package agent

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToolbox(t *testing.T) (*Toolbox, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello"), 0o644))

	tb, err := NewToolbox(dir, AllTools)
	require.NoError(t, err)
	return tb, dir
}

func args(t *testing.T, v map[string]any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestToolboxReadInsideRoot(t *testing.T) {
	tb, _ := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolReadFile, args(t, map[string]any{"path": "file.txt"}))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	// A path that detours through a subdirectory but resolves inside
	// the root is fine.
	out, err = tb.Dispatch(context.Background(), ToolReadFile, args(t, map[string]any{"path": "subdir/../file.txt"}))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestToolboxRejectsEscapes(t *testing.T) {
	tb, _ := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolReadFile, args(t, map[string]any{"path": "subdir/../../escape.txt"}))
	require.NoError(t, err)
	assert.Contains(t, out, "error")

	out, err = tb.Dispatch(context.Background(), ToolWriteFile, args(t, map[string]any{"path": "../outside.txt", "content": "x"}))
	require.NoError(t, err)
	assert.Contains(t, out, "error")

	out, err = tb.Dispatch(context.Background(), ToolReadFile, args(t, map[string]any{"path": "/etc/passwd"}))
	require.NoError(t, err)
	assert.Contains(t, out, "error")
}

func TestToolboxRejectsSymlinkTraversal(t *testing.T) {
	tb, dir := newTestToolbox(t)

	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "outside.txt"), []byte("s3cr3t-marker"), 0o644))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "link")))

	out, err := tb.Dispatch(context.Background(), ToolReadFile, args(t, map[string]any{"path": "link/outside.txt"}))
	require.NoError(t, err)
	assert.Contains(t, out, "error")
	assert.NotContains(t, out, "s3cr3t-marker")
}

func TestToolboxWriteCreatesParents(t *testing.T) {
	tb, dir := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolWriteFile,
		args(t, map[string]any{"path": "a/b/c.txt", "content": "nested"}))
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(filepath.Join(dir, "a", "b", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))
}

func TestToolboxListDirectory(t *testing.T) {
	tb, _ := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolListDirectory, args(t, map[string]any{"path": "."}))
	require.NoError(t, err)
	assert.Contains(t, out, "file.txt")
	assert.Contains(t, out, "subdir/")
}

func TestToolboxRunCommand(t *testing.T) {
	tb, _ := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolRunCommand, args(t, map[string]any{"cmd": "echo ok"}))
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	out, err = tb.Dispatch(context.Background(), ToolRunCommand, args(t, map[string]any{"cmd": "exit 3"}))
	require.NoError(t, err)
	assert.Contains(t, out, "command failed")
}

func TestToolboxRunCommandTimeout(t *testing.T) {
	tb, _ := newTestToolbox(t)

	out, err := tb.Dispatch(context.Background(), ToolRunCommand,
		args(t, map[string]any{"cmd": "sleep 5", "timeout_s": 1}))
	require.NoError(t, err)
	assert.Contains(t, out, "timed out")
}

func TestToolboxAllowlist(t *testing.T) {
	dir := t.TempDir()
	tb, err := NewToolbox(dir, ReadOnlyTools)
	require.NoError(t, err)

	out, err := tb.Dispatch(context.Background(), ToolWriteFile,
		args(t, map[string]any{"path": "x.txt", "content": "x"}))
	require.NoError(t, err)
	assert.Contains(t, out, "not available")
}

func TestDefinitionsFilterAndOrder(t *testing.T) {
	defs := Definitions([]string{ToolRunCommand, ToolReadFile, "bogus"})
	require.Len(t, defs, 2)
	assert.Equal(t, ToolReadFile, defs[0].Name)
	assert.Equal(t, ToolRunCommand, defs[1].Name)
}
