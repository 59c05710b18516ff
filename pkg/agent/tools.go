package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

// Tool names.
const (
	ToolReadFile      = "read_file"
	ToolWriteFile     = "write_file"
	ToolListDirectory = "list_directory"
	ToolRunCommand    = "run_command"
)

// ReadOnlyTools is the allowlist used by the explore phase.
var ReadOnlyTools = []string{ToolReadFile, ToolListDirectory}

// AllTools is the full allowlist used by the act phase.
var AllTools = []string{ToolReadFile, ToolWriteFile, ToolListDirectory, ToolRunCommand}

const (
	defaultCommandTimeout = 120 * time.Second
	maxFileReadBytes      = 100_000
	maxCommandOutputBytes = 50_000
)

// ToolDefinition describes one tool in a backend-neutral form. Each
// backend converts these to its provider's schema type.
type ToolDefinition struct {
	Name        string
	Description string
	Schema      map[string]interface{}
}

var toolDefinitions = map[string]ToolDefinition{
	ToolReadFile: {
		Name:        ToolReadFile,
		Description: "Read a file relative to the working directory.",
		Schema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"path": map[string]interface{}{"type": "string"}},
			"required":   []string{"path"},
		},
	},
	ToolWriteFile: {
		Name:        ToolWriteFile,
		Description: "Write content to a file relative to the working directory, creating parent directories as needed.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path":    map[string]interface{}{"type": "string"},
				"content": map[string]interface{}{"type": "string"},
			},
			"required": []string{"path", "content"},
		},
	},
	ToolListDirectory: {
		Name:        ToolListDirectory,
		Description: "List entries of a directory relative to the working directory.",
		Schema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{"path": map[string]interface{}{"type": "string"}},
			"required":   []string{"path"},
		},
	},
	ToolRunCommand: {
		Name:        ToolRunCommand,
		Description: "Run a shell command in the working directory. Killed after the timeout.",
		Schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"cmd":       map[string]interface{}{"type": "string"},
				"timeout_s": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"cmd"},
		},
	},
}

// Definitions returns the tool definitions for an allowlist, in a
// stable order.
func Definitions(allowlist []string) []ToolDefinition {
	names := append([]string(nil), allowlist...)
	sort.Strings(names)
	var out []ToolDefinition
	for _, n := range names {
		if def, ok := toolDefinitions[n]; ok {
			out = append(out, def)
		}
	}
	return out
}

// Toolbox executes file tools confined to one worktree directory.
type Toolbox struct {
	root    string
	allowed map[string]bool
}

// NewToolbox builds a toolbox rooted at dir with the given allowlist.
func NewToolbox(dir string, allowlist []string) (*Toolbox, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	allowed := make(map[string]bool, len(allowlist))
	for _, n := range allowlist {
		allowed[n] = true
	}
	return &Toolbox{root: resolved, allowed: allowed}, nil
}

// Dispatch runs one tool call. The error return is reserved for
// internal failures; tool-level failures (bad path, command error)
// come back as the result string so the agent can react to them.
func (t *Toolbox) Dispatch(ctx context.Context, name, argsJSON string) (string, error) {
	if !t.allowed[name] {
		return fmt.Sprintf("error: tool %q is not available", name), nil
	}
	var args struct {
		Path     string `json:"path"`
		Content  string `json:"content"`
		Cmd      string `json:"cmd"`
		TimeoutS int    `json:"timeout_s"`
	}
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return fmt.Sprintf("error: invalid tool arguments: %v", err), nil
	}

	switch name {
	case ToolReadFile:
		return t.readFile(args.Path)
	case ToolWriteFile:
		return t.writeFile(args.Path, args.Content)
	case ToolListDirectory:
		return t.listDirectory(args.Path)
	case ToolRunCommand:
		return t.runCommand(ctx, args.Cmd, args.TimeoutS)
	}
	return fmt.Sprintf("error: unknown tool %q", name), nil
}

// resolve normalises a tool path and rejects anything whose real path
// (after symlink resolution) escapes the toolbox root.
func (t *Toolbox) resolve(rel string) (string, error) {
	if rel == "" {
		rel = "."
	}
	abs := filepath.Join(t.root, filepath.Clean(rel))

	// The target may not exist yet (write_file). Resolve the deepest
	// existing ancestor so symlinked parents cannot smuggle the path
	// out of the root.
	probe := abs
	suffix := ""
	for {
		resolved, err := filepath.EvalSymlinks(probe)
		if err == nil {
			abs = filepath.Join(resolved, suffix)
			break
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		suffix = filepath.Join(filepath.Base(probe), suffix)
		parent := filepath.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}

	if abs != t.root && !strings.HasPrefix(abs, t.root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the working directory", rel)
	}
	return abs, nil
}

func (t *Toolbox) readFile(rel string) (string, error) {
	path, err := t.resolve(rel)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	if len(data) > maxFileReadBytes {
		return string(data[:maxFileReadBytes]) + "\n[truncated]", nil
	}
	return string(data), nil
}

func (t *Toolbox) writeFile(rel, content string) (string, error) {
	path, err := t.resolve(rel)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	return fmt.Sprintf("wrote %d bytes to %s", len(content), rel), nil
}

func (t *Toolbox) listDirectory(rel string) (string, error) {
	path, err := t.resolve(rel)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Sprintf("error: %v", err), nil
	}
	var b strings.Builder
	for _, e := range entries {
		if e.IsDir() {
			b.WriteString(e.Name() + "/\n")
		} else {
			b.WriteString(e.Name() + "\n")
		}
	}
	return b.String(), nil
}

func (t *Toolbox) runCommand(ctx context.Context, cmdStr string, timeoutS int) (string, error) {
	if cmdStr == "" {
		return "error: empty command", nil
	}
	timeout := defaultCommandTimeout
	if timeoutS > 0 {
		timeout = time.Duration(timeoutS) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", cmdStr)
	cmd.Dir = t.root
	// Own process group so the timeout kill takes the whole tree.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	out, err := cmd.CombinedOutput()
	if len(out) > maxCommandOutputBytes {
		out = append(out[:maxCommandOutputBytes], []byte("\n[truncated]")...)
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Sprintf("error: command timed out after %s\n%s", timeout, out), nil
	}
	if err != nil {
		return fmt.Sprintf("command failed: %v\n%s", err, out), nil
	}
	return string(out), nil
}
