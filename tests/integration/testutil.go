// Package integration provides integration tests for corkboard: the
// board over the SQLite backend, and the CLI binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

var (
	// corkboardBin is the path to the built corkboard binary.
	corkboardBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// BuildError wraps a build error with its compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up to go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// newAttachedBackend returns an attached SQLite backend over a fresh
// temp data dir, detached automatically at test cleanup.
func newAttachedBackend(t *testing.T) (*sqlite.Backend, string) {
	t.Helper()
	dataDir := t.TempDir()
	backend := sqlite.NewBackend()
	err := backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	if err != nil {
		t.Fatalf("attach backend: %v", err)
	}
	t.Cleanup(func() { backend.Detach() })
	return backend, dataDir
}

// newLoadedBoard returns a board loaded over a fresh attached backend.
func newLoadedBoard(t *testing.T) (*board.Board, string) {
	t.Helper()
	backend, dataDir := newAttachedBackend(t)
	b := board.New(backend)
	if err := b.Load(); err != nil {
		t.Fatalf("load board: %v", err)
	}
	return b, dataDir
}

// reloadBoard loads a second board over the same data dir, simulating a
// process restart.
func reloadBoard(t *testing.T, dataDir string) *board.Board {
	t.Helper()
	backend := sqlite.NewBackend()
	err := backend.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dataDir})
	if err != nil {
		t.Fatalf("re-attach backend: %v", err)
	}
	t.Cleanup(func() { backend.Detach() })
	b := board.New(backend)
	if err := b.Load(); err != nil {
		t.Fatalf("reload board: %v", err)
	}
	return b
}

// CLIResult holds the output of one CLI invocation.
type CLIResult struct {
	Stdout string
	Stderr string
}

// TestEnv is an isolated config/data environment for CLI runs.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates fresh config and data directories for a CLI test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("corkboard binary not built: %v", buildErr)
	}
	root := t.TempDir()
	return &TestEnv{
		t:         t,
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
	}
}

// Run invokes the corkboard binary with the environment's directories.
func (e *TestEnv) Run(args ...string) (*CLIResult, error) {
	e.t.Helper()
	full := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(corkboardBin, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return &CLIResult{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// MustRun invokes the binary and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) *CLIResult {
	e.t.Helper()
	result, err := e.Run(args...)
	if err != nil {
		e.t.Fatalf("corkboard %v failed: %v\nstdout: %s\nstderr: %s",
			args, err, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON unmarshals a JSON string into the given type, failing the
// test on parse errors.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}
