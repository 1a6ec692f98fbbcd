// Package pywal invokes the external pywal tool and loads the palette it
// writes to its cache directory.
package pywal

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Invocation describes how to launch pywal: a command prefix, a
// human-readable name for logging, and extra environment entries.
type Invocation struct {
	Argv []string
	Name string
	Env  []string
}

// ResolveRunner determines the most suitable command invocation for pywal.
// Resolution order: a `wal` executable on PATH, a per-user Python Scripts
// directory, the `py` launcher, then a plain `python` interpreter - both
// launcher modes run `-m pywal`.
func ResolveRunner() (*Invocation, error) {
	if path, err := exec.LookPath("wal"); err == nil {
		return &Invocation{Argv: []string{path}, Name: path}, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		if candidates := scriptDirCandidates(home); len(candidates) > 0 {
			return &Invocation{Argv: []string{candidates[0]}, Name: candidates[0]}, nil
		}
	}

	if launcher, err := exec.LookPath("py"); err == nil {
		inv := &Invocation{Argv: []string{launcher, "-m", "pywal"}, Name: launcher + " -m pywal"}
		if os.Getenv("PY_PYTHON") == "" {
			inv.Env = []string{"PY_PYTHON=3.11"}
		}
		return inv, nil
	}

	if python, err := exec.LookPath("python"); err == nil {
		return &Invocation{Argv: []string{python, "-m", "pywal"}, Name: python + " -m pywal"}, nil
	}

	return nil, palette.Errorf("unable to locate 'wal' or a Python launcher to invoke pywal")
}

// scriptDirCandidates scans the per-user Python install layouts for a wal
// executable. pip on Windows drops console scripts into these directories
// without putting them on PATH.
func scriptDirCandidates(home string) []string {
	exe := "wal"
	if runtime.GOOS == "windows" {
		exe = "wal.exe"
	}

	bases := []string{
		filepath.Join(home, "AppData", "Roaming", "Python"),
		filepath.Join(home, "AppData", "Local", "Programs", "Python"),
	}

	var candidates []string
	for _, base := range bases {
		matches, err := filepath.Glob(filepath.Join(base, "Python*", "Scripts", exe))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && !info.IsDir() {
				candidates = append(candidates, match)
			}
		}
	}
	return candidates
}

// CacheDir returns the directory pywal writes its artifacts to. An override
// (from configuration or WAL_CACHE_DIR) takes precedence over the default
// ~/.cache/wal location.
func CacheDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", palette.Errorf("unable to determine home directory for pywal cache: %w", err)
	}
	return filepath.Join(home, ".cache", "wal"), nil
}

// ProcessRunner defines an interface for running external processes.
// This abstraction allows for dependency injection and easier testing.
type ProcessRunner interface {
	// Run executes a command with the given context and extra environment,
	// returning captured stdout and stderr.
	Run(ctx context.Context, argv []string, extraEnv []string) (stdout, stderr []byte, err error)
}

// execProcessRunner implements ProcessRunner using os/exec.
type execProcessRunner struct{}

// Run executes a real external process to completion.
func (execProcessRunner) Run(ctx context.Context, argv []string, extraEnv []string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
