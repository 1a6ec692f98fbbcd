package pywal

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Backends lists pywal's visual-analysis backends in fixed priority order.
// colorthief tends to produce the most balanced palettes, so it goes first.
var Backends = []string{"colorthief", "wal", "haishoku"}

// artifactName is the palette file pywal writes into its cache directory.
const artifactName = "colors.json"

// Loader generates a palette document by invoking pywal, retrying across
// backends until one succeeds.
type Loader struct {
	runner   *Invocation
	cacheDir string
	backends []string
	logger   hclog.Logger
	proc     ProcessRunner
}

// NewLoader creates a Loader for the given runner and cache directory.
// An empty backend list selects the default backend order.
func NewLoader(runner *Invocation, cacheDir string, backends []string, logger hclog.Logger) *Loader {
	if len(backends) == 0 {
		backends = Backends
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loader{
		runner:   runner,
		cacheDir: cacheDir,
		backends: backends,
		logger:   logger,
		proc:     execProcessRunner{},
	}
}

// Generate runs pywal against the image, trying each backend in order and
// returning the first successfully parsed palette. When every backend fails
// the individual failure messages are aggregated into one error.
func (l *Loader) Generate(ctx context.Context, imagePath string) (*palette.Document, error) {
	artifact := filepath.Join(l.cacheDir, artifactName)

	var failures []string
	for _, backend := range l.backends {
		doc, err := l.invokeBackend(ctx, backend, imagePath, artifact)
		if err != nil {
			failures = append(failures, err.Error())
			l.logger.Debug("pywal backend failed", "backend", backend, "error", err)
			continue
		}
		l.logger.Debug("pywal backend succeeded", "backend", backend)
		return doc, nil
	}

	return nil, palette.Errorf("pywal was unable to generate a palette: %s", strings.Join(failures, " | "))
}

// invokeBackend runs pywal once with the chosen backend and parses the
// artifact it leaves behind.
func (l *Loader) invokeBackend(ctx context.Context, backend, imagePath, artifact string) (*palette.Document, error) {
	// A stale artifact from a prior run would mask a backend that silently
	// produced nothing.
	if err := os.Remove(artifact); err != nil && !os.IsNotExist(err) {
		l.logger.Debug("could not remove stale palette artifact", "path", artifact, "error", err)
	}

	argv := append(slices.Clone(l.runner.Argv), "-n", "-i", imagePath, "--backend", backend)
	l.logger.Debug("invoking pywal", "runner", l.runner.Name, "backend", backend)

	stdout, stderr, err := l.proc.Run(ctx, argv, l.runner.Env)
	if out := strings.TrimSpace(string(stdout)); out != "" {
		l.logger.Debug("wal stdout", "output", out)
	}
	if out := strings.TrimSpace(string(stderr)); out != "" {
		l.logger.Debug("wal stderr", "output", out)
	}
	if err != nil {
		return nil, palette.Errorf("pywal backend '%s' failed: %v", backend, err)
	}

	raw, err := os.ReadFile(artifact)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, palette.Errorf("pywal backend '%s' did not produce %s at %s", backend, artifactName, artifact)
		}
		return nil, palette.Errorf("pywal backend '%s': reading %s: %w", backend, artifactName, err)
	}

	doc, err := ParseDocument(raw, l.logger)
	if err != nil {
		return nil, palette.Errorf("pywal backend '%s' produced invalid palette data: %v", backend, err)
	}

	l.logger.Debug("loaded palette JSON", "path", artifact)
	return doc, nil
}
