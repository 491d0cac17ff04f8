package environ

import (
	"context"
	"fmt"
	"maps"
	"os"
	"runtime"
	"strings"

	"github.com/Kotlin/kotlin-numpy/internal/interp"
)

// Snapshot is a frozen view of the process environment. The zero value is an
// empty environment.
type Snapshot struct {
	goos        string
	vars        map[string]string
	interpreter interp.Config
}

// New builds a snapshot from explicit values. vars is copied.
func New(goos string, vars map[string]string, cfg interp.Config) *Snapshot {
	return &Snapshot{
		goos:        goos,
		vars:        maps.Clone(vars),
		interpreter: cfg,
	}
}

// QueryFunc asks an interpreter for its configuration.
type QueryFunc func(ctx context.Context, python string) (*interp.Config, error)

// CaptureOptions controls Capture.
type CaptureOptions struct {
	// Python is the interpreter to query; a bare name is looked up on PATH.
	Python string
	// Query overrides the interpreter query. Defaults to interp.Query.
	Query QueryFunc
}

// Capture reads the host OS, the process environment, and the interpreter
// configuration exactly once.
func Capture(ctx context.Context, opts CaptureOptions) (*Snapshot, error) {
	query := opts.Query
	if query == nil {
		query = interp.Query
	}

	cfg, err := query(ctx, opts.Python)
	if err != nil {
		return nil, fmt.Errorf("capturing interpreter configuration: %w", err)
	}

	snap := Host()
	snap.interpreter = *cfg
	return snap, nil
}

// Host captures the host OS and process environment without querying an
// interpreter. Diagnostics use it when the interpreter cannot be run.
func Host() *Snapshot {
	return &Snapshot{
		goos: runtime.GOOS,
		vars: parseEnviron(os.Environ()),
	}
}

// GOOS returns the captured host platform identifier.
func (s *Snapshot) GOOS() string { return s.goos }

// Interpreter returns the captured interpreter configuration.
func (s *Snapshot) Interpreter() interp.Config { return s.interpreter }

// Lookup returns the captured value of an environment variable.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// parseEnviron converts KEY=VALUE pairs into a map. Later entries win.
func parseEnviron(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}
