package interp

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

//go:embed probe.py
var configScript string

// Config is the interpreter configuration reported by the probe script.
// Empty strings mean the interpreter did not define the value.
type Config struct {
	Executable    string `json:"executable"`
	PythonVersion string `json:"python_version"`

	// Version is sysconfig's VERSION, the bare "3.9" (or "39" on Windows).
	Version string `json:"version"`
	// LDVersion is sysconfig's LDVERSION, the version plus ABI flags ("3.9d").
	LDVersion string `json:"ldversion"`

	LibDir string `json:"libdir"`
	// Prefix is the base installation the interpreter was built into. Inside
	// a virtual environment it differs from EnvPrefix.
	Prefix     string `json:"prefix"`
	EnvPrefix  string `json:"env_prefix"`
	IncludeDir string `json:"include"`
	ExtSuffix  string `json:"ext_suffix"`

	// NumpyRoot is numpy.__path__[0]; empty when NumPy is not importable.
	NumpyRoot    string `json:"numpy_root"`
	NumpyVersion string `json:"numpy_version"`
}

// Query runs the interpreter once with the embedded probe script and decodes
// its report. python may be a bare command name resolved through PATH.
func Query(ctx context.Context, python string) (*Config, error) {
	bin, err := exec.LookPath(python)
	if err != nil {
		return nil, fmt.Errorf("python interpreter %q not found: %w", python, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-c", configScript)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("querying %s (exit %d): %s", bin, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("querying %s: %w", bin, err)
	}

	cfg, err := Parse(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", bin, err)
	}
	return cfg, nil
}

// Parse decodes a probe report.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(bytes.TrimSpace(data), &cfg); err != nil {
		return nil, fmt.Errorf("decoding interpreter report: %w", err)
	}
	return &cfg, nil
}
