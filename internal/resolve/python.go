package resolve

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/interp"
	"github.com/Kotlin/kotlin-numpy/internal/platform"
)

// PythonEnvironment is what the build needs to know about the interpreter it
// links against.
type PythonEnvironment struct {
	// LibraryName is "python" followed by VersionTag, e.g. "python3.9d".
	LibraryName string
	// VersionTag is LDVERSION when defined, otherwise VERSION.
	VersionTag string
	// LibraryDirectory holds libpython (Linux/macOS) or the import library
	// (Windows). It is verified to exist.
	LibraryDirectory string
	Prefix           string
	// IncludeDirectory holds Python.h. It is not verified here.
	IncludeDirectory string
}

// ProbePython derives the interpreter's library name and library directory.
//
// On Windows the import libraries live in <prefix>/libs; elsewhere the
// interpreter's LIBDIR is used. A directory that does not exist fails with
// *EnvironmentProbeError since linking would fail later anyway.
func ProbePython(fsys afero.Fs, p platform.Platform, cfg interp.Config) (PythonEnvironment, error) {
	tag := cfg.LDVersion
	if tag == "" {
		tag = cfg.Version
	}
	if tag == "" {
		return PythonEnvironment{}, &EnvironmentProbeError{
			Field:  "LDVERSION/VERSION",
			Reason: "is not defined by the interpreter",
		}
	}

	var (
		field string
		dir   string
	)
	switch p {
	case platform.Windows:
		field = "prefix"
		if cfg.Prefix != "" {
			dir = filepath.Join(cfg.Prefix, "libs")
		}
	case platform.Linux, platform.MacOS:
		field = "LIBDIR"
		dir = cfg.LibDir
	default:
		return PythonEnvironment{}, &platform.UnsupportedPlatformError{Identifier: p.String()}
	}

	if dir == "" {
		return PythonEnvironment{}, &EnvironmentProbeError{Field: field, Reason: "is not defined by the interpreter"}
	}
	if !isDir(fsys, dir) {
		return PythonEnvironment{}, &EnvironmentProbeError{Field: field, Path: dir, Reason: "does not exist"}
	}

	return PythonEnvironment{
		LibraryName:      "python" + tag,
		VersionTag:       tag,
		LibraryDirectory: dir,
		Prefix:           cfg.Prefix,
		IncludeDirectory: cfg.IncludeDir,
	}, nil
}
