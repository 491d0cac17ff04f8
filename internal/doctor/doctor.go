package doctor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/manifest"
	"github.com/Kotlin/kotlin-numpy/internal/platform"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
	StatusSkip
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	case StatusSkip:
		return "SKIP"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Check is one diagnostic line.
type Check struct {
	Name   string
	Status Status
	Detail string
	// Hint is shown for non-OK checks.
	Hint string
}

// Report is the ordered result of Run.
type Report struct {
	Checks []Check
}

// Count returns how many checks ended with s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, c := range r.Checks {
		if c.Status == s {
			n++
		}
	}
	return n
}

// Failed reports whether any check failed.
func (r *Report) Failed() bool { return r.Count(StatusFail) > 0 }

func (r *Report) add(c Check) { r.Checks = append(r.Checks, c) }

// Compilers are the C compiler drivers accepted by the compiler check.
var Compilers = []string{"cc", "gcc", "clang", "cl"}

// Inputs is everything a diagnostic run reads.
type Inputs struct {
	FS       afero.Fs
	Snapshot *environ.Snapshot
	// ProbeErr is the error from capturing the snapshot, if any. Interpreter
	// checks are skipped when it is set.
	ProbeErr error
	Options  resolve.Options
	// ManifestPath is the project manifest to validate; empty skips the check.
	ManifestPath string
	// LookPath finds executables; nil means exec.LookPath.
	LookPath func(string) (string, error)
}

// Run evaluates every check in order. Unlike a resolution pass it never stops
// early; checks that depend on a failed one are skipped.
func Run(in Inputs) *Report {
	r := &Report{}
	lookPath := in.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	p, platformErr := platform.Detect(in.Snapshot.GOOS())
	if platformErr != nil {
		r.add(Check{Name: "platform", Status: StatusFail, Detail: platformErr.Error()})
	} else {
		r.add(Check{Name: "platform", Status: StatusOK, Detail: p.String()})
	}

	if in.ManifestPath != "" {
		r.add(checkManifest(in.FS, in.ManifestPath))
	}

	checkInterpreter(r, in, p, platformErr == nil)

	variable := in.Options.JDKHomeVar
	if variable == "" {
		variable = resolve.DefaultJDKHomeVar
	}
	if platformErr != nil {
		r.add(skipped("jdk headers", "platform"))
	} else if headers, err := resolve.LocateJNIHeaders(in.FS, p, in.Snapshot, variable); err != nil {
		r.add(failure("jdk headers", err))
	} else {
		r.add(Check{Name: "jdk headers", Status: StatusOK, Detail: strings.Join(headers, ", ")})
	}

	for _, dir := range in.Options.IncludeDirs {
		name := "project include"
		if ok, _ := afero.DirExists(in.FS, dir); ok {
			r.add(Check{Name: name, Status: StatusOK, Detail: dir})
		} else {
			r.add(Check{Name: name, Status: StatusFail, Detail: dir + " not found", Hint: "check include_dirs in the project manifest"})
		}
	}

	checkCompiler(r, lookPath)
	return r
}

func checkManifest(fsys afero.Fs, path string) Check {
	const name = "manifest"
	if ok, _ := afero.Exists(fsys, path); !ok {
		return Check{Name: name, Status: StatusSkip, Detail: path + " not found, using defaults", Hint: "run init to create one"}
	}
	result, err := manifest.ValidateFile(fsys, path)
	if err != nil {
		return Check{Name: name, Status: StatusFail, Detail: err.Error(), Hint: "fix the YAML syntax in " + path}
	}
	if !result.Valid {
		err := &manifest.InvalidError{Path: path, Issues: result.Issues}
		return Check{Name: name, Status: StatusFail, Detail: err.Error(), Hint: "allowed keys: " + strings.Join(manifest.Keys, ", ")}
	}
	return Check{Name: name, Status: StatusOK, Detail: path}
}

func checkInterpreter(r *Report, in Inputs, p platform.Platform, platformOK bool) {
	if in.ProbeErr != nil {
		r.add(Check{Name: "python", Status: StatusFail, Detail: in.ProbeErr.Error(), Hint: "pass --python or set python in the config"})
		for _, name := range []string{"python library", "python headers", "numpy"} {
			r.add(skipped(name, "python"))
		}
		return
	}

	cfg := in.Snapshot.Interpreter()
	r.add(versionCheck("python", cfg.PythonVersion, MinPython, cfg.Executable))

	if !platformOK {
		r.add(skipped("python library", "platform"))
	} else if env, err := resolve.ProbePython(in.FS, p, cfg); err != nil {
		r.add(failure("python library", err))
	} else {
		r.add(Check{Name: "python library", Status: StatusOK, Detail: env.LibraryName + " in " + env.LibraryDirectory})
	}

	if ok, _ := afero.DirExists(in.FS, cfg.IncludeDir); ok && cfg.IncludeDir != "" {
		r.add(Check{Name: "python headers", Status: StatusOK, Detail: cfg.IncludeDir})
	} else {
		r.add(Check{Name: "python headers", Status: StatusFail, Detail: cfg.IncludeDir + " not found", Hint: "install the Python development headers"})
	}

	if cfg.NumpyRoot == "" {
		r.add(Check{Name: "numpy", Status: StatusFail, Detail: "not importable", Hint: "install numpy>=" + MinNumpy})
		return
	}
	dir, err := resolve.LocateNumpyHeaders(in.FS, cfg.NumpyRoot)
	if err != nil {
		r.add(failure("numpy", err))
		return
	}
	c := versionCheck("numpy", cfg.NumpyVersion, MinNumpy, cfg.NumpyRoot)
	if c.Status == StatusOK {
		c.Detail = cfg.NumpyVersion + " headers in " + dir
	}
	r.add(c)
}

// versionCheck compares version against floor. An unparsable version only
// warns since the interpreter may still work.
func versionCheck(name, version, floor, where string) Check {
	ok, err := AtLeast(version, floor)
	switch {
	case err != nil:
		return Check{Name: name, Status: StatusWarn, Detail: fmt.Sprintf("cannot determine version %q", version)}
	case !ok:
		return Check{Name: name, Status: StatusFail, Detail: version + " is older than " + floor, Hint: "upgrade to " + floor + " or newer"}
	default:
		return Check{Name: name, Status: StatusOK, Detail: version + " at " + where}
	}
}

func checkCompiler(r *Report, lookPath func(string) (string, error)) {
	for _, name := range Compilers {
		if path, err := lookPath(name); err == nil {
			r.add(Check{Name: "c compiler", Status: StatusOK, Detail: path})
			return
		}
	}
	r.add(Check{
		Name:   "c compiler",
		Status: StatusWarn,
		Detail: "none of " + strings.Join(Compilers, ", ") + " found",
		Hint:   "install a C toolchain to build the native module",
	})
}

func failure(name string, err error) Check {
	c := Check{Name: name, Status: StatusFail, Detail: err.Error()}
	var missing *resolve.MissingHeaderError
	if errors.As(err, &missing) {
		c.Hint = missing.Hint
	}
	var unset *resolve.MissingEnvironmentError
	if errors.As(err, &unset) {
		c.Hint = "export " + unset.Variable + " pointing at a JDK"
	}
	return c
}

func skipped(name, dependency string) Check {
	return Check{Name: name, Status: StatusSkip, Detail: "skipped: " + dependency + " check failed"}
}
