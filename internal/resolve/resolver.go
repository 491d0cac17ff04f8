package resolve

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/platform"
)

// Options are the project inputs of a resolution pass.
type Options struct {
	// ModuleName is the native module's base name, e.g. "ktnumpy".
	ModuleName string
	// OutputPath is the generic build output. When empty it is derived as
	// <OutputDir>/<ModuleName><EXT_SUFFIX>.
	OutputPath string
	OutputDir  string
	// IncludeDirs are project include directories placed between the JNI
	// headers and the Python headers. Each must exist.
	IncludeDirs []string
	// JDKHomeVar names the JDK root variable. Defaults to JAVA_HOME.
	JDKHomeVar string
}

// BuildConfig is the complete, verified input for the native build.
type BuildConfig struct {
	Platform   platform.Platform
	ModuleName string
	Python     PythonEnvironment
	// Headers is ordered: JNI base, JNI platform, project, Python, NumPy.
	Headers HeaderSet
	Link    LinkSpec
	// OutputPath is the generic output the build tool produces; Artifact is
	// the platform-idiomatic name it is installed under.
	OutputPath string
	Artifact   string
}

// Resolver runs resolution passes against a filesystem.
type Resolver struct {
	fs     afero.Fs
	logger *log.Logger
}

// NewResolver returns a Resolver. A nil logger discards output.
func NewResolver(fsys afero.Fs, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{fs: fsys, logger: logger}
}

// Resolve performs one resolution pass over snap. The first failing
// component aborts the pass.
func (r *Resolver) Resolve(snap *environ.Snapshot, opts Options) (*BuildConfig, error) {
	if opts.ModuleName == "" {
		return nil, fmt.Errorf("resolving build config: module name is required")
	}

	p, err := platform.Detect(snap.GOOS())
	if err != nil {
		return nil, err
	}
	r.logger.Debug("detected platform", "platform", p, "goos", snap.GOOS())

	cfg := snap.Interpreter()
	py, err := ProbePython(r.fs, p, cfg)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("probed interpreter", "library", py.LibraryName, "libdir", py.LibraryDirectory)

	jni, err := LocateJNIHeaders(r.fs, p, snap, opts.JDKHomeVar)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("located JNI headers", "include", jni[0], "platform_include", jni[1])

	headers := append(HeaderSet{}, jni...)
	for _, dir := range opts.IncludeDirs {
		if !isDir(r.fs, dir) {
			return nil, &MissingHeaderError{
				Kind: KindProjectInclude,
				Path: dir,
				Hint: "check include_dirs in the project manifest",
			}
		}
		headers = append(headers, dir)
	}

	if !isDir(r.fs, py.IncludeDirectory) {
		return nil, &MissingHeaderError{
			Kind: KindPythonInclude,
			Path: py.IncludeDirectory,
			Hint: "install the Python development headers",
		}
	}
	headers = append(headers, py.IncludeDirectory)

	numpyDir, err := LocateNumpyHeaders(r.fs, cfg.NumpyRoot)
	if err != nil {
		return nil, err
	}
	headers = append(headers, numpyDir)
	r.logger.Debug("located numpy headers", "include", numpyDir)

	link, err := BuildLinkSpec(py, p)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("built link spec", "flags", link.Flags())

	output := opts.OutputPath
	if output == "" {
		output = filepath.Join(opts.OutputDir, opts.ModuleName+cfg.ExtSuffix)
	}
	artifact, err := platform.ArtifactName(output, opts.ModuleName, p)
	if err != nil {
		return nil, fmt.Errorf("naming artifact: %w", err)
	}
	r.logger.Debug("named artifact", "output", output, "artifact", artifact)

	return &BuildConfig{
		Platform:   p,
		ModuleName: opts.ModuleName,
		Python:     py,
		Headers:    headers,
		Link:       link,
		OutputPath: output,
		Artifact:   artifact,
	}, nil
}
