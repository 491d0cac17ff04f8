package manifest

import (
	"path/filepath"

	"github.com/Kotlin/kotlin-numpy/internal/branding"
)

// Default values applied to fields a manifest leaves unset.
const (
	DefaultPython     = "python3"
	DefaultOutputDir  = "build"
	DefaultJDKHomeEnv = "JAVA_HOME"
)

// DefaultIncludeDirs are the project include directories used when a
// manifest does not list any.
var DefaultIncludeDirs = []string{filepath.Join("src", "main", "ktnumpy", "jni", "include")}

// Keys lists the manifest's top-level keys in schema order.
var Keys = []string{"module", "python", "output_dir", "output", "include_dirs", "jdk_home_env"}

// Project is the parsed project manifest. Zero values mean "not set".
type Project struct {
	Module      string   `yaml:"module,omitempty"`
	Python      string   `yaml:"python,omitempty"`
	OutputDir   string   `yaml:"output_dir,omitempty"`
	Output      string   `yaml:"output,omitempty"`
	IncludeDirs []string `yaml:"include_dirs,omitempty"`
	JDKHomeEnv  string   `yaml:"jdk_home_env,omitempty"`
}

// Default returns the manifest written by `init`.
func Default() *Project {
	return &Project{
		Module:      branding.ModuleName(),
		Python:      DefaultPython,
		OutputDir:   DefaultOutputDir,
		IncludeDirs: append([]string{}, DefaultIncludeDirs...),
		JDKHomeEnv:  DefaultJDKHomeEnv,
	}
}

// WithDefaults returns a copy of p with every unset field filled from
// Default. Output has no default; it is derived during resolution.
func (p *Project) WithDefaults() *Project {
	d := Default()
	out := *p
	if out.Module == "" {
		out.Module = d.Module
	}
	if out.Python == "" {
		out.Python = d.Python
	}
	if out.OutputDir == "" {
		out.OutputDir = d.OutputDir
	}
	if len(out.IncludeDirs) == 0 {
		out.IncludeDirs = d.IncludeDirs
	} else {
		out.IncludeDirs = append([]string{}, out.IncludeDirs...)
	}
	if out.JDKHomeEnv == "" {
		out.JDKHomeEnv = d.JDKHomeEnv
	}
	return &out
}

// ResolveIncludeDirs makes relative include directories absolute against
// root, the directory holding the manifest.
func (p *Project) ResolveIncludeDirs(root string) []string {
	dirs := make([]string, len(p.IncludeDirs))
	for i, dir := range p.IncludeDirs {
		if filepath.IsAbs(dir) {
			dirs[i] = dir
			continue
		}
		dirs[i] = filepath.Join(root, dir)
	}
	return dirs
}
