package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Kotlin/kotlin-numpy/internal/config"
	"github.com/Kotlin/kotlin-numpy/internal/emit"
	"github.com/Kotlin/kotlin-numpy/internal/manifest"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

// overrides are the values given on the command line. Empty means unset.
type overrides struct {
	module string
	python string
	output string
	format string
}

// settings are the effective inputs of one command after precedence:
// flags, then the project manifest, then user config, then defaults.
type settings struct {
	python  string
	format  emit.Format
	options resolve.Options
}

// mergeSettings applies precedence. root is the directory holding the
// manifest; relative paths in the manifest are resolved against it.
func mergeSettings(f overrides, proj *manifest.Project, userGet func(string) string, root string) (settings, error) {
	p := *proj
	if p.Python == "" {
		p.Python = userGet(config.KeyPython)
	}
	if p.JDKHomeEnv == "" {
		p.JDKHomeEnv = userGet(config.KeyJDKHomeEnv)
	}
	if p.Output != "" && !filepath.IsAbs(p.Output) {
		p.Output = filepath.Join(root, p.Output)
	}
	if f.module != "" {
		p.Module = f.module
	}
	if f.python != "" {
		p.Python = f.python
	}
	if f.output != "" {
		p.Output = f.output
	}
	p = *p.WithDefaults()

	formatName := f.format
	if formatName == "" {
		formatName = userGet(config.KeyFormat)
	}
	format, err := emit.ParseFormat(formatName)
	if err != nil {
		return settings{}, err
	}

	outputDir := p.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}

	return settings{
		python: p.Python,
		format: format,
		options: resolve.Options{
			ModuleName:  p.Module,
			OutputPath:  p.Output,
			OutputDir:   outputDir,
			IncludeDirs: p.ResolveIncludeDirs(root),
			JDKHomeVar:  p.JDKHomeEnv,
		},
	}, nil
}

// loadSettings reads the project manifest named by --manifest, if present,
// and merges it with f and the user config.
// manifestLocation is the absolute path of the project manifest.
func manifestLocation() (string, error) {
	path, err := filepath.Abs(manifestPath)
	if err != nil {
		return "", fmt.Errorf("resolving manifest path: %w", err)
	}
	return path, nil
}

func loadSettings(f overrides) (settings, error) {
	path, err := manifestLocation()
	if err != nil {
		return settings{}, err
	}
	proj, found, err := manifest.LoadOptional(appFs, path)
	if err != nil {
		return settings{}, err
	}
	if found {
		logger.Debug("loaded project manifest", "path", path)
	} else {
		logger.Debug("no project manifest, using defaults", "path", path)
	}
	return mergeSettings(f, proj, config.Get, filepath.Dir(path))
}
