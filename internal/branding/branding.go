// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed; the hard defaults below are used
// when a field is missing from it.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	ManifestFile string `yaml:"manifest_file"`
	ModuleName   string `yaml:"module_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:      "ktnumpy-build",
			DisplayName:  "KtNumPy Build",
			Description:  "Resolve native build parameters for the ktnumpy JNI bridge",
			HomeDir:      ".ktnumpy-build",
			EnvPrefix:    "KTNUMPY_BUILD",
			GoModule:     "github.com/Kotlin/kotlin-numpy",
			ManifestFile: "ktnumpy-build.yaml",
			ModuleName:   "ktnumpy",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ktnumpy-build").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".ktnumpy-build").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "KTNUMPY_BUILD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ManifestFile returns the project manifest file name looked up in the
// working directory (e.g., "ktnumpy-build.yaml").
func ManifestFile() string { load(); return defaults.ManifestFile }

// ModuleName returns the default native module base name (e.g., "ktnumpy").
func ModuleName() string { load(); return defaults.ModuleName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("PYTHON") → "KTNUMPY_BUILD_PYTHON".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
