package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Kotlin/kotlin-numpy/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyPython     = "python"
	KeyJDKHomeEnv = "jdk_home_env"
	KeyFormat     = "format"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyPython, KeyJDKHomeEnv, KeyFormat}

// ErrUnknownKey is returned by Set for a key outside Keys.
var ErrUnknownKey = errors.New("unknown config key")

// configFs backs every config file access.
var configFs afero.Fs = afero.NewOsFs()

// Dir returns the path to the config directory (~/.ktnumpy-build/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := configFs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// An explicit path replaces the default file location and must exist; a
// missing default file is the normal first-run state.
func Load(path string) error {
	explicit := path != ""
	if !explicit {
		path = FilePath()
	}
	viper.SetFs(configFs)
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	exists, err := afero.Exists(configFs, path)
	if err != nil {
		return fmt.Errorf("checking config file %s: %w", path, err)
	}
	if !exists {
		if explicit {
			return fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
		}
		return nil
	}
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w %q (want one of %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = FilePath()
	}

	// Create the file if it doesn't exist.
	if ok, _ := afero.Exists(configFs, configFile); !ok {
		if err := configFs.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
		f, err := configFs.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	viper.SetFs(configFs)
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
