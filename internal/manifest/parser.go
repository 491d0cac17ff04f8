package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// ErrInvalid is wrapped by InvalidError.
var ErrInvalid = errors.New("invalid project manifest")

// InvalidError reports schema violations found while loading a manifest.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		if issue.Path != "" {
			parts[i] = issue.Path + ": " + issue.Message
		} else {
			parts[i] = issue.Message
		}
	}
	return fmt.Sprintf("%v %s: %s", ErrInvalid, e.Path, strings.Join(parts, "; "))
}

func (e *InvalidError) Unwrap() error { return ErrInvalid }

// Parse validates data against the project schema and decodes it.
func Parse(data []byte, path string) (*Project, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Issues: result.Issues}
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &p, nil
}

// Load reads and parses the manifest at path.
func Load(fsys afero.Fs, path string) (*Project, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// LoadOptional is Load, except a missing file yields an empty Project and
// found=false.
func LoadOptional(fsys afero.Fs, path string) (p *Project, found bool, err error) {
	p, err = Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Project{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Write validates p and saves it to path. An existing file is only replaced
// when overwrite is set.
func Write(fsys afero.Fs, path string, p *Project, overwrite bool) error {
	if !overwrite {
		if _, err := fsys.Stat(path); err == nil {
			return fmt.Errorf("manifest %s already exists: %w", path, fs.ErrExist)
		}
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}
	if !result.Valid {
		return &InvalidError{Path: path, Issues: result.Issues}
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
