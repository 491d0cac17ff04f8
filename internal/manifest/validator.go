package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// getSchema compiles the embedded project schema once.
var getSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("project.schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile("project.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one problem with one manifest key.
type ValidationIssue struct {
	Path    string // e.g. "/module", "/include_dirs/0"; empty for the document
	Message string
	Keyword string // failing schema keyword, e.g. "pattern"
}

// Validate checks raw YAML against the project schema. An empty document is
// valid. The error return is for unreadable YAML or a broken schema; schema
// violations are reported in the result.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}
	inst, err := decodeInstance(data)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating manifest: %w", err)
	}
	return &ValidationResult{Issues: issuesFrom(ve)}, nil
}

// ValidateFile reads a manifest and validates it.
func ValidateFile(fsys afero.Fs, path string) (*ValidationResult, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// decodeInstance parses YAML and re-reads it as JSON so the validator sees
// json.Number values and string keys only.
func decodeInstance(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	raw, err := json.Marshal(jsonCompatible(doc))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}
	return inst, nil
}

// jsonCompatible stringifies non-string mapping keys (`1: x`) so they reach
// the schema as unknown keys.
func jsonCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = jsonCompatible(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = jsonCompatible(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = jsonCompatible(v)
		}
		return a
	default:
		return val
	}
}

// issuesFrom lists the leaf errors sorted by path. Unknown keys are reported
// one per key.
func issuesFrom(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			issues = append(issues, leafIssues(e)...)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

func leafIssues(e *jsonschema.ValidationError) []ValidationIssue {
	if e.ErrorKind == nil {
		return nil
	}
	path := ""
	if len(e.InstanceLocation) > 0 {
		path = "/" + strings.Join(e.InstanceLocation, "/")
	}

	if extra, ok := e.ErrorKind.(*kind.AdditionalProperties); ok {
		issues := make([]ValidationIssue, 0, len(extra.Properties))
		for _, key := range extra.Properties {
			issues = append(issues, ValidationIssue{
				Path:    path + "/" + key,
				Message: fmt.Sprintf("unknown key %q (known keys: %s)", key, strings.Join(Keys, ", ")),
				Keyword: "additionalProperties",
			})
		}
		return issues
	}

	keyword := ""
	if kw := e.ErrorKind.KeywordPath(); len(kw) > 0 {
		keyword = kw[len(kw)-1]
	}
	return []ValidationIssue{{
		Path:    path,
		Message: e.ErrorKind.LocalizedString(printer),
		Keyword: keyword,
	}}
}
