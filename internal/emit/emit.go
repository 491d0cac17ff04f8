package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.yaml.in/yaml/v3"

	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
	FormatFlags   Format = "flags"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatMsgpack, FormatFlags}

// ErrUnknownFormat is returned for a format name outside Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name. The empty string selects JSON.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatJSON, nil
	}
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Document is the serialized shape of a BuildConfig. Every field is a plain
// string or string slice so all encoders agree on the layout.
type Document struct {
	Platform           string   `json:"platform" yaml:"platform" toml:"platform" msgpack:"platform"`
	Module             string   `json:"module" yaml:"module" toml:"module" msgpack:"module"`
	PythonLibrary      string   `json:"python_library" yaml:"python_library" toml:"python_library" msgpack:"python_library"`
	PythonVersionTag   string   `json:"python_version_tag" yaml:"python_version_tag" toml:"python_version_tag" msgpack:"python_version_tag"`
	IncludeDirectories []string `json:"include_directories" yaml:"include_directories" toml:"include_directories" msgpack:"include_directories"`
	LibraryDirectories []string `json:"library_directories" yaml:"library_directories" toml:"library_directories" msgpack:"library_directories"`
	Libraries          []string `json:"libraries" yaml:"libraries" toml:"libraries" msgpack:"libraries"`
	ExtraLinkArgs      []string `json:"extra_link_args" yaml:"extra_link_args" toml:"extra_link_args" msgpack:"extra_link_args"`
	Output             string   `json:"output" yaml:"output" toml:"output" msgpack:"output"`
	Artifact           string   `json:"artifact" yaml:"artifact" toml:"artifact" msgpack:"artifact"`
}

// NewDocument flattens cfg. Nil slices become empty so every encoder writes
// the key.
func NewDocument(cfg *resolve.BuildConfig) Document {
	return Document{
		Platform:           cfg.Platform.String(),
		Module:             cfg.ModuleName,
		PythonLibrary:      cfg.Python.LibraryName,
		PythonVersionTag:   cfg.Python.VersionTag,
		IncludeDirectories: nonNil(cfg.Headers),
		LibraryDirectories: nonNil(cfg.Link.LibraryDirectories),
		Libraries:          nonNil(cfg.Link.LibraryNames),
		ExtraLinkArgs:      nonNil(cfg.Link.ExtraFlags),
		Output:             cfg.OutputPath,
		Artifact:           cfg.Artifact,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}

// Write encodes cfg to w in format f.
func Write(w io.Writer, f Format, cfg *resolve.BuildConfig) error {
	doc := NewDocument(cfg)

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON, "":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatTOML:
		data, err = toml.Marshal(doc)
	case FormatMsgpack:
		data, err = msgpack.Marshal(doc)
	case FormatFlags:
		data = flagListing(doc, cfg.Link.Flags())
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encoding build config as %s: %w", f, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing build config: %w", err)
	}
	return nil
}

// Decode parses data written by Write in format f. The flags listing is not
// decodable.
func Decode(data []byte, f Format) (*Document, error) {
	var (
		doc Document
		err error
	)
	switch f {
	case FormatJSON, "":
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding build config from %s: %w", f, err)
	}
	return &doc, nil
}

// flagListing renders the include directories as -I flags, then the linker
// arguments exactly as LinkSpec.Flags orders them, one per line.
func flagListing(doc Document, linkFlags []string) []byte {
	var buf bytes.Buffer
	for _, dir := range doc.IncludeDirectories {
		fmt.Fprintf(&buf, "-I%s\n", dir)
	}
	for _, flag := range linkFlags {
		fmt.Fprintln(&buf, flag)
	}
	return buf.Bytes()
}
