package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Platform is a supported host operating system. The zero value is not a
// platform and is rejected by every table in this package.
type Platform int

const (
	Windows Platform = iota + 1
	Linux
	MacOS
)

// All lists every supported platform in declaration order.
var All = []Platform{Windows, Linux, MacOS}

// ErrUnsupportedPlatform is the sentinel error wrapped by UnsupportedPlatformError.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UnsupportedPlatformError reports a platform identifier outside the supported set.
type UnsupportedPlatformError struct {
	// Identifier is the offending value (a GOOS string or a Platform's number).
	Identifier string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("%v: %q (supported: windows, linux, darwin)", ErrUnsupportedPlatform, e.Identifier)
}

func (e *UnsupportedPlatformError) Unwrap() error { return ErrUnsupportedPlatform }

// goosPlatforms maps Go's GOOS values onto the enum.
var goosPlatforms = map[string]Platform{
	"windows": Windows,
	"linux":   Linux,
	"darwin":  MacOS,
}

// Detect classifies a GOOS value. Anything other than windows, linux, or
// darwin fails with *UnsupportedPlatformError.
func Detect(goos string) (Platform, error) {
	if p, ok := goosPlatforms[goos]; ok {
		return p, nil
	}
	return 0, &UnsupportedPlatformError{Identifier: goos}
}

// Parse accepts either a GOOS value or a Platform name ("macos") and is used
// for user-supplied overrides. Matching is case-insensitive.
func Parse(s string) (Platform, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range All {
		if p.String() == name {
			return p, nil
		}
	}
	return Detect(name)
}

// String returns the lower-case platform name.
func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return fmt.Sprintf("platform(%d)", int(p))
	}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p >= Windows && p <= MacOS
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &UnsupportedPlatformError{Identifier: p.String()}
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
