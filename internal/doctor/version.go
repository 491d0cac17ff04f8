package doctor

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// Minimum supported versions.
const (
	MinPython = "3.5"
	MinNumpy  = "1.15"
)

// releasePrefix matches the numeric release segment of a version string,
// dropping suffixes such as "rc1", "+", or ".dev0".
var releasePrefix = regexp.MustCompile(`^v?(\d+)(\.\d+)?(\.\d+)?`)

// parseSemver parses the release segment of version.
func parseSemver(version string) (*semver.Version, error) {
	m := releasePrefix.FindString(version)
	if m == "" {
		return nil, fmt.Errorf("no release number in %q", version)
	}
	return semver.NewVersion(m)
}

// AtLeast reports whether version is at or above floor.
func AtLeast(version, floor string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(">= " + floor)
	if err != nil {
		return false, fmt.Errorf("parsing floor %q: %w", floor, err)
	}
	return c.Check(v), nil
}
