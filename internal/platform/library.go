package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrArtifactMismatch is returned when a build output's file name does not
// belong to the requested module.
var ErrArtifactMismatch = errors.New("artifact does not match module name")

// libraryNaming is the prefix/extension table for loadable libraries. It is
// total over the supported platforms.
var libraryNaming = map[Platform]struct{ prefix, ext string }{
	Windows: {"", ".dll"},
	Linux:   {"lib", ".so"},
	MacOS:   {"lib", ".dylib"},
}

// LibraryFileName returns the platform-idiomatic file name for a loadable
// library with the given base name:
//   - Windows: ktnumpy.dll
//   - Linux:   libktnumpy.so
//   - macOS:   libktnumpy.dylib
func LibraryFileName(baseName string, p Platform) (string, error) {
	naming, ok := libraryNaming[p]
	if !ok {
		return "", &UnsupportedPlatformError{Identifier: p.String()}
	}
	return naming.prefix + baseName + naming.ext, nil
}

// ArtifactName maps a generic build output path (for example
// "build/ktnumpy.cp39-win_amd64.pyd") to the platform-idiomatic library path
// in the same directory ("build/ktnumpy.dll" on Windows).
//
// The file name must be baseName itself, or start with "baseName." or
// "libbaseName.". Applying ArtifactName to its own output returns the output
// unchanged. The directory part is preserved verbatim, whichever separator it
// uses.
func ArtifactName(outputPath, baseName string, p Platform) (string, error) {
	if baseName == "" {
		return "", fmt.Errorf("%w: empty module name", ErrArtifactMismatch)
	}

	dir, file := splitPath(outputPath)
	if !belongsTo(file, baseName) {
		return "", fmt.Errorf("%w: %q is not a build of %q", ErrArtifactMismatch, file, baseName)
	}

	name, err := LibraryFileName(baseName, p)
	if err != nil {
		return "", err
	}
	return dir + name, nil
}

// belongsTo reports whether file is a build output of module baseName.
func belongsTo(file, baseName string) bool {
	if file == baseName || strings.HasPrefix(file, baseName+".") {
		return true
	}
	return strings.HasPrefix(file, "lib"+baseName+".")
}

// splitPath splits after the last '/' or '\' so that Windows-style paths are
// handled on any host. The returned dir keeps its trailing separator.
func splitPath(path string) (dir, file string) {
	i := strings.LastIndexAny(path, `/\`)
	return path[:i+1], path[i+1:]
}
