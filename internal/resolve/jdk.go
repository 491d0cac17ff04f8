package resolve

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/platform"
)

// DefaultJDKHomeVar is the environment variable naming the JDK root.
const DefaultJDKHomeVar = "JAVA_HOME"

// jniPlatformDirs maps each platform onto the JDK's include subdirectory.
var jniPlatformDirs = map[platform.Platform]string{
	platform.Windows: "win32",
	platform.Linux:   "linux",
	platform.MacOS:   "darwin",
}

// EnvLookup reads a captured environment variable.
type EnvLookup interface {
	Lookup(key string) (string, bool)
}

// HeaderSet is an ordered list of include directories. Earlier entries are
// searched first.
type HeaderSet []string

// JNIPlatformDir returns the JDK include subdirectory name for p.
func JNIPlatformDir(p platform.Platform) (string, error) {
	dir, ok := jniPlatformDirs[p]
	if !ok {
		return "", &platform.UnsupportedPlatformError{Identifier: p.String()}
	}
	return dir, nil
}

// LocateJNIHeaders returns [<root>/include, <root>/include/<platform>] for the
// JDK whose root is named by variable. The variable is checked before the
// filesystem; then the base directory, the platform directory, and jni.h are
// checked in that order.
func LocateJNIHeaders(fsys afero.Fs, p platform.Platform, env EnvLookup, variable string) (HeaderSet, error) {
	if variable == "" {
		variable = DefaultJDKHomeVar
	}
	root, ok := env.Lookup(variable)
	if !ok || root == "" {
		return nil, &MissingEnvironmentError{Variable: variable}
	}

	sub, err := JNIPlatformDir(p)
	if err != nil {
		return nil, err
	}

	hint := "set " + variable + " to a JDK installation root"
	base := filepath.Join(root, "include")
	platformDir := filepath.Join(base, sub)
	header := filepath.Join(base, "jni.h")

	switch {
	case !isDir(fsys, base):
		return nil, &MissingHeaderError{Kind: KindJNIInclude, Path: base, Hint: hint}
	case !isDir(fsys, platformDir):
		return nil, &MissingHeaderError{Kind: KindJNIPlatformInclude, Path: platformDir, Hint: hint}
	case !isFile(fsys, header):
		return nil, &MissingHeaderError{Kind: KindJNIHeader, Path: header, Hint: hint}
	}

	return HeaderSet{base, platformDir}, nil
}
