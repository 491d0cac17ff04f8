package resolve

import (
	"slices"

	"github.com/Kotlin/kotlin-numpy/internal/platform"
)

// LinkSpec is the linker input for the native bridge. LibraryDirectories and
// LibraryNames are sets, kept sorted and free of duplicates.
type LinkSpec struct {
	LibraryDirectories []string
	LibraryNames       []string
	ExtraFlags         []string
}

// BuildLinkSpec composes the linker input for linking against env.
//
// On Windows only the library directory is needed; the toolchain finds the
// import library by its default naming and there is no runtime search path.
// On Linux and macOS the extra flags are, in order, the runtime search path
// and the compile-time search path for env.LibraryDirectory; the library name
// flag follows them when rendered by Flags.
func BuildLinkSpec(env PythonEnvironment, p platform.Platform) (LinkSpec, error) {
	dirs := normalizeSet([]string{env.LibraryDirectory})

	switch p {
	case platform.Windows:
		return LinkSpec{
			LibraryDirectories: dirs,
			LibraryNames:       []string{},
			ExtraFlags:         []string{},
		}, nil
	case platform.Linux, platform.MacOS:
		return LinkSpec{
			LibraryDirectories: dirs,
			LibraryNames:       normalizeSet([]string{env.LibraryName}),
			ExtraFlags: []string{
				"-Wl,-rpath," + env.LibraryDirectory,
				"-L" + env.LibraryDirectory,
			},
		}, nil
	default:
		return LinkSpec{}, &platform.UnsupportedPlatformError{Identifier: p.String()}
	}
}

// Flags renders the full ordered linker argument list: the extra flags
// followed by one -l flag per library name.
func (s LinkSpec) Flags() []string {
	flags := slices.Clone(s.ExtraFlags)
	for _, name := range s.LibraryNames {
		flags = append(flags, "-l"+name)
	}
	return flags
}

// normalizeSet sorts and de-duplicates a set-valued field.
func normalizeSet(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
