package resolve

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// numpyIncludeDirs are the header locations inside the NumPy package, newest
// layout last.
var numpyIncludeDirs = []string{
	filepath.Join("core", "include"),
	filepath.Join("_core", "include"),
}

// LocateNumpyHeaders returns the C header directory bundled inside the NumPy
// package rooted at numpyRoot. An empty root means NumPy is not importable.
func LocateNumpyHeaders(fsys afero.Fs, numpyRoot string) (string, error) {
	if numpyRoot == "" {
		return "", &MissingHeaderError{
			Kind: KindNumpyInclude,
			Hint: "numpy is not importable by the interpreter; install numpy>=1.15",
		}
	}

	for _, rel := range numpyIncludeDirs {
		dir := filepath.Join(numpyRoot, rel)
		if isDir(fsys, dir) {
			return dir, nil
		}
	}

	return "", &MissingHeaderError{
		Kind: KindNumpyInclude,
		Path: filepath.Join(numpyRoot, numpyIncludeDirs[0]),
		Hint: "this numpy build does not bundle its C headers",
	}
}
