package resolve

import (
	"github.com/spf13/afero"
)

// isDir reports whether path exists and is a directory. Stat errors count as
// absent.
func isDir(fsys afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}

// isFile reports whether path exists and is not a directory.
func isFile(fsys afero.Fs, path string) bool {
	if path == "" {
		return false
	}
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
