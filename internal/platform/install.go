package platform

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// LibraryMode is the permission set given to installed libraries.
const LibraryMode os.FileMode = 0755

// InstallArtifact copies a finished build output to its platform-idiomatic
// name next to it and returns the destination path. The source is left in
// place. When the source already carries the idiomatic name nothing is copied.
func InstallArtifact(fsys afero.Fs, outputPath, baseName string, p Platform) (string, error) {
	dst, err := ArtifactName(outputPath, baseName, p)
	if err != nil {
		return "", err
	}
	if dst == outputPath {
		if _, err := fsys.Stat(outputPath); err != nil {
			return "", fmt.Errorf("build output %s: %w", outputPath, err)
		}
		return dst, nil
	}

	if err := copyFile(fsys, outputPath, dst); err != nil {
		return "", fmt.Errorf("copying %s to %s: %w", outputPath, dst, err)
	}
	if err := Chmod(fsys, dst, LibraryMode, p); err != nil {
		return "", fmt.Errorf("setting permissions on %s: %w", dst, err)
	}
	return dst, nil
}

// copyFile copies src to dst, replacing dst if it exists.
func copyFile(fsys afero.Fs, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
