package resolve

import (
	"os"
	"testing"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/interp"
)

// statCountingFs records Stat calls so tests can prove a check happened
// before any filesystem access.
type statCountingFs struct {
	afero.Fs
	stats int
}

func (f *statCountingFs) Stat(name string) (os.FileInfo, error) {
	f.stats++
	return f.Fs.Stat(name)
}

// fixture is a complete Linux build environment on an in-memory filesystem.
type fixture struct {
	fs   afero.Fs
	goos string
	vars map[string]string
	cfg  interp.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fsys := afero.NewMemMapFs()

	mkdir := func(dir string) {
		t.Helper()
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	mkdir("/usr/lib")
	mkdir("/usr/include/python3.9")
	mkdir("/site/numpy/core/include")
	mkdir("/jdk/include/linux")
	mkdir("/jdk/include/win32")
	mkdir("/jdk/include/darwin")
	mkdir("/py39/libs")
	mkdir("/project/src/main/ktnumpy/jni/include")
	if err := afero.WriteFile(fsys, "/jdk/include/jni.h", []byte("/* jni */"), 0644); err != nil {
		t.Fatal(err)
	}

	return &fixture{
		fs:   fsys,
		goos: "linux",
		vars: map[string]string{"JAVA_HOME": "/jdk"},
		cfg: interp.Config{
			Version:      "3.9",
			LibDir:       "/usr/lib",
			Prefix:       "/usr",
			IncludeDir:   "/usr/include/python3.9",
			ExtSuffix:    ".cpython-39-x86_64-linux-gnu.so",
			NumpyRoot:    "/site/numpy",
			NumpyVersion: "1.24.4",
		},
	}
}

func (f *fixture) snapshot() *environ.Snapshot {
	return environ.New(f.goos, f.vars, f.cfg)
}

func (f *fixture) options() Options {
	return Options{
		ModuleName:  "ktnumpy",
		OutputDir:   "build",
		IncludeDirs: []string{"/project/src/main/ktnumpy/jni/include"},
	}
}
