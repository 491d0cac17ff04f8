//go:build integration

package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/interp"
	"github.com/Kotlin/kotlin-numpy/internal/platform"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	JDKHome    string // JAVA_HOME: a synthetic JDK with only its headers
	ProjectDir string // A mock project with the default include directory
}

// setupTestEnv creates a synthetic JDK and project and points JAVA_HOME at
// the JDK. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		JDKHome:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	for _, p := range platform.All {
		sub, err := resolve.JNIPlatformDir(p)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.MkdirAll(filepath.Join(env.JDKHome, "include", sub), 0755); err != nil {
			t.Fatalf("creating include/%s: %v", sub, err)
		}
	}
	writeFile(t, filepath.Join(env.JDKHome, "include", "jni.h"), "/* jni */\n")
	t.Setenv("JAVA_HOME", env.JDKHome)

	if err := os.MkdirAll(filepath.Join(env.ProjectDir, "src", "main", "ktnumpy", "jni", "include"), 0755); err != nil {
		t.Fatalf("creating project include dir: %v", err)
	}

	return env
}

// captureOrSkip snapshots the host with the real python3, skipping the test
// when no usable interpreter with NumPy is installed.
func captureOrSkip(t *testing.T) *environ.Snapshot {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}
	snap, err := environ.Capture(context.Background(), environ.CaptureOptions{Python: "python3"})
	if err != nil {
		t.Skipf("cannot query python3: %v", err)
	}
	cfg := snap.Interpreter()
	if cfg.NumpyRoot == "" {
		t.Skip("numpy not installed for python3")
	}
	if cfg.LDVersion == "" && cfg.Version == "" {
		t.Skip("python3 does not report a library version")
	}
	return snap
}

// queryConfig runs the interpreter query directly.
func queryConfig(t *testing.T) *interp.Config {
	t.Helper()
	cfg, err := interp.Query(context.Background(), "python3")
	if err != nil {
		t.Skipf("cannot query python3: %v", err)
	}
	return cfg
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertContains fails if s doesn't contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output does not contain %q.\nContents:\n%s", substr, s)
	}
}
