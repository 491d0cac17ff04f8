//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/emit"
	"github.com/Kotlin/kotlin-numpy/internal/platform"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

// TestFullFlowResolveAndInstall tests the complete flow against the host:
// probe the real interpreter -> resolve -> emit -> install the artifact.
func TestFullFlowResolveAndInstall(t *testing.T) {
	env := setupTestEnv(t)
	snap := captureOrSkip(t)
	fsys := afero.NewOsFs()

	opts := resolve.Options{
		ModuleName:  "ktnumpy",
		OutputDir:   filepath.Join(env.ProjectDir, "build"),
		IncludeDirs: []string{filepath.Join(env.ProjectDir, "src", "main", "ktnumpy", "jni", "include")},
	}

	// Step 1: Resolve.
	cfg, err := resolve.NewResolver(fsys, nil).Resolve(snap, opts)
	if errors.Is(err, resolve.ErrEnvironmentProbe) || errors.Is(err, resolve.ErrMissingHeader) {
		t.Skipf("host python3 is not a development install: %v", err)
	}
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for _, dir := range cfg.Headers {
		assertDirExists(t, dir)
	}
	if cfg.Headers[0] != filepath.Join(env.JDKHome, "include") {
		t.Errorf("first header dir = %q", cfg.Headers[0])
	}

	// Step 2: Emit and decode.
	var buf bytes.Buffer
	if err := emit.Write(&buf, emit.FormatTOML, cfg); err != nil {
		t.Fatalf("emit: %v", err)
	}
	doc, err := emit.Decode(buf.Bytes(), emit.FormatTOML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Artifact != cfg.Artifact {
		t.Errorf("Artifact = %q, want %q", doc.Artifact, cfg.Artifact)
	}

	// Step 3: Pretend the build ran, then install.
	writeFile(t, cfg.OutputPath, "native")
	dst, err := platform.InstallArtifact(fsys, cfg.OutputPath, cfg.ModuleName, cfg.Platform)
	if err != nil {
		t.Fatalf("InstallArtifact: %v", err)
	}
	if dst != cfg.Artifact {
		t.Errorf("installed to %q, want %q", dst, cfg.Artifact)
	}
	assertFileExists(t, dst)
}

// TestFlagListingMentionsInterpreter checks the flags format against the
// real interpreter's library name.
func TestFlagListingMentionsInterpreter(t *testing.T) {
	env := setupTestEnv(t)
	snap := captureOrSkip(t)
	q := queryConfig(t)

	cfg, err := resolve.NewResolver(afero.NewOsFs(), nil).Resolve(snap, resolve.Options{
		ModuleName: "ktnumpy",
		OutputDir:  filepath.Join(env.ProjectDir, "build"),
	})
	if err != nil {
		t.Skipf("host python3 is not a development install: %v", err)
	}
	if cfg.Platform == platform.Windows {
		t.Skip("flag listing carries no library names on Windows")
	}

	var buf bytes.Buffer
	if err := emit.Write(&buf, emit.FormatFlags, cfg); err != nil {
		t.Fatal(err)
	}
	tag := q.LDVersion
	if tag == "" {
		tag = q.Version
	}
	assertContains(t, buf.String(), "-lpython"+tag)
	assertContains(t, buf.String(), "-Wl,-rpath,")
}

// TestMissingJDKFailsBeforeHeaders unsets JAVA_HOME after setup and expects
// the variable, not a header, to be reported.
func TestMissingJDKFailsBeforeHeaders(t *testing.T) {
	setupTestEnv(t)
	captureOrSkip(t)
	t.Setenv("JAVA_HOME", "")

	snap := captureOrSkip(t)
	_, err := resolve.NewResolver(afero.NewOsFs(), nil).Resolve(snap, resolve.Options{ModuleName: "ktnumpy", OutputDir: "build"})
	if errors.Is(err, resolve.ErrEnvironmentProbe) {
		t.Skipf("host python3 is not a development install: %v", err)
	}
	if !errors.Is(err, resolve.ErrMissingEnvironment) {
		t.Errorf("expected ErrMissingEnvironment, got %v", err)
	}
}
