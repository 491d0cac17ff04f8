package doctor

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/Kotlin/kotlin-numpy/internal/environ"
	"github.com/Kotlin/kotlin-numpy/internal/interp"
	"github.com/Kotlin/kotlin-numpy/internal/resolve"
)

func healthyInputs(t *testing.T) Inputs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, dir := range []string{
		"/usr/lib",
		"/usr/include/python3.9",
		"/site/numpy/core/include",
		"/jdk/include/linux",
		"/project/include",
	} {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	if err := afero.WriteFile(fsys, "/jdk/include/jni.h", nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := interp.Config{
		Executable:    "/usr/bin/python3",
		PythonVersion: "3.9.7",
		Version:       "3.9",
		LibDir:        "/usr/lib",
		Prefix:        "/usr",
		IncludeDir:    "/usr/include/python3.9",
		NumpyRoot:     "/site/numpy",
		NumpyVersion:  "1.24.4",
	}
	return Inputs{
		FS:       fsys,
		Snapshot: environ.New("linux", map[string]string{"JAVA_HOME": "/jdk"}, cfg),
		Options:  resolve.Options{ModuleName: "ktnumpy", IncludeDirs: []string{"/project/include"}},
		LookPath: func(name string) (string, error) {
			if name == "gcc" {
				return "/usr/bin/gcc", nil
			}
			return "", exec.ErrNotFound
		},
	}
}

func statusOf(t *testing.T, r *Report, name string) Status {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c.Status
		}
	}
	t.Fatalf("no %q check in report", name)
	return 0
}

func TestRun_Healthy(t *testing.T) {
	r := Run(healthyInputs(t))
	if r.Failed() {
		t.Fatalf("expected no failures, got %+v", r.Checks)
	}
	if got := r.Count(StatusOK); got != len(r.Checks) {
		t.Errorf("OK count = %d, want %d", got, len(r.Checks))
	}
}

func TestRun_ContinuesPastFailures(t *testing.T) {
	in := healthyInputs(t)
	in.Snapshot = environ.New("linux", map[string]string{}, in.Snapshot.Interpreter())
	_ = in.FS.RemoveAll("/site/numpy/core")

	r := Run(in)
	if statusOf(t, r, "jdk headers") != StatusFail {
		t.Error("jdk headers should fail without JAVA_HOME")
	}
	if statusOf(t, r, "numpy") != StatusFail {
		t.Error("numpy should fail without headers")
	}
	if statusOf(t, r, "c compiler") != StatusOK {
		t.Error("compiler check should still run")
	}
	if r.Count(StatusFail) != 2 {
		t.Errorf("fail count = %d, want 2", r.Count(StatusFail))
	}
}

func TestRun_UnsupportedPlatformSkipsDependents(t *testing.T) {
	in := healthyInputs(t)
	in.Snapshot = environ.New("freebsd", map[string]string{"JAVA_HOME": "/jdk"}, in.Snapshot.Interpreter())

	r := Run(in)
	if statusOf(t, r, "platform") != StatusFail {
		t.Error("platform should fail")
	}
	for _, name := range []string{"python library", "jdk headers"} {
		if statusOf(t, r, name) != StatusSkip {
			t.Errorf("%s should be skipped", name)
		}
	}
}

func TestRun_ProbeError(t *testing.T) {
	in := healthyInputs(t)
	in.ProbeErr = errors.New("python3 not found")

	r := Run(in)
	if statusOf(t, r, "python") != StatusFail {
		t.Error("python should fail")
	}
	if statusOf(t, r, "numpy") != StatusSkip {
		t.Error("numpy should be skipped")
	}
	if statusOf(t, r, "jdk headers") != StatusOK {
		t.Error("jdk headers do not depend on the interpreter")
	}
}

func TestRun_OldVersions(t *testing.T) {
	in := healthyInputs(t)
	cfg := in.Snapshot.Interpreter()
	cfg.PythonVersion = "3.4.10"
	cfg.NumpyVersion = "1.14.6"
	in.Snapshot = environ.New("linux", map[string]string{"JAVA_HOME": "/jdk"}, cfg)

	r := Run(in)
	if statusOf(t, r, "python") != StatusFail || statusOf(t, r, "numpy") != StatusFail {
		t.Errorf("expected version floors to fail: %+v", r.Checks)
	}
}

func TestRun_Manifest(t *testing.T) {
	tests := []struct {
		name   string
		body   string // empty means no file
		status Status
		detail string
	}{
		{"valid", "module: ktnumpy\ninclude_dirs: [include]\n", StatusOK, "/project/ktnumpy.yaml"},
		{"missing", "", StatusSkip, "using defaults"},
		{"unknown key", "module: ktnumpy\nlibraries: [python3]\n", StatusFail, "/libraries"},
		{"bad module", "module: 9lives\n", StatusFail, "/module"},
		{"not yaml", "module: [unclosed\n", StatusFail, "parsing YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := healthyInputs(t)
			in.ManifestPath = "/project/ktnumpy.yaml"
			if tt.body != "" {
				if err := afero.WriteFile(in.FS, in.ManifestPath, []byte(tt.body), 0644); err != nil {
					t.Fatal(err)
				}
			}

			r := Run(in)
			var got *Check
			for i := range r.Checks {
				if r.Checks[i].Name == "manifest" {
					got = &r.Checks[i]
				}
			}
			if got == nil {
				t.Fatalf("no manifest check in %+v", r.Checks)
			}
			if got.Status != tt.status {
				t.Errorf("status = %v, want %v (%s)", got.Status, tt.status, got.Detail)
			}
			if !strings.Contains(got.Detail, tt.detail) {
				t.Errorf("detail %q does not contain %q", got.Detail, tt.detail)
			}
			if statusOf(t, r, "c compiler") != StatusOK {
				t.Error("later checks should still run")
			}
		})
	}
}

func TestRun_NoManifestPathOmitsCheck(t *testing.T) {
	for _, c := range Run(healthyInputs(t)).Checks {
		if c.Name == "manifest" {
			t.Fatalf("unexpected manifest check %+v", c)
		}
	}
}

func TestRun_NoCompiler(t *testing.T) {
	in := healthyInputs(t)
	in.LookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	r := Run(in)
	if statusOf(t, r, "c compiler") != StatusWarn {
		t.Error("missing compiler should warn")
	}
	if r.Failed() {
		t.Error("missing compiler alone should not fail the report")
	}
}

func TestRender(t *testing.T) {
	in := healthyInputs(t)
	_ = in.FS.RemoveAll("/project")

	var buf bytes.Buffer
	Render(&buf, Run(in))
	out := buf.String()

	for _, want := range []string{"[OK  ]", "[FAIL]", "project include", "check include_dirs", "1 failure"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_Plurals(t *testing.T) {
	tests := []struct {
		statuses []Status
		want     string
	}{
		{[]Status{StatusOK, StatusOK, StatusWarn}, "2 checks passed; 1 warning, 0 failures"},
		{[]Status{StatusOK, StatusFail, StatusWarn, StatusWarn}, "1 check passed; 2 warnings, 1 failure"},
		{nil, "0 checks passed; 0 warnings, 0 failures"},
	}
	for _, tt := range tests {
		r := &Report{}
		for _, s := range tt.statuses {
			r.add(Check{Status: s})
		}
		if got := Summary(r); got != tt.want {
			t.Errorf("Summary(%v) = %q, want %q", tt.statuses, got, tt.want)
		}
	}
}
