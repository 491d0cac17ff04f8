package platform

import (
	"testing"

	"github.com/spf13/afero"
)

func TestChmod(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/lib/libktnumpy.so", []byte("elf"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(fsys, "/lib/libktnumpy.so", 0600, Linux); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	info, err := fsys.Stat("/lib/libktnumpy.so")
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("permissions = %o, want %o", perm, 0600)
	}
}

func TestChmod_WindowsNoop(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/build/ktnumpy.dll", []byte("pe"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(fsys, "/build/ktnumpy.dll", 0600, Windows); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}
	info, err := fsys.Stat("/build/ktnumpy.dll")
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0644 {
		t.Errorf("permissions changed on windows: %o", perm)
	}
}
