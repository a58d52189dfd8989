package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmodAndIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are a no-op on windows")
	}

	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ok, err := IsExecutable(path)
	if err != nil {
		t.Fatalf("IsExecutable: %v", err)
	}
	if ok {
		t.Error("0644 file should not be executable")
	}

	if err := Chmod(path, 0755); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	ok, err = IsExecutable(path)
	if err != nil {
		t.Fatalf("IsExecutable: %v", err)
	}
	if !ok {
		t.Error("0755 file should be executable")
	}
}

func TestIsExecutableMissingFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are a no-op on windows")
	}
	if _, err := IsExecutable(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
