package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	valid := []string{"my-app", "app", "app2", "my-app-2", "2048"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "My-App", "-app", "my_app", "my app", "app!"}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) should fail", name)
		}
	}
}

func TestEnsureTargetEmpty(t *testing.T) {
	tmp := t.TempDir()

	if err := ensureTargetEmpty(filepath.Join(tmp, "missing")); err != nil {
		t.Errorf("missing directory should be accepted, got %v", err)
	}

	empty := filepath.Join(tmp, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatal(err)
	}
	if err := ensureTargetEmpty(empty); err != nil {
		t.Errorf("empty directory should be accepted, got %v", err)
	}

	occupied := filepath.Join(tmp, "occupied")
	if err := os.Mkdir(occupied, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(occupied, "package.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	err := ensureTargetEmpty(occupied)
	if err == nil {
		t.Fatal("non-empty directory should be rejected")
	}
	if !strings.Contains(err.Error(), "not empty") {
		t.Errorf("error should mention the directory is not empty, got %v", err)
	}
}

func TestPromptProjectName(t *testing.T) {
	var out bytes.Buffer

	name, err := promptProjectName(strings.NewReader("my-app\n"), &out)
	if err != nil {
		t.Fatalf("promptProjectName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
	if !strings.Contains(out.String(), "Project name:") {
		t.Errorf("prompt text missing, got %q", out.String())
	}
}

func TestPromptProjectNameTrimsWhitespace(t *testing.T) {
	var out bytes.Buffer

	name, err := promptProjectName(strings.NewReader("  my-app  \n"), &out)
	if err != nil {
		t.Fatalf("promptProjectName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
}

func TestPromptProjectNameEmpty(t *testing.T) {
	var out bytes.Buffer

	if _, err := promptProjectName(strings.NewReader("\n"), &out); err == nil {
		t.Fatal("empty input should fail")
	}
	if _, err := promptProjectName(strings.NewReader(""), &out); err == nil {
		t.Fatal("EOF without input should fail")
	}
}

func TestPromptProjectNameWithoutTrailingNewline(t *testing.T) {
	var out bytes.Buffer

	// EOF after a partial line still yields the name.
	name, err := promptProjectName(strings.NewReader("my-app"), &out)
	if err != nil {
		t.Fatalf("promptProjectName() error: %v", err)
	}
	if name != "my-app" {
		t.Errorf("name = %q, want %q", name, "my-app")
	}
}
