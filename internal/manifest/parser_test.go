package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleManifest = `name: my-app
version: "0.1.0"
created_by: vueforge 1.2.0
generator:
  name: create-vue
  version: "3.12.0"
package_manager: pnpm
packages:
  dependencies:
    - pinia
    - vuetify
    - vee-validate
    - yup
    - axios
  dev_dependencies:
    - sass
conventions:
  allowed_components:
    - default
  roots:
    - packages
`

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
	return path
}

func TestParse(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, sampleManifest)

	m, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if m.Name != "my-app" {
		t.Errorf("Name = %q, want %q", m.Name, "my-app")
	}
	if m.Generator.Name != "create-vue" {
		t.Errorf("Generator.Name = %q, want %q", m.Generator.Name, "create-vue")
	}
	if m.PackageManager != "pnpm" {
		t.Errorf("PackageManager = %q, want %q", m.PackageManager, "pnpm")
	}
	if len(m.Packages.Dependencies) != 5 {
		t.Errorf("got %d dependencies, want 5", len(m.Packages.Dependencies))
	}
	if m.Conventions == nil {
		t.Fatal("Conventions should be parsed")
	}
	if len(m.Conventions.AllowedComponents) != 1 || m.Conventions.AllowedComponents[0] != "default" {
		t.Errorf("AllowedComponents = %v, want [default]", m.Conventions.AllowedComponents)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "name: [unclosed")

	_, err := Parse(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Name != "my-app" {
		t.Errorf("Name = %q, want %q", m.Name, "my-app")
	}
}

func TestLoadWithoutManifest(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error when no manifest exists")
	}
}

func TestManifestWithoutConventions(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "name: bare\nversion: \"0.1.0\"\npackage_manager: npm\n")

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if m.Conventions != nil {
		t.Errorf("Conventions = %+v, want nil", m.Conventions)
	}
}
