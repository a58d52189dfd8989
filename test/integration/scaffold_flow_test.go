//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vueforge-dev/vueforge/internal/hooks"
	"github.com/vueforge-dev/vueforge/internal/manifest"
	"github.com/vueforge-dev/vueforge/internal/naming"
	"github.com/vueforge-dev/vueforge/internal/scaffold"
)

// TestOverlayHookAndCheckFlow exercises the post-generator pipeline end to
// end: template overlay, manifest validation, hook installation, and the
// staged naming check.
func TestOverlayHookAndCheckFlow(t *testing.T) {
	dir := setupProject(t)

	// Overlay templates onto the "generated" project.
	data := scaffold.NewProjectData("test-app", "1.0.0", "npm")
	result, err := scaffold.Generate(data, dir)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Fatalf("overlay warnings: %v", result.Warnings)
	}

	assertFileExists(t, filepath.Join(dir, "vueforge.yaml"))
	assertFileExists(t, filepath.Join(dir, "src", "stores", "auth.ts"))
	assertFileExists(t, filepath.Join(dir, ".editorconfig"))

	// The manifest parses and validates.
	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load manifest: %v", err)
	}
	if m.Name != "test-app" {
		t.Errorf("manifest name = %q, want test-app", m.Name)
	}
	valResult, err := manifest.ValidateFile(manifest.PathIn(dir))
	if err != nil {
		t.Fatalf("ValidateFile: %v", err)
	}
	if !valResult.Valid {
		t.Fatalf("manifest invalid: %+v", valResult.Issues)
	}

	// Install the hook.
	hookPath, err := hooks.Install(dir, false)
	if err != nil {
		t.Fatalf("Install hook: %v", err)
	}
	assertFileExists(t, hookPath)

	// Stage a badly named component and confirm the check catches it.
	writeFile(t, filepath.Join(dir, "src", "components", "user-card.vue"), "<template/>\n")
	git(t, dir, "add", ".")

	staged, err := hooks.StagedFiles(dir)
	if err != nil {
		t.Fatalf("StagedFiles: %v", err)
	}
	if len(staged) == 0 {
		t.Fatal("expected staged files")
	}

	checkResult := naming.Check(staged, naming.Default())
	if checkResult.Ok() {
		t.Fatal("expected a violation for src/components/user-card.vue")
	}
	found := false
	for _, v := range checkResult.Violations {
		if strings.Contains(v.Path, "user-card.vue") && v.Rule == naming.RulePascalCase {
			found = true
		}
	}
	if !found {
		t.Errorf("violations %v should flag user-card.vue as pascal-case", checkResult.Violations)
	}

	// Overlay files written by vueforge itself all pass the check.
	overlayResult := naming.Check(result.Files, naming.Default())
	if !overlayResult.Ok() {
		t.Errorf("overlay files should satisfy conventions, got %v", overlayResult.Violations)
	}
}

// TestProjectConventionsExtendCheck verifies that a conventions block in
// vueforge.yaml feeds the staged check.
func TestProjectConventionsExtendCheck(t *testing.T) {
	dir := setupProject(t)

	writeFile(t, filepath.Join(dir, "vueforge.yaml"), `name: test-app
version: "0.1.0"
package_manager: npm
conventions:
  allowed_components:
    - DefaultLayout
    - weird_name
  roots:
    - packages
`)

	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	conv := naming.Default().Merge(m.Conventions.AllowedComponents, m.Conventions.Roots)

	paths := []string{
		"src/layouts/DefaultLayout.vue", // PascalCase anyway
		"src/layouts/weird_name.vue",    // only passes via allow-list
		"packages/ui/Button.vue",        // only checked via extra root
	}
	result := naming.Check(paths, conv)
	if !result.Ok() {
		t.Errorf("allow-listed paths should pass, got %v", result.Violations)
	}

	bad := naming.Check([]string{"packages/ui/badName.vue"}, conv)
	if bad.Ok() {
		t.Error("extra root should be enforced")
	}
}

// TestUninstallLeavesRepoClean confirms hook removal restores the repo.
func TestUninstallLeavesRepoClean(t *testing.T) {
	dir := setupProject(t)

	hookPath, err := hooks.Install(dir, false)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if err := hooks.Uninstall(dir); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if _, err := os.Stat(hookPath); !os.IsNotExist(err) {
		t.Error("hook should be gone after uninstall")
	}

	status, err := hooks.Inspect(dir)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if status != hooks.StatusNotInstalled {
		t.Errorf("status = %v, want not installed", status)
	}
}
