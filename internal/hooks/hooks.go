package hooks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vueforge-dev/vueforge/internal/branding"
	"github.com/vueforge-dev/vueforge/internal/platform"
)

// HookName is the git hook this package manages.
const HookName = "pre-commit"

// marker identifies hooks written by this tool so uninstall and reinstall
// never touch a hand-written hook.
const marker = "installed by vueforge"

// Status describes the state of the pre-commit hook in a repository.
type Status int

// Hook states reported by Inspect.
const (
	StatusNotInstalled Status = iota
	StatusInstalled
	StatusForeign
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusForeign:
		return "foreign"
	default:
		return "not installed"
	}
}

// Script returns the pre-commit hook script content.
func Script() string {
	cli := branding.CLIName()
	return fmt.Sprintf(`#!/bin/sh
# %s: file naming conventions (%s)
if ! command -v %s >/dev/null 2>&1; then
	echo "%s not found in PATH; skipping naming check" >&2
	exit 0
fi
exec %s check --staged
`, marker, HookName, cli, cli, cli)
}

// HooksDir resolves the hooks directory for the repository containing dir.
// Asking git directly keeps worktrees and core.hooksPath working.
func HooksDir(dir string) (string, error) {
	if err := ensureGit(); err != nil {
		return "", err
	}

	cmd := exec.Command("git", "rev-parse", "--git-path", "hooks")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s is not inside a git repository: %w", dir, err)
	}

	hooksDir := strings.TrimSpace(string(out))
	if !filepath.IsAbs(hooksDir) {
		hooksDir = filepath.Join(dir, hooksDir)
	}
	return hooksDir, nil
}

// HookPath returns the full path of the managed pre-commit hook for dir.
func HookPath(dir string) (string, error) {
	hooksDir, err := HooksDir(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(hooksDir, HookName), nil
}

// Inspect reports whether the repository has no pre-commit hook, our hook,
// or someone else's.
func Inspect(dir string) (Status, error) {
	path, err := HookPath(dir)
	if err != nil {
		return StatusNotInstalled, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return StatusNotInstalled, nil
	}
	if err != nil {
		return StatusNotInstalled, fmt.Errorf("reading hook %s: %w", path, err)
	}

	if strings.Contains(string(data), marker) {
		return StatusInstalled, nil
	}
	return StatusForeign, nil
}

// Install writes the pre-commit hook, creating the hooks directory if
// needed. A foreign hook is preserved unless force is set. Reinstalling
// over our own hook is always allowed (it picks up script changes).
func Install(dir string, force bool) (string, error) {
	status, err := Inspect(dir)
	if err != nil {
		return "", err
	}
	if status == StatusForeign && !force {
		path, _ := HookPath(dir)
		return "", fmt.Errorf("a pre-commit hook already exists at %s; use --force to replace it", path)
	}

	path, err := HookPath(dir)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Script()), 0755); err != nil {
		return "", fmt.Errorf("writing hook %s: %w", path, err)
	}
	// WriteFile honors umask; force the executable bits explicitly.
	if err := platform.Chmod(path, 0755); err != nil {
		return "", fmt.Errorf("marking hook executable: %w", err)
	}

	return path, nil
}

// Uninstall removes the managed hook. Foreign hooks are left alone and
// reported as an error; a missing hook is not an error.
func Uninstall(dir string) error {
	status, err := Inspect(dir)
	if err != nil {
		return err
	}

	switch status {
	case StatusNotInstalled:
		return nil
	case StatusForeign:
		path, _ := HookPath(dir)
		return fmt.Errorf("pre-commit hook at %s was not installed by %s; remove it manually", path, branding.CLIName())
	}

	path, err := HookPath(dir)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing hook %s: %w", path, err)
	}
	return nil
}

// EnsureRepo makes dir a git repository if it is not already one.
func EnsureRepo(dir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = dir
	if err := cmd.Run(); err == nil {
		return nil
	}

	init := exec.Command("git", "init", "-q")
	init.Dir = dir
	if out, err := init.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RepoRoot returns the top-level directory of the repository containing dir.
func RepoRoot(dir string) (string, error) {
	if err := ensureGit(); err != nil {
		return "", err
	}

	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s is not inside a git repository: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
