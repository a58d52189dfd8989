package generator

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// EnsureBinaries verifies that each binary is present on PATH.
func EnsureBinaries(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("required tools not found in PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BinaryVersion runs `<bin> --version` and parses the first semver-looking
// token of the output. Handles "v" prefixes and git's "git version x.y.z"
// shape.
func BinaryVersion(bin string) (*semver.Version, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", bin, err)
	}

	out, err := exec.Command(path, "--version").Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", bin, err)
	}

	return parseVersionOutput(string(out))
}

// CheckNodeVersion verifies that the installed Node.js satisfies the minimum
// version constraint (e.g. "18.0.0").
func CheckNodeVersion(minVersion string) error {
	min, err := semver.NewVersion(strings.TrimPrefix(minVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing minimum node version %q: %w", minVersion, err)
	}

	installed, err := BinaryVersion("node")
	if err != nil {
		return err
	}

	if installed.LessThan(min) {
		return fmt.Errorf("node %s is older than the required minimum %s", installed, min)
	}
	return nil
}

// parseVersionOutput extracts the first parseable semver token from a
// --version output line.
func parseVersionOutput(out string) (*semver.Version, error) {
	for _, field := range strings.Fields(out) {
		field = strings.TrimPrefix(field, "v")
		if v, err := semver.NewVersion(field); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no version found in output %q", strings.TrimSpace(out))
}
