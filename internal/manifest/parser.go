package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Parse reads a vueforge.yaml file and returns the typed manifest.
func Parse(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m ProjectManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &m, nil
}

// PathIn returns the manifest path for a project directory.
func PathIn(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// Load locates and parses the manifest for a project directory.
// Returns os.ErrNotExist (wrapped) when the project has no manifest.
func Load(projectDir string) (*ProjectManifest, error) {
	path := PathIn(projectDir)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no %s in %s: %w", FileName, projectDir, err)
	}
	return Parse(path)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
