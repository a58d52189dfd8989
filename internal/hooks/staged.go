package hooks

import (
	"fmt"
	"os/exec"
	"strings"
)

// StagedFiles returns the repo-relative paths of files staged for commit
// in the repository containing dir. Deletions are excluded; a renamed file
// appears under its new name.
func StagedFiles(dir string) ([]string, error) {
	if err := ensureGit(); err != nil {
		return nil, err
	}

	cmd := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACMR", "-z")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}

	var files []string
	for _, f := range strings.Split(string(out), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}
