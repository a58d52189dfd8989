package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vueforge-dev/vueforge/internal/hooks"
	"github.com/vueforge-dev/vueforge/internal/manifest"
	"github.com/vueforge-dev/vueforge/internal/naming"
)

var checkStaged bool

func init() {
	checkCmd.Flags().BoolVar(&checkStaged, "staged", false, "Check files staged for commit instead of arguments")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check file names against the project naming conventions",
	Long: `Check file paths against the naming conventions.

Component files (.vue) must have PascalCase basenames; other source files
and the directories on their paths must be kebab-case. Only paths under
src/ (plus any roots declared in vueforge.yaml) are validated.

With --staged, the paths come from the git index; this is what the
generated pre-commit hook runs. Exits non-zero when violations are found.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	paths := args
	projectDir := cwd
	if checkStaged {
		root, err := hooks.RepoRoot(cwd)
		if err != nil {
			return err
		}
		projectDir = root
		paths, err = hooks.StagedFiles(cwd)
		if err != nil {
			return err
		}
	}

	if len(paths) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No files to check.")
		return nil
	}

	conv := naming.Default()
	// Project manifests may extend the allow-list and checked roots.
	if m, err := manifest.Load(projectDir); err == nil && m.Conventions != nil {
		conv = conv.Merge(m.Conventions.AllowedComponents, m.Conventions.Roots)
	}

	result := naming.Check(paths, conv)
	if result.Ok() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Naming check passed (%d checked, %d skipped).\n", result.Checked, result.Skipped)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Naming check failed:\n")
	for _, v := range result.Violations {
		fmt.Fprintf(cmd.ErrOrStderr(), "  [%s] %s\n", v.Rule, v)
	}
	return fmt.Errorf("%d naming violation(s)", len(result.Violations))
}
