package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/vueforge-dev/vueforge/internal/config"
	"github.com/vueforge-dev/vueforge/internal/generator"
	"github.com/vueforge-dev/vueforge/internal/hooks"
	"github.com/vueforge-dev/vueforge/internal/manifest"
	"github.com/vueforge-dev/vueforge/internal/platform"
)

var doctorManifest string

func init() {
	doctorCmd.Flags().StringVar(&doctorManifest, "check-manifest", "", "Validate a vueforge.yaml at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the scaffolding environment",
	Long:  `Run diagnostic checks on the external tools and the current project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if doctorManifest != "" {
			return runManifestCheck(doctorManifest)
		}

		runToolingChecks()
		runProjectChecks()
		return nil
	},
}

func runToolingChecks() {
	fmt.Println("Tooling check:")
	checkBinaryVersion("node")
	checkBinaryVersion("git")
	for _, pm := range []string{"npm", "pnpm", "yarn"} {
		checkBinaryVersion(pm)
	}

	minNode := config.Get(config.KeyMinNodeVersion)
	if err := generator.CheckNodeVersion(minNode); err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
	} else {
		fmt.Printf("  [ OK ] node satisfies minimum %s\n", minNode)
	}
}

func checkBinaryVersion(name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Printf("  [MISS] %s not found\n", name)
		return
	}
	v, err := generator.BinaryVersion(name)
	if err != nil {
		fmt.Printf("  [WARN] %s found at %s, version unknown: %v\n", name, path, err)
		return
	}
	fmt.Printf("  [ OK ] %s %s at %s\n", name, v, path)
}

func runProjectChecks() {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Printf("[WARN] Could not resolve current directory: %v\n", err)
		return
	}

	fmt.Println("\nProject check:")

	root, err := hooks.RepoRoot(cwd)
	if err != nil {
		fmt.Println("  [INFO] Not inside a git repository")
		return
	}

	status, err := hooks.Inspect(root)
	if err != nil {
		fmt.Printf("  [WARN] Cannot inspect pre-commit hook: %v\n", err)
	} else {
		switch status {
		case hooks.StatusInstalled:
			hookPath, _ := hooks.HookPath(root)
			if ok, execErr := platform.IsExecutable(hookPath); execErr == nil && !ok {
				fmt.Println("  [WARN] Pre-commit hook installed but not executable")
			} else {
				fmt.Println("  [ OK ] Pre-commit naming hook installed")
			}
		case hooks.StatusForeign:
			fmt.Println("  [WARN] A foreign pre-commit hook is present (naming check not wired)")
		default:
			fmt.Println("  [INFO] Pre-commit hook not installed (run `vueforge hooks install`)")
		}
	}

	manifestPath := manifest.PathIn(root)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		fmt.Printf("  [INFO] No %s in %s\n", manifest.FileName, root)
		return
	}
	if err := runManifestCheck(manifestPath); err != nil {
		// Already reported; doctor keeps going.
		return
	}
}

func runManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := manifest.Parse(path)
		if err != nil {
			fmt.Printf("  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid manifest: %s (v%s, %s)\n", m.Name, m.Version, m.PackageManager)
		return nil
	}

	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
