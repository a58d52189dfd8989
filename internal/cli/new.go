package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vueforge-dev/vueforge/internal/branding"
	"github.com/vueforge-dev/vueforge/internal/config"
	"github.com/vueforge-dev/vueforge/internal/generator"
	"github.com/vueforge-dev/vueforge/internal/hooks"
	"github.com/vueforge-dev/vueforge/internal/scaffold"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	newPackageManager string
	newSkipInstall    bool
	newSkipHooks      bool
	newOutputDir      string
)

func init() {
	newCmd.Flags().StringVar(&newPackageManager, "package-manager", "", "Package manager: npm, pnpm, or yarn (default from config)")
	newCmd.Flags().BoolVar(&newSkipInstall, "skip-install", false, "Skip installing the opinionated package set")
	newCmd.Flags().BoolVar(&newSkipHooks, "skip-hooks", false, "Skip installing the pre-commit naming hook")
	newCmd.Flags().StringVar(&newOutputDir, "output-dir", "", "Parent directory for the project (default: current directory)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new Vue 3 project",
	Long: `Scaffold a new Vue 3 project.

Runs the create-vue generator, installs the opinionated package set
(pinia, vuetify, vee-validate, yup, axios, sass), writes example
auth/store/validation code plus a ` + "`vueforge.yaml`" + ` manifest, and
installs a pre-commit hook enforcing file naming conventions.

Examples:
  vueforge new my-app
  vueforge new my-app --package-manager pnpm --skip-hooks
  vueforge new            (prompts for the project name)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	var name string
	var err error

	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = promptProjectName(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	if err := validateName(name); err != nil {
		return err
	}

	pmName := newPackageManager
	if pmName == "" {
		pmName = config.Get(config.KeyPackageManager)
	}
	pm, err := generator.Dispatch(pmName)
	if err != nil {
		return err
	}

	// Preflight: everything the rest of this command shells out to.
	if err := generator.EnsureBinaries("node", pm.Bin(), "git"); err != nil {
		return err
	}
	minNode := config.Get(config.KeyMinNodeVersion)
	if err := generator.CheckNodeVersion(minNode); err != nil {
		return err
	}

	parentDir := newOutputDir
	if parentDir == "" {
		parentDir = "."
	}
	projectDir := filepath.Join(parentDir, name)
	if err := ensureTargetEmpty(projectDir); err != nil {
		return err
	}

	runner := &generator.Runner{Registry: config.Get(config.KeyRegistry)}
	ctx := cmd.Context()

	fmt.Printf("Running %s via %s...\n", generator.GeneratorName, pm.Name())
	if _, err := runner.Scaffold(ctx, pm, parentDir, name); err != nil {
		return err
	}

	if newSkipInstall {
		fmt.Println("Skipping package installation (--skip-install).")
	} else {
		fmt.Printf("Installing packages: %s\n", strings.Join(generator.RuntimePackages, ", "))
		if _, err := runner.Install(ctx, pm, projectDir, generator.RuntimePackages, false); err != nil {
			return err
		}
		fmt.Printf("Installing dev packages: %s\n", strings.Join(generator.DevPackages, ", "))
		if _, err := runner.Install(ctx, pm, projectDir, generator.DevPackages, true); err != nil {
			return err
		}
	}

	data := scaffold.NewProjectData(name, buildVersion, pm.Name())
	result, err := scaffold.Generate(data, projectDir)
	if err != nil {
		return fmt.Errorf("writing project templates: %w", err)
	}

	fmt.Printf("\nCreated %s/\n", projectDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	for _, f := range result.Skipped {
		fmt.Printf("  %s (kept generator version)\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}

	// Hook setup is best-effort: a failure here should not undo a
	// successfully scaffolded project.
	if newSkipHooks {
		fmt.Println("\nSkipping pre-commit hook (--skip-hooks).")
	} else {
		installProjectHook(cmd.ErrOrStderr(), projectDir)
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", projectDir)
	fmt.Printf("  2. %s run dev\n", pm.Name())
	fmt.Println("  3. Edit src/stores/auth.ts to point at your backend")
	return nil
}

// installProjectHook ensures the project is a git repository and installs
// the pre-commit hook, warning instead of failing.
func installProjectHook(w io.Writer, projectDir string) {
	if err := hooks.EnsureRepo(projectDir); err != nil {
		fmt.Fprintf(w, "warning: could not initialize git repository: %v\n", err)
		fmt.Fprintf(w, "Run `%s hooks install` after `git init` to enable the naming check.\n", branding.CLIName())
		return
	}
	path, err := hooks.Install(projectDir, false)
	if err != nil {
		fmt.Fprintf(w, "warning: could not install pre-commit hook: %v\n", err)
		return
	}
	fmt.Printf("\nInstalled pre-commit naming hook at %s\n", path)
}

// promptProjectName asks for a project name on stdin when no positional
// argument was given.
func promptProjectName(r io.Reader, w io.Writer) (string, error) {
	reader := bufio.NewReader(r)
	fmt.Fprint(w, "Project name: ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading project name: %w", err)
	}

	name := strings.TrimSpace(line)
	if name == "" {
		return "", fmt.Errorf("project name is required")
	}
	return name, nil
}

// ensureTargetEmpty rejects a target directory that already has contents,
// before any subprocess runs. A missing or empty directory is fine.
func ensureTargetEmpty(projectDir string) error {
	entries, err := os.ReadDir(projectDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", projectDir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("directory %s already exists and is not empty", projectDir)
	}
	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}
