package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vueforge-dev/vueforge/internal/hooks"
)

var hooksForce bool

func init() {
	hooksInstallCmd.Flags().BoolVar(&hooksForce, "force", false, "Replace an existing pre-commit hook")
	hooksCmd.AddCommand(hooksInstallCmd)
	hooksCmd.AddCommand(hooksUninstallCmd)
	hooksCmd.AddCommand(hooksStatusCmd)
	rootCmd.AddCommand(hooksCmd)
}

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage the pre-commit naming hook",
	Long:  `Install, remove, or inspect the pre-commit hook that runs the naming check on staged files.`,
}

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the pre-commit hook in the current repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		path, err := hooks.Install(cwd, hooksForce)
		if err != nil {
			return err
		}
		fmt.Printf("Installed pre-commit hook at %s\n", path)
		return nil
	},
}

var hooksUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the pre-commit hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		if err := hooks.Uninstall(cwd); err != nil {
			return err
		}
		fmt.Println("Pre-commit hook removed.")
		return nil
	},
}

var hooksStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the pre-commit hook is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		status, err := hooks.Inspect(cwd)
		if err != nil {
			return err
		}
		path, err := hooks.HookPath(cwd)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", path, status)
		return nil
	},
}
