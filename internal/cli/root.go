package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vueforge-dev/vueforge/internal/branding"
	"github.com/vueforge-dev/vueforge/internal/config"
	"github.com/vueforge-dev/vueforge/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds Vue 3 projects: it runs the create-vue generator,
installs an opinionated package set, writes example auth/store/validation
code, and wires a pre-commit hook that enforces file naming conventions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The check command runs from the pre-commit hook; keep it quiet
		// and fast. version manages its own output.
		name := cmd.Name()
		if name == "check" || name == "version" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	config.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
