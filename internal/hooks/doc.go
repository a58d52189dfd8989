// Package hooks installs and manages the pre-commit hook that runs
// "vueforge check --staged" on every commit. It resolves the hooks
// directory through git itself so worktrees and core.hooksPath setups
// behave, and it never clobbers a hook it did not write unless forced.
package hooks
