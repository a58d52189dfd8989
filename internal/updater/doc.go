// Package updater performs the non-blocking "newer release available"
// check shown before most commands. Results are cached for a day under the
// config directory; a stale cache is refreshed in the background so the
// check never delays the command at hand. The CLI does not replace its own
// binary; the banner points at the release page instead.
package updater
