// Package cli wires the cobra command tree: new, check, hooks, doctor,
// config, and version. Commands return errors; main translates them into
// a non-zero exit.
package cli
