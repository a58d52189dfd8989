// Package generator drives the external tooling that "vueforge new" depends
// on: invoking the create-vue project generator and installing the fixed
// package set through the selected package manager (npm, pnpm, or yarn).
// All invocations are blocking subprocesses whose output is streamed to the
// terminal and captured for error reporting.
package generator
