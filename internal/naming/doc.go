// Package naming implements the file-naming convention checker behind the
// "vueforge check" command and the generated pre-commit hook. Component
// files (.vue) must have PascalCase basenames; other source files and the
// directories on their paths must be kebab-case. The checker is a pure,
// single-pass function over a list of repo-relative paths.
package naming
