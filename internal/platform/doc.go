// Package platform isolates the few OS-specific behaviors the CLI needs,
// chiefly Unix permission bits that do not exist on Windows.
package platform
