// Package ui provides terminal output formatting for argq.
//
// This package handles all user-facing output with consistent styling:
//   - Colored output (cyan, green, red, yellow)
//   - Headers and footers with box-drawing characters
//   - Report sections, list items, and key/value rows
//   - Error and warning messages
//   - Dimmed text for secondary information
//
// Report data goes to ui.Out (defaults to os.Stdout); diagnostics go to
// ui.Err (defaults to os.Stderr). Both are variables to allow testing and
// output redirection.
//
// Example usage:
//
//	ui.Header()
//	ui.Section("flags")
//	ui.Item("-a")
//	ui.Item("-b")
//	ui.Section("groups")
//	ui.KeyValue("-a", "[1 2]")
//	ui.Footer()
package ui
