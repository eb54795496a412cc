// Package ui provides user interface utilities for formatted terminal output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	BoxWidth = 46
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Report data destination
	Out io.Writer = os.Stdout

	// Diagnostic destination
	Err io.Writer = os.Stderr
)

// Header prints the top border with "argq" branding.
func Header() {
	border := strings.Repeat("─", BoxWidth-7)
	fmt.Fprintf(Out, "  %s %s %s\n", Dim("┌"), Bold("argq"), Dim(border))
}

// Footer prints the bottom border.
func Footer() {
	border := strings.Repeat("─", BoxWidth-1)
	fmt.Fprintf(Out, "  %s%s\n", Dim("└"), Dim(border))
}

// Section prints a report section heading.
func Section(name string) {
	fmt.Fprintf(Out, "  %s %s\n", Cyan("»"), Bold(name))
}

// Item prints a single list entry under the current section.
func Item(value string) {
	fmt.Fprintf(Out, "    %s %s\n", Dim("·"), value)
}

// KeyValue prints an aligned key/value row under the current section.
func KeyValue(key, value string) {
	fmt.Fprintf(Out, "    %s %s %s\n", Dim("·"), Green(key), value)
}

// Empty prints a placeholder for a section with no entries.
func Empty() {
	fmt.Fprintf(Out, "    %s\n", Dim("(none)"))
}

// Fail prints an error message with a red X.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Err, "  %s %s\n", Red("✘"), msg)
}

// Warn prints a warning message with a yellow circle.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Err, "  %s %s\n", Yellow("○"), msg)
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Err, "  %s %s\n", Cyan("→"), msg)
}

// BlankLine prints a blank line in the report.
func BlankLine() {
	fmt.Fprintln(Out, "")
}
