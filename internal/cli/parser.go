// Package cli handles command-line option parsing for argq.
package cli

import (
	"errors"
	"fmt"
)

// Sentinel errors signalling informational exits.
var (
	ErrShowHelp    = errors.New("show help")
	ErrShowVersion = errors.New("show version")
)

// Section names accepted by --section.
var validSections = map[string]bool{
	"all":      true,
	"flags":    true,
	"notflags": true,
	"groups":   true,
	"files":    true,
	"notfiles": true,
}

// Args represents parsed command-line options.
type Args struct {
	// Report file matches as absolute paths
	Absolute bool

	// Sections to render; empty means all of them
	Sections []string

	// Tokens to inspect
	Tokens []string
}

// Parse parses command-line arguments into an Args struct.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{
		Sections: []string{},
		Tokens:   []string{},
	}

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			return nil, ErrShowHelp

		case "--version":
			return nil, ErrShowVersion

		case "--absolute":
			args.Absolute = true
			i++

		case "--section":
			if i+1 >= len(osArgs) {
				return nil, fmt.Errorf("--section requires a name argument")
			}
			name := osArgs[i+1]
			if !validSections[name] {
				return nil, fmt.Errorf("--section: unknown section %q", name)
			}
			args.Sections = append(args.Sections, name)
			i += 2

		case "--":
			args.Tokens = append(args.Tokens, osArgs[i+1:]...)
			return args, nil

		default:
			if len(arg) > 0 && arg[0] == '-' {
				return nil, fmt.Errorf("unknown option: %s (use -- before inspected flags)", arg)
			}
			// First plain token: everything from here on is inspected
			args.Tokens = append(args.Tokens, osArgs[i:]...)
			return args, nil
		}
	}

	return args, nil
}

// WantSection reports whether the named section should be rendered.
func (a *Args) WantSection(name string) bool {
	if len(a.Sections) == 0 {
		return true
	}
	for _, s := range a.Sections {
		if s == name {
			return true
		}
	}
	return false
}
