// Package cli provides command-line option parsing for argq.
//
// This package separates argq's own options from the token list being
// inspected, converting the command line into a structured Args type that
// the main application can use.
//
// Supported options:
//   - --absolute: Report file matches as absolute paths
//   - --section NAME: Limit the report to the named section (repeatable)
//   - -h, --help: Show help
//   - --version: Show version information
//
// Everything after the first non-option token, or after a bare "--", is
// treated as a token to inspect. The "--" form is required when the
// inspected tokens themselves begin with a dash.
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if err != nil {
//	    if errors.Is(err, cli.ErrShowHelp) {
//	        showHelp()
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
//
//	list := argv.New(args.Tokens)
package cli
