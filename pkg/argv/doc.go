// Package argv provides query, filter, and grouping helpers over a raw
// command-line argument list.
//
// The central type is List, an ordered, mutable sequence of string tokens
// (typically os.Args[1:], passed in explicitly by the entry point). All
// operations are either pure queries or in-place mutations over that
// sequence — there is no schema, no type coercion, and no subcommand
// dispatch; a higher-level parser can be layered on top.
//
// Lookup misses never produce errors. Element and index lookups return a
// (value, ok) pair, and filters that match nothing return an empty List, so
// call chains never need guarding:
//
//	args := argv.New(os.Args[1:])
//
//	if args.Contains("--verbose") {
//	    args.Remove("--verbose")
//	}
//
//	if out, ok := args.ValueAfter("-o"); ok {
//	    fmt.Println("output:", out)
//	}
//
// Query parameters that accept "a string or a list of strings" are variadic;
// candidates are tried in argument order and the first candidate with any
// match wins.
//
// Derived lists returned by filters (Flags, StartingWith, AllWith, ...) own
// their own backing storage: mutating a derived list never affects the list
// it was derived from.
//
// Files and NotFiles are the only operations that touch the outside world;
// they expand glob, tilde, and environment-variable patterns and check path
// existence on the local filesystem.
package argv
