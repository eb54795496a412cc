package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rickgorman/argq/internal/cli"
	"github.com/rickgorman/argq/internal/ui"
	"github.com/rickgorman/argq/pkg/argv"
)

const version = "1.0.0"

func main() {
	// Parse our own options; everything else is the list under inspection
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			showHelp()
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("argq %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("argq --help"))
		os.Exit(1)
	}

	list := argv.New(args.Tokens)
	renderReport(list, args)
}

func renderReport(list *argv.List, args *cli.Args) {
	ui.Header()

	if args.WantSection("all") {
		ui.Section(fmt.Sprintf("tokens (%d)", list.Len()))
		renderList(list)
	}

	if args.WantSection("flags") {
		ui.Section("flags")
		renderList(list.Flags())
	}

	if args.WantSection("notflags") {
		ui.Section("not flags")
		renderList(list.NotFlags())
	}

	if args.WantSection("groups") {
		ui.Section("groups")
		renderGroups(list)
	}

	if args.WantSection("files") {
		ui.Section("files")
		renderPaths(filePaths(list, args.Absolute))
	}

	if args.WantSection("notfiles") {
		ui.Section("not files")
		renderList(list.NotFiles())
	}

	ui.Footer()
}

func renderList(list *argv.List) {
	if list.Len() == 0 {
		ui.Empty()
		return
	}
	for _, tok := range list.All() {
		ui.Item(tok)
	}
}

func renderGroups(list *argv.List) {
	groups := list.Grouped()
	for _, key := range groups.Keys() {
		lst, ok := groups.Get(key)
		if !ok {
			continue
		}
		label := key
		if key == argv.UngroupedKey {
			label = "(ungrouped)"
		}
		ui.KeyValue(label, strings.Join(lst.All(), " "))
	}
}

func renderPaths(paths []string) {
	if len(paths) == 0 {
		ui.Empty()
		return
	}
	for _, p := range paths {
		ui.Item(p)
	}
}

func filePaths(list *argv.List, absolute bool) []string {
	if absolute {
		return list.FilesAbs()
	}
	return list.Files()
}

func showHelp() {
	help := `argq - inspect a command-line argument list

USAGE:
    argq [OPTIONS] [--] TOKEN...

OPTIONS:
    --absolute             Report file matches as absolute paths
    --section NAME         Limit report to a section (repeatable)
                           Sections: all, flags, notflags, groups,
                           files, notfiles
    -h, --help             Show this help message
    --version              Show version information

EXAMPLES:
    # Full report for a token list
    argq -- -e prod deploy.sh

    # Just the flag groups
    argq --section groups -- -a 1 2 -b 3

    # Which tokens resolve to real files, as absolute paths
    argq --absolute --section files -- '*.txt' notes.md`
	fmt.Println(help)
}
