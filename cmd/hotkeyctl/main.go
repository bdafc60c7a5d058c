// Package main is the entry point for hotkeyctl, a small tool that loads
// shortcut configuration files, validates them, and prints their display
// labels.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dshills/hotkey/config"
	"github.com/dshills/hotkey/shortcut"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		watch       = flag.Bool("watch", false, "reload and re-print when the file changes")
		strict      = flag.Bool("strict", true, "fail on duplicate modifier constraints")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println("hotkeyctl", version)
		return 0
	}

	if flag.NArg() != 1 {
		usage()
		return 2
	}
	path := flag.Arg(0)

	shortcut.SetStrict(*strict)

	groups, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	printGroups(groups)

	if !*watch {
		return 0
	}

	watcher, err := config.Watch(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer watcher.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sig:
			return 0
		case groups := <-watcher.Groups():
			fmt.Println("---")
			printGroups(groups)
		case err := <-watcher.Errors():
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

// printGroups writes one line per group, sorted by action name.
func printGroups(groups map[string]shortcut.Group) {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g := groups[name]
		mode := "single-press"
		if g.Repeats() {
			mode = "repeating"
		}
		fmt.Printf("%-24s %-32s %s\n", name, g.Label(), mode)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hotkeyctl [flags] <file>

Loads a shortcut configuration file (.json, .toml, .yaml, .yml, or .lua),
validates it, and prints each group's display label.

Flags:
`)
	flag.PrintDefaults()
}
