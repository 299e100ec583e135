// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -verbose, -debug-file, heuristic toggles, -escape-timeout, -version

package main

import (
	"flag"
	"time"
)

type cliArgs struct {
	verbose        bool
	version        bool
	noConfig       bool
	debugFile      string
	pasteHeuristic bool
	drag           bool
	altDecompose   bool
	escapeTimeout  time.Duration
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")
	flag.BoolVar(&args.noConfig, "no-config", false, "Skip loading .terminput.json files")
	flag.StringVar(&args.debugFile, "debug-file", "", "Write a JSONL decode trace to this file")
	flag.BoolVar(&args.pasteHeuristic, "paste-heuristic", false, "Enable the unmarked-paste heuristic")
	flag.BoolVar(&args.drag, "drag", false, "Enable the file-drag quote heuristic")
	flag.BoolVar(&args.altDecompose, "alt-decompose", false, "Extend the Option-key remap with NFD decomposition")
	flag.DurationVar(&args.escapeTimeout, "escape-timeout", 0, "Ambiguous escape-prefix wait (0 = default)")

	flag.Parse()
	return args
}
