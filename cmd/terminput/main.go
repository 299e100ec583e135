// ABOUTME: CLI entry point for terminput with terminal crash recovery
// ABOUTME: Parses flags, loads tunables, dispatches to the inspector or a subcommand

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mauromedda/terminput/internal/config"
	tlog "github.com/mauromedda/terminput/internal/log"
	"github.com/mauromedda/terminput/internal/trace"
	"github.com/mauromedda/terminput/pkg/decoder"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Intercept subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "replay":
			if err := runReplay(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		case "names":
			if err := runNames(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		case "protocol":
			if err := runProtocol(); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)
		}
	}

	args := parseFlags()

	if args.version {
		fmt.Printf("terminput %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and starts the interactive inspector.
func run(args cliArgs) error {
	if args.verbose {
		tlog.SetLevel(tlog.LevelDebug)
	}

	opts, cleanup, err := buildOptions(args)
	if err != nil {
		return err
	}
	defer cleanup()

	return runInspector(opts)
}

// buildOptions assembles decoder options from config files and CLI flags.
// Flags win over config. The returned cleanup closes the debug trace file.
func buildOptions(args cliArgs) (decoder.Options, func(), error) {
	cleanup := func() {}
	var opts decoder.Options

	if !args.noConfig {
		cwd, err := os.Getwd()
		if err != nil {
			return opts, cleanup, fmt.Errorf("getting working directory: %w", err)
		}
		tun, err := config.Load(cwd)
		if err != nil {
			return opts, cleanup, err
		}
		opts = tun.Apply(opts)
	}

	if args.escapeTimeout > 0 {
		opts.EscapeTimeout = args.escapeTimeout
	}
	if args.pasteHeuristic {
		opts.PasteHeuristic = true
	}
	if args.drag {
		opts.DragHeuristic = true
	}
	if args.altDecompose {
		opts.AltDecompose = true
	}

	if args.debugFile != "" {
		f, err := os.OpenFile(args.debugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return opts, cleanup, fmt.Errorf("opening debug file: %w", err)
		}
		opts.Logger = slog.New(trace.NewHandler(f, slog.LevelDebug))
		// Raw mode owns the screen; warnings go to the trace file too.
		tlog.SetOutput(f)
		cleanup = func() {
			tlog.SetOutput(os.Stderr)
			_ = f.Close()
		}
	}

	return opts, cleanup, nil
}
