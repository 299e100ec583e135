// ABOUTME: Interactive raw-mode inspector: reads stdin chunks, decodes them, prints one event per line.
// ABOUTME: Ctrl+D exits, as does a double Ctrl+C; a decode trace can run alongside via -debug-file.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/terminput/internal/telemetry"
	"github.com/mauromedda/terminput/pkg/decoder"
	"github.com/mauromedda/terminput/pkg/keys"
	"github.com/mauromedda/terminput/pkg/terminal"
)

// errDone signals a clean user-requested exit through the errgroup.
var errDone = errors.New("done")

// doubleCtrlCWindow is how close together two Ctrl+C presses must be to
// quit. A single Ctrl+C is just another event to inspect.
const doubleCtrlCWindow = time.Second

// runInspector owns the terminal for the session: raw mode in, reporting
// modes on, decode until the user quits, then restore and summarize.
func runInspector(opts decoder.Options) error {
	term := terminal.NewProcessTerminal()
	defer terminal.RestoreOnPanic(term)

	if err := term.EnterRawMode(); err != nil {
		return err
	}
	defer func() { _ = term.ExitRawMode() }()

	if err := terminal.EnableReporting(term); err != nil {
		return err
	}
	defer func() { _ = terminal.DisableReporting(term) }()

	tracker := telemetry.NewTracker()
	opts.Overflow = tracker.Record

	d := decoder.New(opts)
	defer d.Close()

	writeLine(term, banner())

	term.OnResize(func(w, h int) {
		writeLine(term, formatResize(w, h))
	})

	quit := make(chan struct{})
	var lastCtrlC time.Time
	var quitClosed bool

	unsubscribe := d.Subscribe(func(ev keys.Event) {
		writeLine(term, formatEvent(ev))

		exit := false
		if ev.Ctrl && ev.Name == "d" {
			exit = true
		}
		if ev.Ctrl && ev.Name == "c" {
			now := time.Now()
			if now.Sub(lastCtrlC) < doubleCtrlCWindow {
				exit = true
			}
			lastCtrlC = now
		}
		if exit && !quitClosed {
			quitClosed = true
			close(quit)
		}
	})
	defer unsubscribe()

	g, ctx := errgroup.WithContext(context.Background())
	chunks := make(chan []byte, 16)

	g.Go(func() error {
		defer terminal.RecoverGoroutine(term)
		buf := make([]byte, 4096)
		for {
			n, err := term.Read(buf)
			if err != nil {
				if errors.Is(err, os.ErrDeadlineExceeded) {
					return nil
				}
				return err
			}
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		for {
			select {
			case chunk := <-chunks:
				d.FeedRaw(chunk)
			case <-quit:
				// Unblock the pending stdin read so the group drains.
				_ = os.Stdin.SetReadDeadline(time.Now())
				return errDone
			case <-ctx.Done():
				return nil
			}
		}
	})

	err := g.Wait()
	_ = os.Stdin.SetReadDeadline(time.Time{})

	if errors.Is(err, errDone) {
		err = nil
	}

	printSummary(tracker.Summary())
	return err
}

// writeLine writes one display line. Raw mode needs an explicit CR.
func writeLine(term terminal.Terminal, s string) {
	_, _ = term.Write([]byte(s + "\r\n"))
}

// printSummary reports overflow telemetry after the terminal is restored.
func printSummary(s telemetry.Summary) {
	if s.Count == 0 {
		return
	}
	fmt.Printf("escape-buffer overflows: %d (total %d bytes, longest %d)\n",
		s.Count, s.TotalBytes, s.MaxLength)
	for _, sample := range s.Samples {
		fmt.Printf("  %4d bytes  %q\n", sample.Length, sample.Preview)
	}
}
