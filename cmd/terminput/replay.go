// ABOUTME: Replay subcommand: feeds a YAML-scripted chunk sequence through the decoder.
// ABOUTME: Prints decoded events to stdout; useful for reproducing terminal-specific traces offline.

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/terminput/pkg/decoder"
	"github.com/mauromedda/terminput/pkg/keys"
)

// replayScript is the YAML document format: a list of raw chunks with
// optional inter-chunk delays, plus optional decoder toggles.
type replayScript struct {
	PasteHeuristic bool          `yaml:"paste_heuristic"`
	DragHeuristic  bool          `yaml:"drag_heuristic"`
	Chunks         []replayChunk `yaml:"chunks"`
}

type replayChunk struct {
	Data    string `yaml:"data"`
	DelayMS int    `yaml:"delay_ms"`
}

// runReplay executes `terminput replay <script.yaml>`.
func runReplay(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: terminput replay <script.yaml>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	var script replayScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	if len(script.Chunks) == 0 {
		return fmt.Errorf("script has no chunks")
	}

	d := decoder.New(decoder.Options{
		PasteHeuristic: script.PasteHeuristic,
		DragHeuristic:  script.DragHeuristic,
	})

	unsubscribe := d.Subscribe(func(ev keys.Event) {
		fmt.Println(formatEvent(ev))
	})
	defer unsubscribe()

	for _, c := range script.Chunks {
		if c.DelayMS > 0 {
			time.Sleep(time.Duration(c.DelayMS) * time.Millisecond)
		}
		d.FeedRaw([]byte(c.Data))
	}

	// Let debounce and escape timers settle before the teardown flush.
	time.Sleep(settleDelay(script))
	d.Close()
	return nil
}

// settleDelay picks a wait long enough for every armed timer to fire.
func settleDelay(script replayScript) time.Duration {
	delay := decoder.DefaultEscapeTimeout + decoder.DefaultBackslashWindow
	if script.PasteHeuristic {
		delay += decoder.DefaultPasteDebounce
	}
	if script.DragHeuristic {
		delay += decoder.DefaultDragDebounce
	}
	return delay
}
