// ABOUTME: Protocol subcommand: renders the embedded sequence reference with glamour.

package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

//go:embed protocol.md
var protocolDoc string

// runProtocol executes `terminput protocol`.
func runProtocol() error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := renderer.Render(protocolDoc)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	fmt.Print(out)
	return nil
}
