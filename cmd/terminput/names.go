// ABOUTME: Names subcommand: fuzzy lookup over the key names the decoder can emit.

package main

import (
	"fmt"

	"github.com/mauromedda/terminput/pkg/fuzzy"
	"github.com/mauromedda/terminput/pkg/keys"
)

// runNames executes `terminput names [query]`. Without a query it lists
// every known key name.
func runNames(args []string) error {
	names := keys.Names()

	if len(args) == 0 {
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: terminput names [query]")
	}

	matches := fuzzy.Find(args[0], names)
	if len(matches) == 0 {
		return fmt.Errorf("no key name matches %q", args[0])
	}
	for _, m := range matches {
		fmt.Println(m.Str)
	}
	return nil
}
