// ABOUTME: Tunables loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mauromedda/terminput/pkg/decoder"
)

// Tunables holds the merged decoder configuration. Durations are
// milliseconds in the file; zero values mean "use the default".
type Tunables struct {
	EscapeTimeoutMS    int  `json:"escape_timeout_ms,omitempty"`
	MaxEscapeBuffer    int  `json:"max_escape_buffer,omitempty"`
	PasteHeuristic     bool `json:"paste_heuristic,omitempty"`
	PasteDebounceMS    int  `json:"paste_debounce_ms,omitempty"`
	PasteQuietPeriodMS int  `json:"paste_quiet_period_ms,omitempty"`
	PasteMinLength     int  `json:"paste_min_length,omitempty"`
	PasteCRMinLength   int  `json:"paste_cr_min_length,omitempty"`
	DragHeuristic      bool `json:"drag_heuristic,omitempty"`
	DragDebounceMS     int  `json:"drag_debounce_ms,omitempty"`
	BackslashWindowMS  int  `json:"backslash_window_ms,omitempty"`
	AltDecompose       bool `json:"alt_decompose,omitempty"`
}

// Load reads and merges global and project-local tunables.
// Project values override global values.
func Load(projectRoot string) (*Tunables, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads Tunables from a JSON file. Returns zero Tunables if the
// file does not exist.
func loadFile(path string) (*Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Tunables{}, err
	}
	var t Tunables
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &t, nil
}

// merge overlays project tunables onto global tunables.
// Non-zero project values override global values.
func merge(global, project *Tunables) *Tunables {
	if global == nil {
		global = &Tunables{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.EscapeTimeoutMS != 0 {
		result.EscapeTimeoutMS = project.EscapeTimeoutMS
	}
	if project.MaxEscapeBuffer != 0 {
		result.MaxEscapeBuffer = project.MaxEscapeBuffer
	}
	if project.PasteHeuristic {
		result.PasteHeuristic = true
	}
	if project.PasteDebounceMS != 0 {
		result.PasteDebounceMS = project.PasteDebounceMS
	}
	if project.PasteQuietPeriodMS != 0 {
		result.PasteQuietPeriodMS = project.PasteQuietPeriodMS
	}
	if project.PasteMinLength != 0 {
		result.PasteMinLength = project.PasteMinLength
	}
	if project.PasteCRMinLength != 0 {
		result.PasteCRMinLength = project.PasteCRMinLength
	}
	if project.DragHeuristic {
		result.DragHeuristic = true
	}
	if project.DragDebounceMS != 0 {
		result.DragDebounceMS = project.DragDebounceMS
	}
	if project.BackslashWindowMS != 0 {
		result.BackslashWindowMS = project.BackslashWindowMS
	}
	if project.AltDecompose {
		result.AltDecompose = true
	}

	return &result
}

// Apply overlays the non-zero tunables onto opts and returns the result.
func (t *Tunables) Apply(opts decoder.Options) decoder.Options {
	if t == nil {
		return opts
	}
	if t.EscapeTimeoutMS != 0 {
		opts.EscapeTimeout = time.Duration(t.EscapeTimeoutMS) * time.Millisecond
	}
	if t.MaxEscapeBuffer != 0 {
		opts.MaxEscapeBuffer = t.MaxEscapeBuffer
	}
	if t.PasteHeuristic {
		opts.PasteHeuristic = true
	}
	if t.PasteDebounceMS != 0 {
		opts.PasteDebounce = time.Duration(t.PasteDebounceMS) * time.Millisecond
	}
	if t.PasteQuietPeriodMS != 0 {
		opts.PasteQuietPeriod = time.Duration(t.PasteQuietPeriodMS) * time.Millisecond
	}
	if t.PasteMinLength != 0 {
		opts.PasteMinLength = t.PasteMinLength
	}
	if t.PasteCRMinLength != 0 {
		opts.PasteCRMinLength = t.PasteCRMinLength
	}
	if t.DragHeuristic {
		opts.DragHeuristic = true
	}
	if t.DragDebounceMS != 0 {
		opts.DragDebounce = time.Duration(t.DragDebounceMS) * time.Millisecond
	}
	if t.BackslashWindowMS != 0 {
		opts.BackslashWindow = time.Duration(t.BackslashWindowMS) * time.Millisecond
	}
	if t.AltDecompose {
		opts.AltDecompose = true
	}
	return opts
}
