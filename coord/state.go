// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import "fmt"

// ViewModes are the mutually exclusive modes of the viewer. The mode is
// the single source of truth for which panels are showing.
type ViewModes int32 //enums:enum

const (
	// Overview shows the overview (map) panel and the control panel,
	// with the active variant visible behind them.
	Overview ViewModes = iota

	// Detail shows the detail panel for the active variant.
	Detail

	// Narration shows the narration panel on its own.
	Narration
)

// State is the state owned by a [Coordinator].
type State struct {

	// Mode is the current view mode.
	Mode ViewModes

	// Active is the index of the active content variant.
	Active int

	// Narration is whether the narration panel is showing;
	// it is true exactly when Mode is [Narration].
	Narration bool

	// Prior is the mode to return to when narration is toggled off.
	Prior ViewModes

	// Fallback is set when no content variants are registered, in which
	// case the viewer stays in [Overview] with the overview panel showing.
	Fallback bool
}

// Snapshot is a read-only copy of the coordinator state for
// diagnostics and telemetry.
type Snapshot struct {
	Mode      ViewModes
	Active    int
	Narration bool
	Variants  int
	Fallback  bool
}

func (s Snapshot) String() string {
	return fmt.Sprintf("mode: %v variant: %d/%d narration: %v fallback: %v", s.Mode, s.Active, s.Variants, s.Narration, s.Fallback)
}
