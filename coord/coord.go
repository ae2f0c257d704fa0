// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord coordinates which UI surfaces are showing and which
// content variant is active. Exactly one of the overview (with its
// control panel), the detail panel or the narration panel is in front
// at any time, and exactly one variant is visible.
//
// Every operation sets the full set of surfaces from the [State], so
// repeating an event re-asserts the same visibility rather than
// toggling it. The coordinator never computes poses; that is what the
// anchors do.
package coord

//go:generate core generate

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
)

var (
	// ErrVariantRange is returned when selecting a variant index that
	// is not registered.
	ErrVariantRange = errors.New("coord: variant index out of range")

	// ErrNoVariants is returned for operations that need a variant when
	// none are registered.
	ErrNoVariants = errors.New("coord: no content variants registered")
)

// Visibler is anything that can be shown or hidden.
type Visibler interface {
	SetVisible(on bool)
}

// Snapper settles in-flight transitions belonging to a group at their
// resting values. It is implemented by animate.Animator.
type Snapper interface {
	SnapGroup(group any) int
}

// Panels are the UI surfaces driven by a [Coordinator].
// Any of them may be nil, which is logged as a configuration problem.
type Panels struct {

	// Overview is the overview (map) panel.
	Overview Visibler

	// Controls is the control-button panel shown with the overview.
	Controls Visibler

	// Detail is the detail panel shown for the active variant.
	Detail Visibler

	// Narration is the narration panel.
	Narration Visibler
}

// Coordinator owns the view mode state machine.
type Coordinator struct {

	// Panels are the surfaces being coordinated.
	Panels Panels

	// Transitions, if set, is used to snap the in-flight transitions
	// of panels when they are hidden.
	Transitions Snapper

	variants []Visibler
	state    State
}

// New returns a new coordinator for the given panels and variants,
// in the initial [Overview] state with variant 0 active.
func New(panels Panels, variants ...Visibler) *Coordinator {
	c := &Coordinator{Panels: panels}
	c.checkPanels()
	c.SetVariants(variants...)
	return c
}

// checkPanels logs any missing panels.
func (c *Coordinator) checkPanels() {
	for name, p := range map[string]Visibler{"overview": c.Panels.Overview, "controls": c.Panels.Controls, "detail": c.Panels.Detail, "narration": c.Panels.Narration} {
		if isNil(p) {
			slog.Warn("coord: missing panel", "panel", name)
		}
	}
}

// SetVariants replaces the registered variants and resets to the
// initial state.
func (c *Coordinator) SetVariants(variants ...Visibler) {
	c.variants = variants
	c.Reset()
}

// NumVariants returns the number of registered variants.
func (c *Coordinator) NumVariants() int {
	return len(c.variants)
}

// State returns a copy of the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Snapshot returns a read-only summary of the current state.
func (c *Coordinator) Snapshot() Snapshot {
	return Snapshot{Mode: c.state.Mode, Active: c.state.Active, Narration: c.state.Narration, Variants: len(c.variants), Fallback: c.state.Fallback}
}

// Reset returns to the initial state: [Overview] with variant 0 active.
// Without any variants it enters fallback mode.
func (c *Coordinator) Reset() {
	c.state = State{Mode: Overview, Prior: Overview, Fallback: len(c.variants) == 0}
	if c.state.Fallback {
		slog.Error("coord: no content variants registered, running in fallback mode")
	}
	c.apply()
}

// Home returns to the [Overview], keeping the active variant visible
// behind it. Calling it again in the overview re-asserts the same panels.
func (c *Coordinator) Home() {
	slog.Debug("coord: home", "from", c.state.Mode, "variant", c.state.Active)
	c.state.Mode = Overview
	c.state.Narration = false
	c.state.Prior = Overview
	c.apply()
}

// SelectVariant makes variant i the only visible variant and shows its
// detail panel, hiding narration and the overview. An index outside the
// registered variants is rejected with [ErrVariantRange] and changes nothing.
func (c *Coordinator) SelectVariant(i int) error {
	n := len(c.variants)
	if n == 0 {
		slog.Warn("coord: select without variants", "index", i)
		return ErrNoVariants
	}
	if i < 0 || i >= n {
		slog.Warn("coord: variant index out of range", "index", i, "variants", n)
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVariantRange, i, n)
	}
	slog.Debug("coord: select", "from", c.state.Mode, "variant", i)
	c.state.Active = i
	c.state.Mode = Detail
	c.state.Narration = false
	c.state.Prior = Detail
	c.apply()
	return nil
}

// NextVariant selects the variant after the active one, wrapping around.
func (c *Coordinator) NextVariant() error {
	n := len(c.variants)
	if n == 0 {
		return ErrNoVariants
	}
	return c.SelectVariant((c.state.Active + 1) % n)
}

// ToggleNarration shows the narration panel on its own, or if it is
// already showing, hides it and restores the panels of the mode that
// was active before it. Narration is not available in fallback mode.
func (c *Coordinator) ToggleNarration() error {
	if c.state.Fallback {
		slog.Warn("coord: narration unavailable in fallback mode")
		return ErrNoVariants
	}
	if c.state.Mode == Narration {
		c.state.Mode = c.state.Prior
		c.state.Narration = false
	} else {
		c.state.Prior = c.state.Mode
		c.state.Mode = Narration
		c.state.Narration = true
	}
	slog.Debug("coord: narration", "showing", c.state.Narration, "mode", c.state.Mode)
	c.apply()
	return nil
}

// apply sets every surface and variant from the state. Surfaces being
// hidden are set first, so that their transitions are snapped before
// anything new is shown.
func (c *Coordinator) apply() {
	m := c.state.Mode
	overview := m == Overview
	show := map[Visibler]bool{}
	panels := []struct {
		p  Visibler
		on bool
	}{
		{c.Panels.Overview, overview},
		{c.Panels.Controls, overview},
		{c.Panels.Detail, m == Detail},
		{c.Panels.Narration, m == Narration},
	}
	for _, pn := range panels {
		if isNil(pn.p) {
			continue
		}
		show[pn.p] = show[pn.p] || pn.on
	}
	for _, pn := range panels {
		if isNil(pn.p) || show[pn.p] {
			continue
		}
		pn.p.SetVisible(false)
		if c.Transitions != nil {
			c.Transitions.SnapGroup(pn.p)
		}
	}
	for i, v := range c.variants {
		if i != c.state.Active && !isNil(v) {
			v.SetVisible(false)
		}
	}
	if c.state.Active < len(c.variants) && !isNil(c.variants[c.state.Active]) {
		c.variants[c.state.Active].SetVisible(true)
	}
	for _, pn := range panels {
		if !isNil(pn.p) && show[pn.p] {
			pn.p.SetVisible(true)
		}
	}
}

// isNil returns whether v is nil, including a typed nil pointer.
func isNil(v Visibler) bool {
	if v == nil {
		return true
	}
	return reflectx.IsNil(reflect.ValueOf(v))
}
