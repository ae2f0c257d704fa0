// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import "fmt"

// Events are the discrete UI events that drive a [Coordinator].
type Events int32 //enums:enum

const (
	// HomePressed returns to the overview.
	HomePressed Events = iota

	// VariantSelected selects the variant at [Event.Index].
	VariantSelected

	// NextVariantPressed selects the variant after the active one.
	NextVariantPressed

	// NarrationToggled shows or hides the narration panel.
	NarrationToggled

	// ResetRequested returns to the initial state.
	ResetRequested
)

// Event is one UI event record.
type Event struct {

	// Type is the kind of event.
	Type Events

	// Index is the variant index for [VariantSelected].
	Index int
}

func (ev Event) String() string {
	if ev.Type == VariantSelected {
		return fmt.Sprintf("%v(%d)", ev.Type, ev.Index)
	}
	return ev.Type.String()
}

// Dispatch applies the event to the coordinator. It returns the error
// from the operation the event maps to, if any.
func (c *Coordinator) Dispatch(ev Event) error {
	switch ev.Type {
	case HomePressed:
		c.Home()
	case VariantSelected:
		return c.SelectVariant(ev.Index)
	case NextVariantPressed:
		return c.NextVariant()
	case NarrationToggled:
		return c.ToggleNarration()
	case ResetRequested:
		c.Reset()
	default:
		return fmt.Errorf("coord: unknown event type %v", ev.Type)
	}
	return nil
}
