// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package animate

import (
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
)

// PointerEvent is a pointer entering or leaving an interactive control.
type PointerEvent struct {

	// Type is [events.MouseEnter] or [events.MouseLeave].
	Type events.Types

	// Control is the name of the control the event is for.
	Control string
}

// PointerReceiver is anything that can receive pointer events.
type PointerReceiver interface {
	HandlePointer(ev PointerEvent)
}

// Target is something whose scale, color and rotation can be animated.
type Target interface {
	Scale() math32.Vector3
	SetScale(s math32.Vector3)
	Color() color.RGBA
	SetColor(c color.RGBA)
	Rotation() math32.Quat
	SetRotation(q math32.Quat)
}

// HoverConfig configures the hover transitions of a control.
type HoverConfig struct {

	// Scale is whether to animate the scale.
	Scale bool

	// ScaleMultiplier is the factor applied to the original scale while hovered.
	ScaleMultiplier float32

	// Color is whether to animate the color.
	Color bool

	// HoverColor is the color while hovered.
	HoverColor color.RGBA

	// Rotation is whether to animate the rotation.
	Rotation bool

	// RotationAmount is the rotation about Z while hovered, in degrees.
	RotationAmount float32

	// Duration is how long each transition takes.
	Duration time.Duration
}

// DefaultHoverConfig returns the default hover configuration:
// a 10% grow to white over 0.2s without rotation.
func DefaultHoverConfig() HoverConfig {
	return HoverConfig{
		Scale:           true,
		ScaleMultiplier: 1.1,
		Color:           true,
		HoverColor:      color.RGBA{255, 255, 255, 255},
		RotationAmount:  5,
		Duration:        200 * time.Millisecond,
	}
}

// Hover animates a target toward its hover values when the pointer
// enters it and back to its original values when the pointer leaves.
type Hover struct {
	HoverConfig

	// Target is what is being animated.
	Target Target

	// Group is passed to the [Animator] with every transition.
	Group any

	// Animator runs the transitions.
	Animator *Animator

	// Hovered is whether the pointer is over the target.
	Hovered bool

	origScale    math32.Vector3
	origColor    color.RGBA
	origRotation math32.Quat
}

// NewHover returns a new hover controller for the target, capturing its
// current scale, color and rotation as the original values.
func NewHover(an *Animator, tg Target, group any, cfg HoverConfig) *Hover {
	return &Hover{
		HoverConfig:  cfg,
		Target:       tg,
		Group:        group,
		Animator:     an,
		origScale:    tg.Scale(),
		origColor:    tg.Color(),
		origRotation: tg.Rotation(),
	}
}

// HandlePointer starts the transitions for a pointer event.
// Other event types are ignored.
func (h *Hover) HandlePointer(ev PointerEvent) {
	switch ev.Type {
	case events.MouseEnter:
		h.Hovered = true
		rot := h.origRotation
		rot.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.DegToRad(h.RotationAmount)))
		h.start(h.origScale.MulScalar(h.ScaleMultiplier), h.HoverColor, rot)
	case events.MouseLeave:
		h.Hovered = false
		h.start(h.origScale, h.origColor, h.origRotation)
	default:
		slog.Debug("animate: hover ignoring event", "type", ev.Type, "control", ev.Control)
	}
}

// start starts a transition from the current values toward the given
// ones for each enabled property. The resting values are always the
// original ones, so a snapped transition leaves the target un-hovered.
func (h *Hover) start(scale math32.Vector3, clr color.RGBA, rot math32.Quat) {
	tg := h.Target
	if h.Scale {
		tw := NewTween(tg.Scale(), scale, h.Duration, LerpVector3, tg.SetScale)
		tw.Rest = h.origScale
		h.Animator.Start(Key{tg, Scale}, h.Group, tw)
	}
	if h.Color {
		tw := NewTween(tg.Color(), clr, h.Duration, LerpRGBA, tg.SetColor)
		tw.Rest = h.origColor
		h.Animator.Start(Key{tg, Color}, h.Group, tw)
	}
	if h.Rotation {
		tw := NewTween(tg.Rotation(), rot, h.Duration, LerpQuat, tg.SetRotation)
		tw.Rest = h.origRotation
		h.Animator.Start(Key{tg, Rotation}, h.Group, tw)
	}
}
