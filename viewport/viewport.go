// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewport maps normalized screen-space placements onto
// world-space poses in front of a camera. Everything here is a pure
// function of its inputs: a [Spec] describing where on the screen an
// element sits, a [Camera] describing the projection, and the camera
// [Pose] sampled for the current frame.
package viewport

//go:generate core generate

import (
	"cogentcore.org/core/math32"
)

// Placements are the named screen positions that an anchored element can take.
type Placements int32 //enums:enum

const (
	// TopLeft is inset 10% from the top and left edges of the viewport.
	TopLeft Placements = iota

	// TopRight is inset 10% from the top and right edges of the viewport.
	TopRight

	// BottomLeft is inset 10% from the bottom and left edges of the viewport.
	BottomLeft

	// BottomRight is inset 10% from the bottom and right edges of the viewport.
	BottomRight

	// Center is the middle of the viewport.
	Center

	// Custom uses the [Spec.CustomX] and [Spec.CustomY] coordinates.
	Custom
)

// placementFractions are the normalized viewport coordinates of the
// named placements, with 0,0 at the bottom-left corner.
var placementFractions = [...]math32.Vector2{
	TopLeft:     {X: 0.1, Y: 0.9},
	TopRight:    {X: 0.9, Y: 0.9},
	BottomLeft:  {X: 0.1, Y: 0.1},
	BottomRight: {X: 0.9, Y: 0.1},
	Center:      {X: 0.5, Y: 0.5},
}

// DefaultDistance is the standoff distance used when a [Spec] does not
// specify a positive one.
const DefaultDistance = 5

// Spec is the screen-space placement of one anchored element.
type Spec struct {

	// Placement selects a named position, or Custom to use CustomX, CustomY.
	Placement Placements

	// CustomX is the horizontal viewport fraction used by Custom placement.
	CustomX float32

	// CustomY is the vertical viewport fraction used by Custom placement.
	CustomY float32

	// Offset is added to the resolved viewport coordinate before clamping.
	Offset math32.Vector2

	// Distance is how far in front of the camera the element sits,
	// in world units. It must be positive.
	Distance float32

	// FaceCamera orients the element toward the camera position
	// whenever its pose is recomputed.
	FaceCamera bool

	// FlipFacing additionally turns the element 180 degrees about its
	// vertical axis after facing the camera.
	FlipFacing bool
}

// DefaultSpec returns the default placement: top-right, 5 units
// in front of the camera, billboarded with the facing flipped.
func DefaultSpec() Spec {
	return Spec{
		Placement:  TopRight,
		CustomX:    0.9,
		CustomY:    0.9,
		Distance:   DefaultDistance,
		FaceCamera: true,
		FlipFacing: true,
	}
}

// Resolve returns the normalized viewport coordinate for the spec,
// including the offset. Both axes are always within [0,1], whatever
// the offset or custom values are.
func (sp *Spec) Resolve() math32.Vector2 {
	var v math32.Vector2
	switch {
	case sp.Placement == Custom:
		v = math32.Vec2(sp.CustomX, sp.CustomY)
	case sp.Placement >= 0 && int(sp.Placement) < len(placementFractions):
		v = placementFractions[sp.Placement]
	default:
		return placementFractions[TopRight]
	}
	v = v.Add(sp.Offset)
	return math32.Vec2(clamp01(v.X), clamp01(v.Y))
}

// StandoffDistance returns the distance to use for projection, falling
// back on [DefaultDistance] when Distance is not positive.
func (sp *Spec) StandoffDistance() float32 {
	if sp.Distance > 0 {
		return sp.Distance
	}
	return DefaultDistance
}

// clamp01 clamps x to [0,1]; NaN maps to 0.
func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
