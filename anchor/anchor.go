// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anchor keeps elements at a fixed place on the screen while
// the camera moves, by recomputing their world pose from the camera
// pose whenever the throttle says that the old one is stale.
//
// An [Anchor] knows nothing about which panels are showing; it only
// maps its [viewport.Spec] and the camera onto its [Element].
package anchor

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/throttle"
	"cogentcore.org/spatial/viewport"
)

// ErrDistance is returned for a standoff distance that is not positive.
var ErrDistance = errors.New("anchor: distance must be positive")

// Element is the thing whose world pose an [Anchor] maintains.
type Element interface {

	// SetPosition sets the world position.
	SetPosition(pos math32.Vector3)

	// SetOrientation sets the world orientation.
	SetOrientation(q math32.Quat)
}

// Anchor places one [Element] relative to a camera according to a
// [viewport.Spec]. An anchor without a camera or element is unattached:
// ticking it does nothing.
type Anchor struct {

	// Name identifies the anchor in logs and configuration.
	Name string

	// Spec is the screen-space placement. Use the setters to change it,
	// so that the element is updated right away.
	Spec viewport.Spec

	// Element receives the computed pose.
	Element Element

	// Camera is the camera the element is anchored to.
	Camera *viewport.Camera

	// EveryFrame recomputes the pose on every tick, bypassing the throttle.
	EveryFrame bool

	// Throttle decides when a tick needs to recompute the pose.
	Throttle throttle.Detector

	// Last is the most recent result applied to the element.
	Last viewport.Result

	// Updates counts how many times the pose has been recomputed.
	Updates int

	// lastTick is the time of the most recent tick.
	lastTick time.Time

	// warned is set once the unattached warning has been logged.
	warned bool
}

// New returns a new anchor for the given element, using the given spec
// and throttle policy. It has no camera until [Anchor.SetCamera] is called.
func New(name string, el Element, sp viewport.Spec, po throttle.Policy) *Anchor {
	return &Anchor{Name: name, Element: el, Spec: sp, Throttle: throttle.Detector{Policy: po}}
}

// IsAttached returns whether the anchor has both a camera and an element.
func (an *Anchor) IsAttached() bool {
	return an.Camera != nil && an.Element != nil
}

// Tick is called once per frame with the camera pose for the frame.
// It recomputes and applies the element pose if the throttle says an
// update is due (or always, with [Anchor.EveryFrame]), and returns
// whether it did.
func (an *Anchor) Tick(now time.Time, pose viewport.Pose) bool {
	an.lastTick = now
	if !an.IsAttached() {
		if !an.warned {
			slog.Warn("anchor: not attached, ignoring ticks", "anchor", an.Name, "camera", an.Camera != nil, "element", an.Element != nil)
			an.warned = true
		}
		return false
	}
	if !an.EveryFrame && !an.Throttle.ShouldUpdate(now, pose) {
		return false
	}
	an.apply(pose)
	an.Throttle.Record(now, pose)
	return true
}

// ForceUpdate recomputes and applies the element pose for the given
// camera pose regardless of the throttle. It is used when the element
// becomes visible or its placement changes, so that a stale pose is
// never shown.
func (an *Anchor) ForceUpdate(pose viewport.Pose) {
	if !an.IsAttached() {
		return
	}
	an.apply(pose)
	if an.lastTick.IsZero() {
		an.Throttle.Baseline.Reset()
		return
	}
	an.Throttle.Record(an.lastTick, pose)
}

// update forces an update against the current pose of the camera.
func (an *Anchor) update() {
	if an.Camera == nil {
		return
	}
	an.ForceUpdate(an.Camera.Pose)
}

// apply projects the spec and sets the result on the element.
func (an *Anchor) apply(pose viewport.Pose) {
	res := viewport.Project(&an.Spec, an.Camera, pose)
	an.Element.SetPosition(res.Pos)
	if res.Facing {
		an.Element.SetOrientation(res.Quat)
	}
	an.Last = res
	an.Updates++
}

// SetPlacement sets a named placement and updates the element.
func (an *Anchor) SetPlacement(pl viewport.Placements) *Anchor {
	an.Spec.Placement = pl
	an.update()
	return an
}

// SetCustomPosition switches to [viewport.Custom] placement at the
// given viewport coordinates, clamped to [0,1], and updates the element.
func (an *Anchor) SetCustomPosition(x, y float32) *Anchor {
	an.Spec.Placement = viewport.Custom
	an.Spec.CustomX = math32.Clamp(x, 0, 1)
	an.Spec.CustomY = math32.Clamp(y, 0, 1)
	an.update()
	return an
}

// SetOffset sets the viewport offset and updates the element.
func (an *Anchor) SetOffset(x, y float32) *Anchor {
	an.Spec.Offset = math32.Vec2(x, y)
	an.update()
	return an
}

// SetDistance sets the standoff distance and updates the element.
// The distance must be positive.
func (an *Anchor) SetDistance(dist float32) error {
	if !(dist > 0) {
		return fmt.Errorf("%w: %v for %q", ErrDistance, dist, an.Name)
	}
	an.Spec.Distance = dist
	an.update()
	return nil
}

// SetFacing sets whether the element faces the camera, and whether
// that facing is flipped, and updates the element.
func (an *Anchor) SetFacing(face, flip bool) *Anchor {
	an.Spec.FaceCamera = face
	an.Spec.FlipFacing = flip
	an.update()
	return an
}

// SetSpec replaces the whole spec and updates the element.
func (an *Anchor) SetSpec(sp viewport.Spec) *Anchor {
	an.Spec = sp
	an.update()
	return an
}

// SetCamera binds the anchor to the given camera. If the anchor is
// attached as a result, the element is updated right away and the
// throttle baseline is set from the camera. A nil camera detaches it.
func (an *Anchor) SetCamera(cm *viewport.Camera) *Anchor {
	an.Camera = cm
	an.warned = false
	if cm == nil {
		an.Throttle.Baseline.Reset()
		return an
	}
	an.update()
	return an
}

// ResetToDefault restores the top-right placement at the default
// distance with no offset, and updates the element.
func (an *Anchor) ResetToDefault() *Anchor {
	an.Spec.Placement = viewport.TopRight
	an.Spec.Distance = viewport.DefaultDistance
	an.Spec.Offset = math32.Vector2{}
	an.update()
	return an
}
