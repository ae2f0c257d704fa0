// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package look turns pointer movement into a camera orientation,
// as yaw about the world up axis followed by pitch about the camera's
// right axis. Positive pitch looks up.
package look

import (
	"time"

	"cogentcore.org/core/math32"
)

// Controller accumulates yaw and pitch from pointer deltas.
type Controller struct {

	// Speed is the rotation in degrees per pointer unit per 60 Hz frame.
	Speed float32 `default:"5"`

	// PitchLimit is the maximum pitch up or down, in degrees.
	PitchLimit float32 `default:"80"`

	// Yaw is the current rotation about the world up axis, in degrees.
	// Positive yaw turns left.
	Yaw float32

	// Pitch is the current rotation about the camera right axis, in degrees.
	Pitch float32
}

// NewController returns a new controller with default speed and pitch limit.
func NewController() *Controller {
	return &Controller{Speed: 5, PitchLimit: 80}
}

// Apply accumulates the pointer delta over the frame time dt and returns
// the resulting orientation. The rate is normalized to 60 frames per second
// so that the same pointer motion turns the same amount at any frame rate.
// Moving the pointer right turns right, and moving it up looks up.
func (lc *Controller) Apply(delta math32.Vector2, dt time.Duration) math32.Quat {
	f := lc.Speed * float32(dt.Seconds()) * 60
	lc.Yaw -= delta.X * f
	lc.Pitch += delta.Y * f
	lc.Pitch = math32.Clamp(lc.Pitch, -lc.PitchLimit, lc.PitchLimit)
	return lc.Orientation()
}

// Orientation returns the current orientation.
func (lc *Controller) Orientation() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(lc.Yaw))
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(lc.Pitch)))
	return q
}

// Reset looks straight ahead down -Z.
func (lc *Controller) Reset() {
	lc.Yaw = 0
	lc.Pitch = 0
}
