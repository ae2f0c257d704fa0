// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package throttle decides when something derived from the camera pose
// needs to be recomputed, so that it is not redone on every frame.
// An update is due when enough time has passed since the last one, or
// when the camera has moved or turned past a threshold.
package throttle

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/viewport"
)

// Policy holds the limits that decide when an update is due.
type Policy struct {

	// MinInterval is the time after which an update is due even when
	// the camera has not moved at all.
	MinInterval time.Duration

	// MovementThreshold is the camera travel distance, in world units,
	// beyond which an update is due.
	MovementThreshold float32

	// RotationThreshold is the camera rotation, in degrees,
	// beyond which an update is due.
	RotationThreshold float32
}

// DefaultPolicy returns a policy that refreshes every 100 msec, or when
// the camera moves more than 0.01 units or turns more than 0.1 degrees.
func DefaultPolicy() Policy {
	return Policy{
		MinInterval:       100 * time.Millisecond,
		MovementThreshold: 0.01,
		RotationThreshold: 0.1,
	}
}

// Moved returns whether the camera has moved or turned past the policy
// thresholds between the two poses.
func (po *Policy) Moved(pose, last viewport.Pose) bool {
	if pose.Pos.Sub(last.Pos).Length() > po.MovementThreshold {
		return true
	}
	return AngleBetween(pose.Quat, last.Quat) > po.RotationThreshold
}

// Baseline is the camera pose and time of the last real update.
// The zero value has no baseline, so that the first check is always due.
type Baseline struct {

	// Pose is the camera pose used for the last update.
	Pose viewport.Pose

	// Time is when the last update happened.
	Time time.Time

	set bool
}

// IsSet returns whether an update has been recorded.
func (bl *Baseline) IsSet() bool {
	return bl.set
}

// Record stores the camera pose and time of an update that actually
// happened. It must only be called after the pose was really recomputed.
func (bl *Baseline) Record(now time.Time, pose viewport.Pose) {
	bl.Pose = pose
	bl.Time = now
	bl.set = true
}

// Reset clears the baseline, making the next check due.
func (bl *Baseline) Reset() {
	*bl = Baseline{}
}

// ShouldUpdate returns whether an update is due at time now for the
// given camera pose, relative to the last recorded update.
// It has no side effects.
func ShouldUpdate(now time.Time, pose viewport.Pose, last *Baseline, po *Policy) bool {
	if !last.set {
		return true
	}
	if now.Sub(last.Time) > po.MinInterval {
		return true
	}
	return po.Moved(pose, last.Pose)
}

// Detector pairs a [Policy] with the [Baseline] it is applied against.
type Detector struct {
	Policy   Policy
	Baseline Baseline
}

// NewDetector returns a detector using the given policy, with no baseline.
func NewDetector(po Policy) *Detector {
	return &Detector{Policy: po}
}

// ShouldUpdate returns whether an update is due; see [ShouldUpdate].
func (dt *Detector) ShouldUpdate(now time.Time, pose viewport.Pose) bool {
	return ShouldUpdate(now, pose, &dt.Baseline, &dt.Policy)
}

// Record records an update; see [Baseline.Record].
func (dt *Detector) Record(now time.Time, pose viewport.Pose) {
	dt.Baseline.Record(now, pose)
}

// AngleBetween returns the angle in degrees that separates two
// unit quaternion orientations. It uses the vector part of the relative
// rotation, which stays accurate for the small angles that matter here.
func AngleBetween(a, b math32.Quat) float32 {
	w := a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
	x := a.W*b.X - a.X*b.W - a.Y*b.Z + a.Z*b.Y
	y := a.W*b.Y + a.X*b.Z - a.Y*b.W - a.Z*b.X
	z := a.W*b.Z - a.X*b.Y + a.Y*b.X - a.Z*b.W
	s := math32.Sqrt(x*x + y*y + z*z)
	return math32.RadToDeg(2 * math32.Atan2(s, math32.Abs(w)))
}
