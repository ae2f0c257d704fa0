// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/core/math32"
)

// Result is the outcome of [Project].
type Result struct {

	// Pose is the world pose for the element. Pose.Quat is only
	// meaningful when Facing is true.
	Pose

	// Facing is whether a facing rotation was computed. When it is false
	// only the position should be applied, leaving the element's own
	// orientation alone.
	Facing bool

	// Viewport is the resolved, clamped viewport coordinate.
	Viewport math32.Vector2
}

// Project computes where the element described by sp belongs in world
// space for a camera with projection cm at the given pose. It has no
// side effects.
func Project(sp *Spec, cm *Camera, pose Pose) Result {
	vp := sp.Resolve()
	res := Result{Viewport: vp, Facing: sp.FaceCamera}
	res.Pos = cm.Unproject(vp, sp.StandoffDistance(), pose)
	if sp.FaceCamera {
		res.Quat = FacingRotation(res.Pos, pose.Pos, sp.FlipFacing)
	} else {
		res.Quat.SetIdentity()
	}
	return res
}

// FacingRotation returns the rotation for something at position from
// whose forward (negative Z) axis points at position to, keeping world Y up.
// If flip is set the result is turned a further 180 degrees about the
// local Y axis, so that forward points away from to.
func FacingRotation(from, to math32.Vector3, flip bool) math32.Quat {
	var q math32.Quat
	q.SetFromRotationMatrix(math32.NewLookAt(from, to, math32.Vec3(0, 1, 0)))
	if flip {
		q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(180)))
	}
	return q
}
