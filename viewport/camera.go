// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewport

import (
	"cogentcore.org/core/math32"
)

// Pose is a position and orientation in world space. Orientation
// follows the camera convention: with an identity Quat the element
// looks down the negative Z axis with positive Y up.
type Pose struct {

	// Pos is the world position.
	Pos math32.Vector3

	// Quat is the world orientation.
	Quat math32.Quat
}

// NewPose returns a pose at the given position with the identity rotation.
func NewPose(pos math32.Vector3) Pose {
	ps := Pose{Pos: pos}
	ps.Quat.SetIdentity()
	return ps
}

// Forward returns the unit direction the pose is looking along.
func (ps Pose) Forward() math32.Vector3 {
	return math32.Vec3(0, 0, -1).MulQuat(ps.Quat)
}

// Up returns the unit up direction of the pose.
func (ps Pose) Up() math32.Vector3 {
	return math32.Vec3(0, 1, 0).MulQuat(ps.Quat)
}

// Right returns the unit right direction of the pose.
func (ps Pose) Right() math32.Vector3 {
	return math32.Vec3(1, 0, 0).MulQuat(ps.Quat)
}

// Matrix returns the local-to-world transform of the pose.
func (ps Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(ps.Pos, ps.Quat, math32.Vec3(1, 1, 1))
	return m
}

// Camera defines the projection of a camera, along with its current pose.
// The pose is what the rendering side updates every frame; the rest is
// configuration that rarely changes.
type Camera struct {

	// Pose is the current position and orientation of the camera.
	Pose Pose

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping plane distance.
	Near float32

	// Far is the far clipping plane distance.
	Far float32

	// Ortho makes this an orthographic camera instead of a perspective one.
	Ortho bool

	// OrthoSize is the half-height of the view volume for an orthographic camera.
	OrthoSize float32
}

// NewCamera returns a new camera with default settings.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// Defaults sets a 60 degree, 16:9 perspective camera at the origin
// looking down negative Z.
func (cm *Camera) Defaults() {
	cm.FOV = 60
	cm.Aspect = 16.0 / 9.0
	cm.Near = 0.3
	cm.Far = 1000
	cm.OrthoSize = 5
	cm.Pose = NewPose(math32.Vector3{})
}

// halfExtents returns the half-width and half-height of the view
// volume cross-section at the given distance in front of the camera.
func (cm *Camera) halfExtents(dist float32) (w, h float32) {
	if cm.Ortho {
		h = cm.OrthoSize
	} else {
		h = dist * math32.Tan(math32.DegToRad(cm.FOV*0.5))
	}
	return h * cm.Aspect, h
}

// Unproject returns the world position of the normalized viewport
// coordinate vp (0,0 bottom-left, 1,1 top-right) at the given distance
// in front of a camera with the given pose. This is the inverse of
// [Camera.ProjectPoint].
func (cm *Camera) Unproject(vp math32.Vector2, dist float32, pose Pose) math32.Vector3 {
	w, h := cm.halfExtents(dist)
	local := math32.Vec3((vp.X*2-1)*w, (vp.Y*2-1)*h, -dist)
	return local.MulQuat(pose.Quat).Add(pose.Pos)
}

// ProjectionMatrix returns the projection matrix of the camera.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	var pm math32.Matrix4
	if cm.Ortho {
		pm.SetOrthographic(2*cm.OrthoSize*cm.Aspect, 2*cm.OrthoSize, cm.Near, cm.Far)
	} else {
		pm.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	}
	return pm
}

// ViewMatrix returns the view matrix for the given camera pose,
// which is the inverse of the pose matrix.
func (cm *Camera) ViewMatrix(pose Pose) math32.Matrix4 {
	inv := pose.Quat.Inverse()
	pos := pose.Pos.MulScalar(-1).MulQuat(inv)
	var view math32.Matrix4
	view.SetTransform(pos, inv, math32.Vec3(1, 1, 1))
	return view
}

// ProjectPoint projects the world point into normalized viewport
// coordinates for a camera with the given pose, also returning the
// distance of the point in front of the camera.
func (cm *Camera) ProjectPoint(world math32.Vector3, pose Pose) (vp math32.Vector2, depth float32) {
	view := cm.ViewMatrix(pose)
	prjn := cm.ProjectionMatrix()
	cam := math32.Vector4FromVector3(world, 1).MulMatrix4(&view)
	ndc := cam.MulMatrix4(&prjn).PerspDiv()
	return math32.Vec2((ndc.X+1)*0.5, (ndc.Y+1)*0.5), -cam.Z
}
