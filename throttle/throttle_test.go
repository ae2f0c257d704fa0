// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throttle

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/viewport"
	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func yawed(deg float32) viewport.Pose {
	ps := viewport.NewPose(math32.Vec3(0, 1.6, 0))
	ps.Quat = math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.DegToRad(deg))
	return ps
}

func TestFirstCheckIsDue(t *testing.T) {
	var bl Baseline
	po := DefaultPolicy()
	assert.False(t, bl.IsSet())
	assert.True(t, ShouldUpdate(t0, yawed(0), &bl, &po))
}

func TestStaticCameraWaitsForInterval(t *testing.T) {
	po := DefaultPolicy()
	dt := NewDetector(po)
	pose := yawed(0)
	dt.Record(t0, pose)

	assert.False(t, dt.ShouldUpdate(t0, pose))
	assert.False(t, dt.ShouldUpdate(t0.Add(50*time.Millisecond), pose))
	assert.False(t, dt.ShouldUpdate(t0.Add(po.MinInterval), pose), "interval must be exceeded, not reached")
	assert.True(t, dt.ShouldUpdate(t0.Add(po.MinInterval+time.Millisecond), pose))
}

func TestMovementTriggersUpdate(t *testing.T) {
	po := DefaultPolicy()
	dt := NewDetector(po)
	pose := yawed(0)
	dt.Record(t0, pose)

	small := pose
	small.Pos.X += 0.005
	assert.False(t, dt.ShouldUpdate(t0.Add(time.Millisecond), small))

	moved := pose
	moved.Pos.X += 0.02
	assert.True(t, dt.ShouldUpdate(t0.Add(time.Millisecond), moved))
}

func TestRotationTriggersUpdate(t *testing.T) {
	po := DefaultPolicy()
	dt := NewDetector(po)
	dt.Record(t0, yawed(10))

	assert.False(t, dt.ShouldUpdate(t0.Add(time.Millisecond), yawed(10.05)))
	assert.True(t, dt.ShouldUpdate(t0.Add(time.Millisecond), yawed(10.5)))
	assert.True(t, dt.ShouldUpdate(t0.Add(time.Millisecond), yawed(10.15)), "just past the threshold")
}

func TestCheckHasNoSideEffect(t *testing.T) {
	dt := NewDetector(DefaultPolicy())
	dt.Record(t0, yawed(0))
	before := dt.Baseline
	dt.ShouldUpdate(t0.Add(time.Second), yawed(45))
	assert.Equal(t, before, dt.Baseline)
}

func TestBaselineReset(t *testing.T) {
	dt := NewDetector(DefaultPolicy())
	dt.Record(t0, yawed(0))
	assert.True(t, dt.Baseline.IsSet())
	dt.Baseline.Reset()
	assert.False(t, dt.Baseline.IsSet())
	assert.True(t, dt.ShouldUpdate(t0, yawed(0)))
}

func TestAngleBetween(t *testing.T) {
	assert.InDelta(t, 0, AngleBetween(yawed(30).Quat, yawed(30).Quat), 1e-3)
	assert.InDelta(t, 90, AngleBetween(yawed(0).Quat, yawed(90).Quat), 1e-2)
	assert.InDelta(t, 20, AngleBetween(yawed(-10).Quat, yawed(10).Quat), 1e-2)
	assert.InDelta(t, 0.12, AngleBetween(yawed(0).Quat, yawed(0.12).Quat), 1e-3)
	// q and -q are the same orientation
	q := yawed(40).Quat
	neg := math32.NewQuat(-q.X, -q.Y, -q.Z, -q.W)
	assert.InDelta(t, 0, AngleBetween(q, neg), 1e-3)
}
