// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/config"
	"cogentcore.org/spatial/coord"
	"cogentcore.org/spatial/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSample(t *testing.T) *Viewer {
	t.Helper()
	cfg := config.Sample()
	require.NoError(t, cfg.Validate())
	return New(cfg)
}

func run(t *testing.T, vw *Viewer, script string) string {
	t.Helper()
	cmds, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, vw.Run(cmds, &out))
	return out.String()
}

func TestNewViewer(t *testing.T) {
	vw := newSample(t)
	assert.Equal(t, []string{"overview", "controls", "glass", "home", "narrate"}, vw.Scene.Visible())
	assert.Len(t, vw.Anchors(), 6)
	for _, an := range vw.Anchors() {
		assert.True(t, an.IsAttached(), an.Name)
	}
	assert.Contains(t, vw.Scheduler.Receivers, "home")
	assert.NotContains(t, vw.Scheduler.Receivers, "overview")
	assert.Equal(t, coord.Snapshot{Mode: coord.Overview, Variants: 3}, vw.Snapshot())
}

func TestScenarios(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "select 1\nwait 1")
	assert.Equal(t, coord.Detail, vw.Snapshot().Mode)
	assert.Equal(t, []string{"detail", "metal"}, vw.Scene.Visible())

	run(t, vw, "home\nwait")
	assert.Equal(t, coord.Overview, vw.Snapshot().Mode)
	assert.Equal(t, 1, vw.Snapshot().Active)
	assert.Equal(t, []string{"overview", "controls", "metal", "home", "narrate"}, vw.Scene.Visible())

	before := vw.Scene.Visible()
	run(t, vw, "narration\nwait")
	assert.Equal(t, []string{"narration", "metal"}, vw.Scene.Visible())
	run(t, vw, "narration\nwait")
	assert.Equal(t, before, vw.Scene.Visible())
}

func TestRejectedSelect(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "select 2\nwait\nselect 3\nselect -1\nwait")
	assert.Equal(t, 2, vw.Snapshot().Active)
	assert.Equal(t, coord.Detail, vw.Snapshot().Mode)
}

func TestEventsBeforeAnchors(t *testing.T) {
	vw := newSample(t)
	vw.Step()
	detail, home := vw.Anchor("detail"), vw.Anchor("home")
	du, hu := detail.Updates, home.Updates

	// below the movement threshold and inside the update interval
	vw.Camera.Pose.Pos.X += 0.005
	vw.Scheduler.Post(coord.Event{Type: coord.VariantSelected, Index: 0})
	vw.Step()
	assert.Equal(t, du+1, detail.Updates, "newly visible detail panel updates")
	assert.Equal(t, hu, home.Updates, "throttled")
	want := viewport.Project(&detail.Spec, vw.Camera, vw.Camera.Pose)
	assert.InDelta(t, want.Pos.X, detail.Last.Pos.X, 1e-6)
	assert.InDelta(t, want.Pos.Z, detail.Last.Pos.Z, 1e-6)
	nd := vw.Scene.Node("detail")
	assert.InDelta(t, want.Pos.X, nd.Pose().Pos.X, 1e-6)
}

func TestThrottledTicks(t *testing.T) {
	vw := newSample(t)
	vw.Step()
	home := vw.Anchor("home")
	u := home.Updates
	vw.Wait(6) // six frames are just under the interval
	assert.Equal(t, u, home.Updates)
	vw.Step()
	assert.Equal(t, u+1, home.Updates)
}

func TestLook(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "look 18 0")
	f := vw.Camera.Pose.Forward()
	assert.InDelta(t, 1, f.X, 1e-4)
	home := vw.Anchor("home")
	assert.Equal(t, vw.Camera.Pose.Quat, home.Throttle.Baseline.Pose.Quat, "anchors follow the turn in the same frame")
}

func TestHoverSnappedWhenPanelHidden(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "enter home\nwait 3")
	nd := vw.Scene.Node("home")
	assert.Greater(t, nd.Scale().X, float32(1))
	assert.Equal(t, 2, vw.Animator.Len())

	run(t, vw, "select 0\nwait")
	assert.Equal(t, 0, vw.Animator.Len())
	assert.Equal(t, math32.Vec3(1, 1, 1), nd.Scale())
	assert.False(t, nd.IsVisible())
}

func TestHoverOnPanelSnappedWhenHidden(t *testing.T) {
	cfg := config.Sample()
	cfg.Anchors[0].Hover = true
	require.NoError(t, cfg.Validate())
	vw := New(cfg)
	run(t, vw, "enter overview\nwait 3")
	nd := vw.Scene.Node("overview")
	assert.Greater(t, nd.Scale().X, float32(1))
	assert.Equal(t, 2, vw.Animator.Len())

	run(t, vw, "select 0\nwait")
	assert.False(t, nd.IsVisible())
	assert.Equal(t, 0, vw.Animator.Len())
	assert.Equal(t, math32.Vec3(1, 1, 1), nd.Scale())

	run(t, vw, "home\nwait")
	assert.True(t, nd.IsVisible())
	assert.Equal(t, math32.Vec3(1, 1, 1), nd.Scale())
}

func TestReloadMovesPanelAndHover(t *testing.T) {
	vw := newSample(t)
	controls := vw.Scene.Node("controls")
	detail := vw.Scene.Node("detail")
	layout := config.Sample().Anchors
	layout[4].Panel = ""
	layout[4].Hover = false
	layout[5].Panel = "detail"
	vw.ApplyLayout(layout)

	home := vw.Scene.Node("home")
	narrate := vw.Scene.Node("narrate")
	assert.Nil(t, home.Parent())
	assert.Equal(t, detail, narrate.Parent())
	assert.NotContains(t, controls.Children(), narrate)
	assert.NotContains(t, vw.Scheduler.Receivers, "home")
	require.Contains(t, vw.Scheduler.Receivers, "narrate")

	run(t, vw, "enter narrate\nselect 1\nwait 3")
	assert.True(t, home.IsVisible(), "a standalone anchor ignores the mode")
	assert.True(t, narrate.IsVisible())
	assert.Equal(t, 2, vw.Animator.Len())

	run(t, vw, "home\nwait")
	assert.False(t, narrate.IsVisible())
	assert.Equal(t, 0, vw.Animator.Len(), "hover group follows the new panel")
	assert.Equal(t, math32.Vec3(1, 1, 1), narrate.Scale())
}

func TestRemovedAnchorIsForgotten(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "wait")
	narrate := vw.Anchor("narrate")
	require.Contains(t, vw.Scheduler.shown, narrate)
	vw.ApplyLayout(config.Sample().Anchors[:5])
	assert.NotContains(t, vw.Scheduler.shown, narrate)
	run(t, vw, "wait")
	assert.Len(t, vw.Scheduler.shown, 5)
}

func TestHoverCompletes(t *testing.T) {
	vw := newSample(t)
	run(t, vw, "enter narrate\nwait 13")
	assert.InDelta(t, 1.1, vw.Scene.Node("narrate").Scale().X, 1e-5)
	run(t, vw, "leave narrate\nwait 13")
	assert.InDelta(t, 1, vw.Scene.Node("narrate").Scale().X, 1e-5)
	assert.Equal(t, 0, vw.Animator.Len())
}

func TestPlace(t *testing.T) {
	vw := newSample(t)
	home := vw.Anchor("home")
	u := home.Updates
	run(t, vw, "place home BottomLeft")
	assert.Equal(t, viewport.BottomLeft, home.Spec.Placement)
	assert.Equal(t, u+1, home.Updates)
	run(t, vw, "place home Custom 1.5 0.25")
	assert.Equal(t, viewport.Custom, home.Spec.Placement)
	assert.Equal(t, float32(1), home.Spec.CustomX)
	assert.InDelta(t, 1, home.Last.Viewport.X, 1e-6)

	for _, bad := range []string{"place nobody Center", "place home Center 1 1", "place home Custom", "place home Up"} {
		cmds, err := ParseScript(strings.NewReader(bad))
		require.NoError(t, err)
		assert.Error(t, vw.Run(cmds, io.Discard), bad)
	}
}

func TestApplyLayout(t *testing.T) {
	vw := newSample(t)
	ch := make(chan []config.Anchor, 1)
	vw.Scheduler.Layouts = ch
	layout := config.Sample().Anchors[:5]
	layout[4].Placement = "BottomLeft"
	layout[4].EveryFrame = true
	ch <- layout
	narrate := vw.Anchor("narrate")
	vw.Step()
	assert.Len(t, vw.Anchors(), 5)
	assert.Nil(t, vw.Anchor("narrate"))
	assert.False(t, narrate.IsAttached())
	assert.NotContains(t, vw.Scheduler.Receivers, "narrate")
	nn := vw.Scene.Node("narrate")
	assert.False(t, nn.IsVisible())
	assert.Nil(t, nn.Parent())
	home := vw.Anchor("home")
	assert.Equal(t, viewport.BottomLeft, home.Spec.Placement)
	assert.True(t, home.EveryFrame)

	vw.ApplyLayout(append(layout, config.Anchor{Name: "bad", Distance: -1}, config.Anchor{Name: "badge", Placement: "Center"}))
	assert.Nil(t, vw.Anchor("bad"))
	require.NotNil(t, vw.Anchor("badge"))
	assert.True(t, vw.Scene.Node("badge").IsVisible())
}

func TestFallbackViewer(t *testing.T) {
	vw := New(config.Default())
	assert.True(t, vw.Snapshot().Fallback)
	out := run(t, vw, "select 0\nnarration\nwait\nstate")
	assert.Contains(t, out, "fallback: true")
	assert.Equal(t, []string{"overview", "controls"}, vw.Scene.Visible())
}

func TestDescribe(t *testing.T) {
	vw := newSample(t)
	out := run(t, vw, "wait\nstate")
	assert.Contains(t, out, "mode: Overview variant: 0/3")
	assert.Contains(t, out, "visible: [overview controls glass home narrate]")
	assert.Contains(t, out, "anchor home: TopRight (0.90, 0.90)")
}
