// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, float32(60), cfg.Camera.FOV)
	assert.InDelta(t, 16.0/9.0, cfg.Camera.Aspect, 1e-5)
	assert.Equal(t, float32(0.3), cfg.Camera.Near)
	assert.Equal(t, float32(0.1), cfg.Throttle.UpdateInterval)
	assert.Equal(t, float32(5), cfg.Look.Speed)
	assert.True(t, cfg.Hover.Scale)
	assert.False(t, cfg.Hover.Rotation)
	assert.Equal(t, "overview", cfg.Panels.Overview)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, Sample().Validate())
}

func TestConversions(t *testing.T) {
	cfg := Default()
	po := cfg.Throttle.Policy()
	assert.Equal(t, 100*time.Millisecond, po.MinInterval)
	assert.Equal(t, float32(0.01), po.MovementThreshold)

	cfg.Camera.Position = math32.Vec3(1, 2, 3)
	cm := cfg.Camera.NewCamera()
	assert.Equal(t, math32.Vec3(1, 2, 3), cm.Pose.Pos)
	assert.Equal(t, float32(1000), cm.Far)

	hc := cfg.Hover.HoverConfig()
	assert.Equal(t, 200*time.Millisecond, hc.Duration)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, hc.HoverColor)
	assert.InDelta(t, 1.1, hc.ScaleMultiplier, 1e-6)

	lc := cfg.Look.Controller()
	assert.Equal(t, float32(80), lc.PitchLimit)
}

func TestAnchorSpec(t *testing.T) {
	sp, err := (&Anchor{Name: "a"}).Spec()
	require.NoError(t, err)
	assert.Equal(t, viewport.DefaultSpec(), sp)

	sp, err = (&Anchor{Name: "a", Placement: "Custom", CustomX: 0.25, CustomY: 0.5, Distance: 2, Facing: "none"}).Spec()
	require.NoError(t, err)
	assert.Equal(t, viewport.Custom, sp.Placement)
	assert.Equal(t, float32(0.25), sp.CustomX)
	assert.Equal(t, float32(2), sp.Distance)
	assert.False(t, sp.FaceCamera)

	sp, err = (&Anchor{Placement: "BottomLeft", Facing: "camera"}).Spec()
	require.NoError(t, err)
	assert.Equal(t, viewport.BottomLeft, sp.Placement)
	assert.True(t, sp.FaceCamera)
	assert.False(t, sp.FlipFacing)

	for _, an := range []Anchor{
		{Placement: "Sideways"},
		{Placement: "Custom", CustomX: 1.5},
		{Distance: -1},
		{Facing: "backwards"},
	} {
		_, err := an.Spec()
		assert.Error(t, err, "%+v", an)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(cfg *Config)
	}{
		{"fov", func(cfg *Config) { cfg.Camera.FOV = 180 }},
		{"near far", func(cfg *Config) { cfg.Camera.Near = 2000 }},
		{"aspect", func(cfg *Config) { cfg.Camera.Aspect = 0 }},
		{"throttle", func(cfg *Config) { cfg.Throttle.MovementThreshold = -1 }},
		{"pitch", func(cfg *Config) { cfg.Look.PitchLimit = 100 }},
		{"hover color", func(cfg *Config) { cfg.Hover.HoverColor = "not a color" }},
		{"variant name", func(cfg *Config) { cfg.Variants = []string{"a", ""} }},
		{"duplicate variant", func(cfg *Config) { cfg.Variants = []string{"a", "a"} }},
		{"duplicate anchor", func(cfg *Config) { cfg.Anchors = []Anchor{{Name: "x"}, {Name: "x"}} }},
		{"anchor spec", func(cfg *Config) { cfg.Anchors = []Anchor{{Name: "x", Distance: -3}} }},
		{"variant is panel", func(cfg *Config) { cfg.Variants = []string{"detail", "metal", "stone"} }},
		{"anchor is variant", func(cfg *Config) { cfg.Anchors = append(cfg.Anchors, Anchor{Name: "metal"}) }},
		{"panel in panel", func(cfg *Config) { cfg.Anchors = []Anchor{{Name: "detail", Panel: "controls"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Sample()
			tt.mod(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

const sampleTOML = `
Variants = ["red", "green"]

[Camera]
FOV = 45
Position = {X = 0, Y = 1.5, Z = 0}

[Throttle]
UpdateInterval = 0.25

[[Anchors]]
Name = "home"
Placement = "TopLeft"
Offset = {X = 0.05, Y = 0}
Hover = true
`

const sampleYAML = `
variants: [red, green]
camera:
  fov: 45
  position: {x: 0, y: 1.5, z: 0}
throttle:
  updateinterval: 0.25
anchors:
  - name: home
    placement: TopLeft
    offset: {x: 0.05, y: 0}
    hover: true
`

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{"view.toml": sampleTOML, "view.yaml": sampleYAML} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(data), 0666))
			cfg, err := Open(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"red", "green"}, cfg.Variants)
			assert.Equal(t, float32(45), cfg.Camera.FOV)
			assert.Equal(t, float32(1000), cfg.Camera.Far, "defaults kept")
			assert.Equal(t, float32(1.5), cfg.Camera.Position.Y)
			assert.Equal(t, float32(0.25), cfg.Throttle.UpdateInterval)
			require.Len(t, cfg.Anchors, 1)
			an := cfg.Anchors[0]
			assert.Equal(t, "home", an.Name)
			assert.True(t, an.Hover)
			assert.InDelta(t, 0.05, an.Offset.X, 1e-6)
			sp, err := an.Spec()
			require.NoError(t, err)
			assert.Equal(t, viewport.TopLeft, sp.Placement)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "view.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0666))
	_, err = Open(path)
	assert.Error(t, err)

	path = filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[Camera]\nFOV = 0\n"), 0666))
	_, err = Open(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sample.toml", "sample.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(Sample(), path))
		cfg, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, Sample(), cfg)
	}
	assert.Error(t, Save(Sample(), filepath.Join(dir, "sample.ini")))
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.toml")
	require.NoError(t, Save(Sample(), path))
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	cfg := Sample()
	cfg.Anchors = cfg.Anchors[:1]
	cfg.Anchors[0].Placement = "BottomRight"
	require.NoError(t, Save(cfg, path))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case anchors := <-w.Anchors:
			if len(anchors) == 1 {
				assert.Equal(t, "BottomRight", anchors[0].Placement)
				return
			}
		case <-deadline:
			t.Fatal("no reload seen")
		}
	}
}
