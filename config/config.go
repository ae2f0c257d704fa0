// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the viewer,
// loaded from TOML or YAML files on top of `default:` struct tag values.
package config

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/animate"
	"cogentcore.org/spatial/look"
	"cogentcore.org/spatial/throttle"
	"cogentcore.org/spatial/viewport"
)

// ErrInvalid is returned, wrapped, for any configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the main config struct that contains all of the
// configuration options for the viewer.
type Config struct {

	// Camera is the camera projection and starting position.
	Camera Camera

	// Throttle is how often anchors recompute their poses.
	Throttle Throttle

	// Look is the pointer look behavior.
	Look Look

	// Hover is the hover transition behavior of controls.
	Hover Hover

	// Panels are the names of the scene nodes used as the panels.
	Panels Panels

	// Variants are the names of the content variants, in index order.
	Variants []string

	// Anchors are the camera-anchored elements.
	Anchors []Anchor
}

// Camera configures the camera.
type Camera struct {

	// FOV is the vertical field of view, in degrees.
	FOV float32 `default:"60"`

	// Aspect is the width over the height of the viewport.
	Aspect float32 `default:"1.7777778"`

	// Near is the near clipping plane distance.
	Near float32 `default:"0.3"`

	// Far is the far clipping plane distance.
	Far float32 `default:"1000"`

	// Ortho is whether to use an orthographic projection.
	Ortho bool

	// OrthoSize is the half height of the orthographic view volume.
	OrthoSize float32 `default:"5"`

	// Position is the starting camera position.
	Position math32.Vector3
}

// Throttle configures anchor recomputation.
type Throttle struct {

	// UpdateInterval is the maximum time between recomputations, in seconds.
	UpdateInterval float32 `default:"0.1"`

	// MovementThreshold is how far the camera must move to force a recomputation.
	MovementThreshold float32 `default:"0.01"`

	// RotationThreshold is how far the camera must turn to force a
	// recomputation, in degrees.
	RotationThreshold float32 `default:"0.1"`
}

// Look configures pointer look.
type Look struct {

	// Speed is the rotation in degrees per pointer unit per 60 Hz frame.
	Speed float32 `default:"5"`

	// PitchLimit is the maximum pitch up or down, in degrees.
	PitchLimit float32 `default:"80"`
}

// Hover configures the hover transitions of controls.
type Hover struct {

	// Scale is whether to animate the scale.
	Scale bool `default:"true"`

	// ScaleMultiplier is the factor applied to the scale while hovered.
	ScaleMultiplier float32 `default:"1.1"`

	// Color is whether to animate the color.
	Color bool `default:"true"`

	// HoverColor is the hex color while hovered.
	HoverColor string `default:"#ffffff"`

	// Rotation is whether to animate the rotation.
	Rotation bool

	// RotationAmount is the rotation about Z while hovered, in degrees.
	RotationAmount float32 `default:"5"`

	// Duration is how long each transition takes, in seconds.
	Duration float32 `default:"0.2"`
}

// Panels are the names of the panel nodes.
type Panels struct {
	Overview  string `default:"overview"`
	Controls  string `default:"controls"`
	Detail    string `default:"detail"`
	Narration string `default:"narration"`
}

// Names returns the set of configured panel names.
func (pn *Panels) Names() map[string]bool {
	names := map[string]bool{}
	for _, n := range []string{pn.Overview, pn.Controls, pn.Detail, pn.Narration} {
		if n != "" {
			names[n] = true
		}
	}
	return names
}

// Facing values for [Anchor.Facing].
const (
	// FacingFlipped faces the camera, turned 180 degrees so the front
	// of the element is toward the viewer. It is the default.
	FacingFlipped = "flipped"

	// FacingCamera faces the camera without turning.
	FacingCamera = "camera"

	// FacingNone leaves the orientation alone.
	FacingNone = "none"
)

// Anchor configures one camera-anchored element.
type Anchor struct {

	// Name is the name of the scene node that is anchored.
	Name string

	// Panel is the name of the panel the element belongs to, if any.
	// Hover transitions of the element are snapped when the panel is hidden.
	Panel string

	// Placement is the name of a [viewport.Placements] value.
	// It defaults to TopRight.
	Placement string

	// CustomX and CustomY are the normalized viewport coordinates for
	// the Custom placement.
	CustomX, CustomY float32

	// Offset is added to the placement in normalized viewport units.
	Offset math32.Vector2

	// Distance is the distance in front of the camera.
	// Zero means the default of 5.
	Distance float32

	// Facing is one of flipped (the default), camera or none.
	Facing string

	// EveryFrame recomputes the pose on every tick, ignoring the throttle.
	EveryFrame bool

	// Hover attaches hover transitions to the element.
	Hover bool
}

// Default returns a new config with all default values set.
func Default() *Config {
	cfg := &Config{}
	cli.SetFromDefaults(cfg)
	return cfg
}

// Validate returns an error wrapping [ErrInvalid] that describes every
// problem with the config, or nil if there are none.
func (cfg *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	cm := &cfg.Camera
	if cm.FOV <= 0 || cm.FOV >= 180 {
		add("camera FOV %g not in (0, 180)", cm.FOV)
	}
	if cm.Aspect <= 0 {
		add("camera aspect %g must be positive", cm.Aspect)
	}
	if cm.Near <= 0 || cm.Near >= cm.Far {
		add("camera near %g must be positive and less than far %g", cm.Near, cm.Far)
	}
	if cm.Ortho && cm.OrthoSize <= 0 {
		add("camera ortho size %g must be positive", cm.OrthoSize)
	}
	th := &cfg.Throttle
	if th.UpdateInterval < 0 || th.MovementThreshold < 0 || th.RotationThreshold < 0 {
		add("throttle values must not be negative")
	}
	if cfg.Look.Speed < 0 || cfg.Look.PitchLimit < 0 || cfg.Look.PitchLimit > 90 {
		add("look speed %g must not be negative and pitch limit %g must be in [0, 90]", cfg.Look.Speed, cfg.Look.PitchLimit)
	}
	if cfg.Hover.ScaleMultiplier <= 0 || cfg.Hover.Duration < 0 {
		add("hover scale multiplier must be positive and duration must not be negative")
	}
	if _, err := cfg.Hover.RGBA(); err != nil {
		add("hover color: %w", err)
	}
	panels := cfg.Panels.Names()
	seen := map[string]bool{}
	for i, v := range cfg.Variants {
		switch {
		case v == "":
			add("variant %d has no name", i)
		case seen[v]:
			add("duplicate variant %q", v)
		case panels[v]:
			add("variant %q has the name of a panel", v)
		}
		seen[v] = true
	}
	anchors := map[string]bool{}
	for i := range cfg.Anchors {
		an := &cfg.Anchors[i]
		if an.Name == "" {
			add("anchor %d has no name", i)
		} else if anchors[an.Name] {
			add("duplicate anchor %q", an.Name)
		}
		anchors[an.Name] = true
		if seen[an.Name] {
			add("anchor %q has the name of a variant", an.Name)
		}
		if panels[an.Name] && an.Panel != "" && an.Panel != an.Name {
			add("anchor %q is a panel and cannot be placed in panel %q", an.Name, an.Panel)
		}
		if _, err := an.Spec(); err != nil {
			add("anchor %q: %w", an.Name, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// NewCamera returns a new camera with the configured projection at the
// configured position.
func (cm *Camera) NewCamera() *viewport.Camera {
	c := viewport.NewCamera()
	c.FOV = cm.FOV
	c.Aspect = cm.Aspect
	c.Near = cm.Near
	c.Far = cm.Far
	c.Ortho = cm.Ortho
	c.OrthoSize = cm.OrthoSize
	c.Pose.Pos = cm.Position
	return c
}

// Policy returns the throttle policy.
func (th *Throttle) Policy() throttle.Policy {
	return throttle.Policy{
		MinInterval:       seconds(th.UpdateInterval),
		MovementThreshold: th.MovementThreshold,
		RotationThreshold: th.RotationThreshold,
	}
}

// Controller returns a new look controller.
func (lk *Look) Controller() *look.Controller {
	return &look.Controller{Speed: lk.Speed, PitchLimit: lk.PitchLimit}
}

// RGBA returns the parsed hover color.
func (hv *Hover) RGBA() (color.RGBA, error) {
	return colors.FromHex(hv.HoverColor)
}

// HoverConfig returns the hover transition config.
// An unparseable color falls back to white.
func (hv *Hover) HoverConfig() animate.HoverConfig {
	hc := animate.DefaultHoverConfig()
	hc.Scale = hv.Scale
	hc.ScaleMultiplier = hv.ScaleMultiplier
	hc.Color = hv.Color
	if clr, err := hv.RGBA(); err == nil {
		hc.HoverColor = clr
	}
	hc.Rotation = hv.Rotation
	hc.RotationAmount = hv.RotationAmount
	hc.Duration = seconds(hv.Duration)
	return hc
}

// Spec returns the viewport spec for the anchor.
func (an *Anchor) Spec() (viewport.Spec, error) {
	sp := viewport.DefaultSpec()
	if an.Placement != "" {
		if err := sp.Placement.SetString(an.Placement); err != nil {
			return sp, err
		}
	}
	if sp.Placement == viewport.Custom {
		if an.CustomX < 0 || an.CustomX > 1 || an.CustomY < 0 || an.CustomY > 1 {
			return sp, fmt.Errorf("custom position (%g, %g) not in [0, 1]", an.CustomX, an.CustomY)
		}
		sp.CustomX, sp.CustomY = an.CustomX, an.CustomY
	}
	if an.Distance < 0 {
		return sp, fmt.Errorf("distance %g must not be negative", an.Distance)
	}
	if an.Distance > 0 {
		sp.Distance = an.Distance
	}
	sp.Offset = an.Offset
	switch strings.ToLower(an.Facing) {
	case "", FacingFlipped:
		sp.FaceCamera, sp.FlipFacing = true, true
	case FacingCamera:
		sp.FaceCamera, sp.FlipFacing = true, false
	case FacingNone:
		sp.FaceCamera, sp.FlipFacing = false, false
	default:
		return sp, fmt.Errorf("unknown facing %q", an.Facing)
	}
	return sp, nil
}

// seconds converts a config time in seconds to a duration, rounded to the
// microsecond so that float32 values like 0.1 come out exact.
func seconds(s float32) time.Duration {
	return time.Duration(float64(s) * float64(time.Second)).Round(time.Microsecond)
}
