// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open returns the config in the given file on top of the defaults,
// validated. The format is chosen from the file extension:
// .toml, or .yaml or .yml. A leading ~ is expanded to the home directory.
func Open(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := Decode(cfg, b, filepath.Ext(path)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes the data in the format for the given file extension
// into cfg, keeping the existing values of anything not present.
func Decode(cfg *Config, b []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, cfg)
	}
	return fmt.Errorf("unsupported config format %q", ext)
}

// Save writes the config to the given file in the format for its extension.
func Save(cfg *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	var b []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		err = fmt.Errorf("config: unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0666)
}

// Sample returns an example config with the default panels,
// three variants and anchored home and narration buttons,
// seen from eye height.
func Sample() *Config {
	cfg := Default()
	cfg.Camera.Position = math32.Vec3(0, 1.6, 0)
	cfg.Variants = []string{"glass", "metal", "stone"}
	cfg.Anchors = []Anchor{
		{Name: cfg.Panels.Overview, Placement: "Center", Distance: 6},
		{Name: cfg.Panels.Controls, Placement: "BottomLeft"},
		{Name: cfg.Panels.Detail, Placement: "Center", Distance: 4},
		{Name: cfg.Panels.Narration, Placement: "Center", Distance: 4},
		{Name: "home", Panel: cfg.Panels.Controls, Placement: "TopRight", Hover: true},
		{Name: "narrate", Panel: cfg.Panels.Controls, Placement: "Custom", CustomX: 0.9, CustomY: 0.75, Hover: true},
	}
	return cfg
}
