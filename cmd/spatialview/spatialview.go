// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spatialview runs a headless spatial viewer session: it loads
// a viewer config, runs a command script against it one frame at a time,
// and prints the resulting state.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/spatial/config"
	"cogentcore.org/spatial/logx"
	"cogentcore.org/spatial/viewer"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the spatialview cli.
type Config struct {

	// File is the viewer config file (.toml, .yaml or .yml).
	File string `posarg:"0" required:"-" default:"spatialview.toml"`

	// Script is the command script to run.
	// If it is empty, commands are read from standard input.
	Script string `flag:"s,script"`

	// Watch reloads the anchor layouts when the viewer config file changes.
	Watch bool `flag:"w,watch"`

	// FPS is the virtual frame rate.
	FPS int `default:"60"`

	// Debug turns on debug logging.
	Debug bool

	// Force overwrites an existing file in the init command.
	Force bool `cmd:"init" flag:"f,force"`
}

func main() {
	opts := cli.DefaultOptions("spatialview", "Spatialview runs a headless spatial viewer session from a config and a command script.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run runs a command script against the viewer and prints the final state.", Root: true},
		&cli.Cmd[*Config]{Func: Init, Name: "init", Doc: "Init writes a sample viewer config file."},
	)
}

// Run runs the viewer session.
func Run(c *Config) error {
	logx.SetDefault(os.Stderr)
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	cfg, err := config.Open(c.File)
	if err != nil {
		return err
	}
	vw := viewer.New(cfg)
	if c.FPS > 0 {
		vw.Frame = time.Second / time.Duration(c.FPS)
		vw.Scheduler.Frame = vw.Frame
	}
	if c.Watch {
		w, err := config.Watch(c.File)
		if err != nil {
			return err
		}
		defer w.Close()
		vw.Watch(w)
	}

	var in io.Reader = os.Stdin
	if c.Script != "" {
		path, err := homedir.Expand(c.Script)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cmds, err := viewer.ParseScript(in)
	if err != nil {
		return err
	}
	slog.Info("spatialview: running", "config", c.File, "commands", len(cmds), "variants", len(cfg.Variants), "anchors", len(cfg.Anchors))
	if err := vw.Run(cmds, os.Stdout); err != nil {
		return err
	}
	fmt.Printf("after %d frames:\n", vw.Scheduler.Ticks)
	vw.Describe(os.Stdout)
	return nil
}

// Init writes a sample config to the config file.
func Init(c *Config) error {
	path, err := homedir.Expand(c.File)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("%s already exists; use -force to overwrite it", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(config.Sample(), path); err != nil {
		return err
	}
	slog.Info("spatialview: wrote sample config", "path", path)
	return nil
}
