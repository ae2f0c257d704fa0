// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger for the viewer, with a
// user-settable level and level labels colored for the terminal.
package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It defaults to Info, or Debug with the debug build tag and Warn with the
// release build tag. Changes take effect immediately for loggers created
// with [NewHandler].
var UserLevel = defaultUserLevel

type userLevel struct{}

func (userLevel) Level() slog.Level { return UserLevel }

// NewHandler returns a text handler writing to w at [UserLevel].
// Level labels are colored when w is a terminal that supports color.
// Times are omitted.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLevel{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lv.String()).Foreground(LevelColor(lv)).String())
			}
			return a
		},
	})
}

// SetDefault makes a logger using [NewHandler] the default.
func SetDefault(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// LevelColor returns the terminal color for the level label.
func LevelColor(lv slog.Level) termenv.Color {
	switch {
	case lv >= slog.LevelError:
		return termenv.ANSIRed
	case lv >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lv >= slog.LevelInfo:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIBlue
	}
}
