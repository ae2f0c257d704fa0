// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reloads a config file when it changes and delivers the
// new anchor layouts on [Watcher.Anchors]. Only the most recent
// layout is kept if the receiver falls behind. A file that fails to
// load is logged and skipped.
type Watcher struct {

	// Path is the config file being watched.
	Path string

	// Anchors receives the anchors of each successful reload.
	Anchors chan []Anchor

	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch starts watching the given config file. The directory is watched
// so that editors that replace the file on save are seen too.
func Watch(path string) (*Watcher, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{Path: path, Anchors: make(chan []Anchor, 1), watcher: fw, done: make(chan bool)}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("config: watch", "path", w.Path, "err", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Open(w.Path)
	if err != nil {
		slog.Warn("config: reload failed, keeping the current layout", "path", w.Path, "err", err)
		return
	}
	slog.Info("config: reloaded", "path", w.Path, "anchors", len(cfg.Anchors))
	select {
	case <-w.Anchors:
	default:
	}
	w.Anchors <- cfg.Anchors
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
