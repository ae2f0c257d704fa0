// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate runs eased visual transitions as resumable tasks that
// are advanced by elapsed time on each scheduler tick. At most one task
// runs per (target, property) pair: starting a new one cancels the one
// already in flight.
package animate

//go:generate core generate

import (
	"log/slog"
	"time"

	"cogentcore.org/core/base/ordmap"
)

// Properties are the animatable properties of a target.
type Properties int32 //enums:enum

const (
	// Scale is the local scale.
	Scale Properties = iota

	// Color is the tint color.
	Color

	// Rotation is the local rotation.
	Rotation
)

// Key identifies one transition slot. Target must be comparable,
// which in practice means a pointer.
type Key struct {
	Target   any
	Property Properties
}

// Task is a resumable transition.
type Task interface {

	// Step advances the task by dt, writing the new value,
	// and returns true when it has finished.
	Step(dt time.Duration) bool

	// Snap writes the resting value and ends the task.
	Snap()
}

// Destroyer is implemented by targets that can be destroyed while a
// transition on them is in flight.
type Destroyer interface {
	IsDestroyed() bool
}

// Animation is one running task on the [Animator].
type Animation struct {

	// Key is the (target, property) slot the task writes to.
	Key Key

	// Group is what the task is associated with, typically the panel
	// that contains the target. It is used by [Animator.SnapGroup].
	Group any

	// Task is the transition itself.
	Task Task

	// Elapsed is the total time the task has been stepped.
	Elapsed time.Duration
}

// Animator holds the running transitions in the order they started.
// It is driven from a single scheduler goroutine and is not safe for
// concurrent use.
type Animator struct {
	anims ordmap.Map[Key, *Animation]
}

// Start starts the task in the given slot, cancelling any task that is
// already running there. It returns whether a task was cancelled.
func (an *Animator) Start(key Key, group any, task Task) bool {
	an.anims.Init()
	cancelled := an.anims.DeleteKey(key)
	if cancelled {
		slog.Debug("animate: restart", "property", key.Property)
	}
	an.anims.Add(key, &Animation{Key: key, Group: group, Task: task})
	return cancelled
}

// Step advances every running task by dt and removes the ones that
// finished. Tasks whose target has been destroyed are dropped without
// being stepped. It returns the number of tasks still running.
func (an *Animator) Step(dt time.Duration) int {
	var done []Key
	for _, kv := range an.anims.Order {
		a := kv.Value
		if ds, ok := a.Key.Target.(Destroyer); ok && ds.IsDestroyed() {
			slog.Debug("animate: target destroyed, cancelling", "property", a.Key.Property)
			done = append(done, kv.Key)
			continue
		}
		a.Elapsed += dt
		if a.Task.Step(dt) {
			done = append(done, kv.Key)
		}
	}
	for _, k := range done {
		an.anims.DeleteKey(k)
	}
	return an.anims.Len()
}

// Running returns whether a task is running in the given slot.
func (an *Animator) Running(key Key) bool {
	_, ok := an.anims.ValueByKeyTry(key)
	return ok
}

// Len returns the number of running tasks.
func (an *Animator) Len() int {
	return an.anims.Len()
}

// Cancel stops the task in the given slot, leaving the value wherever
// it was. It returns false if nothing was running there.
func (an *Animator) Cancel(key Key) bool {
	if an.anims.Map == nil {
		return false
	}
	return an.anims.DeleteKey(key)
}

// Snap ends the task in the given slot at its resting value.
func (an *Animator) Snap(key Key) bool {
	a, ok := an.anims.ValueByKeyTry(key)
	if !ok {
		return false
	}
	an.snap(a)
	return an.anims.DeleteKey(key)
}

// SnapGroup ends every task in the given group at its resting value,
// returning how many were snapped.
func (an *Animator) SnapGroup(group any) int {
	var keys []Key
	for _, kv := range an.anims.Order {
		if kv.Value.Group == group {
			keys = append(keys, kv.Key)
		}
	}
	for _, k := range keys {
		a := an.anims.ValueByKey(k)
		an.snap(a)
		an.anims.DeleteKey(k)
	}
	if len(keys) > 0 {
		slog.Debug("animate: snapped group", "tasks", len(keys))
	}
	return len(keys)
}

func (an *Animator) snap(a *Animation) {
	if ds, ok := a.Key.Target.(Destroyer); ok && ds.IsDestroyed() {
		return
	}
	a.Task.Snap()
}
