// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/anchor"
	"cogentcore.org/spatial/animate"
	"cogentcore.org/spatial/config"
	"cogentcore.org/spatial/coord"
	"cogentcore.org/spatial/look"
	"cogentcore.org/spatial/viewport"
)

// Scheduler runs one frame at a time on a single goroutine. Input is
// queued with the Post methods and takes effect on the next [Scheduler.Tick],
// which applies it in a fixed order:
//
//  1. anchor layouts from [Scheduler.Layouts]
//  2. pointer look, which turns the camera
//  3. coordinator events
//  4. pointer enter and leave events
//  5. anchor ticks against the camera pose sampled for the frame
//  6. transition steps
//
// Coordinator events therefore always settle before any anchor is ticked.
type Scheduler struct {

	// Camera is the camera whose pose anchors follow.
	Camera *viewport.Camera

	// Look turns the camera from pointer movement, if set.
	Look *look.Controller

	// Coordinator receives the coordinator events.
	Coordinator *coord.Coordinator

	// Anchors are ticked every frame, in order.
	Anchors []*anchor.Anchor

	// Animator runs the hover transitions.
	Animator *animate.Animator

	// Receivers get pointer events by control name.
	Receivers map[string]animate.PointerReceiver

	// Layouts delivers reloaded anchor layouts, if set.
	Layouts <-chan []config.Anchor

	// ApplyLayout is called with each layout from [Scheduler.Layouts].
	ApplyLayout func(layout []config.Anchor)

	// Frame is the time step assumed for the first tick.
	Frame time.Duration

	// Ticks is the number of ticks run so far.
	Ticks int

	// Last is the time of the last tick.
	Last time.Time

	lookDelta math32.Vector2
	events    []coord.Event
	pointer   []animate.PointerEvent
	shown     map[*anchor.Anchor]bool
}

// isVisibler is implemented by anchored elements that can be hidden.
type isVisibler interface {
	IsVisible() bool
}

// Post queues a coordinator event.
func (sc *Scheduler) Post(ev coord.Event) {
	sc.events = append(sc.events, ev)
}

// PostPointer queues a pointer event.
func (sc *Scheduler) PostPointer(ev animate.PointerEvent) {
	sc.pointer = append(sc.pointer, ev)
}

// PostLook accumulates pointer movement for the next tick.
func (sc *Scheduler) PostLook(delta math32.Vector2) {
	sc.lookDelta = sc.lookDelta.Add(delta)
}

// Pending returns whether any input is waiting for the next tick.
func (sc *Scheduler) Pending() bool {
	return len(sc.events) > 0 || len(sc.pointer) > 0 || sc.lookDelta != (math32.Vector2{})
}

// Tick runs one frame at the given time.
func (sc *Scheduler) Tick(now time.Time) {
	dt := sc.Frame
	if !sc.Last.IsZero() {
		dt = now.Sub(sc.Last)
	}
	sc.Last = now
	sc.Ticks++

	sc.drainLayouts()

	if sc.Look != nil && sc.Camera != nil && sc.lookDelta != (math32.Vector2{}) {
		sc.Camera.Pose.Quat = sc.Look.Apply(sc.lookDelta, dt)
	}
	sc.lookDelta = math32.Vector2{}

	events := sc.events
	sc.events = nil
	for _, ev := range events {
		if sc.Coordinator == nil {
			break
		}
		if err := sc.Coordinator.Dispatch(ev); err != nil {
			slog.Warn("viewer: event rejected", "event", ev, "err", err)
		}
	}

	pointer := sc.pointer
	sc.pointer = nil
	for _, ev := range pointer {
		rc, ok := sc.Receivers[ev.Control]
		if !ok {
			slog.Debug("viewer: no receiver for pointer event", "control", ev.Control)
			continue
		}
		rc.HandlePointer(ev)
	}

	sc.tickAnchors(now)

	if sc.Animator != nil {
		sc.Animator.Step(dt)
	}
}

// tickAnchors ticks every anchor against the camera pose for the frame.
// An element that has just become visible is updated even if the
// throttle would skip it, so that it never shows a stale pose.
func (sc *Scheduler) tickAnchors(now time.Time) {
	var pose viewport.Pose
	if sc.Camera != nil {
		pose = sc.Camera.Pose
	}
	if sc.shown == nil {
		sc.shown = map[*anchor.Anchor]bool{}
	}
	for _, an := range sc.Anchors {
		updated := an.Tick(now, pose)
		vs, ok := an.Element.(isVisibler)
		if !ok {
			continue
		}
		vis := vs.IsVisible()
		if vis && !sc.shown[an] && !updated {
			an.ForceUpdate(pose)
		}
		sc.shown[an] = vis
	}
}

// forget drops the visibility tracked for an anchor that was removed.
func (sc *Scheduler) forget(an *anchor.Anchor) {
	delete(sc.shown, an)
}

func (sc *Scheduler) drainLayouts() {
	if sc.Layouts == nil || sc.ApplyLayout == nil {
		return
	}
	for {
		select {
		case layout := <-sc.Layouts:
			sc.ApplyLayout(layout)
		default:
			return
		}
	}
}
