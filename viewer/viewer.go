// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer assembles a headless spatial viewer from a config and
// drives it one frame at a time, from code or from a command script.
package viewer

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/spatial/anchor"
	"cogentcore.org/spatial/animate"
	"cogentcore.org/spatial/config"
	"cogentcore.org/spatial/coord"
	"cogentcore.org/spatial/look"
	"cogentcore.org/spatial/scene"
	"cogentcore.org/spatial/viewport"
)

// Epoch is the virtual time of the first frame.
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Viewer is a complete headless viewer.
type Viewer struct {

	// Config is the config the viewer was made from.
	Config *config.Config

	// Scene holds the panel, variant and control nodes.
	Scene *scene.Scene

	// Camera is the viewer camera.
	Camera *viewport.Camera

	// Look turns the camera from pointer movement.
	Look *look.Controller

	// Coordinator drives the panels and variants.
	Coordinator *coord.Coordinator

	// Animator runs the hover transitions.
	Animator *animate.Animator

	// Scheduler runs the frames.
	Scheduler *Scheduler

	// Frame is the virtual time between frames.
	Frame time.Duration

	// Now is the virtual time of the most recent frame.
	Now time.Time

	anchors ordmap.Map[string, *anchor.Anchor]
	panels  map[string]*scene.Node
}

// New returns a new viewer for the given config, in the initial overview state.
func New(cfg *config.Config) *Viewer {
	vw := &Viewer{
		Config:   cfg,
		Scene:    scene.New(),
		Camera:   cfg.Camera.NewCamera(),
		Look:     cfg.Look.Controller(),
		Animator: &animate.Animator{},
		Frame:    time.Second / 60,
		Now:      Epoch,
		panels:   map[string]*scene.Node{},
	}
	vw.anchors.Init()
	pn := cfg.Panels
	panels := coord.Panels{
		Overview:  vw.panel(pn.Overview),
		Controls:  vw.panel(pn.Controls),
		Detail:    vw.panel(pn.Detail),
		Narration: vw.panel(pn.Narration),
	}
	variants := make([]coord.Visibler, len(cfg.Variants))
	for i, name := range cfg.Variants {
		variants[i] = vw.Scene.Add(name)
	}
	vw.Coordinator = coord.New(panels, variants...)
	vw.Coordinator.Transitions = vw.Animator
	vw.Scheduler = &Scheduler{
		Camera:      vw.Camera,
		Look:        vw.Look,
		Coordinator: vw.Coordinator,
		Animator:    vw.Animator,
		Frame:       vw.Frame,
		Receivers:   map[string]animate.PointerReceiver{},
		ApplyLayout: vw.ApplyLayout,
	}
	vw.ApplyLayout(cfg.Anchors)
	return vw
}

// panel returns the panel node with the given name,
// or nil if the name is empty.
func (vw *Viewer) panel(name string) coord.Visibler {
	if name == "" {
		return nil
	}
	nd := vw.Scene.Add(name)
	vw.panels[name] = nd
	return nd
}

// Anchor returns the anchor with the given name, or nil.
func (vw *Viewer) Anchor(name string) *anchor.Anchor {
	an, _ := vw.anchors.ValueByKeyTry(name)
	return an
}

// Anchors returns all anchors in order.
func (vw *Viewer) Anchors() []*anchor.Anchor {
	return vw.anchors.Values()
}

// ApplyLayout makes the anchors match the given layout. Existing anchors
// take the new spec, panel and hover settings and update right away, new
// ones are attached to the camera, and anchors missing from the layout
// are detached and removed. Invalid entries are logged and skipped.
func (vw *Viewer) ApplyLayout(layout []config.Anchor) {
	policy := vw.Config.Throttle.Policy()
	keep := map[string]bool{}
	for i := range layout {
		ca := &layout[i]
		sp, err := ca.Spec()
		if err != nil {
			slog.Warn("viewer: skipping anchor", "anchor", ca.Name, "err", err)
			continue
		}
		if vw.isVariant(ca.Name) {
			slog.Warn("viewer: skipping anchor with the name of a variant", "anchor", ca.Name)
			continue
		}
		keep[ca.Name] = true
		nd := vw.Scene.Add(ca.Name)
		group := vw.parent(nd, ca.Panel)
		an, ok := vw.anchors.ValueByKeyTry(ca.Name)
		if ok {
			an.EveryFrame = ca.EveryFrame
			an.SetSpec(sp)
		} else {
			an = anchor.New(ca.Name, nd, sp, policy)
			an.EveryFrame = ca.EveryFrame
			an.SetCamera(vw.Camera)
			vw.anchors.Add(ca.Name, an)
		}
		vw.setHover(nd, group, ca.Hover)
	}
	for _, name := range vw.anchors.Keys() {
		if keep[name] {
			continue
		}
		an := vw.anchors.ValueByKey(name)
		an.SetCamera(nil)
		vw.anchors.DeleteKey(name)
		vw.Scheduler.forget(an)
		delete(vw.Scheduler.Receivers, name)
		vw.release(name)
		slog.Info("viewer: removed anchor", "anchor", name)
	}
	vw.Scheduler.Anchors = vw.anchors.Values()
}

// parent puts the node of an anchor under the named panel, or on its own
// if there is no such panel, and returns the hover group for the node:
// the panel whose hiding must settle its transitions. A node that is
// itself a panel stays where it is and is its own group.
func (vw *Viewer) parent(nd *scene.Node, panel string) any {
	if pn, ok := vw.panels[nd.Name]; ok {
		return pn
	}
	if pn, ok := vw.panels[panel]; ok {
		pn.AddChild(nd)
		return pn
	}
	if pn := nd.Parent(); pn != nil {
		pn.RemoveChild(nd)
	}
	nd.SetVisible(true)
	return nil
}

// setHover adds, regroups or removes the hover receiver of a node.
// A removed hover settles its transitions at the original values.
func (vw *Viewer) setHover(nd *scene.Node, group any, on bool) {
	rc, has := vw.Scheduler.Receivers[nd.Name]
	switch {
	case on && !has:
		vw.Scheduler.Receivers[nd.Name] = animate.NewHover(vw.Animator, nd, group, vw.Config.Hover.HoverConfig())
	case on:
		if h, ok := rc.(*animate.Hover); ok {
			h.Group = group
		}
	case has:
		vw.snapNode(nd)
		delete(vw.Scheduler.Receivers, nd.Name)
	}
}

// snapNode ends the transitions on the node at their resting values.
func (vw *Viewer) snapNode(nd *scene.Node) {
	for _, p := range animate.PropertiesValues() {
		vw.Animator.Snap(animate.Key{Target: nd, Property: p})
	}
}

// release settles the transitions of a removed anchor node and, unless
// the node is a panel that the coordinator still drives, detaches and
// hides it.
func (vw *Viewer) release(name string) {
	nd := vw.Scene.Node(name)
	if nd == nil {
		return
	}
	vw.snapNode(nd)
	if _, isPanel := vw.panels[name]; isPanel {
		return
	}
	if pn := nd.Parent(); pn != nil {
		pn.RemoveChild(nd)
	}
	nd.SetVisible(false)
}

func (vw *Viewer) isVariant(name string) bool {
	for _, v := range vw.Config.Variants {
		if v == name {
			return true
		}
	}
	return false
}

// Watch applies the layouts delivered by the watcher at the start of
// each following frame.
func (vw *Viewer) Watch(w *config.Watcher) {
	vw.Scheduler.Layouts = w.Anchors
}

// Step runs one frame, advancing the virtual time by [Viewer.Frame].
func (vw *Viewer) Step() {
	vw.Now = vw.Now.Add(vw.Frame)
	vw.Scheduler.Tick(vw.Now)
}

// Wait runs n frames.
func (vw *Viewer) Wait(n int) {
	for range n {
		vw.Step()
	}
}

// Snapshot returns the coordinator snapshot.
func (vw *Viewer) Snapshot() coord.Snapshot {
	return vw.Coordinator.Snapshot()
}

// Describe writes the snapshot, the visible nodes and
// the anchor positions to w.
func (vw *Viewer) Describe(w io.Writer) {
	fmt.Fprintf(w, "%v\n", vw.Snapshot())
	fmt.Fprintf(w, "visible: %v\n", vw.Scene.Visible())
	for _, an := range vw.Anchors() {
		pos := an.Last.Pos
		fmt.Fprintf(w, "anchor %s: %v (%.2f, %.2f) at (%.3f, %.3f, %.3f) updates: %d\n", an.Name, an.Spec.Placement, an.Last.Viewport.X, an.Last.Viewport.Y, pos.X, pos.Y, pos.Z, an.Updates)
	}
}
