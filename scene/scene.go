// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/base/ordmap"
)

// Scene is an ordered collection of uniquely named nodes.
type Scene struct {
	nodes ordmap.Map[string, *Node]
}

// New returns a new empty scene.
func New() *Scene {
	sc := &Scene{}
	sc.nodes.Init()
	return sc
}

// Add returns the node with the given name, making it if needed.
func (sc *Scene) Add(name string) *Node {
	if nd, ok := sc.nodes.ValueByKeyTry(name); ok {
		return nd
	}
	nd := NewNode(name)
	sc.nodes.Add(name, nd)
	return nd
}

// Node returns the node with the given name, or nil.
func (sc *Scene) Node(name string) *Node {
	nd, _ := sc.nodes.ValueByKeyTry(name)
	return nd
}

// Nodes returns all nodes in the order they were added.
func (sc *Scene) Nodes() []*Node {
	return sc.nodes.Values()
}

// Len returns the number of nodes.
func (sc *Scene) Len() int {
	return sc.nodes.Len()
}

// Visible returns the names of the visible nodes, in order.
func (sc *Scene) Visible() []string {
	var vis []string
	for _, nd := range sc.Nodes() {
		if nd.IsVisible() {
			vis = append(vis, nd.Name)
		}
	}
	return vis
}
