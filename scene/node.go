// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a headless stand-in for the rendering side of the
// viewer: named nodes that hold visibility, a world pose, and the local
// scale, color and rotation that hover transitions animate. It is what
// the command-line viewer and the tests drive, and what a real renderer
// would mirror.
package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/spatial/viewport"
)

// Node is one object in the scene.
type Node struct {

	// Name is the unique name of the node within its [Scene].
	Name string

	// Toggles counts actual changes of visibility, which is how
	// flicker shows up.
	Toggles int

	visible   bool
	pose      viewport.Pose
	scale     math32.Vector3
	color     color.RGBA
	rotation  math32.Quat
	destroyed bool
	parent    *Node
	children  []*Node
}

// NewNode returns a new hidden node at the origin with unit scale,
// white color and no rotation.
func NewNode(name string) *Node {
	nd := &Node{Name: name}
	nd.pose = viewport.NewPose(math32.Vector3{})
	nd.scale = math32.Vec3(1, 1, 1)
	nd.color = color.RGBA{255, 255, 255, 255}
	nd.rotation.SetIdentity()
	return nd
}

func (nd *Node) String() string {
	return fmt.Sprintf("%s visible: %v pos: %v", nd.Name, nd.visible, nd.pose.Pos)
}

// SetVisible shows or hides the node and its children. Setting the
// current value again changes nothing.
func (nd *Node) SetVisible(on bool) {
	if nd.destroyed || nd.visible == on {
		return
	}
	slog.Debug("scene: visibility", "node", nd.Name, "from", nd.visible, "to", on)
	nd.visible = on
	nd.Toggles++
	for _, ch := range nd.children {
		ch.SetVisible(on)
	}
}

// AddChild makes the given node a child of this one, so that it is
// shown and hidden along with it. The child takes the visibility of
// the parent right away. A node has at most one parent: it is moved
// from any other parent it had.
func (nd *Node) AddChild(ch *Node) {
	if ch.parent != nd {
		if ch.parent != nil {
			ch.parent.RemoveChild(ch)
		}
		ch.parent = nd
		nd.children = append(nd.children, ch)
	}
	ch.SetVisible(nd.visible)
}

// RemoveChild detaches the given child, leaving its visibility as it is.
// It returns false if ch is not a child of this node.
func (nd *Node) RemoveChild(ch *Node) bool {
	i := slices.Index(nd.children, ch)
	if i < 0 {
		return false
	}
	nd.children = slices.Delete(nd.children, i, i+1)
	ch.parent = nil
	return true
}

// Parent returns the parent node, or nil.
func (nd *Node) Parent() *Node {
	return nd.parent
}

// Children returns the child nodes.
func (nd *Node) Children() []*Node {
	return nd.children
}

// IsVisible returns whether the node is shown.
func (nd *Node) IsVisible() bool {
	return nd.visible
}

// SetPosition sets the world position.
func (nd *Node) SetPosition(pos math32.Vector3) {
	nd.pose.Pos = pos
}

// SetOrientation sets the world orientation.
func (nd *Node) SetOrientation(q math32.Quat) {
	nd.pose.Quat = q
}

// Pose returns the world pose.
func (nd *Node) Pose() viewport.Pose {
	return nd.pose
}

// Scale returns the local scale.
func (nd *Node) Scale() math32.Vector3 { return nd.scale }

// SetScale sets the local scale.
func (nd *Node) SetScale(sc math32.Vector3) { nd.scale = sc }

// Color returns the tint color.
func (nd *Node) Color() color.RGBA { return nd.color }

// SetColor sets the tint color.
func (nd *Node) SetColor(c color.RGBA) { nd.color = c }

// Rotation returns the local rotation.
func (nd *Node) Rotation() math32.Quat { return nd.rotation }

// SetRotation sets the local rotation.
func (nd *Node) SetRotation(q math32.Quat) { nd.rotation = q }

// Destroy hides the node and marks it destroyed. A destroyed node
// ignores visibility changes.
func (nd *Node) Destroy() {
	nd.visible = false
	nd.destroyed = true
}

// IsDestroyed returns whether [Node.Destroy] has been called.
func (nd *Node) IsDestroyed() bool {
	return nd.destroyed
}
