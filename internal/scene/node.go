// Package scene holds the scene graph: nodes with local transforms that own
// their children, plus the materials and lights they reference.
package scene

import (
	"fmt"
	"sync/atomic"

	"github.com/Faultbox/toyscene/internal/engine/camera"
	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/pkg/math"
)

// Kind identifies what a node carries.
type Kind int

const (
	KindGroup Kind = iota
	KindMesh
	KindLight
	KindCamera
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindLight:
		return "light"
	case KindCamera:
		return "camera"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Transient reports whether nodes of this kind are viewing or lighting
// aids rather than geometry.
func (k Kind) Transient() bool {
	return k == KindLight || k == KindCamera
}

var lastID atomic.Uint64

// Node is a positioned entity in the scene graph. Position, Rotation (XYZ
// Euler, radians) and Scale are relative to the parent.
type Node struct {
	ID   uint64
	Name string
	Kind Kind

	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3

	// Set for KindMesh.
	Geometry *geometry.Geometry
	Material *Material

	// Set for KindLight.
	Light *Light

	// Set for KindCamera.
	Camera *camera.Perspective

	parent   *Node
	children []*Node
}

func newNode(name string, kind Kind) *Node {
	return &Node{
		ID:    lastID.Add(1),
		Name:  name,
		Kind:  kind,
		Scale: math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// NewGroup creates an empty container node.
func NewGroup(name string) *Node {
	return newNode(name, KindGroup)
}

// NewMesh creates a node drawing geometry with material.
func NewMesh(name string, geom *geometry.Geometry, mat *Material) *Node {
	n := newNode(name, KindMesh)
	n.Geometry = geom
	n.Material = mat
	return n
}

// NewLight creates a light node.
func NewLight(name string, light Light) *Node {
	n := newNode(name, KindLight)
	n.Light = &light
	return n
}

// NewCamera creates a node carrying a camera's projection.
func NewCamera(name string, cam *camera.Perspective) *Node {
	n := newNode(name, KindCamera)
	n.Camera = cam
	n.Position = cam.Position
	return n
}

// At sets the local position and returns n.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n
}

// Rotated sets the local Euler rotation and returns n.
func (n *Node) Rotated(x, y, z float32) *Node {
	n.Rotation = math.Vec3{X: x, Y: y, Z: z}
	return n
}

// Add attaches children to n and returns n. It panics if a child already
// has a parent or is n or one of n's ancestors, since either would break
// the tree.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child == nil {
			panic("scene: add nil child")
		}
		if child.parent != nil {
			panic(fmt.Sprintf("scene: node %q already has parent %q", child.Name, child.parent.Name))
		}
		if child == n || child.IsAncestorOf(n) {
			panic(fmt.Sprintf("scene: adding %q under %q would create a cycle", child.Name, n.Name))
		}
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

// Remove detaches child from n. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// IsAncestorOf reports whether n is a strict ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Find returns the first node named name in n's subtree.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes of the given kind in n's subtree,
// including n.
func (n *Node) Count(kind Kind) int {
	count := 0
	n.Walk(func(node *Node, _ int) bool {
		if node.Kind == kind {
			count++
		}
		return true
	})
	return count
}

// LocalMatrix returns the node's transform relative to its parent.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// WorldMatrix returns the node's transform relative to the scene root.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul(m)
	}
	return m
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().TransformVec3(math.Vec3{})
}

func (n *Node) String() string {
	switch n.Kind {
	case KindMesh:
		return fmt.Sprintf("%s [mesh %s %s]", n.Name, n.Geometry, n.Material.Color)
	case KindLight:
		return fmt.Sprintf("%s [%s light %s x%g]", n.Name, n.Light.Kind, n.Light.Color, n.Light.Intensity)
	default:
		return fmt.Sprintf("%s [%s]", n.Name, n.Kind)
	}
}
