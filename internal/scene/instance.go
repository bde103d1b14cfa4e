package scene

import "github.com/Faultbox/toyscene/pkg/math"

// Instance is a mesh node paired with its world transform for one frame.
type Instance struct {
	Node  *Node
	Model math.Mat4
}

// Instances appends every mesh node below the root to dst, composing
// transforms once per level instead of once per node.
func (w *World) Instances(dst []Instance) []Instance {
	root := w.Root.LocalMatrix()
	for _, n := range w.Root.Children() {
		dst = appendInstances(dst, n, root)
	}
	return dst
}

func appendInstances(dst []Instance, n *Node, parent math.Mat4) []Instance {
	model := parent.Mul(n.LocalMatrix())
	if n.Kind == KindMesh {
		dst = append(dst, Instance{Node: n, Model: model})
	}
	for _, c := range n.children {
		dst = appendInstances(dst, c, model)
	}
	return dst
}
