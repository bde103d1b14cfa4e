package scene

// World is the root container of everything drawn in one scene.
type World struct {
	Root       *Node
	Background Color

	index map[uint64]*Node
}

// Stats counts the nodes in a world by kind, excluding the root.
type Stats struct {
	Groups  int
	Meshes  int
	Lights  int
	Cameras int
}

// Total returns the number of counted nodes.
func (s Stats) Total() int {
	return s.Groups + s.Meshes + s.Lights + s.Cameras
}

// NewWorld creates an empty world with a white background.
func NewWorld() *World {
	return &World{
		Root:       NewGroup("world"),
		Background: White,
		index:      make(map[uint64]*Node),
	}
}

// Add inserts complete subtrees at the top level of the world.
func (w *World) Add(nodes ...*Node) {
	w.Root.Add(nodes...)
	for _, n := range nodes {
		n.Walk(func(node *Node, _ int) bool {
			w.index[node.ID] = node
			return true
		})
	}
}

// Node looks up a node by ID.
func (w *World) Node(id uint64) (*Node, bool) {
	n, ok := w.index[id]
	return n, ok
}

// TopLevel returns the nodes directly under the root.
func (w *World) TopLevel() []*Node {
	return w.Root.Children()
}

// Walk visits every node below the root. Top-level nodes have depth 0.
func (w *World) Walk(fn func(node *Node, depth int) bool) {
	for _, n := range w.Root.Children() {
		n.walk(fn, 0)
	}
}

// Find returns the first node with the given name.
func (w *World) Find(name string) *Node {
	for _, n := range w.Root.Children() {
		if found := n.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Collect returns every node of the given kind.
func (w *World) Collect(kind Kind) []*Node {
	var out []*Node
	w.Walk(func(node *Node, _ int) bool {
		if node.Kind == kind {
			out = append(out, node)
		}
		return true
	})
	return out
}

// Stats returns node counts by kind.
func (w *World) Stats() Stats {
	var s Stats
	w.Walk(func(node *Node, _ int) bool {
		switch node.Kind {
		case KindGroup:
			s.Groups++
		case KindMesh:
			s.Meshes++
		case KindLight:
			s.Lights++
		case KindCamera:
			s.Cameras++
		}
		return true
	})
	return s
}
