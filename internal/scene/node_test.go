package scene

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/toyscene/internal/engine/camera"
	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/pkg/math"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNodeIDsAreUnique(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		n := NewGroup("g")
		if seen[n.ID] {
			t.Fatalf("duplicate node ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestAddSetsParent(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.Add(child)

	if child.Parent() != parent {
		t.Error("expected child's parent to be set")
	}
	if len(parent.Children()) != 1 {
		t.Errorf("expected 1 child, got %d", len(parent.Children()))
	}
	if !parent.IsAncestorOf(child) {
		t.Error("expected parent to be an ancestor of child")
	}
}

func TestAddRejectsInvalidTrees(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")
	a.Add(b)
	b.Add(c)

	expectPanic(t, "self", func() { a.Add(a) })
	expectPanic(t, "cycle", func() {
		top := NewGroup("top")
		top.Add(a)
		top.Remove(a)
		c.Add(a)
	})
	expectPanic(t, "second parent", func() { NewGroup("other").Add(c) })
	expectPanic(t, "nil", func() { a.Add(nil) })
}

func TestRemoveDetaches(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.Add(child)

	if !parent.Remove(child) {
		t.Fatal("expected Remove to find the child")
	}
	if child.Parent() != nil {
		t.Error("expected removed child to have no parent")
	}
	if parent.Remove(child) {
		t.Error("expected second Remove to report false")
	}

	// A detached node can be re-parented.
	NewGroup("new").Add(child)
}

func TestWorldMatrixComposesParents(t *testing.T) {
	car := NewGroup("car").At(1, 0, 1)
	roof := NewGroup("roof").At(0, 0.8, 0)
	endCap := NewMesh("cap", geometry.Sphere(0.5, 8, 8), Standard("blue", Hex(0x0000ff))).At(-0.5, 0, 0)
	car.Add(roof)
	roof.Add(endCap)

	got := endCap.WorldPosition()
	want := math.Vec3{X: 0.5, Y: 0.8, Z: 1}
	if got.Distance(want) > 0.0001 {
		t.Errorf("expected world position %v, got %v", want, got)
	}
}

func TestRotatedChildFollowsParent(t *testing.T) {
	parent := NewGroup("p").Rotated(0, float32(gomath.Pi/2), 0)
	child := NewGroup("c").At(1, 0, 0)
	parent.Add(child)

	got := child.WorldPosition()
	want := math.Vec3{Z: -1}
	if got.Distance(want) > 0.0001 {
		t.Errorf("expected world position %v, got %v", want, got)
	}
}

func TestWalkAndFind(t *testing.T) {
	root := NewGroup("root")
	left := NewGroup("left")
	right := NewGroup("right")
	leaf := NewGroup("leaf")
	root.Add(left, right)
	left.Add(leaf)

	var order []string
	root.Walk(func(n *Node, depth int) bool {
		order = append(order, n.Name)
		return true
	})
	want := []string{"root", "left", "leaf", "right"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("walk order %d: expected %s, got %s", i, want[i], order[i])
		}
	}

	if root.Find("leaf") != leaf {
		t.Error("expected Find to return the leaf")
	}
	if root.Find("missing") != nil {
		t.Error("expected Find to return nil for unknown names")
	}

	skipped := 0
	root.Walk(func(n *Node, depth int) bool {
		skipped++
		return n.Name != "left"
	})
	if skipped != 3 {
		t.Errorf("expected 3 visits when skipping left's children, got %d", skipped)
	}
}

func TestCameraNodeTakesCameraPosition(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	cam.Position = math.Vec3{Z: 5}
	n := NewCamera("camera", cam)

	if n.Kind != KindCamera || n.Position != cam.Position {
		t.Errorf("expected camera node at %v, got %v (%s)", cam.Position, n.Position, n.Kind)
	}
	if !n.Kind.Transient() || !KindLight.Transient() || KindMesh.Transient() || KindGroup.Transient() {
		t.Error("expected only light and camera kinds to be transient")
	}
}

func TestHex(t *testing.T) {
	c := Hex(0xff8000)
	if c.R != 1 || c.B != 0 {
		t.Errorf("expected (1, ~0.5, 0), got %v", c)
	}
	if c.String() != "#ff8000" {
		t.Errorf("expected #ff8000, got %s", c.String())
	}
}
