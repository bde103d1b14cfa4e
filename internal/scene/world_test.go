package scene

import (
	"testing"

	"github.com/Faultbox/toyscene/internal/geometry"
)

func TestWorldAddIndexesSubtrees(t *testing.T) {
	w := NewWorld()
	group := NewGroup("group")
	mesh := NewMesh("mesh", geometry.Box(1, 1, 1), Standard("red", Hex(0xff0000)))
	group.Add(mesh)
	w.Add(group)

	if got, ok := w.Node(mesh.ID); !ok || got != mesh {
		t.Error("expected nested mesh to be indexed")
	}
	if _, ok := w.Node(w.Root.ID); ok {
		t.Error("expected the root not to be indexed")
	}
	if group.Parent() != w.Root {
		t.Error("expected top-level node to hang off the root")
	}
	if w.Root.Parent() != nil {
		t.Error("expected root to have no parent")
	}
}

func TestWorldStats(t *testing.T) {
	w := NewWorld()
	w.Add(
		NewGroup("g").Add(NewMesh("m", geometry.Box(1, 1, 1), Standard("a", White))),
		NewLight("sun", Light{Kind: LightDirectional, Color: White, Intensity: 1}),
		NewLight("fill", Light{Kind: LightAmbient, Color: White, Intensity: 0.5}),
	)

	s := w.Stats()
	if s.Groups != 1 || s.Meshes != 1 || s.Lights != 2 || s.Cameras != 0 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.Total() != 4 {
		t.Errorf("expected 4 nodes, got %d", s.Total())
	}
	if len(w.Collect(KindLight)) != 2 {
		t.Errorf("expected 2 lights, got %d", len(w.Collect(KindLight)))
	}
	if w.Find("m") == nil {
		t.Error("expected to find nested mesh by name")
	}
	if len(w.TopLevel()) != 3 {
		t.Errorf("expected 3 top-level nodes, got %d", len(w.TopLevel()))
	}
}

func TestLightValueIsCopied(t *testing.T) {
	l := Light{Kind: LightPoint, Color: White, Intensity: 1, Range: 10}
	a := NewLight("a", l)
	b := NewLight("b", l)
	if a.Light == b.Light {
		t.Error("expected each light node to own its light")
	}
}
