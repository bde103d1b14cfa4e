package scene

import (
	"testing"

	"github.com/Faultbox/toyscene/internal/geometry"
)

func TestInstances(t *testing.T) {
	w := NewWorld()
	mat := Standard("m", White)

	group := NewGroup("group").At(1, 0, 0)
	inner := NewMesh("inner", geometry.Box(1, 1, 1), mat).At(0, 2, 0)
	group.Add(inner, NewLight("lamp", Light{Kind: LightPoint}))
	w.Add(group, NewMesh("outer", geometry.Plane(1, 1), mat).At(0, 0, 3))

	got := w.Instances(nil)
	if len(got) != 2 {
		t.Fatalf("expected 2 instances, got %d", len(got))
	}

	byName := map[string]Instance{}
	for _, in := range got {
		byName[in.Node.Name] = in
	}

	p := byName["inner"].Model.TransformPoint([3]float32{})
	if p != [3]float32{1, 2, 0} {
		t.Errorf("expected inner at (1, 2, 0), got %v", p)
	}
	if want := inner.WorldMatrix(); byName["inner"].Model != want {
		t.Errorf("expected instance matrix to match WorldMatrix")
	}

	p = byName["outer"].Model.TransformPoint([3]float32{})
	if p != [3]float32{0, 0, 3} {
		t.Errorf("expected outer at (0, 0, 3), got %v", p)
	}
}

func TestInstancesReusesBuffer(t *testing.T) {
	w := NewWorld()
	w.Add(NewMesh("a", geometry.Box(1, 1, 1), Standard("m", White)))

	buf := make([]Instance, 0, 4)
	buf = w.Instances(buf[:0])
	buf = w.Instances(buf[:0])
	if len(buf) != 1 {
		t.Errorf("expected 1 instance after reuse, got %d", len(buf))
	}
}
