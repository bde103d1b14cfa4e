package props

import (
	"strings"
	"testing"

	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/internal/scene"
	"github.com/Faultbox/toyscene/pkg/math"
)

func childrenWithPrefix(n *scene.Node, prefix string) []*scene.Node {
	var out []*scene.Node
	for _, c := range n.Children() {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func TestCarParts(t *testing.T) {
	car := Car()

	tests := []struct {
		prefix string
		count  int
	}{
		{"body", 1},
		{"wheel-", 4},
		{NameRoof, 1},
		{"headlight-", 2},
		{"taillight-", 2},
	}
	for _, tt := range tests {
		if got := len(childrenWithPrefix(car, tt.prefix)); got != tt.count {
			t.Errorf("expected %d %s parts, got %d", tt.count, tt.prefix, got)
		}
	}
	if len(car.Children()) != 10 {
		t.Errorf("expected 10 direct children, got %d", len(car.Children()))
	}
}

func TestCarWheelsAreSymmetric(t *testing.T) {
	wheels := childrenWithPrefix(Car(), "wheel-")
	seen := make(map[math.Vec3]bool)
	for _, w := range wheels {
		p := w.Position
		if (p.X != 0.8 && p.X != -0.8) || (p.Z != 0.6 && p.Z != -0.6) || p.Y != 0 {
			t.Errorf("unexpected wheel position %v", p)
		}
		if w.Rotation.Z != quarterTurn {
			t.Errorf("expected wheel rotated 90 degrees about Z, got %v", w.Rotation)
		}
		seen[p] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct wheel positions, got %d", len(seen))
	}

	// Copies share geometry and material but not transforms.
	if wheels[0].Geometry != wheels[1].Geometry || wheels[0].Material != wheels[1].Material {
		t.Error("expected wheels to share geometry and material")
	}
	wheels[0].Position.Y = 5
	if wheels[1].Position.Y != 0 {
		t.Error("moving one wheel moved another")
	}
}

func TestCarLights(t *testing.T) {
	car := Car()
	heads := childrenWithPrefix(car, "headlight-")
	tails := childrenWithPrefix(car, "taillight-")

	if heads[0].Geometry != tails[0].Geometry {
		t.Error("expected head and tail lights to share geometry")
	}
	if heads[0].Material == tails[0].Material {
		t.Error("expected head and tail lights to use different materials")
	}
	if heads[0].Material.Color != Yellow || tails[0].Material.Color != Red {
		t.Errorf("expected yellow headlights and red tail lights, got %s and %s",
			heads[0].Material.Color, tails[0].Material.Color)
	}
	for _, h := range heads {
		if h.Position.X != -1.1 {
			t.Errorf("expected headlight at front (x=-1.1), got %v", h.Position)
		}
	}
	for _, tl := range tails {
		if tl.Position.X != 1.1 {
			t.Errorf("expected tail light at back (x=1.1), got %v", tl.Position)
		}
	}
}

func TestCurvedRoof(t *testing.T) {
	roof := CurvedRoof()
	if roof.Count(scene.KindMesh) != 3 {
		t.Errorf("expected 3 roof meshes, got %d", roof.Count(scene.KindMesh))
	}
	caps := childrenWithPrefix(roof, "roof-cap-")
	if len(caps) != 2 {
		t.Fatalf("expected 2 end caps, got %d", len(caps))
	}
	if caps[0].Geometry.Kind != geometry.KindSphere {
		t.Errorf("expected spherical caps, got %s", caps[0].Geometry.Kind)
	}

	car := Car()
	mounted := car.Find(NameRoof)
	if mounted == nil || mounted.Position != math.V3(0, 0.8, 0) {
		t.Errorf("expected roof mounted at (0, 0.8, 0)")
	}
}

func TestLightPole(t *testing.T) {
	pole := LightPole()
	if got := pole.Count(scene.KindMesh); got != 2 {
		t.Errorf("expected 2 meshes, got %d", got)
	}
	if got := pole.Count(scene.KindLight); got != 1 {
		t.Errorf("expected 1 light, got %d", got)
	}

	bulb := pole.Find("bulb")
	light := pole.Find("bulb-light")
	if bulb.Position != light.Position {
		t.Errorf("expected point light at the bulb, got %v vs %v", light.Position, bulb.Position)
	}
	if bulb.Material.Emissive.IsBlack() {
		t.Error("expected bulb to glow")
	}
	if light.Light.Kind != scene.LightPoint || light.Light.Range != 10 {
		t.Errorf("expected point light with range 10, got %+v", light.Light)
	}
}

func TestTree(t *testing.T) {
	tree := Tree()
	trunk := tree.Find("trunk")
	foliage := tree.Find("foliage")
	if trunk == nil || foliage == nil || len(tree.Children()) != 2 {
		t.Fatal("expected trunk and foliage")
	}
	if foliage.Position.Y <= trunk.Position.Y {
		t.Error("expected foliage above the trunk")
	}
	if trunk.Position.X != -2 {
		t.Errorf("expected tree at x=-2, got %v", trunk.Position)
	}
}

func TestTrafficCone(t *testing.T) {
	cone := TrafficCone()
	if len(cone.Children()) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(cone.Children()))
	}
	if cone.Find("cone").Geometry.Kind != geometry.KindCone {
		t.Error("expected a cone")
	}
	base := cone.Find("cone-base")
	if base.Geometry.Height != 0.05 || base.Position.Y != 0.025 {
		t.Errorf("expected flat base resting on the ground, got %s at %v", base.Geometry, base.Position)
	}
}

func TestFloorLiesFlat(t *testing.T) {
	floor := Floor()
	up := floor.WorldMatrix().TransformDirection(math.Vec3{Z: 1})
	if up.Y < 0.999 {
		t.Errorf("expected floor to face up, got normal %v", up)
	}
}

func TestSkyIsBackdrop(t *testing.T) {
	sky := Sky()
	if sky.Material.Side != scene.SideBack || !sky.Material.Unlit {
		t.Errorf("expected unlit back-side material, got %+v", sky.Material)
	}
	if sky.Geometry.Radius != 100 || sky.Geometry.Gradient == nil {
		t.Errorf("expected radius 100 sphere with a gradient, got %s", sky.Geometry)
	}
}

func TestFactoriesReturnIndependentSubtrees(t *testing.T) {
	factories := map[string]func() *scene.Node{
		NameCar:         Car,
		NameRoof:        CurvedRoof,
		NameTree:        Tree,
		NameLightPole:   LightPole,
		NameTrafficCone: TrafficCone,
		NameFloor:       Floor,
		NameSky:         Sky,
	}

	for name, build := range factories {
		t.Run(name, func(t *testing.T) {
			a, b := build(), build()
			ids := make(map[uint64]bool)
			ptrs := make(map[*scene.Node]bool)
			a.Walk(func(n *scene.Node, _ int) bool {
				ids[n.ID] = true
				ptrs[n] = true
				return true
			})
			b.Walk(func(n *scene.Node, _ int) bool {
				if ids[n.ID] || ptrs[n] {
					t.Errorf("node %q shared between calls", n.Name)
				}
				return true
			})
		})
	}
}
