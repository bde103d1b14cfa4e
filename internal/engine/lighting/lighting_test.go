package lighting

import (
	"math"
	"testing"

	"github.com/Faultbox/toyscene/internal/assembly"
	"github.com/Faultbox/toyscene/internal/scene"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestGatherStreet(t *testing.T) {
	env := NewEnvironment()
	env.Gather(assembly.Assemble())

	for i, c := range env.Ambient {
		if !near(c, 0.5) {
			t.Errorf("expected ambient[%d] 0.5, got %f", i, c)
		}
	}

	s := float32(1 / math.Sqrt(3))
	for i, d := range env.SunDirection {
		if !near(d, s) {
			t.Errorf("expected sun direction[%d] %f, got %f", i, s, d)
		}
	}
	if env.SunColor != [3]float32{1, 1, 1} {
		t.Errorf("expected white sun, got %v", env.SunColor)
	}

	if env.Points.Count() != 1 {
		t.Fatalf("expected 1 point light, got %d", env.Points.Count())
	}
	bulb := env.Points.Lights[0]
	if bulb.Position != [3]float32{2, 3, 0} {
		t.Errorf("expected bulb light at (2, 3, 0), got %v", bulb.Position)
	}
	if bulb.Range != 10 {
		t.Errorf("expected range 10, got %f", bulb.Range)
	}
}

func TestGatherResets(t *testing.T) {
	env := NewEnvironment()
	env.Gather(assembly.Assemble())
	env.Gather(scene.NewWorld())

	if env.Ambient != [3]float32{} {
		t.Errorf("expected no ambient, got %v", env.Ambient)
	}
	if env.SunColor != [3]float32{} {
		t.Errorf("expected no sun, got %v", env.SunColor)
	}
	if env.Points.Count() != 0 {
		t.Errorf("expected no point lights, got %d", env.Points.Count())
	}
}

func TestGatherUsesWorldPosition(t *testing.T) {
	w := scene.NewWorld()
	group := scene.NewGroup("lamp-post").At(1, 0, 0)
	group.Add(scene.NewLight("lamp", scene.Light{Kind: scene.LightPoint, Color: scene.White, Intensity: 2}).At(0, 4, 0))
	w.Add(group)

	env := NewEnvironment()
	env.Gather(w)

	if env.Points.Count() != 1 {
		t.Fatalf("expected 1 point light, got %d", env.Points.Count())
	}
	if got := env.Points.Lights[0].Position; got != [3]float32{1, 4, 0} {
		t.Errorf("expected (1, 4, 0), got %v", got)
	}
	if got := env.Points.Colors()[:3]; got[0] != 2 || got[1] != 2 || got[2] != 2 {
		t.Errorf("expected color premultiplied to 2, got %v", got)
	}
}

func TestGatherIgnoresSunAtOrigin(t *testing.T) {
	w := scene.NewWorld()
	w.Add(scene.NewLight("sun", scene.Light{Kind: scene.LightDirectional, Color: scene.White, Intensity: 1}))

	env := NewEnvironment()
	env.Gather(w)

	if env.SunColor != [3]float32{} {
		t.Errorf("expected sun at the origin to be ignored, got %v", env.SunColor)
	}
}

func TestPointLightBufferLimit(t *testing.T) {
	b := NewPointLightBuffer()
	for i := 0; i < MaxPointLights; i++ {
		if !b.Add(PointLight{Position: [3]float32{float32(i), 0, 0}, Intensity: 1}) {
			t.Fatalf("expected light %d to fit", i)
		}
	}
	if b.Add(PointLight{}) {
		t.Error("expected buffer to be full")
	}
	if b.Count() != MaxPointLights {
		t.Errorf("expected %d lights, got %d", MaxPointLights, b.Count())
	}

	pos := b.Positions()
	if len(pos) != MaxPointLights*3 {
		t.Fatalf("expected %d floats, got %d", MaxPointLights*3, len(pos))
	}
	if pos[3*5] != 5 {
		t.Errorf("expected light 5 at x=5, got %f", pos[3*5])
	}
}

func TestPointLightBufferClamps(t *testing.T) {
	b := NewPointLightBuffer()
	b.Add(PointLight{Color: [3]float32{1.5, -0.2, 0.5}, Range: -3, Intensity: 1})

	l := b.Lights[0]
	if l.Color != [3]float32{1, 0, 0.5} {
		t.Errorf("expected clamped color, got %v", l.Color)
	}
	if l.Range != 0 {
		t.Errorf("expected negative range clamped to 0, got %f", l.Range)
	}

	if got := b.Ranges(); len(got) != MaxPointLights {
		t.Errorf("expected %d ranges, got %d", MaxPointLights, len(got))
	}

	b.Clear()
	if b.Count() != 0 {
		t.Errorf("expected empty buffer after Clear, got %d", b.Count())
	}
}
