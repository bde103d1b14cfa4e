package lighting

import (
	"github.com/Faultbox/toyscene/internal/logger"
	"github.com/Faultbox/toyscene/internal/scene"
)

// Environment is the lighting state of one frame.
type Environment struct {
	Ambient [3]float32 // Sum of ambient lights, color times intensity

	// Direction points from the origin towards the directional light.
	SunDirection [3]float32
	SunColor     [3]float32 // Zero when there is no directional light

	Points *PointLightBuffer
}

// NewEnvironment returns an unlit environment.
func NewEnvironment() *Environment {
	return &Environment{
		SunDirection: [3]float32{0, 1, 0},
		Points:       NewPointLightBuffer(),
	}
}

// Gather rebuilds env from every light node in w. Only the first
// directional light is used; point lights beyond MaxPointLights are
// dropped.
func (env *Environment) Gather(w *scene.World) {
	env.Ambient = [3]float32{}
	env.SunColor = [3]float32{}
	env.SunDirection = [3]float32{0, 1, 0}
	env.Points.Clear()

	haveSun := false
	for _, n := range w.Collect(scene.KindLight) {
		l := n.Light
		if l == nil {
			continue
		}
		c := l.Color.Scale(l.Intensity).Array()

		switch l.Kind {
		case scene.LightAmbient:
			for i := range env.Ambient {
				env.Ambient[i] += c[i]
			}
		case scene.LightDirectional:
			if haveSun {
				logger.Debug("extra directional light ignored", logger.String("light", n.Name))
				continue
			}
			dir := n.WorldPosition()
			if dir.Length() == 0 {
				logger.Warn("directional light at the origin has no direction", logger.String("light", n.Name))
				continue
			}
			env.SunDirection = dir.Normalize().Array()
			env.SunColor = c
			haveSun = true
		case scene.LightPoint:
			ok := env.Points.Add(PointLight{
				Position:  n.WorldPosition().Array(),
				Color:     l.Color.Array(),
				Range:     l.Range,
				Intensity: l.Intensity,
			})
			if !ok {
				logger.Warn("point light limit reached", logger.String("light", n.Name), logger.Int("max", MaxPointLights))
			}
		}
	}
}
