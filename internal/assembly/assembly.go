// Package assembly puts the props, lights and backdrop together into the
// street scene.
package assembly

import (
	"github.com/Faultbox/toyscene/internal/props"
	"github.com/Faultbox/toyscene/internal/scene"
)

// Names of the scene-level lights.
const (
	NameAmbient = "ambient-light"
	NameSun     = "directional-light"
)

// Assemble builds the complete street scene. Every prop is created exactly
// once: the car at the origin, the cone beside it, the light pole and tree
// on opposite sides.
func Assemble() *scene.World {
	w := scene.NewWorld()
	w.Background = scene.White

	w.Add(
		props.Car(),
		props.LightPole(),
		props.Tree(),
		props.Floor(),
		props.Sky(),
		scene.NewLight(NameAmbient, scene.Light{
			Kind:      scene.LightAmbient,
			Color:     scene.White,
			Intensity: 0.5,
		}),
		props.TrafficCone().At(1, 0, 1),
		scene.NewLight(NameSun, scene.Light{
			Kind:      scene.LightDirectional,
			Color:     scene.White,
			Intensity: 1,
		}).At(5, 5, 5),
	)

	return w
}
