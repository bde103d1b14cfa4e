// Package props builds the street scene's objects. Every factory returns a
// fresh subtree; calling one twice never shares nodes.
package props

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/internal/scene"
	"github.com/Faultbox/toyscene/pkg/math"
)

// Names of the top-level props.
const (
	NameCar         = "car"
	NameRoof        = "roof"
	NameTree        = "tree"
	NameLightPole   = "light-pole"
	NameTrafficCone = "traffic-cone"
	NameFloor       = "floor"
	NameSky         = "sky"
)

// Palette used by the props.
var (
	Red     = scene.Hex(0xff0000)
	Blue    = scene.Hex(0x0000ff)
	Yellow  = scene.Hex(0xffff00)
	Gray    = scene.Hex(0x808080)
	Brown   = scene.Hex(0x8b4513)
	Green   = scene.Hex(0x228b22)
	Orange  = scene.Hex(0xffa500)
	SkyBlue = scene.Hex(0x87ceeb)
)

const quarterTurn = math32.Pi / 2

var (
	noRotate  = math.Vec3{}
	onItsSide = math.Vec3{Z: quarterTurn}
)

// part places one copy of a shared mesh.
type part struct {
	name string
	at   math.Vec3
}

// copies builds one independent node per part. All copies share geom and
// mat but own their transforms.
func copies(geom *geometry.Geometry, mat *scene.Material, rotation math.Vec3, parts ...part) []*scene.Node {
	nodes := make([]*scene.Node, 0, len(parts))
	for _, p := range parts {
		n := scene.NewMesh(p.name, geom, mat)
		n.Position = p.at
		n.Rotation = rotation
		nodes = append(nodes, n)
	}
	return nodes
}

// CurvedRoof builds a capsule-like roof: a cylinder lying along X with a
// sphere capping each end.
func CurvedRoof() *scene.Node {
	roof := scene.NewGroup(NameRoof)
	mat := scene.Standard("roof", Blue)

	roof.Add(scene.NewMesh("roof-body", geometry.Cylinder(0.5, 0.5, 1, 32), mat).Rotated(0, 0, quarterTurn))
	roof.Add(copies(geometry.Sphere(0.5, 32, 16), mat, noRotate,
		part{"roof-cap-left", math.V3(-0.5, 0, 0)},
		part{"roof-cap-right", math.V3(0.5, 0, 0)},
	)...)
	return roof
}

// Car builds the toy car. Its front faces -X.
func Car() *scene.Node {
	car := scene.NewGroup(NameCar)

	car.Add(scene.NewMesh("body", geometry.Box(2, 0.5, 1), scene.Standard("body", Red)).At(0, 0.25, 0))

	car.Add(copies(geometry.Cylinder(0.2, 0.2, 0.5, 32), scene.Standard("tire", scene.Black), onItsSide,
		part{"wheel-front-left", math.V3(-0.8, 0, 0.6)},
		part{"wheel-front-right", math.V3(-0.8, 0, -0.6)},
		part{"wheel-back-left", math.V3(0.8, 0, 0.6)},
		part{"wheel-back-right", math.V3(0.8, 0, -0.6)},
	)...)

	car.Add(CurvedRoof().At(0, 0.8, 0))

	lamp := geometry.Sphere(0.1, 16, 16)
	car.Add(copies(lamp, scene.Standard("headlight", Yellow), noRotate,
		part{"headlight-left", math.V3(-1.1, 0.3, 0.3)},
		part{"headlight-right", math.V3(-1.1, 0.3, -0.3)},
	)...)
	car.Add(copies(lamp, scene.Standard("taillight", Red), noRotate,
		part{"taillight-left", math.V3(1.1, 0.3, 0.3)},
		part{"taillight-right", math.V3(1.1, 0.3, -0.3)},
	)...)

	return car
}

// LightPole builds a street light standing at x=2 with a glowing bulb and
// a point light at the bulb.
func LightPole() *scene.Node {
	pole := scene.NewGroup(NameLightPole)

	pole.Add(scene.NewMesh("pole", geometry.Cylinder(0.05, 0.05, 3, 32), scene.Standard("pole", Gray)).At(2, 1.5, 0))
	pole.Add(scene.NewMesh("bulb", geometry.Sphere(0.2, 16, 16), scene.Glowing("bulb", Yellow, Yellow)).At(2, 3, 0))
	pole.Add(scene.NewLight("bulb-light", scene.Light{
		Kind:      scene.LightPoint,
		Color:     Yellow,
		Intensity: 1,
		Range:     10,
	}).At(2, 3, 0))

	return pole
}

// Tree builds a trunk with a round crown at x=-2, across the car from the
// light pole.
func Tree() *scene.Node {
	tree := scene.NewGroup(NameTree)

	tree.Add(scene.NewMesh("trunk", geometry.Cylinder(0.1, 0.1, 1, 16), scene.Standard("trunk", Brown)).At(-2, 0.5, 0))
	tree.Add(scene.NewMesh("foliage", geometry.Sphere(0.5, 16, 16), scene.Standard("foliage", Green)).At(-2, 1.2, 0))

	return tree
}

// TrafficCone builds an orange cone on a thin black base.
func TrafficCone() *scene.Node {
	cone := scene.NewGroup(NameTrafficCone)

	cone.Add(scene.NewMesh("cone", geometry.Cone(0.2, 0.5, 32), scene.Standard("cone", Orange)).At(0, 0.25, 0))
	cone.Add(scene.NewMesh("cone-base", geometry.Cylinder(0.25, 0.25, 0.05, 32), scene.Standard("cone-base", scene.Black)).At(0, 0.025, 0))

	return cone
}

// Floor builds a 50x50 ground plane lying flat at y=0.
func Floor() *scene.Node {
	return scene.NewMesh(NameFloor, geometry.Plane(50, 50), scene.Standard("floor", Gray)).Rotated(-quarterTurn, 0, 0)
}

// Sky builds the horizon backdrop: a large sphere seen from the inside,
// fading from white at the bottom to sky blue at the top.
func Sky() *scene.Node {
	geom := geometry.Sphere(100, 32, 32).WithGradient(scene.White.Array(), SkyBlue.Array())
	mat := &scene.Material{
		Name:         "horizon",
		Color:        scene.White,
		Side:         scene.SideBack,
		Unlit:        true,
		VertexColors: true,
	}
	return scene.NewMesh(NameSky, geom, mat)
}
