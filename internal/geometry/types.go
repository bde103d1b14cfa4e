// Package geometry describes primitive shapes and tessellates them into
// indexed triangle meshes ready for GPU upload or export.
package geometry

import "fmt"

// Kind identifies a primitive shape.
type Kind int

const (
	KindBox Kind = iota
	KindCylinder
	KindSphere
	KindCone
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	case KindCone:
		return "cone"
	case KindPlane:
		return "plane"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Geometry holds the dimensional parameters of a primitive. Shapes are
// centered on the origin with Y up. Only the fields relevant to Kind are used.
type Geometry struct {
	Kind Kind

	// Box uses all three; Plane uses Width and Height (XY plane, facing +Z).
	// Cylinder and Cone use Height along Y.
	Width, Height, Depth float32

	// Cylinder radii. A cone is a cylinder with RadiusTop == 0.
	RadiusTop, RadiusBottom float32

	// Sphere radius.
	Radius float32

	// RadialSegments is the number of slices around Y (cylinder, cone, and
	// sphere longitude). HeightSegments is the sphere latitude count.
	RadialSegments int
	HeightSegments int

	// Gradient paints vertex colors from bottom to top when set.
	Gradient *Gradient
}

// Gradient is a vertical vertex color ramp.
type Gradient struct {
	Bottom [3]float32
	Top    [3]float32
}

// Box returns a width x height x depth cuboid.
func Box(width, height, depth float32) *Geometry {
	return &Geometry{Kind: KindBox, Width: width, Height: height, Depth: depth}
}

// Cylinder returns a capped cylinder with the given radii and height.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments int) *Geometry {
	return &Geometry{
		Kind:           KindCylinder,
		RadiusTop:      radiusTop,
		RadiusBottom:   radiusBottom,
		Height:         height,
		RadialSegments: radialSegments,
	}
}

// Cone returns a cone with its apex up.
func Cone(radius, height float32, radialSegments int) *Geometry {
	return &Geometry{
		Kind:           KindCone,
		RadiusBottom:   radius,
		Height:         height,
		RadialSegments: radialSegments,
	}
}

// Sphere returns a UV sphere.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	return &Geometry{
		Kind:           KindSphere,
		Radius:         radius,
		RadialSegments: widthSegments,
		HeightSegments: heightSegments,
	}
}

// Plane returns a width x height rectangle in the XY plane.
func Plane(width, height float32) *Geometry {
	return &Geometry{Kind: KindPlane, Width: width, Height: height}
}

// WithGradient returns a copy of g with a vertex color ramp.
func (g *Geometry) WithGradient(bottom, top [3]float32) *Geometry {
	c := *g
	c.Gradient = &Gradient{Bottom: bottom, Top: top}
	return &c
}

func (g *Geometry) String() string {
	switch g.Kind {
	case KindBox:
		return fmt.Sprintf("box(%g x %g x %g)", g.Width, g.Height, g.Depth)
	case KindCylinder:
		return fmt.Sprintf("cylinder(r=%g/%g h=%g seg=%d)", g.RadiusTop, g.RadiusBottom, g.Height, g.RadialSegments)
	case KindCone:
		return fmt.Sprintf("cone(r=%g h=%g seg=%d)", g.RadiusBottom, g.Height, g.RadialSegments)
	case KindSphere:
		return fmt.Sprintf("sphere(r=%g %dx%d)", g.Radius, g.RadialSegments, g.HeightSegments)
	case KindPlane:
		return fmt.Sprintf("plane(%g x %g)", g.Width, g.Height)
	default:
		return g.Kind.String()
	}
}

// Vertex represents a mesh vertex with position, normal and color.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Mesh holds tessellated triangles ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
	// HasColors reports whether Vertex.Color was painted.
	HasColors bool
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Positions returns the vertex positions as a flat list.
func (m *Mesh) Positions() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Position
	}
	return out
}

// Normals returns the vertex normals as a flat list.
func (m *Mesh) Normals() [][3]float32 {
	out := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Normal
	}
	return out
}
