// Package export converts a scene into a glTF 2.0 document and hands the
// encoded bytes to a saver.
package export

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/toyscene/internal/geometry"
	"github.com/Faultbox/toyscene/internal/scene"
	"github.com/Faultbox/toyscene/pkg/math"
)

// glTF extension names written as plain maps.
const (
	extLightsPunctual = "KHR_lights_punctual"
	extUnlit          = "KHR_materials_unlit"
)

// extrasKind is the extras key holding the scene node kind.
const extrasKind = "kind"

// ErrNilWorld is returned when there is nothing to export.
var ErrNilWorld = errors.New("export: nil world")

type meshKey struct {
	geom *geometry.Geometry
	mat  *scene.Material
}

// builder accumulates glTF objects, sharing meshes and materials between
// nodes that share them in the scene.
type builder struct {
	doc       *gltf.Document
	meshes    map[meshKey]int
	materials map[*scene.Material]int
	lights    []any
}

// Document converts every node of the world, lights and cameras included,
// into a glTF document. Top-level nodes form the default scene.
func Document(w *scene.World) (*gltf.Document, error) {
	if w == nil {
		return nil, ErrNilWorld
	}

	b := &builder{
		doc:       gltf.NewDocument(),
		meshes:    make(map[meshKey]int),
		materials: make(map[*scene.Material]int),
	}
	b.doc.Asset.Generator = "toyscene"
	b.doc.Scenes[0].Name = w.Root.Name
	b.doc.Scenes[0].Extras = map[string]any{"background": w.Background.Array()}

	for _, n := range w.TopLevel() {
		idx, err := b.node(n)
		if err != nil {
			return nil, err
		}
		b.doc.Scenes[0].Nodes = append(b.doc.Scenes[0].Nodes, idx)
	}

	if len(b.lights) > 0 {
		if b.doc.Extensions == nil {
			b.doc.Extensions = gltf.Extensions{}
		}
		b.doc.Extensions[extLightsPunctual] = map[string]any{"lights": b.lights}
		b.use(extLightsPunctual)
	}

	return b.doc, nil
}

func (b *builder) use(ext string) {
	for _, e := range b.doc.ExtensionsUsed {
		if e == ext {
			return
		}
	}
	b.doc.ExtensionsUsed = append(b.doc.ExtensionsUsed, ext)
}

func (b *builder) node(n *scene.Node) (int, error) {
	out := &gltf.Node{
		Name:        n.Name,
		Translation: vec64(n.Position),
		Rotation:    quat64(math.QuatFromEuler(n.Rotation)),
		Scale:       vec64(n.Scale),
		Extras:      map[string]any{extrasKind: n.Kind.String()},
	}

	switch n.Kind {
	case scene.KindMesh:
		mesh, err := b.mesh(n)
		if err != nil {
			return 0, err
		}
		out.Mesh = gltf.Index(mesh)
	case scene.KindLight:
		if n.Light == nil {
			return 0, fmt.Errorf("export: light node %q has no light", n.Name)
		}
		b.light(out, n.Light)
	case scene.KindCamera:
		if n.Camera == nil {
			return 0, fmt.Errorf("export: camera node %q has no camera", n.Name)
		}
		out.Camera = gltf.Index(b.camera(n))
	}

	idx := len(b.doc.Nodes)
	b.doc.Nodes = append(b.doc.Nodes, out)

	for _, c := range n.Children() {
		child, err := b.node(c)
		if err != nil {
			return 0, err
		}
		out.Children = append(out.Children, child)
	}
	return idx, nil
}

func (b *builder) mesh(n *scene.Node) (int, error) {
	if n.Geometry == nil || n.Material == nil {
		return 0, fmt.Errorf("export: mesh node %q needs geometry and material", n.Name)
	}
	key := meshKey{geom: n.Geometry, mat: n.Material}
	if idx, ok := b.meshes[key]; ok {
		return idx, nil
	}

	m := geometry.Build(n.Geometry)
	if n.Material.Side == scene.SideBack {
		m = m.Inverted()
	}
	if len(m.Indices) == 0 {
		return 0, fmt.Errorf("export: mesh node %q tessellated to nothing", n.Name)
	}

	attrs := gltf.PrimitiveAttributes{
		gltf.POSITION: modeler.WritePosition(b.doc, m.Positions()),
		gltf.NORMAL:   modeler.WriteNormal(b.doc, m.Normals()),
	}
	if m.HasColors && n.Material.VertexColors {
		colors := make([][3]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			colors[i] = v.Color
		}
		attrs[gltf.COLOR_0] = modeler.WriteColor(b.doc, colors)
	}

	prim := &gltf.Primitive{
		Attributes: attrs,
		Indices:    gltf.Index(modeler.WriteIndices(b.doc, m.Indices)),
		Material:   gltf.Index(b.material(n.Material)),
		Mode:       gltf.PrimitiveTriangles,
	}

	idx := len(b.doc.Meshes)
	b.doc.Meshes = append(b.doc.Meshes, &gltf.Mesh{
		Name:       n.Geometry.Kind.String(),
		Primitives: []*gltf.Primitive{prim},
	})
	b.meshes[key] = idx
	return idx, nil
}

func (b *builder) material(mat *scene.Material) int {
	if idx, ok := b.materials[mat]; ok {
		return idx
	}

	out := &gltf.Material{
		Name: mat.Name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(mat.Color.R), float64(mat.Color.G), float64(mat.Color.B), 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(1),
		},
		EmissiveFactor: [3]float64{float64(mat.Emissive.R), float64(mat.Emissive.G), float64(mat.Emissive.B)},
		DoubleSided:    mat.Side == scene.SideDouble,
	}
	if mat.Unlit {
		out.Extensions = gltf.Extensions{extUnlit: map[string]any{}}
		b.use(extUnlit)
	}

	idx := len(b.doc.Materials)
	b.doc.Materials = append(b.doc.Materials, out)
	b.materials[mat] = idx
	return idx
}

// light attaches a punctual light to out. Ambient light has no glTF
// equivalent and is carried in extras only.
func (b *builder) light(out *gltf.Node, l *scene.Light) {
	extras := out.Extras.(map[string]any)
	extras["light"] = l.Kind.String()
	extras["color"] = l.Color.Array()
	extras["intensity"] = l.Intensity

	var typ string
	switch l.Kind {
	case scene.LightDirectional:
		typ = "directional"
	case scene.LightPoint:
		typ = "point"
	default:
		return
	}

	def := map[string]any{
		"type":      typ,
		"color":     l.Color.Array(),
		"intensity": l.Intensity,
	}
	if l.Kind == scene.LightPoint && l.Range > 0 {
		def["range"] = l.Range
	}
	out.Extensions = gltf.Extensions{extLightsPunctual: map[string]any{"light": len(b.lights)}}
	b.lights = append(b.lights, def)
}

func (b *builder) camera(n *scene.Node) int {
	cam := n.Camera
	idx := len(b.doc.Cameras)
	b.doc.Cameras = append(b.doc.Cameras, &gltf.Camera{
		Name: n.Name,
		Perspective: &gltf.Perspective{
			Yfov:        float64(cam.FOVRadians()),
			Znear:       float64(cam.Near),
			Zfar:        gltf.Float(float64(cam.Far)),
			AspectRatio: gltf.Float(float64(cam.Aspect)),
		},
	})
	return idx
}

func vec64(v math.Vec3) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}

func quat64(q math.Quat) [4]float64 {
	return [4]float64{float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)}
}
