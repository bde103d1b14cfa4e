package scene

// Side selects which faces of a mesh are drawn.
type Side int

const (
	SideFront Side = iota
	SideBack
	SideDouble
)

func (s Side) String() string {
	switch s {
	case SideBack:
		return "back"
	case SideDouble:
		return "double"
	default:
		return "front"
	}
}

// Material describes how a mesh is shaded. Materials are never modified
// after construction, so several nodes may share one pointer.
type Material struct {
	Name     string
	Color    Color
	Emissive Color
	Side     Side

	// Unlit materials ignore scene lights.
	Unlit bool
	// VertexColors multiplies Color by the mesh's per-vertex colors.
	VertexColors bool
}

// Standard returns a lit material with the given base color.
func Standard(name string, color Color) *Material {
	return &Material{Name: name, Color: color}
}

// Glowing returns a lit material that also emits its own color.
func Glowing(name string, color, emissive Color) *Material {
	return &Material{Name: name, Color: color, Emissive: emissive}
}
