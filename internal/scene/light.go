package scene

// LightKind identifies the type of light emitter.
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	case LightPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Light describes an emitter. Its placement comes from the owning node;
// directional lights shine from the node's position towards the origin.
type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float32
	Range     float32 // Point lights only; 0 means no cutoff
}
