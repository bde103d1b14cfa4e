// Package lighting gathers the scene's lights into flat arrays ready for
// shader upload.
package lighting

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight is a point light in world space.
type PointLight struct {
	Position  [3]float32
	Color     [3]float32 // Linear RGB, 0-1
	Range     float32    // Falloff distance, 0 for none
	Intensity float32
}

// PointLightBuffer holds up to MaxPointLights lights for upload.
type PointLightBuffer struct {
	Lights []PointLight
}

// NewPointLightBuffer creates an empty point light buffer.
func NewPointLightBuffer() *PointLightBuffer {
	return &PointLightBuffer{
		Lights: make([]PointLight, 0, MaxPointLights),
	}
}

// Count returns the number of lights held.
func (b *PointLightBuffer) Count() int {
	return len(b.Lights)
}

// Clear removes all lights from the buffer.
func (b *PointLightBuffer) Clear() {
	b.Lights = b.Lights[:0]
}

// Add appends a light, reporting false when the buffer is full.
func (b *PointLightBuffer) Add(light PointLight) bool {
	if len(b.Lights) >= MaxPointLights {
		return false
	}
	for i := range light.Color {
		light.Color[i] = clamp01(light.Color[i])
	}
	if light.Range < 0 {
		light.Range = 0
	}
	b.Lights = append(b.Lights, light)
	return true
}

// Positions returns positions as [x0, y0, z0, x1, ...] padded to
// MaxPointLights entries.
func (b *PointLightBuffer) Positions() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i, l := range b.Lights {
		copy(out[i*3:], l.Position[:])
	}
	return out
}

// Colors returns colors premultiplied by intensity, laid out like
// Positions.
func (b *PointLightBuffer) Colors() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i, l := range b.Lights {
		out[i*3+0] = l.Color[0] * l.Intensity
		out[i*3+1] = l.Color[1] * l.Intensity
		out[i*3+2] = l.Color[2] * l.Intensity
	}
	return out
}

// Ranges returns one range per light slot.
func (b *PointLightBuffer) Ranges() []float32 {
	out := make([]float32, MaxPointLights)
	for i, l := range b.Lights {
		out[i] = l.Range
	}
	return out
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
