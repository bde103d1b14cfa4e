package scene

import "fmt"

// Color is a linear RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex converts a 0xRRGGBB value to a Color.
func Hex(v uint32) Color {
	return Color{
		R: float32((v>>16)&0xff) / 255,
		G: float32((v>>8)&0xff) / 255,
		B: float32(v&0xff) / 255,
	}
}

// Common colors used by the props.
var (
	White = Hex(0xffffff)
	Black = Hex(0x000000)
)

// Array returns the components as a fixed array.
func (c Color) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Scale multiplies each component by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// IsBlack reports whether all components are zero.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
