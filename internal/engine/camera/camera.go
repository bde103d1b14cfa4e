// Package camera provides the perspective camera and the orbit controls that
// move it around the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toyscene/pkg/math"
)

// Perspective is a perspective-projection camera.
type Perspective struct {
	FOV    float32 // Vertical field of view in degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at the origin looking down -Z.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	return &Perspective{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: math.Vec3{Z: -1},
		Up:     math.Vec3{Y: 1},
	}
}

// SetViewport updates the aspect ratio from a surface size.
func (c *Perspective) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// LookAt points the camera at target.
func (c *Perspective) LookAt(target math.Vec3) {
	c.Target = target
}

// ViewMatrix returns the view matrix for this camera.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FOVRadians(), c.Aspect, c.Near, c.Far)
}

// FOVRadians returns the vertical field of view in radians.
func (c *Perspective) FOVRadians() float32 {
	return c.FOV * math32.Pi / 180
}

// Forward returns the unit view direction.
func (c *Perspective) Forward() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the unit right vector of the view.
func (c *Perspective) Right() math.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}
