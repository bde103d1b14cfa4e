package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toyscene/pkg/math"
)

// polarEpsilon keeps the camera off the poles, where the view's up vector
// would be parallel to the view direction.
const polarEpsilon = 1e-6

// OrbitConfig holds orbit control limits and behavior.
type OrbitConfig struct {
	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32 // Radians from +Y
	MaxPolarAngle float32

	EnableDamping bool
	DampingFactor float32

	EnableRotate bool
	EnableZoom   bool
	EnablePan    bool

	// ScreenSpacePanning pans in the view plane; otherwise panning moves
	// the target across the ground plane.
	ScreenSpacePanning bool

	RotateSpeed float32
	ZoomSpeed   float32
	PanSpeed    float32
}

// DefaultOrbitConfig returns the limits used by the street scene.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		MinDistance:   2,
		MaxDistance:   10,
		MinPolarAngle: 0,
		MaxPolarAngle: math32.Pi / 2,
		EnableDamping: true,
		DampingFactor: 0.25,
		EnableRotate:  true,
		EnableZoom:    true,
		EnablePan:     true,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
	}
}

// OrbitControls orbits a camera around a pivot in response to pointer
// input. Input handlers only queue motion; Update applies it and must run
// once per frame, otherwise damped motion stalls.
type OrbitControls struct {
	Config OrbitConfig
	Target math.Vec3

	camera *Perspective

	// Spherical coordinates of the camera relative to Target.
	radius float32
	theta  float32 // Azimuth around +Y, 0 along +Z
	phi    float32 // Polar angle from +Y

	// Pending motion.
	deltaTheta float32
	deltaPhi   float32
	scale      float32
	panOffset  math.Vec3

	viewportHeight float32
}

// NewOrbitControls binds controls to cam, pivoting around target.
func NewOrbitControls(cam *Perspective, target math.Vec3, cfg OrbitConfig) *OrbitControls {
	c := &OrbitControls{
		Config:         cfg,
		Target:         target,
		camera:         cam,
		scale:          1,
		viewportHeight: 720,
	}
	c.Sync()
	return c
}

// Sync re-reads the camera position into the orbit state and applies the
// configured limits.
func (c *OrbitControls) Sync() {
	offset := c.camera.Position.Sub(c.Target)
	c.radius = offset.Length()
	if c.radius > 0 {
		c.theta = math32.Atan2(offset.X, offset.Z)
		c.phi = math32.Acos(clamp32(offset.Y/c.radius, -1, 1))
	}
	c.clamp()
	c.apply()
}

// SetViewport sets the surface height used to scale pointer deltas.
func (c *OrbitControls) SetViewport(width, height int) {
	if height > 0 {
		c.viewportHeight = float32(height)
	}
}

// HandleDrag queues an orbit rotation from a pointer drag in pixels.
func (c *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	if !c.Config.EnableRotate {
		return
	}
	c.deltaTheta -= 2 * math32.Pi * deltaX / c.viewportHeight * c.Config.RotateSpeed
	c.deltaPhi -= 2 * math32.Pi * deltaY / c.viewportHeight * c.Config.RotateSpeed
}

// HandleZoom queues a dolly from scroll wheel delta. Positive delta moves
// the camera towards the target.
func (c *OrbitControls) HandleZoom(delta float32) {
	if !c.Config.EnableZoom || delta == 0 {
		return
	}
	step := math32.Pow(0.95, c.Config.ZoomSpeed)
	c.scale *= math32.Pow(step, delta)
}

// HandlePan queues a pan of the target from a pointer drag in pixels.
func (c *OrbitControls) HandlePan(deltaX, deltaY float32) {
	if !c.Config.EnablePan {
		return
	}

	// Pixels map to world units at the target's depth.
	targetDistance := c.radius * math32.Tan(c.camera.FOVRadians()/2)
	left := 2 * deltaX * targetDistance / c.viewportHeight * c.Config.PanSpeed
	up := 2 * deltaY * targetDistance / c.viewportHeight * c.Config.PanSpeed

	right := c.camera.Right()
	c.panOffset = c.panOffset.Add(right.Scale(-left))

	var upDir math.Vec3
	if c.Config.ScreenSpacePanning {
		upDir = right.Cross(c.camera.Forward()).Normalize()
	} else {
		upDir = c.camera.Up.Cross(right).Normalize()
	}
	c.panOffset = c.panOffset.Add(upDir.Scale(up))
}

// Update applies pending motion to the camera. It reports whether the
// camera moved.
func (c *OrbitControls) Update() bool {
	before := c.camera.Position
	beforeTarget := c.Target

	if c.Config.EnableDamping {
		f := c.Config.DampingFactor
		c.theta += c.deltaTheta * f
		c.phi += c.deltaPhi * f
		c.Target = c.Target.Add(c.panOffset.Scale(f))
	} else {
		c.theta += c.deltaTheta
		c.phi += c.deltaPhi
		c.Target = c.Target.Add(c.panOffset)
	}
	c.radius *= c.scale

	c.clamp()
	c.apply()

	if c.Config.EnableDamping {
		keep := 1 - c.Config.DampingFactor
		c.deltaTheta *= keep
		c.deltaPhi *= keep
		c.panOffset = c.panOffset.Scale(keep)
	} else {
		c.deltaTheta = 0
		c.deltaPhi = 0
		c.panOffset = math.Vec3{}
	}
	c.scale = 1

	return c.camera.Position != before || c.Target != beforeTarget
}

// Distance returns the camera's distance from the target.
func (c *OrbitControls) Distance() float32 {
	return c.radius
}

// PolarAngle returns the angle from +Y in radians.
func (c *OrbitControls) PolarAngle() float32 {
	return c.phi
}

// AzimuthAngle returns the angle around +Y in radians.
func (c *OrbitControls) AzimuthAngle() float32 {
	return c.theta
}

// clamp enforces the polar and distance limits.
func (c *OrbitControls) clamp() {
	if c.phi < c.Config.MinPolarAngle {
		c.phi = c.Config.MinPolarAngle
	}
	if c.phi > c.Config.MaxPolarAngle {
		c.phi = c.Config.MaxPolarAngle
	}
	if c.phi < polarEpsilon {
		c.phi = polarEpsilon
	}
	if c.phi > math32.Pi-polarEpsilon {
		c.phi = math32.Pi - polarEpsilon
	}

	if c.radius < c.Config.MinDistance {
		c.radius = c.Config.MinDistance
	}
	if c.radius > c.Config.MaxDistance {
		c.radius = c.Config.MaxDistance
	}
}

// apply writes the spherical state back to the camera.
func (c *OrbitControls) apply() {
	sinPhi, cosPhi := math32.Sincos(c.phi)
	sinTheta, cosTheta := math32.Sincos(c.theta)
	offset := math.Vec3{
		X: c.radius * sinPhi * sinTheta,
		Y: c.radius * cosPhi,
		Z: c.radius * sinPhi * cosTheta,
	}
	c.camera.Position = c.Target.Add(offset)
	c.camera.LookAt(c.Target)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
