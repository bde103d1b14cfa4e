package app

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/toyscene/internal/config"
	"github.com/Faultbox/toyscene/internal/engine/camera"
	"github.com/Faultbox/toyscene/pkg/math"
)

// NewCamera builds the initial camera for a surface of the given size.
func NewCamera(cfg config.CameraConfig, width, height int) *camera.Perspective {
	cam := camera.NewPerspective(cfg.FOV, 1, cfg.Near, cfg.Far)
	cam.SetViewport(width, height)
	cam.Position = vec(cfg.Position)
	cam.LookAt(vec(cfg.Target))
	return cam
}

// OrbitConfig converts the configured limits, given in degrees, into
// orbit control settings.
func OrbitConfig(cfg config.ControlsConfig) camera.OrbitConfig {
	out := camera.DefaultOrbitConfig()
	out.MinDistance = cfg.MinDistance
	out.MaxDistance = cfg.MaxDistance
	out.MaxPolarAngle = cfg.MaxPolarAngle * math32.Pi / 180
	out.EnableDamping = cfg.Damping
	out.DampingFactor = cfg.DampingFactor
	out.RotateSpeed = cfg.RotateSpeed
	out.ZoomSpeed = cfg.ZoomSpeed
	out.PanSpeed = cfg.PanSpeed
	return out
}

// NewControls builds orbit controls for cam around the configured target.
func NewControls(cam *camera.Perspective, camCfg config.CameraConfig, cfg config.ControlsConfig) *camera.OrbitControls {
	return camera.NewOrbitControls(cam, vec(camCfg.Target), OrbitConfig(cfg))
}

func vec(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
