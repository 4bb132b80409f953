package builder

import (
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

// CameraConfig describes the scene camera.
type CameraConfig struct {
	Type string

	// Field of view for perspective cameras. Interpreted per the builder's
	// angle unit.
	FOV float64

	LensRadius    float64
	FocalDistance float64

	// Optional film response curve preset.
	Response string

	Transform *types.Transform
}

// Configure the camera singleton.
func (b *Builder) SetCamera(cfg CameraConfig) error {
	if cfg.Type == "" {
		cfg.Type = "perspective"
	}
	if err := oneOf("camera type", cfg.Type, cameraTypes); err != nil {
		return err
	}
	if err := nonNegative("camera fov", cfg.FOV); err != nil {
		return err
	}
	if err := nonNegative("camera lensradius", cfg.LensRadius); err != nil {
		return err
	}
	if err := nonNegative("camera focaldistance", cfg.FocalDistance); err != nil {
		return err
	}

	e := scene.NewEntity(cfg.Type)
	if cfg.Type == "perspective" {
		fov := b.angle(cfg.FOV)
		if fov == 0 {
			fov = 45.0
		}
		e.Set("fov", scene.Float(fov))
	}
	if cfg.LensRadius > 0 {
		e.Set("lensradius", scene.Float(cfg.LensRadius))
	}
	if cfg.FocalDistance > 0 {
		e.Set("focaldistance", scene.Float(cfg.FocalDistance))
	}
	if cfg.Response != "" {
		if err := oneOf("camera response", cfg.Response, ResponseCurves); err != nil {
			return err
		}
		e.Set("response", scene.Str(cfg.Response))
	}
	e.Meta.Transform = cfg.Transform
	return b.graph.SetSingleton(scene.GroupCamera, e)
}
