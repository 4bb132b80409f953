package builder

import "github.com/Erdk/luxor/scene"

// RendererConfig selects the top-level rendering mode.
type RendererConfig struct {
	Type string
}

// Configure the renderer singleton.
func (b *Builder) SetRenderer(cfg RendererConfig) error {
	if cfg.Type == "" {
		cfg.Type = "sampler"
	}
	if err := oneOf("renderer type", cfg.Type, rendererTypes); err != nil {
		return err
	}
	return b.graph.SetSingleton(scene.GroupRenderer, scene.NewEntity(cfg.Type))
}

// AcceleratorConfig selects the ray intersection accelerator.
type AcceleratorConfig struct {
	Type string
}

// Configure the accelerator singleton.
func (b *Builder) SetAccelerator(cfg AcceleratorConfig) error {
	if cfg.Type == "" {
		cfg.Type = "qbvh"
	}
	if err := oneOf("accelerator type", cfg.Type, acceleratorTypes); err != nil {
		return err
	}
	return b.graph.SetSingleton(scene.GroupAccelerator, scene.NewEntity(cfg.Type))
}

// SamplerConfig selects the pixel sampler.
type SamplerConfig struct {
	Type         string
	PixelSamples int
}

// Configure the sampler singleton.
func (b *Builder) SetSampler(cfg SamplerConfig) error {
	if cfg.Type == "" {
		cfg.Type = "metropolis"
	}
	if err := oneOf("sampler type", cfg.Type, samplerTypes); err != nil {
		return err
	}
	if err := nonNegative("sampler pixelsamples", float64(cfg.PixelSamples)); err != nil {
		return err
	}

	e := scene.NewEntity(cfg.Type)
	if cfg.PixelSamples > 0 {
		e.Set("pixelsamples", scene.Int(cfg.PixelSamples))
	}
	return b.graph.SetSingleton(scene.GroupSampler, e)
}

// IntegratorConfig selects the surface integrator.
type IntegratorConfig struct {
	Type          string
	MaxDepth      int
	LightStrategy string
}

// Configure the surface integrator singleton.
func (b *Builder) SetIntegrator(cfg IntegratorConfig) error {
	if cfg.Type == "" {
		cfg.Type = "path"
	}
	if err := oneOf("integrator type", cfg.Type, surfaceIntegrators); err != nil {
		return err
	}
	if err := nonNegative("integrator maxdepth", float64(cfg.MaxDepth)); err != nil {
		return err
	}

	e := scene.NewEntity(cfg.Type)
	if cfg.MaxDepth > 0 {
		e.Set("maxdepth", scene.Int(cfg.MaxDepth))
	}
	if cfg.LightStrategy != "" {
		if err := oneOf("integrator lightstrategy", cfg.LightStrategy, lightStrategies); err != nil {
			return err
		}
		e.Set("lightstrategy", scene.Str(cfg.LightStrategy))
	}
	return b.graph.SetSingleton(scene.GroupSurfaceIntegrator, e)
}

// VolumeIntegratorConfig selects the volume integrator.
type VolumeIntegratorConfig struct {
	Type     string
	StepSize float64
}

// Configure the volume integrator singleton.
func (b *Builder) SetVolumeIntegrator(cfg VolumeIntegratorConfig) error {
	if cfg.Type == "" {
		cfg.Type = "multi"
	}
	if err := oneOf("volume integrator type", cfg.Type, volumeIntegrators); err != nil {
		return err
	}
	if err := nonNegative("volume integrator stepsize", cfg.StepSize); err != nil {
		return err
	}

	e := scene.NewEntity(cfg.Type)
	if cfg.StepSize > 0 {
		e.Set("stepsize", scene.Float(cfg.StepSize))
	}
	return b.graph.SetSingleton(scene.GroupVolumeIntegrator, e)
}

// FilterConfig selects the pixel reconstruction filter.
type FilterConfig struct {
	Type   string
	XWidth float64
	YWidth float64
}

// Configure the pixel filter singleton.
func (b *Builder) SetFilter(cfg FilterConfig) error {
	if cfg.Type == "" {
		cfg.Type = "mitchell"
	}
	if err := oneOf("filter type", cfg.Type, pixelFilterTypes); err != nil {
		return err
	}
	if err := nonNegative("filter xwidth", cfg.XWidth); err != nil {
		return err
	}
	if err := nonNegative("filter ywidth", cfg.YWidth); err != nil {
		return err
	}

	e := scene.NewEntity(cfg.Type)
	if cfg.XWidth > 0 {
		e.Set("xwidth", scene.Float(cfg.XWidth))
	}
	if cfg.YWidth > 0 {
		e.Set("ywidth", scene.Float(cfg.YWidth))
	}
	return b.graph.SetSingleton(scene.GroupPixelFilter, e)
}
