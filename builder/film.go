package builder

import "github.com/Erdk/luxor/scene"

// FilmConfig describes the output film.
type FilmConfig struct {
	Width    int
	Height   int
	FileName string

	// Halt the render after this many samples per pixel. Zero disables.
	HaltSPP int
}

// Configure the film singleton. Setting the film replaces any previous film
// entity wholesale, including tonemap settings merged into it earlier.
func (b *Builder) SetFilm(cfg FilmConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return scene.NewValidationError("film resolution", "width and height must be positive")
	}
	if err := nonNegative("film haltspp", float64(cfg.HaltSPP)); err != nil {
		return err
	}

	e := scene.NewEntity("fleximage").
		Set("xresolution", scene.Int(cfg.Width)).
		Set("yresolution", scene.Int(cfg.Height))
	if cfg.FileName != "" {
		e.Set("filename", scene.Str(cfg.FileName))
	}
	if cfg.HaltSPP > 0 {
		e.Set("haltspp", scene.Int(cfg.HaltSPP))
	}
	return b.graph.SetSingleton(scene.GroupFilm, e)
}

// TonemapConfig describes the tonemap operator layered onto the film.
type TonemapConfig struct {
	Kernel string

	// Reinhard parameters.
	Prescale  float64
	Postscale float64
	Burn      float64

	// Linear parameters.
	Sensitivity float64
	Exposure    float64
	FStop       float64
	Gamma       float64
}

// Layer tonemap settings onto the existing film entity. Unlike every other
// singleton constructor this one merges: the film's disjoint parameters are
// retained and overlapping tonemap keys are overwritten by the latest call.
// A film must have been configured first.
func (b *Builder) SetTonemap(cfg TonemapConfig) error {
	film := b.graph.Singleton(scene.GroupFilm)
	if film == nil {
		return scene.NewValidationError("tonemap", "a film must be configured before a tonemap operator")
	}
	if cfg.Kernel == "" {
		cfg.Kernel = "reinhard"
	}
	if err := oneOf("tonemap kernel", cfg.Kernel, tonemapKernels); err != nil {
		return err
	}

	overlay := scene.NewEntity("").
		Set("tonemapkernel", scene.Str(cfg.Kernel))
	switch cfg.Kernel {
	case "reinhard":
		if cfg.Prescale > 0 {
			overlay.Set("reinhard_prescale", scene.Float(cfg.Prescale))
		}
		if cfg.Postscale > 0 {
			overlay.Set("reinhard_postscale", scene.Float(cfg.Postscale))
		}
		if cfg.Burn > 0 {
			overlay.Set("reinhard_burn", scene.Float(cfg.Burn))
		}
	case "linear":
		if cfg.Sensitivity > 0 {
			overlay.Set("linear_sensitivity", scene.Float(cfg.Sensitivity))
		}
		if cfg.Exposure > 0 {
			overlay.Set("linear_exposure", scene.Float(cfg.Exposure))
		}
		if cfg.FStop > 0 {
			overlay.Set("linear_fstop", scene.Float(cfg.FStop))
		}
	}
	if cfg.Gamma > 0 {
		overlay.Set("gamma", scene.Float(cfg.Gamma))
	}

	// Read-merge-write: the film keeps its own parameters.
	film.Merge(overlay)
	return b.graph.SetSingleton(scene.GroupFilm, film)
}
