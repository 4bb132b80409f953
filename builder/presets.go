package builder

// Known index-of-refraction presets that can be referenced by name instead
// of a numeric value.
var KnownIORs = map[string]float64{
	"vacuum":   1.0,
	"air":      1.000293,
	"ice":      1.31,
	"water":    1.333,
	"glass":    1.52,
	"quartz":   1.458,
	"amber":    1.55,
	"sapphire": 1.77,
	"diamond":  2.419,
}

// Camera response curve presets accepted by the camera constructor.
var ResponseCurves = []string{
	"Advantix_100CD",
	"Agfachrome_ctpecisa_200CD",
	"Agfacolor_hdc_100_plusCD",
	"Ektachrome_100_plusCD",
	"F125CD",
	"F250CD",
	"F400CD",
	"Gold_100CD",
	"Max_Zoom_800CD",
	"Portra_100TCD",
}

// Enumerated option sets for the singleton constructors.
var (
	rendererTypes      = []string{"sampler", "hybrid", "sppm"}
	acceleratorTypes   = []string{"kdtree", "bvh", "qbvh", "none"}
	samplerTypes       = []string{"random", "lowdiscrepancy", "metropolis", "sobol"}
	surfaceIntegrators = []string{"path", "bidirectional", "directlighting", "distributedpath"}
	lightStrategies    = []string{"auto", "one", "all", "importance", "powerimp"}
	volumeIntegrators  = []string{"single", "multi", "none"}
	pixelFilterTypes   = []string{"box", "gaussian", "mitchell", "sinc", "triangle"}
	cameraTypes        = []string{"perspective", "orthographic", "environment"}
	tonemapKernels     = []string{"reinhard", "linear", "contrast", "maxwhite"}
)
