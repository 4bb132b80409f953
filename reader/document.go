package reader

import (
	"github.com/Erdk/luxor/builder"
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

// sceneDoc mirrors the YAML scene description format. Section order in the
// document does not matter; the apply pass drives the builder in dependency
// order (film before tonemap, materials before shapes that reference them).
type sceneDoc struct {
	Comments  []string    `yaml:"comments"`
	AngleUnit string      `yaml:"angle_unit"`
	Includes  includesDoc `yaml:"includes"`

	Renderer         *rendererDoc      `yaml:"renderer"`
	Accelerator      *acceleratorDoc   `yaml:"accelerator"`
	Sampler          *samplerDoc       `yaml:"sampler"`
	Integrator       *integratorDoc    `yaml:"integrator"`
	VolumeIntegrator *volIntegratorDoc `yaml:"volume_integrator"`
	Filter           *filterDoc        `yaml:"filter"`
	Film             *filmDoc          `yaml:"film"`
	Tonemap          *tonemapDoc       `yaml:"tonemap"`
	Camera           *cameraDoc        `yaml:"camera"`

	LightGroups []string      `yaml:"light_groups"`
	Lights      []lightDoc    `yaml:"lights"`
	Textures    []textureDoc  `yaml:"textures"`
	Materials   []materialDoc `yaml:"materials"`
	Shapes      []shapeDoc    `yaml:"shapes"`
	Volumes     []volumeDoc   `yaml:"volumes"`
}

type includesDoc struct {
	Headers  []string `yaml:"headers"`
	Partials []string `yaml:"partials"`
}

type rendererDoc struct {
	Type string `yaml:"type"`
}

type acceleratorDoc struct {
	Type string `yaml:"type"`
}

type samplerDoc struct {
	Type         string `yaml:"type"`
	PixelSamples int    `yaml:"pixelsamples"`
}

type integratorDoc struct {
	Type          string `yaml:"type"`
	MaxDepth      int    `yaml:"maxdepth"`
	LightStrategy string `yaml:"lightstrategy"`
}

type volIntegratorDoc struct {
	Type     string  `yaml:"type"`
	StepSize float64 `yaml:"stepsize"`
}

type filterDoc struct {
	Type   string  `yaml:"type"`
	XWidth float64 `yaml:"xwidth"`
	YWidth float64 `yaml:"ywidth"`
}

type filmDoc struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FileName string `yaml:"filename"`
	HaltSPP  int    `yaml:"haltspp"`
}

type tonemapDoc struct {
	Kernel      string  `yaml:"kernel"`
	Prescale    float64 `yaml:"prescale"`
	Postscale   float64 `yaml:"postscale"`
	Burn        float64 `yaml:"burn"`
	Sensitivity float64 `yaml:"sensitivity"`
	Exposure    float64 `yaml:"exposure"`
	FStop       float64 `yaml:"fstop"`
	Gamma       float64 `yaml:"gamma"`
}

type cameraDoc struct {
	Type          string        `yaml:"type"`
	FOV           float64       `yaml:"fov"`
	LensRadius    float64       `yaml:"lensradius"`
	FocalDistance float64       `yaml:"focaldistance"`
	Response      string        `yaml:"response"`
	Transform     *transformDoc `yaml:"transform"`
}

type lightDoc struct {
	ID        string        `yaml:"id"`
	Type      string        `yaml:"type"`
	Group     string        `yaml:"group"`
	Color     []float64     `yaml:"color"`
	HSV       bool          `yaml:"hsv"`
	Gain      float64       `yaml:"gain"`
	From      []float64     `yaml:"from"`
	To        []float64     `yaml:"to"`
	ConeAngle float64       `yaml:"coneangle"`
	Turbidity float64       `yaml:"turbidity"`
	SunDir    []float64     `yaml:"sundir"`
	MapName   string        `yaml:"mapname"`
	Center    []float64     `yaml:"center"`
	Normal    []float64     `yaml:"normal"`
	Size      float64       `yaml:"size"`
	Hidden    bool          `yaml:"hidden"`
	Transform *transformDoc `yaml:"transform"`
}

type textureDoc struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type"`
	Value    []float64 `yaml:"value"`
	FileName string    `yaml:"filename"`
	Gamma    float64   `yaml:"gamma"`
	UScale   float64   `yaml:"uscale"`
	VScale   float64   `yaml:"vscale"`
	Tex1     string    `yaml:"tex1"`
	Tex2     string    `yaml:"tex2"`
}

type materialDoc struct {
	ID        string    `yaml:"id"`
	Type      string    `yaml:"type"`
	Kd        []float64 `yaml:"kd"`
	KdTexture string    `yaml:"kd_texture"`
	Kr        []float64 `yaml:"kr"`
	Kt        []float64 `yaml:"kt"`
	IOR       float64   `yaml:"ior"`
	IORPreset string    `yaml:"ior_preset"`
	Roughness float64   `yaml:"roughness"`
	Alpha     *float64  `yaml:"alpha"`
	Mix1      string    `yaml:"mix1"`
	Mix2      string    `yaml:"mix2"`
	Amount    float64   `yaml:"amount"`
	Base      string    `yaml:"base"`
	Interior  string    `yaml:"interior"`
	Exterior  string    `yaml:"exterior"`
}

type shapeDoc struct {
	ID        string        `yaml:"id"`
	Type      string        `yaml:"type"`
	Material  string        `yaml:"material"`
	Interior  string        `yaml:"interior"`
	Exterior  string        `yaml:"exterior"`
	Center    []float64     `yaml:"center"`
	Normal    []float64     `yaml:"normal"`
	Size      float64       `yaml:"size"`
	Radius    float64       `yaml:"radius"`
	Segments  int           `yaml:"segments"`
	Points    [][]float64   `yaml:"points"`
	Indices   []int         `yaml:"indices"`
	MeshPath  string        `yaml:"mesh_path"`
	Transform *transformDoc `yaml:"transform"`
}

type volumeDoc struct {
	ID              string    `yaml:"id"`
	Type            string    `yaml:"type"`
	IOR             float64   `yaml:"ior"`
	IORPreset       string    `yaml:"ior_preset"`
	Absorption      []float64 `yaml:"absorption"`
	AbsorptionScale float64   `yaml:"absorption_scale"`
	AbsorptionDepth float64   `yaml:"absorption_depth"`
	Scattering      []float64 `yaml:"scattering"`
}

type transformDoc struct {
	Matrix     []float64 `yaml:"matrix"`
	Translate  []float64 `yaml:"translate"`
	Rotate     []float64 `yaml:"rotate"`
	RotateAxis []float64 `yaml:"rotate_axis"` // angle, x, y, z
	Scale      []float64 `yaml:"scale"`

	// Collapse the composed components into a single explicit matrix, so
	// the output carries one matrix statement instead of a component
	// sequence.
	Bake bool `yaml:"bake"`
}

func (d *transformDoc) toTransform() (*types.Transform, error) {
	if d == nil {
		return nil, nil
	}
	if len(d.Matrix) > 0 {
		if len(d.Matrix) != 16 {
			return nil, scene.NewValidationError("transform matrix", "expected 16 components; got %d", len(d.Matrix))
		}
		var m types.Mat4
		copy(m[:], d.Matrix)
		return types.MatrixTransform(m), nil
	}

	t := types.NewTransform()
	if len(d.Translate) > 0 {
		v, err := vec3("transform translate", d.Translate)
		if err != nil {
			return nil, err
		}
		t.Translate(v)
	}
	if len(d.Rotate) > 0 {
		v, err := vec3("transform rotate", d.Rotate)
		if err != nil {
			return nil, err
		}
		t.Rotate(v)
	}
	if len(d.RotateAxis) > 0 {
		if len(d.RotateAxis) != 4 {
			return nil, scene.NewValidationError("transform rotate_axis", "expected angle plus 3 axis components")
		}
		t.RotateAxis(d.RotateAxis[0], types.Vec3{d.RotateAxis[1], d.RotateAxis[2], d.RotateAxis[3]})
	}
	if len(d.Scale) > 0 {
		v, err := vec3("transform scale", d.Scale)
		if err != nil {
			return nil, err
		}
		t.Scale(v)
	}
	if d.Bake {
		return types.MatrixTransform(t.Compose()), nil
	}
	return t, nil
}

func vec3(field string, vals []float64) (types.Vec3, error) {
	if len(vals) != 3 {
		return types.Vec3{}, scene.NewValidationError(field, "expected 3 components; got %d", len(vals))
	}
	return types.Vec3{vals[0], vals[1], vals[2]}, nil
}

func optVec3(field string, vals []float64) (types.Vec3, error) {
	if len(vals) == 0 {
		return types.Vec3{}, nil
	}
	return vec3(field, vals)
}

func optColor(field string, vals []float64) ([3]float64, error) {
	if len(vals) == 0 {
		return [3]float64{}, nil
	}
	v, err := scene.NewValue(field, scene.KindColor, vals)
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64(v.(scene.Color)), nil
}

// Drive the builder with the document's sections.
func (d *sceneDoc) apply(b *builder.Builder) error {
	graph := b.Graph()
	for _, comment := range d.Comments {
		graph.AddComment(comment)
	}
	graph.Includes.Headers = append(graph.Includes.Headers, d.Includes.Headers...)
	graph.Includes.Partials = append(graph.Includes.Partials, d.Includes.Partials...)

	if err := d.applySettings(b); err != nil {
		return err
	}
	for _, id := range d.LightGroups {
		if err := b.AddLightGroup(id); err != nil {
			return err
		}
	}
	if err := d.applyTextures(b); err != nil {
		return err
	}
	if err := d.applyMaterials(b); err != nil {
		return err
	}
	if err := d.applyVolumes(b); err != nil {
		return err
	}
	if err := d.applyLights(b); err != nil {
		return err
	}
	return d.applyShapes(b)
}

func (d *sceneDoc) applySettings(b *builder.Builder) error {
	if d.Renderer != nil {
		if err := b.SetRenderer(builder.RendererConfig{Type: d.Renderer.Type}); err != nil {
			return err
		}
	}
	if d.Accelerator != nil {
		if err := b.SetAccelerator(builder.AcceleratorConfig{Type: d.Accelerator.Type}); err != nil {
			return err
		}
	}
	if d.Sampler != nil {
		if err := b.SetSampler(builder.SamplerConfig{
			Type:         d.Sampler.Type,
			PixelSamples: d.Sampler.PixelSamples,
		}); err != nil {
			return err
		}
	}
	if d.Integrator != nil {
		if err := b.SetIntegrator(builder.IntegratorConfig{
			Type:          d.Integrator.Type,
			MaxDepth:      d.Integrator.MaxDepth,
			LightStrategy: d.Integrator.LightStrategy,
		}); err != nil {
			return err
		}
	}
	if d.VolumeIntegrator != nil {
		if err := b.SetVolumeIntegrator(builder.VolumeIntegratorConfig{
			Type:     d.VolumeIntegrator.Type,
			StepSize: d.VolumeIntegrator.StepSize,
		}); err != nil {
			return err
		}
	}
	if d.Filter != nil {
		if err := b.SetFilter(builder.FilterConfig{
			Type:   d.Filter.Type,
			XWidth: d.Filter.XWidth,
			YWidth: d.Filter.YWidth,
		}); err != nil {
			return err
		}
	}
	if d.Film != nil {
		if err := b.SetFilm(builder.FilmConfig{
			Width:    d.Film.Width,
			Height:   d.Film.Height,
			FileName: d.Film.FileName,
			HaltSPP:  d.Film.HaltSPP,
		}); err != nil {
			return err
		}
	}
	if d.Tonemap != nil {
		if err := b.SetTonemap(builder.TonemapConfig{
			Kernel:      d.Tonemap.Kernel,
			Prescale:    d.Tonemap.Prescale,
			Postscale:   d.Tonemap.Postscale,
			Burn:        d.Tonemap.Burn,
			Sensitivity: d.Tonemap.Sensitivity,
			Exposure:    d.Tonemap.Exposure,
			FStop:       d.Tonemap.FStop,
			Gamma:       d.Tonemap.Gamma,
		}); err != nil {
			return err
		}
	}
	if d.Camera != nil {
		transform, err := d.Camera.Transform.toTransform()
		if err != nil {
			return err
		}
		if err = b.SetCamera(builder.CameraConfig{
			Type:          d.Camera.Type,
			FOV:           d.Camera.FOV,
			LensRadius:    d.Camera.LensRadius,
			FocalDistance: d.Camera.FocalDistance,
			Response:      d.Camera.Response,
			Transform:     transform,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (d *sceneDoc) applyTextures(b *builder.Builder) error {
	specs := make([]builder.TextureSpec, 0, len(d.Textures))
	for _, doc := range d.Textures {
		value, err := optColor("texture value", doc.Value)
		if err != nil {
			return err
		}
		specs = append(specs, builder.TextureSpec{
			ID:       doc.ID,
			Kind:     doc.Type,
			Value:    value,
			FileName: doc.FileName,
			Gamma:    doc.Gamma,
			UScale:   doc.UScale,
			VScale:   doc.VScale,
			Tex1:     doc.Tex1,
			Tex2:     doc.Tex2,
		})
	}
	return b.AddTextures(specs)
}

func (d *sceneDoc) applyMaterials(b *builder.Builder) error {
	specs := make([]builder.MaterialSpec, 0, len(d.Materials))
	for _, doc := range d.Materials {
		kd, err := optColor("material kd", doc.Kd)
		if err != nil {
			return err
		}
		kr, err := optColor("material kr", doc.Kr)
		if err != nil {
			return err
		}
		kt, err := optColor("material kt", doc.Kt)
		if err != nil {
			return err
		}
		specs = append(specs, builder.MaterialSpec{
			ID:        doc.ID,
			Kind:      doc.Type,
			Kd:        kd,
			KdTexture: doc.KdTexture,
			Kr:        kr,
			Kt:        kt,
			IOR:       doc.IOR,
			IORPreset: doc.IORPreset,
			Roughness: doc.Roughness,
			Alpha:     doc.Alpha,
			Mix1:      doc.Mix1,
			Mix2:      doc.Mix2,
			Amount:    doc.Amount,
			Base:      doc.Base,
			Interior:  doc.Interior,
			Exterior:  doc.Exterior,
		})
	}
	return b.AddMaterials(specs)
}

func (d *sceneDoc) applyVolumes(b *builder.Builder) error {
	specs := make([]builder.VolumeSpec, 0, len(d.Volumes))
	for _, doc := range d.Volumes {
		absorption, err := optColor("volume absorption", doc.Absorption)
		if err != nil {
			return err
		}
		scattering, err := optColor("volume scattering", doc.Scattering)
		if err != nil {
			return err
		}
		specs = append(specs, builder.VolumeSpec{
			ID:              doc.ID,
			Kind:            doc.Type,
			IOR:             doc.IOR,
			IORPreset:       doc.IORPreset,
			Absorption:      absorption,
			AbsorptionScale: doc.AbsorptionScale,
			AbsorptionDepth: doc.AbsorptionDepth,
			Scattering:      scattering,
		})
	}
	return b.AddVolumes(specs)
}

func (d *sceneDoc) applyLights(b *builder.Builder) error {
	specs := make([]builder.LightSpec, 0, len(d.Lights))
	for _, doc := range d.Lights {
		color, err := optColor("light color", doc.Color)
		if err != nil {
			return err
		}
		from, err := optVec3("light from", doc.From)
		if err != nil {
			return err
		}
		to, err := optVec3("light to", doc.To)
		if err != nil {
			return err
		}
		sundir, err := optVec3("light sundir", doc.SunDir)
		if err != nil {
			return err
		}
		center, err := optVec3("light center", doc.Center)
		if err != nil {
			return err
		}
		normal, err := optVec3("light normal", doc.Normal)
		if err != nil {
			return err
		}
		transform, err := doc.Transform.toTransform()
		if err != nil {
			return err
		}
		specs = append(specs, builder.LightSpec{
			ID:        doc.ID,
			Kind:      doc.Type,
			Group:     doc.Group,
			Color:     color,
			UseHSV:    doc.HSV,
			Gain:      doc.Gain,
			From:      from,
			To:        to,
			ConeAngle: doc.ConeAngle,
			Turbidity: doc.Turbidity,
			SunDir:    sundir,
			MapName:   doc.MapName,
			Center:    center,
			Normal:    normal,
			Size:      doc.Size,
			Hidden:    doc.Hidden,
			Transform: transform,
		})
	}
	return b.AddLights(specs)
}

func (d *sceneDoc) applyShapes(b *builder.Builder) error {
	specs := make([]builder.ShapeSpec, 0, len(d.Shapes))
	for _, doc := range d.Shapes {
		center, err := optVec3("shape center", doc.Center)
		if err != nil {
			return err
		}
		normal, err := optVec3("shape normal", doc.Normal)
		if err != nil {
			return err
		}
		transform, err := doc.Transform.toTransform()
		if err != nil {
			return err
		}

		var mesh *types.Mesh
		if len(doc.Points) > 0 {
			mesh = &types.Mesh{Indices: doc.Indices}
			for idx, point := range doc.Points {
				p, err := vec3("shape point", point)
				if err != nil {
					return scene.NewValidationError("shape points",
						"point %d: expected 3 components", idx)
				}
				mesh.Points = append(mesh.Points, p)
			}
		}

		specs = append(specs, builder.ShapeSpec{
			ID:        doc.ID,
			Kind:      doc.Type,
			Material:  doc.Material,
			Interior:  doc.Interior,
			Exterior:  doc.Exterior,
			Mesh:      mesh,
			MeshPath:  doc.MeshPath,
			Center:    center,
			Normal:    normal,
			Size:      doc.Size,
			Radius:    doc.Radius,
			Segments:  doc.Segments,
			Transform: transform,
		})
	}
	return b.AddShapes(specs)
}
