package builder

import "github.com/Erdk/luxor/scene"

// VolumeKind enumerates the supported volume variants.
type VolumeKind int

const (
	VolClear VolumeKind = iota
	VolHomogeneous
)

var volumeKindNames = []string{"clear", "homogeneous"}

func (k VolumeKind) String() string {
	return volumeKindNames[k]
}

// Lookup a volume kind by its discriminator name.
func ParseVolumeKind(name string) (VolumeKind, bool) {
	for idx, n := range volumeKindNames {
		if n == name {
			return VolumeKind(idx), true
		}
	}
	return 0, false
}

// VolumeSpec describes a named volume.
type VolumeSpec struct {
	ID   string
	Kind string

	IOR       float64
	IORPreset string

	// Absorption color following the absorption-law convention: scaled and
	// depth-exponentiated on emission.
	Absorption      [3]float64
	AbsorptionScale float64
	AbsorptionDepth float64

	// Scattering color for homogeneous volumes.
	Scattering [3]float64
}

// Insert a volume into the volumes group.
func (b *Builder) AddVolume(spec VolumeSpec) error {
	if spec.ID == "" {
		return scene.NewValidationError("volume id", "id cannot be empty")
	}
	kind, known := ParseVolumeKind(spec.Kind)
	if !known {
		return scene.NewOptionError("volume type", spec.Kind, volumeKindNames)
	}

	ior, err := b.resolveIOR(MaterialSpec{IOR: spec.IOR, IORPreset: spec.IORPreset})
	if err != nil {
		return err
	}

	scale := spec.AbsorptionScale
	if scale == 0 {
		scale = 1.0
	}
	depth := spec.AbsorptionDepth
	if depth == 0 {
		depth = 1.0
	}
	if depth < 0 {
		return scene.NewValidationError("volume absorptiondepth", "depth must be a positive number")
	}

	e := scene.NewEntity(kind.String()).
		Set("fresnel", scene.Float(ior)).
		Set("absorption", scene.LogColor{
			Base:  scene.Color(spec.Absorption),
			Scale: scale,
			Depth: depth,
		})
	if kind == VolHomogeneous {
		e.Set("sigma_s", scene.Color(spec.Scattering))
	}

	return b.graph.Upsert(scene.GroupVolumes, spec.ID, e)
}

// Insert a batch of volumes, left to right.
func (b *Builder) AddVolumes(specs []VolumeSpec) error {
	for _, spec := range specs {
		if err := b.AddVolume(spec); err != nil {
			return err
		}
	}
	return nil
}
