package builder

import (
	"github.com/Erdk/luxor/scene"
)

// MaterialKind enumerates the supported material variants.
type MaterialKind int

const (
	MatMatte MaterialKind = iota
	MatGlass
	MatMetal
	MatMirror
	MatGlossy
	MatMix
	MatNull
	MatGlossyCoating
)

var materialKindNames = []string{"matte", "glass", "metal", "mirror", "glossy", "mix", "null", "glossycoating"}

func (k MaterialKind) String() string {
	return materialKindNames[k]
}

// Lookup a material kind by its discriminator name.
func ParseMaterialKind(name string) (MaterialKind, bool) {
	for idx, n := range materialKindNames {
		if n == name {
			return MaterialKind(idx), true
		}
	}
	return 0, false
}

// HiddenMaterialName is the id of the shared null material synthesized for
// alpha compositing and hidden lights. It is inserted once and reused.
const HiddenMaterialName = "hidden_null_material"

// MaterialSpec describes a material to insert into the materials group.
type MaterialSpec struct {
	ID   string
	Kind string

	// Diffuse color or texture (matte, glossy).
	Kd        [3]float64
	KdTexture string

	// Reflection / transmission colors (glass, metal, mirror).
	Kr [3]float64
	Kt [3]float64

	// Index of refraction, numeric or preset name. The preset wins.
	IOR       float64
	IORPreset string

	Roughness float64

	// Opacity in [0, 1]. Nil means fully opaque. Values below 1 trigger
	// alpha compositing: the material is stored under an internal id and
	// the public id becomes a mix with the shared null material.
	Alpha *float64

	// Mix parameters: the two referenced material names and blend amount.
	Mix1   string
	Mix2   string
	Amount float64

	// Base material name for glossy coatings.
	Base string

	// Named volume references.
	Interior string
	Exterior string
}

// Insert a material into the materials group, resolving alpha compositing.
func (b *Builder) AddMaterial(spec MaterialSpec) error {
	if spec.ID == "" {
		return scene.NewValidationError("material id", "id cannot be empty")
	}
	kind, known := ParseMaterialKind(spec.Kind)
	if !known {
		return scene.NewOptionError("material type", spec.Kind, materialKindNames)
	}

	e, err := b.materialEntity(kind, spec)
	if err != nil {
		return err
	}
	e.Meta.Interior = spec.Interior
	e.Meta.Exterior = spec.Exterior

	if spec.Alpha != nil && (*spec.Alpha < 0 || *spec.Alpha > 1) {
		return scene.NewValidationError("material alpha", "opacity must be in the [0, 1] range")
	}
	if spec.Alpha == nil || *spec.Alpha >= 1.0 {
		return b.graph.Upsert(scene.GroupMaterials, spec.ID, e)
	}
	return b.resolveAlpha(spec.ID, e, *spec.Alpha)
}

// Insert a batch of materials, left to right.
func (b *Builder) AddMaterials(specs []MaterialSpec) error {
	for _, spec := range specs {
		if err := b.AddMaterial(spec); err != nil {
			return err
		}
	}
	return nil
}

// Build the material entity for a spec. The switch over kinds is exhaustive;
// adding a variant without a case here is a compile-time reminder via the
// enum, not a runtime lookup miss.
func (b *Builder) materialEntity(kind MaterialKind, spec MaterialSpec) (*scene.Entity, error) {
	if err := nonNegative("material roughness", spec.Roughness); err != nil {
		return nil, err
	}

	e := scene.NewEntity(kind.String())
	switch kind {
	case MatMatte:
		b.setColorOrTexture(e, "Kd", spec.Kd, spec.KdTexture)
	case MatGlass:
		e.Set("Kr", scene.Color(spec.Kr))
		e.Set("Kt", scene.Color(spec.Kt))
		ior, err := b.resolveIOR(spec)
		if err != nil {
			return nil, err
		}
		e.Set("index", scene.Float(ior))
	case MatMetal:
		e.Set("Kr", scene.Color(spec.Kr))
		if spec.Roughness > 0 {
			e.Set("uroughness", scene.Float(spec.Roughness))
			e.Set("vroughness", scene.Float(spec.Roughness))
		}
	case MatMirror:
		e.Set("Kr", scene.Color(spec.Kr))
	case MatGlossy:
		b.setColorOrTexture(e, "Kd", spec.Kd, spec.KdTexture)
		if spec.Roughness > 0 {
			e.Set("uroughness", scene.Float(spec.Roughness))
			e.Set("vroughness", scene.Float(spec.Roughness))
		}
	case MatMix:
		if spec.Mix1 == "" || spec.Mix2 == "" {
			return nil, scene.NewValidationError("material mix", "both referenced material names are required")
		}
		if spec.Amount < 0 || spec.Amount > 1 {
			return nil, scene.NewValidationError("material amount", "blend amount must be in the [0, 1] range")
		}
		e.Set("namedmaterial1", scene.Str(spec.Mix1))
		e.Set("namedmaterial2", scene.Str(spec.Mix2))
		e.Set("amount", scene.Float(spec.Amount))
		e.Meta.Dependencies = []string{spec.Mix1, spec.Mix2}
	case MatNull:
		// No parameters.
	case MatGlossyCoating:
		if spec.Base == "" {
			return nil, scene.NewValidationError("material basematerial", "a base material name is required")
		}
		e.Set("basematerial", scene.Str(spec.Base))
		if spec.Roughness > 0 {
			e.Set("uroughness", scene.Float(spec.Roughness))
			e.Set("vroughness", scene.Float(spec.Roughness))
		}
		e.Meta.Dependencies = []string{spec.Base}
	}
	return e, nil
}

func (b *Builder) setColorOrTexture(e *scene.Entity, param string, color [3]float64, texture string) {
	if texture != "" {
		e.Set(param, scene.TexRef(texture))
		return
	}
	e.Set(param, scene.Color(color))
}

func (b *Builder) resolveIOR(spec MaterialSpec) (float64, error) {
	if spec.IORPreset != "" {
		ior, exists := KnownIORs[spec.IORPreset]
		if !exists {
			allowed := make([]string, 0, len(KnownIORs))
			for name := range KnownIORs {
				allowed = append(allowed, name)
			}
			return 0, scene.NewOptionError("material ior", spec.IORPreset, allowed)
		}
		return ior, nil
	}
	if spec.IOR > 0 {
		return spec.IOR, nil
	}
	return KnownIORs["glass"], nil
}

// Derive the internal storage id for a material declared with partial
// opacity. Deterministic so that re-insertion under the same public id
// replaces the same internal entity.
func alphaBaseID(publicID string) string {
	return publicID + "_alpha_base"
}

// Ensure the shared hidden null material exists. Idempotent.
func (b *Builder) ensureHiddenMaterial() error {
	if b.graph.Has(scene.GroupMaterials, HiddenMaterialName) {
		return nil
	}
	return b.graph.Upsert(scene.GroupMaterials, HiddenMaterialName, scene.NewEntity(MatNull.String()))
}

// Store a partially opaque material: the caller's entity moves under an
// internal id and the public id becomes a mix blending the shared null
// material with it by the given opacity. The public id's dependency set is
// exactly {hidden, internal}.
func (b *Builder) resolveAlpha(publicID string, e *scene.Entity, alpha float64) error {
	internalID := alphaBaseID(publicID)
	if err := b.graph.Upsert(scene.GroupMaterials, internalID, e); err != nil {
		return err
	}
	if err := b.ensureHiddenMaterial(); err != nil {
		return err
	}

	b.logger.Infof("material %q: opacity %.3f, compositing through %q", publicID, alpha, internalID)

	mix := scene.NewEntity(MatMix.String()).
		Set("namedmaterial1", scene.Str(HiddenMaterialName)).
		Set("namedmaterial2", scene.Str(internalID)).
		Set("amount", scene.Float(alpha))
	mix.Meta.Dependencies = []string{HiddenMaterialName, internalID}
	// Volume references stay visible on the public id.
	mix.Meta.Interior = e.Meta.Interior
	mix.Meta.Exterior = e.Meta.Exterior
	return b.graph.Upsert(scene.GroupMaterials, publicID, mix)
}
