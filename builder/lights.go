package builder

import (
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

// LightKind enumerates the supported light variants.
type LightKind int

const (
	LightPoint LightKind = iota
	LightSpot
	LightDistant
	LightSun
	LightSky
	LightArea
	LightInfinite
)

var lightKindNames = []string{"point", "spot", "distant", "sun", "sky", "area", "infinite"}

func (k LightKind) String() string {
	return lightKindNames[k]
}

// Lookup a light kind by its discriminator name.
func ParseLightKind(name string) (LightKind, bool) {
	for idx, n := range lightKindNames {
		if n == name {
			return LightKind(idx), true
		}
	}
	return 0, false
}

// LightSpec describes a light to insert into the lights group.
type LightSpec struct {
	ID   string
	Kind string

	// Light group this light belongs to.
	Group string

	// Emission color as RGB, or as HSV when UseHSV is set.
	Color  [3]float64
	UseHSV bool
	Gain   float64

	// Placement (point, spot, distant).
	From types.Vec3
	To   types.Vec3

	// Spot cone angle, interpreted per the builder's angle unit. The
	// grammar declares a half-angle parameter so the value is halved on
	// emission.
	ConeAngle float64

	// Sun/sky parameters.
	Turbidity float64
	SunDir    types.Vec3

	// Environment map for infinite lights.
	MapName string

	// Area light surface: a prebuilt mesh wins; otherwise one is
	// tessellated from center, normal and size.
	Mesh   *types.Mesh
	Center types.Vec3
	Normal types.Vec3
	Size   float64

	// Hidden lights emit but are not directly visible; resolved into a
	// reference to the shared null material.
	Hidden bool

	Transform *types.Transform
}

// Insert a light into the lights group.
func (b *Builder) AddLight(spec LightSpec) error {
	if spec.ID == "" {
		return scene.NewValidationError("light id", "id cannot be empty")
	}
	kind, known := ParseLightKind(spec.Kind)
	if !known {
		return scene.NewOptionError("light type", spec.Kind, lightKindNames)
	}
	if err := nonNegative("light gain", spec.Gain); err != nil {
		return err
	}

	e := scene.NewEntity(kind.String())
	e.Set("L", scene.Color(b.lightColor(spec)))
	if spec.Gain > 0 {
		e.Set("gain", scene.Float(spec.Gain))
	}

	switch kind {
	case LightPoint:
		e.Set("from", scene.PointVec{spec.From})
	case LightSpot:
		if err := nonNegative("light coneangle", spec.ConeAngle); err != nil {
			return err
		}
		e.Set("from", scene.PointVec{spec.From})
		e.Set("to", scene.PointVec{spec.To})
		// The grammar takes the half cone angle.
		e.Set("coneangle", scene.Float(b.angle(spec.ConeAngle)/2.0))
	case LightDistant:
		e.Set("from", scene.PointVec{spec.From})
		e.Set("to", scene.PointVec{spec.To})
	case LightSun, LightSky:
		if spec.Turbidity > 0 {
			e.Set("turbidity", scene.Float(spec.Turbidity))
		}
		if spec.SunDir.Len() > 0 {
			e.Set("sundir", scene.PointVec{spec.SunDir})
		}
	case LightArea:
		mesh := spec.Mesh
		if mesh == nil {
			if spec.Size <= 0 {
				return scene.NewValidationError("light size", "area lights need a mesh or a positive size")
			}
			mesh = types.NewPlaneMesh(spec.Center, spec.Normal, spec.Size)
		}
		e.Meta.Mesh = mesh
		e.Meta.MeshPath = meshPath(spec.ID)
	case LightInfinite:
		if spec.MapName != "" {
			e.Set("mapname", scene.Str(spec.MapName))
		}
	}

	if spec.Group != "" {
		if !b.graph.Has(scene.GroupLightGroups, spec.Group) {
			if err := b.AddLightGroup(spec.Group); err != nil {
				return err
			}
		}
		e.Set("lightgroup", scene.Str(spec.Group))
	}
	if spec.Hidden {
		if err := b.ensureHiddenMaterial(); err != nil {
			return err
		}
		e.Meta.Material = HiddenMaterialName
	}
	e.Meta.Transform = spec.Transform

	return b.graph.Upsert(scene.GroupLights, spec.ID, e)
}

// Insert a batch of lights. Specs with an unknown type discriminator are
// logged and skipped; the batch continues with the remaining items.
func (b *Builder) AddLights(specs []LightSpec) error {
	for _, spec := range specs {
		if _, known := ParseLightKind(spec.Kind); !known {
			b.logger.Warningf("skipping light %q: unknown type %q", spec.ID, spec.Kind)
			continue
		}
		if err := b.AddLight(spec); err != nil {
			return err
		}
	}
	return nil
}

// Declare a named light group.
func (b *Builder) AddLightGroup(id string) error {
	if id == "" {
		return scene.NewValidationError("light group id", "id cannot be empty")
	}
	return b.graph.Upsert(scene.GroupLightGroups, id, scene.NewEntity("lightgroup"))
}

func (b *Builder) lightColor(spec LightSpec) [3]float64 {
	if !spec.UseHSV {
		return spec.Color
	}
	r, g, bl := types.HSVToRGB(spec.Color[0], spec.Color[1], spec.Color[2])
	return [3]float64{r, g, bl}
}
