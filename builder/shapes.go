package builder

import (
	"github.com/Erdk/luxor/scene"
	"github.com/Erdk/luxor/types"
)

// ShapeKind enumerates the supported geometry variants.
type ShapeKind int

const (
	ShapeMesh ShapeKind = iota
	ShapePlane
	ShapeDisk
	ShapeSphere
)

var shapeKindNames = []string{"mesh", "plane", "disk", "sphere"}

func (k ShapeKind) String() string {
	return shapeKindNames[k]
}

// Lookup a shape kind by its discriminator name.
func ParseShapeKind(name string) (ShapeKind, bool) {
	for idx, n := range shapeKindNames {
		if n == name {
			return ShapeKind(idx), true
		}
	}
	return 0, false
}

// ShapeSpec describes a geometry entity.
type ShapeSpec struct {
	ID   string
	Kind string

	// Named material applied to the shape.
	Material string

	// Named volume references. When unset, the referenced material's own
	// interior/exterior references apply.
	Interior string
	Exterior string

	// Prebuilt mesh for mesh shapes; plane and disk shapes tessellate one
	// from the placement parameters below.
	Mesh     *types.Mesh
	MeshPath string

	Center   types.Vec3
	Normal   types.Vec3
	Size     float64
	Radius   float64
	Segments int

	Transform *types.Transform
}

// Insert a shape into the geometry group.
func (b *Builder) AddShape(spec ShapeSpec) error {
	if spec.ID == "" {
		return scene.NewValidationError("shape id", "id cannot be empty")
	}
	kind, known := ParseShapeKind(spec.Kind)
	if !known {
		return scene.NewOptionError("shape type", spec.Kind, shapeKindNames)
	}

	e := scene.NewEntity(kind.String())
	switch kind {
	case ShapeMesh:
		if spec.Mesh == nil {
			return scene.NewValidationError("shape mesh", "mesh shapes require an attached mesh")
		}
		e.Meta.Mesh = spec.Mesh
	case ShapePlane:
		if spec.Size <= 0 {
			return scene.NewValidationError("shape size", "plane shapes need a positive size")
		}
		e.Meta.Mesh = types.NewPlaneMesh(spec.Center, spec.Normal, spec.Size)
	case ShapeDisk:
		if spec.Radius <= 0 {
			return scene.NewValidationError("shape radius", "disk shapes need a positive radius")
		}
		e.Meta.Mesh = types.NewDiskMesh(spec.Center, spec.Normal, spec.Radius, spec.Segments)
	case ShapeSphere:
		if spec.Radius <= 0 {
			return scene.NewValidationError("shape radius", "sphere shapes need a positive radius")
		}
		e.Set("radius", scene.Float(spec.Radius))
	}

	if e.Meta.Mesh != nil {
		e.Meta.MeshPath = spec.MeshPath
		if e.Meta.MeshPath == "" {
			e.Meta.MeshPath = meshPath(spec.ID)
		}
	}
	e.Meta.Material = spec.Material
	e.Meta.Interior = spec.Interior
	e.Meta.Exterior = spec.Exterior
	e.Meta.Transform = spec.Transform

	return b.graph.Upsert(scene.GroupGeometry, spec.ID, e)
}

// Insert a batch of shapes. Specs with an unknown type discriminator are
// logged and skipped; the batch continues with the remaining items.
func (b *Builder) AddShapes(specs []ShapeSpec) error {
	for _, spec := range specs {
		if _, known := ParseShapeKind(spec.Kind); !known {
			b.logger.Warningf("skipping shape %q: unknown type %q", spec.ID, spec.Kind)
			continue
		}
		if err := b.AddShape(spec); err != nil {
			return err
		}
	}
	return nil
}

// Derive the default export path for an entity's streamed mesh payload.
func meshPath(id string) string {
	return id + ".mesh"
}
