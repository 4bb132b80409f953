package scene

import "github.com/Erdk/luxor/types"

// Param is a single named parameter attached to an entity.
type Param struct {
	Name  string
	Value Value
}

// Meta carries entity fields that are never emitted as renderer parameters.
// The compiler filters them out in one pass and uses them to drive structural
// decisions (transform blocks, material references, mesh streaming).
type Meta struct {
	// Optional placement for the entity.
	Transform *types.Transform

	// Named material applied to the entity (geometry, hidden lights).
	Material string

	// Mesh payload attached to the entity and the path its serialized form
	// is streamed to.
	Mesh     *types.Mesh
	MeshPath string

	// Names of entities within the same group that must be emitted before
	// this one.
	Dependencies []string

	// Named interior/exterior volume references.
	Interior string
	Exterior string
}

// Entity is an ordered mapping from parameter name to tagged value plus
// reserved metadata. Parameter insertion order is preserved for deterministic
// output.
type Entity struct {
	// The variant discriminator, e.g. "perspective" for a camera.
	Type string

	Params []Param
	Meta   Meta
}

// Create an entity with the given variant type.
func NewEntity(entityType string) *Entity {
	return &Entity{Type: entityType}
}

// Set a parameter. Setting an existing name replaces its value in place,
// keeping the parameter's original position; a fresh name is appended.
func (e *Entity) Set(name string, value Value) *Entity {
	for idx := range e.Params {
		if e.Params[idx].Name == name {
			e.Params[idx].Value = value
			return e
		}
	}
	e.Params = append(e.Params, Param{Name: name, Value: value})
	return e
}

// Look up a parameter by name.
func (e *Entity) Get(name string) (Value, bool) {
	for _, param := range e.Params {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// Merge another entity's parameters into this one. Overlapping names take
// the other entity's value; disjoint names are retained. A non-empty type on
// the other entity wins.
func (e *Entity) Merge(other *Entity) *Entity {
	if other.Type != "" {
		e.Type = other.Type
	}
	for _, param := range other.Params {
		e.Set(param.Name, param.Value)
	}
	return e
}

// Create a copy of the entity with an independent parameter list.
func (e *Entity) Clone() *Entity {
	clone := &Entity{Type: e.Type, Meta: e.Meta}
	clone.Params = make([]Param, len(e.Params))
	copy(clone.Params, e.Params)
	clone.Meta.Dependencies = append([]string(nil), e.Meta.Dependencies...)
	return clone
}

// Validate all entity parameters.
func (e *Entity) Validate() error {
	for _, param := range e.Params {
		if err := param.Value.Validate(); err != nil {
			return NewValidationError(param.Name, "%v", err)
		}
	}
	return nil
}
