package scene

import (
	"math"

	"github.com/Erdk/luxor/types"
)

// Value is implemented by all tagged parameter values that can be attached to
// an entity. The compiler is the only consumer that inspects the concrete
// type; everything else treats values as opaque.
type Value interface {
	Validate() error
}

type Int int64

type Float float64

type Bool bool

type Str string

// Color holds exactly three components.
type Color [3]float64

type FloatVec []float64

type PointVec []types.Vec3

type StrVec []string

// LogColor is a color following the renderer's absorption-law convention:
// each component is scaled by Scale and exponentiated by Depth when emitted.
type LogColor struct {
	Base  Color
	Scale float64
	Depth float64
}

// TexRef references a named texture entity instead of an inline value.
type TexRef string

func (v Int) Validate() error { return nil }

func (v Float) Validate() error {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return NewValidationError("float", "value must be a finite number")
	}
	return nil
}

func (v Bool) Validate() error { return nil }

func (v Str) Validate() error { return nil }

func (v Color) Validate() error {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return NewValidationError("color", "components must be finite numbers")
		}
	}
	return nil
}

func (v FloatVec) Validate() error {
	if len(v) == 0 {
		return NewValidationError("float vector", "at least one component required")
	}
	return nil
}

func (v PointVec) Validate() error {
	if len(v) == 0 {
		return NewValidationError("point vector", "at least one point required")
	}
	return nil
}

func (v StrVec) Validate() error {
	if len(v) == 0 {
		return NewValidationError("string vector", "at least one entry required")
	}
	return nil
}

func (v LogColor) Validate() error {
	if v.Depth <= 0 {
		return NewValidationError("log color", "depth must be a positive number")
	}
	return v.Base.Validate()
}

func (v TexRef) Validate() error {
	if v == "" {
		return NewValidationError("texture reference", "texture name cannot be empty")
	}
	return nil
}

// Kind selects the semantic tag when constructing a value from raw input.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindStr
	KindColor
	KindFloatVec
	KindPointVec
	KindStrVec
	KindTexRef
)

// Construct a tagged value from a raw host value. The raw value's shape must
// match the requested kind; no cross-tag coercion besides widening integers
// to floats is performed. param names the parameter in validation errors.
func NewValue(param string, kind Kind, raw interface{}) (Value, error) {
	var val Value

	switch kind {
	case KindInt:
		switch t := raw.(type) {
		case int:
			val = Int(t)
		case int64:
			val = Int(t)
		default:
			return nil, NewValidationError(param, "expected an integer; got %T", raw)
		}
	case KindFloat:
		f, ok := asFloat(raw)
		if !ok {
			return nil, NewValidationError(param, "expected a number; got %T", raw)
		}
		val = Float(f)
	case KindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, NewValidationError(param, "expected a boolean; got %T", raw)
		}
		val = Bool(b)
	case KindStr:
		s, ok := raw.(string)
		if !ok {
			return nil, NewValidationError(param, "expected a string; got %T", raw)
		}
		val = Str(s)
	case KindColor:
		comps, ok := asFloatSlice(raw)
		if !ok || len(comps) != 3 {
			return nil, NewValidationError(param, "expected exactly 3 numeric components")
		}
		val = Color{comps[0], comps[1], comps[2]}
	case KindFloatVec:
		comps, ok := asFloatSlice(raw)
		if !ok {
			return nil, NewValidationError(param, "expected a homogeneous numeric sequence")
		}
		val = FloatVec(comps)
	case KindPointVec:
		pts, ok := raw.([]types.Vec3)
		if !ok {
			return nil, NewValidationError(param, "expected a sequence of points")
		}
		val = PointVec(pts)
	case KindStrVec:
		strs, ok := asStrSlice(raw)
		if !ok {
			return nil, NewValidationError(param, "expected a homogeneous string sequence")
		}
		val = StrVec(strs)
	case KindTexRef:
		s, ok := raw.(string)
		if !ok {
			return nil, NewValidationError(param, "expected a texture name; got %T", raw)
		}
		val = TexRef(s)
	default:
		return nil, NewValidationError(param, "unsupported value kind %d", kind)
	}

	if err := val.Validate(); err != nil {
		return nil, NewValidationError(param, "%v", err)
	}
	return val, nil
}

func asFloat(raw interface{}) (float64, bool) {
	switch t := raw.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}
	return 0, false
}

func asFloatSlice(raw interface{}) ([]float64, bool) {
	switch t := raw.(type) {
	case []float64:
		return t, true
	case []interface{}:
		out := make([]float64, len(t))
		for idx, item := range t {
			f, ok := asFloat(item)
			if !ok {
				return nil, false
			}
			out[idx] = f
		}
		return out, true
	}
	return nil, false
}

func asStrSlice(raw interface{}) ([]string, bool) {
	switch t := raw.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, len(t))
		for idx, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out[idx] = s
		}
		return out, true
	}
	return nil, false
}
