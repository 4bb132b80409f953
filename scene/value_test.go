package scene

import (
	"testing"

	"github.com/Erdk/luxor/types"
)

func TestNewValue(t *testing.T) {
	validSpecs := []struct {
		kind Kind
		raw  interface{}
	}{
		{KindInt, 16},
		{KindInt, int64(16)},
		{KindFloat, 0.5},
		{KindFloat, 3},
		{KindBool, true},
		{KindStr, "metropolis"},
		{KindColor, []float64{0.9, 0.9, 0.9}},
		{KindColor, []interface{}{0.1, 0.2, 0.3}},
		{KindFloatVec, []float64{1, 2, 3, 4}},
		{KindPointVec, []types.Vec3{{0, 0, 0}, {1, 1, 1}}},
		{KindStrVec, []string{"a", "b"}},
		{KindTexRef, "wood"},
	}

	for index, spec := range validSpecs {
		if _, err := NewValue("param", spec.kind, spec.raw); err != nil {
			t.Errorf("[spec %d] unexpected error: %v", index, err)
		}
	}

	invalidSpecs := []struct {
		kind Kind
		raw  interface{}
	}{
		{KindInt, "16"},
		{KindFloat, "0.5"},
		{KindBool, 1},
		{KindStr, 42},
		{KindColor, []float64{0.9, 0.9}},
		{KindColor, []float64{0.9, 0.9, 0.9, 0.9}},
		{KindColor, []interface{}{0.1, "oops", 0.3}},
		{KindFloatVec, []float64{}},
		{KindPointVec, []types.Vec3{}},
		{KindStrVec, []interface{}{"a", 1}},
		{KindTexRef, ""},
	}

	for index, spec := range invalidSpecs {
		if _, err := NewValue("param", spec.kind, spec.raw); err == nil {
			t.Errorf("[spec %d] expected a validation error for kind %d (%#v)", index, spec.kind, spec.raw)
		}
	}
}

func TestLogColorValidation(t *testing.T) {
	valid := LogColor{Base: Color{0.2, 0.3, 0.4}, Scale: 1, Depth: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := LogColor{Base: Color{0.2, 0.3, 0.4}, Scale: 1, Depth: 0}
	if err := invalid.Validate(); err == nil {
		t.Fatal("expected a validation error for a non-positive depth")
	}
}
