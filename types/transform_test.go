package types

import (
	"math"
	"testing"
)

func matApproxEqual(a, b Mat4) bool {
	for idx := range a {
		if math.Abs(a[idx]-b[idx]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestComposeEmptyTransform(t *testing.T) {
	if got := NewTransform().Compose(); !matApproxEqual(got, Ident4()) {
		t.Fatalf("expected the identity matrix; got %v", got)
	}
}

func TestComposeTranslation(t *testing.T) {
	got := NewTransform().Translate(Vec3{1, 2, 3}).Compose()
	want := Ident4()
	want[3], want[7], want[11] = 1, 2, 3
	if !matApproxEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestComposeRotationOrder(t *testing.T) {
	// A 90 degree rotation around z maps x onto y; applying the x rotation
	// first must not change that for a vector on the x axis.
	got := NewTransform().Rotate(Vec3{90, 0, 90}).Compose()
	want := Translation(Vec3{}).
		Mul4(Rotation(90, Vec3{1, 0, 0})).
		Mul4(Rotation(90, Vec3{0, 0, 1}))
	if !matApproxEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestComposeExplicitMatrixWins(t *testing.T) {
	tr := MatrixTransform(Scaling(Vec3{2, 2, 2}))
	tr.Translate(Vec3{5, 5, 5})
	if got := tr.Compose(); !matApproxEqual(got, Scaling(Vec3{2, 2, 2})) {
		t.Fatalf("expected the explicit matrix; got %v", got)
	}
}
