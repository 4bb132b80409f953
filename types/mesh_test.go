package types

import (
	"math"
	"testing"
)

func TestPlaneMesh(t *testing.T) {
	center := Vec3{1, 2, 3}
	normal := Vec3{0, 1, 0}
	mesh := NewPlaneMesh(center, normal, 2)

	if len(mesh.Points) != 4 || len(mesh.Indices) != 6 {
		t.Fatalf("expected 4 points and 6 indices; got %d and %d", len(mesh.Points), len(mesh.Indices))
	}

	for idx, p := range mesh.Points {
		if got := p.Sub(center).Dot(normal); math.Abs(got) > 1e-9 {
			t.Errorf("[point %d] expected point on the plane; offset %g", idx, got)
		}
		// Corners of a unit-half-edge square lie sqrt(2) from the center.
		if got := p.Sub(center).Len(); math.Abs(got-math.Sqrt2) > 1e-9 {
			t.Errorf("[point %d] expected corner distance %g; got %g", idx, math.Sqrt2, got)
		}
	}
	for idx, n := range mesh.Normals {
		if n != normal {
			t.Errorf("[normal %d] expected %v; got %v", idx, normal, n)
		}
	}
}

func TestDiskMeshClampsSegments(t *testing.T) {
	mesh := NewDiskMesh(Vec3{}, Vec3{0, 0, 1}, 1, 2)

	// Clamped to 3 segments: center plus one rim point per segment, three
	// indices per fan triangle.
	if len(mesh.Points) != 4 {
		t.Fatalf("expected 4 points; got %d", len(mesh.Points))
	}
	if len(mesh.Indices) != 9 {
		t.Fatalf("expected 9 indices; got %d", len(mesh.Indices))
	}

	for idx, p := range mesh.Points[1:] {
		if got := p.Len(); math.Abs(got-1) > 1e-9 {
			t.Errorf("[rim point %d] expected radius 1; got %g", idx, got)
		}
	}
}
