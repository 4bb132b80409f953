package types

import "math"

// Mesh holds triangulated geometry in indexed form. Indices reference the
// point list in groups of three, one group per triangle.
type Mesh struct {
	Points  []Vec3
	Normals []Vec3
	UVs     []Vec2
	Indices []int
}

// Build an orthonormal basis (u, v) on the plane perpendicular to n.
func planeBasis(n Vec3) (Vec3, Vec3) {
	n = n.Normalize()
	ref := Vec3{0, 0, 1}
	if math.Abs(n[2]) > 0.999 {
		ref = Vec3{1, 0, 0}
	}
	u := n.Cross(ref).Normalize()
	v := n.Cross(u)
	return u, v
}

// Tessellate a square plane centered at center, facing normal, with the given
// edge size. The result is two triangles sharing the plane's diagonal.
func NewPlaneMesh(center, normal Vec3, size float64) *Mesh {
	u, v := planeBasis(normal)
	h := size * 0.5
	n := normal.Normalize()

	mesh := &Mesh{
		Points: []Vec3{
			center.Sub(u.Mul(h)).Sub(v.Mul(h)),
			center.Add(u.Mul(h)).Sub(v.Mul(h)),
			center.Add(u.Mul(h)).Add(v.Mul(h)),
			center.Sub(u.Mul(h)).Add(v.Mul(h)),
		},
		UVs:     []Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Indices: []int{0, 1, 2, 0, 2, 3},
	}
	mesh.Normals = []Vec3{n, n, n, n}
	return mesh
}

// Tessellate a disk centered at center, facing normal, as a triangle fan with
// the given number of segments. Fewer than 3 segments are clamped to 3.
func NewDiskMesh(center, normal Vec3, radius float64, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	u, v := planeBasis(normal)
	n := normal.Normalize()

	mesh := &Mesh{
		Points:  []Vec3{center},
		Normals: []Vec3{n},
		UVs:     []Vec2{{0.5, 0.5}},
	}
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		s, c := math.Sin(theta), math.Cos(theta)
		mesh.Points = append(mesh.Points, center.Add(u.Mul(radius*c)).Add(v.Mul(radius*s)))
		mesh.Normals = append(mesh.Normals, n)
		mesh.UVs = append(mesh.UVs, Vec2{0.5 + 0.5*c, 0.5 + 0.5*s})
	}
	for i := 1; i <= segments; i++ {
		next := i%segments + 1
		mesh.Indices = append(mesh.Indices, 0, i, next)
	}
	return mesh
}
