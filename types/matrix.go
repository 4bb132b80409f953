package types

import "math"

// Mat4 is a 4x4 transformation matrix stored in row-major order.
type Mat4 [16]float64

// Return the identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply two matrices.
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * m2[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// Build a translation matrix.
func Translation(v Vec3) Mat4 {
	m := Ident4()
	m[3] = v[0]
	m[7] = v[1]
	m[11] = v[2]
	return m
}

// Build a scale matrix.
func Scaling(v Vec3) Mat4 {
	m := Ident4()
	m[0] = v[0]
	m[5] = v[1]
	m[10] = v[2]
	return m
}

// Build a rotation matrix around an arbitrary axis. The angle is given in
// degrees; the axis does not need to be normalized.
func Rotation(angleDeg float64, axis Vec3) Mat4 {
	a := axis.Normalize()
	x, y, z := a[0], a[1], a[2]
	rad := angleDeg * math.Pi / 180.0
	s, c := math.Sin(rad), math.Cos(rad)
	t := 1 - c

	return Mat4{
		t*x*x + c, t*x*y - s*z, t*x*z + s*y, 0,
		t*x*y + s*z, t*y*y + c, t*y*z - s*x, 0,
		t*x*z - s*y, t*y*z + s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}
