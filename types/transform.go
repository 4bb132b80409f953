package types

// AxisAngle describes a rotation around an arbitrary axis. Angles are stored
// in degrees.
type AxisAngle struct {
	Angle float64
	Axis  Vec3
}

// Transform positions an entity in the scene. It either carries an explicit
// 4x4 matrix or a composed translate/rotate/scale specification. When both
// are present the explicit matrix wins.
//
// Composed rotations are applied per-axis in x, y, z order, followed by the
// optional axis-angle rotation, followed by scaling.
type Transform struct {
	Matrix *Mat4

	Translation Vec3
	Rotation    Vec3 // per-axis angles in degrees
	AxisRot     *AxisAngle
	Scaling     Vec3
}

// Create an empty composed transform with an identity scale.
func NewTransform() *Transform {
	return &Transform{Scaling: Vec3{1, 1, 1}}
}

// Create a transform from an explicit matrix.
func MatrixTransform(m Mat4) *Transform {
	return &Transform{Matrix: &m, Scaling: Vec3{1, 1, 1}}
}

// Set the translation component.
func (t *Transform) Translate(v Vec3) *Transform {
	t.Translation = v
	return t
}

// Set the per-axis rotation angles (degrees).
func (t *Transform) Rotate(v Vec3) *Transform {
	t.Rotation = v
	return t
}

// Set an additional rotation around an arbitrary axis (degrees).
func (t *Transform) RotateAxis(angle float64, axis Vec3) *Transform {
	t.AxisRot = &AxisAngle{Angle: angle, Axis: axis}
	return t
}

// Set the scale component.
func (t *Transform) Scale(v Vec3) *Transform {
	t.Scaling = v
	return t
}

// Compose the transform into a single matrix. Rotations apply in x, y, z
// order before scaling, matching the order the components are emitted in.
func (t *Transform) Compose() Mat4 {
	if t.Matrix != nil {
		return *t.Matrix
	}

	m := Translation(t.Translation)
	if t.Rotation[0] != 0 {
		m = m.Mul4(Rotation(t.Rotation[0], Vec3{1, 0, 0}))
	}
	if t.Rotation[1] != 0 {
		m = m.Mul4(Rotation(t.Rotation[1], Vec3{0, 1, 0}))
	}
	if t.Rotation[2] != 0 {
		m = m.Mul4(Rotation(t.Rotation[2], Vec3{0, 0, 1}))
	}
	if t.AxisRot != nil {
		m = m.Mul4(Rotation(t.AxisRot.Angle, t.AxisRot.Axis))
	}
	return m.Mul4(Scaling(t.Scaling))
}
