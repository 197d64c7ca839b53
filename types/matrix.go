package types

import "github.com/go-gl/mathgl/mgl32"

// A 4x4 matrix stored in column-major order; element (row, col) lives at
// index col*4 + row. The layout matches mgl32 so all heavy lifting is
// delegated to it.
type Mat4 mgl32.Mat4

// Create a 4x4 identity matrix.
func Ident4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Create a right-handed perspective projection matrix mapping depth to the
// [-1, 1] clip range. The fovY argument is expressed in radians.
func Perspective4(fovY, aspect, near, far float32) Mat4 {
	return Mat4(mgl32.Perspective(fovY, aspect, near, far))
}

// Create a view matrix for an eye located at eye, looking at center.
func LookAtV(eye, center, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(mgl32.Vec3(eye), mgl32.Vec3(center), mgl32.Vec3(up)))
}

// Multiply two matrices (m * m2).
func (m Mat4) Mul4(m2 Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(m2)))
}

// Multiply matrix with a column vector.
func (m Mat4) Mul4x1(v Vec4) Vec4 {
	return Vec4(mgl32.Mat4(m).Mul4x1(mgl32.Vec4(v)))
}

// Transform a point (w = 1) and apply the perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v[3] == 0 {
		return v.Vec3()
	}
	return v.Mul(1.0 / v[3]).Vec3()
}

// Calculate the matrix inverse. Singular matrices yield the zero matrix.
func (m Mat4) Inv() Mat4 {
	return Mat4(mgl32.Mat4(m).Inv())
}

// Get row as a 4 component vector.
func (m Mat4) Row(row int) Vec4 {
	return Vec4{m[row], m[row+4], m[row+8], m[row+12]}
}

// Check whether all elements of m are within epsilon of m2.
func (m Mat4) ApproxEqual(m2 Mat4, epsilon float32) bool {
	for i := range m {
		d := m[i] - m2[i]
		if d > epsilon || d < -epsilon {
			return false
		}
	}
	return true
}
