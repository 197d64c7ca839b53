package types

import "github.com/go-gl/mathgl/mgl32"

// A rotation expressed as a quaternion. The arithmetic is delegated to mgl32.
type Quat struct {
	V Vec3
	W float32
}

func (q Quat) mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3(q.V)}
}

func fromMgl(q mgl32.Quat) Quat {
	return Quat{V: Vec3(q.V), W: q.W}
}

// Create identity quaternion.
func QuatIdent() Quat {
	return fromMgl(mgl32.QuatIdent())
}

// Create a quaternion that rotates by angle radians around axis. The axis
// does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return fromMgl(mgl32.QuatRotate(angle, mgl32.Vec3(axis.Normalize())))
}

// Combine two rotations. Multiplication is not commutative; q.Mul(q2)
// applies q2 first.
func (q Quat) Mul(q2 Quat) Quat {
	return fromMgl(q.mgl().Mul(q2.mgl()))
}

// Rotate a vector by the rotation this quaternion represents.
func (q Quat) Rotate(v Vec3) Vec3 {
	return Vec3(q.mgl().Rotate(mgl32.Vec3(v)))
}

// Get quaternion norm.
func (q Quat) Len() float32 {
	return q.mgl().Len()
}

// Normalize quaternion; a zero quaternion normalizes to the identity.
func (q Quat) Normalize() Quat {
	return fromMgl(q.mgl().Normalize())
}
