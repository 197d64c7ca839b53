package camera

import (
	"fmt"

	"github.com/achilleasa/octocam/types"
)

// Plane indices within a Frustum.
const (
	PlaneRight = iota
	PlaneLeft
	PlaneBottom
	PlaneTop
	PlaneFar
	PlaneNear
)

// A plane in normal form: Normal·p + D = 0. The normal points towards the
// inside of the frustum and has unit length, so Distance returns the signed
// distance to the plane in world units.
type Plane struct {
	Normal types.Vec3
	D      float32
}

// Get the signed distance of p to the plane.
func (pl Plane) Distance(p types.Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

func (pl Plane) String() string {
	return fmt.Sprintf("(%3.3f, %3.3f, %3.3f, %3.3f)", pl.Normal[0], pl.Normal[1], pl.Normal[2], pl.D)
}

// The six clipping planes of a view volume.
type Frustum [6]Plane

// Extract the clipping planes of a combined view-projection matrix using the
// Gribb/Hartmann method. Each plane is a sum or difference of the fourth
// matrix row with one of the other three.
func FrustumFromMatrix(m types.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)
	return Frustum{
		PlaneRight:  normalizePlane(r3.Sub(r0)),
		PlaneLeft:   normalizePlane(r3.Add(r0)),
		PlaneBottom: normalizePlane(r3.Add(r1)),
		PlaneTop:    normalizePlane(r3.Sub(r1)),
		PlaneFar:    normalizePlane(r3.Sub(r2)),
		PlaneNear:   normalizePlane(r3.Add(r2)),
	}
}

// Scale the plane coefficients so that the normal has unit length. A
// degenerate plane is returned as the zero plane, which contains nothing.
func normalizePlane(coeffs types.Vec4) Plane {
	normal := coeffs.Vec3()
	l := normal.Len()
	if l == 0 {
		return Plane{}
	}
	return Plane{
		Normal: normal.Mul(1.0 / l),
		D:      coeffs[3] / l,
	}
}

// ContainsPoint returns true if p lies strictly inside all six planes. Points
// exactly on a plane are outside.
func (f *Frustum) ContainsPoint(p types.Vec3) bool {
	for i := range f {
		if f[i].Distance(p) <= 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere returns true unless the sphere lies entirely behind one
// of the planes.
func (f *Frustum) IntersectsSphere(center types.Vec3, radius float32) bool {
	for i := range f {
		if f[i].Distance(center) <= -radius {
			return false
		}
	}
	return true
}

// IntersectsAABB returns true if the box may overlap the frustum. For each
// plane only the box corner furthest along the plane normal is tested, so
// the test is conservative: it never rejects a visible box but may accept
// boxes near the frustum corners.
func (f *Frustum) IntersectsAABB(min, max types.Vec3) bool {
	for i := range f {
		pl := &f[i]
		corner := min
		for axis := 0; axis < 3; axis++ {
			if pl.Normal[axis] >= 0 {
				corner[axis] = max[axis]
			}
		}
		if pl.Distance(corner) <= 0 {
			return false
		}
	}
	return true
}

func (f Frustum) String() string {
	return fmt.Sprintf(
		"Frustum planes:\nR : %s\nL : %s\nB : %s\nT : %s\nF : %s\nN : %s",
		f[PlaneRight], f[PlaneLeft], f[PlaneBottom], f[PlaneTop], f[PlaneFar], f[PlaneNear],
	)
}
