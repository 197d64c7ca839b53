package types

import (
	"math"
	"testing"
)

func TestVec3Ops(t *testing.T) {
	type spec struct {
		in     Vec3
		expLen float32
		expDir Vec3
	}
	specs := []spec{
		{Vec3{3, 0, 4}, 5, Vec3{0.6, 0, 0.8}},
		{Vec3{0, -2, 0}, 2, Vec3{0, -1, 0}},
		// Degenerate vectors normalize to zero.
		{Vec3{}, 0, Vec3{}},
	}

	for index, s := range specs {
		if l := s.in.Len(); math.Abs(float64(l-s.expLen)) > 1e-6 {
			t.Fatalf("[spec %d] expected len %f; got %f", index, s.expLen, l)
		}
		if n := s.in.Normalize(); !n.ApproxEqual(s.expDir, 1e-6) {
			t.Fatalf("[spec %d] expected normalized vector %v; got %v", index, s.expDir, n)
		}
	}

	x, y := Vec3{1, 0, 0}, Vec3{0, 1, 0}
	if c := x.Cross(y); c != (Vec3{0, 0, 1}) {
		t.Fatalf("expected x cross y to be +z; got %v", c)
	}
	if d := x.Dot(y); d != 0 {
		t.Fatalf("expected orthogonal vectors; got dot %f", d)
	}
	if v := x.Add(y).Sub(Vec3{1, 1, 1}).Mul(2); v != (Vec3{0, 0, -2}) {
		t.Fatalf("unexpected arithmetic result %v", v)
	}
}

func TestClamp(t *testing.T) {
	if v := Clamp(100, -89, 89); v != 89 {
		t.Fatalf("expected 89; got %f", v)
	}
	if v := Clamp(-100, -89, 89); v != -89 {
		t.Fatalf("expected -89; got %f", v)
	}
	if v := Clamp(12, -89, 89); v != 12 {
		t.Fatalf("expected 12; got %f", v)
	}
}

func TestMatrixRows(t *testing.T) {
	var m Mat4
	for i := range m {
		m[i] = float32(i)
	}

	// Column-major storage: row 1 picks every fourth element starting at 1.
	if r := m.Row(1); r != (Vec4{1, 5, 9, 13}) {
		t.Fatalf("expected row 1 to be (1, 5, 9, 13); got %v", r)
	}
}

func TestTransformPoint(t *testing.T) {
	view := LookAtV(Vec3{0, 0, 4}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	if p := view.TransformPoint(Vec3{0, 0, 0}); !p.ApproxEqual(Vec3{0, 0, -4}, 1e-6) {
		t.Fatalf("expected origin at (0, 0, -4) in view space; got %v", p)
	}

	proj := Perspective4(Radians(90), 1, 1, 10)
	// Points on the near and far planes map to -1 and 1 in NDC.
	if p := proj.TransformPoint(Vec3{0, 0, -1}); math.Abs(float64(p[2]+1)) > 1e-5 {
		t.Fatalf("expected near plane depth -1; got %f", p[2])
	}
	if p := proj.TransformPoint(Vec3{0, 0, -10}); math.Abs(float64(p[2]-1)) > 1e-5 {
		t.Fatalf("expected far plane depth 1; got %f", p[2])
	}

	if !proj.Mul4(proj.Inv()).ApproxEqual(Ident4(), 1e-5) {
		t.Fatalf("expected proj * inv(proj) to be the identity")
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 2, 0}, Radians(90))
	if v := q.Rotate(Vec3{0, 0, -1}); !v.ApproxEqual(Vec3{-1, 0, 0}, 1e-6) {
		t.Fatalf("expected (-1, 0, 0); got %v", v)
	}

	// Applying the rotation four times is a no-op.
	full := q.Mul(q).Mul(q).Mul(q)
	if v := full.Rotate(Vec3{1, 2, 3}); !v.ApproxEqual(Vec3{1, 2, 3}, 1e-5) {
		t.Fatalf("expected full turn to leave vector untouched; got %v", v)
	}

	if l := QuatIdent().Len(); l != 1 {
		t.Fatalf("expected unit identity; got len %f", l)
	}
	if l := (Quat{V: Vec3{0, 3, 0}, W: 4}).Normalize().Len(); math.Abs(float64(l-1)) > 1e-6 {
		t.Fatalf("expected normalized quaternion; got len %f", l)
	}
}
