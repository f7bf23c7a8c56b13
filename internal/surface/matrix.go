package surface

import "math"

// Matrix is a 2D affine transform in canvas layout:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Multiply returns m × n, so n is applied first.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate returns m followed by a translation in m's frame.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Multiply(Matrix{A: 1, D: 1, E: x, F: y})
}

// Rotate returns m followed by a rotation in m's frame.
func (m Matrix) Rotate(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return m.Multiply(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Apply maps a point through the transform.
func (m Matrix) Apply(x, y float64) Point {
	return Point{
		X: m.A*x + m.C*y + m.E,
		Y: m.B*x + m.D*y + m.F,
	}
}

// IsIdentity reports whether m is the identity within a small tolerance.
func (m Matrix) IsIdentity() bool {
	const eps = 1e-9
	id := Identity()
	return math.Abs(m.A-id.A) < eps && math.Abs(m.B-id.B) < eps &&
		math.Abs(m.C-id.C) < eps && math.Abs(m.D-id.D) < eps &&
		math.Abs(m.E-id.E) < eps && math.Abs(m.F-id.F) < eps
}
