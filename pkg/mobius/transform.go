package mobius

import (
	"math"
	"math/cmplx"
)

// poleEpsilon replaces a zero denominator in [Matrix.Apply]; points mapped
// to infinity land far out instead of producing NaN.
const poleEpsilon = 1e-9

// Matrix is the Möbius transformation z ↦ (Az + B)/(Cz + D).
type Matrix struct {
	A, B, C, D complex128
}

// Identity is the identity transformation.
var Identity = Matrix{A: 1, D: 1}

// Scale returns z ↦ k·z.
func Scale(k complex128) Matrix {
	return Matrix{A: k, D: 1}
}

// Apply evaluates the transformation at z.
func (m Matrix) Apply(z complex128) complex128 {
	denom := m.C*z + m.D
	if denom == 0 {
		denom = poleEpsilon
	}
	return (m.A*z + m.B) / denom
}

// Compose returns the transformation that applies n first and then m.
func (m Matrix) Compose(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Det returns AD − BC. A Möbius transformation requires a non-zero
// determinant.
func (m Matrix) Det() complex128 {
	return m.A*m.D - m.B*m.C
}

// ApplyAll maps every point of zs through m into a new slice.
func ApplyAll(zs []complex128, m Matrix) []complex128 {
	out := make([]complex128, len(zs))
	for i, z := range zs {
		out[i] = m.Apply(z)
	}
	return out
}

// Loxodromic returns the animation's transformation at normalized time t:
// a full rotation combined with a dilation that breathes between 0.5 and
// 1.5, z ↦ (1 + ½·sin 2πt)·e^{2πit}·z.
func Loxodromic(t float64) Matrix {
	angle := 2 * math.Pi * t
	dilation := 1 + 0.5*math.Sin(2*math.Pi*t)
	return Scale(complex(dilation, 0) * cmplx.Exp(complex(0, angle)))
}
