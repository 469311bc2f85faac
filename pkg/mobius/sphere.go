package mobius

import "math"

// Point3 is a point in space.
type Point3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length of p.
func (p Point3) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// InverseStereographic lifts z onto the unit sphere, projecting from the
// north pole: 0 goes to the south pole and |z| → ∞ approaches the north
// pole.
func InverseStereographic(z complex128) Point3 {
	abs2 := real(z)*real(z) + imag(z)*imag(z)
	denom := abs2 + 1
	return Point3{
		X: 2 * real(z) / denom,
		Y: 2 * imag(z) / denom,
		Z: (abs2 - 1) / denom,
	}
}

// Stereographic is the inverse of [InverseStereographic]. The north pole
// itself has no finite image and maps to +Inf.
func Stereographic(p Point3) complex128 {
	if p.Z == 1 {
		return complex(math.Inf(1), 0)
	}
	return complex(p.X/(1-p.Z), p.Y/(1-p.Z))
}

// LiftAll lifts every point of a line onto the sphere.
func LiftAll(zs []complex128) []Point3 {
	out := make([]Point3, len(zs))
	for i, z := range zs {
		out[i] = InverseStereographic(z)
	}
	return out
}
