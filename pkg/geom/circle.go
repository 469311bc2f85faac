package geom

import (
	"math"
	"math/cmplx"
)

// Circle is a circle in the complex plane. Circles are values and are never
// modified after creation.
type Circle struct {
	Center complex128
	Radius float64
}

// C is shorthand for building a Circle from Cartesian coordinates.
func C(x, y, r float64) Circle {
	return Circle{Center: complex(x, y), Radius: r}
}

// X returns the real part of the center.
func (c Circle) X() float64 { return real(c.Center) }

// Y returns the imaginary part of the center.
func (c Circle) Y() float64 { return imag(c.Center) }

// IsDegenerate reports whether c is the zero circle returned by [Invert]
// for a zero denominator.
func (c Circle) IsDegenerate() bool {
	return c.Center == 0 && c.Radius == 0
}

// Invert returns the image of src under inversion in inv.
//
// If src passes through the center of inv the image is a straight line;
// Invert then returns the degenerate circle {0, 0} instead of failing.
// Invert is pure and total for finite inputs.
func Invert(src, inv Circle) Circle {
	d := src.Center - inv.Center
	denom := sqAbs(d) - src.Radius*src.Radius
	if denom == 0 {
		return Circle{}
	}
	factor := inv.Radius * inv.Radius / denom
	return Circle{
		Center: inv.Center + complex(factor, 0)*d,
		Radius: math.Abs(factor) * src.Radius,
	}
}

// sqAbs returns |z|² without the square root.
func sqAbs(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// Bounds returns the corners of the axis-aligned box enclosing every
// circle. For an empty slice both corners are zero.
func Bounds(circles []Circle) (lo, hi complex128) {
	if len(circles) == 0 {
		return 0, 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range circles {
		minX = math.Min(minX, c.X()-c.Radius)
		minY = math.Min(minY, c.Y()-c.Radius)
		maxX = math.Max(maxX, c.X()+c.Radius)
		maxY = math.Max(maxY, c.Y()+c.Radius)
	}
	return complex(minX, minY), complex(maxX, maxY)
}

// Equal reports whether a and b agree within tol in center and radius.
func Equal(a, b Circle, tol float64) bool {
	return cmplx.Abs(a.Center-b.Center) <= tol && math.Abs(a.Radius-b.Radius) <= tol
}
