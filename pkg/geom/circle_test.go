package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestInvert(t *testing.T) {
	got := Invert(C(1, 0, 0.5), C(-1, 0, 0.5))

	// denom = |2|² - 0.25 = 3.75, factor = 0.25/3.75 = 1/15
	assert.InDelta(t, -1+2.0/15, real(got.Center), tol)
	assert.InDelta(t, 0, imag(got.Center), tol)
	assert.InDelta(t, 0.5/15, got.Radius, tol)
}

func TestInvertNegativeDenominator(t *testing.T) {
	// The source encloses the inversor's center: denom < 0, factor < 0,
	// radius still non-negative.
	got := Invert(C(0.1, 0, 2), C(0, 0, 1))
	assert.Greater(t, got.Radius, 0.0)

	denom := 0.01 - 4.0
	factor := 1 / denom
	assert.InDelta(t, factor*0.1, real(got.Center), tol)
	assert.InDelta(t, math.Abs(factor)*2, got.Radius, tol)
}

func TestInvertInvolution(t *testing.T) {
	tests := []struct {
		name string
		src  Circle
		inv  Circle
	}{
		{"outside", C(1, 0, 0.5), C(-1, 0, 0.5)},
		{"diagonal", C(0.3, 2.1, 0.25), C(0, 1, 0.5)},
		{"enclosing center", C(0.2, -0.1, 3), C(0, 0, 1)},
		{"inside", C(0.1, 0.1, 0.05), C(0, 0, 1)},
		{"large inversor", C(5, -3, 1), C(1, 1, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Invert(tt.src, tt.inv)
			require.False(t, once.IsDegenerate())

			twice := Invert(once, tt.inv)
			assert.InDelta(t, real(tt.src.Center), real(twice.Center), 1e-9)
			assert.InDelta(t, imag(tt.src.Center), imag(twice.Center), 1e-9)
			assert.InDelta(t, tt.src.Radius, twice.Radius, 1e-9)
		})
	}
}

func TestInvertZeroDenominator(t *testing.T) {
	// The source passes through the inversor's center: |z - z0| == r.
	got := Invert(C(1, 0, 1), C(0, 0, 0.5))
	assert.True(t, got.IsDegenerate(), "Invert() = %+v, want degenerate", got)
	assert.Equal(t, Circle{}, got)
}

func TestInvertSelf(t *testing.T) {
	// A circle inverted through itself is mapped onto itself: denom = -r²,
	// factor = -1. This is not the degenerate case.
	c := C(0, 1, 0.5)
	got := Invert(c, c)
	assert.False(t, got.IsDegenerate())
	assert.True(t, Equal(c, got, tol), "Invert(c, c) = %+v, want %+v", got, c)
}

func TestInvertIsPure(t *testing.T) {
	src, inv := C(1, 0, 0.5), C(0, 1, 0.5)
	a := Invert(src, inv)
	b := Invert(src, inv)
	assert.Equal(t, a, b)
	assert.Equal(t, C(1, 0, 0.5), src)
	assert.Equal(t, C(0, 1, 0.5), inv)
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(MustPreset("square"))
	assert.InDelta(t, -1.5, real(lo), tol)
	assert.InDelta(t, -1.5, imag(lo), tol)
	assert.InDelta(t, 1.5, real(hi), tol)
	assert.InDelta(t, 1.5, imag(hi), tol)

	lo, hi = Bounds(nil)
	assert.Equal(t, complex128(0), lo)
	assert.Equal(t, complex128(0), hi)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(C(1, 1, 1), C(1+1e-10, 1, 1), 1e-9))
	assert.False(t, Equal(C(1, 1, 1), C(1, 1, 1.1), 1e-9))
	assert.False(t, Equal(C(1, 1, 1), C(1, 1.1, 1), 1e-9))
}
