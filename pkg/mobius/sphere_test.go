package mobius

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverseStereographic(t *testing.T) {
	tests := []struct {
		name string
		z    complex128
		want Point3
	}{
		{"origin is south pole", 0, Point3{0, 0, -1}},
		{"unit real on equator", 1, Point3{1, 0, 0}},
		{"unit imaginary on equator", complex(0, 1), Point3{0, 1, 0}},
		{"minus one on equator", -1, Point3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InverseStereographic(tt.z)
			assert.InDelta(t, tt.want.X, got.X, 1e-15)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-15)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-15)
		})
	}
}

func TestInverseStereographicOnSphere(t *testing.T) {
	for _, z := range []complex128{complex(0.3, -2), complex(100, 50), complex(-1e-3, 1e-3), complex(7, 0)} {
		assert.InDelta(t, 1, InverseStereographic(z).Norm(), 1e-12, "z = %v", z)
	}
}

func TestInverseStereographicFarAway(t *testing.T) {
	p := InverseStereographic(complex(1e8, 0))
	assert.InDelta(t, 1, p.Z, 1e-12)
}

func TestStereographicRoundTrip(t *testing.T) {
	for _, z := range []complex128{complex(0.3, -2), complex(-4, 1), complex(0.001, 0.002)} {
		back := Stereographic(InverseStereographic(z))
		assert.InDelta(t, real(z), real(back), 1e-9)
		assert.InDelta(t, imag(z), imag(back), 1e-9)
	}
	assert.True(t, math.IsInf(real(Stereographic(Point3{0, 0, 1})), 1))
}

func TestLiftAll(t *testing.T) {
	pts := LiftAll([]complex128{0, 1})
	assert.Len(t, pts, 2)
	assert.Equal(t, InverseStereographic(1), pts[1])
}
