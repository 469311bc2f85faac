package mobius

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixApply(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 0, D: 1}
	assert.Equal(t, complex(3, 1), m.Apply(complex(1, 1)))

	inv := Matrix{B: 1, C: 1} // z ↦ 1/z
	assert.InDelta(t, 0.5, real(inv.Apply(2)), 1e-15)
}

func TestMatrixApplyPole(t *testing.T) {
	// z ↦ 1/z at z = 0 uses the epsilon instead of dividing by zero.
	m := Matrix{B: 1, C: 1}
	got := m.Apply(0)
	assert.False(t, cmplx.IsNaN(got))
	assert.False(t, cmplx.IsInf(got))
	assert.InDelta(t, 1/poleEpsilon, real(got), 1)
}

func TestIdentity(t *testing.T) {
	for _, z := range []complex128{0, 1, complex(-2, 3.5)} {
		assert.Equal(t, z, Identity.Apply(z))
	}
}

func TestCompose(t *testing.T) {
	m := Matrix{A: 2, B: 1, C: 1, D: 3}
	n := Matrix{A: 1, B: complex(0, 1), C: 0, D: 2}
	z := complex(0.7, -0.2)

	got := m.Compose(n).Apply(z)
	want := m.Apply(n.Apply(z))
	assert.InDelta(t, real(want), real(got), 1e-12)
	assert.InDelta(t, imag(want), imag(got), 1e-12)
	assert.Equal(t, m.Det()*n.Det(), m.Compose(n).Det())
}

func TestApplyAll(t *testing.T) {
	zs := []complex128{1, complex(0, 1), -1}
	got := ApplyAll(zs, Scale(2))
	assert.Equal(t, []complex128{2, complex(0, 2), -2}, got)
	assert.Equal(t, []complex128{1, complex(0, 1), -1}, zs, "input must not be modified")
}

func TestLoxodromic(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want complex128 // image of 1
	}{
		{"start", 0, 1},
		{"quarter", 0.25, complex(0, 1.5)},
		{"half", 0.5, -1},
		{"three quarters", 0.75, complex(0, -0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Loxodromic(tt.t).Apply(1)
			assert.InDelta(t, real(tt.want), real(got), 1e-12)
			assert.InDelta(t, imag(tt.want), imag(got), 1e-12)
		})
	}
}

func TestLoxodromicBreathes(t *testing.T) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 120; i++ {
		k := cmplx.Abs(Loxodromic(float64(i) / 120).Apply(1))
		lo = math.Min(lo, k)
		hi = math.Max(hi, k)
	}
	assert.InDelta(t, 0.5, lo, 1e-9)
	assert.InDelta(t, 1.5, hi, 1e-9)
}
