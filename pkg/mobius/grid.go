package mobius

import (
	"math"
	"math/cmplx"
)

// Grid defaults, matching a 12 × 10 latitude/longitude mesh sampled at 50
// points per line.
const (
	DefaultMeridians  = 12
	DefaultParallels  = 10
	DefaultResolution = 50
)

// Meridians returns n lines through the origin at angles evenly spaced over
// [0, π]. Each line is sampled at res points with radial coordinate
// tan(s) for s in [-1.5, 1.5], so the samples spread toward infinity and
// lift to great circles through both poles.
func Meridians(n, res int) [][]complex128 {
	radial := make([]float64, res)
	for i, s := range linspace(-1.5, 1.5, res) {
		radial[i] = math.Tan(s)
	}

	lines := make([][]complex128, 0, n)
	for _, theta := range linspace(0, math.Pi, n) {
		dir := cmplx.Exp(complex(0, theta))
		line := make([]complex128, res)
		for i, r := range radial {
			line[i] = complex(r, 0) * dir
		}
		lines = append(lines, line)
	}
	return lines
}

// Parallels returns n circles centred at the origin with radii evenly
// spaced over [0.1, 5], each sampled at res points over [0, 2π]. They lift
// to circles of latitude.
func Parallels(n, res int) [][]complex128 {
	angles := linspace(0, 2*math.Pi, res)
	lines := make([][]complex128, 0, n)
	for _, p := range linspace(0.1, 5, n) {
		line := make([]complex128, res)
		for i, t := range angles {
			line[i] = cmplx.Rect(p, t)
		}
		lines = append(lines, line)
	}
	return lines
}

// linspace returns n evenly spaced values over [start, stop], endpoints
// included. n == 1 yields start.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}
