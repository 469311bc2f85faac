package pearls

import "math"

const (
	// MinStrokeWidth is the floor applied by [StrokeWidth].
	MinStrokeWidth = 0.05

	strokeScale    = 0.8
	strokeExponent = 0.6

	// referenceSize is the canvas width, in points, that stroke widths are
	// expressed against: a 12-inch figure at 72 points per inch.
	referenceSize = 864.0
)

// StrokeWidth returns the line width, in points, for a circle of the given
// radius: 0.8·(r/r0)^0.6, floored at [MinStrokeWidth]. A non-positive
// baseRadius yields the floor.
func StrokeWidth(radius, baseRadius float64) float64 {
	if !(baseRadius > 0) {
		return MinStrokeWidth
	}
	w := strokeScale * math.Pow(radius/baseRadius, strokeExponent)
	if !(w > MinStrokeWidth) {
		return MinStrokeWidth
	}
	return w
}
