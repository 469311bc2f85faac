package pearls

import (
	"math"

	"github.com/matzehuels/mobius/pkg/geom"
)

const (
	DefaultSize       = 1200
	DefaultLimit      = 1.2
	DefaultColor      = "#4169e1" // royal blue
	DefaultBackground = "#000000"

	autoFitMargin = 1.05
)

// Option configures the renderers in this package.
type Option func(*renderer)

type renderer struct {
	size       int
	limit      float64
	color      string
	background string
	baseRadius float64
	autoFit    bool

	// viewport, resolved by fit
	center complex128
	half   float64
}

// WithSize sets the canvas width and height in pixels.
func WithSize(px int) Option { return func(r *renderer) { r.size = px } }

// WithLimit sets the half-width of the visible square around the origin.
func WithLimit(l float64) Option { return func(r *renderer) { r.limit = l } }

// WithColor sets the stroke color as a CSS hex string.
func WithColor(hex string) Option { return func(r *renderer) { r.color = hex } }

// WithBackground sets the canvas color as a CSS hex string.
func WithBackground(hex string) Option { return func(r *renderer) { r.background = hex } }

// WithBaseRadius sets r0 for [StrokeWidth]. It defaults to the radius of
// the first circle drawn.
func WithBaseRadius(r0 float64) Option { return func(r *renderer) { r.baseRadius = r0 } }

// WithAutoFit replaces the fixed limit with the bounding box of the circles.
func WithAutoFit() Option { return func(r *renderer) { r.autoFit = true } }

func newRenderer(circles []geom.Circle, opts ...Option) renderer {
	r := renderer{
		size:       DefaultSize,
		limit:      DefaultLimit,
		color:      DefaultColor,
		background: DefaultBackground,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 {
		r.size = DefaultSize
	}
	if !(r.limit > 0) {
		r.limit = DefaultLimit
	}
	if r.baseRadius <= 0 && len(circles) > 0 {
		r.baseRadius = circles[0].Radius
	}
	r.fit(circles)
	return r
}

func (r *renderer) fit(circles []geom.Circle) {
	r.center, r.half = 0, r.limit
	if !r.autoFit || len(circles) == 0 {
		return
	}
	lo, hi := geom.Bounds(circles)
	half := math.Max(real(hi)-real(lo), imag(hi)-imag(lo)) / 2 * autoFitMargin
	if !(half > 0) || math.IsInf(half, 0) {
		return
	}
	r.center = (lo + hi) / 2
	r.half = half
}

// toCanvas maps a plane point to pixel coordinates with y pointing down.
func (r *renderer) toCanvas(z complex128) (x, y float64) {
	scale := float64(r.size) / (2 * r.half)
	d := z - r.center
	return (real(d) + r.half) * scale, (r.half - imag(d)) * scale
}

func (r *renderer) radiusToCanvas(radius float64) float64 {
	return radius * float64(r.size) / (2 * r.half)
}

func (r *renderer) strokeToCanvas(radius float64) float64 {
	return StrokeWidth(radius, r.baseRadius) * float64(r.size) / referenceSize
}

// visible reports whether any part of c can land on the canvas. Degenerate
// and non-finite circles are never drawn.
func (r *renderer) visible(c geom.Circle) bool {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return false
	}
	d := c.Center - r.center
	if math.IsNaN(real(d)) || math.IsNaN(imag(d)) {
		return false
	}
	return math.Abs(real(d))-c.Radius <= r.half && math.Abs(imag(d))-c.Radius <= r.half
}
