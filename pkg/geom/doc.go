// Package geom generates Indra's-pearls circle sets by repeated circle
// inversion.
//
// # Overview
//
// A fractal is seeded by a short list of base circles. Every circle is
// inverted through every other base circle, the images are inverted again,
// and so on for a fixed number of levels. Circles that shrink below a
// visibility threshold are pruned. The result is an ordered list of
// circles (base circles first, then each level in generation order) that
// a renderer draws directly.
//
// # Basic Usage
//
//	base := geom.MustPreset("square")
//	circles := geom.Generate(base, geom.Options{
//	    Depth:     8,
//	    Threshold: 1e-4,
//	})
//
// [GenerateTree] runs the same algorithm but records, for each circle, the
// index of the circle it was inverted from and the base circle used as the
// inversor. Renderers use it to draw the inversion lineage.
//
// # Inversion
//
// [Invert] maps a circle (z, r) through an inversor (z0, r0):
//
//	denom  = |z - z0|² - r²
//	factor = r0² / denom
//	center = z0 + factor·(z - z0)
//	radius = |factor|·r
//
// When the source circle passes through the inversor's center the
// denominator is zero and the image is a line. That case returns the
// degenerate circle {0, 0}, which the threshold filter then drops.
//
// # Termination
//
// Generation is level-synchronous and runs exactly [Options.Depth] levels.
// A circle produced through base circle i is never inverted through i at
// the next level; that inversion would give back its parent. Depth is a
// hard bound, not a convergence criterion: a level whose frontier is empty
// costs nothing but is still counted.
//
// # Concurrency
//
// All functions are pure. Circles are values and the package holds no
// mutable state, so concurrent calls are safe.
package geom
