// Package mobius implements the math behind the animated Riemann sphere:
// Möbius transformations of the complex plane, inverse stereographic
// projection onto the unit sphere, a latitude/longitude grid expressed in
// the plane, and an orthographic camera.
//
// A frame of the animation is computed as
//
//	m := mobius.Loxodromic(t)              // t in [0, 1)
//	line = mobius.ApplyAll(line, m)        // move the grid in the plane
//	pts  := mobius.LiftAll(line)           // lift onto the sphere
//	cam  := mobius.Camera{Elevation: 30, Azimuth: 2 * frame}
//	x, y, depth := cam.Project(pts[i])
//
// All functions are pure and safe for concurrent use.
package mobius
