// Package sphere renders the animated Riemann sphere.
//
// A latitude/longitude grid in the complex plane ([Scene]) is moved by a
// loxodromic Möbius transformation, lifted onto the unit sphere by inverse
// stereographic projection and filmed by an orthographic camera that
// circles the sphere two degrees per frame.
//
// [Animate] renders every frame to PNG in parallel and assembles them into
// a video with ffmpeg. When ffmpeg is missing or fails, the last frame is
// written as a still preview instead and the run still succeeds.
package sphere
