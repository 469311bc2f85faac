package mobius

import "math"

// Camera is an orthographic view of the sphere. Angles are in degrees.
//
// Azimuth rotates the scene about the vertical (Z) axis and Elevation
// tilts the view up from the XY plane, the same convention as a 3D plot's
// view_init(elev, azim).
type Camera struct {
	Elevation float64
	Azimuth   float64
}

// DefaultElevation is the tilt used for every animation frame.
const DefaultElevation = 30

// FrameCamera returns the camera for frame i: the azimuth advances two
// degrees per frame.
func FrameCamera(i int) Camera {
	return Camera{Elevation: DefaultElevation, Azimuth: 2 * float64(i)}
}

// Project maps p to screen coordinates in [-1, 1] (for points on the unit
// sphere) with y pointing up. depth grows toward the viewer and can be used
// to fade or sort back-facing segments.
func (c Camera) Project(p Point3) (x, y, depth float64) {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180

	// The viewer sits at direction (cos el cos az, cos el sin az, sin el).
	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)

	// Screen-right is perpendicular to the view direction in the XY plane.
	x = -p.X*sinAz + p.Y*cosAz
	// Screen-up is the component of Z tilted by the elevation.
	y = -p.X*cosAz*sinEl - p.Y*sinAz*sinEl + p.Z*cosEl
	depth = p.X*cosAz*cosEl + p.Y*sinAz*cosEl + p.Z*sinEl
	return x, y, depth
}
