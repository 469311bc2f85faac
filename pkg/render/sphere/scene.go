package sphere

import (
	"math"

	"github.com/matzehuels/mobius/pkg/mobius"
)

// Scene is the untransformed grid, in plane coordinates.
type Scene struct {
	Meridians [][]complex128
	Parallels [][]complex128
}

// NewScene builds a grid of the given density.
func NewScene(meridians, parallels, res int) Scene {
	return Scene{
		Meridians: mobius.Meridians(meridians, res),
		Parallels: mobius.Parallels(parallels, res),
	}
}

// Point is a projected sample: screen coordinates in [-1, 1] with y up,
// plus depth toward the viewer.
type Point struct {
	X, Y, Depth float64
}

// FrameGeometry is one frame's projected polylines.
type FrameGeometry struct {
	Index     int
	Camera    mobius.Camera
	Meridians [][]Point
	Parallels [][]Point
}

// Frame transforms and projects the scene for frame i of total. The
// transformation time is i/total, so frame 0 is the identity and the
// sequence loops seamlessly.
func Frame(scene Scene, i, total int) FrameGeometry {
	t := 0.0
	if total > 0 {
		t = float64(i) / float64(total)
	}
	m := mobius.Loxodromic(t)
	cam := mobius.FrameCamera(i)

	return FrameGeometry{
		Index:     i,
		Camera:    cam,
		Meridians: projectLines(scene.Meridians, m, cam),
		Parallels: projectLines(scene.Parallels, m, cam),
	}
}

func projectLines(lines [][]complex128, m mobius.Matrix, cam mobius.Camera) [][]Point {
	out := make([][]Point, len(lines))
	for i, line := range lines {
		pts := make([]Point, len(line))
		for j, z := range mobius.ApplyAll(line, m) {
			x, y, d := cam.Project(mobius.InverseStereographic(z))
			pts[j] = Point{X: x, Y: y, Depth: d}
		}
		out[i] = pts
	}
	return out
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
