package sphere

import (
	"image"

	"github.com/fogleman/gg"
)

const (
	// viewLimit is the half-width of the visible square in screen units;
	// the sphere itself has radius 1.
	viewLimit = 1.1

	lineAlpha = 0.6

	// lineWidthPoints is the stroke width; pointsPerHeight converts it to
	// pixels for an 8-inch-tall figure.
	lineWidthPoints = 1.0
	pointsPerHeight = 576.0
)

var (
	meridianColor = [3]float64{0, 1, 1} // cyan
	parallelColor = [3]float64{1, 0, 1} // magenta
)

// RenderFrame rasterises fg onto a black canvas of the given size.
func RenderFrame(fg FrameGeometry, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	scale := float64(min(width, height)) / (2 * viewLimit)
	cx, cy := float64(width)/2, float64(height)/2
	dc.SetLineWidth(lineWidthPoints * float64(height) / pointsPerHeight)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	draw := func(lines [][]Point, rgb [3]float64) {
		dc.SetRGBA(rgb[0], rgb[1], rgb[2], lineAlpha)
		for _, line := range lines {
			pen := false
			for _, p := range line {
				if !p.finite() {
					pen = false
					continue
				}
				x, y := cx+p.X*scale, cy-p.Y*scale
				if pen {
					dc.LineTo(x, y)
				} else {
					dc.MoveTo(x, y)
					pen = true
				}
			}
			// Stroke per line so overlapping lines blend like separate plots.
			dc.Stroke()
		}
	}
	draw(fg.Meridians, meridianColor)
	draw(fg.Parallels, parallelColor)

	return dc.Image()
}
