package pearls

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
	"github.com/matzehuels/mobius/pkg/render"
)

// RenderPNG rasterises circles with the same geometry as [RenderSVG].
func RenderPNG(circles []geom.Circle, opts ...Option) ([]byte, error) {
	r := newRenderer(circles, opts...)

	dc := gg.NewContext(r.size, r.size)
	dc.SetHexColor(r.background)
	dc.Clear()
	dc.SetHexColor(r.color)

	for _, c := range circles {
		if !r.visible(c) {
			continue
		}
		x, y := r.toCanvas(c.Center)
		dc.DrawCircle(x, y, r.radiusToCanvas(c.Radius))
		dc.SetLineWidth(r.strokeToCanvas(c.Radius))
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// RenderPDF renders circles as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(circles []geom.Circle, opts ...Option) ([]byte, error) {
	return render.ToPDF(RenderSVG(circles, opts...))
}
