package pearls

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/mobius/pkg/geom"
)

// RenderSVG draws circles as an SVG document. Circles outside the viewport
// and degenerate circles are skipped.
func RenderSVG(circles []geom.Circle, opts ...Option) []byte {
	r := newRenderer(circles, opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.size, r.size, r.size, r.size)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	fmt.Fprintf(&buf, `  <g fill="none" stroke="%s">`+"\n", r.color)

	for _, c := range circles {
		if !r.visible(c) {
			continue
		}
		x, y := r.toCanvas(c.Center)
		fmt.Fprintf(&buf, `    <circle cx="%.4f" cy="%.4f" r="%.4f" stroke-width="%.4f"/>`+"\n",
			x, y, r.radiusToCanvas(c.Radius), r.strokeToCanvas(c.Radius))
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}
