package pearls

import (
	"strings"
	"testing"

	"github.com/matzehuels/mobius/pkg/geom"
)

func TestRenderSVG(t *testing.T) {
	circles := geom.MustPreset("square")
	svg := string(RenderSVG(circles))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatal("RenderSVG() should start with <svg")
	}
	if got := strings.Count(svg, "<circle"); got != len(circles) {
		t.Errorf("circle count = %d, want %d", got, len(circles))
	}
	for _, want := range []string{
		`width="1200" height="1200"`,
		`fill="#000000"`,
		`stroke="#4169e1"`,
		// 0+1i is above the origin: y is flipped.
		`cx="600.0000" cy="100.0000" r="250.0000"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
}

func TestRenderSVGSkipsInvisible(t *testing.T) {
	circles := []geom.Circle{
		geom.C(0, 0, 0.5),
		{},                   // degenerate
		geom.C(10, 10, 1),   // off canvas
		geom.C(1.5, 0, 0.4), // overlaps the edge
	}
	svg := string(RenderSVG(circles))
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circle count = %d, want 2", got)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	svg := string(RenderSVG([]geom.Circle{geom.C(0, 0, 1)},
		WithSize(100), WithColor("#ff0000"), WithBackground("#ffffff"), WithLimit(2)))

	for _, want := range []string{
		`width="100" height="100"`,
		`stroke="#ff0000"`,
		`fill="#ffffff"`,
		`cx="50.0000" cy="50.0000" r="25.0000"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("RenderSVG() missing %q", want)
		}
	}
}

func TestRenderSVGAutoFit(t *testing.T) {
	// Far from the origin: invisible with the fixed limit, centred with auto-fit.
	circles := []geom.Circle{geom.C(10, 10, 1)}

	if strings.Contains(string(RenderSVG(circles)), "<circle") {
		t.Error("circle should be culled without auto-fit")
	}
	svg := string(RenderSVG(circles, WithSize(100), WithAutoFit()))
	if !strings.Contains(svg, `cx="50.0000" cy="50.0000"`) {
		t.Errorf("auto-fit should centre the circle, got:\n%s", svg)
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(nil, WithAutoFit()))
	if strings.Contains(svg, "<circle") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("empty render malformed:\n%s", svg)
	}
}
