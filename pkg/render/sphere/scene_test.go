package sphere

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene(t *testing.T) {
	s := NewScene(12, 10, 50)
	require.Len(t, s.Meridians, 12)
	require.Len(t, s.Parallels, 10)
	assert.Len(t, s.Meridians[0], 50)
	assert.Len(t, s.Parallels[0], 50)
}

func TestFrameStaysOnUnitDisk(t *testing.T) {
	s := NewScene(6, 5, 20)
	for _, i := range []int{0, 17, 60, 119} {
		fg := Frame(s, i, 120)
		assert.Equal(t, i, fg.Index)
		assert.InDelta(t, 2*float64(i), fg.Camera.Azimuth, 1e-12)

		for _, lines := range [][][]Point{fg.Meridians, fg.Parallels} {
			for _, line := range lines {
				for _, p := range line {
					// Orthographic views of the unit sphere stay within radius 1.
					assert.LessOrEqual(t, math.Hypot(p.X, p.Y), 1+1e-9)
				}
			}
		}
	}
}

func TestFrameZeroIsIdentity(t *testing.T) {
	s := NewScene(1, 1, 3)
	fg := Frame(s, 0, 120)

	// Meridian 0 lies on the real axis; its middle sample is the origin,
	// which lifts to the south pole and projects to the bottom of the view.
	mid := fg.Meridians[0][1]
	assert.InDelta(t, 0, mid.X, 1e-12)
	assert.InDelta(t, -math.Cos(math.Pi/6), mid.Y, 1e-12)
}

func TestRenderFrame(t *testing.T) {
	fg := Frame(NewScene(12, 10, 50), 0, 120)
	img := RenderFrame(fg, 150, 120)

	b := img.Bounds()
	require.Equal(t, 150, b.Dx())
	require.Equal(t, 120, b.Dy())

	r, g, bl, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r+g+bl, "corner should be black")

	lit := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); c.R > 0 || c.G > 0 || c.B > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 100, "grid should be drawn")
}
