// Package render provides the output side of the mobius pipelines.
//
// # Overview
//
// The geometry packages produce plain values (circles, projected lines).
// Rendering turns them into files:
//
//   - Format conversion from SVG to PDF/PNG ([ToPDF], [ToPNG])
//   - Video encoding from numbered PNG frames ([EncodeVideo])
//   - Circle fractal rendering (in the [pearls] subpackage)
//   - Animated sphere frames (in the [sphere] subpackage)
//
// # External Tools
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (librsvg); [EncodeVideo]
// shells out to ffmpeg. When a tool is missing the functions return an
// UNSUPPORTED error wrapping [errors.ToolMissingError] with install hints.
// Callers decide how to degrade: the sphere pipeline falls back to a static
// preview frame, the pearls pipeline rasterizes natively.
//
//	svg := pearls.RenderSVG(circles)
//	pdf, err := render.ToPDF(svg)
//	if errors.IsToolMissing(err) {
//	    // keep the SVG only
//	}
//
// [pearls]: github.com/matzehuels/mobius/pkg/render/pearls
// [sphere]: github.com/matzehuels/mobius/pkg/render/sphere
// [errors.ToolMissingError]: github.com/matzehuels/mobius/pkg/errors.ToolMissingError
package render
