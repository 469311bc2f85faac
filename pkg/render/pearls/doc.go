// Package pearls draws circle sets produced by [geom.Generate].
//
// Every circle is an unfilled stroke on a square canvas whose viewport
// spans [-Limit, Limit] on both axes. The imaginary axis points up. Stroke
// width follows [StrokeWidth], so small circles get thin lines and the
// picture keeps its depth when zoomed.
//
// # Output Formats
//
//   - [RenderSVG]: vector document, written directly
//   - [RenderPDF]: SVG converted with rsvg-convert (see [render.ToPDF])
//   - [RenderPNG]: raster preview drawn natively, no external tool needed
//   - [RenderJSON]: the circle list plus run metadata
//   - [LineageDOT] / [RenderLineageSVG]: the inversion tree as a graph
//
// # Usage
//
//	circles := geom.Generate(geom.MustPreset("square"), geom.Options{Depth: 6, Threshold: 1e-4})
//	svg := pearls.RenderSVG(circles, pearls.WithSize(2000))
//	png, err := pearls.RenderPNG(circles, pearls.WithLimit(1.5))
//
// [geom.Generate]: github.com/matzehuels/mobius/pkg/geom.Generate
// [render.ToPDF]: github.com/matzehuels/mobius/pkg/render.ToPDF
package pearls
