// Package pkg provides the core libraries for mobius.
//
// # Overview
//
// Mobius draws two pictures from the geometry of circles and the Riemann
// sphere. The pkg directory is organized into these areas:
//
//  1. [geom] - Circle inversion and the Indra's pearls generator
//  2. [mobius] - Möbius transformations, stereographic projection, camera
//  3. [render] - SVG, PNG and PDF output, lineage diagrams, sphere frames, video
//  4. [pipeline] - Orchestration (generate → render) with caching
//  5. [config], [cache], [errors], [observability], [buildinfo] - Support
//
// # Architecture
//
// The pearls flow:
//
//	Preset (base circles)
//	         ↓
//	    [geom] GenerateTree (breadth-first inversion, threshold pruning)
//	         ↓
//	    [render/pearls] (SVG / PNG / PDF / JSON / DOT)
//	         ↓
//	    perles_indra.svg, perles_indra.png
//
// The sphere flow:
//
//	[mobius] grid lines → Loxodromic(t) → InverseStereographic
//	         ↓
//	    [render/sphere] frames (parallel) → ffmpeg → sphere_moebius.mp4
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mobius/pkg/geom"
//	    "github.com/matzehuels/mobius/pkg/render/pearls"
//	)
//
//	circles := geom.Generate(geom.MustPreset("square"), geom.Options{
//	    Depth:     8,
//	    Threshold: 1e-4,
//	})
//	svg := pearls.RenderSVG(circles)
//
// For caching, logging and multiple formats, use [pipeline.Runner].
//
// [geom]: github.com/matzehuels/mobius/pkg/geom
// [mobius]: github.com/matzehuels/mobius/pkg/mobius
// [render]: github.com/matzehuels/mobius/pkg/render
// [render/pearls]: github.com/matzehuels/mobius/pkg/render/pearls
// [render/sphere]: github.com/matzehuels/mobius/pkg/render/sphere
// [pipeline]: github.com/matzehuels/mobius/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/mobius/pkg/pipeline.Runner
// [config]: github.com/matzehuels/mobius/pkg/config
// [cache]: github.com/matzehuels/mobius/pkg/cache
// [errors]: github.com/matzehuels/mobius/pkg/errors
// [observability]: github.com/matzehuels/mobius/pkg/observability
// [buildinfo]: github.com/matzehuels/mobius/pkg/buildinfo
package pkg
