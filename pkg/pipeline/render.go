package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/mobius/pkg/geom"
	"github.com/matzehuels/mobius/pkg/render/pearls"
)

// renderInput is everything a format renderer may need.
type renderInput struct {
	circles []geom.Circle
	nodes   []geom.Node
	meta    pearls.Meta
	opts    *Options
}

// renderFormat produces one artifact.
func renderFormat(ctx context.Context, format string, in renderInput) ([]byte, error) {
	switch format {
	case FormatSVG:
		return pearls.RenderSVG(in.circles, in.opts.RenderOptions()...), nil
	case FormatPNG:
		return pearls.RenderPNG(in.circles, in.opts.RenderOptions()...)
	case FormatPDF:
		return pearls.RenderPDF(in.circles, in.opts.RenderOptions()...)
	case FormatJSON:
		return pearls.RenderJSON(in.circles, in.meta)
	case FormatDOT:
		return []byte(pearls.LineageDOT(in.nodes, in.opts.LineageNodes)), nil
	case FormatLineage:
		return pearls.RenderLineageSVG(ctx, pearls.LineageDOT(in.nodes, in.opts.LineageNodes))
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
