package pearls

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
)

// LineageDOT converts the inversion tree to Graphviz DOT. Each node is a
// circle and each edge points from a circle to its image, labelled with
// the inversor's base index. Only the first maxNodes entries are kept when
// maxNodes > 0; since parents always precede children the prefix is a
// valid tree.
func LineageDOT(nodes []geom.Node, maxNodes int) string {
	omitted := 0
	if maxNodes > 0 && len(nodes) > maxNodes {
		omitted = len(nodes) - maxNodes
		nodes = nodes[:maxNodes]
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Lineage {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=8];\n")
	buf.WriteString("\n")

	for i, n := range nodes {
		attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%d\nr=%.3g", i, n.Radius))
		if n.Parent < 0 {
			attrs += ", fillcolor=royalblue, fontcolor=white"
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, attrs)
	}
	if omitted > 0 {
		fmt.Fprintf(&buf, "  more [shape=box, style=dashed, label=%q];\n", fmt.Sprintf("%d more", omitted))
	}

	buf.WriteString("\n")
	for i, n := range nodes {
		if n.Parent < 0 {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d [label=\"%d\"];\n", n.Parent, i, n.Via)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderLineageSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderLineageSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render lineage")
	}
	return buf.Bytes(), nil
}
