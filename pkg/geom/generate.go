package geom

import (
	"math"

	"github.com/matzehuels/mobius/pkg/errors"
)

const (
	// DefaultDepth is the number of inversion levels used when none is given.
	DefaultDepth = 8

	// DefaultThreshold keeps circles down to a ten-thousandth of the unit
	// radius, small enough to stay visible in a zoomed vector render.
	DefaultThreshold = 1e-4
)

// Options configures [Generate] and [GenerateTree].
type Options struct {
	// Depth is the number of inversion levels. Zero returns the base
	// circles unchanged.
	Depth int

	// Threshold is the visibility threshold. A generated circle is kept
	// only if its radius is strictly greater. Base circles are exempt.
	Threshold float64

	// MaxCircles caps the size of the result, base circles included. Once
	// reached, further candidates are dropped and the remaining levels run
	// as no-ops. Zero means no cap.
	MaxCircles int

	// OnDepth, if set, is called after each completed level.
	OnDepth func(DepthStats)
}

// DepthStats reports the outcome of one generation level.
type DepthStats struct {
	Depth     int  // 1-based level number
	Produced  int  // circles kept at this level
	Pruned    int  // candidates dropped by the threshold
	Total     int  // result size after this level
	Truncated bool // MaxCircles was hit during or before this level
}

// Node is a generated circle together with its lineage.
type Node struct {
	Circle

	// Parent is the index (in the result) of the circle this one was
	// inverted from, or -1 for a base circle.
	Parent int

	// Via is the index of the base circle used as inversor. For base
	// circles it is their own index.
	Via int

	// Depth is the generation level; base circles are level 0.
	Depth int
}

// frontierEntry is a circle awaiting inversion at the next level, named by
// its index in the result and the base circle that produced it.
type frontierEntry struct {
	index  int
	origin int
}

// Generate returns every circle reachable from base by at most opts.Depth
// inversions, pruned by opts.Threshold. The base circles come first, in
// order, followed by each level's survivors in generation order.
func Generate(base []Circle, opts Options) []Circle {
	nodes := GenerateTree(base, opts)
	circles := make([]Circle, len(nodes))
	for i, n := range nodes {
		circles[i] = n.Circle
	}
	return circles
}

// GenerateTree is [Generate] with lineage: each [Node] records its parent
// and the base circle it was inverted through.
func GenerateTree(base []Circle, opts Options) []Node {
	nodes := make([]Node, 0, len(base))
	frontier := make([]frontierEntry, 0, len(base))
	for i, c := range base {
		nodes = append(nodes, Node{Circle: c, Parent: -1, Via: i})
		frontier = append(frontier, frontierEntry{index: i, origin: i})
	}

	capped := func() bool {
		return opts.MaxCircles > 0 && len(nodes) >= opts.MaxCircles
	}

	for depth := 1; depth <= opts.Depth; depth++ {
		var next []frontierEntry
		stats := DepthStats{Depth: depth}

		for _, f := range frontier {
			src := nodes[f.index].Circle
			for j, inv := range base {
				if j == f.origin {
					continue
				}
				c := Invert(src, inv)
				// Written as a negation so NaN radii are pruned too.
				if !(c.Radius > opts.Threshold) {
					stats.Pruned++
					continue
				}
				if capped() {
					stats.Truncated = true
					continue
				}
				next = append(next, frontierEntry{index: len(nodes), origin: j})
				nodes = append(nodes, Node{Circle: c, Parent: f.index, Via: j, Depth: depth})
				stats.Produced++
			}
		}

		frontier = next
		stats.Total = len(nodes)
		stats.Truncated = stats.Truncated || capped()
		if opts.OnDepth != nil {
			opts.OnDepth(stats)
		}
	}
	return nodes
}

// Validate checks base circles and options before generation. Generation
// itself never fails; Validate is for callers that take input from users.
func Validate(base []Circle, opts Options) error {
	if opts.Depth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "depth must be >= 0, got %d", opts.Depth)
	}
	if err := errors.ValidateFinite("threshold", opts.Threshold); err != nil {
		return err
	}
	if opts.Threshold < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "threshold must be >= 0, got %v", opts.Threshold)
	}
	if opts.MaxCircles < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max circles must be >= 0, got %d", opts.MaxCircles)
	}
	for i, c := range base {
		if math.IsNaN(c.X()) || math.IsInf(c.X(), 0) || math.IsNaN(c.Y()) || math.IsInf(c.Y(), 0) {
			return errors.New(errors.ErrCodeInvalidInput, "base circle %d: center must be finite", i)
		}
		if err := errors.ValidateFinite("radius", c.Radius); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "base circle %d", i)
		}
		if c.Radius < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "base circle %d: radius must be >= 0, got %v", i, c.Radius)
		}
	}
	return nil
}

// MaxResultSize is the number of circles Generate would return if nothing
// were pruned: b + b(b-1) + b(b-1)² + ... over depth levels. It saturates
// at math.MaxInt.
func MaxResultSize(baseCount, depth int) int {
	if baseCount <= 0 {
		return 0
	}
	total, level := baseCount, baseCount
	for d := 0; d < depth; d++ {
		if baseCount > 1 && level > (math.MaxInt-total)/(baseCount-1) {
			return math.MaxInt
		}
		level *= baseCount - 1
		total += level
	}
	return total
}
