package geom

import (
	"cmp"
	"math"
	"math/cmplx"
	"slices"

	"github.com/matzehuels/mobius/pkg/errors"
)

// DefaultPreset is the reference configuration: four circles of radius ½
// centred at ±1 and ±i.
const DefaultPreset = "square"

// Preset is a named set of base circles.
type Preset struct {
	Name        string
	Description string
	// BaseRadius is the radius renderers scale stroke widths against.
	BaseRadius float64
	Circles    []Circle
}

var presets = map[string]Preset{
	"square": {
		Name:        "square",
		Description: "four circles of radius 1/2 at ±1 and ±i",
		BaseRadius:  0.5,
		Circles:     []Circle{C(1, 0, 0.5), C(-1, 0, 0.5), C(0, 1, 0.5), C(0, -1, 0.5)},
	},
	"kissing-square": {
		Name:        "kissing-square",
		Description: "four mutually tangent neighbours of radius √2/2 at ±1 and ±i",
		BaseRadius:  math.Sqrt2 / 2,
		Circles: []Circle{
			C(1, 0, math.Sqrt2/2), C(-1, 0, math.Sqrt2/2),
			C(0, 1, math.Sqrt2/2), C(0, -1, math.Sqrt2/2),
		},
	},
	"triangle": {
		Name:        "triangle",
		Description: "three mutually tangent circles on the unit circle",
		BaseRadius:  math.Sqrt(3) / 2,
		Circles:     ring(3, math.Pi/2, math.Sqrt(3)/2),
	},
	"hexagon": {
		Name:        "hexagon",
		Description: "six circles of radius 1/2 on the unit circle, neighbours tangent",
		BaseRadius:  0.5,
		Circles:     ring(6, 0, 0.5),
	},
}

// ring places n circles of radius r on the unit circle, starting at angle
// phase.
func ring(n int, phase, r float64) []Circle {
	circles := make([]Circle, n)
	for k := range n {
		theta := phase + 2*math.Pi*float64(k)/float64(n)
		circles[k] = Circle{Center: cmplx.Rect(1, theta), Radius: r}
	}
	return circles
}

// LookupPreset returns the named preset. The returned circles are a copy.
func LookupPreset(name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset: %q (available: %v)", name, PresetNames())
	}
	p.Circles = slices.Clone(p.Circles)
	return p, nil
}

// MustPreset returns the circles of a built-in preset and panics if it does
// not exist.
func MustPreset(name string) []Circle {
	p, err := LookupPreset(name)
	if err != nil {
		panic(err)
	}
	return p.Circles
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Presets returns every preset, sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		p.Circles = slices.Clone(p.Circles)
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Preset) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
