package geom_test

import (
	"fmt"

	"github.com/matzehuels/mobius/pkg/geom"
)

func ExampleInvert() {
	src := geom.C(1, 0, 0.5)
	inv := geom.C(-1, 0, 0.5)

	img := geom.Invert(src, inv)
	fmt.Printf("center: %.4f%+.4fi\n", real(img.Center), imag(img.Center))
	fmt.Printf("radius: %.4f\n", img.Radius)
	// Output:
	// center: -0.8667+0.0000i
	// radius: 0.0333
}

func ExampleGenerate() {
	base := geom.MustPreset("square")

	circles := geom.Generate(base, geom.Options{Depth: 1, Threshold: 1e-4})
	fmt.Println("circles:", len(circles))
	// Output:
	// circles: 16
}

func ExampleGenerate_progress() {
	base := geom.MustPreset("square")

	geom.Generate(base, geom.Options{
		Depth:     2,
		Threshold: 1e-4,
		OnDepth: func(s geom.DepthStats) {
			fmt.Printf("depth %d: +%d\n", s.Depth, s.Produced)
		},
	})
	// Output:
	// depth 1: +12
	// depth 2: +36
}

func ExampleLookupPreset() {
	p, err := geom.LookupPreset("hexagon")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(p.Name, len(p.Circles))

	_, err = geom.LookupPreset("pentagon")
	fmt.Println(err != nil)
	// Output:
	// hexagon 6
	// true
}
