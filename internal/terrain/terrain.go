// Package terrain seeds cell richness from simplex noise sampled on the unit
// sphere, so neighboring cells share similar ground at every resolution.
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

const (
	// Noise below PoorBelow is scorched, above RichAbove is grassland.
	PoorBelow = 0.38
	RichAbove = 0.62

	octaves     = 3
	persistence = 0.5
)

// Generator maps positions on the sphere to terrain richness.
type Generator struct {
	noise opensimplex.Noise
	scale float64
}

// New returns a generator for seed. scale sets the feature size; larger
// values give smaller patches.
func New(seed int64, scale float64) *Generator {
	if scale <= 0 {
		scale = 1
	}
	return &Generator{noise: opensimplex.NewNormalized(seed), scale: scale}
}

// Value returns the noise level in [0, 1] at ll.
func (g *Generator) Value(ll hexgrid.LatLng) float64 {
	x, y, z := unitSphere(ll)
	total, amp, freq, norm := 0.0, 1.0, g.scale, 0.0
	for i := 0; i < octaves; i++ {
		total += g.noise.Eval3(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= persistence
		freq *= 2
	}
	return total / norm
}

// Richness classifies the noise level at ll.
func (g *Generator) Richness(ll hexgrid.LatLng) life.Richness {
	v := g.Value(ll)
	switch {
	case v < PoorBelow:
		return life.RichnessPoor
	case v > RichAbove:
		return life.RichnessRich
	default:
		return life.RichnessUsual
	}
}

func unitSphere(ll hexgrid.LatLng) (float64, float64, float64) {
	lat := ll.Lat * math.Pi / 180
	lng := ll.Lng * math.Pi / 180
	return math.Cos(lat) * math.Cos(lng), math.Cos(lat) * math.Sin(lng), math.Sin(lat)
}
