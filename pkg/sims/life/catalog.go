package life

import (
	"errors"
	"fmt"
	"sort"

	"hexlife/pkg/hexgrid"
)

// ErrUnknownPattern reports a lookup for a name the catalog does not hold.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// CanonicalAnchor is where catalog shapes are captured. It sits well away
// from the twelve pentagons.
var CanonicalAnchor = hexgrid.LatLng{Lat: 37.7749, Lng: -122.4194}

// CanonicalResolution is the resolution catalog shapes are captured at.
// Local IJ offsets carry over to any resolution.
const CanonicalResolution = 2

type shapeDef struct {
	name    string
	offsets []hexgrid.IJ
}

// shapeDefs are local IJ offsets from the anchor. The six unit offsets of
// the IJ lattice are (1,0) (1,1) (0,1) (-1,0) (-1,-1) (0,-1).
var shapeDefs = []shapeDef{
	{name: "small flicker", offsets: []hexgrid.IJ{{I: 1, J: 0}}},
	{name: "pulsating trio", offsets: []hexgrid.IJ{{I: 1, J: 0}, {I: 1, J: 1}}},
	{name: "rotating trio", offsets: []hexgrid.IJ{{I: -1, J: 0}, {I: 1, J: 0}}},
	{name: "large flicker", offsets: []hexgrid.IJ{{I: 1, J: 0}, {I: 1, J: 1}, {I: 2, J: 1}}},
	{name: "crawler", offsets: []hexgrid.IJ{{I: 1, J: 0}, {I: 1, J: 1}, {I: -1, J: -1}, {I: 2, J: 2}}},
	{name: "long bar", offsets: []hexgrid.IJ{{I: -2, J: 0}, {I: -1, J: 0}, {I: 1, J: 0}, {I: 2, J: 0}}},
}

// Catalog is the fixed set of named patterns, built once at startup.
type Catalog struct {
	patterns []Pattern
	byName   map[string]Pattern
}

// NewCatalog captures every built-in pattern on grid.
func NewCatalog(grid hexgrid.Index) (*Catalog, error) {
	anchor, err := grid.FromLatLng(CanonicalAnchor, CanonicalResolution)
	if err != nil {
		return nil, fmt.Errorf("catalog anchor: %w", err)
	}

	patterns := []Pattern{
		single{name: "single cell"},
		disk{name: "star", grid: grid},
	}
	for _, def := range shapeDefs {
		s, err := CaptureShape(grid, def.name, anchor, def.offsets)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, s)
	}
	return newCatalog(patterns), nil
}

func newCatalog(patterns []Pattern) *Catalog {
	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Size() != patterns[j].Size() {
			return patterns[i].Size() < patterns[j].Size()
		}
		return patterns[i].Name() < patterns[j].Name()
	})
	c := &Catalog{patterns: patterns, byName: make(map[string]Pattern, len(patterns))}
	for _, p := range patterns {
		c.byName[p.Name()] = p
	}
	return c
}

// All returns the patterns ordered by footprint size, then name.
func (c *Catalog) All() []Pattern {
	return append([]Pattern(nil), c.patterns...)
}

// Names returns the pattern names in presentation order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.patterns))
	for i, p := range c.patterns {
		names[i] = p.Name()
	}
	return names
}

// Lookup returns the pattern called name.
func (c *Catalog) Lookup(name string) (Pattern, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Len returns the number of patterns.
func (c *Catalog) Len() int { return len(c.patterns) }

// At returns the pattern at position i of the presentation order.
func (c *Catalog) At(i int) Pattern { return c.patterns[i] }
