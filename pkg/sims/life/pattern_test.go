package life

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexlife/pkg/hexgrid"
)

var denver = hexgrid.LatLng{Lat: 39.7392, Lng: -104.9903}

func sorted(cells []hexgrid.CellID) []hexgrid.CellID {
	out := append([]hexgrid.CellID(nil), cells...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func newH3Game(t *testing.T, resolution int) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Resolution = resolution
	cfg.Seed = 3
	g, err := New(hexgrid.NewH3(), cfg)
	require.NoError(t, err)
	return g
}

func TestCatalogOrder(t *testing.T) {
	cat, err := NewCatalog(hexgrid.NewH3())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"single cell",
		"small flicker",
		"pulsating trio",
		"rotating trio",
		"large flicker",
		"crawler",
		"long bar",
		"star",
	}, cat.Names())

	for i := 1; i < cat.Len(); i++ {
		assert.LessOrEqual(t, cat.At(i-1).Size(), cat.At(i).Size())
	}
}

func TestCatalogLookup(t *testing.T) {
	cat, err := NewCatalog(hexgrid.NewH3())
	require.NoError(t, err)

	p, err := cat.Lookup("star")
	require.NoError(t, err)
	assert.Equal(t, "star", p.Name())

	_, err = cat.Lookup("glider gun")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestShapeAtCanonicalAnchor(t *testing.T) {
	grid := hexgrid.NewH3()
	cat, err := NewCatalog(grid)
	require.NoError(t, err)

	for _, p := range cat.All() {
		s, ok := p.(*Shape)
		if !ok {
			continue
		}
		canonical := s.Canonical()
		assert.Equal(t, sorted(canonical), sorted(s.Cells(canonical[0])), p.Name())
	}
}

func TestShapeCellsAreDistinctAndAdjacent(t *testing.T) {
	grid := hexgrid.NewH3()
	cat, err := NewCatalog(grid)
	require.NoError(t, err)
	target, err := grid.FromLatLng(denver, CanonicalResolution)
	require.NoError(t, err)

	flicker, err := cat.Lookup("small flicker")
	require.NoError(t, err)
	cells := flicker.Cells(target)
	require.Len(t, cells, 2)
	assert.Equal(t, target, cells[0])
	assert.Contains(t, hexgrid.Ring(grid, target), cells[1])

	for _, p := range cat.All() {
		cells := p.Cells(target)
		assert.Len(t, cells, p.Size(), p.Name())
		seen := map[hexgrid.CellID]bool{}
		for _, c := range cells {
			assert.False(t, seen[c], "%s repeats %v", p.Name(), c)
			seen[c] = true
			assert.Equal(t, CanonicalResolution, grid.Resolution(c))
		}
	}
}

func TestStampRoundTrip(t *testing.T) {
	g := newH3Game(t, CanonicalResolution)
	cat, err := NewCatalog(g.Grid())
	require.NoError(t, err)
	target, ok := g.CellAt(denver)
	require.True(t, ok)

	for _, p := range cat.All() {
		g.KillEverything()

		set := g.Stamp(p, target)

		var occupied []hexgrid.CellID
		g.Present().Each(func(c hexgrid.CellID, s CellState) {
			if s.Occupied {
				occupied = append(occupied, c)
			}
		})
		assert.Equal(t, p.Size(), set, p.Name())
		assert.Equal(t, sorted(p.Cells(target)), sorted(occupied), p.Name())
	}
}

func TestStarMatchesGridDisk(t *testing.T) {
	g := newH3Game(t, 1)
	cat, err := NewCatalog(g.Grid())
	require.NoError(t, err)
	star, err := cat.Lookup("star")
	require.NoError(t, err)

	target, ok := g.CellAt(denver)
	require.True(t, ok)
	assert.ElementsMatch(t, g.Grid().Neighbors(target), star.Cells(target))
}

func TestStampMarked(t *testing.T) {
	g := newH3Game(t, CanonicalResolution)
	cat, err := NewCatalog(g.Grid())
	require.NoError(t, err)
	single, err := cat.Lookup("single cell")
	require.NoError(t, err)

	a, ok := g.CellAt(denver)
	require.True(t, ok)
	b, ok := g.CellAt(CanonicalAnchor)
	require.True(t, ok)
	g.KillEverything()
	g.Mark(a)
	g.Mark(b)

	assert.Equal(t, 2, g.StampMarked(single))
	assert.Equal(t, 2, g.Population())
}

func TestSetResolutionOnH3(t *testing.T) {
	g := newH3Game(t, 1)
	old := append([]hexgrid.CellID(nil), g.Cells()...)
	assert.Len(t, old, hexgrid.CellCount(1))

	require.True(t, g.SetResolution(2))

	assert.Len(t, g.Cells(), hexgrid.CellCount(2))
	for _, c := range old {
		_, ok := g.Get(c)
		require.False(t, ok)
	}
}

func TestParallelTickMatchesSerial(t *testing.T) {
	grid := hexgrid.NewH3()
	cfg := DefaultConfig()
	cfg.Resolution = 2
	cfg.Seed = 11

	cfg.Workers = 1
	serial, err := New(grid, cfg)
	require.NoError(t, err)
	cfg.Workers = 4
	parallel, err := New(grid, cfg)
	require.NoError(t, err)

	serial.SpawnLife(0.4)
	parallel.SpawnLife(0.4)
	require.Equal(t, serial.Present().states, parallel.Present().states)

	rules := DefaultRules()
	for i := 0; i < 3; i++ {
		serial.Step(&rules)
		parallel.Step(&rules)
	}
	assert.Equal(t, serial.Present().states, parallel.Present().states)
	assert.Equal(t, uint64(3), parallel.Generation())
}
