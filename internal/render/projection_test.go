package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

func newGame(t *testing.T, resolution int) *life.Game {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Resolution = resolution
	cfg.Seed = 9
	g, err := life.New(hexgrid.NewH3(), cfg)
	require.NoError(t, err)
	return g
}

func TestFillCellRGBA(t *testing.T) {
	buf := make([]byte, 12)
	colors := []color.NRGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	bg := color.NRGBA{R: 9, G: 9, B: 9, A: 9}

	fillCellRGBA(buf, []int32{1, -1, 0}, colors, bg)

	assert.Equal(t, []byte{5, 6, 7, 8, 9, 9, 9, 9, 1, 2, 3, 4}, buf)
}

func TestPixelCentres(t *testing.T) {
	p := NewProjection(360, 180)

	ll := p.LatLng(0, 0)
	assert.InDelta(t, 89.5, ll.Lat, 1e-9)
	assert.InDelta(t, -179.5, ll.Lng, 1e-9)

	x, y := p.Pixel(hexgrid.LatLng{Lat: 37.7749, Lng: -122.4194})
	back := p.LatLng(x, y)
	assert.InDelta(t, 37.7749, back.Lat, 1)
	assert.InDelta(t, -122.4194, back.Lng, 1)

	x, y = p.Pixel(hexgrid.LatLng{Lat: -90, Lng: 180})
	assert.Equal(t, 359, x)
	assert.Equal(t, 179, y)
}

func TestEveryPixelLandsOnACell(t *testing.T) {
	g := newGame(t, 0)
	p := NewProjection(72, 36)

	p.Fill(make([]byte, 4*72*36), g)

	require.Len(t, p.lookup, 72*36)
	for i, pos := range p.lookup {
		assert.GreaterOrEqual(t, pos, int32(0), "pixel %d", i)
	}
}

func TestFillShowsCellState(t *testing.T) {
	g := newGame(t, 1)
	p := NewProjection(72, 36)
	buf := make([]byte, 4*72*36)
	g.KillEverything()

	x, y := 20, 10
	cell, ok := g.CellAt(p.LatLng(x, y))
	require.True(t, ok)
	require.True(t, g.ToggleLife(cell))
	p.Fill(buf, g)

	s, _ := g.Get(cell)
	want := life.CellColor(s, g.Grid().IsPentagon(cell))
	base := (y*72 + x) * 4
	assert.Equal(t, []byte{want.R, want.G, want.B, want.A}, buf[base:base+4])
}

func TestProjectionFollowsResolution(t *testing.T) {
	g := newGame(t, 0)
	p := NewProjection(36, 18)
	buf := make([]byte, 4*36*18)

	p.Fill(buf, g)
	assert.Len(t, p.colors, hexgrid.CellCount(0))

	require.True(t, g.SetResolution(1))
	p.Fill(buf, g)
	assert.Equal(t, 1, p.resolution)
	assert.Len(t, p.colors, hexgrid.CellCount(1))
}
