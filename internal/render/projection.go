// Package render rasterizes the hex-sphere onto an equirectangular map.
package render

import (
	"image/color"
	"log/slog"
	"time"

	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

// Projection maps the pixels of a w*h equirectangular image to positions in
// the game's tessellation. The lookup table is rebuilt when the resolution
// changes.
type Projection struct {
	w, h int

	resolution int
	cells      int
	lookup     []int32
	pentagon   []bool
	colors     []color.NRGBA
}

// NewProjection allocates a projection for an image of w*h pixels.
func NewProjection(w, h int) *Projection {
	return &Projection{w: max(w, 1), h: max(h, 1), resolution: -1}
}

// Size returns the image dimensions.
func (p *Projection) Size() (int, int) { return p.w, p.h }

// LatLng returns the position at the centre of pixel (x, y).
func (p *Projection) LatLng(x, y int) hexgrid.LatLng {
	return hexgrid.LatLng{
		Lat: 90 - (float64(y)+0.5)*180/float64(p.h),
		Lng: -180 + (float64(x)+0.5)*360/float64(p.w),
	}
}

// Pixel returns the pixel containing ll.
func (p *Projection) Pixel(ll hexgrid.LatLng) (int, int) {
	x := int((ll.Lng + 180) / 360 * float64(p.w))
	y := int((90 - ll.Lat) / 180 * float64(p.h))
	return min(max(x, 0), p.w-1), min(max(y, 0), p.h-1)
}

func (p *Projection) stale(g *life.Game) bool {
	return p.lookup == nil || p.resolution != g.Resolution() || p.cells != len(g.Cells())
}

func (p *Projection) rebuild(g *life.Game) {
	start := time.Now()
	cells := g.Cells()
	present := g.Present()

	p.lookup = make([]int32, p.w*p.h)
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			i := y*p.w + x
			p.lookup[i] = -1
			cell, ok := g.CellAt(p.LatLng(x, y))
			if !ok {
				continue
			}
			if pos, ok := present.Position(cell); ok {
				p.lookup[i] = int32(pos)
			}
		}
	}

	p.pentagon = make([]bool, len(cells))
	for i, c := range cells {
		p.pentagon[i] = g.Grid().IsPentagon(c)
	}
	p.colors = make([]color.NRGBA, len(cells))
	p.resolution = g.Resolution()
	p.cells = len(cells)
	slog.Debug("projection rebuilt",
		"resolution", p.resolution,
		"pixels", len(p.lookup),
		"elapsed", time.Since(start),
	)
}

// Fill writes the present field of g into buf as RGBA pixels. buf must hold
// 4*w*h bytes.
func (p *Projection) Fill(buf []byte, g *life.Game) {
	if p.stale(g) {
		p.rebuild(g)
	}
	present := g.Present()
	for i := range p.colors {
		p.colors[i] = life.CellColor(present.At(i), p.pentagon[i])
	}
	fillCellRGBA(buf, p.lookup, p.colors, life.BackColor)
}
