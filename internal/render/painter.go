//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"hexlife/pkg/sims/life"
)

// MapPainter keeps an offscreen image of the projected map.
type MapPainter struct {
	proj *Projection
	img  *ebiten.Image
	buf  []byte
}

// NewMapPainter allocates a painter for a map of w*h pixels.
func NewMapPainter(w, h int) *MapPainter {
	proj := NewProjection(w, h)
	w, h = proj.Size()
	return &MapPainter{proj: proj, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Projection returns the pixel mapping used by the painter.
func (mp *MapPainter) Projection() *Projection { return mp.proj }

// Blit uploads the present field of g and draws it scaled onto dst.
func (mp *MapPainter) Blit(dst *ebiten.Image, g *life.Game, scale int) {
	mp.proj.Fill(mp.buf, g)
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}
