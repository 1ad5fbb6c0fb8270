package life

import "image/color"

// Display palette.
var (
	BackColor     = color.NRGBA{R: 52, G: 73, B: 94, A: 255}
	PentagonColor = color.NRGBA{R: 52, G: 73, B: 79, A: 255}
	LifeColor     = color.NRGBA{R: 25, G: 230, B: 25, A: 76}
	GrassColor    = color.NRGBA{R: 102, G: 230, B: 25, A: 255}
	ScorchedColor = color.NRGBA{R: 230, G: 102, B: 25, A: 255}
	MarkColor     = color.NRGBA{R: 255, G: 0, B: 0, A: 230}
)

// CellColor derives the display color of a cell. The occupancy base color
// is averaged with a terrain overlay, and marked cells are averaged once
// more with MarkColor.
func CellColor(s CellState, pentagon bool) color.NRGBA {
	base := BackColor
	switch {
	case s.Occupied:
		base = LifeColor
	case pentagon:
		base = PentagonColor
	}

	overlay := BackColor
	switch s.Richness {
	case RichnessRich:
		overlay = GrassColor
	case RichnessPoor:
		overlay = ScorchedColor
	}

	c := Blend(base, overlay)
	if s.Marked {
		c = Blend(MarkColor, c)
	}
	return c
}

// Blend averages two colors channel by channel.
func Blend(a, b color.NRGBA) color.NRGBA {
	avg := func(x, y uint8) uint8 { return uint8((uint16(x) + uint16(y)) / 2) }
	return color.NRGBA{
		R: avg(a.R, b.R),
		G: avg(a.G, b.G),
		B: avg(a.B, b.B),
		A: avg(a.A, b.A),
	}
}
