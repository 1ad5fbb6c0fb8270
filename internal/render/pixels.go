package render

import "image/color"

// fillCellRGBA writes one RGBA pixel per lookup entry into buf. Entries hold
// a position into colors, or a negative value for pixels that fall outside
// the tessellation.
func fillCellRGBA(buf []byte, lookup []int32, colors []color.NRGBA, background color.NRGBA) {
	for i, pos := range lookup {
		col := background
		if pos >= 0 && int(pos) < len(colors) {
			col = colors[pos]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
