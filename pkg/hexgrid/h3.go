package hexgrid

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// H3 implements Index on top of Uber's H3 library.
type H3 struct{}

// NewH3 returns the H3-backed index.
func NewH3() H3 { return H3{} }

// CellCount returns the number of H3 cells covering the sphere at resolution.
func CellCount(resolution int) int {
	n := 120
	for i := 0; i < resolution; i++ {
		n *= 7
	}
	return n + 2
}

func toCell(id CellID) h3.Cell { return h3.Cell(id) }

func fromCells(cells []h3.Cell) []CellID {
	out := make([]CellID, len(cells))
	for i, c := range cells {
		out[i] = CellID(c)
	}
	return out
}

// RootCells returns the 122 resolution-0 cells.
func (H3) RootCells() []CellID { return fromCells(h3.Res0Cells()) }

// Children returns the descendants of cell at resolution. A resolution equal
// to the cell's own yields the cell itself.
func (H3) Children(cell CellID, resolution int) []CellID {
	c := toCell(cell)
	if resolution == c.Resolution() {
		return []CellID{cell}
	}
	return fromCells(c.Children(resolution))
}

// Neighbors returns the grid disk of radius one around cell.
func (H3) Neighbors(cell CellID) []CellID {
	return fromCells(toCell(cell).GridDisk(1))
}

// ToLocalIJ converts cell into anchor's local frame. The conversion is
// verified by resolving the coordinate back, since the library reports
// failures as a zero coordinate.
func (H3) ToLocalIJ(anchor, cell CellID) (IJ, error) {
	a, c := toCell(anchor), toCell(cell)
	if !a.IsValid() || !c.IsValid() {
		return IJ{}, ErrInvalidCell
	}
	ij := h3.CellToLocalIJ(a, c)
	if back := h3.LocalIJToCell(a, ij); back != c {
		return IJ{}, fmt.Errorf("%w: %s relative to %s", ErrLocalIJ, c, a)
	}
	return IJ{I: ij.I, J: ij.J}, nil
}

// FromLocalIJ resolves ij in the frame anchored at anchor.
func (H3) FromLocalIJ(anchor CellID, ij IJ) (CellID, error) {
	a := toCell(anchor)
	if !a.IsValid() {
		return 0, ErrInvalidCell
	}
	c := h3.LocalIJToCell(a, h3.CoordIJ{I: ij.I, J: ij.J})
	if c == 0 || !c.IsValid() {
		return 0, fmt.Errorf("%w: (%d, %d) from %s", ErrLocalIJ, ij.I, ij.J, a)
	}
	return CellID(c), nil
}

// ToLatLng returns the centre of cell in degrees.
func (H3) ToLatLng(cell CellID) LatLng {
	ll := toCell(cell).LatLng()
	return LatLng{Lat: ll.Lat, Lng: ll.Lng}
}

// FromLatLng returns the cell containing ll at resolution.
func (h H3) FromLatLng(ll LatLng, resolution int) (CellID, error) {
	if resolution < h.MinResolution() || resolution > h.MaxResolution() {
		return 0, fmt.Errorf("%w: %d", ErrResolution, resolution)
	}
	c := h3.LatLngToCell(h3.NewLatLng(ll.Lat, ll.Lng), resolution)
	if !c.IsValid() {
		return 0, fmt.Errorf("%w: %.6f,%.6f", ErrInvalidCell, ll.Lat, ll.Lng)
	}
	return CellID(c), nil
}

// IsPentagon reports whether cell has five neighbors.
func (H3) IsPentagon(cell CellID) bool { return toCell(cell).IsPentagon() }

// Resolution returns the resolution of cell.
func (H3) Resolution(cell CellID) int { return toCell(cell).Resolution() }

// MinResolution is the coarsest H3 resolution.
func (H3) MinResolution() int { return 0 }

// MaxResolution is the finest H3 resolution.
func (H3) MaxResolution() int { return h3.MaxResolution }
