package life

import (
	"fmt"

	"hexlife/pkg/hexgrid"
)

// Pattern is a fixed cell-shape that can be brought to life around any
// target cell.
type Pattern interface {
	Name() string
	// Size is the number of cells in the full footprint.
	Size() int
	// Cells places the footprint at center. Cells that cannot be resolved
	// near seams or pentagons are left out, so the result may be shorter
	// than Size.
	Cells(center hexgrid.CellID) []hexgrid.CellID
}

// single is the one-cell pattern.
type single struct{ name string }

func (p single) Name() string { return p.name }
func (p single) Size() int { return 1 }
func (p single) Cells(center hexgrid.CellID) []hexgrid.CellID { return []hexgrid.CellID{center} }

// disk is the centre plus its 1-ring, taken straight from the index so it
// stays exact on pentagons.
type disk struct {
	name string
	grid hexgrid.Index
}

func (p disk) Name() string { return p.name }
func (p disk) Size() int    { return MaxNeighbors + 1 }
func (p disk) Cells(center hexgrid.CellID) []hexgrid.CellID {
	return p.grid.Neighbors(center)
}

// Shape is a pattern captured as concrete cells around a canonical anchor,
// the first cell. Stamping re-expresses every cell in the local IJ frame of
// the target, which only holds while the footprint stays inside one
// locally affine neighborhood.
type Shape struct {
	name    string
	grid    hexgrid.Index
	anchor  hexgrid.CellID
	cells   []hexgrid.CellID
	offsets []hexgrid.IJ
}

// NewShape captures cells as a pattern anchored at cells[0].
func NewShape(grid hexgrid.Index, name string, cells []hexgrid.CellID) (*Shape, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("shape %q: no cells", name)
	}
	anchor := cells[0]
	origin, err := grid.ToLocalIJ(anchor, anchor)
	if err != nil {
		return nil, fmt.Errorf("shape %q: anchor: %w", name, err)
	}
	offsets := make([]hexgrid.IJ, 0, len(cells)-1)
	for _, c := range cells[1:] {
		ij, err := grid.ToLocalIJ(anchor, c)
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		offsets = append(offsets, ij.Sub(origin))
	}
	return &Shape{
		name:    name,
		grid:    grid,
		anchor:  anchor,
		cells:   append([]hexgrid.CellID(nil), cells...),
		offsets: offsets,
	}, nil
}

// CaptureShape builds a shape from local offsets around anchor, resolving
// each offset to a concrete cell once.
func CaptureShape(grid hexgrid.Index, name string, anchor hexgrid.CellID, offsets []hexgrid.IJ) (*Shape, error) {
	origin, err := grid.ToLocalIJ(anchor, anchor)
	if err != nil {
		return nil, fmt.Errorf("shape %q: anchor: %w", name, err)
	}
	cells := []hexgrid.CellID{anchor}
	for _, off := range offsets {
		if off == (hexgrid.IJ{}) {
			continue
		}
		c, err := grid.FromLocalIJ(anchor, origin.Add(off))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		cells = append(cells, c)
	}
	return NewShape(grid, name, cells)
}

// Name returns the catalog name.
func (s *Shape) Name() string { return s.name }

// Size returns the number of canonical cells.
func (s *Shape) Size() int { return len(s.cells) }

// Canonical returns the captured cells, anchor first.
func (s *Shape) Canonical() []hexgrid.CellID {
	return append([]hexgrid.CellID(nil), s.cells...)
}

// Cells transposes the canonical cells onto center.
func (s *Shape) Cells(center hexgrid.CellID) []hexgrid.CellID {
	target, err := s.grid.ToLocalIJ(center, center)
	if err != nil {
		return nil
	}
	out := make([]hexgrid.CellID, 0, len(s.cells))
	out = append(out, center)
	for _, off := range s.offsets {
		c, err := s.grid.FromLocalIJ(center, target.Add(off))
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
