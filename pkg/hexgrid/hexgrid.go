// Package hexgrid describes the hierarchical hex-sphere index the simulation
// runs on. Cells are opaque identifiers handed out by an Index; the engine
// never derives them on its own.
package hexgrid

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidCell reports an identifier that does not name a cell.
	ErrInvalidCell = errors.New("hexgrid: invalid cell")
	// ErrLocalIJ reports a local coordinate that cannot be converted, usually
	// because it crosses a pentagon distortion or a face seam.
	ErrLocalIJ = errors.New("hexgrid: local ij conversion failed")
	// ErrResolution reports a resolution the index does not support.
	ErrResolution = errors.New("hexgrid: unsupported resolution")
)

// CellID identifies one cell of the tessellation at a fixed resolution.
type CellID uint64

// IJ is a position in a local integer coordinate frame.
type IJ struct {
	I, J int
}

// Add returns the component-wise sum of two coordinates.
func (c IJ) Add(o IJ) IJ { return IJ{I: c.I + o.I, J: c.J + o.J} }

// Sub returns the component-wise difference c - o.
func (c IJ) Sub(o IJ) IJ { return IJ{I: c.I - o.I, J: c.J - o.J} }

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Index is the contract the simulation consumes from the grid library.
type Index interface {
	// RootCells lists the coarsest cells covering the sphere.
	RootCells() []CellID
	// Children lists the descendants of cell at the given finer resolution.
	Children(cell CellID, resolution int) []CellID
	// Neighbors returns the 1-ring disk around cell, including cell itself.
	Neighbors(cell CellID) []CellID
	// ToLocalIJ expresses cell in the local frame anchored at anchor.
	ToLocalIJ(anchor, cell CellID) (IJ, error)
	// FromLocalIJ resolves a coordinate of the frame anchored at anchor.
	FromLocalIJ(anchor CellID, ij IJ) (CellID, error)
	// ToLatLng returns the centre of cell.
	ToLatLng(cell CellID) LatLng
	// FromLatLng returns the cell containing ll at the given resolution.
	FromLatLng(ll LatLng, resolution int) (CellID, error)
	// IsPentagon reports whether cell is one of the five-neighbor anomalies.
	IsPentagon(cell CellID) bool
	// Resolution reports the resolution cell belongs to.
	Resolution(cell CellID) int
	// MinResolution and MaxResolution bound the supported resolutions.
	MinResolution() int
	MaxResolution() int
}

// Tessellate enumerates every cell at resolution by subdividing all root
// cells of idx.
func Tessellate(idx Index, resolution int) []CellID {
	roots := idx.RootCells()
	cells := make([]CellID, 0, len(roots))
	for _, root := range roots {
		cells = append(cells, idx.Children(root, resolution)...)
	}
	return cells
}

// Ring returns the neighbors of cell without cell itself.
func Ring(idx Index, cell CellID) []CellID {
	disk := idx.Neighbors(cell)
	out := make([]CellID, 0, len(disk))
	for _, n := range disk {
		if n != cell {
			out = append(out, n)
		}
	}
	return out
}

// String formats the identifier in hexadecimal, the form most index
// libraries print.
func (c CellID) String() string { return strconv.FormatUint(uint64(c), 16) }
