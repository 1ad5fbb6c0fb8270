package life

import "hexlife/pkg/hexgrid"

// fakeGrid is a hand-built index: every resolution is one flat list of
// cells with explicit adjacency, so neighbor counts can be checked by eye.
type fakeGrid struct {
	levels    map[int][]hexgrid.CellID
	adj       map[hexgrid.CellID][]hexgrid.CellID
	pentagons map[hexgrid.CellID]bool

	// coords places level-0 cells on one shared IJ lattice; a cell's local
	// coordinate is its lattice position minus the anchor's. Cells without a
	// position have no chart, and blocked positions never resolve.
	coords  map[hexgrid.CellID]hexgrid.IJ
	blocked map[hexgrid.IJ]bool
}

const fakeRoot hexgrid.CellID = 1000

// absentCell is listed as a neighbor but never materialized.
const absentCell hexgrid.CellID = 99

func newFakeGrid() *fakeGrid {
	return &fakeGrid{
		levels: map[int][]hexgrid.CellID{
			0: {1, 2, 3, 4, 5, 6, 7, 8},
			1: {11, 12, 13, 14},
		},
		adj: map[hexgrid.CellID][]hexgrid.CellID{
			1: {2, 3, 4, 5, 6, absentCell},
			2: {1, 3, 7, absentCell},
			3: {1, 2, 4},
			4: {1, 3, 5},
			5: {1, 4, 6, 8},
			6: {1, 5, 7},
			7: {2, 6, 8},
			8: {5, 7},

			11: {12, 13, 14},
			12: {11, 13},
			13: {11, 12, 14},
			14: {11, 13},
		},
		pentagons: map[hexgrid.CellID]bool{5: true},
		coords: map[hexgrid.CellID]hexgrid.IJ{
			1: {I: 0, J: 0},
			2: {I: 1, J: 0},
			3: {I: 1, J: 1},
			4: {I: 0, J: 1},
			6: {I: -1, J: 0},
			7: {I: -1, J: -1},
			8: {I: 2, J: 1},
		},
		blocked: map[hexgrid.IJ]bool{},
	}
}

func (f *fakeGrid) RootCells() []hexgrid.CellID { return []hexgrid.CellID{fakeRoot} }

func (f *fakeGrid) Children(_ hexgrid.CellID, resolution int) []hexgrid.CellID {
	return append([]hexgrid.CellID(nil), f.levels[resolution]...)
}

func (f *fakeGrid) Neighbors(cell hexgrid.CellID) []hexgrid.CellID {
	return append([]hexgrid.CellID{cell}, f.adj[cell]...)
}

func (f *fakeGrid) ToLocalIJ(anchor, cell hexgrid.CellID) (hexgrid.IJ, error) {
	a, ok := f.coords[anchor]
	if !ok {
		return hexgrid.IJ{}, hexgrid.ErrLocalIJ
	}
	c, ok := f.coords[cell]
	if !ok {
		return hexgrid.IJ{}, hexgrid.ErrLocalIJ
	}
	return c.Sub(a), nil
}

func (f *fakeGrid) FromLocalIJ(anchor hexgrid.CellID, ij hexgrid.IJ) (hexgrid.CellID, error) {
	a, ok := f.coords[anchor]
	if !ok {
		return 0, hexgrid.ErrLocalIJ
	}
	pos := a.Add(ij)
	if f.blocked[pos] {
		return 0, hexgrid.ErrLocalIJ
	}
	for c, p := range f.coords {
		if p == pos {
			return c, nil
		}
	}
	return 0, hexgrid.ErrLocalIJ
}

func (f *fakeGrid) ToLatLng(cell hexgrid.CellID) hexgrid.LatLng {
	return hexgrid.LatLng{Lat: float64(cell)}
}

func (f *fakeGrid) FromLatLng(ll hexgrid.LatLng, resolution int) (hexgrid.CellID, error) {
	for _, c := range f.levels[resolution] {
		if float64(c) == ll.Lat {
			return c, nil
		}
	}
	return 0, hexgrid.ErrInvalidCell
}

func (f *fakeGrid) IsPentagon(cell hexgrid.CellID) bool { return f.pentagons[cell] }

func (f *fakeGrid) Resolution(cell hexgrid.CellID) int {
	for res, cells := range f.levels {
		for _, c := range cells {
			if c == cell {
				return res
			}
		}
	}
	return -1
}

func (f *fakeGrid) MinResolution() int { return 0 }
func (f *fakeGrid) MaxResolution() int { return 1 }
