package life

import "hexlife/pkg/hexgrid"

// layout is the immutable key set of one tessellation: the ordered cells,
// their positions and, per position, the positions of their 1-ring
// neighbors that belong to the tessellation.
type layout struct {
	cells     []hexgrid.CellID
	pos       map[hexgrid.CellID]int
	neighbors [][]int32
}

func newLayout(grid hexgrid.Index, cells []hexgrid.CellID) *layout {
	l := &layout{
		cells:     cells,
		pos:       make(map[hexgrid.CellID]int, len(cells)),
		neighbors: make([][]int32, len(cells)),
	}
	for i, c := range cells {
		l.pos[c] = i
	}
	for i, c := range cells {
		ring := make([]int32, 0, MaxNeighbors)
		for _, n := range grid.Neighbors(c) {
			if n == c {
				continue
			}
			// Cells outside the materialized set are never counted.
			j, ok := l.pos[n]
			if !ok {
				continue
			}
			ring = append(ring, int32(j))
		}
		l.neighbors[i] = ring
	}
	return l
}

// Field maps every cell of a tessellation to its state for one generation.
type Field struct {
	keys   *layout
	states []CellState
}

func newField(keys *layout) *Field {
	return &Field{keys: keys, states: make([]CellState, len(keys.cells))}
}

// Len returns the number of cells in the field.
func (f *Field) Len() int { return len(f.states) }

// Get returns the state of cell. ok is false when the cell is not part of
// the field.
func (f *Field) Get(cell hexgrid.CellID) (CellState, bool) {
	i, ok := f.keys.pos[cell]
	if !ok {
		return CellState{}, false
	}
	return f.states[i], true
}

// Ref returns a pointer to the state of cell, or nil when it is absent.
func (f *Field) Ref(cell hexgrid.CellID) *CellState {
	i, ok := f.keys.pos[cell]
	if !ok {
		return nil
	}
	return &f.states[i]
}

// Position returns the index of cell in tessellation order.
func (f *Field) Position(cell hexgrid.CellID) (int, bool) {
	i, ok := f.keys.pos[cell]
	return i, ok
}

// At returns the state at position i of the tessellation order.
func (f *Field) At(i int) CellState { return f.states[i] }

// Each calls fn for every cell in tessellation order.
func (f *Field) Each(fn func(cell hexgrid.CellID, s CellState)) {
	for i, c := range f.keys.cells {
		fn(c, f.states[i])
	}
}

// Population counts occupied cells.
func (f *Field) Population() int {
	n := 0
	for i := range f.states {
		if f.states[i].Occupied {
			n++
		}
	}
	return n
}

// liveNeighbors counts occupied neighbors of the cell at position i.
func (f *Field) liveNeighbors(i int) int {
	n := 0
	for _, j := range f.keys.neighbors[i] {
		if f.states[j].Occupied {
			n++
		}
	}
	return n
}
