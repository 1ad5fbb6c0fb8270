// Package life runs a Life-family cellular automaton on a hex-sphere
// tessellation. A Game owns a present and a future Field; a tick reads only
// the present and writes only the future, then the two are swapped.
package life

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"hexlife/internal/metrics"
	"hexlife/pkg/core"
	"hexlife/pkg/hexgrid"
)

// ErrResolutionRange reports a resolution outside the configured bounds.
var ErrResolutionRange = errors.New("life: resolution out of range")

// minChunk keeps small tessellations on a single goroutine.
const minChunk = 2048

// TerrainFunc assigns a richness to the cell centred at ll.
type TerrainFunc func(ll hexgrid.LatLng) Richness

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithTerrain seeds cell richness from fn whenever the tessellation is built.
func WithTerrain(fn TerrainFunc) Option {
	return func(g *Game) { g.terrain = fn }
}

// Game is the simulation engine.
type Game struct {
	grid    hexgrid.Index
	cfg     Config
	log     *slog.Logger
	rng     *core.RNG
	terrain TerrainFunc

	resolution int
	keys       *layout
	present    *Field
	future     *Field
	generation uint64
}

// New builds a game at cfg.Resolution. Every cell starts unoccupied and
// unmarked.
func New(grid hexgrid.Index, cfg Config, opts ...Option) (*Game, error) {
	cfg.MinResolution = max(cfg.MinResolution, grid.MinResolution())
	cfg.MaxResolution = min(cfg.MaxResolution, grid.MaxResolution())
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{grid: grid, cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	if cfg.Seed != 0 {
		g.rng = core.NewRNG(cfg.Seed)
	} else {
		g.rng = core.NewTimeRNG()
	}
	g.build(cfg.Resolution)
	return g, nil
}

func (g *Game) build(resolution int) {
	start := time.Now()
	cells := hexgrid.Tessellate(g.grid, resolution)

	g.resolution = resolution
	g.keys = newLayout(g.grid, cells)
	g.present = newField(g.keys)
	g.future = newField(g.keys)
	g.generation = 0

	if g.terrain != nil {
		for i, c := range cells {
			r := g.terrain(g.grid.ToLatLng(c))
			g.present.states[i].Richness = r
			g.future.states[i].Richness = r
		}
	}

	metrics.SetTessellation(resolution, len(cells))
	metrics.SetPopulation(0)
	g.log.Info("tessellation built",
		"resolution", resolution,
		"cells", len(cells),
		"elapsed", time.Since(start),
	)
}

// Grid returns the index the game runs on.
func (g *Game) Grid() hexgrid.Index { return g.grid }

// Config returns the effective configuration.
func (g *Game) Config() Config { return g.cfg }

// Resolution returns the active resolution.
func (g *Game) Resolution() int { return g.resolution }

// Generation returns the number of ticks since the tessellation was built.
func (g *Game) Generation() uint64 { return g.generation }

// Cells returns the active tessellation in its fixed order. The slice is
// shared and must not be modified.
func (g *Game) Cells() []hexgrid.CellID { return g.keys.cells }

// Present returns the field the next tick reads from.
func (g *Game) Present() *Field { return g.present }

// Future returns the field the next tick writes into.
func (g *Game) Future() *Field { return g.future }

// Population counts occupied cells in the present field.
func (g *Game) Population() int { return g.present.Population() }

// SetProbability changes the occupancy chance used when a resolution change
// reseeds the game. Values are clamped to [0, 1].
func (g *Game) SetProbability(p float64) {
	g.cfg.Probability = min(max(p, 0), 1)
}

// Reseed replaces the random source used by SpawnLife.
func (g *Game) Reseed(seed int64) { g.rng = core.NewRNG(seed) }

// SpawnLife sets every cell occupied independently with probability p.
func (g *Game) SpawnLife(p float64) {
	states := g.present.states
	for i := range states {
		states[i].Occupied = g.rng.Chance(p)
	}
	pop := g.present.Population()
	metrics.SetPopulation(pop)
	g.log.Debug("life spawned", "probability", p, "population", pop)
}

// KillEverything clears occupancy in the present field. Marks and terrain
// are kept.
func (g *Game) KillEverything() {
	states := g.present.states
	for i := range states {
		states[i].Occupied = false
	}
	metrics.SetPopulation(0)
}

// Get returns the present state of cell. ok is false for cells outside the
// active tessellation, e.g. ids from a previous resolution.
func (g *Game) Get(cell hexgrid.CellID) (CellState, bool) {
	return g.present.Get(cell)
}

// Ref returns a mutable reference to the present state of cell, or nil.
func (g *Game) Ref(cell hexgrid.CellID) *CellState {
	return g.present.Ref(cell)
}

// Mark flags cell. It reports whether the cell exists.
func (g *Game) Mark(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Marked = true
	return true
}

// Unmark clears the flag on cell. It reports whether the cell exists.
func (g *Game) Unmark(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Marked = false
	return true
}

// ToggleMark flips the flag on cell.
func (g *Game) ToggleMark(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Marked = !s.Marked
	return true
}

// ToggleLife flips the occupancy of cell.
func (g *Game) ToggleLife(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Occupied = !s.Occupied
	return true
}

// Enrich raises the terrain of cell one level. It reports whether the cell
// exists.
func (g *Game) Enrich(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Enrich()
	return true
}

// Deplete lowers the terrain of cell one level.
func (g *Game) Deplete(cell hexgrid.CellID) bool {
	s := g.present.Ref(cell)
	if s == nil {
		return false
	}
	s.Deplete()
	return true
}

// RemoveMarks clears every mark.
func (g *Game) RemoveMarks() {
	states := g.present.states
	for i := range states {
		states[i].Marked = false
	}
}

// Marked lists marked cells in tessellation order.
func (g *Game) Marked() []hexgrid.CellID {
	var out []hexgrid.CellID
	for i, c := range g.keys.cells {
		if g.present.states[i].Marked {
			out = append(out, c)
		}
	}
	return out
}

// MarkedCoords returns the centres of the marked cells.
func (g *Game) MarkedCoords() []hexgrid.LatLng {
	marked := g.Marked()
	out := make([]hexgrid.LatLng, len(marked))
	for i, c := range marked {
		out[i] = g.grid.ToLatLng(c)
	}
	return out
}

// LatLng returns the centre of cell.
func (g *Game) LatLng(cell hexgrid.CellID) hexgrid.LatLng { return g.grid.ToLatLng(cell) }

// CellAt returns the active cell containing ll.
func (g *Game) CellAt(ll hexgrid.LatLng) (hexgrid.CellID, bool) {
	c, err := g.grid.FromLatLng(ll, g.resolution)
	if err != nil {
		return 0, false
	}
	if _, ok := g.keys.pos[c]; !ok {
		return 0, false
	}
	return c, true
}

// Tick computes the next generation into the future field using rules.
// The present field is only read.
func (g *Game) Tick(rules *RuleTable) {
	g.step(func(CellState) *RuleTable { return rules })
}

// TickTerrain is Tick with the table chosen by each cell's richness.
func (g *Game) TickTerrain(rules *TerrainRules) {
	g.step(func(s CellState) *RuleTable { return rules.For(s.Richness) })
}

// SwapBuffers exchanges the present and future fields.
func (g *Game) SwapBuffers() {
	g.present, g.future = g.future, g.present
}

// Step runs Tick followed by SwapBuffers.
func (g *Game) Step(rules *RuleTable) {
	g.Tick(rules)
	g.SwapBuffers()
	metrics.SetPopulation(g.present.Population())
}

// StepTerrain runs TickTerrain followed by SwapBuffers.
func (g *Game) StepTerrain(rules *TerrainRules) {
	g.TickTerrain(rules)
	g.SwapBuffers()
	metrics.SetPopulation(g.present.Population())
}

func (g *Game) workers() int {
	if g.cfg.Workers > 0 {
		return g.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (g *Game) step(pick func(CellState) *RuleTable) {
	start := time.Now()
	n := len(g.keys.cells)
	chunk := max((n+g.workers()-1)/g.workers(), minChunk)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.advance(lo, hi, pick)
		}()
	}
	wg.Wait()

	g.generation++
	metrics.ObserveTick(time.Since(start))
}

func (g *Game) advance(lo, hi int, pick func(CellState) *RuleTable) {
	for i := lo; i < hi; i++ {
		g.future.states[i] = g.next(i, pick)
	}
}

// next derives the future state of the cell at position i from the present.
func (g *Game) next(i int, pick func(CellState) *RuleTable) CellState {
	s := g.present.states[i]
	s.Occupied = pick(s).Apply(g.present.liveNeighbors(i), s.Occupied)
	return s
}

// SetResolution discards the current state, rebuilds the tessellation at
// resolution and reseeds it. Out-of-range requests do nothing and return
// false.
func (g *Game) SetResolution(resolution int) bool {
	if resolution < g.cfg.MinResolution || resolution > g.cfg.MaxResolution {
		return false
	}
	g.build(resolution)
	g.SpawnLife(g.cfg.Probability)
	return true
}

// IncreaseResolution moves to the next finer resolution if allowed.
func (g *Game) IncreaseResolution() bool { return g.SetResolution(g.resolution + 1) }

// DecreaseResolution moves to the next coarser resolution if allowed.
func (g *Game) DecreaseResolution() bool { return g.SetResolution(g.resolution - 1) }

// Stamp brings to life the cells of p centred at center and returns how many
// cells were set. Cells that do not resolve or lie outside the tessellation
// are skipped and counted as dropped.
func (g *Game) Stamp(p Pattern, center hexgrid.CellID) int {
	cells := p.Cells(center)
	set := 0
	for _, c := range cells {
		if s := g.present.Ref(c); s != nil {
			s.Occupied = true
			set++
		}
	}
	want := p.Size()
	if _, ok := p.(disk); ok {
		// The index returns the complete ring, five neighbors on pentagons.
		want = len(cells)
	}
	if dropped := want - set; dropped > 0 {
		metrics.AddDroppedStampCells(dropped)
		g.log.Debug("partial stamp",
			"pattern", p.Name(),
			"center", center,
			"set", set,
			"dropped", dropped,
		)
	}
	return set
}

// StampMarked stamps p around every marked cell.
func (g *Game) StampMarked(p Pattern) int {
	total := 0
	for _, c := range g.Marked() {
		total += g.Stamp(p, c)
	}
	return total
}
