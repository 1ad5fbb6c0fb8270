package app

import (
	"fmt"
	"log/slog"
	"time"

	"hexlife/internal/core"
	"hexlife/internal/terrain"
	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

// Button identifies which pointer button triggered a click.
type Button int

const (
	// Primary stamps the selected pattern, or toggles life without one.
	Primary Button = iota
	// Secondary toggles the mark on a cell.
	Secondary
)

// Session holds everything the viewer needs besides the window: the game, the
// active rules, the pattern catalog and the pacing state. It has no ebiten
// dependency so it can be driven from tests and the headless runner.
type Session struct {
	game    *life.Game
	catalog *life.Catalog
	rules   life.TerrainRules
	terrain bool
	log     *slog.Logger

	seed     int64
	selected int
	paused   bool
	tickOnce bool
	pacer    *core.FixedStep
}

// NewSession builds a game on grid from cfg, seeds it and captures the
// pattern catalog.
func NewSession(grid hexgrid.Index, cfg life.Config, tps int, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.Default()
	}
	usual, err := cfg.Rules()
	if err != nil {
		return nil, fmt.Errorf("session rules: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		cfg.Seed = seed
	}

	opts := []life.Option{life.WithLogger(log)}
	if cfg.Terrain {
		gen := terrain.New(seed, cfg.TerrainScale)
		opts = append(opts, life.WithTerrain(gen.Richness))
	}
	game, err := life.New(grid, cfg, opts...)
	if err != nil {
		return nil, err
	}
	catalog, err := life.NewCatalog(grid)
	if err != nil {
		return nil, err
	}

	rules := life.DefaultTerrainRules()
	rules.Usual = usual
	s := &Session{
		game:     game,
		catalog:  catalog,
		rules:    rules,
		terrain:  cfg.Terrain,
		log:      log,
		seed:     seed,
		selected: -1,
		pacer:    core.NewFixedStep(tps),
	}
	game.SpawnLife(cfg.Probability)
	return s, nil
}

// Game returns the underlying engine.
func (s *Session) Game() *life.Game { return s.game }

// Catalog returns the pattern catalog.
func (s *Session) Catalog() *life.Catalog { return s.catalog }

// Rules returns the table used on usual ground, or everywhere when terrain is
// disabled. Edits take effect on the next tick.
func (s *Session) Rules() *life.RuleTable { return &s.rules.Usual }

// TerrainRules returns the per-richness tables.
func (s *Session) TerrainRules() *life.TerrainRules { return &s.rules }

// Terrain reports whether richness selects the rule table.
func (s *Session) Terrain() bool { return s.terrain }

// Step advances one generation regardless of pause state.
func (s *Session) Step() {
	if s.terrain {
		s.game.StepTerrain(&s.rules)
		return
	}
	s.game.Step(&s.rules.Usual)
}

// Update advances the game when a tick is due or a single step was requested.
// It reports whether a generation was computed.
func (s *Session) Update() bool {
	if s.tickOnce || (!s.paused && s.pacer.ShouldStep()) {
		s.tickOnce = false
		s.Step()
		return true
	}
	return false
}

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// StepOnce requests a single generation on the next Update.
func (s *Session) StepOnce() { s.tickOnce = true }

// Reset reseeds the random source and respawns life at the configured
// probability.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.game.Reseed(seed)
	s.game.SpawnLife(s.game.Config().Probability)
	s.tickOnce = false
	s.log.Info("session reset", "seed", seed, "population", s.game.Population())
}

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Clear kills every cell.
func (s *Session) Clear() { s.game.KillEverything() }

// ClearMarks removes every mark.
func (s *Session) ClearMarks() { s.game.RemoveMarks() }

// IncreaseResolution moves to a finer tessellation and reseeds it.
func (s *Session) IncreaseResolution() bool { return s.game.IncreaseResolution() }

// DecreaseResolution moves to a coarser tessellation and reseeds it.
func (s *Session) DecreaseResolution() bool { return s.game.DecreaseResolution() }

// Selected returns the chosen pattern, if any.
func (s *Session) Selected() (life.Pattern, bool) {
	if s.selected < 0 || s.selected >= s.catalog.Len() {
		return nil, false
	}
	return s.catalog.At(s.selected), true
}

// SelectPattern chooses a pattern by name. An empty name deselects.
func (s *Session) SelectPattern(name string) error {
	if name == "" {
		s.selected = -1
		return nil
	}
	for i := 0; i < s.catalog.Len(); i++ {
		if s.catalog.At(i).Name() == name {
			s.selected = i
			return nil
		}
	}
	_, err := s.catalog.Lookup(name)
	return err
}

// CyclePattern advances the selection through the catalog, passing through
// "no pattern" after the last entry.
func (s *Session) CyclePattern() {
	s.selected++
	if s.selected >= s.catalog.Len() {
		s.selected = -1
	}
}

// Click applies a pointer action at ll. It reports whether ll fell on a cell
// of the active tessellation.
func (s *Session) Click(ll hexgrid.LatLng, button Button) bool {
	cell, ok := s.game.CellAt(ll)
	if !ok {
		return false
	}
	switch button {
	case Secondary:
		return s.game.ToggleMark(cell)
	default:
		if p, ok := s.Selected(); ok {
			s.game.Stamp(p, cell)
			return true
		}
		return s.game.ToggleLife(cell)
	}
}

// Enrich raises the terrain under ll one level. Richness only affects the
// rules when terrain is enabled.
func (s *Session) Enrich(ll hexgrid.LatLng) bool {
	cell, ok := s.game.CellAt(ll)
	return ok && s.game.Enrich(cell)
}

// Deplete lowers the terrain under ll one level.
func (s *Session) Deplete(ll hexgrid.LatLng) bool {
	cell, ok := s.game.CellAt(ll)
	return ok && s.game.Deplete(cell)
}

// StampMarked stamps the selected pattern at every marked cell and returns
// the number of cells set.
func (s *Session) StampMarked() int {
	p, ok := s.Selected()
	if !ok {
		return 0
	}
	return s.game.StampMarked(p)
}

// ToggleEmerge flips the birth entry for n neighbors.
func (s *Session) ToggleEmerge(n int) { s.rules.Usual.ToggleEmerge(n) }

// ToggleSurvive flips the survival entry for n neighbors.
func (s *Session) ToggleSurvive(n int) { s.rules.Usual.ToggleSurvive(n) }

// LogMarked writes the coordinates of every marked cell.
func (s *Session) LogMarked() {
	coords := s.game.MarkedCoords()
	for _, ll := range coords {
		s.log.Info("marked cell", "lat", ll.Lat, "lng", ll.Lng)
	}
	s.log.Info("marked cells", "count", len(coords))
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	pattern := "none"
	if p, ok := s.Selected(); ok {
		pattern = p.Name()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("resolution", "Resolution", s.game.Resolution()),
			core.IntParam("cells", "Cells", len(s.game.Cells())),
			core.FloatParam("probability", "Probability", s.game.Config().Probability),
		}},
		{Name: "Run", Params: []core.Parameter{
			core.IntParam("tps", "Ticks/s", s.pacer.TPS()),
			core.IntParam("generation", "Generation", int(s.game.Generation())),
			core.IntParam("population", "Population", s.game.Population()),
			core.BoolParam("paused", "Paused", s.paused),
		}},
		{Name: "Rules", Params: []core.Parameter{
			core.TextParam("rule", "Rule", s.rules.Usual.String()),
			core.BoolParam("terrain", "Terrain", s.terrain),
			core.TextParam("pattern", "Pattern", pattern),
		}},
	}}
}

// ParameterControls lists the values the HUD can step with buttons.
func (s *Session) ParameterControls() []core.ParameterControl {
	cfg := s.game.Config()
	return []core.ParameterControl{
		{Key: "resolution", Label: "Resolution", Type: core.ParamTypeInt, Step: 1,
			Min: float64(cfg.MinResolution), Max: float64(cfg.MaxResolution), HasMin: true, HasMax: true},
		{Key: "probability", Label: "Probability", Type: core.ParamTypeFloat, Step: 0.05,
			Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "tps", Label: "Ticks/s", Type: core.ParamTypeInt, Step: 5,
			Min: 0, Max: 240, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer control change.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "resolution":
		return s.game.SetResolution(value)
	case "tps":
		if value < 0 {
			return false
		}
		s.pacer.SetTPS(value)
		return true
	}
	return false
}

// SetFloatParameter applies a floating point control change.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "probability":
		if value < 0 || value > 1 {
			return false
		}
		s.game.SetProbability(value)
		return true
	}
	return false
}
