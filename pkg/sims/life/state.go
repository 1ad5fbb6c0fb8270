package life

// Richness is the terrain quality of a cell. It selects which rule table
// applies when the simulation runs with terrain.
type Richness int8

const (
	// RichnessPoor is scorched ground.
	RichnessPoor Richness = -1
	// RichnessUsual is the default terrain.
	RichnessUsual Richness = 0
	// RichnessRich is grassland.
	RichnessRich Richness = 1
)

// String returns the terrain name.
func (r Richness) String() string {
	switch r {
	case RichnessPoor:
		return "poor"
	case RichnessRich:
		return "rich"
	default:
		return "usual"
	}
}

// CellState is the per-cell record held by a Field.
type CellState struct {
	Occupied bool
	Marked   bool
	Richness Richness
}

// Enrich raises the terrain one level, saturating at RichnessRich.
func (s *CellState) Enrich() {
	if s.Richness < RichnessRich {
		s.Richness++
	}
}

// Deplete lowers the terrain one level, saturating at RichnessPoor.
func (s *CellState) Deplete() {
	if s.Richness > RichnessPoor {
		s.Richness--
	}
}
