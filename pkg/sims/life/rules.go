package life

import (
	"errors"
	"fmt"
	"strings"
)

// MaxNeighbors is the largest live-neighbor count a hex cell can have.
const MaxNeighbors = 6

// ErrRuleSyntax reports a malformed rule string.
var ErrRuleSyntax = errors.New("life: malformed rule")

// RuleTable maps a live-neighbor count to the next occupancy. It is read on
// every tick, so edits between ticks take effect immediately.
type RuleTable struct {
	Survives [MaxNeighbors + 1]bool
	Emerges  [MaxNeighbors + 1]bool
}

// DefaultRules returns the B2/S35 table.
func DefaultRules() RuleTable {
	var t RuleTable
	t.Survives[3] = true
	t.Survives[5] = true
	t.Emerges[2] = true
	return t
}

// Apply returns the next occupancy for a cell with n occupied neighbors.
// Counts outside 0..MaxNeighbors cannot come from a 1-ring and yield false.
func (t *RuleTable) Apply(n int, occupied bool) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	if occupied {
		return t.Survives[n]
	}
	return t.Emerges[n]
}

// ToggleSurvive flips the survive entry for n. Out-of-range counts are ignored.
func (t *RuleTable) ToggleSurvive(n int) {
	if n >= 0 && n <= MaxNeighbors {
		t.Survives[n] = !t.Survives[n]
	}
}

// ToggleEmerge flips the emerge entry for n. Out-of-range counts are ignored.
func (t *RuleTable) ToggleEmerge(n int) {
	if n >= 0 && n <= MaxNeighbors {
		t.Emerges[n] = !t.Emerges[n]
	}
}

// String renders the table in B/S notation, e.g. "B2/S35".
func (t RuleTable) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range t.Emerges {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range t.Survives {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseRule reads a table in B/S notation. Both halves are required and may
// appear in either order.
func ParseRule(s string) (RuleTable, error) {
	var t RuleTable
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return t, fmt.Errorf("%w: %q", ErrRuleSyntax, s)
	}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return t, fmt.Errorf("%w: %q", ErrRuleSyntax, s)
		}
		var dst *[MaxNeighbors + 1]bool
		switch part[0] {
		case 'B':
			if seenB {
				return t, fmt.Errorf("%w: %q repeats B", ErrRuleSyntax, s)
			}
			seenB, dst = true, &t.Emerges
		case 'S':
			if seenS {
				return t, fmt.Errorf("%w: %q repeats S", ErrRuleSyntax, s)
			}
			seenS, dst = true, &t.Survives
		default:
			return t, fmt.Errorf("%w: %q", ErrRuleSyntax, s)
		}
		for _, r := range part[1:] {
			if r < '0' || r > '0'+MaxNeighbors {
				return t, fmt.Errorf("%w: count %q out of range", ErrRuleSyntax, r)
			}
			dst[r-'0'] = true
		}
	}
	return t, nil
}

// TerrainRules holds one table per terrain richness.
type TerrainRules struct {
	Poor  RuleTable
	Usual RuleTable
	Rich  RuleTable
}

// DefaultTerrainRules returns the presets: rich ground also births on a
// single neighbor, poor ground only births in crowds.
func DefaultTerrainRules() TerrainRules {
	rich := DefaultRules()
	rich.Emerges[1] = true

	var poor RuleTable
	poor.Survives[2] = true
	poor.Survives[3] = true
	poor.Emerges[5] = true

	return TerrainRules{Poor: poor, Usual: DefaultRules(), Rich: rich}
}

// For returns the table governing cells of the given richness.
func (r *TerrainRules) For(richness Richness) *RuleTable {
	switch richness {
	case RichnessPoor:
		return &r.Poor
	case RichnessRich:
		return &r.Rich
	default:
		return &r.Usual
	}
}
