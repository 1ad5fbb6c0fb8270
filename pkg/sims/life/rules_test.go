package life

import (
	"errors"
	"testing"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	for n := 0; n <= MaxNeighbors; n++ {
		wantSurvive := n == 3 || n == 5
		if got := rules.Apply(n, true); got != wantSurvive {
			t.Fatalf("occupied with %d neighbors: got %v, want %v", n, got, wantSurvive)
		}
		wantEmerge := n == 2
		if got := rules.Apply(n, false); got != wantEmerge {
			t.Fatalf("empty with %d neighbors: got %v, want %v", n, got, wantEmerge)
		}
	}
}

func TestApplyOutOfRange(t *testing.T) {
	var rules RuleTable
	for i := range rules.Survives {
		rules.Survives[i] = true
		rules.Emerges[i] = true
	}
	if rules.Apply(MaxNeighbors+1, true) || rules.Apply(-1, false) {
		t.Fatal("counts outside the 1-ring must not produce life")
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "B2/S35", want: "B2/S35"},
		{in: "s35/b2", want: "B2/S35"},
		{in: " B12/S35 ", want: "B12/S35"},
		{in: "B/S", want: "B/S"},
		{in: "B0123456/S0123456", want: "B0123456/S0123456"},
	}
	for _, tc := range cases {
		rules, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if got := rules.String(); got != tc.want {
			t.Fatalf("ParseRule(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if rules, _ := ParseRule("B2/S35"); rules != DefaultRules() {
		t.Fatal("B2/S35 should equal the default table")
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "B2", "B7/S3", "X2/S3", "B2/B3", "B2/S3/S4", "B2/"} {
		if _, err := ParseRule(in); !errors.Is(err, ErrRuleSyntax) {
			t.Fatalf("ParseRule(%q) error = %v, want ErrRuleSyntax", in, err)
		}
	}
}

func TestToggle(t *testing.T) {
	rules := DefaultRules()
	rules.ToggleEmerge(2)
	rules.ToggleSurvive(4)
	rules.ToggleSurvive(MaxNeighbors + 3)
	if got := rules.String(); got != "B/S345" {
		t.Fatalf("toggled table = %s", got)
	}
}

func TestTerrainRulesFor(t *testing.T) {
	rules := DefaultTerrainRules()
	if rules.For(RichnessUsual).String() != "B2/S35" {
		t.Fatalf("usual = %s", rules.For(RichnessUsual))
	}
	if rules.For(RichnessRich).String() != "B12/S35" {
		t.Fatalf("rich = %s", rules.For(RichnessRich))
	}
	if rules.For(RichnessPoor).String() != "B5/S23" {
		t.Fatalf("poor = %s", rules.For(RichnessPoor))
	}
	rules.For(RichnessPoor).ToggleEmerge(5)
	if rules.Poor.Emerges[5] {
		t.Fatal("For must return a reference into the rules")
	}
}

func TestRichnessSaturates(t *testing.T) {
	var s CellState
	s.Enrich()
	s.Enrich()
	if s.Richness != RichnessRich {
		t.Fatalf("richness = %v", s.Richness)
	}
	s.Deplete()
	s.Deplete()
	s.Deplete()
	if s.Richness != RichnessPoor {
		t.Fatalf("richness = %v", s.Richness)
	}
}
