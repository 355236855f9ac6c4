package life

import (
	"testing"

	"problife/internal/core"
	"problife/internal/rules"
)

func TestFactoriesRegistered(t *testing.T) {
	for _, name := range []string{"life", "problife"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := factory(map[string]string{"size": "6", "fraction": "0.5", "seed": "3"})
		if sim == nil {
			t.Fatalf("factory %q returned nil", name)
		}
		if sim.Name() != name {
			t.Fatalf("sim name = %q, want %q", sim.Name(), name)
		}
		if size := sim.Size(); size.W != 6 || size.H != 6 {
			t.Fatalf("sim size = %dx%d, want 6x6", size.W, size.H)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"size":     "12",
		"fraction": "0.4",
		"seed":     "-5",
		"rules":    "Ps(1)=0.5, Pb(2)=0.25, bogus",
	})
	if c.Size != 12 || c.AliveFraction != 0.4 || c.Seed != -5 {
		t.Fatalf("FromMap parsed %+v", c)
	}
	if len(c.Rules) != 2 {
		t.Fatalf("FromMap kept %d rules, want 2 (malformed entries dropped)", len(c.Rules))
	}
	if c.Rules[0] != (rules.Rule{Condition: rules.Survival, Neighbors: 1, Probability: 0.5}) {
		t.Fatalf("first rule = %+v", c.Rules[0])
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	c := FromMap(map[string]string{"size": "1", "fraction": "2", "seed": "x"})
	d := DefaultConfig()
	if c.Size != d.Size || c.AliveFraction != d.AliveFraction || c.Seed != d.Seed {
		t.Fatalf("invalid values leaked into config: %+v", c)
	}
}

func TestNewFromConfigAppliesRuleOverrides(t *testing.T) {
	g, err := NewFromConfig(Config{
		Variant:       Classic,
		Size:          5,
		AliveFraction: 0,
		Seed:          1,
		Rules:         []rules.Rule{{Condition: rules.Survival, Neighbors: 2, Probability: 0.5}},
	})
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	r, ok := g.Rules().Lookup(rules.Survival, 2)
	if !ok || r.Probability != 0.5 {
		t.Fatalf("override not applied: Lookup(s,2) = %+v %v", r, ok)
	}
	// The rest of the preset survives the override.
	if _, ok := g.Rules().Lookup(rules.Birth, 3); !ok {
		t.Fatal("preset birth rule missing after override")
	}
}

func TestStatesCopiesCellValues(t *testing.T) {
	g := newTestGrid(t, Probabilistic, 4, 0, 1)
	g.SetState(0, 0, 0.3)
	states := g.States()
	if states[0] != 0.3 {
		t.Fatalf("States()[0] = %v, want 0.3", states[0])
	}
	states[0] = 0.9
	if g.StateAt(0, 0) != 0.3 {
		t.Fatal("writing to the States slice mutated the grid")
	}
}

func TestLiveMass(t *testing.T) {
	g := newTestGrid(t, Probabilistic, 4, 0, 1)
	g.SetState(0, 0, 0.25)
	g.SetState(1, 1, 0.75)
	if got := g.LiveMass(); got != 1.0 {
		t.Fatalf("LiveMass = %v, want 1.0", got)
	}
}

func TestParametersSnapshot(t *testing.T) {
	g := newTestGrid(t, Classic, 5, 0, 1)
	snapshot := g.Parameters()
	if len(snapshot.Groups) != 2 {
		t.Fatalf("snapshot has %d groups, want 2", len(snapshot.Groups))
	}
	ruleGroup := snapshot.Groups[1]
	if len(ruleGroup.Params) != g.Rules().Len() {
		t.Fatalf("snapshot lists %d rules, registry holds %d", len(ruleGroup.Params), g.Rules().Len())
	}
	if ruleGroup.Params[0].Value != "Ps(2)=1" {
		t.Fatalf("first rule rendered as %q, want %q", ruleGroup.Params[0].Value, "Ps(2)=1")
	}
}
