// Package life implements a toroidal-grid cellular automaton with two
// variants: Conway's classic Game of Life and Problife, a probabilistic
// generalization where each cell holds a continuous survival likelihood.
// Both run the same expected-value transition formula; the classic rules
// simply keep it collapsed to {0, 1}.
package life

import (
	"fmt"

	"problife/internal/core"
)

// Name returns the simulation identifier ("life" or "problife").
func (g *Grid) Name() string { return string(g.variant) }

// States exposes the current cell values in row-major order. The returned
// slice is reused across calls; callers that need a stable copy must make
// one.
func (g *Grid) States() []float64 {
	if len(g.display) != len(g.cells) {
		g.display = make([]float64, len(g.cells))
	}
	for i := range g.cells {
		g.display[i] = g.cells[i].State
	}
	return g.display
}

// Reset redraws the board with the stored size and alive fraction under a
// new seed. A grid that was never initialized stays empty.
func (g *Grid) Reset(seed int64) {
	if g.size <= 1 {
		return
	}
	g.Initialize(g.size, g.aliveFraction, seed)
}

// Step advances one generation, satisfying core.Sim. Advance only fails when
// a state leaves [0, 1], which the grid's own operations never produce.
func (g *Grid) Step() {
	_ = g.Advance()
}

// LiveMass returns the sum of all cell states: the live-cell count for the
// classic variant, the expected number of live cells for Problife.
func (g *Grid) LiveMass() float64 {
	total := 0.0
	for i := range g.cells {
		total += g.cells[i].State
	}
	return total
}

// Parameters exposes the HUD status snapshot.
func (g *Grid) Parameters() core.ParameterSnapshot {
	grid := core.ParameterGroup{
		Name: "Grid",
		Params: []core.Parameter{
			{Key: "variant", Label: "Variant", Value: string(g.variant)},
			{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", g.size, g.size)},
			{Key: "generation", Label: "Generation", Value: fmt.Sprintf("%d", g.generation)},
			{Key: "live", Label: "Live mass", Value: fmt.Sprintf("%.2f", g.LiveMass())},
		},
	}
	ruleGroup := core.ParameterGroup{Name: "Rules"}
	for i, r := range g.rules.Rules() {
		ruleGroup.Params = append(ruleGroup.Params, core.Parameter{
			Key:   fmt.Sprintf("rule%d", i),
			Label: "Rule",
			Value: r.Expr(),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{grid, ruleGroup}}
}

func init() {
	register := func(variant Variant) {
		core.Register(string(variant), func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			c.Variant = variant
			g, err := NewFromConfig(c)
			if err != nil {
				// FromMap only emits valid configs; fall back to the
				// defaults if a caller handed in a broken one directly.
				fallback := DefaultConfig()
				fallback.Variant = variant
				g, _ = NewFromConfig(fallback)
			}
			return g
		})
	}
	register(Classic)
	register(Probabilistic)
}
