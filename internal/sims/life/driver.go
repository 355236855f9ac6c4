package life

// Reason identifies which termination condition ended a run.
type Reason string

const (
	// ReasonExtinct means every cell died.
	ReasonExtinct Reason = "extinction"
	// ReasonStable means the grid stopped changing between generations.
	ReasonStable Reason = "equilibrium"
	// ReasonMaxGenerations means the iteration cap was hit first.
	ReasonMaxGenerations Reason = "max generations"
)

// Result reports how a run ended and at which generation.
type Result struct {
	Reason      Reason
	Generations int
}

// Observer is invoked after every completed generation, before the
// termination checks. A renderer or console dumper hooks in here.
type Observer func(g *Grid)

// Run advances the grid until extinction, equilibrium, or the generation cap
// is reached. A cap of zero or less runs unbounded, stopping only on
// extinction or equilibrium; oscillating boards then never terminate, so
// callers without a cap should know their rule set converges.
func Run(g *Grid, maxGenerations int, observe Observer) (Result, error) {
	for steps := 0; ; {
		if err := g.Advance(); err != nil {
			return Result{}, err
		}
		steps++
		if observe != nil {
			observe(g)
		}
		if g.IsExtinct() {
			return Result{Reason: ReasonExtinct, Generations: g.Generation()}, nil
		}
		if g.IsStable() {
			return Result{Reason: ReasonStable, Generations: g.Generation()}, nil
		}
		if maxGenerations > 0 && steps >= maxGenerations {
			return Result{Reason: ReasonMaxGenerations, Generations: g.Generation()}, nil
		}
	}
}
