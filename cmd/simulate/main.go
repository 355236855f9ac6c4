// Command simulate runs a Life or Problife board headlessly and reports
// which termination condition ended the run.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"problife/internal/rules"
	"problife/internal/sims/life"
)

func main() {
	variant := flag.String("sim", "life", "simulation to run (life or problife)")
	size := flag.Int("size", 10, "square grid dimension")
	fraction := flag.Float64("fraction", 0.25, "initial alive fraction in [0,1]")
	seed := flag.Int64("seed", 0, "seed for the initial draw (0 = non-reproducible)")
	ruleExprs := flag.String("rules", "", "comma-separated Pc(N)=x rule overrides")
	maxGen := flag.Int("max", 200, "generation cap (0 = run until extinction or equilibrium)")
	quiet := flag.Bool("quiet", false, "suppress the per-generation board dump")
	flag.Parse()

	cfg := life.Config{
		Variant:       life.Variant(*variant),
		Size:          *size,
		AliveFraction: *fraction,
		Seed:          *seed,
	}
	if cfg.Variant != life.Classic && cfg.Variant != life.Probabilistic {
		log.Fatalf("unknown sim %q", *variant)
	}
	for _, expr := range strings.Split(*ruleExprs, ",") {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}
		r, err := rules.Parse(expr)
		if err != nil {
			log.Fatalf("bad rule %q: %v", expr, err)
		}
		cfg.Rules = append(cfg.Rules, r)
	}

	grid, err := life.NewFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("initial board:")
	printBoard(grid)

	var observe life.Observer
	if !*quiet {
		observe = func(g *life.Grid) {
			fmt.Printf("generation %d:\n", g.Generation())
			printBoard(g)
		}
	}

	result, err := life.Run(grid, *maxGen, observe)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s after %d generations\n", result.Reason, result.Generations)
}

// printBoard dumps the grid to the console: integers for the classic game,
// two-decimal probabilities for Problife.
func printBoard(g *life.Grid) {
	size := g.Size()
	var b strings.Builder
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			state := g.StateAt(row, col)
			if g.Variant() == life.Classic {
				fmt.Fprintf(&b, "%d", int(state))
			} else {
				fmt.Fprintf(&b, "%.2f", state)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
	fmt.Println()
}
