package life

import (
	"errors"
	"math"
	"testing"

	"problife/internal/rules"
)

func classicRegistry() *rules.Registry {
	reg := rules.NewRegistry()
	rules.ApplyClassic(reg)
	return reg
}

func problifeRegistry() *rules.Registry {
	reg := rules.NewRegistry()
	rules.ApplyProblife(reg)
	return reg
}

func TestExactAliveNeighborsBinaryIndicator(t *testing.T) {
	states := []float64{1, 0, 1, 0, 0, 1, 0, 0} // three alive
	for k := 0; k <= 8; k++ {
		got, err := ExactAliveNeighbors(k, states)
		if err != nil {
			t.Fatalf("ExactAliveNeighbors(%d): %v", k, err)
		}
		want := 0.0
		if k == 3 {
			want = 1
		}
		if got != want {
			t.Fatalf("ExactAliveNeighbors(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestExactAliveNeighborsSumsToOne(t *testing.T) {
	vectors := [][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8},
		{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		{0, 1, 0.25, 0.75, 0.33, 0.67, 0.99, 0.01},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}
	for _, states := range vectors {
		sum := 0.0
		for k := 0; k <= 8; k++ {
			mass, err := ExactAliveNeighbors(k, states)
			if err != nil {
				t.Fatalf("ExactAliveNeighbors(%d, %v): %v", k, states, err)
			}
			sum += mass
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("point masses for %v sum to %v, want 1", states, sum)
		}
	}
}

func TestExactAliveNeighborsUniformHalf(t *testing.T) {
	// With every neighbor at 0.5 the distribution is Binomial(8, 0.5), so
	// the point mass at k is C(8,k)/256.
	states := []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
	choose := []float64{1, 8, 28, 56, 70, 56, 28, 8, 1}
	for k := 0; k <= 8; k++ {
		got, err := ExactAliveNeighbors(k, states)
		if err != nil {
			t.Fatalf("ExactAliveNeighbors(%d): %v", k, err)
		}
		want := choose[k] / 256
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("ExactAliveNeighbors(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestExactAliveNeighborsErrors(t *testing.T) {
	valid := []float64{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := ExactAliveNeighbors(9, valid); !errors.Is(err, ErrInvalidNeighborCount) {
		t.Fatalf("k=9 error = %v, want ErrInvalidNeighborCount", err)
	}
	if _, err := ExactAliveNeighbors(-1, valid); !errors.Is(err, ErrInvalidNeighborCount) {
		t.Fatalf("k=-1 error = %v, want ErrInvalidNeighborCount", err)
	}
	if _, err := ExactAliveNeighbors(3, valid[:7]); !errors.Is(err, ErrInvalidNeighborCount) {
		t.Fatalf("seven states error = %v, want ErrInvalidNeighborCount", err)
	}
	bad := []float64{0, 0, 0, 1.5, 0, 0, 0, 0}
	if _, err := ExactAliveNeighbors(3, bad); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("state 1.5 error = %v, want ErrInvalidState", err)
	}
}

func TestNextStateClassicCollapse(t *testing.T) {
	reg := classicRegistry()
	cases := []struct {
		name  string
		state float64
		alive int
		want  float64
	}{
		{"live cell with two neighbors survives", 1, 2, 1},
		{"live cell with three neighbors survives", 1, 3, 1},
		{"live cell with one neighbor dies", 1, 1, 0},
		{"live cell with four neighbors dies", 1, 4, 0},
		{"dead cell with three neighbors is born", 0, 3, 1},
		{"dead cell with two neighbors stays dead", 0, 2, 0},
		{"dead cell alone stays dead", 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			states := make([]float64, 8)
			for i := 0; i < tc.alive; i++ {
				states[i] = 1
			}
			c := Cell{Row: 1, Col: 1, State: tc.state}
			got, err := c.NextState(states, reg)
			if err != nil {
				t.Fatalf("NextState: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NextState = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNextStateProblifeTerms(t *testing.T) {
	reg := problifeRegistry()

	// A live cell with exactly two live binary neighbors keeps 0.9.
	live := Cell{State: 1}
	states := []float64{1, 1, 0, 0, 0, 0, 0, 0}
	got, err := live.NextState(states, reg)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0.9 {
		t.Fatalf("live cell with two neighbors = %v, want 0.9", got)
	}

	// A dead cell with exactly three live binary neighbors is born at 0.8.
	dead := Cell{State: 0}
	states = []float64{1, 1, 1, 0, 0, 0, 0, 0}
	got, err = dead.NextState(states, reg)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0.8 {
		t.Fatalf("dead cell with three neighbors = %v, want 0.8", got)
	}

	// A half-alive cell with two certain neighbors mixes both terms:
	// P(2)=1, so next = 0.9*0.5 + 0 = 0.45; with three certain neighbors
	// next = 0.9*0.5 + 0.8*0.5 = 0.85.
	half := Cell{State: 0.5}
	states = []float64{1, 1, 0, 0, 0, 0, 0, 0}
	got, err = half.NextState(states, reg)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0.45 {
		t.Fatalf("half-alive cell with two neighbors = %v, want 0.45", got)
	}
	states = []float64{1, 1, 1, 0, 0, 0, 0, 0}
	got, err = half.NextState(states, reg)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0.85 {
		t.Fatalf("half-alive cell with three neighbors = %v, want 0.85", got)
	}
}

func TestNextStateRoundsToTwoDecimals(t *testing.T) {
	reg := rules.NewRegistry()
	if _, _, err := reg.Add(rules.Survival, 8, 0.456); err != nil {
		t.Fatalf("Add: %v", err)
	}
	c := Cell{State: 1}
	states := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	got, err := c.NextState(states, reg)
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0.46 {
		t.Fatalf("NextState = %v, want 0.46 after rounding", got)
	}
}

func TestNextStateErrors(t *testing.T) {
	reg := classicRegistry()
	c := Cell{State: 0.5}
	if _, err := c.NextState([]float64{1, 0, 1}, reg); !errors.Is(err, ErrInvalidNeighborCount) {
		t.Fatalf("three states error = %v, want ErrInvalidNeighborCount", err)
	}
	if _, err := c.NextState([]float64{0, 0, 0, 0, -0.5, 0, 0, 0}, reg); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("negative state error = %v, want ErrInvalidState", err)
	}
	broken := Cell{State: 1.5}
	if _, err := broken.NextState(make([]float64, 8), reg); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("own state 1.5 error = %v, want ErrInvalidState", err)
	}
}

func TestNextStateEmptyRegistry(t *testing.T) {
	c := Cell{State: 1}
	got, err := c.NextState([]float64{1, 1, 1, 0, 0, 0, 0, 0}, rules.NewRegistry())
	if err != nil {
		t.Fatalf("NextState: %v", err)
	}
	if got != 0 {
		t.Fatalf("NextState with no rules = %v, want 0", got)
	}
}
