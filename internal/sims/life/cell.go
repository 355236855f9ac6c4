package life

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"problife/internal/rules"
)

var (
	// ErrInvalidNeighborCount reports a neighbor-state slice that does not
	// hold exactly eight values, or a target count outside [0, 8].
	ErrInvalidNeighborCount = errors.New("life: invalid neighbor count")
	// ErrInvalidState reports a cell state outside [0, 1].
	ErrInvalidState = errors.New("life: state out of [0, 1]")
)

// Cell is the atomic unit of the grid. Row and Col are assigned once by the
// owning grid and never change; State is the probability that the cell is
// alive, kept in [0, 1]. The classic variant restricts State to {0, 1}.
type Cell struct {
	Row   int
	Col   int
	State float64
}

func validNeighborStates(states []float64) error {
	if len(states) != rules.MaxNeighbors {
		return fmt.Errorf("%w: got %d neighbor states, want %d",
			ErrInvalidNeighborCount, len(states), rules.MaxNeighbors)
	}
	for i, s := range states {
		if s < 0 || s > 1 || math.IsNaN(s) {
			return fmt.Errorf("%w: neighbor %d has state %v", ErrInvalidState, i, s)
		}
	}
	return nil
}

// ExactAliveNeighbors returns the probability that precisely k of the eight
// neighbors are alive, treating each state as an independent Bernoulli
// probability. It is the exact Poisson-binomial point mass, computed by
// enumerating every k-subset of the neighbors: the alive probabilities of
// the subset multiplied by the dead probabilities of its complement, summed
// over all C(8, k) subsets. For binary states this reduces to an indicator
// that exactly k neighbors are 1.
func ExactAliveNeighbors(k int, states []float64) (float64, error) {
	if k < 0 || k > rules.MaxNeighbors {
		return 0, fmt.Errorf("%w: target count %d", ErrInvalidNeighborCount, k)
	}
	if err := validNeighborStates(states); err != nil {
		return 0, err
	}

	total := 0.0
	for mask := 0; mask < 1<<rules.MaxNeighbors; mask++ {
		if bits.OnesCount8(uint8(mask)) != k {
			continue
		}
		p := 1.0
		for i, s := range states {
			if mask&(1<<i) != 0 {
				p *= s
			} else {
				p *= 1 - s
			}
		}
		total += p
	}
	return total, nil
}

// NextState computes the cell's state for the next generation under the
// given rule set. For every neighbor count n that has at least one rule, the
// probability of exactly n live neighbors is weighted by the survival term
// (survival probability times the current state) and the birth term (birth
// probability times the complement). The result is rounded to two decimal
// places. NextState never mutates the cell; the grid performs the write-back
// so that a whole generation updates atomically.
func (c Cell) NextState(states []float64, reg *rules.Registry) (float64, error) {
	if c.State < 0 || c.State > 1 || math.IsNaN(c.State) {
		return 0, fmt.Errorf("%w: cell (%d,%d) has state %v", ErrInvalidState, c.Row, c.Col, c.State)
	}
	if err := validNeighborStates(states); err != nil {
		return 0, err
	}

	byCount := reg.ByNeighborCount()
	next := 0.0
	for n := 0; n <= rules.MaxNeighbors; n++ {
		applicable := byCount[n]
		if len(applicable) == 0 {
			continue
		}
		mass, err := ExactAliveNeighbors(n, states)
		if err != nil {
			return 0, err
		}
		var survive, born float64
		for _, r := range applicable {
			switch r.Condition {
			case rules.Survival:
				survive = r.Probability * c.State
			case rules.Birth:
				born = r.Probability * (1 - c.State)
			}
		}
		next += mass * (survive + born)
	}
	return roundState(next), nil
}

// roundState quantizes a state to two decimal places, the precision the
// simulation stores and compares states at.
func roundState(v float64) float64 {
	return math.Round(v*100) / 100
}
