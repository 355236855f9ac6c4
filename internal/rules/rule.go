// Package rules models the survival and birth rules that drive the Game of
// Life and its probabilistic variant Problife.
//
// A rule states the probability that a cell survives ('s') or is born ('b')
// given an exact count of live neighbors. Rules are held in a Registry owned
// by the simulation that uses it, and round-trip through the compact textual
// form "Pc(N)=x".
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Condition selects between the survival and birth halves of the rule space.
type Condition string

const (
	// Survival rules apply to cells that are currently alive.
	Survival Condition = "s"
	// Birth rules apply to cells that are currently dead.
	Birth Condition = "b"
)

// MaxNeighbors is the neighbor count ceiling on a Moore neighborhood.
const MaxNeighbors = 8

var (
	// ErrInvalidRule reports a rule whose condition, neighbor count or
	// probability is out of range.
	ErrInvalidRule = errors.New("rules: invalid rule")
	// ErrRuleNotFound reports a lookup for a (condition, neighbors) pair
	// that is not in the registry.
	ErrRuleNotFound = errors.New("rules: rule not found")
	// ErrMalformedExpression reports text that does not match the
	// Pc(N)=x grammar or violates its bounds.
	ErrMalformedExpression = errors.New("rules: malformed rule expression")
)

// Rule couples a condition and an exact live-neighbor count with the
// probability that the transition fires.
type Rule struct {
	Condition   Condition
	Neighbors   int
	Probability float64
}

// Validate reports whether the rule's fields are within bounds.
func (r Rule) Validate() error {
	if r.Condition != Survival && r.Condition != Birth {
		return fmt.Errorf("%w: condition %q", ErrInvalidRule, string(r.Condition))
	}
	if r.Neighbors < 0 || r.Neighbors > MaxNeighbors {
		return fmt.Errorf("%w: neighbor count %d", ErrInvalidRule, r.Neighbors)
	}
	if r.Probability < 0 || r.Probability > 1 {
		return fmt.Errorf("%w: probability %v", ErrInvalidRule, r.Probability)
	}
	return nil
}

// Expr formats the rule in its canonical textual form, e.g. "Ps(3)=1" or
// "Pb(3)=0.8". Parse accepts the output unchanged.
func (r Rule) Expr() string {
	return fmt.Sprintf("P%s(%d)=%s", r.Condition, r.Neighbors,
		strconv.FormatFloat(r.Probability, 'g', -1, 64))
}

var exprPattern = regexp.MustCompile(`^P([sbSB])\((\d+)\)=(\d+(?:\.\d+)?)$`)

// Parse converts a textual expression of the form "Pc(N)=x" into a Rule.
// The condition letter is accepted case-insensitively and canonicalized to
// lowercase. Parse returns ErrMalformedExpression when the text does not
// match the grammar exactly or the neighbor count or probability is out of
// bounds.
func Parse(expr string) (Rule, error) {
	m := exprPattern.FindStringSubmatch(expr)
	if m == nil {
		return Rule{}, fmt.Errorf("%w: %q does not match Pc(N)=x", ErrMalformedExpression, expr)
	}
	neighbors, err := strconv.Atoi(m[2])
	if err != nil || neighbors > MaxNeighbors {
		return Rule{}, fmt.Errorf("%w: neighbor count %s out of range", ErrMalformedExpression, m[2])
	}
	probability, err := strconv.ParseFloat(m[3], 64)
	if err != nil || probability < 0 || probability > 1 {
		return Rule{}, fmt.Errorf("%w: probability %s out of range", ErrMalformedExpression, m[3])
	}
	return Rule{
		Condition:   Condition(strings.ToLower(m[1])),
		Neighbors:   neighbors,
		Probability: probability,
	}, nil
}
