package rules

// Registry holds the rule set a single simulation runs under. At most one
// rule exists per (condition, neighbors) pair; adding a duplicate pair
// overwrites the stored probability in place. The zero value is ready to use.
//
// Each grid owns its own Registry, so two simulations never share rule state.
type Registry struct {
	rules []Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

func (reg *Registry) find(cond Condition, neighbors int) int {
	for i, r := range reg.rules {
		if r.Condition == cond && r.Neighbors == neighbors {
			return i
		}
	}
	return -1
}

// Add inserts a rule, or updates the probability in place when a rule for
// the same (condition, neighbors) pair already exists. In the update case
// the previous probability is returned with replaced set to true, so callers
// can report the change instead of losing it silently.
func (reg *Registry) Add(cond Condition, neighbors int, probability float64) (prev float64, replaced bool, err error) {
	r := Rule{Condition: cond, Neighbors: neighbors, Probability: probability}
	if err := r.Validate(); err != nil {
		return 0, false, err
	}
	if i := reg.find(cond, neighbors); i >= 0 {
		prev = reg.rules[i].Probability
		reg.rules[i].Probability = probability
		return prev, true, nil
	}
	reg.rules = append(reg.rules, r)
	return 0, false, nil
}

// AddRule is a convenience wrapper over Add for a pre-built Rule value.
func (reg *Registry) AddRule(r Rule) error {
	_, _, err := reg.Add(r.Condition, r.Neighbors, r.Probability)
	return err
}

// Remove deletes the rule for the given (condition, neighbors) pair. It
// returns ErrRuleNotFound when no such rule exists.
func (reg *Registry) Remove(cond Condition, neighbors int) error {
	i := reg.find(cond, neighbors)
	if i < 0 {
		return ErrRuleNotFound
	}
	reg.rules = append(reg.rules[:i], reg.rules[i+1:]...)
	return nil
}

// Clear empties the registry.
func (reg *Registry) Clear() {
	reg.rules = reg.rules[:0]
}

// Len reports the number of stored rules.
func (reg *Registry) Len() int { return len(reg.rules) }

// Rules returns a snapshot of the stored rules in insertion order.
func (reg *Registry) Rules() []Rule {
	out := make([]Rule, len(reg.rules))
	copy(out, reg.rules)
	return out
}

// Lookup returns the rule for the given pair, if present.
func (reg *Registry) Lookup(cond Condition, neighbors int) (Rule, bool) {
	if i := reg.find(cond, neighbors); i >= 0 {
		return reg.rules[i], true
	}
	return Rule{}, false
}

// ByNeighborCount groups the stored rules by neighbor count. Within a count
// the survival rule precedes the birth rule, so iteration order is stable
// regardless of insertion order.
func (reg *Registry) ByNeighborCount() map[int][]Rule {
	out := make(map[int][]Rule)
	for n := 0; n <= MaxNeighbors; n++ {
		if r, ok := reg.Lookup(Survival, n); ok {
			out[n] = append(out[n], r)
		}
		if r, ok := reg.Lookup(Birth, n); ok {
			out[n] = append(out[n], r)
		}
	}
	return out
}
