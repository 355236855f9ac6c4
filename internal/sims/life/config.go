package life

import (
	"strconv"
	"strings"

	"problife/internal/rules"
)

// Config controls how a Life or Problife grid is constructed.
type Config struct {
	Variant       Variant
	Size          int
	AliveFraction float64
	Seed          int64

	// Rules are applied on top of the variant's preset, so a duplicate
	// (condition, neighbors) pair overrides the preset probability.
	Rules []rules.Rule
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Variant:       Classic,
		Size:          10,
		AliveFraction: 0.25,
		Seed:          42,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparseable values are ignored. The "rules" value
// is a comma-separated list of Pc(N)=x expressions; malformed entries are
// dropped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 1 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.AliveFraction = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rules"]; ok {
		for _, expr := range strings.Split(v, ",") {
			expr = strings.TrimSpace(expr)
			if expr == "" {
				continue
			}
			if r, err := rules.Parse(expr); err == nil {
				c.Rules = append(c.Rules, r)
			}
		}
	}
	return c
}

// NewFromConfig builds a grid with its own registry: the variant preset
// first, then the config's rule overrides, then the initial random draw.
func NewFromConfig(c Config) (*Grid, error) {
	reg := rules.NewRegistry()
	c.Variant.DefaultRules(reg)
	for _, r := range c.Rules {
		if err := reg.AddRule(r); err != nil {
			return nil, err
		}
	}
	g := New(c.Variant, reg)
	if err := g.Initialize(c.Size, c.AliveFraction, c.Seed); err != nil {
		return nil, err
	}
	return g, nil
}
