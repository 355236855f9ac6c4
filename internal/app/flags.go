package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim      string
	Size     int
	Fraction float64
	Seed     int64
	Rules    string
	Scale    int
	TPS      int
	Panel    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Size:     64,
		Fraction: 0.25,
		Seed:     42,
		Scale:    8,
		TPS:      10,
		Panel:    220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life or problife)")
	fs.IntVar(&c.Size, "size", c.Size, "square grid dimension")
	fs.Float64Var(&c.Fraction, "fraction", c.Fraction, "initial alive fraction in [0,1]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial draw (0 = non-reproducible)")
	fs.StringVar(&c.Rules, "rules", c.Rules, "comma-separated Pc(N)=x rule overrides")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Panel, "panel", c.Panel, "status panel width in pixels (0 hides it)")
}

// SimOptions converts the flag values into the factory configuration map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size":     strconv.Itoa(c.Size),
		"fraction": strconv.FormatFloat(c.Fraction, 'g', -1, 64),
		"seed":     strconv.FormatInt(c.Seed, 10),
		"rules":    c.Rules,
	}
}
