package app

import (
	"flag"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// Config represents the application parameters. Environment variables provide
// defaults and command-line flags override them.
type Config struct {
	Sim     string  `env:"SHELL_LIFE_SIM"`
	Scale   int     `env:"SHELL_LIFE_SCALE"`
	TPS     int     `env:"SHELL_LIFE_TPS"`
	Seed    int64   `env:"SHELL_LIFE_SEED"`
	Rule    string  `env:"SHELL_LIFE_RULE"`
	Density float64 `env:"SHELL_LIFE_DENSITY"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "torus", Scale: 4, TPS: 30, Seed: 42, Rule: "life", Density: 0.25}
}

// LoadEnv overlays SHELL_LIFE_* environment variables onto the config.
func (c *Config) LoadEnv() error {
	return env.Parse(c)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Rule, "rule", c.Rule, "born/survive rule name")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random seeding")
}

// SimOptions translates the config into the key/value form sim factories
// consume.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"rule":    c.Rule,
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}
