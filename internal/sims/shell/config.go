package shell

import "strconv"

// Strategy selects how 3D neighbor counts treat coordinates outside the
// volume.
type Strategy int

const (
	// StrategyBounded excludes out-of-range neighbors from the count. This
	// is the canonical behavior: the hollow interior never transmits
	// influence between opposite faces.
	StrategyBounded Strategy = iota
	// StrategyWrapGated wraps neighbor coordinates modulo the dimensions but
	// counts a wrapped neighbor only if it is itself a shell coordinate.
	StrategyWrapGated
)

// ParseStrategy resolves a strategy name, reporting whether it is known.
func ParseStrategy(name string) (Strategy, bool) {
	switch name {
	case "bounded":
		return StrategyBounded, true
	case "wrap-gated":
		return StrategyWrapGated, true
	}
	return StrategyBounded, false
}

// String returns the registry name of the strategy.
func (s Strategy) String() string {
	if s == StrategyWrapGated {
		return "wrap-gated"
	}
	return "bounded"
}

// Config controls the shell world dimensions and starting state.
type Config struct {
	W, H, D int

	Seed    int64
	Rule    string
	Density float64

	Strategy   Strategy
	HistoryCap int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		W:          24,
		H:          24,
		D:          24,
		Seed:       1337,
		Rule:       "life",
		Density:    0.25,
		Strategy:   StrategyBounded,
		HistoryCap: 100,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Invalid values are ignored in favor of defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.W = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.H = parsed
		}
	}
	if v, ok := cfg["d"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.D = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["strategy"]; ok {
		if parsed, known := ParseStrategy(v); known {
			c.Strategy = parsed
		}
	}
	return c
}
