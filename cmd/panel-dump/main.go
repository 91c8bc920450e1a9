// Command panel-dump emits the world-space panel transforms for a cube-shell
// simulation as JSON, for consumption by external rendering tooling.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"shell-life/internal/sims/shell"
)

func main() {
	width := flag.Int("w", 24, "volume width")
	height := flag.Int("h", 24, "volume height")
	depth := flag.Int("d", 24, "volume depth")
	spacing := flag.Float64("spacing", 1.0, "world-space cell spacing")
	seed := flag.Int64("seed", 1337, "seed for the initial random shell")
	steps := flag.Int("steps", 0, "generations to advance before dumping")
	density := flag.Float64("density", 0.25, "live-cell density for seeding")
	rule := flag.String("rule", "life", "born/survive rule name")
	strategy := flag.String("strategy", "bounded", "neighbor strategy: bounded or wrap-gated")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	strat, ok := shell.ParseStrategy(*strategy)
	if !ok {
		log.Fatalf("unknown strategy %q", *strategy)
	}

	cfg := shell.DefaultConfig()
	cfg.W, cfg.H, cfg.D = *width, *height, *depth
	cfg.Seed = *seed
	cfg.Rule = *rule
	cfg.Density = *density
	cfg.Strategy = strat

	world := shell.NewWithConfig(cfg)
	if !world.SetRule(*rule) {
		log.Fatalf("unknown rule %q", *rule)
	}
	world.Reset(*seed)
	for i := 0; i < *steps; i++ {
		world.Step()
	}

	panels := world.Panels(*spacing)

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(panels); err != nil {
		log.Fatalf("encoding panels: %v", err)
	}
	log.Printf("dumped %d panels (generation %d, %d live cells)",
		len(panels), world.Generation(), world.LastStats().Population)
}
