// Command rule-sweep runs every registered rule on random toroidal boards and
// reports population statistics, useful for spotting rules that die out or
// explode before wiring them into the GUI.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"shell-life/internal/core"
	"shell-life/internal/sims/torus"
)

type candidate struct {
	rule string
	seed int64
}

type result struct {
	rule       string
	finalPop   int
	totalBirth int
}

func main() {
	rows := flag.Int("rows", 96, "board rows")
	cols := flag.Int("cols", 96, "board cols")
	steps := flag.Int("steps", 200, "generations to simulate per candidate")
	seeds := flag.Int("seeds", 5, "random boards per rule")
	density := flag.Float64("density", 0.25, "live-cell density for seeding")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	flag.Parse()

	var candidates []candidate
	for _, name := range core.RuleNames() {
		for s := 0; s < *seeds; s++ {
			candidates = append(candidates, candidate{rule: name, seed: int64(s + 1)})
		}
	}

	jobs := make(chan candidate)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				results <- evaluate(c, *rows, *cols, *steps, *density)
			}
		}()
	}
	go func() {
		for _, c := range candidates {
			jobs <- c
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	type agg struct {
		runs   int
		pop    int
		births int
	}
	byRule := map[string]*agg{}
	for r := range results {
		a := byRule[r.rule]
		if a == nil {
			a = &agg{}
			byRule[r.rule] = a
		}
		a.runs++
		a.pop += r.finalPop
		a.births += r.totalBirth
	}

	names := make([]string, 0, len(byRule))
	for name := range byRule {
		names = append(names, name)
	}
	sort.Strings(names)

	area := *rows * *cols
	fmt.Printf("%-12s %12s %14s %12s\n", "rule", "avg pop", "pop fraction", "births/step")
	for _, name := range names {
		a := byRule[name]
		avgPop := float64(a.pop) / float64(a.runs)
		fmt.Printf("%-12s %12.1f %14.4f %12.2f\n",
			name,
			avgPop,
			avgPop/float64(area),
			float64(a.births)/float64(a.runs)/float64(*steps))
	}
}

func evaluate(c candidate, rows, cols, steps int, density float64) result {
	cfg := torus.DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.Rule = c.rule
	cfg.Density = density
	// History is useless at sweep scale; keep the ring tiny.
	cfg.HistoryCap = 1

	w := torus.NewWithConfig(cfg)
	w.Reset(c.seed)

	births := 0
	for i := 0; i < steps; i++ {
		w.Step()
		births += w.LastStats().Births
	}
	return result{rule: c.rule, finalPop: w.LastStats().Population, totalBirth: births}
}
