//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"shell-life/internal/app"
	"shell-life/internal/core"
	_ "shell-life/internal/sims/shell"
	_ "shell-life/internal/sims/torus"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("reading environment: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	session, ok := sim.(app.Session)
	if !ok {
		log.Fatalf("sim %q does not expose the interactive session surface", cfg.Sim)
	}
	session.Reset(cfg.Seed)

	game := app.New(session, cfg)
	size := session.Size()

	ebiten.SetWindowTitle("shell-life — " + session.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
