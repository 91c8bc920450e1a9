//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shell-life/internal/core"
	"shell-life/internal/render"
	"shell-life/internal/ui"
)

// cellToggler is implemented by sessions that accept 2D cell clicks.
type cellToggler interface {
	Toggle(row, col int) bool
}

// cellStamper is implemented by sessions that accept 2D pattern stamps.
type cellStamper interface {
	Stamp(name string, row, col int) bool
}

// Game adapts a session to the ebiten.Game interface. The render loop runs at
// the display rate; the simulation advances on its own fixed-step clock so
// interactions always land between generations.
type Game struct {
	session Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	patterns   []string
	patternIdx int
}

// New constructs a Game for the provided session.
func New(session Session, cfg *Config) *Game {
	size := session.Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session),
		overlay:  ui.NewOverlay(session),
		clock:    core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		seed:     cfg.Seed,
		patterns: core.PatternNames(),
	}
}

// Reset reinitializes the session state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.session.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
		g.hud.Flash("reset (seed %d)", g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
		g.hud.Flash("reseeded")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
		g.hud.Flash("cleared")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if g.session.Undo() {
			g.hud.Flash("undo → generation %d", g.session.Generation())
		} else {
			g.hud.Flash("nothing to undo")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if g.session.Scrub(g.session.HistoryLen() - 10) {
			g.hud.Flash("rewound to generation %d", g.session.Generation())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleRule()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && len(g.patterns) > 0 {
		g.patternIdx = (g.patternIdx + 1) % len(g.patterns)
		g.hud.Flash("pattern: %s", g.patterns[g.patternIdx])
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.clock.SetTPS(g.clock.TPS() + 5)
		g.hud.Flash("%d tps", g.clock.TPS())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.clock.SetTPS(g.clock.TPS() - 5)
		g.hud.Flash("%d tps", g.clock.TPS())
	}

	g.handleMouse()

	g.hud.Update()
	g.overlay.Update()

	if g.tickOnce {
		g.session.Step()
		g.tickOnce = false
	} else if !g.paused && g.clock.ShouldStep() {
		g.session.Step()
	}
	return nil
}

func (g *Game) cycleRule() {
	names := core.RuleNames()
	if len(names) == 0 {
		return
	}
	current := 0
	if provider, ok := g.session.(interface{ Rule() core.RuleSet }); ok {
		for i, name := range names {
			if name == provider.Rule().Name {
				current = i
				break
			}
		}
	}
	next := names[(current+1)%len(names)]
	if g.session.SetRule(next) {
		g.hud.Flash("rule: %s", next)
	}
}

func (g *Game) handleMouse() {
	toggler, canToggle := g.session.(cellToggler)
	stamper, canStamp := g.session.(cellStamper)
	if !canToggle && !canStamp {
		return
	}
	x, y := ebiten.CursorPosition()
	row, col := y/g.scale, x/g.scale

	if canToggle && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		toggler.Toggle(row, col)
	}
	if canStamp && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && len(g.patterns) > 0 {
		name := g.patterns[g.patternIdx]
		if stamper.Stamp(name, row, col) {
			g.hud.Flash("stamped %s at (%d,%d)", name, row, col)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.session.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, g.session.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Size()
	return s.W * g.scale, s.H * g.scale
}
