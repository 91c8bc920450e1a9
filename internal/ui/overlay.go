//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shell-life/internal/history"
)

type historyProvider interface {
	HistoryLen() int
	Generation() int
}

// Overlay draws the history timeline along the bottom edge of the view: a
// track sized to the ring capacity and a fill for the retained frames. It is
// the visual counterpart of undo and rewind.
type Overlay struct {
	sim     any
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim any) *Overlay {
	o := &Overlay{sim: sim, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the timeline when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.sim.(historyProvider)
	if !ok {
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	const barHeight = 3

	track := &ebiten.DrawImageOptions{}
	track.GeoM.Scale(float64(w), barHeight)
	track.GeoM.Translate(0, float64(h-barHeight))
	track.ColorScale.Scale(0.15, 0.15, 0.15, 0.8)
	screen.DrawImage(o.pixel, track)

	frac := float64(provider.HistoryLen()) / float64(history.DefaultCapacity)
	if frac > 1 {
		frac = 1
	}
	if frac <= 0 {
		return
	}
	fill := &ebiten.DrawImageOptions{}
	fill.GeoM.Scale(float64(w)*frac, barHeight)
	fill.GeoM.Translate(0, float64(h-barHeight))
	fill.ColorScale.Scale(0.35, 0.8, 0.5, 0.9)
	screen.DrawImage(o.pixel, fill)
}
