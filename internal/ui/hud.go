//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"shell-life/internal/core"
)

const flashSeconds = 2.5

// HUD renders session parameters in the corner of the view and short status
// messages that fade out after interactions.
type HUD struct {
	sim   core.Sim
	pixel *ebiten.Image

	message string
	fade    *gween.Tween
	alpha   float32
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Flash shows a status message that fades out over a couple of seconds.
func (h *HUD) Flash(format string, args ...any) {
	h.message = fmt.Sprintf(format, args...)
	h.fade = gween.New(1, 0, flashSeconds, ease.OutQuad)
	h.alpha = 1
}

// Update advances the fade animation by one frame.
func (h *HUD) Update() {
	if h.fade == nil {
		return
	}
	a, done := h.fade.Update(1.0 / float32(ebiten.TPS()))
	h.alpha = a
	if done {
		h.fade = nil
		h.message = ""
	}
}

// Draw renders the parameter block and any active status message.
func (h *HUD) Draw(screen *ebiten.Image) {
	y := 4
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		for _, group := range provider.Parameters().Groups {
			for _, param := range group.Params {
				ebitenutil.DebugPrintAt(screen, param.Label+": "+param.Value, 4, y)
				y += 14
			}
		}
	}

	if h.message != "" {
		w := screen.Bounds().Dx()
		hgt := screen.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w), 18)
		op.GeoM.Translate(0, float64(hgt-18))
		op.ColorScale.Scale(0, 0, 0, 0.6*h.alpha)
		screen.DrawImage(h.pixel, op)
		ebitenutil.DebugPrintAt(screen, h.message, 4, hgt-16)
	}
}
