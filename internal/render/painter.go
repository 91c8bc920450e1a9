//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter blits cell-age buffers onto the screen at an integer scale.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	pixels  []byte
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a w×h cell view.
func NewGridPainter(w, h int) *GridPainter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &GridPainter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		pixels:  make([]byte, 4*w*h),
		palette: AgePalette(),
	}
}

// Resize reallocates the backing image for a new view size.
func (p *GridPainter) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == p.w && h == p.h) {
		return
	}
	p.w, p.h = w, h
	p.img = ebiten.NewImage(w, h)
	p.pixels = make([]byte, 4*w*h)
}

// Blit draws the cell buffer scaled onto the screen. Buffers of unexpected
// length are ignored rather than corrupting the view.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	FillRGBA(p.pixels, cells, p.palette)
	p.img.WritePixels(p.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(p.img, op)
}
