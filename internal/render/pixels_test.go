package render

import (
	"image/color"
	"testing"
)

func TestAgePaletteDeadIsTransparent(t *testing.T) {
	p := AgePalette()
	if len(p) != 256 {
		t.Fatalf("palette length = %d, want 256", len(p))
	}
	if p[0] != (color.RGBA{}) {
		t.Errorf("palette[0] = %v, want transparent black", p[0])
	}
	if p[1].A != 255 || p[255].A != 255 {
		t.Error("live entries must be opaque")
	}
	if p[1] == p[255] {
		t.Error("newborn and saturated colors must differ")
	}
}

func TestFillRGBAUsesPaletteAndClamps(t *testing.T) {
	palette := []color.RGBA{
		{A: 0},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 200}
	buf := make([]byte, 12)
	FillRGBA(buf, cells, palette)

	if buf[3] != 0 {
		t.Error("dead cell must be transparent")
	}
	if buf[4] != 10 || buf[5] != 20 || buf[6] != 30 || buf[7] != 255 {
		t.Errorf("live cell pixel = %v, want palette entry", buf[4:8])
	}
	if buf[8] != 10 {
		t.Error("age past palette end must clamp to the last entry")
	}
}

func TestFillRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	FillRGBA(buf, []uint8{5}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}
