package render

import "image/color"

// AgePalette builds a 256-entry palette mapping cell age to color: dead cells
// are transparent-black, newborns bright, and long-lived cells fade toward a
// cool steady-state color.
func AgePalette() []color.RGBA {
	p := make([]color.RGBA, 256)
	p[0] = color.RGBA{}
	for age := 1; age < 256; age++ {
		t := float64(age-1) / 254
		p[age] = color.RGBA{
			R: lerpComponent(240, 60, t),
			G: lerpComponent(255, 140, t),
			B: lerpComponent(200, 255, t),
			A: 255,
		}
	}
	return p
}

// FillRGBA converts cell ages into RGBA pixels using the palette. Values past
// the palette's end clamp to its last entry; an empty palette clears the
// buffer to transparent black.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
