package core

// Index3 maps (x, y, z) to the linear slot index for a volume of width w and
// height h. Depth does not participate in the formula.
func Index3(x, y, z, w, h int) int { return x + y*w + z*w*h }

// Coord3 is the inverse of Index3 for a volume of width w and height h.
func Coord3(i, w, h int) (x, y, z int) {
	x = i % w
	y = (i / w) % h
	z = i / (w * h)
	return x, y, z
}

// OnShell reports whether (x, y, z) lies on the outer boundary of a
// w×h×d volume. Coordinates outside the volume are not on the shell.
func OnShell(x, y, z, w, h, d int) bool {
	if x < 0 || x >= w || y < 0 || y >= h || z < 0 || z >= d {
		return false
	}
	return x == 0 || x == w-1 || y == 0 || y == h-1 || z == 0 || z == d-1
}

// Lattice3D stores per-cell ages for the shell of a volumetric grid. The
// backing slice is addressed x + y·w + z·w·h, but callers go through
// coordinate methods; interior cells are always 0 and writes to them are
// rejected.
type Lattice3D struct {
	w, h, d int
	age     []uint8
}

// NewLattice3D allocates an all-dead lattice with the given dimensions.
func NewLattice3D(w, h, d int) *Lattice3D {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if d <= 0 {
		d = 1
	}
	return &Lattice3D{w: w, h: h, d: d, age: make([]uint8, w*h*d)}
}

// Dims returns the (width, height, depth) of the volume.
func (l *Lattice3D) Dims() (int, int, int) { return l.w, l.h, l.d }

// Ages exposes the flattened backing slice for renderers. Interior slots are
// always zero.
func (l *Lattice3D) Ages() []uint8 { return l.age }

// InBounds reports whether (x, y, z) lies inside the volume.
func (l *Lattice3D) InBounds(x, y, z int) bool {
	return x >= 0 && x < l.w && y >= 0 && y < l.h && z >= 0 && z < l.d
}

// OnShell reports whether (x, y, z) is a boundary cell of this volume.
func (l *Lattice3D) OnShell(x, y, z int) bool {
	return OnShell(x, y, z, l.w, l.h, l.d)
}

// At returns the age at (x, y, z). Out-of-bounds and interior coordinates
// read as 0.
func (l *Lattice3D) At(x, y, z int) uint8 {
	if !l.InBounds(x, y, z) {
		return 0
	}
	return l.age[Index3(x, y, z, l.w, l.h)]
}

// Set writes the age at (x, y, z) and reports whether the write happened.
// Interior and out-of-bounds coordinates are rejected.
func (l *Lattice3D) Set(x, y, z int, v uint8) bool {
	if !l.OnShell(x, y, z) {
		return false
	}
	l.age[Index3(x, y, z, l.w, l.h)] = v
	return true
}

// ForEachShell invokes fn for every shell coordinate in slot order.
func (l *Lattice3D) ForEachShell(fn func(x, y, z int)) {
	for z := 0; z < l.d; z++ {
		for y := 0; y < l.h; y++ {
			for x := 0; x < l.w; x++ {
				if l.OnShell(x, y, z) {
					fn(x, y, z)
				}
			}
		}
	}
}

// Clear kills every cell.
func (l *Lattice3D) Clear() {
	for i := range l.age {
		l.age[i] = 0
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (l *Lattice3D) Clone() *Lattice3D {
	c := &Lattice3D{w: l.w, h: l.h, d: l.d, age: make([]uint8, len(l.age))}
	copy(c.age, l.age)
	return c
}

// Equal reports whether both lattices have identical dimensions and ages.
func (l *Lattice3D) Equal(o *Lattice3D) bool {
	if o == nil || l.w != o.w || l.h != o.h || l.d != o.d {
		return false
	}
	for i, v := range l.age {
		if o.age[i] != v {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (l *Lattice3D) Population() int {
	n := 0
	for _, v := range l.age {
		if v > 0 {
			n++
		}
	}
	return n
}
