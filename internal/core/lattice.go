package core

// MaxAge is the saturation point for cell age counters. A cell that stays
// alive longer than this keeps reporting MaxAge.
const MaxAge = 255

// Lattice2D stores per-cell ages for a toroidal grid in row-major order.
// Age 0 means dead; age N>0 means alive for N consecutive generations.
type Lattice2D struct {
	rows, cols int
	age        []uint8
}

// NewLattice2D allocates an all-dead lattice with the given dimensions.
func NewLattice2D(rows, cols int) *Lattice2D {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Lattice2D{rows: rows, cols: cols, age: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (l *Lattice2D) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Lattice2D) Cols() int { return l.cols }

// Ages exposes the backing slice so renderers can read values directly.
func (l *Lattice2D) Ages() []uint8 { return l.age }

// Index returns the linear slice index for (row, col).
func (l *Lattice2D) Index(row, col int) int { return row*l.cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (l *Lattice2D) Wrap(row, col int) (int, int) {
	row = (row%l.rows + l.rows) % l.rows
	col = (col%l.cols + l.cols) % l.cols
	return row, col
}

// InBounds reports whether (row, col) lies inside the lattice without wrapping.
func (l *Lattice2D) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// At returns the age at (row, col) with toroidal wrapping.
func (l *Lattice2D) At(row, col int) uint8 {
	row, col = l.Wrap(row, col)
	return l.age[row*l.cols+col]
}

// Set writes the age at (row, col) with toroidal wrapping.
func (l *Lattice2D) Set(row, col int, v uint8) {
	row, col = l.Wrap(row, col)
	l.age[row*l.cols+col] = v
}

// Clear kills every cell.
func (l *Lattice2D) Clear() {
	for i := range l.age {
		l.age[i] = 0
	}
}

// Clone returns a deep copy sharing no storage with the receiver.
func (l *Lattice2D) Clone() *Lattice2D {
	c := &Lattice2D{rows: l.rows, cols: l.cols, age: make([]uint8, len(l.age))}
	copy(c.age, l.age)
	return c
}

// Equal reports whether both lattices have identical dimensions and ages.
func (l *Lattice2D) Equal(o *Lattice2D) bool {
	if o == nil || l.rows != o.rows || l.cols != o.cols {
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
func (l *Lattice2D) Population() int {
	n := 0
	for _, v := range l.age {
		if v > 0 {
			n++
		}
	}
	return n
}
