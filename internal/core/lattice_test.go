package core

import "testing"

func TestLattice2DWrap(t *testing.T) {
	l := NewLattice2D(4, 6)
	cases := []struct {
		r, c         int
		wantR, wantC int
	}{
		{0, 0, 0, 0},
		{-1, -1, 3, 5},
		{4, 6, 0, 0},
		{-5, 13, 3, 1},
	}
	for _, tc := range cases {
		r, c := l.Wrap(tc.r, tc.c)
		if r != tc.wantR || c != tc.wantC {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, r, c, tc.wantR, tc.wantC)
		}
	}
}

func TestLattice2DCloneIsIndependent(t *testing.T) {
	l := NewLattice2D(3, 3)
	l.Set(1, 1, 5)
	c := l.Clone()
	l.Set(1, 1, 9)
	if c.At(1, 1) != 5 {
		t.Errorf("clone cell = %d, want 5", c.At(1, 1))
	}
	if !c.Equal(c.Clone()) {
		t.Error("clone must equal itself")
	}
	if l.Equal(c) {
		t.Error("diverged lattices must not be equal")
	}
}

func TestLattice2DEqualRejectsDimensionMismatch(t *testing.T) {
	if NewLattice2D(3, 4).Equal(NewLattice2D(4, 3)) {
		t.Error("lattices of different dimensions must not be equal")
	}
}

func TestIndex3Coord3RoundTrip(t *testing.T) {
	const w, h, d = 5, 7, 3
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := Index3(x, y, z, w, h)
				gx, gy, gz := Coord3(i, w, h)
				if gx != x || gy != y || gz != z {
					t.Fatalf("Coord3(Index3(%d,%d,%d)) = (%d,%d,%d)", x, y, z, gx, gy, gz)
				}
			}
		}
	}
}

func TestOnShellCountsBoundaryCells(t *testing.T) {
	const w, h, d = 6, 5, 4
	count := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if OnShell(x, y, z, w, h, d) {
					count++
				}
			}
		}
	}
	want := w*h*d - (w-2)*(h-2)*(d-2)
	if count != want {
		t.Errorf("shell cell count = %d, want %d", count, want)
	}
	if OnShell(-1, 0, 0, w, h, d) || OnShell(w, 0, 0, w, h, d) {
		t.Error("out-of-bounds coordinates are not on the shell")
	}
}

func TestLattice3DRejectsInteriorWrites(t *testing.T) {
	l := NewLattice3D(5, 5, 5)
	if l.Set(2, 2, 2, 1) {
		t.Error("interior write must be rejected")
	}
	if l.At(2, 2, 2) != 0 {
		t.Error("interior cell must stay dead")
	}
	if !l.Set(0, 2, 2, 3) {
		t.Error("shell write must succeed")
	}
	if l.At(0, 2, 2) != 3 {
		t.Errorf("shell cell = %d, want 3", l.At(0, 2, 2))
	}
}

func TestForEachShellVisitsOnlyShell(t *testing.T) {
	l := NewLattice3D(4, 4, 4)
	visited := 0
	l.ForEachShell(func(x, y, z int) {
		visited++
		if !l.OnShell(x, y, z) {
			t.Fatalf("visited non-shell coordinate (%d,%d,%d)", x, y, z)
		}
	})
	if visited != 4*4*4-2*2*2 {
		t.Errorf("visited %d cells, want %d", visited, 4*4*4-2*2*2)
	}
}
