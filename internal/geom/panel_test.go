package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want r3.Vec) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon || math.Abs(got.Z-want.Z) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func minMax(v r3.Vec) (float64, float64) {
	lo, hi := v.X, v.X
	for _, c := range []float64{v.Y, v.Z} {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return lo, hi
}

func TestNormalFaceEdgeCorner(t *testing.T) {
	n, ok := Normal(0, 5, 5, 10, 10, 10)
	if !ok {
		t.Fatal("face cell must have a normal")
	}
	assertVec(t, "face normal", n, r3.Vec{X: -1})

	n, ok = Normal(0, 0, 5, 10, 10, 10)
	if !ok {
		t.Fatal("edge cell must have a normal")
	}
	assertVec(t, "edge normal", n, r3.Vec{X: -1, Y: -1})

	n, ok = Normal(9, 9, 9, 10, 10, 10)
	if !ok {
		t.Fatal("corner cell must have a normal")
	}
	assertVec(t, "corner normal", n, r3.Vec{X: 1, Y: 1, Z: 1})
}

func TestNormalRejectsInteriorAndOutOfBounds(t *testing.T) {
	if _, ok := Normal(5, 5, 5, 10, 10, 10); ok {
		t.Error("interior cell must not have a normal")
	}
	if _, ok := Normal(-1, 0, 0, 10, 10, 10); ok {
		t.Error("out-of-bounds cell must not have a normal")
	}
}

func TestFaceGroupCounts(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
		want    int
	}{
		{"face", 0, 5, 5, 1},
		{"edge", 0, 0, 5, 2},
		{"corner", 0, 0, 0, 3},
		{"interior", 5, 5, 5, 0},
	}
	for _, tc := range cases {
		if got := len(FaceGroups(tc.x, tc.y, tc.z, 10, 10, 10)); got != tc.want {
			t.Errorf("%s cell: %d face groups, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCornerPanelIsFlat(t *testing.T) {
	const spacing = 2.0
	p, ok := Project(0, 0, 0, 10, 10, 10, spacing)
	if !ok {
		t.Fatal("corner must project")
	}
	lo, hi := minMax(p.Scale)
	if lo >= 0.1*spacing {
		t.Errorf("thin axis %v not below thickness threshold", lo)
	}
	if hi <= 0.5*spacing {
		t.Errorf("wide axis %v not above width threshold", hi)
	}
}

func TestEdgePanelIsFlat(t *testing.T) {
	const spacing = 1.0
	p, ok := Project(0, 0, 5, 10, 10, 10, spacing)
	if !ok {
		t.Fatal("edge must project")
	}
	lo, hi := minMax(p.Scale)
	if lo >= 0.1*spacing {
		t.Errorf("thin axis %v not below thickness threshold", lo)
	}
	if hi <= 0.5*spacing {
		t.Errorf("wide axis %v not above width threshold", hi)
	}
}

func TestProjectCentersPositions(t *testing.T) {
	p, ok := Project(0, 0, 0, 10, 10, 10, 1)
	if !ok {
		t.Fatal("corner must project")
	}
	assertVec(t, "corner position", p.Pos, r3.Vec{X: -4.5, Y: -4.5, Z: -4.5})

	p, _ = Project(9, 0, 4, 10, 10, 10, 2)
	assertVec(t, "edge position", p.Pos, r3.Vec{X: 9, Y: -9, Z: -1})
}

func TestProjectOrientationAlignsThinAxisWithNormal(t *testing.T) {
	cases := []struct {
		name    string
		x, y, z int
	}{
		{"min x face", 0, 5, 5},
		{"max y face", 5, 9, 5},
		{"min z face", 5, 5, 0},
		{"max z face", 5, 5, 9},
		{"edge", 0, 0, 5},
		{"corner", 9, 9, 9},
	}
	for _, tc := range cases {
		p, ok := Project(tc.x, tc.y, tc.z, 10, 10, 10, 1)
		if !ok {
			t.Fatalf("%s must project", tc.name)
		}
		assertNear(t, tc.name+" rot norm", quat.Abs(p.Rot), 1)
		n, _ := Normal(tc.x, tc.y, tc.z, 10, 10, 10)
		assertVec(t, tc.name+" rotated thin axis", Rotate(p.Rot, canonicalThin), r3.Unit(n))
	}
}

func TestProjectRejectsInterior(t *testing.T) {
	if _, ok := Project(5, 5, 5, 10, 10, 10, 1); ok {
		t.Error("interior coordinate must not project")
	}
}

func TestProjectFacePerMembership(t *testing.T) {
	// A corner belongs to three faces; each membership yields a panel whose
	// thin axis is that single face's normal.
	faces := FaceGroups(0, 0, 0, 10, 10, 10)
	if len(faces) != 3 {
		t.Fatalf("corner has %d face groups, want 3", len(faces))
	}
	for _, f := range faces {
		p, ok := ProjectFace(0, 0, 0, 10, 10, 10, f, 1)
		if !ok {
			t.Fatalf("face %v projection failed", f)
		}
		assertVec(t, "face-group thin axis", Rotate(p.Rot, canonicalThin), f.Normal())
	}

	if _, ok := ProjectFace(0, 0, 0, 10, 10, 10, FacePosX, 1); ok {
		t.Error("corner (0,0,0) must not project onto the +x face")
	}
}
