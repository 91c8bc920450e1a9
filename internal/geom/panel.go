// Package geom projects cube-shell lattice coordinates into world-space panel
// transforms. Panels are thin plates tangent to the local cube surface, so
// faces, edges and corners render seamlessly instead of as overlapping cubes.
package geom

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Panel fractions of the cell spacing. The two tangent axes stay slightly
// under the spacing so adjacent panels do not touch; the normal axis is
// nearly flat.
const (
	PanelWidth     = 0.9
	PanelThickness = 0.05
)

// canonicalThin is the local axis that the panel is flattened along before
// rotation. Orientation quaternions map it onto the outward normal.
var canonicalThin = r3.Vec{Z: 1}

// Panel is a world transform for one rendered shell cell: centered position,
// orientation aligning the local thin axis with the outward normal, and the
// local-frame scale (Z is always the thin axis).
type Panel struct {
	Pos   r3.Vec
	Rot   quat.Number
	Scale r3.Vec
}

// Face identifies one of the six boundary faces of the volume.
type Face int

const (
	FaceNegX Face = iota
	FacePosX
	FaceNegY
	FacePosY
	FaceNegZ
	FacePosZ
)

// Normal returns the face's outward unit normal.
func (f Face) Normal() r3.Vec {
	switch f {
	case FaceNegX:
		return r3.Vec{X: -1}
	case FacePosX:
		return r3.Vec{X: 1}
	case FaceNegY:
		return r3.Vec{Y: -1}
	case FacePosY:
		return r3.Vec{Y: 1}
	case FaceNegZ:
		return r3.Vec{Z: -1}
	default:
		return r3.Vec{Z: 1}
	}
}

// Normal computes the outward normal for a shell coordinate: −1 per axis at
// the minimum boundary, +1 at the maximum, 0 otherwise. One, two or three
// components are nonzero for face, edge and corner cells respectively. The
// vector is not normalized. Reports false for non-shell coordinates.
func Normal(x, y, z, w, h, d int) (r3.Vec, bool) {
	if x < 0 || x >= w || y < 0 || y >= h || z < 0 || z >= d {
		return r3.Vec{}, false
	}
	var n r3.Vec
	if x == 0 {
		n.X = -1
	} else if x == w-1 {
		n.X = 1
	}
	if y == 0 {
		n.Y = -1
	} else if y == h-1 {
		n.Y = 1
	}
	if z == 0 {
		n.Z = -1
	} else if z == d-1 {
		n.Z = 1
	}
	if n == (r3.Vec{}) {
		return r3.Vec{}, false
	}
	return n, true
}

// FaceGroups lists the faces a shell coordinate belongs to: one for a face
// cell, two for an edge, three for a corner. Nil for non-shell coordinates.
func FaceGroups(x, y, z, w, h, d int) []Face {
	n, ok := Normal(x, y, z, w, h, d)
	if !ok {
		return nil
	}
	var faces []Face
	if n.X < 0 {
		faces = append(faces, FaceNegX)
	} else if n.X > 0 {
		faces = append(faces, FacePosX)
	}
	if n.Y < 0 {
		faces = append(faces, FaceNegY)
	} else if n.Y > 0 {
		faces = append(faces, FacePosY)
	}
	if n.Z < 0 {
		faces = append(faces, FaceNegZ)
	} else if n.Z > 0 {
		faces = append(faces, FacePosZ)
	}
	return faces
}

// Project maps a shell coordinate to a single panel transform using the
// combined outward normal. Edge and corner cells get a panel tilted along
// their blended normal; renderers that want one axis-aligned panel per face
// membership should use ProjectFace once per FaceGroups entry instead.
func Project(x, y, z, w, h, d int, spacing float64) (Panel, bool) {
	n, ok := Normal(x, y, z, w, h, d)
	if !ok {
		return Panel{}, false
	}
	return Panel{
		Pos:   centered(x, y, z, w, h, d, spacing),
		Rot:   rotationBetween(canonicalThin, r3.Unit(n)),
		Scale: panelScale(spacing),
	}, true
}

// ProjectFace maps a shell coordinate to the panel for one of its face
// memberships, flattened along that single face axis. Reports false when the
// coordinate does not belong to the given face.
func ProjectFace(x, y, z, w, h, d int, face Face, spacing float64) (Panel, bool) {
	member := false
	for _, f := range FaceGroups(x, y, z, w, h, d) {
		if f == face {
			member = true
			break
		}
	}
	if !member {
		return Panel{}, false
	}
	return Panel{
		Pos:   centered(x, y, z, w, h, d, spacing),
		Rot:   rotationBetween(canonicalThin, face.Normal()),
		Scale: panelScale(spacing),
	}, true
}

func panelScale(spacing float64) r3.Vec {
	return r3.Vec{
		X: PanelWidth * spacing,
		Y: PanelWidth * spacing,
		Z: PanelThickness * spacing,
	}
}

func centered(x, y, z, w, h, d int, spacing float64) r3.Vec {
	return r3.Vec{
		X: (float64(x) - float64(w-1)/2) * spacing,
		Y: (float64(y) - float64(h-1)/2) * spacing,
		Z: (float64(z) - float64(d-1)/2) * spacing,
	}
}

// rotationBetween returns the unit quaternion rotating unit vector a onto
// unit vector b along the shortest arc.
func rotationBetween(a, b r3.Vec) quat.Number {
	dot := r3.Dot(a, b)
	if dot < -1+1e-12 {
		// Antiparallel: rotate π around any axis perpendicular to a.
		perp := r3.Cross(a, r3.Vec{X: 1})
		if r3.Norm(perp) < 1e-12 {
			perp = r3.Cross(a, r3.Vec{Y: 1})
		}
		perp = r3.Unit(perp)
		return quat.Number{Imag: perp.X, Jmag: perp.Y, Kmag: perp.Z}
	}
	cross := r3.Cross(a, b)
	q := quat.Number{Real: 1 + dot, Imag: cross.X, Jmag: cross.Y, Kmag: cross.Z}
	return quat.Scale(1/quat.Abs(q), q)
}

// Rotate applies the orientation quaternion to a vector.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}
