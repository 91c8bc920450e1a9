package shell

import (
	"shell-life/internal/core"
	"shell-life/internal/geom"
)

// The 2D view of a shell world is the classic unfolded cross:
//
//	        [ -Y ]
//	[ -X ]  [ +Z ]  [ +X ]  [ -Z ]
//	        [ +Y ]
//
// The +Z face sits at column offset D; the side faces are D wide, the top and
// bottom bands D tall. Edge and corner cells appear on every face they belong
// to, matching how the panel projector treats them.

// Size returns the dimensions of the unfolded-net view.
func (w *World) Size() core.Size {
	vw, vh, vd := w.lat.Dims()
	return core.Size{W: 2*vd + 2*vw, H: 2*vd + vh}
}

// Cells returns the age buffer of the unfolded-net view, rebuilding it after
// mutations.
func (w *World) Cells() []uint8 {
	size := w.Size()
	if w.net == nil || w.net.Cols() != size.W || w.net.Rows() != size.H {
		w.net = core.NewLattice2D(size.H, size.W)
		w.netDirty = true
	}
	if w.netDirty {
		w.rebuildNet()
		w.netDirty = false
	}
	return w.net.Ages()
}

func (w *World) rebuildNet() {
	vw, vh, vd := w.lat.Dims()
	w.net.Clear()

	w.blitFace(geom.FaceNegX, 0, vd, vd, vh)
	w.blitFace(geom.FacePosZ, vd, vd, vw, vh)
	w.blitFace(geom.FacePosX, vd+vw, vd, vd, vh)
	w.blitFace(geom.FaceNegZ, 2*vd+vw, vd, vw, vh)
	w.blitFace(geom.FaceNegY, vd, 0, vw, vd)
	w.blitFace(geom.FacePosY, vd, vd+vh, vw, vd)
}

func (w *World) blitFace(f geom.Face, colOff, rowOff, cols, rows int) {
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x, y, z := w.faceCell(f, r, c)
			w.net.Set(rowOff+r, colOff+c, w.lat.At(x, y, z))
		}
	}
}

// faceCell maps a face-local (row, col) to volume coordinates. Horizontal
// directions are mirrored on the +X and -Z faces so the net reads
// continuously when walking around the cube.
func (w *World) faceCell(f geom.Face, r, c int) (x, y, z int) {
	vw, vh, vd := w.lat.Dims()
	switch f {
	case geom.FaceNegX:
		return 0, r, c
	case geom.FacePosX:
		return vw - 1, r, vd - 1 - c
	case geom.FaceNegY:
		return c, 0, r
	case geom.FacePosY:
		return c, vh - 1, vd - 1 - r
	case geom.FaceNegZ:
		return vw - 1 - c, r, 0
	default: // FacePosZ
		return c, r, vd - 1
	}
}
