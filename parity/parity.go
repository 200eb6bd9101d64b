// Package parity turns coordinates into configuration signs.
//
// Every function returns +1, -1, or 0. Zero always means "the geometry does
// not decide": a determinant too close to zero, a missing neighbour, or a
// degenerate arrangement. Callers reject a stereo element on zero.
package parity

import (
	"math"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
)

// Threshold is the smallest 2D determinant magnitude that carries a signal.
// Magnitudes at or below it are treated as zero. Units are those of the
// depiction (typical bond length 1.0 to 1.5).
const Threshold = 0.1

// sign maps v to -1, 0 or +1.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// signAbove is sign(v) with magnitudes within Threshold mapped to zero.
func signAbove(v float64) int {
	if math.Abs(v) <= Threshold {
		return 0
	}

	return sign(v)
}

// Triangle returns the orientation of a, b, c in the plane: +1 anticlockwise,
// -1 clockwise, 0 when the shear determinant is within Threshold.
func Triangle(a, b, c geometry.Point2) int {
	return signAbove(geometry.Shear(a, b, c))
}

// Tetrahedral2D returns the winding of four neighbours around centre given
// their elevations above (+1) or below (-1) the plane.
//
// Each neighbour is reduced to the unit vector from centre; a neighbour placed
// on the centre itself (the implicit fourth substituent) contributes the zero
// vector. The signed volume is
//
//	e0·D(1,2,3) - e1·D(0,2,3) + e2·D(0,1,3) - e3·D(0,1,2)
//
// where D(i,j,k) is the shear of unit vectors i, j, k.
//
// Returns +1 anticlockwise, -1 clockwise, 0 when the volume is within Threshold.
func Tetrahedral2D(centre geometry.Point2, nbrs [4]geometry.Point2, elev [4]int) int {
	var u [4]geometry.Point2
	for i := range nbrs {
		u[i] = geometry.UnitFrom(centre, nbrs[i])
	}

	return signAbove(volume2D(u, elev))
}

// volume2D is the elevation-weighted alternating determinant sum.
func volume2D(u [4]geometry.Point2, elev [4]int) float64 {
	return float64(elev[0])*geometry.Shear(u[1], u[2], u[3]) -
		float64(elev[1])*geometry.Shear(u[0], u[2], u[3]) +
		float64(elev[2])*geometry.Shear(u[0], u[1], u[3]) -
		float64(elev[3])*geometry.Shear(u[0], u[1], u[2])
}

// Tetrahedral3D returns the sign of the signed volume spanned by four points,
// the z-weighted form of the 2D sum. Zero only for an exactly flat arrangement.
func Tetrahedral3D(p [4]geometry.Point3) int {
	d := func(a, b, c geometry.Point3) float64 {
		return geometry.Shear(
			geometry.Point2{X: a.X, Y: a.Y},
			geometry.Point2{X: b.X, Y: b.Y},
			geometry.Point2{X: c.X, Y: c.Y},
		)
	}
	vol := p[0].Z*d(p[1], p[2], p[3]) -
		p[1].Z*d(p[0], p[2], p[3]) +
		p[2].Z*d(p[0], p[1], p[3]) -
		p[3].Z*d(p[0], p[1], p[2])

	return sign(vol)
}

// DoubleBond2D combines the triangle parities of both ends of a double bond.
//
// Each side is {substituent, other substituent or the end atom itself, the
// far double-bond atom}. The product is positive when the reference
// substituents sit on opposite sides and zero when either side is degenerate.
func DoubleBond2D(u, v [3]geometry.Point2) int {
	return Triangle(u[0], u[1], u[2]) * Triangle(v[0], v[1], v[2])
}

// DoubleBond3D returns the parity of double bond u=v with substituent x on u
// and w on v. With n = vu × (vu × vw), the parity is -sign(n·vw)·sign(n·ux):
// +1 when x and w are on opposite sides, -1 when on the same side.
func DoubleBond3D(u, v, x, w geometry.Point3) int {
	vu := u.Sub(v)
	vw := w.Sub(v)
	ux := x.Sub(u)
	n := vu.Cross(vu.Cross(vw))

	return -sign(n.Dot(vw)) * sign(n.Dot(ux))
}

// Elevation returns the elevation a wedge annotation implies for the atom at
// the far end of the bond, as seen from the focus atom.
//
// Only the atom at the narrow end of a wedge is raised or lowered relative to
// its neighbour: plain styles count when the focus is Begin, inverted styles
// when the focus is End. Anything else is 0.
func Elevation(s core.BondStereo, focusIsBegin bool) int {
	if focusIsBegin {
		switch s {
		case core.StereoUp:
			return 1
		case core.StereoDown:
			return -1
		}

		return 0
	}
	switch s {
	case core.StereoUpInverted:
		return 1
	case core.StereoDownInverted:
		return -1
	}

	return 0
}
