package geometry

import "math"

// Shear returns the determinant
//
//	| a.X a.Y 1 |
//	| b.X b.Y 1 |
//	| c.X c.Y 1 |
//
// i.e. twice the signed area of triangle a,b,c. Positive for an anticlockwise
// ordering in a y-up frame.
func Shear(a, b, c Point2) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
}

// SweepAngle returns the clockwise angle swept from a to b, in (0, 2π]; equal
// directions sweep a full turn.
// Inputs are expected to be unit vectors but only their directions matter.
func SweepAngle(a, b Point2) float64 {
	angle := math.Atan2(a.X*b.Y-a.Y*b.X, a.X*b.X+a.Y*b.Y)
	if angle >= 0 {
		return 2*math.Pi - angle
	}

	return -angle
}

// PolarAngle returns the anticlockwise angle of p around centre, in (-π, π].
func PolarAngle(centre, p Point2) float64 {
	return math.Atan2(p.Y-centre.Y, p.X-centre.X)
}

// PolarLess returns a comparator ordering points by polar angle around centre.
// Ties are broken by distance so the ordering is total for distinct points.
func PolarLess(centre Point2) func(a, b Point2) bool {
	return func(a, b Point2) bool {
		pa, pb := PolarAngle(centre, a), PolarAngle(centre, b)
		if pa != pb {
			return pa < pb
		}

		return a.Sub(centre).Len() < b.Sub(centre).Len()
	}
}
