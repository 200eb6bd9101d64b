package geometry

import "math"

// Point2 is a 2D coordinate, also used as a free vector.
type Point2 struct {
	X, Y float64
}

// Point3 is a 3D coordinate, also used as a free vector.
type Point3 struct {
	X, Y, Z float64
}

// Sub returns p - q.
func (p Point2) Sub(q Point2) Point2 { return Point2{X: p.X - q.X, Y: p.Y - q.Y} }

// Add returns p + q.
func (p Point2) Add(q Point2) Point2 { return Point2{X: p.X + q.X, Y: p.Y + q.Y} }

// Scale returns p multiplied by k.
func (p Point2) Scale(k float64) Point2 { return Point2{X: p.X * k, Y: p.Y * k} }

// Dot returns the scalar product of p and q.
func (p Point2) Dot(q Point2) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean norm of p.
func (p Point2) Len() float64 { return math.Hypot(p.X, p.Y) }

// Unit returns p scaled to length one. The zero vector maps to itself.
func (p Point2) Unit() Point2 {
	l := p.Len()
	if l == 0 {
		return Point2{}
	}

	return Point2{X: p.X / l, Y: p.Y / l}
}

// Midpoint returns the point halfway between p and q.
func (p Point2) Midpoint(q Point2) Point2 {
	return Point2{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// UnitFrom returns the unit vector pointing from 'from' to 'to'. Coincident points
// yield the zero vector, which is how an implicit substituent (the focus standing in
// for itself) contributes nothing to a parity sum.
func UnitFrom(from, to Point2) Point2 {
	if from == to {
		return Point2{}
	}

	return to.Sub(from).Unit()
}

// Sub returns p - q.
func (p Point3) Sub(q Point3) Point3 { return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

// Add returns p + q.
func (p Point3) Add(q Point3) Point3 { return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z} }

// Scale returns p multiplied by k.
func (p Point3) Scale(k float64) Point3 { return Point3{X: p.X * k, Y: p.Y * k, Z: p.Z * k} }

// Dot returns the scalar product of p and q.
func (p Point3) Dot(q Point3) float64 { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Cross returns the vector product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - q.Y*p.Z,
		Y: p.Z*q.X - q.Z*p.X,
		Z: p.X*q.Y - q.X*p.Y,
	}
}

// Len returns the Euclidean norm of p.
func (p Point3) Len() float64 { return math.Sqrt(p.Dot(p)) }

// Unit returns p scaled to length one. The zero vector maps to itself.
func (p Point3) Unit() Point3 {
	l := p.Len()
	if l == 0 {
		return Point3{}
	}

	return Point3{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

// Midpoint returns the point halfway between p and q.
func (p Point3) Midpoint(q Point3) Point3 {
	return Point3{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2, Z: (p.Z + q.Z) / 2}
}
