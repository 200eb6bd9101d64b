// Package geometry provides the small set of 2D and 3D vector primitives used by
// stereo perception: points, differences, dot and cross products, unit vectors,
// the three-point shear determinant and clockwise sweep angles.
//
// All types are plain values. Nothing here allocates and nothing mutates its inputs,
// so the helpers are safe to share across goroutines.
//
// Key Types:
//
//   - Point2: a location (or vector) in the depiction plane.
//   - Point3: a location (or vector) in space.
//
// Functions:
//
//   - Shear(a, b, c)       signed double area of the triangle a,b,c (3x3 determinant
//     with a constant third column).
//   - SweepAngle(a, b)     clockwise sweep from a to b in [0, 2π).
//   - PolarLess(centre)    comparator ordering points by polar angle around centre.
//
// Complexity: every function is O(1).
package geometry
