// File: model.go
// Role: Coordinate models: where points come from and which parity formula applies.
// Determinism:
//   - Pure functions of the snapshot.
// Concurrency:
//   - Planar and Spatial are stateless values.

package stereo

import (
	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
	"github.com/katalvlaran/stereo/parity"
)

// Dimension selects the coordinate set perception reads.
type Dimension int

const (
	Dim2D Dimension = 2
	Dim3D Dimension = 3
)

// String implements fmt.Stringer.
func (d Dimension) String() string {
	if d == Dim3D {
		return "3D"
	}

	return "2D"
}

// CoordinateModel reduces atom positions to parities. All parity methods
// return 0 when a referenced atom has no point in this model.
type CoordinateModel interface {
	Dimension() Dimension
	// HasCoordinates reports whether every listed atom has a point.
	HasCoordinates(s *core.Snapshot, atoms ...int) bool
	// TetrahedralParity is the winding of carriers around the centroid of
	// centre (one atom, or the two ends of an axis).
	TetrahedralParity(s *core.Snapshot, centre []int, carriers [4]int, elev [4]int) int
	// DoubleBondParity is +1 when uSubs[0] and vSubs[0] are on opposite
	// sides of u=v and -1 when on the same side. uSubs[1] (vSubs[1]) is the
	// second substituent of u (v) or u (v) itself.
	DoubleBondParity(s *core.Snapshot, u, v int, uSubs, vSubs [2]int) int
	// Elevation of the far end of bond as seen from focus.
	Elevation(s *core.Snapshot, focus, bond int) int
	// UnitDot is the dot product of the unit vectors a0→a1 and b0→b1.
	UnitDot(s *core.Snapshot, a0, a1, b0, b1 int) (float64, bool)
}

// Planar reads 2D points and wedge annotations.
type Planar struct{}

// Dimension implements CoordinateModel.
func (Planar) Dimension() Dimension { return Dim2D }

// HasCoordinates implements CoordinateModel.
func (Planar) HasCoordinates(s *core.Snapshot, atoms ...int) bool {
	for _, a := range atoms {
		if _, ok := s.Point2(a); !ok {
			return false
		}
	}

	return true
}

// TetrahedralParity implements CoordinateModel.
func (p Planar) TetrahedralParity(s *core.Snapshot, centre []int, carriers [4]int, elev [4]int) int {
	c, ok := p.centroid(s, centre)
	if !ok {
		return 0
	}
	var pts [4]geometry.Point2
	for i, a := range carriers {
		if pts[i], ok = s.Point2(a); !ok {
			return 0
		}
	}

	return parity.Tetrahedral2D(c, pts, elev)
}

func (Planar) centroid(s *core.Snapshot, atoms []int) (geometry.Point2, bool) {
	if len(atoms) == 0 {
		return geometry.Point2{}, false
	}
	var sum geometry.Point2
	for _, a := range atoms {
		p, ok := s.Point2(a)
		if !ok {
			return geometry.Point2{}, false
		}
		sum = sum.Add(p)
	}

	return sum.Scale(1 / float64(len(atoms))), true
}

// DoubleBondParity implements CoordinateModel.
func (p Planar) DoubleBondParity(s *core.Snapshot, u, v int, uSubs, vSubs [2]int) int {
	if !p.HasCoordinates(s, u, v, uSubs[0], uSubs[1], vSubs[0], vSubs[1]) {
		return 0
	}
	pt := func(a int) geometry.Point2 { q, _ := s.Point2(a); return q }

	return parity.DoubleBond2D(
		[3]geometry.Point2{pt(uSubs[0]), pt(uSubs[1]), pt(v)},
		[3]geometry.Point2{pt(vSubs[0]), pt(vSubs[1]), pt(u)},
	)
}

// Elevation implements CoordinateModel.
func (Planar) Elevation(s *core.Snapshot, focus, bond int) int {
	b := s.Bond(bond)
	if b == nil {
		return 0
	}

	return parity.Elevation(b.Stereo, b.Begin == focus)
}

// UnitDot implements CoordinateModel.
func (Planar) UnitDot(s *core.Snapshot, a0, a1, b0, b1 int) (float64, bool) {
	var p [4]geometry.Point2
	for i, a := range [4]int{a0, a1, b0, b1} {
		q, ok := s.Point2(a)
		if !ok {
			return 0, false
		}
		p[i] = q
	}
	u, w := geometry.UnitFrom(p[0], p[1]), geometry.UnitFrom(p[2], p[3])
	if u == (geometry.Point2{}) || w == (geometry.Point2{}) {
		return 0, false
	}

	return u.Dot(w), true
}

// Spatial reads 3D points; wedges carry no information.
type Spatial struct{}

// Dimension implements CoordinateModel.
func (Spatial) Dimension() Dimension { return Dim3D }

// HasCoordinates implements CoordinateModel.
func (Spatial) HasCoordinates(s *core.Snapshot, atoms ...int) bool {
	for _, a := range atoms {
		if _, ok := s.Point3(a); !ok {
			return false
		}
	}

	return true
}

// TetrahedralParity implements CoordinateModel. The signed volume of the
// carriers alone decides; centre and elev are ignored.
func (Spatial) TetrahedralParity(s *core.Snapshot, _ []int, carriers [4]int, _ [4]int) int {
	var pts [4]geometry.Point3
	for i, a := range carriers {
		p, ok := s.Point3(a)
		if !ok {
			return 0
		}
		pts[i] = p
	}

	return parity.Tetrahedral3D(pts)
}

// DoubleBondParity implements CoordinateModel. Only the first substituent
// of each end is used.
func (sp Spatial) DoubleBondParity(s *core.Snapshot, u, v int, uSubs, vSubs [2]int) int {
	if !sp.HasCoordinates(s, u, v, uSubs[0], vSubs[0]) {
		return 0
	}
	pt := func(a int) geometry.Point3 { q, _ := s.Point3(a); return q }

	return parity.DoubleBond3D(pt(u), pt(v), pt(uSubs[0]), pt(vSubs[0]))
}

// Elevation implements CoordinateModel.
func (Spatial) Elevation(*core.Snapshot, int, int) int { return 0 }

// UnitDot implements CoordinateModel.
func (Spatial) UnitDot(s *core.Snapshot, a0, a1, b0, b1 int) (float64, bool) {
	var p [4]geometry.Point3
	for i, a := range [4]int{a0, a1, b0, b1} {
		q, ok := s.Point3(a)
		if !ok {
			return 0, false
		}
		p[i] = q
	}
	u, w := p[1].Sub(p[0]), p[3].Sub(p[2])
	if u.Len() == 0 || w.Len() == 0 {
		return 0, false
	}

	return u.Unit().Dot(w.Unit()), true
}

// ModelFor returns the coordinate model for d.
func ModelFor(d Dimension) CoordinateModel {
	if d == Dim3D {
		return Spatial{}
	}

	return Planar{}
}
