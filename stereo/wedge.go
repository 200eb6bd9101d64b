package stereo

import (
	"math"
	"sort"

	"github.com/katalvlaran/stereo/geometry"
)

// wedgeAngleTolerance is how close (radians) an angle must be to π to count
// as a straight line through the centre.
const wedgeAngleTolerance = 0.01

// spoke is one neighbour of a centre as seen in the drawing.
type spoke struct {
	dir  geometry.Point2
	elev int
}

// verifyWedgePattern checks that the wedges around a 3- or 4-connected
// centre follow the InChI drawing rules once the bonds are sorted by angle:
//
//   - four neighbours: up and down must alternate (zeros are free).
//   - three neighbours spanning less than a half plane: alternate.
//   - three neighbours spread over more than a half plane: no up next to down.
//   - three neighbours with two in a straight line: a lone wedge may not sit
//     on the third bond.
//
// A failure is logged and returns false.
func (p *Perceiver) verifyWedgePattern(v int, carriers, elev [4]int) bool {
	n := p.s.Degree(v)
	centre, ok := p.s.Point2(v)
	if !ok {
		return false
	}

	// 1) Spokes sorted anticlockwise.
	spokes := make([]spoke, 0, n)
	for i := 0; i < n; i++ {
		pt, ok := p.s.Point2(carriers[i])
		if !ok {
			return false
		}
		spokes = append(spokes, spoke{dir: pt, elev: elev[i]})
	}
	less := geometry.PolarLess(centre)
	sort.SliceStable(spokes, func(i, j int) bool { return less(spokes[i].dir, spokes[j].dir) })
	for i := range spokes {
		spokes[i].dir = geometry.UnitFrom(centre, spokes[i].dir)
	}

	// 2) Pattern per neighbour count.
	valid := true
	switch n {
	case 4:
		valid = alternating(spokes)
	case 3:
		valid = trigonalPattern(spokes)
	}
	if !valid {
		layoutErrorf("stereo: wedges around atom %d do not describe a tetrahedral centre", v)
	}

	return valid
}

// agrees reports whether two neighbouring elevations are compatible.
func agrees(a, b int) bool {
	return a == 0 || b == 0 || a == b
}

// alternating is the four-neighbour rule: every set elevation must be the
// opposite of the last set one.
func alternating(spokes []spoke) bool {
	ref := 0
	for _, sp := range spokes {
		if sp.elev != 0 {
			if ref != 0 && ref != sp.elev {
				return false
			}
			ref = sp.elev
		}
		ref = -ref
	}

	return true
}

func trigonalPattern(spokes []spoke) bool {
	e := [3]int{spokes[0].elev, spokes[1].elev, spokes[2].elev}
	// Anticlockwise gap from each spoke to the next.
	gaps := [3]float64{
		geometry.SweepAngle(spokes[1].dir, spokes[0].dir),
		geometry.SweepAngle(spokes[2].dir, spokes[1].dir),
		geometry.SweepAngle(spokes[0].dir, spokes[2].dir),
	}
	widest := max(gaps[0], gaps[1], gaps[2])
	delta := widest - math.Pi

	switch {
	case delta > wedgeAngleTolerance:
		// Crowded into a half plane.
		ref := 0
		for _, curr := range e {
			if !agrees(ref, curr) {
				return false
			}
			ref = -curr
		}
	case delta < -wedgeAngleTolerance:
		ref := 0
		for _, curr := range e {
			if !agrees(ref, curr) {
				return false
			}
			ref = curr
		}
	default:
		// Two spokes in a straight line.
		straight := func(g float64) bool { return math.Abs(g-math.Pi) < wedgeAngleTolerance }
		switch {
		case straight(gaps[0]) && e[0] == 0 && e[1] == 0 && e[2] != 0:
			return false
		case straight(gaps[1]) && e[0] != 0 && e[1] == 0 && e[2] == 0:
			return false
		case straight(gaps[2]) && e[0] == 0 && e[1] != 0 && e[2] == 0:
			return false
		}
	}

	return true
}
