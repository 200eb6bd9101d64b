// File: creator.go
// Role: Coordinate-specific creators and the helpers they share.
// Determinism:
//   - Neighbours are visited in adjacency order; carrier order follows it.
// Concurrency:
//   - Creators are stateless; all state lives on the Perceiver.

package stereo

import (
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/stereo/core"
)

// featureCreator holds the parts of element creation that differ between
// wedge layouts and 3D coordinates. Double bonds and extended cis/trans are
// shared and live on the Perceiver.
type featureCreator interface {
	tetrahedral(p *Perceiver, v int) Element
	extendedTetrahedral(p *Perceiver, focus int, ends [2]int) Element
	atropisomer(p *Perceiver, u, v int) Element
}

func creatorFor(d Dimension) featureCreator {
	if d == Dim3D {
		return spatialCreator{}
	}

	return planarCreator{}
}

// Ortho substitution window for a hindered biaryl axis: the degree sum of the
// three neighbours of each axis atom must lie in [8, 9] and the two sums must
// reach 17.
const (
	orthoSumMin   = 8
	orthoSumMax   = 9
	orthoSumTotal = 17
)

func orthoHindered(sums [2]int) bool {
	for _, sum := range sums {
		if sum < orthoSumMin || sum > orthoSumMax {
			return false
		}
	}

	return sums[0]+sums[1] >= orthoSumTotal
}

// colinearTolerance bounds |cos θ + 1| for the terminals of a 3D cumulene.
const colinearTolerance = 0.05

// Badly drawn layouts are reported at error level, reinterpreted ones at
// warning level; ordinary rejections stay at V(2).
var (
	layoutErrorf   = klog.Errorf
	layoutWarningf = klog.Warningf
)

func rejectAtom(v int, reason string) Element {
	klog.V(2).Infof("stereo: atom %d: %s", v, reason)
	return nil
}

func rejectBond(b int, reason string) Element {
	klog.V(2).Infof("stereo: bond %d: %s", b, reason)
	return nil
}

func unspecifiedParity(s *core.Snapshot, v int) bool {
	a := s.Atom(v)
	return a != nil && a.UnspecifiedParity
}

// neighbourhood collects the carriers of a tetrahedral centre. The centre
// fills any slot left over by a 3-connected atom. ok is false for a wavy bond
// or more than four neighbours.
func (p *Perceiver) neighbourhood(v int) (carriers [4]int, elev [4]int, ok bool) {
	carriers = [4]int{v, v, v, v}
	bonds := p.s.BondsOf(v)
	for i, w := range p.s.Neighbors(v) {
		if i == 4 || p.s.Bond(bonds[i]).Stereo.IsUnspecified() {
			return carriers, elev, false
		}
		carriers[i] = w
		elev[i] = p.model.Elevation(p.s, v, bonds[i])
	}

	return carriers, elev, true
}

// terminalStereocentres reports whether both ends of a cumulene pass the
// oracle. Before symmetry checking no terminal is excluded.
func (p *Perceiver) terminalStereocentres(ends [2]int) bool {
	if !p.oracle.SymmetryChecked() {
		return true
	}

	return p.oracle.IsStereocenter(ends[0]) && p.oracle.IsStereocenter(ends[1])
}

// terminalSubstituents fills carriers[lo], carriers[lo+1] with the atoms
// single-bonded to terminal t. A lone substituent leaves the terminal itself
// in slot lo+1.
func (p *Perceiver) terminalSubstituents(t, lo int, carriers, elev *[4]int) bool {
	n := 0
	nbrs := p.s.Neighbors(t)
	for i, bi := range p.s.BondsOf(t) {
		b := p.s.Bond(bi)
		if b.Order != core.OrderSingle {
			continue
		}
		if b.Stereo.IsUnspecified() || n == 2 {
			return false
		}
		carriers[lo+n] = nbrs[i]
		elev[lo+n] = p.model.Elevation(p.s, t, bi)
		n++
	}

	return n > 0
}

// cumulatedCarriers prepares an extended tetrahedral centre: terminals at
// slots 1 and 3, their substituents filling 0-1 and 2-3.
func (p *Perceiver) cumulatedCarriers(ends [2]int) (carriers [4]int, elev [4]int, ok bool) {
	carriers[1], carriers[3] = ends[0], ends[1]
	if !p.terminalSubstituents(ends[0], 0, &carriers, &elev) {
		return carriers, elev, false
	}
	if !p.terminalSubstituents(ends[1], 2, &carriers, &elev) {
		return carriers, elev, false
	}

	return carriers, elev, true
}

// oneSided reports whether elevation comes from exactly one end of an axis:
// slots 0-1 belong to one end, 2-3 to the other.
func oneSided(elev [4]int) bool {
	if elev[0] != 0 || elev[1] != 0 {
		return elev[2] == 0 && elev[3] == 0
	}

	return elev[2] != 0 || elev[3] != 0
}

// axisCarriers collects two carriers on each side of the axis u-v and checks
// ortho substitution. An explicit hydrogen next to a carrier does not count
// towards hindrance. A carrier with no elevation of its own borrows one from
// a wedge one bond further out.
func (p *Perceiver) axisCarriers(u, v int) (carriers [4]int, elev [4]int, ok bool) {
	s := p.s
	sums := [2]int{p.degreeSum(u), p.degreeSum(v)}
	if !orthoHindered(sums) {
		return carriers, elev, false
	}

	n := 0
	for side, end := range [2]int{u, v} {
		across := v
		if side == 1 {
			across = u
		}
		bonds := s.BondsOf(end)
		for i, w := range s.Neighbors(end) {
			if w == across {
				continue
			}
			if n == 2*(side+1) || s.Bond(bonds[i]).Stereo.IsUnspecified() {
				return carriers, elev, false
			}
			carriers[n] = w
			elev[n] = p.model.Elevation(s, end, bonds[i])
			wBonds := s.BondsOf(w)
			for j, x := range s.Neighbors(w) {
				if s.Atom(x).AtomicNumber == 1 {
					sums[side]--
					continue
				}
				if elev[n] == 0 && s.Bond(wBonds[j]).Stereo.IsWedged() {
					elev[n] = p.model.Elevation(s, w, wBonds[j])
				}
			}
			n++
		}
	}
	if n != 4 || !orthoHindered(sums) {
		return carriers, elev, false
	}

	return carriers, elev, true
}

func (p *Perceiver) degreeSum(v int) int {
	sum := 0
	for _, w := range p.s.Neighbors(v) {
		sum += p.s.Degree(w)
	}

	return sum
}

func windingOf(par int) Winding {
	if par > 0 {
		return Anticlockwise
	}

	return Clockwise
}

func axialOf(par int) Axial {
	if par > 0 {
		return Left
	}

	return Right
}
