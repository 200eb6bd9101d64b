// File: doublebond.go
// Role: Double bond and extended cis/trans creation, shared by both coordinate models.
// Determinism:
//   - Reference substituents are the first in adjacency order.
// Concurrency:
//   - Single run only.

package stereo

// doubleBond perceives u=v. Each end needs one or two substituents besides
// its partner; the first substituent of each end is the reference carrier.
//
// Implementation:
//   - Stage 1: gate on unspecified markers and neighbour counts.
//   - Stage 2: move the partner to the back of each neighbour list.
//   - Stage 3: reject wavy substituent bonds and a crossed double bond.
//   - Stage 4: parity from the coordinate model; zero rejects.
func (p *Perceiver) doubleBond(u, v int) Element {
	s := p.s
	bond := s.BondIndex(u, v)

	// 1) Gates.
	if unspecifiedParity(s, u) || unspecifiedParity(s, v) {
		return rejectBond(bond, "configuration marked unspecified")
	}
	us := append([]int(nil), s.Neighbors(u)...)
	vs := append([]int(nil), s.Neighbors(v)...)
	if len(us) < 2 || len(us) > 3 || len(vs) < 2 || len(vs) > 3 {
		return rejectBond(bond, "each end needs 2 or 3 neighbours")
	}

	// 2) Partner last.
	moveToBack(us, v)
	moveToBack(vs, u)
	uSubs := [2]int{us[0], u}
	if len(us) > 2 {
		uSubs[1] = us[1]
	}
	vSubs := [2]int{vs[0], v}
	if len(vs) > 2 {
		vSubs[1] = vs[1]
	}

	// 3) Annotations.
	if s.Bond(bond).Stereo.IsUnspecified() {
		return rejectBond(bond, "crossed double bond")
	}
	for _, pair := range [4][2]int{{u, us[0]}, {u, us[1]}, {v, vs[0]}, {v, vs[1]}} {
		if s.BondBetween(pair[0], pair[1]).Stereo.IsUnspecified() {
			return rejectBond(bond, "wavy substituent bond")
		}
	}

	// 4) Parity.
	par := p.model.DoubleBondParity(s, u, v, uSubs, vSubs)
	if par == 0 {
		return rejectBond(bond, "parity below threshold")
	}
	conf := Together
	if par > 0 {
		conf = Opposite
	}

	return DoubleBond{
		Bond:         bond,
		Ends:         [2]int{u, v},
		Carriers:     [2]int{s.BondIndex(u, us[0]), s.BondIndex(v, vs[0])},
		Conformation: conf,
	}
}

// moveToBack moves the first occurrence of x to the end of xs, keeping the
// order of the rest.
func moveToBack(xs []int, x int) {
	for i, y := range xs {
		if y == x {
			copy(xs[i:], xs[i+1:])
			xs[len(xs)-1] = x
			return
		}
	}
}

// extendedCisTrans perceives the middle bond of an odd cumulated chain from
// the directions of one substituent at each terminal: a negative dot product
// is opposite, anything else together.
func (p *Perceiver) extendedCisTrans(chain, path []int) Element {
	s := p.s
	mid := len(chain) / 2
	focus := chain[mid]
	ends := [2]int{path[0], path[len(path)-1]}
	outer := [2]int{chain[0], chain[len(chain)-1]}
	// Ends follow the direction of the focus bond.
	if s.Bond(focus).Begin == path[mid+1] {
		ends[0], ends[1] = ends[1], ends[0]
		outer[0], outer[1] = outer[1], outer[0]
	}

	if unspecifiedParity(s, ends[0]) || unspecifiedParity(s, ends[1]) {
		return rejectBond(focus, "configuration marked unspecified")
	}
	if !p.terminalStereocentres(ends) {
		return rejectBond(focus, "cumulene terminal is not a stereocentre")
	}
	if s.Bond(focus).Stereo.IsUnspecified() {
		return rejectBond(focus, "crossed double bond")
	}

	var carriers, subs [2]int
	for k, t := range ends {
		carriers[k] = -1
		for _, bi := range s.BondsOf(t) {
			if bi != outer[k] {
				carriers[k] = bi
				break
			}
		}
		if carriers[k] < 0 {
			return rejectBond(focus, "cumulene terminal has no substituent")
		}
		if s.Bond(carriers[k]).Stereo.IsUnspecified() {
			return rejectBond(focus, "wavy substituent bond")
		}
		subs[k] = s.Bond(carriers[k]).Other(t)
	}

	cos, ok := p.model.UnitDot(s, ends[0], subs[0], ends[1], subs[1])
	if !ok {
		return rejectBond(focus, "missing coordinates")
	}
	conf := Together
	if cos < 0 {
		conf = Opposite
	}

	return ExtendedCisTrans{Bond: focus, Ends: ends, Carriers: carriers, Conformation: conf}
}
