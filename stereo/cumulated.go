package stereo

import "github.com/katalvlaran/stereo/core"

// CumulatedChain returns the cumulated double bonds containing bond, ordered
// along the chain starting from the end nearest bond.Begin. It returns nil
// when bond is not a double bond, when it is not cumulated with any other
// double bond, or when some atom of the chain carries more than two double
// bonds (branching makes the chain undefined).
//
// Complexity: O(k·d) for a chain of k bonds and maximum degree d.
func CumulatedChain(s *core.Snapshot, bond int) []int {
	b := s.Bond(bond)
	if b == nil || b.Order != core.OrderDouble {
		return nil
	}

	// 1) Walk outwards from both ends.
	before, ok := walkCumulated(s, b.Begin, bond)
	if !ok {
		return nil
	}
	after, ok := walkCumulated(s, b.End, bond)
	if !ok {
		return nil
	}
	if len(before)+len(after) == 0 {
		return nil
	}

	// 2) Stitch: reversed Begin side, the start bond, End side.
	chain := make([]int, 0, len(before)+len(after)+1)
	for i := len(before) - 1; i >= 0; i-- {
		chain = append(chain, before[i])
	}
	chain = append(chain, bond)

	return append(chain, after...)
}

// walkCumulated follows double bonds away from atom, having arrived via bond
// 'via'. ok is false when an atom offers more than one way on or the walk
// closes on itself.
func walkCumulated(s *core.Snapshot, atom, via int) (out []int, ok bool) {
	seen := map[int]bool{via: true}
	for {
		next := -1
		for _, bi := range s.BondsOf(atom) {
			if bi == via || s.Bond(bi).Order != core.OrderDouble {
				continue
			}
			if next >= 0 {
				return nil, false
			}
			next = bi
		}
		if next < 0 {
			return out, true
		}
		if seen[next] {
			return nil, false
		}
		seen[next] = true
		out = append(out, next)
		atom, via = s.Bond(next).Other(atom), next
	}
}

// canonicalChain is CumulatedChain oriented so the lower bond index comes
// first, which makes the chain independent of the bond it was found from.
func canonicalChain(s *core.Snapshot, bond int) []int {
	chain := CumulatedChain(s, bond)
	if len(chain) > 1 && chain[0] > chain[len(chain)-1] {
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}

	return chain
}

// chainPath lists the atoms of a chain in order: terminal, inner atoms,
// terminal. len(path) == len(chain)+1.
func chainPath(s *core.Snapshot, chain []int) []int {
	first := s.Bond(chain[0])
	start := first.Begin
	if len(chain) > 1 && s.Bond(chain[1]).Contains(start) {
		start = first.End
	}
	path := make([]int, 0, len(chain)+1)
	path = append(path, start)
	cur := start
	for _, bi := range chain {
		cur = s.Bond(bi).Other(cur)
		path = append(path, cur)
	}

	return path
}
