// File: elements.go
// Role: Element symbol lookup and default-valence implicit hydrogen filling.

package core

// atomicNumbers maps element symbols to atomic numbers. Symbols outside the
// table (pseudo atoms, R groups) map to 0.
var atomicNumbers = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8,
	"F": 9, "Ne": 10, "Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15,
	"S": 16, "Cl": 17, "Ar": 18, "K": 19, "Ca": 20, "Fe": 26, "Cu": 29,
	"Zn": 30, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Sn": 50, "Sb": 51,
	"Te": 52, "I": 53, "Pt": 78,
	"D": 1, "T": 1,
}

// defaultValence is the neutral valence used when filling implicit hydrogens.
var defaultValence = map[int]int{
	5: 3, 6: 4, 7: 3, 8: 2, 9: 1, 14: 4, 15: 3, 16: 2, 17: 1, 32: 4,
	33: 3, 34: 2, 35: 1, 52: 2, 53: 1,
}

// AtomicNumber returns the atomic number of an element symbol, or 0 when the
// symbol is not a known element.
func AtomicNumber(symbol string) int {
	return atomicNumbers[symbol]
}

// FillImplicitHydrogens assigns implicit hydrogens to every atom whose count is
// still unknown (ImplicitH < 0).
//
// The count is the default valence of the element minus the bond order sum,
// adjusted for formal charge: N, P and As gain a bond when positive, carbon loses
// one for either sign, everything else loses |charge|. Aromatic bonds count one
// and a half each, rounded down over the atom. Atoms without a default valence
// get zero.
//
// Complexity: O(V + E).
func (m *Molecule) FillImplicitHydrogens() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.g.atoms {
		a := &m.g.atoms[i]
		if a.ImplicitH >= 0 {
			continue
		}

		// 1) Default valence for the element.
		valence, ok := defaultValence[a.AtomicNumber]
		if !ok {
			a.ImplicitH = 0
			continue
		}

		// 2) Charge adjustment.
		switch {
		case a.Charge > 0 && (a.AtomicNumber == 7 || a.AtomicNumber == 15 || a.AtomicNumber == 33):
			valence += a.Charge
		case a.Charge != 0 && a.AtomicNumber == 6:
			valence--
		case a.Charge != 0:
			valence -= abs(a.Charge)
		}

		// 3) Subtract what the explicit bonds already use.
		used, aromatic := 0, 0
		for _, bi := range m.g.adjBonds[i] {
			if o := m.g.bonds[bi].Order; o == OrderAromatic {
				aromatic++
			} else {
				used += o.Valence()
			}
		}
		used += aromatic * 3 / 2
		a.ImplicitH = max(0, valence-used)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
