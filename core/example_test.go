package core_test

import (
	"fmt"

	"github.com/katalvlaran/stereo/core"
)

// ExampleMolecule builds formaldehyde and queries a snapshot.
func ExampleMolecule() {
	// 1) Build the graph.
	m := core.NewMolecule()
	c, _ := m.AddAtom("C", core.WithPoint2(0, 0))
	o, _ := m.AddAtom("O", core.WithPoint2(1.3, 0))
	_, _ = m.AddBond(c, o, core.OrderDouble)
	m.FillImplicitHydrogens()

	// 2) Read it lock-free.
	s := m.Snapshot()
	fmt.Println("atoms:", s.AtomCount(), "bonds:", s.BondCount())
	fmt.Println("C=O order:", s.BondBetween(o, c).Order)
	fmt.Println("hydrogens on C:", s.ImplicitH(c))

	// Output:
	// atoms: 2 bonds: 1
	// C=O order: double
	// hydrogens on C: 2
}
