package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereo/core"
)

// ethanol builds C-C-O without hydrogens.
func ethanol(t *testing.T) (*core.Molecule, [3]int) {
	t.Helper()
	m := core.NewMolecule()
	var ids [3]int
	var err error
	for i, sym := range []string{"C", "C", "O"} {
		ids[i], err = m.AddAtom(sym, core.WithPoint2(float64(i), 0))
		require.NoError(t, err)
	}
	_, err = m.AddBond(ids[0], ids[1], core.OrderSingle)
	require.NoError(t, err)
	_, err = m.AddBond(ids[1], ids[2], core.OrderSingle, core.WithStereo(core.StereoUp))
	require.NoError(t, err)

	return m, ids
}

func TestAddAtom_Validation(t *testing.T) {
	m := core.NewMolecule()
	_, err := m.AddAtom("  ")
	assert.ErrorIs(t, err, core.ErrEmptySymbol)

	i, err := m.AddAtom(" Cl ", core.WithCharge(-1))
	require.NoError(t, err)
	a, err := m.Atom(i)
	require.NoError(t, err)
	assert.Equal(t, "Cl", a.Symbol)
	assert.Equal(t, 17, a.AtomicNumber)
	assert.Equal(t, -1, a.Charge)
	assert.Equal(t, -1, a.ImplicitH, "implicit hydrogens start unknown")
	assert.Nil(t, a.Point2)

	_, err = m.Atom(5)
	assert.ErrorIs(t, err, core.ErrAtomNotFound)
}

func TestAddBond_Validation(t *testing.T) {
	m, ids := ethanol(t)

	_, err := m.AddBond(ids[0], ids[0], core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = m.AddBond(ids[1], ids[0], core.OrderDouble)
	assert.ErrorIs(t, err, core.ErrMultiBondNotAllowed)

	_, err = m.AddBond(ids[0], 42, core.OrderSingle)
	assert.ErrorIs(t, err, core.ErrAtomNotFound)
}

func TestBondLookup_Symmetric(t *testing.T) {
	m, ids := ethanol(t)
	s := m.Snapshot()

	assert.Equal(t, 1, s.BondIndex(ids[1], ids[2]))
	assert.Equal(t, 1, s.BondIndex(ids[2], ids[1]))
	assert.Equal(t, -1, s.BondIndex(ids[0], ids[2]))
	assert.Nil(t, s.BondBetween(ids[0], ids[2]))

	b := s.BondBetween(ids[2], ids[1])
	require.NotNil(t, b)
	assert.Equal(t, ids[1], b.Begin, "begin/end order is preserved")
	assert.Equal(t, ids[2], b.End)
	assert.Equal(t, core.StereoUp, b.Stereo)
	assert.Equal(t, ids[2], b.Other(ids[1]))
	assert.Equal(t, -1, b.Other(ids[0]))

	assert.Equal(t, []int{ids[0], ids[2]}, s.Neighbors(ids[1]))
	assert.Equal(t, []int{0, 1}, s.BondsOf(ids[1]))
	assert.Equal(t, 2, s.Degree(ids[1]))
	assert.Equal(t, 0, s.Degree(99))

	mb, err := m.BondBetween(ids[2], ids[1])
	require.NoError(t, err)
	assert.Equal(t, 1, mb.Index)
	_, err = m.BondBetween(ids[0], ids[2])
	assert.ErrorIs(t, err, core.ErrBondNotFound)
}

func TestShared(t *testing.T) {
	a := core.Bond{Begin: 0, End: 1}
	b := core.Bond{Begin: 2, End: 1}
	c := core.Bond{Begin: 3, End: 4}
	assert.Equal(t, 1, core.Shared(a, b))
	assert.Equal(t, -1, core.Shared(a, c))
}

func TestSnapshot_Isolated(t *testing.T) {
	m, ids := ethanol(t)
	s := m.Snapshot()

	n, err := m.AddAtom("N")
	require.NoError(t, err)
	_, err = m.AddBond(ids[2], n, core.OrderSingle)
	require.NoError(t, err)
	require.NoError(t, m.SetBondStereo(0, core.StereoDown))

	assert.Equal(t, 3, s.AtomCount())
	assert.Equal(t, 2, s.BondCount())
	assert.Equal(t, core.StereoNone, s.Bond(0).Stereo)
	assert.Equal(t, 1, s.Degree(ids[2]))
}

func TestSetRingMembership(t *testing.T) {
	m, _ := ethanol(t)
	s := m.Snapshot()

	assert.ErrorIs(t, s.SetRingMembership([]bool{true}, nil), core.ErrBadRingMembership)
	require.NoError(t, s.SetRingMembership([]bool{true, true, false}, []bool{true, false}))
	assert.True(t, s.Atom(0).InRing)
	assert.True(t, s.Bond(0).InRing)

	// The snapshot's flags never leak back into the molecule.
	a, err := m.Atom(0)
	require.NoError(t, err)
	assert.False(t, a.InRing)

	require.NoError(t, m.SetRingMembership([]bool{false, true, true}, []bool{false, true}))
	b, err := m.Bond(1)
	require.NoError(t, err)
	assert.True(t, b.InRing)
}

func TestFillImplicitHydrogens(t *testing.T) {
	m := core.NewMolecule()
	c1, _ := m.AddAtom("C")
	c2, _ := m.AddAtom("C")
	o, _ := m.AddAtom("O")
	n, _ := m.AddAtom("N", core.WithCharge(1))
	x, _ := m.AddAtom("R")
	fixed, _ := m.AddAtom("C", core.WithImplicitH(0))
	_, _ = m.AddBond(c1, c2, core.OrderDouble)
	_, _ = m.AddBond(c2, o, core.OrderSingle)
	_, _ = m.AddBond(c1, n, core.OrderSingle)

	m.FillImplicitHydrogens()
	s := m.Snapshot()

	assert.Equal(t, 1, s.ImplicitH(c1))    // 4 - 2 - 1
	assert.Equal(t, 1, s.ImplicitH(c2))    // 4 - 2 - 1
	assert.Equal(t, 1, s.ImplicitH(o))     // 2 - 1
	assert.Equal(t, 3, s.ImplicitH(n))     // 3 + 1 - 1
	assert.Equal(t, 0, s.ImplicitH(x))     // unknown element
	assert.Equal(t, 0, s.ImplicitH(fixed)) // declared
}

func TestFillImplicitHydrogens_Aromatic(t *testing.T) {
	m := core.NewMolecule()
	var ring [6]int
	for i := range ring {
		ring[i], _ = m.AddAtom("C")
	}
	for i := range ring {
		_, err := m.AddBond(ring[i], ring[(i+1)%6], core.OrderAromatic)
		require.NoError(t, err)
	}
	m.FillImplicitHydrogens()
	s := m.Snapshot()
	for _, a := range ring {
		assert.Equal(t, 1, s.ImplicitH(a))
	}
}

func TestClone_DeepCopy(t *testing.T) {
	m, ids := ethanol(t)
	c := m.Clone()
	_, err := c.AddAtom("S")
	require.NoError(t, err)
	require.NoError(t, c.SetBondStereo(1, core.StereoNone))

	assert.Equal(t, 3, m.AtomCount())
	b, err := m.Bond(1)
	require.NoError(t, err)
	assert.Equal(t, core.StereoUp, b.Stereo)

	back := m.Snapshot().Molecule()
	nb, err := back.Neighbors(ids[1])
	require.NoError(t, err)
	assert.Equal(t, []int{ids[0], ids[2]}, nb)
}

func TestMolecule_ConcurrentReaders(t *testing.T) {
	m, _ := ethanol(t)
	var wg sync.WaitGroup
	counts := make([]int, 32)
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = m.AddAtom("C")
			}
			counts[i] = m.Snapshot().AtomCount()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 3+16, m.AtomCount())
	for _, c := range counts {
		assert.GreaterOrEqual(t, c, 3)
	}
}

func TestStereoPredicates(t *testing.T) {
	assert.True(t, core.StereoUpOrDown.IsUnspecified())
	assert.True(t, core.StereoEOrZ.IsUnspecified())
	assert.False(t, core.StereoUp.IsUnspecified())
	assert.True(t, core.StereoDownInverted.IsWedged())
	assert.True(t, core.StereoDownInverted.IsInverted())
	assert.False(t, core.StereoDown.IsInverted())
	assert.Equal(t, "up-inverted", core.StereoUpInverted.String())
	assert.Equal(t, "double", core.OrderDouble.String())
	assert.Equal(t, 3, core.OrderTriple.Valence())
}
