package stereocenters_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/stereocenters"
)

// bond is {begin, end, order}.
type bond [3]int

// classify builds a hydrogen-suppressed molecule, fills implicit hydrogens and
// returns a classifier over a ring-marked snapshot.
func classify(t *testing.T, symbols []string, bonds []bond) *stereocenters.Classifier {
	t.Helper()
	m := core.NewMolecule()
	for _, sym := range symbols {
		_, err := m.AddAtom(sym)
		require.NoError(t, err)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b[0], b[1], core.Order(b[2]))
		require.NoError(t, err)
	}
	m.FillImplicitHydrogens()
	c, err := stereocenters.NewWithRings(m.Snapshot())
	require.NoError(t, err)

	return c
}

const (
	single = int(core.OrderSingle)
	double = int(core.OrderDouble)
)

func TestClassifier_Butan2ol(t *testing.T) {
	c := classify(t, []string{"C", "C", "C", "C", "O"},
		[]bond{{0, 1, single}, {1, 2, single}, {2, 3, single}, {1, 4, single}})

	assert.Equal(t, stereocenters.Tetracoordinate, c.ElementType(1))
	assert.Equal(t, stereocenters.Potential, c.StereocenterType(1))
	assert.Equal(t, stereocenters.Non, c.StereocenterType(0), "methyl carries three hydrogens")
	assert.Equal(t, stereocenters.Other, c.ElementType(4))

	c.CheckSymmetry()
	assert.True(t, c.SymmetryChecked())
	assert.Equal(t, stereocenters.True, c.StereocenterType(1))
	assert.True(t, c.IsStereocenter(1))
	assert.False(t, c.IsStereocenter(2))
}

func TestClassifier_Propan2ol(t *testing.T) {
	c := classify(t, []string{"C", "C", "C", "O"},
		[]bond{{0, 1, single}, {1, 2, single}, {1, 3, single}})

	assert.True(t, c.IsStereocenter(1), "before symmetry checking geometry alone counts")
	c.CheckSymmetry()
	assert.False(t, c.IsStereocenter(1), "two equivalent methyls")
	assert.Equal(t, stereocenters.Non, c.StereocenterType(1))
}

func TestClassifier_CheckSymmetryIdempotent(t *testing.T) {
	c := classify(t, []string{"C", "C", "C", "C", "O"},
		[]bond{{0, 1, single}, {1, 2, single}, {2, 3, single}, {1, 4, single}})
	c.CheckSymmetry()
	first := c.StereocenterType(1)
	c.CheckSymmetry()
	assert.Equal(t, first, c.StereocenterType(1))
}

func cyclohexane(extra ...bond) []bond {
	bs := []bond{{0, 1, single}, {1, 2, single}, {2, 3, single}, {3, 4, single}, {4, 5, single}, {5, 0, single}}

	return append(bs, extra...)
}

func TestClassifier_ParaCentres(t *testing.T) {
	t.Run("1,4-dimethylcyclohexane", func(t *testing.T) {
		c := classify(t, []string{"C", "C", "C", "C", "C", "C", "C", "C"},
			cyclohexane(bond{0, 6, single}, bond{3, 7, single}))
		c.CheckSymmetry()
		assert.Equal(t, stereocenters.True, c.StereocenterType(0))
		assert.Equal(t, stereocenters.True, c.StereocenterType(3))
	})
	t.Run("methylcyclohexane", func(t *testing.T) {
		c := classify(t, []string{"C", "C", "C", "C", "C", "C", "C"},
			cyclohexane(bond{0, 6, single}))
		c.CheckSymmetry()
		assert.Equal(t, stereocenters.Non, c.StereocenterType(0))
	})
}

func TestClassifier_DoubleBondEnds(t *testing.T) {
	t.Run("but-2-ene", func(t *testing.T) {
		c := classify(t, []string{"C", "C", "C", "C"},
			[]bond{{0, 1, single}, {1, 2, double}, {2, 3, single}})
		assert.Equal(t, stereocenters.Tricoordinate, c.ElementType(1))
		assert.Equal(t, stereocenters.Tricoordinate, c.ElementType(2))
		c.CheckSymmetry()
		assert.True(t, c.IsStereocenter(1))
		assert.True(t, c.IsStereocenter(2))
	})
	t.Run("isobutene", func(t *testing.T) {
		c := classify(t, []string{"C", "C", "C", "C"},
			[]bond{{0, 1, double}, {1, 2, single}, {1, 3, single}})
		assert.Equal(t, stereocenters.Non, c.StereocenterType(0), "=CH2")
		c.CheckSymmetry()
		assert.False(t, c.IsStereocenter(1), "two equivalent methyls")
	})
	t.Run("formic acid", func(t *testing.T) {
		c := classify(t, []string{"C", "O", "O"},
			[]bond{{0, 1, double}, {0, 2, single}})
		assert.Equal(t, stereocenters.Tricoordinate, c.ElementType(0))
		assert.Equal(t, stereocenters.Other, c.ElementType(1))
		assert.Equal(t, stereocenters.Other, c.ElementType(2))
	})
	t.Run("imine", func(t *testing.T) {
		c := classify(t, []string{"C", "C", "N", "C"},
			[]bond{{0, 1, single}, {1, 2, double}, {2, 3, single}})
		assert.Equal(t, stereocenters.Tricoordinate, c.ElementType(2))
		c.CheckSymmetry()
		assert.True(t, c.IsStereocenter(2))
	})
}

func TestClassifier_Allene(t *testing.T) {
	c := classify(t, []string{"C", "C", "C", "C", "C"},
		[]bond{{0, 1, single}, {1, 2, double}, {2, 3, double}, {3, 4, single}})
	assert.Equal(t, stereocenters.Bicoordinate, c.ElementType(2))
	assert.Equal(t, stereocenters.Potential, c.StereocenterType(2))
	c.CheckSymmetry()
	assert.Equal(t, stereocenters.True, c.StereocenterType(2))

	// Buta-1,2-diene: one terminal is =CH2, so the axis is not stereogenic.
	c = classify(t, []string{"C", "C", "C", "C"},
		[]bond{{0, 1, double}, {1, 2, double}, {2, 3, single}})
	c.CheckSymmetry()
	assert.Equal(t, stereocenters.Non, c.StereocenterType(1))
}

func TestClassifier_LonePairCentres(t *testing.T) {
	// Methyl ethyl sulfoxide.
	c := classify(t, []string{"C", "S", "O", "C", "C"},
		[]bond{{0, 1, single}, {1, 2, double}, {1, 3, single}, {3, 4, single}})
	assert.Equal(t, stereocenters.Tetracoordinate, c.ElementType(1))
	c.CheckSymmetry()
	assert.True(t, c.IsStereocenter(1))

	// Plain amines invert quickly and are not classified.
	c = classify(t, []string{"C", "N", "C", "C"},
		[]bond{{0, 1, single}, {1, 2, single}, {2, 3, single}})
	assert.Equal(t, stereocenters.Other, c.ElementType(1))
}

func TestClassifier_OutOfRange(t *testing.T) {
	c := classify(t, []string{"C"}, nil)
	assert.Equal(t, stereocenters.Other, c.ElementType(-1))
	assert.Equal(t, stereocenters.Non, c.StereocenterType(7))
	assert.False(t, c.IsStereocenter(7))
}

func TestSameBranch(t *testing.T) {
	// 3-methylhexane around C3: propyl vs ethyl differ only two bonds out.
	c := classify(t, []string{"C", "C", "C", "C", "C", "C", "C"},
		[]bond{{0, 1, single}, {1, 2, single}, {2, 3, single}, {3, 4, single}, {4, 5, single}, {2, 6, single}})
	s12, s23, s26 := 1, 2, 5
	assert.False(t, c.SameBranch(2, s12, s23))
	assert.False(t, c.SameBranch(2, s12, s26))
	c.CheckSymmetry()
	assert.True(t, c.IsStereocenter(2))
}

func TestSameBranch_RingMirror(t *testing.T) {
	c := classify(t, []string{"C", "C", "C", "C", "C", "C", "C", "C"},
		cyclohexane(bond{0, 6, single}, bond{3, 7, single}))
	// Bonds 0 (0-1) and 5 (5-0) leave C0 into mirror-image halves of the ring.
	assert.True(t, c.SameBranch(0, 0, 5))
	assert.False(t, c.SameBranch(0, 0, 6), "ring vs methyl")
	assert.False(t, c.SameBranch(0, 0, 2), "bond 2 does not touch C0")
	assert.False(t, c.SameBranch(0, 0, 99))
}

// ladderane builds two carbon rails of length k joined by a rung at every
// position: a saturated polycycle whose rings all share edges.
func ladderane(k int) ([]string, []bond) {
	symbols := make([]string, 2*k)
	for i := range symbols {
		symbols[i] = "C"
	}
	var bonds []bond
	for i := 0; i < k; i++ {
		if i+1 < k {
			bonds = append(bonds, bond{i, i + 1, single}, bond{k + i, k + i + 1, single})
		}
		bonds = append(bonds, bond{i, k + i, single})
	}

	return symbols, bonds
}

// TestCheckSymmetry_Polycyclic keeps symmetry checking near-linear on fused
// ring systems, where a branch-by-branch walk revisits the same rings.
func TestCheckSymmetry_Polycyclic(t *testing.T) {
	for _, k := range []int{10, 125, 1000} {
		symbols, bonds := ladderane(k)
		c := classify(t, symbols, bonds)

		start := time.Now()
		c.CheckSymmetry()
		assert.Less(t, time.Since(start), 2*time.Second, "atoms=%d", 2*k)

		assert.True(t, c.SymmetryChecked())
		assert.Equal(t, stereocenters.Non, c.StereocenterType(0), "corner CH2")
		assert.Equal(t, stereocenters.Tetracoordinate, c.ElementType(1))
	}
}
