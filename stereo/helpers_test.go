package stereo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/stereo"
	"github.com/katalvlaran/stereo/stereocenters"
)

// atom is an element symbol with 2 (2D) or 3 (3D) coordinates.
type atom struct {
	sym string
	p   []float64
}

// bond is begin, end, order and an optional annotation.
type bond struct {
	a, b   int
	order  core.Order
	stereo core.BondStereo
}

func single(a, b int) bond { return bond{a: a, b: b, order: core.OrderSingle} }
func double(a, b int) bond { return bond{a: a, b: b, order: core.OrderDouble} }
func wedge(a, b int, s core.BondStereo) bond {
	return bond{a: a, b: b, order: core.OrderSingle, stereo: s}
}

// build assembles a hydrogen-suppressed molecule and fills implicit hydrogens.
func build(t *testing.T, atoms []atom, bonds []bond) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	for _, a := range atoms {
		var opts []core.AtomOption
		switch len(a.p) {
		case 2:
			opts = append(opts, core.WithPoint2(a.p[0], a.p[1]))
		case 3:
			opts = append(opts, core.WithPoint3(a.p[0], a.p[1], a.p[2]))
		}
		_, err := m.AddAtom(a.sym, opts...)
		require.NoError(t, err)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b.a, b.b, b.order, core.WithStereo(b.stereo))
		require.NoError(t, err)
	}
	m.FillImplicitHydrogens()

	return m
}

func perceive(t *testing.T, m *core.Molecule, d stereo.Dimension, opts ...stereo.Option) []stereo.Element {
	t.Helper()
	elements, err := stereo.Perceive(m, d, opts...)
	require.NoError(t, err)

	return elements
}

// countingOracle is the default classifier with CheckSymmetry calls counted.
type countingOracle struct {
	*stereocenters.Classifier
	checks int
}

func (o *countingOracle) CheckSymmetry() {
	o.checks++
	o.Classifier.CheckSymmetry()
}

// withCounter installs a countingOracle and hands it back through *out.
func withCounter(out **countingOracle) stereo.Option {
	return stereo.WithOracle(func(s *core.Snapshot) stereo.Oracle {
		*out = &countingOracle{Classifier: stereocenters.New(s)}
		return *out
	})
}

// butan2ol: C1 is the centre, O4 above or below the plane via bond 1->4.
func butan2ol(t *testing.T, s core.BondStereo) *core.Molecule {
	return build(t,
		[]atom{
			{"C", []float64{-1.3, -0.75}},
			{"C", []float64{0, 0}},
			{"C", []float64{1.3, -0.75}},
			{"C", []float64{2.6, 0}},
			{"O", []float64{0, 1.5}},
		},
		[]bond{single(0, 1), single(1, 2), single(2, 3), wedge(1, 4, s)},
	)
}

// butene is but-2-ene; cis puts both methyls above the double bond.
func butene(t *testing.T, cis bool) *core.Molecule {
	y := -1.1
	if cis {
		y = 1.1
	}

	return build(t,
		[]atom{
			{"C", []float64{-0.65, 1.1}},
			{"C", []float64{0, 0}},
			{"C", []float64{1.3, 0}},
			{"C", []float64{1.95, y}},
		},
		[]bond{single(0, 1), double(1, 2), single(2, 3)},
	)
}

// biaryl builds a Kekulé biphenyl with the axis on atoms 0 and 6 (bond 12).
// orthoA/orthoB add methyls next to the axis on ring A/B; the first methyl
// bond (ring A before ring B) carries wedge s.
func biaryl(t *testing.T, orthoA, orthoB bool, s core.BondStereo) *core.Molecule {
	var ortho [4]string
	if orthoA {
		ortho[0], ortho[1] = "C", "C"
	}
	if orthoB {
		ortho[2], ortho[3] = "C", "C"
	}

	return biarylWith(t, ortho, s, stereo.Dim2D)
}

// biarylWith places ortho substituents ("" for none) on atoms 1, 5, 7 and 11
// and wedges the first substituent bond with s. In 3D ring B is turned
// perpendicular to ring A about the axis; twist flips it to the mirror image.
func biarylWith(t *testing.T, ortho [4]string, s core.BondStereo, d stereo.Dimension, twist ...float64) *core.Molecule {
	z := 1.0
	if len(twist) > 0 {
		z = twist[0]
	}
	pos := func(ringB bool, x, y float64) []float64 {
		switch {
		case d == stereo.Dim2D:
			return []float64{x, y}
		case ringB:
			return []float64{x, 0, y * z}
		default:
			return []float64{x, y, 0}
		}
	}
	ring := [6][2]float64{{0.5, 0}, {1, 0.866}, {2, 0.866}, {2.5, 0}, {2, -0.866}, {1, -0.866}}
	var atoms []atom
	for _, ringB := range []bool{false, true} {
		sx := -1.0
		if ringB {
			sx = 1
		}
		for _, r := range ring {
			atoms = append(atoms, atom{"C", pos(ringB, sx*r[0], r[1])})
		}
	}
	var bonds []bond
	for _, off := range []int{0, 6} {
		bonds = append(bonds,
			double(off, off+1), single(off+1, off+2), double(off+2, off+3),
			single(off+3, off+4), double(off+4, off+5), single(off+5, off))
	}
	bonds = append(bonds, single(0, 6))

	wedged := false
	for k, at := range [4]int{1, 5, 7, 11} {
		if ortho[k] == "" {
			continue
		}
		sx, sy := -0.5, 1.732
		if k >= 2 {
			sx = 0.5
		}
		if k%2 == 1 {
			sy = -sy
		}
		atoms = append(atoms, atom{ortho[k], pos(k >= 2, sx, sy)})
		b := single(at, len(atoms)-1)
		if !wedged {
			b.stereo, wedged = s, true
		}
		bonds = append(bonds, b)
	}

	return build(t, atoms, bonds)
}
