package stereo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereo/core"
)

// captureLayoutLogs records layout diagnostics as "error: ..." and
// "warning: ..." lines for the duration of the test.
func captureLayoutLogs(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	errorf, warningf := layoutErrorf, layoutWarningf
	layoutErrorf = func(format string, args ...interface{}) {
		lines = append(lines, "error: "+fmt.Sprintf(format, args...))
	}
	layoutWarningf = func(format string, args ...interface{}) {
		lines = append(lines, "warning: "+fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { layoutErrorf, layoutWarningf = errorf, warningf })

	return &lines
}

// centre builds C0 with four substituents at the corners of a square, each
// bond carrying the given annotation.
func centre(t *testing.T, styles [4]core.BondStereo) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	_, err := m.AddAtom("C", core.WithPoint2(0, 0))
	require.NoError(t, err)
	corners := [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	for i, sym := range []string{"F", "Cl", "Br", "O"} {
		v, err := m.AddAtom(sym, core.WithPoint2(corners[i][0], corners[i][1]))
		require.NoError(t, err)
		_, err = m.AddBond(0, v, core.OrderSingle, core.WithStereo(styles[i]))
		require.NoError(t, err)
	}
	m.FillImplicitHydrogens()

	return m
}

func TestLayoutDiagnostics_InvalidWedgePatternIsError(t *testing.T) {
	lines := captureLayoutLogs(t)
	up, down := core.StereoUp, core.StereoDown

	elements, err := Perceive(centre(t, [4]core.BondStereo{up, up, down, down}), Dim2D, WithStrict())
	require.NoError(t, err)
	assert.Empty(t, elements)
	require.Len(t, *lines, 1)
	assert.Equal(t, "error: stereo: wedges around atom 0 do not describe a tetrahedral centre", (*lines)[0])
}

func TestLayoutDiagnostics_ValidPatternIsQuiet(t *testing.T) {
	lines := captureLayoutLogs(t)
	up, down := core.StereoUp, core.StereoDown

	elements, err := Perceive(centre(t, [4]core.BondStereo{up, down, up, down}), Dim2D, WithStrict())
	require.NoError(t, err)
	assert.Len(t, elements, 1)
	assert.Empty(t, *lines)
}

func TestLayoutDiagnostics_ReinterpretedHatchIsWarning(t *testing.T) {
	lines := captureLayoutLogs(t)

	// Butan-2-ol with the hatch drawn from O4, narrow end on O4.
	m := core.NewMolecule()
	pts := [][2]float64{{-1.3, -0.75}, {0, 0}, {1.3, -0.75}, {2.6, 0}, {0, 1.5}}
	for i, sym := range []string{"C", "C", "C", "C", "O"} {
		_, err := m.AddAtom(sym, core.WithPoint2(pts[i][0], pts[i][1]))
		require.NoError(t, err)
	}
	for _, b := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err := m.AddBond(b[0], b[1], core.OrderSingle)
		require.NoError(t, err)
	}
	_, err := m.AddBond(4, 1, core.OrderSingle, core.WithStereo(core.StereoDown))
	require.NoError(t, err)
	m.FillImplicitHydrogens()

	elements, err := Perceive(m, Dim2D)
	require.NoError(t, err)
	assert.Len(t, elements, 1)
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "warning: stereo: hatch bond 3 points at atom 1")
}
