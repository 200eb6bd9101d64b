package depict

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
	"github.com/katalvlaran/stereo/stereo"
)

// butan2ol has a bold wedge from C1 to O4.
func butan2ol(t *testing.T) *core.Molecule {
	t.Helper()
	m := core.NewMolecule()
	for _, p := range [][2]float64{{-1.3, -0.75}, {0, 0}, {1.3, -0.75}, {2.6, 0}} {
		_, err := m.AddAtom("C", core.WithPoint2(p[0], p[1]))
		require.NoError(t, err)
	}
	_, err := m.AddAtom("O", core.WithPoint2(0, 1.5))
	require.NoError(t, err)
	for _, b := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err := m.AddBond(b[0], b[1], core.OrderSingle)
		require.NoError(t, err)
	}
	_, err = m.AddBond(1, 4, core.OrderSingle, core.WithStereo(core.StereoUp))
	require.NoError(t, err)
	m.FillImplicitHydrogens()

	return m
}

func dark(img image.Image, p geometry.Point2) bool {
	r, g, b, _ := img.At(int(p.X), int(p.Y)).RGBA()

	return r < 0x8000 && g < 0x8000 && b < 0x8000
}

func TestFrame(t *testing.T) {
	opts := DefaultOptions()
	pts := []geometry.Point2{{X: -1.3, Y: -0.75}, {X: 2.6, Y: 0}, {X: 0, Y: 1.5}}
	f := newFrame(pts, opts)

	assert.Equal(t, opts.Size, f.width)
	assert.Less(t, f.height, opts.Size)

	// Extremes land on the margins; y is flipped.
	assert.InDelta(t, opts.Margin, f.point(pts[0]).X, 1e-9)
	assert.InDelta(t, float64(opts.Size)-opts.Margin, f.point(pts[1]).X, 1e-9)
	assert.InDelta(t, opts.Margin, f.point(pts[2]).Y, 1e-9)

	single := newFrame([]geometry.Point2{{X: 3, Y: 3}}, opts)
	assert.Equal(t, int(2*opts.Margin), single.width)
	assert.InDelta(t, opts.Margin, single.point(geometry.Point2{X: 3, Y: 3}).X, 1e-9)
}

func TestBoxClip(t *testing.T) {
	p := geometry.Point2{X: 10, Y: 10}
	q := geometry.Point2{X: 30, Y: 10}

	assert.Equal(t, p, box{}.clip(p, q))

	got := box{hw: 4, hh: 6}.clip(p, q)
	assert.InDelta(t, 14, got.X, 1e-9)
	assert.InDelta(t, 10, got.Y, 1e-9)

	got = box{hw: 4, hh: 3}.clip(p, geometry.Point2{X: 10, Y: 0})
	assert.InDelta(t, 10, got.X, 1e-9)
	assert.InDelta(t, 7, got.Y, 1e-9)

	// A label larger than the bond still leaves half of it.
	got = box{hw: 50, hh: 50}.clip(p, q)
	assert.InDelta(t, 20, got.X, 1e-9)
}

func TestRender_Wedge(t *testing.T) {
	m := butan2ol(t)
	opts := DefaultOptions()
	img, err := Render(m, nil, opts)
	require.NoError(t, err)
	require.Equal(t, opts.Size, img.Bounds().Dx())

	s := m.Snapshot()
	pts := make([]geometry.Point2, s.AtomCount())
	for i := range pts {
		pts[i], _ = s.Point2(i)
	}
	f := newFrame(pts, opts)

	// The filled wedge covers the middle of bond 1->4.
	mid := f.point(pts[1]).Midpoint(f.point(pts[4]))
	assert.True(t, dark(img, mid))

	// Canvas corners stay white.
	assert.False(t, dark(img, geometry.Point2{X: 1, Y: 1}))
}

func TestRender_Errors(t *testing.T) {
	opts := DefaultOptions()

	_, err := Render(nil, nil, opts)
	assert.ErrorIs(t, err, ErrEmptyMolecule)

	_, err = Render(core.NewMolecule(), nil, opts)
	assert.ErrorIs(t, err, ErrEmptyMolecule)

	m := core.NewMolecule()
	_, _ = m.AddAtom("C", core.WithPoint3(0, 0, 0))
	_, err = Render(m, nil, opts)
	assert.ErrorIs(t, err, ErrNo2DCoordinates)

	bad := opts
	bad.Size = 40
	_, err = Render(butan2ol(t), nil, bad)
	assert.ErrorIs(t, err, ErrBadOptions)

	font := opts
	font.FontPath = "does-not-exist.ttf"
	_, err = Render(butan2ol(t), nil, font)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	m := butan2ol(t)
	elements, err := stereo.Perceive(m, stereo.Dim2D)
	require.NoError(t, err)
	require.Len(t, elements, 1)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, m, elements, DefaultOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestTag(t *testing.T) {
	cases := []struct {
		e    stereo.Element
		want string
	}{
		{stereo.Tetrahedral{Winding: stereo.Clockwise}, "cw"},
		{stereo.Tetrahedral{Winding: stereo.Anticlockwise}, "acw"},
		{stereo.ExtendedTetrahedral{Winding: stereo.Clockwise}, "cw"},
		{stereo.DoubleBond{Conformation: stereo.Together}, "T"},
		{stereo.ExtendedCisTrans{Conformation: stereo.Opposite}, "O"},
		{stereo.Atropisomer{Axial: stereo.Left}, "L"},
		{stereo.Atropisomer{Axial: stereo.Right}, "R"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Tag(tc.e), "%v", tc.e)
	}
}

func TestTagPosition(t *testing.T) {
	m := butan2ol(t)
	s := m.Snapshot()
	px := []geometry.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}, {X: 10, Y: -10}}
	opts := DefaultOptions()

	_, ok := tagPosition(s, stereo.Tetrahedral{Atom: 9}, px, opts)
	assert.False(t, ok)
	_, ok = tagPosition(s, stereo.DoubleBond{Bond: 9}, px, opts)
	assert.False(t, ok)

	at, ok := tagPosition(s, stereo.DoubleBond{Bond: 1}, px, opts)
	require.True(t, ok)
	assert.InDelta(t, 15, at.X, 1e-9)
	assert.InDelta(t, tagOffset*opts.LineWidth, at.Y, 1e-9)
}
