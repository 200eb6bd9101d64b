package parity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
	"github.com/katalvlaran/stereo/parity"
)

type p2 = geometry.Point2
type p3 = geometry.Point3

func TestTriangle_ThresholdBoundary(t *testing.T) {
	origin, right := p2{}, p2{X: 1}

	assert.Equal(t, 0, parity.Triangle(origin, right, p2{Y: 0.1}), "exactly at the threshold is rejected")
	assert.Equal(t, 0, parity.Triangle(origin, right, p2{Y: -0.05}))
	assert.Equal(t, 1, parity.Triangle(origin, right, p2{Y: 0.1000001}), "epsilon above is accepted")
	assert.Equal(t, -1, parity.Triangle(origin, right, p2{Y: -0.1000001}))
	assert.Equal(t, 1, parity.Triangle(origin, right, p2{Y: 2}))
}

// trigonal is a three-neighbour layout around the origin; the fourth slot is
// the centre itself (implicit hydrogen).
var trigonal = [4]p2{{X: 0, Y: 1}, {X: -0.866, Y: -0.5}, {X: 0.866, Y: -0.5}, {}}

func TestTetrahedral2D_Elevations(t *testing.T) {
	assert.Equal(t, 1, parity.Tetrahedral2D(p2{}, trigonal, [4]int{1, 0, 0, 0}))
	assert.Equal(t, -1, parity.Tetrahedral2D(p2{}, trigonal, [4]int{-1, 0, 0, 0}))
	assert.Equal(t, 0, parity.Tetrahedral2D(p2{}, trigonal, [4]int{}), "all planar carries no signal")
}

func TestTetrahedral2D_ThresholdBoundary(t *testing.T) {
	// With only slot 0 raised and slot 3 on the centre, the volume is the
	// shear of the unit vectors in slots 1 and 2, i.e. their sine.
	layout := func(y float64) [4]p2 {
		return [4]p2{{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0.995, Y: y}, {}}
	}
	up, down := [4]int{1, 0, 0, 0}, [4]int{-1, 0, 0, 0}

	assert.Equal(t, 0, parity.Tetrahedral2D(p2{}, layout(0.0999), up), "just below the threshold is rejected")
	assert.Equal(t, 0, parity.Tetrahedral2D(p2{}, layout(0.0999), down))
	assert.Equal(t, 1, parity.Tetrahedral2D(p2{}, layout(0.1001), up), "just above is accepted")
	assert.Equal(t, -1, parity.Tetrahedral2D(p2{}, layout(0.1001), down))
}

func TestTetrahedral2D_SwapFlipsWinding(t *testing.T) {
	swapped := trigonal
	swapped[1], swapped[2] = swapped[2], swapped[1]
	elev := [4]int{1, 0, 0, 0}

	assert.Equal(t,
		-parity.Tetrahedral2D(p2{}, trigonal, elev),
		parity.Tetrahedral2D(p2{}, swapped, elev))
}

func TestTetrahedral2D_ScaleInvariant(t *testing.T) {
	far := trigonal
	for i := range far {
		far[i] = far[i].Scale(40)
	}
	elev := [4]int{0, 1, 0, 0}

	assert.Equal(t, parity.Tetrahedral2D(p2{}, trigonal, elev), parity.Tetrahedral2D(p2{}, far, elev))
}

func TestTetrahedral2D_Deterministic(t *testing.T) {
	nbrs := [4]p2{{X: 1, Y: 0.2}, {X: -0.3, Y: 1}, {X: -1, Y: -0.4}, {X: 0.2, Y: -1}}
	elev := [4]int{1, 0, -1, 0}
	first := parity.Tetrahedral2D(p2{}, nbrs, elev)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, parity.Tetrahedral2D(p2{}, nbrs, elev))
	}
}

func TestTetrahedral3D_InversionFlips(t *testing.T) {
	pts := [4]p3{{Z: 1}, {X: 1}, {Y: 1}, {}}
	assert.Equal(t, 1, parity.Tetrahedral3D(pts))

	var mirrored [4]p3
	for i, p := range pts {
		mirrored[i] = p.Scale(-1)
	}
	assert.Equal(t, -1, parity.Tetrahedral3D(mirrored))

	flat := [4]p3{{X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	assert.Equal(t, 0, parity.Tetrahedral3D(flat))
}

func TestDoubleBond2D(t *testing.T) {
	u, v := p2{}, p2{X: 1}
	x := p2{X: -0.5, Y: 0.87}
	trans := p2{X: 1.5, Y: -0.87}
	cis := p2{X: 1.5, Y: 0.87}

	assert.Equal(t, 1, parity.DoubleBond2D([3]p2{x, u, v}, [3]p2{trans, v, u}), "opposite")
	assert.Equal(t, -1, parity.DoubleBond2D([3]p2{x, u, v}, [3]p2{cis, v, u}), "together")

	linear := p2{X: 2}
	assert.Equal(t, 0, parity.DoubleBond2D([3]p2{x, u, v}, [3]p2{linear, v, u}))
}

func TestDoubleBond3D(t *testing.T) {
	u, v := p3{}, p3{X: 1}
	x := p3{X: -0.5, Y: 0.87}

	assert.Equal(t, 1, parity.DoubleBond3D(u, v, x, p3{X: 1.5, Y: -0.87}), "opposite")
	assert.Equal(t, -1, parity.DoubleBond3D(u, v, x, p3{X: 1.5, Y: 0.87}), "together")
	// Rotating the whole frame out of the xy plane does not change the answer.
	assert.Equal(t, 1, parity.DoubleBond3D(u, v, p3{X: -0.5, Z: 0.87}, p3{X: 1.5, Z: -0.87}))
}

func TestElevation(t *testing.T) {
	cases := []struct {
		stereo  core.BondStereo
		atBegin bool
		want    int
	}{
		{core.StereoUp, true, 1},
		{core.StereoUp, false, 0},
		{core.StereoDown, true, -1},
		{core.StereoDown, false, 0},
		{core.StereoUpInverted, false, 1},
		{core.StereoUpInverted, true, 0},
		{core.StereoDownInverted, false, -1},
		{core.StereoDownInverted, true, 0},
		{core.StereoUpOrDown, true, 0},
		{core.StereoNone, true, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parity.Elevation(tc.stereo, tc.atBegin), "%s begin=%v", tc.stereo, tc.atBegin)
	}
}
