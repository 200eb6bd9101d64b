package depict

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
)

const (
	hashStrokes = 7
	wavySteps   = 8
)

// bondGap is the spacing of multiple-bond lines and the half-width of a wedge.
func bondGap(length float64, opts Options) float64 {
	return math.Max(3*opts.LineWidth, 0.08*length)
}

// drawBond strokes one bond between the clipped endpoints.
func drawBond(dc *gg.Context, b *core.Bond, px []geometry.Point2, boxes []box, opts Options) {
	p := boxes[b.Begin].clip(px[b.Begin], px[b.End])
	q := boxes[b.End].clip(px[b.End], px[b.Begin])
	d := q.Sub(p)
	length := d.Len()
	if length == 0 {
		return
	}
	n := geometry.Point2{X: -d.Y / length, Y: d.X / length}
	gap := bondGap(length, opts)

	// Wedge styles are drawn narrow end first.
	narrow, wide := p, q
	if b.Stereo.IsInverted() {
		narrow, wide = q, p
	}

	switch {
	case b.Stereo == core.StereoUp || b.Stereo == core.StereoUpInverted:
		fillWedge(dc, narrow, wide, n, gap)
	case b.Stereo == core.StereoDown || b.Stereo == core.StereoDownInverted:
		hashWedge(dc, narrow, wide, n, gap)
	case b.Stereo == core.StereoUpOrDown || b.Stereo == core.StereoUpOrDownInverted:
		wavy(dc, narrow, wide, n, gap/2)
	case b.Order == core.OrderDouble && b.Stereo == core.StereoEOrZ:
		off := n.Scale(gap / 2)
		line(dc, p.Add(off), q.Sub(off))
		line(dc, p.Sub(off), q.Add(off))
	case b.Order == core.OrderDouble:
		off := n.Scale(gap / 2)
		line(dc, p.Add(off), q.Add(off))
		line(dc, p.Sub(off), q.Sub(off))
	case b.Order == core.OrderTriple:
		off := n.Scale(gap)
		line(dc, p, q)
		line(dc, p.Add(off), q.Add(off))
		line(dc, p.Sub(off), q.Sub(off))
	case b.Order == core.OrderAromatic:
		off := n.Scale(gap)
		line(dc, p, q)
		dashed(dc, p.Add(off), q.Add(off))
	case b.Order == core.OrderUnset:
		dashed(dc, p, q)
	default:
		line(dc, p, q)
	}
}

func line(dc *gg.Context, a, b geometry.Point2) {
	dc.DrawLine(a.X, a.Y, b.X, b.Y)
	dc.Stroke()
}

func dashed(dc *gg.Context, a, b geometry.Point2) {
	dc.SetDash(4, 3)
	line(dc, a, b)
	dc.SetDash()
}

// fillWedge draws a solid triangle from the narrow point to a base of width
// 2*half at wide.
func fillWedge(dc *gg.Context, narrow, wide, n geometry.Point2, half float64) {
	l, r := wide.Add(n.Scale(half)), wide.Sub(n.Scale(half))
	dc.MoveTo(narrow.X, narrow.Y)
	dc.LineTo(l.X, l.Y)
	dc.LineTo(r.X, r.Y)
	dc.ClosePath()
	dc.Fill()
}

// hashWedge draws rungs that widen from the narrow point.
func hashWedge(dc *gg.Context, narrow, wide, n geometry.Point2, half float64) {
	d := wide.Sub(narrow)
	for i := 1; i <= hashStrokes; i++ {
		t := float64(i) / hashStrokes
		c := narrow.Add(d.Scale(t))
		w := n.Scale(half * t)
		line(dc, c.Add(w), c.Sub(w))
	}
}

// wavy draws a zig-zag of amplitude amp along the bond.
func wavy(dc *gg.Context, from, to, n geometry.Point2, amp float64) {
	d := to.Sub(from)
	dc.MoveTo(from.X, from.Y)
	for i := 1; i <= wavySteps; i++ {
		c := from.Add(d.Scale(float64(i) / wavySteps))
		if i < wavySteps {
			sign := 1.0
			if i%2 == 0 {
				sign = -1
			}
			c = c.Add(n.Scale(sign * amp))
		}
		dc.LineTo(c.X, c.Y)
	}
	dc.Stroke()
}
