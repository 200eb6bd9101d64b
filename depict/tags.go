package depict

import (
	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
	"github.com/katalvlaran/stereo/stereo"
)

// tagOffset is the tag distance from its focus, in line widths.
const tagOffset = 7

// Tag returns the short configuration label drawn next to an element's focus.
func Tag(e stereo.Element) string {
	switch e := e.(type) {
	case stereo.Tetrahedral:
		return windingTag(e.Winding)
	case stereo.ExtendedTetrahedral:
		return windingTag(e.Winding)
	case stereo.DoubleBond:
		return conformationTag(e.Conformation)
	case stereo.ExtendedCisTrans:
		return conformationTag(e.Conformation)
	case stereo.Atropisomer:
		if e.Axial == stereo.Left {
			return "L"
		}
		return "R"
	default:
		return "?"
	}
}

func windingTag(w stereo.Winding) string {
	if w == stereo.Clockwise {
		return "cw"
	}
	return "acw"
}

func conformationTag(c stereo.Conformation) string {
	if c == stereo.Together {
		return "T"
	}
	return "O"
}

// tagPosition places a tag above-right of an atom focus or beside the
// midpoint of a bond focus. ok is false when the focus is not in s.
func tagPosition(s *core.Snapshot, e stereo.Element, px []geometry.Point2, opts Options) (geometry.Point2, bool) {
	offset := tagOffset * opts.LineWidth
	f := e.Focus()
	switch f.Kind {
	case stereo.FocusAtom:
		if f.Index < 0 || f.Index >= len(px) {
			return geometry.Point2{}, false
		}
		return px[f.Index].Add(geometry.Point2{X: offset, Y: -offset}), true
	case stereo.FocusBond:
		b := s.Bond(f.Index)
		if b == nil {
			return geometry.Point2{}, false
		}
		p, q := px[b.Begin], px[b.End]
		d := q.Sub(p)
		l := d.Len()
		if l == 0 {
			return p, true
		}
		n := geometry.Point2{X: -d.Y / l, Y: d.X / l}
		return p.Midpoint(q).Add(n.Scale(offset)), true
	default:
		return geometry.Point2{}, false
	}
}
