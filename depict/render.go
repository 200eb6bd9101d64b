// File: render.go
// Role: Render and EncodePNG, the canvas frame and atom labels.
// Determinism:
//   - Drawing order is bonds by index, then labels by atom index, then tags
//     in element order; the same input always produces the same pixels.

package depict

import (
	"fmt"
	"image"
	"io"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/geometry"
	"github.com/katalvlaran/stereo/stereo"
)

// labelPad is the clearance in pixels between a label and its bonds.
const labelPad = 2

// Render draws mol and the tags of elements onto a new image.
//
// Errors:
//   - ErrBadOptions: if the canvas is smaller than its margins.
//   - ErrEmptyMolecule: if mol is nil or has no atoms.
//   - ErrNo2DCoordinates: if some atom has no 2D point.
//   - a wrapped font error when Options.FontPath cannot be loaded.
func Render(mol *core.Molecule, elements []stereo.Element, opts Options) (image.Image, error) {
	dc, err := draw(mol, elements, opts)
	if err != nil {
		return nil, err
	}

	return dc.Image(), nil
}

// EncodePNG renders like Render and writes the image to w as PNG.
func EncodePNG(w io.Writer, mol *core.Molecule, elements []stereo.Element, opts Options) error {
	dc, err := draw(mol, elements, opts)
	if err != nil {
		return err
	}

	return dc.EncodePNG(w)
}

// frame maps molecule coordinates to canvas pixels. Canvas y grows downwards.
type frame struct {
	minX, maxY    float64
	scale         float64
	margin        float64
	width, height int
}

// newFrame fits the bounding box of pts into opts.Size along its longer side.
func newFrame(pts []geometry.Point2, opts Options) frame {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	rx, ry := maxX-minX, maxY-minY

	scale := 1.0
	if span := math.Max(rx, ry); span > 0 {
		scale = (float64(opts.Size) - 2*opts.Margin) / span
	}

	return frame{
		minX:   minX,
		maxY:   maxY,
		scale:  scale,
		margin: opts.Margin,
		width:  int(math.Round(rx*scale + 2*opts.Margin)),
		height: int(math.Round(ry*scale + 2*opts.Margin)),
	}
}

func (f frame) point(p geometry.Point2) geometry.Point2 {
	return geometry.Point2{
		X: f.margin + f.scale*(p.X-f.minX),
		Y: f.margin + f.scale*(f.maxY-p.Y),
	}
}

// box is the half-extent of an atom label; the zero box means no label.
type box struct{ hw, hh float64 }

// clip moves p towards q until the segment leaves the label box centred on p.
func (b box) clip(p, q geometry.Point2) geometry.Point2 {
	d := q.Sub(p)
	if (b.hw == 0 && b.hh == 0) || (d.X == 0 && d.Y == 0) {
		return p
	}
	t := math.Inf(1)
	if d.X != 0 {
		t = b.hw / math.Abs(d.X)
	}
	if d.Y != 0 {
		t = math.Min(t, b.hh/math.Abs(d.Y))
	}

	return p.Add(d.Scale(math.Min(t, 0.5)))
}

// draw is the shared body of Render and EncodePNG.
//
// Implementation:
//   - Stage 1: Validate options and input, collect 2D points.
//   - Stage 2: Fit the frame, clear the canvas, load the font.
//   - Stage 3: Measure labels, draw bonds clipped to them, then the labels.
//   - Stage 4: Draw descriptor tags.
func draw(mol *core.Molecule, elements []stereo.Element, opts Options) (*gg.Context, error) {
	// 1) Input.
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if mol == nil || mol.AtomCount() == 0 {
		return nil, ErrEmptyMolecule
	}
	s := mol.Snapshot()
	pts := make([]geometry.Point2, s.AtomCount())
	for i := range pts {
		p, ok := s.Point2(i)
		if !ok {
			return nil, fmt.Errorf("%w: atom %d", ErrNo2DCoordinates, i)
		}
		pts[i] = p
	}

	// 2) Canvas.
	f := newFrame(pts, opts)
	dc := gg.NewContext(max(f.width, 1), max(f.height, 1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if opts.FontPath != "" {
		if err := dc.LoadFontFace(opts.FontPath, opts.FontSize); err != nil {
			return nil, fmt.Errorf("depict: load font %q: %w", opts.FontPath, err)
		}
	}
	px := make([]geometry.Point2, len(pts))
	for i, p := range pts {
		px[i] = f.point(p)
	}

	// 3) Labels and bonds.
	labels := make([]string, len(pts))
	boxes := make([]box, len(pts))
	for i := range labels {
		labels[i] = atomLabel(s, i, opts)
		if labels[i] != "" {
			w, h := dc.MeasureString(labels[i])
			boxes[i] = box{hw: w/2 + labelPad, hh: h/2 + labelPad}
		}
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(opts.LineWidth)
	for bi := 0; bi < s.BondCount(); bi++ {
		drawBond(dc, s.Bond(bi), px, boxes, opts)
	}
	for i, text := range labels {
		if text != "" {
			dc.DrawStringAnchored(text, px[i].X, px[i].Y, 0.5, 0.5)
		}
	}

	// 4) Tags.
	if opts.ShowDescriptors {
		dc.SetRGB(0.8, 0.1, 0.1)
		for _, e := range elements {
			at, ok := tagPosition(s, e, px, opts)
			if !ok {
				klog.Warningf("depict: %v does not fit the molecule, tag skipped", e)
				continue
			}
			dc.DrawStringAnchored(Tag(e), at.X, at.Y, 0.5, 0.5)
		}
	}
	klog.V(2).Infof("depict: %dx%d canvas, %d atoms, %d bonds, %d tags",
		f.width, f.height, s.AtomCount(), s.BondCount(), len(elements))

	return dc, nil
}

// atomLabel is the symbol with hydrogens and charge, or "" for an unlabelled
// carbon.
func atomLabel(s *core.Snapshot, i int, opts Options) string {
	a := s.Atom(i)
	text := ""
	if a.Symbol != "C" || opts.ShowCarbons || a.Charge != 0 {
		text = a.Symbol
		if h := s.ImplicitH(i); h > 0 && a.Symbol != "C" {
			text += "H"
			if h > 1 {
				text += strconv.Itoa(h)
			}
		}
		text += chargeSuffix(a.Charge)
	}
	if opts.ShowIndices {
		text += ":" + strconv.Itoa(i)
	}

	return text
}

func chargeSuffix(q int) string {
	switch {
	case q == 1:
		return "+"
	case q == -1:
		return "-"
	case q > 1:
		return strconv.Itoa(q) + "+"
	case q < -1:
		return strconv.Itoa(-q) + "-"
	default:
		return ""
	}
}
