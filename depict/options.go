package depict

import "errors"

var (
	// ErrEmptyMolecule is returned for a nil molecule or one without atoms.
	ErrEmptyMolecule = errors.New("depict: molecule is empty")

	// ErrNo2DCoordinates is returned when some atom has no 2D point.
	ErrNo2DCoordinates = errors.New("depict: atom without 2D coordinates")

	// ErrBadOptions is returned when the canvas cannot hold the margins.
	ErrBadOptions = errors.New("depict: invalid options")
)

// Options controls the canvas and what is labelled.
type Options struct {
	// Size is the longest side of the canvas in pixels. The other side
	// follows the molecule's aspect ratio.
	Size int

	// Margin is the blank border in pixels.
	Margin float64

	// LineWidth is the bond stroke width in pixels.
	LineWidth float64

	// FontPath is a TrueType font to load. Empty uses the built-in bitmap face.
	FontPath string

	// FontSize in points, only used with FontPath.
	FontSize float64

	// ShowCarbons labels carbon atoms too.
	ShowCarbons bool

	// ShowIndices appends the atom index to every label.
	ShowIndices bool

	// ShowDescriptors draws the per-element configuration tags.
	ShowDescriptors bool
}

// DefaultOptions returns a 400px canvas with descriptor tags on.
func DefaultOptions() Options {
	return Options{
		Size:            400,
		Margin:          24,
		LineWidth:       1.5,
		FontSize:        13,
		ShowDescriptors: true,
	}
}

func (o Options) validate() error {
	if o.Size <= 0 || o.Margin < 0 || float64(o.Size) <= 2*o.Margin {
		return ErrBadOptions
	}
	if o.LineWidth <= 0 {
		return ErrBadOptions
	}

	return nil
}
