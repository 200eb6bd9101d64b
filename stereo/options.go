// File: options.go
// Role: Sentinel errors, collaborator interfaces and functional options for perception.
// Determinism:
//   - Options are applied in call order; later options win.
// Concurrency:
//   - Options values are plain data; collaborators are owned by one run.

package stereo

import (
	"errors"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/stereocenters"
)

// Sentinel errors returned by perception.
var (
	// ErrNilMolecule indicates that a nil *core.Molecule was passed in.
	ErrNilMolecule = errors.New("stereo: molecule is nil")

	// ErrInvalidArgument indicates caller misuse of a per-feature entry point:
	// an index out of range, a bond of the wrong order, or an atom with the
	// wrong number of neighbours for the requested feature.
	ErrInvalidArgument = errors.New("stereo: invalid argument")

	// ErrNilModel indicates that NewPerceiver was given no coordinate model.
	ErrNilModel = errors.New("stereo: coordinate model is nil")
)

// Oracle answers which atoms can carry configuration. CheckSymmetry refines
// its verdicts and is called by the driver at fixed points; implementations
// must make repeated calls harmless.
type Oracle interface {
	ElementType(v int) stereocenters.Type
	StereocenterType(v int) stereocenters.Stereocenter
	IsStereocenter(v int) bool
	CheckSymmetry()
	SymmetryChecked() bool
}

// OracleFactory builds an Oracle over the snapshot a run perceives. Ring
// flags on the snapshot are set before the factory is called.
type OracleFactory func(s *core.Snapshot) Oracle

// DefaultOracle is the stereocenters.Classifier.
func DefaultOracle(s *core.Snapshot) Oracle { return stereocenters.New(s) }

// Projection names a sugar drawing convention recognised outside the core.
type Projection int

const (
	Fischer Projection = iota + 1
	Haworth
	Chair
)

// String implements fmt.Stringer.
func (p Projection) String() string {
	switch p {
	case Fischer:
		return "fischer"
	case Haworth:
		return "haworth"
	case Chair:
		return "chair"
	default:
		return "unknown"
	}
}

// Recognizer perceives stereo from projection drawings. Its results are
// taken as given and come before the core's own elements.
type Recognizer interface {
	Recognise(s *core.Snapshot, oracle Oracle, enabled []Projection) []Element
}

// Options configures a perception run.
//
//   - Strict: validate the wedge pattern around tetrahedral centres and never
//     reinterpret inverted hatches. Implies CheckSymmetry.
//   - CheckSymmetry: check symmetry before creating elements, rejecting
//     centres with equivalent substituents. Always on for 3D.
//   - Projections: projection conventions handed to Recognizer.
//   - Recognizer: projection collaborator; ignored when Projections is empty.
//   - Oracle: builds the stereocentre oracle. Default DefaultOracle.
//   - PrivateRings: keep ring flags on the run's snapshot only.
type Options struct {
	Strict        bool
	CheckSymmetry bool
	Projections   []Projection
	Recognizer    Recognizer
	Oracle        OracleFactory
	PrivateRings  bool
}

// Option represents a functional option for configuring perception.
type Option func(*Options)

// WithStrict enables wedge-pattern validation and symmetry checking.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
		o.CheckSymmetry = true
	}
}

// WithSymmetryCheck turns symmetry checking before creation on or off.
func WithSymmetryCheck(on bool) Option {
	return func(o *Options) {
		o.CheckSymmetry = on
	}
}

// WithProjections enables recognition of the given projection conventions.
// Symmetry checking is switched on with them.
func WithProjections(p ...Projection) Option {
	return func(o *Options) {
		o.Projections = append(o.Projections[:0:0], p...)
		if len(p) > 0 {
			o.CheckSymmetry = true
		}
	}
}

// WithRecognizer sets the projection collaborator.
func WithRecognizer(r Recognizer) Option {
	return func(o *Options) {
		o.Recognizer = r
	}
}

// WithOracle replaces the default stereocentre oracle. DoubleBond may call
// the factory a second time for a checked oracle of its own.
func WithOracle(f OracleFactory) Option {
	return func(o *Options) {
		if f != nil {
			o.Oracle = f
		}
	}
}

// WithPrivateRings stops ring flags from being copied back to the caller's
// molecule. Use it when several runs share one molecule.
func WithPrivateRings() Option {
	return func(o *Options) {
		o.PrivateRings = true
	}
}

// DefaultOptions returns the defaults: lenient wedges, no symmetry check
// before creation (2D), no projections, DefaultOracle.
func DefaultOptions() Options {
	return Options{Oracle: DefaultOracle}
}
