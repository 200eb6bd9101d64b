// File: element.go
// Role: Stereo descriptors produced by perception.
// Determinism:
//   - Descriptors are plain values; String() output is stable.
// Concurrency:
//   - Immutable once created; safe to share.

package stereo

import "fmt"

// Kind discriminates the Element variants.
type Kind int

const (
	// KindTetrahedral is a tetrahedral centre on an atom.
	KindTetrahedral Kind = iota + 1
	// KindExtendedTetrahedral is an allene-like axis centred on an atom.
	KindExtendedTetrahedral
	// KindDoubleBond is cis/trans isomerism of a double bond.
	KindDoubleBond
	// KindExtendedCisTrans is cis/trans isomerism of an odd cumulene.
	KindExtendedCisTrans
	// KindAtropisomer is axial chirality about a hindered single bond.
	KindAtropisomer
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTetrahedral:
		return "tetrahedral"
	case KindExtendedTetrahedral:
		return "extended-tetrahedral"
	case KindDoubleBond:
		return "double-bond"
	case KindExtendedCisTrans:
		return "extended-cis-trans"
	case KindAtropisomer:
		return "atropisomer"
	default:
		return "unknown"
	}
}

// FocusKind says whether an element sits on an atom or on a bond.
type FocusKind int

const (
	FocusAtom FocusKind = iota
	FocusBond
)

// Focus identifies the graph feature a descriptor is attached to.
type Focus struct {
	Kind  FocusKind
	Index int
}

// String implements fmt.Stringer.
func (f Focus) String() string {
	if f.Kind == FocusBond {
		return fmt.Sprintf("bond:%d", f.Index)
	}

	return fmt.Sprintf("atom:%d", f.Index)
}

// Element is a perceived stereo descriptor. The set of implementations is
// closed: Tetrahedral, ExtendedTetrahedral, DoubleBond, ExtendedCisTrans and
// Atropisomer.
type Element interface {
	Kind() Kind
	Focus() Focus
	String() string
	sealed()
}

// Winding is the rotation of four carriers viewed with the first towards the
// observer.
type Winding int

const (
	Clockwise Winding = iota + 1
	Anticlockwise
)

// String implements fmt.Stringer.
func (w Winding) String() string {
	if w == Anticlockwise {
		return "anticlockwise"
	}

	return "clockwise"
}

// Conformation relates the two reference carriers of a cis/trans element.
type Conformation int

const (
	Together Conformation = iota + 1
	Opposite
)

// String implements fmt.Stringer.
func (c Conformation) String() string {
	if c == Opposite {
		return "opposite"
	}

	return "together"
}

// Axial is the configuration of an atropisomer.
type Axial int

const (
	Left Axial = iota + 1
	Right
)

// String implements fmt.Stringer.
func (a Axial) String() string {
	if a == Right {
		return "right"
	}

	return "left"
}

// Tetrahedral is a tetrahedral centre. A carrier equal to Atom stands for the
// implicit fourth substituent (hydrogen or lone pair).
type Tetrahedral struct {
	Atom     int
	Carriers [4]int
	Winding  Winding
}

func (Tetrahedral) sealed()        {}
func (Tetrahedral) Kind() Kind     { return KindTetrahedral }
func (e Tetrahedral) Focus() Focus { return Focus{Kind: FocusAtom, Index: e.Atom} }

// String implements fmt.Stringer.
func (e Tetrahedral) String() string {
	return fmt.Sprintf("%s %s %v %s", e.Kind(), e.Focus(), e.Carriers, e.Winding)
}

// ExtendedTetrahedral is the axial centre of an even cumulene. Atom is the
// central atom of the chain; carriers are substituents of the two terminals,
// a terminal itself standing in for a missing substituent.
type ExtendedTetrahedral struct {
	Atom     int
	Carriers [4]int
	Winding  Winding
}

func (ExtendedTetrahedral) sealed()        {}
func (ExtendedTetrahedral) Kind() Kind     { return KindExtendedTetrahedral }
func (e ExtendedTetrahedral) Focus() Focus { return Focus{Kind: FocusAtom, Index: e.Atom} }

// String implements fmt.Stringer.
func (e ExtendedTetrahedral) String() string {
	return fmt.Sprintf("%s %s %v %s", e.Kind(), e.Focus(), e.Carriers, e.Winding)
}

// DoubleBond is a stereogenic double bond. Carriers holds one substituent
// bond per end, in the order of Ends.
type DoubleBond struct {
	Bond         int
	Ends         [2]int
	Carriers     [2]int
	Conformation Conformation
}

func (DoubleBond) sealed()        {}
func (DoubleBond) Kind() Kind     { return KindDoubleBond }
func (e DoubleBond) Focus() Focus { return Focus{Kind: FocusBond, Index: e.Bond} }

// String implements fmt.Stringer.
func (e DoubleBond) String() string {
	return fmt.Sprintf("%s %s %v %s", e.Kind(), e.Focus(), e.Carriers, e.Conformation)
}

// ExtendedCisTrans is the middle bond of an odd cumulene. Ends are the chain
// terminals; Carriers holds one substituent bond per terminal.
type ExtendedCisTrans struct {
	Bond         int
	Ends         [2]int
	Carriers     [2]int
	Conformation Conformation
}

func (ExtendedCisTrans) sealed()        {}
func (ExtendedCisTrans) Kind() Kind     { return KindExtendedCisTrans }
func (e ExtendedCisTrans) Focus() Focus { return Focus{Kind: FocusBond, Index: e.Bond} }

// String implements fmt.Stringer.
func (e ExtendedCisTrans) String() string {
	return fmt.Sprintf("%s %s %v %s", e.Kind(), e.Focus(), e.Carriers, e.Conformation)
}

// Atropisomer is a hindered biaryl axis. Carriers are two atoms on the
// Ends[0] side followed by two on the Ends[1] side.
type Atropisomer struct {
	Bond     int
	Ends     [2]int
	Carriers [4]int
	Axial    Axial
}

func (Atropisomer) sealed()        {}
func (Atropisomer) Kind() Kind     { return KindAtropisomer }
func (e Atropisomer) Focus() Focus { return Focus{Kind: FocusBond, Index: e.Bond} }

// String implements fmt.Stringer.
func (e Atropisomer) String() string {
	return fmt.Sprintf("%s %s %v %s", e.Kind(), e.Focus(), e.Carriers, e.Axial)
}
