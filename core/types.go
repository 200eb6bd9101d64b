// Package core defines the molecular graph used by stereo perception: Atom,
// Bond, Molecule and the lock-free Snapshot read view.
//
// This file declares the bond Order and BondStereo enums, Atom, Bond, Molecule,
// AtomOption, BondOption, sentinel errors, and the NewMolecule constructor.
//
// Errors:
//
//	ErrNilMolecule          - molecule pointer is nil.
//	ErrEmptySymbol          - atom symbol is the empty string.
//	ErrAtomNotFound         - requested atom index does not exist.
//	ErrBondNotFound         - requested bond index or endpoint pair does not exist.
//	ErrLoopNotAllowed       - bond from an atom to itself.
//	ErrMultiBondNotAllowed  - second bond between the same pair of atoms.
//	ErrBadRingMembership    - ring flag slices do not match the atom/bond counts.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/stereo/geometry"
)

// Sentinel errors for molecule operations.
var (
	// ErrNilMolecule indicates a nil *Molecule was passed where one is required.
	ErrNilMolecule = errors.New("core: molecule is nil")

	// ErrEmptySymbol indicates an atom was added without an element symbol.
	ErrEmptySymbol = errors.New("core: atom symbol is empty")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom index.
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrLoopNotAllowed indicates a bond whose two endpoints are the same atom.
	ErrLoopNotAllowed = errors.New("core: self-bond not allowed")

	// ErrMultiBondNotAllowed indicates a second bond between an already bonded pair.
	ErrMultiBondNotAllowed = errors.New("core: parallel bonds not allowed")

	// ErrBadRingMembership indicates ring flag slices of the wrong length.
	ErrBadRingMembership = errors.New("core: ring membership length mismatch")
)

// Order is the bond multiplicity.
type Order int

// Bond orders. OrderUnset is the zero value and contributes nothing to valence.
const (
	OrderUnset Order = iota
	OrderSingle
	OrderDouble
	OrderTriple
	OrderQuadruple
	OrderAromatic
)

// Valence returns the contribution of the order to an atom's bond order sum.
// Aromatic bonds count as one.
func (o Order) Valence() int {
	switch o {
	case OrderSingle, OrderAromatic:
		return 1
	case OrderDouble:
		return 2
	case OrderTriple:
		return 3
	case OrderQuadruple:
		return 4
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderSingle:
		return "single"
	case OrderDouble:
		return "double"
	case OrderTriple:
		return "triple"
	case OrderQuadruple:
		return "quadruple"
	case OrderAromatic:
		return "aromatic"
	default:
		return "unset"
	}
}

// BondStereo is the display annotation of a bond in a 2D layout.
//
// A wedge starts narrow at one atom (its "point") and widens towards the other.
// The plain styles put the point at Bond.Begin; the inverted styles put it at
// Bond.End.
type BondStereo int

// Bond stereo annotations.
const (
	StereoNone             BondStereo = iota
	StereoUp                          // bold wedge, point at Begin
	StereoDown                        // hashed wedge, point at Begin
	StereoUpInverted                  // bold wedge, point at End
	StereoDownInverted                // hashed wedge, point at End
	StereoUpOrDown                    // wavy bond, point at Begin
	StereoUpOrDownInverted            // wavy bond, point at End
	StereoEOrZ                        // crossed double bond
)

// IsUnspecified reports whether the annotation explicitly marks the
// configuration as unknown (wavy single bond or crossed double bond).
func (s BondStereo) IsUnspecified() bool {
	return s == StereoUpOrDown || s == StereoUpOrDownInverted || s == StereoEOrZ
}

// IsWedged reports whether the annotation is a bold or hashed wedge.
func (s BondStereo) IsWedged() bool {
	return s == StereoUp || s == StereoDown || s == StereoUpInverted || s == StereoDownInverted
}

// IsInverted reports whether the narrow end of the annotation is at Bond.End.
func (s BondStereo) IsInverted() bool {
	return s == StereoUpInverted || s == StereoDownInverted || s == StereoUpOrDownInverted
}

// String implements fmt.Stringer.
func (s BondStereo) String() string {
	switch s {
	case StereoUp:
		return "up"
	case StereoDown:
		return "down"
	case StereoUpInverted:
		return "up-inverted"
	case StereoDownInverted:
		return "down-inverted"
	case StereoUpOrDown:
		return "up-or-down"
	case StereoUpOrDownInverted:
		return "up-or-down-inverted"
	case StereoEOrZ:
		return "e-or-z"
	default:
		return "none"
	}
}

// Atom is a vertex of the molecular graph.
//
// Index is the atom's stable identity inside its Molecule (insertion order).
// Point2 and Point3 are optional; a nil point means "no coordinates of that
// dimension". ImplicitH < 0 means "not yet known".
type Atom struct {
	Index        int
	Symbol       string
	AtomicNumber int
	Charge       int
	ImplicitH    int

	Point2 *geometry.Point2
	Point3 *geometry.Point3

	// InRing is set by ring marking (see package dfs).
	InRing bool

	// UnspecifiedParity marks an atom whose configuration the source explicitly
	// declared unknown (molfile atom parity 3).
	UnspecifiedParity bool
}

// Bond is an edge of the molecular graph. Begin and End are atom indices and
// their order is significant: it anchors wedge annotations.
type Bond struct {
	Index  int
	Begin  int
	End    int
	Order  Order
	Stereo BondStereo

	// InRing is set by ring marking (see package dfs).
	InRing bool
}

// Contains reports whether atom a is an endpoint of the bond.
func (b Bond) Contains(a int) bool { return b.Begin == a || b.End == a }

// Other returns the endpoint opposite a, or -1 if a is not an endpoint.
func (b Bond) Other(a int) int {
	switch a {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	default:
		return -1
	}
}

// Shared returns the atom common to bonds a and b, or -1 when they are disjoint.
func Shared(a, b Bond) int {
	if b.Contains(a.Begin) {
		return a.Begin
	}
	if b.Contains(a.End) {
		return a.End
	}

	return -1
}

// AtomOption configures an atom when it is added.
type AtomOption func(*Atom)

// WithPoint2 sets the atom's depiction coordinates.
func WithPoint2(x, y float64) AtomOption {
	return func(a *Atom) { a.Point2 = &geometry.Point2{X: x, Y: y} }
}

// WithPoint3 sets the atom's spatial coordinates.
func WithPoint3(x, y, z float64) AtomOption {
	return func(a *Atom) { a.Point3 = &geometry.Point3{X: x, Y: y, Z: z} }
}

// WithImplicitH sets the number of implicit hydrogens carried by the atom.
func WithImplicitH(n int) AtomOption {
	return func(a *Atom) { a.ImplicitH = n }
}

// WithCharge sets the formal charge.
func WithCharge(q int) AtomOption {
	return func(a *Atom) { a.Charge = q }
}

// WithUnspecifiedParity marks the atom's configuration as explicitly unknown.
func WithUnspecifiedParity() AtomOption {
	return func(a *Atom) { a.UnspecifiedParity = true }
}

// BondOption configures a bond when it is added.
type BondOption func(*Bond)

// WithStereo sets the bond's display annotation.
func WithStereo(s BondStereo) BondOption {
	return func(b *Bond) { b.Stereo = s }
}

// pair is an unordered endpoint key; lo <= hi always.
type pair struct{ lo, hi int }

func pairOf(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{lo: u, hi: v}
}

// graph holds the storage shared by Molecule and Snapshot.
//
// adj[i] and adjBonds[i] are parallel: adjBonds[i][k] is the bond joining i to
// adj[i][k]. Both are kept in bond insertion order.
type graph struct {
	atoms    []Atom
	bonds    []Bond
	adj      [][]int
	adjBonds [][]int
	pairs    map[pair]int
}

// Molecule is a mutable, append-only molecular graph.
//
// Atoms and bonds are never removed, so indices stay valid for the life of the
// molecule. mu guards every field; readers that need many queries should take
// a Snapshot and work on that lock-free.
type Molecule struct {
	mu sync.RWMutex
	g  graph
}

// NewMolecule creates an empty Molecule.
// Complexity: O(1)
func NewMolecule() *Molecule {
	return &Molecule{g: graph{pairs: make(map[pair]int)}}
}
