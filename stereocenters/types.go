package stereocenters

// Type is the local geometry class of an atom, derived from its connectivity.
type Type int

const (
	// Other atoms cannot carry configuration.
	Other Type = iota
	// Bicoordinate is the central atom of a cumulated system (=C=).
	Bicoordinate
	// Tricoordinate is a planar double-bond end (>C=, -N=) or aryl carbon.
	Tricoordinate
	// Tetracoordinate is a tetrahedral atom, counting a lone pair where one
	// completes the tetrahedron (phosphines, sulfoxides, sulfonium).
	Tetracoordinate
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case Bicoordinate:
		return "bicoordinate"
	case Tricoordinate:
		return "tricoordinate"
	case Tetracoordinate:
		return "tetracoordinate"
	default:
		return "other"
	}
}

// Stereocenter is the verdict on whether an atom can be stereogenic.
type Stereocenter int

const (
	// Non: cannot be a stereocentre (wrong geometry or equivalent substituents).
	Non Stereocenter = iota
	// Potential: right geometry, symmetry not yet checked.
	Potential
	// Para: two equivalent ring branches; stereogenic only together with
	// another centre in the same ring system.
	Para
	// True: all substituents are constitutionally distinct.
	True
)

// String implements fmt.Stringer.
func (c Stereocenter) String() string {
	switch c {
	case Potential:
		return "potential"
	case Para:
		return "para"
	case True:
		return "true"
	default:
		return "non"
	}
}
