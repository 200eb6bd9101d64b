// Package stereo perceives stereochemistry from a molecule's layout: 2D
// coordinates with wedge and hatch bonds, or 3D coordinates.
//
// The result is a list of Elements, each attached to one atom or bond and
// carrying a discrete configuration:
//
//   - Tetrahedral: a tetrahedral atom, four ordered carriers, a Winding.
//   - ExtendedTetrahedral: the centre of an even cumulene (allene), four
//     carriers on the terminals, a Winding.
//   - DoubleBond: a double bond, one reference substituent bond per end, a
//     Conformation.
//   - ExtendedCisTrans: the middle bond of an odd cumulene, one reference
//     substituent bond per terminal, a Conformation.
//   - Atropisomer: a hindered biaryl single bond, four carriers, an Axial.
//
// Which atoms may carry configuration is the Oracle's call (by default a
// stereocenters.Classifier). The CoordinateModel (Planar or Spatial)
// decides where points come from and which parity formula applies.
//
// Perception never guesses: missing coordinates, wavy or crossed bonds,
// inconsistent wedges and parities within parity.Threshold all produce no
// element. Rejections are logged at klog verbosity 2; ambiguous wedge
// layouts are logged as warnings or errors.
//
// Example:
//
//	mol, _ := molfile.ParseString(text)
//	elements, err := stereo.Perceive(mol, molfile.Dimension(mol))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range elements {
//	    fmt.Println(e)
//	}
//
// Symmetry checking:
//
//	The oracle is refined by CheckSymmetry at fixed points: at construction
//	when WithSymmetryCheck, WithStrict, WithProjections or a 3D model is in
//	use; whenever a hatch bond has to be reinterpreted; between the two
//	passes of All. DoubleBond judges its ends with a checked oracle of
//	its own while the run's oracle is still unrefined.
package stereo
