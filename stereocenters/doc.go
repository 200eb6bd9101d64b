// Package stereocenters decides which atoms of a molecule could carry a
// stereo configuration, independent of any coordinates.
//
// Every atom gets a geometry Type (Tetracoordinate, Tricoordinate,
// Bicoordinate or Other) from its element, charge and bonding, and a
// Stereocenter verdict. Verdicts start as Potential for anything with the
// right geometry and are refined by CheckSymmetry, which compares the
// substituent branches around each atom:
//
//   - distinct branches everywhere => True
//   - one pair of equivalent ring branches => Para, kept only when another
//     centre sits in the same ring system (1,4-disubstituted cyclohexanes)
//   - anything else => Non
//
// A Classifier is the default oracle behind stereo perception. The
// perception driver calls CheckSymmetry at a fixed point of its run, so
// IsStereocenter is looser before that point than after it.
package stereocenters
