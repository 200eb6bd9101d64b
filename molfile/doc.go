// Package molfile reads MDL V2000 molfiles and SD files into core.Molecule.
//
// Only what stereo perception needs is kept: element symbols, 2D or 3D
// coordinates, formal charges (atom block and "M  CHG" lines), bond orders,
// bond stereo annotations and the "either" atom parity marker. Data items
// after "M  END" are skipped. Implicit hydrogens are filled from default
// valences once a record is complete.
//
// Field mapping:
//
//	atom block  x 0:10  y 10:20  z 20:30  symbol 31:34  charge 36:39  parity 39:42
//	bond block  a1 0:3  a2 3:6   type 6:9  stereo 9:12
//
//	bond type    1 single, 2 double, 3 triple, 4 aromatic
//	single bond  stereo 1 up, 6 down, 4 either (wavy)
//	double bond  stereo 3 either (crossed)
//	atom parity  3 either
//
// Errors:
//
//	Every failure wraps one of the package sentinels with the 1-based line
//	number, so errors.Is(err, molfile.ErrBadAtomLine) works on the result.
//
// Example:
//
//	mol, err := molfile.ParseString(text)
//	if err != nil {
//	    return err
//	}
//	elements, err := stereo.Perceive(mol, molfile.Dimension(mol))
package molfile
