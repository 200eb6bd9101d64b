// Package depict draws a 2D molecule with its stereo annotations and
// perceived descriptors, for checking perception results by eye.
//
// Bonds are drawn the way a chemist would read them: plain, double, triple
// and aromatic lines, filled wedges for Up, hashed wedges for Down, zig-zags
// for wavy bonds and crossed lines for double bonds marked either. The narrow
// end of a wedge sits on Bond.Begin unless the style is inverted.
//
// Heteroatoms are labelled and bonds are clipped to the label box. Each
// perceived element gets a short tag at its focus:
//
//	tetrahedral, extended tetrahedral   cw / acw
//	double bond, extended cis/trans     T  / O
//	atropisomer                         L  / R
//
// Example:
//
//	f, _ := os.Create("mol.png")
//	defer f.Close()
//	err := depict.EncodePNG(f, mol, elements, depict.DefaultOptions())
package depict
