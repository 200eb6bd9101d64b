// Package stereo is the root of a stereochemistry perception toolkit: it
// reads molecules, finds which atoms and bonds carry configuration, and
// reports that configuration from 2D wedge drawings or 3D coordinates.
//
// What is perceived?
//
//   - Tetrahedral centres (sp3 carbon, lone-pair N+, P, S, ...)
//   - Double bond cis/trans (together / opposite)
//   - Even cumulenes (allenes) as extended tetrahedral centres
//   - Odd cumulenes as extended cis/trans bonds
//   - Hindered biaryl axes (atropisomers)
//
// Subpackages:
//
//	geometry/      - 2D/3D points, sweep angles, shear determinant
//	core/          - Molecule builder and the lock-free Snapshot view
//	dfs/           - ring marking (bridges) and small-ring search
//	bfs/           - breadth-first search and component labelling
//	parity/        - triangle, tetrahedral and double-bond parities
//	stereocenters/ - default oracle: which atoms may be stereocentres
//	stereo/        - elements, coordinate models, creators, Perceive
//	molfile/       - MDL V2000 molfile and SD file reader
//	depict/        - PNG drawing with wedges and descriptor tags
//	cmd/stereo     - command line: perceive, depict
//
// Quick example (butan-2-ol with a bold wedge to O):
//
//	      O
//	      ▲
//	C ─ C ─ C ─ C      stereo perceive butanol.mol
//	                   1  tetrahedral  atom:1  0 2 4 1  anticlockwise
//
//	go get github.com/katalvlaran/stereo
package stereo
