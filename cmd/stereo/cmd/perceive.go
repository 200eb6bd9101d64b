package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereo/stereo"
)

var perceiveCmd = &cobra.Command{
	Use:   "perceive <file|->",
	Short: "Print the stereo elements of every record",
	Long: "Prints one tab-separated line per element: record number, kind, focus, " +
		"carriers and configuration. Atom and bond indices are 0-based.",
	Args: cobra.ExactArgs(1),
	RunE: runPerceive,
}

func runPerceive(cmd *cobra.Command, args []string) error {
	mols, err := readMolecules(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, m := range mols {
		d, err := dimensionFor(m)
		if err != nil {
			return err
		}
		elements, err := stereo.Perceive(m, d, perceiveOptions()...)
		if err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
		for _, e := range elements {
			writeRow(out, i+1, e)
		}
	}

	return nil
}

// writeRow prints "record kind focus carriers config" separated by tabs.
func writeRow(w io.Writer, record int, e stereo.Element) {
	var (
		carriers []int
		config   fmt.Stringer
	)
	switch e := e.(type) {
	case stereo.Tetrahedral:
		carriers, config = e.Carriers[:], e.Winding
	case stereo.ExtendedTetrahedral:
		carriers, config = e.Carriers[:], e.Winding
	case stereo.DoubleBond:
		carriers, config = e.Carriers[:], e.Conformation
	case stereo.ExtendedCisTrans:
		carriers, config = e.Carriers[:], e.Conformation
	case stereo.Atropisomer:
		carriers, config = e.Carriers[:], e.Axial
	default:
		fmt.Fprintf(w, "%d\t%s\n", record, e)
		return
	}

	ids := make([]string, len(carriers))
	for i, c := range carriers {
		ids[i] = strconv.Itoa(c)
	}
	fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", record, e.Kind(), e.Focus(), strings.Join(ids, " "), config)
}
