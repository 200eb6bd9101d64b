package cmd

import (
	"fmt"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereo/depict"
	"github.com/katalvlaran/stereo/stereo"
)

var (
	flagOut     string
	flagSize    int
	flagRecord  int
	flagFont    string
	flagIndices bool
)

var depictCmd = &cobra.Command{
	Use:   "depict <file|->",
	Short: "Render one record with its perceived descriptors as PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  runDepict,
}

func init() {
	f := depictCmd.Flags()
	f.StringVarP(&flagOut, "out", "o", "", "output PNG path (required)")
	f.IntVar(&flagSize, "size", depict.DefaultOptions().Size, "longest canvas side in pixels")
	f.IntVar(&flagRecord, "record", 1, "1-based record to draw")
	f.StringVar(&flagFont, "font", "", "TrueType font file for labels")
	f.BoolVar(&flagIndices, "indices", false, "label atoms with their index")
	_ = depictCmd.MarkFlagRequired("out")
}

func runDepict(cmd *cobra.Command, args []string) error {
	mols, err := readMolecules(cmd, args[0])
	if err != nil {
		return err
	}
	if flagRecord < 1 || flagRecord > len(mols) {
		return fmt.Errorf("--record %d out of range, file has %d", flagRecord, len(mols))
	}
	m := mols[flagRecord-1]

	// Drawing needs 2D points, so perception follows the depiction.
	elements, err := stereo.Perceive(m, stereo.Dim2D, perceiveOptions()...)
	if err != nil {
		return err
	}

	opts := depict.DefaultOptions()
	opts.Size = flagSize
	opts.FontPath = flagFont
	opts.ShowIndices = flagIndices

	f, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	if err := depict.EncodePNG(f, m, elements, opts); err != nil {
		_ = f.Close()
		return err
	}
	klog.V(1).Infof("depict: wrote %s with %d elements", flagOut, len(elements))

	return f.Close()
}
