package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stereo/core"
	"github.com/katalvlaran/stereo/molfile"
	"github.com/katalvlaran/stereo/stereo"
)

var errBadDimension = errors.New("--dim must be 2d, 3d or auto")

var (
	flagDim           string
	flagStrict        bool
	flagCheckSymmetry bool
	flagPrivateRings  bool
)

var rootCmd = &cobra.Command{
	Use:           "stereo",
	Short:         "stereo perceives stereochemistry in molfiles",
	Long:          "Reads MDL V2000 molfiles or SD files and reports tetrahedral, double bond, cumulene and atropisomer configurations from 2D wedges or 3D coordinates.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and flushes the log.
func Execute() error {
	defer klog.Flush()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}

	return err
}

func init() {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)
	_ = fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	rootCmd.PersistentFlags().AddGoFlagSet(fset)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDim, "dim", "auto", "coordinates to use: 2d, 3d or auto")
	pf.BoolVar(&flagStrict, "strict", false, "reject ambiguous wedge layouts instead of reinterpreting them")
	pf.BoolVar(&flagCheckSymmetry, "check-symmetry", false, "only report true stereocentres")
	pf.BoolVar(&flagPrivateRings, "private-rings", false, "do not write ring flags back to the molecule")

	rootCmd.AddCommand(perceiveCmd)
	rootCmd.AddCommand(depictCmd)
}

// perceiveOptions turns the persistent flags into stereo options.
func perceiveOptions() []stereo.Option {
	var opts []stereo.Option
	if flagStrict {
		opts = append(opts, stereo.WithStrict())
	}
	if flagCheckSymmetry {
		opts = append(opts, stereo.WithSymmetryCheck(true))
	}
	if flagPrivateRings {
		opts = append(opts, stereo.WithPrivateRings())
	}

	return opts
}

// dimensionFor resolves --dim for one molecule.
func dimensionFor(m *core.Molecule) (stereo.Dimension, error) {
	switch strings.ToLower(flagDim) {
	case "auto", "":
		return molfile.Dimension(m), nil
	case "2d":
		return stereo.Dim2D, nil
	case "3d":
		return stereo.Dim3D, nil
	default:
		return 0, fmt.Errorf("%w, got %q", errBadDimension, flagDim)
	}
}

// readMolecules parses path, or stdin for "-".
func readMolecules(cmd *cobra.Command, path string) ([]*core.Molecule, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	mols, err := molfile.ParseSDF(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return mols, nil
}
