// stereo perceives stereochemistry in molfiles and SD files.
package main

import (
	"os"

	"github.com/katalvlaran/stereo/cmd/stereo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
