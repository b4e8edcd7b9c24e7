package main

import (
	"os"

	"github.com/arthur-debert/sgr/pkg/sgr"
)

func main() {
	// Leave the terminal in its default rendition no matter where a
	// demo bails out.
	restore := sgr.RestoreOnExit()

	if err := Execute(); err != nil {
		restore()
		os.Exit(1)
	}
	restore()
}
