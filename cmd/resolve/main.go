// Command resolve runs the saturation-based theorem prover over TPTP
// cnf(...)/fof(...) input files (§6/§6B of SPEC_FULL.md).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
