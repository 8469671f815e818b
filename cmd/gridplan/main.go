// gridplan runs a best-first search on a 2D grid scenario and prints the
// result code, the iteration count and the reconstructed path.
//
// Usage:
//
//	gridplan [--config=<scenario.yaml>] [--start=x,y] [--goal=x,y] [--astar] [--verbose] [--render]
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
