// The dirdot command writes the compiled plan of a glob pattern as a
// GraphViz digraph.
//
// Example:
//
//	$ dirdot 'lib/**/[A-Z]*.cpp' | dot -Tsvg > plan.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/dirglob"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}

	p, err := dirglob.Compile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't compile pattern %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}

	if err := p.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
