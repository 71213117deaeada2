// Package main prints approximate compound bitmap memory sizes for a grid of
// group widths (N characters per group) and string lengths (M characters).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/jacoolee/bitmap"
)

var (
	maxN      = flag.Int("n", 10, "upper bound (exclusive) for characters per group")
	maxM      = flag.Int("m", 100, "upper bound (exclusive) for string length")
	unit      = flag.String("unit", "KB", "memory unit (b, B, KB, MB, GB)")
	mOriented = flag.Bool("m-oriented", false, "iterate string lengths in the outer loop")
)

func main() {
	flag.Parse()

	u, err := bitmap.ParseMemUnit(*unit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	if err := bitmap.ProbeMemory(w, *maxN, *maxM, u, !*mOriented); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
