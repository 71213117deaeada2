// Package testutil provides testing utilities for bitmap.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator for bit positions and for strings
// the default encoder accepts.
//
// # Random Positions
//
//	rng := testutil.NewRNG(seed)
//	pos := rng.Positions(1000, 1<<20) // 1000 positions in [0, 1<<20)
//
// # Random Strings
//
//	s := rng.String(12)             // 12 printable ASCII characters
//	keys := rng.Strings(100, 1, 16) // 100 strings, lengths in [1, 16]
package testutil
