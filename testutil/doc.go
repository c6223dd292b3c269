// Package testutil provides testing utilities for cellkit.
//
// This package is intended for use in tests and benchmarks only. It generates
// reproducible random field contents for property-style tests of the comparators
// and the cross-backing invariants.
//
// # Random Fields
//
//	rng := testutil.NewRNG(seed)
//	row := rng.Key(1, 16)          // bytes from a small alphabet, lots of shared prefixes
//	val := rng.Bytes(64)           // uniform bytes
//	n := rng.Int63()               // random signed integer
//
// # Skewed Access
//
//	i := rng.Zipf(1000, 1.1)       // hot-row index for scan benchmarks
package testutil
