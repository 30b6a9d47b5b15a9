// Package testutil provides testing utilities for colidx.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible integer columns, validity bitmaps and
// skewed index workloads.
//
//	rng := testutil.NewRNG(seed)
//	d := rng.RandomArray(array.Int16, 1000, 0.1) // 10% nulls
//	idx := rng.ZipfIndices(1000, 64, 1.2)        // dictionary-style indices
package testutil
