// Package testutil provides testing utilities for sysprim.
//
// This package is intended for use in tests and benchmarks only.
//
//	buf := testutil.RandomBytes(4096)
//	testutil.IsAligned(testutil.AddrOf(buf), 64)
package testutil
