package kzg

import (
	"crypto/rand"
	"io"
)

// testRNG returns the randomness source unit tests use for Setup and GWC
// verifier randomness. Reproducibility of the seeded source is checked in
// the api package and fixed-seed determinism in the root package; most unit tests
// here only need *a* valid source, not a reproducible one.
func testRNG() io.Reader { return rand.Reader }
