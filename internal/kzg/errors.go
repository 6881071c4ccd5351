package kzg

import "errors"

// Error taxonomy for the core: every precondition violation is fatal and
// raised before any cryptographic work begins. Pairing-check failure is
// never represented as an error; callers get `false` from Verify.
var (
	// ErrOverDegree is returned when a polynomial's degree exceeds the
	// scheme's d_max.
	ErrOverDegree = errors.New("kzg: polynomial degree exceeds d_max")

	// ErrLengthMismatch is returned when polys, points, or values disagree
	// in length for a call that requires them to match.
	ErrLengthMismatch = errors.New("kzg: length mismatch between polynomials, points, and values")

	// ErrNonPowerOfTwo is returned when the batch size n is not a power of
	// two; all three schemes rely on the balanced vanishing-tree
	// construction.
	ErrNonPowerOfTwo = errors.New("kzg: batch size must be a power of two")

	// ErrDuplicatePoint is returned when two entries of a point set
	// coincide, detected via a failed field inversion during Lagrange
	// interpolation or vanishing-tree-quotient evaluation.
	ErrDuplicatePoint = errors.New("kzg: duplicate evaluation point")

	// ErrEmptyBatch is returned when a batch of size zero is passed to an
	// operation that requires at least one polynomial.
	ErrEmptyBatch = errors.New("kzg: batch must contain at least one polynomial")

	// ErrInexactDivision signals a division that was assumed exact (by
	// construction of the caller) but left a non-zero remainder. This is a
	// structural bug, not a caller input error, and is surfaced rather than
	// silently discarding the remainder.
	ErrInexactDivision = errors.New("kzg: exact polynomial division left a non-zero remainder")
)
