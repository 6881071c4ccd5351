// Package kzgcommitments implements three batched polynomial commitment
// schemes (KZG, GWC, and MBB) over BLS12-381, sharing one structured
// reference string and one polynomial-arithmetic core.
//
// Every scheme follows the same shape: Setup builds a PublicKey (and, for
// tests, the toxic-waste secret), Commit binds a batch of polynomials,
// Evaluate produces the claimed openings, Open proves them, and Verify
// checks the proof against only the public key, the commitments, the
// points, the claimed values, and the scheme's verifier parameters (none
// for KZG; gamma and a randomness source for GWC; lambda and chi for MBB).
// Go does not let a single generic
// interface carry three different Proof/Evaluation associated types
// cleanly, so the contract below is documented once and implemented three
// times (KZG, GWC, MBB) rather than expressed as a false shared interface.
// Params stands for the scheme's verifier parameters; GWC's Open takes
// gamma only, its Verify takes gamma and rng.
//
//	SetupKZG/SetupGWC/SetupMBB(dMax int, rng io.Reader) (*Scheme, SecretKey, error)
//	Commit(polys []Polynomial) ([]Commitment, error)
//	Evaluate(polys []Polynomial, points []Scalar) (Evaluation, error)
//	Open(polys []Polynomial, points []Scalar, values Evaluation, params...) (Proof, error)
//	Verify(commitments []Commitment, proof Proof, points []Scalar, values Evaluation, params...) (bool, error)
package kzgcommitments

import (
	"github.com/nokotan8/kzg-commitments/internal/kzg"
)

// Scalar is an element of the BLS12-381 scalar field.
type Scalar = kzg.Scalar

// G1 is an element of the BLS12-381 source group G1; every commitment and
// every witness in every scheme here is a single G1 element or a fixed
// tuple of them.
type G1 = kzg.G1

// G2 is an element of the BLS12-381 source group G2, used only in the
// public key.
type G2 = kzg.G2

// Polynomial is a dense, little-endian coefficient vector: Polynomial[i]
// is the coefficient of X^i. The zero polynomial is the empty slice.
type Polynomial = kzg.Polynomial

// Commitment is a single G1 element binding one polynomial; every scheme,
// MBB included, commits to a batch as one Commitment per polynomial.
type Commitment = G1

// Identifier is implemented by every scheme type so test-vector fixtures
// and benchmarks can label results without a type switch.
type Identifier interface {
	SchemeName() string
}

// Precondition errors of the schemes: these are raised before any
// cryptographic work begins, never as a result of a failed pairing check
// (a failed proof always returns false, nil, not an error). ErrDuplicatePoint
// is returned only by MBB's Evaluate, whose interpolation detects repeated
// points; KZG and GWC do not check points for duplicates. ErrOverDegree is
// returned by Commit and Open, not by Verify.
var (
	ErrOverDegree     = kzg.ErrOverDegree
	ErrLengthMismatch = kzg.ErrLengthMismatch
	ErrNonPowerOfTwo  = kzg.ErrNonPowerOfTwo
	ErrDuplicatePoint = kzg.ErrDuplicatePoint
	ErrEmptyBatch     = kzg.ErrEmptyBatch
)
