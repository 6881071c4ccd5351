package kzgcommitments

import (
	"io"

	"github.com/nokotan8/kzg-commitments/internal/kzg"
)

// MBB ("mega batch, boiled down") produces one constant-size, two-element
// proof for an entire batch of n polynomials opened at n points,
// regardless of n or the polynomial degree, the opposite end of the
// proof-size/verifier-work trade-off from KZG.
type MBB struct {
	pk *kzg.PublicKey
}

// MBBSecretKey is the toxic waste from Setup, returned for tests only.
type MBBSecretKey = kzg.Scalar

// MBBProof is the two-element proof shared by the whole batch.
type MBBProof = kzg.MBBProof

// NewMBB constructs an MBB scheme instance bound to an existing public key.
func NewMBB(pk *kzg.PublicKey) *MBB {
	return &MBB{pk: pk}
}

// SetupMBB draws a fresh structured reference string up to degree dMax.
func SetupMBB(dMax int, rng io.Reader) (*MBB, MBBSecretKey, error) {
	pk, alpha, err := kzg.Setup(dMax, rng)
	if err != nil {
		return nil, MBBSecretKey{}, err
	}
	return &MBB{pk: pk}, alpha, nil
}

// PublicKey returns the scheme's structured reference string.
func (s *MBB) PublicKey() *kzg.PublicKey { return s.pk }

// SchemeName implements Identifier.
func (s *MBB) SchemeName() string { return "mbb" }

// Commit binds each polynomial in polys to a single G1 element.
func (s *MBB) Commit(polys []Polynomial) ([]Commitment, error) {
	return kzg.KZGCommit(s.pk, polys)
}

// Evaluate returns, for each polynomial, the degree-<n polynomial
// interpolating that polynomial's values over points, not a value matrix,
// since MBB's opening equation folds whole evaluation polynomials rather
// than point-by-point values.
func (s *MBB) Evaluate(polys []Polynomial, points []Scalar) ([]Polynomial, error) {
	return kzg.MBBEvaluate(polys, points)
}

// Open builds the constant-size batch proof, folding with the
// prover-and-verifier-shared scalars lambda (per-polynomial fold) and chi
// (evaluation challenge point).
func (s *MBB) Open(polys []Polynomial, points []Scalar, values []Polynomial, lambda, chi Scalar) (MBBProof, error) {
	return kzg.MBBOpen(s.pk, polys, points, values, lambda, chi)
}

// Verify rebuilds the vanishing polynomial over points independently of the
// prover and checks the single pairing equation covering the whole batch.
func (s *MBB) Verify(commitments []Commitment, proof MBBProof, points []Scalar, values []Polynomial, lambda, chi Scalar) (bool, error) {
	return kzg.MBBVerify(commitments, s.pk, proof, points, values, lambda, chi)
}
