package kzgcommitments

import (
	"io"

	"github.com/nokotan8/kzg-commitments/internal/kzg"
)

// KZG is the per-(polynomial, point) pair opening scheme: a batch of n
// polynomials opened at n points produces an n×n matrix of witnesses, one
// per pair, each independently verifiable with its own pairing check.
type KZG struct {
	pk *kzg.PublicKey
}

// KZGSecretKey is the toxic waste from Setup, returned for tests only; a
// production caller must discard it immediately after the ceremony.
type KZGSecretKey = kzg.Scalar

// KZGProof is the n×n matrix of witness commitments: Proof[i][j] opens
// polynomial i at point j.
type KZGProof = kzg.KZGProof

// NewKZG constructs a KZG scheme instance bound to an existing public key,
// e.g. one shared across schemes from a single Setup call.
func NewKZG(pk *kzg.PublicKey) *KZG {
	return &KZG{pk: pk}
}

// SetupKZG draws a fresh structured reference string up to degree dMax.
func SetupKZG(dMax int, rng io.Reader) (*KZG, KZGSecretKey, error) {
	pk, alpha, err := kzg.Setup(dMax, rng)
	if err != nil {
		return nil, KZGSecretKey{}, err
	}
	return &KZG{pk: pk}, alpha, nil
}

// PublicKey returns the scheme's structured reference string.
func (s *KZG) PublicKey() *kzg.PublicKey { return s.pk }

// SchemeName implements Identifier.
func (s *KZG) SchemeName() string { return "kzg" }

// Commit binds each polynomial in polys to a single G1 element.
func (s *KZG) Commit(polys []Polynomial) ([]Commitment, error) {
	return kzg.KZGCommit(s.pk, polys)
}

// Evaluate returns the n×n matrix of claimed values, values[i][j] =
// polys[i](points[j]).
func (s *KZG) Evaluate(polys []Polynomial, points []Scalar) ([][]Scalar, error) {
	return kzg.KZGEvaluate(polys, points)
}

// Open proves every (polynomial, point) pair independently.
func (s *KZG) Open(polys []Polynomial, points []Scalar, values [][]Scalar) (KZGProof, error) {
	return kzg.KZGOpen(s.pk, polys, points, values)
}

// Verify checks every (polynomial, point) pair's witness against its own
// pairing equation, accepting only if all n² checks pass.
func (s *KZG) Verify(commitments []Commitment, proof KZGProof, points []Scalar, values [][]Scalar) (bool, error) {
	return kzg.KZGVerify(commitments, s.pk, proof, points, values)
}
