package kzgcommitments

import (
	"io"

	"github.com/nokotan8/kzg-commitments/internal/kzg"
)

// GWC batches openings per point rather than per pair: a batch of n
// polynomials opened at n points produces one witness per point, each
// folding all n polynomials with powers of a per-point randomness gamma.
type GWC struct {
	pk *kzg.PublicKey
}

// GWCSecretKey is the toxic waste from Setup, returned for tests only.
type GWCSecretKey = kzg.Scalar

// NewGWC constructs a GWC scheme instance bound to an existing public key.
func NewGWC(pk *kzg.PublicKey) *GWC {
	return &GWC{pk: pk}
}

// SetupGWC draws a fresh structured reference string up to degree dMax.
func SetupGWC(dMax int, rng io.Reader) (*GWC, GWCSecretKey, error) {
	pk, alpha, err := kzg.Setup(dMax, rng)
	if err != nil {
		return nil, GWCSecretKey{}, err
	}
	return &GWC{pk: pk}, alpha, nil
}

// PublicKey returns the scheme's structured reference string.
func (s *GWC) PublicKey() *kzg.PublicKey { return s.pk }

// SchemeName implements Identifier.
func (s *GWC) SchemeName() string { return "gwc" }

// Commit binds each polynomial in polys to a single G1 element.
func (s *GWC) Commit(polys []Polynomial) ([]Commitment, error) {
	return kzg.KZGCommit(s.pk, polys)
}

// Evaluate returns the n×n matrix of claimed values, shared with KZG since
// both schemes open the same per-(polynomial, point) values; GWC differs
// only in how the witnesses are folded and verified, not in what is
// claimed.
func (s *GWC) Evaluate(polys []Polynomial, points []Scalar) ([][]Scalar, error) {
	return kzg.KZGEvaluate(polys, points)
}

// Open produces one folded witness per point, using the caller-supplied
// per-point randomness gamma (one scalar per point; gamma[i] folds the n
// polynomials opened at points[i]).
func (s *GWC) Open(polys []Polynomial, points []Scalar, values [][]Scalar, gamma []Scalar) ([]Commitment, error) {
	return kzg.GWCOpen(s.pk, polys, points, values, gamma)
}

// Verify checks the single folded pairing equation covering every point at
// once. rng supplies the verifier's own per-point randomness r, with r[0]
// fixed to 1 by convention (preserved, not re-derived per call); a
// production caller deriving r via Fiat-Shamir should pass a reader backed
// by that transcript instead of crypto/rand.
func (s *GWC) Verify(commitments []Commitment, proof []Commitment, points []Scalar, values [][]Scalar, gamma []Scalar, rng io.Reader) (bool, error) {
	return kzg.GWCVerify(commitments, s.pk, proof, points, values, gamma, rng)
}
