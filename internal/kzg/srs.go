package kzg

import (
	"io"
	"math/big"
)

// PublicKey is the structured reference string shared by all three
// schemes: powers of g1 under the secret alpha, and the (g2, g2^alpha)
// pair needed for the pairing checks. It is produced once by Setup and is
// read-only thereafter; callers may clone and share it freely across
// concurrent batches.
type PublicKey struct {
	// G1Powers holds <g1, g1^alpha, ..., g1^(alpha^dMax)>.
	G1Powers []G1
	// G2Gen is g2.
	G2Gen G2
	// G2Alpha is g2^alpha.
	G2Alpha G2
}

// MaxDegree returns the highest polynomial degree this key supports.
func (pk *PublicKey) MaxDegree() int {
	return len(pk.G1Powers) - 1
}

// Clone returns an independent copy of pk. The key is logically immutable
// and read-only; Clone exists so callers that want defensive copies don't
// need to reach into the slice themselves.
func (pk *PublicKey) Clone() *PublicKey {
	g1 := make([]G1, len(pk.G1Powers))
	copy(g1, pk.G1Powers)
	return &PublicKey{G1Powers: g1, G2Gen: pk.G2Gen, G2Alpha: pk.G2Alpha}
}

// Setup samples a secret scalar alpha uniformly from rng and derives the
// public key supporting polynomials of degree up to dMax. alpha is
// returned alongside the key for test use only; production callers must
// discard it immediately.
func Setup(dMax int, rng io.Reader) (*PublicKey, Scalar, error) {
	if dMax < 0 {
		return nil, Scalar{}, ErrOverDegree
	}

	alpha, err := RandScalar(rng)
	if err != nil {
		return nil, Scalar{}, err
	}

	g1 := g1Gen()
	g2 := g2Gen()

	g1Powers := make([]G1, dMax+1)
	var accum Scalar
	accum.SetOne()
	for i := 0; i <= dMax; i++ {
		var exp big.Int
		accum.BigInt(&exp)
		g1Powers[i].ScalarMultiplication(&g1, &exp)
		accum.Mul(&accum, &alpha)
	}

	var alphaBig big.Int
	alpha.BigInt(&alphaBig)
	var g2Alpha G2
	g2Alpha.ScalarMultiplication(&g2, &alphaBig)

	return &PublicKey{G1Powers: g1Powers, G2Gen: g2, G2Alpha: g2Alpha}, alpha, nil
}
