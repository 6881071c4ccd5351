// Package kzg implements the polynomial arithmetic and the three batched
// opening schemes (KZG, GWC, MBB) over BLS12-381, as specified by the
// uniform PolyCommit contract in the parent package.
package kzg

import (
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Scalar is an element of the scalar field F.
type Scalar = fr.Element

// G1 is an element of the source group G1.
type G1 = bls12381.G1Affine

// G2 is an element of the source group G2.
type G2 = bls12381.G2Affine

// GT is an element of the target group.
type GT = bls12381.GT

// PairingCheck reports whether the product of the pairings e(P[i], Q[i])
// equals 1 in G_T. A single-equation check e(A, B) == e(C, D) is expressed
// as PairingCheck([A, -C], [B, D]) so a two-sided equality becomes one
// optimised Miller-loop-plus-final-exponentiation batch, exactly as the
// host library's own bilinear-pairing equality helper does internally.
func PairingCheck(p []G1, q []G2) (bool, error) {
	return bls12381.PairingCheck(p, q)
}

// g1MSM computes sum_i scalars[i] * points[i], the multi-scalar-
// multiplication primitive every fold (GWC's per-point collapse, MBB's
// lambda-fold of commitments, the SRS inner product itself) reduces to.
func g1MSM(scalars []Scalar, points []G1) (G1, error) {
	if len(scalars) != len(points) {
		return G1{}, ErrLengthMismatch
	}
	if len(scalars) == 0 {
		return G1{}, nil
	}
	var result G1
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return G1{}, err
	}
	return result, nil
}

func g1ToJac(p G1) bls12381.G1Jac {
	var j bls12381.G1Jac
	j.FromAffine(&p)
	return j
}

func jacToG1(j bls12381.G1Jac) G1 {
	var a G1
	a.FromJacobian(&j)
	return a
}

// G1Add returns a + b in G1.
func G1Add(a, b G1) G1 {
	aj := g1ToJac(a)
	bj := g1ToJac(b)
	aj.AddAssign(&bj)
	return jacToG1(aj)
}

// G1Sub returns a - b in G1.
func G1Sub(a, b G1) G1 {
	aj := g1ToJac(a)
	bj := g1ToJac(b)
	aj.SubAssign(&bj)
	return jacToG1(aj)
}

// G1ScalarMul returns s * p in G1.
func G1ScalarMul(p G1, s Scalar) G1 {
	var exp big.Int
	s.BigInt(&exp)
	var out G1
	out.ScalarMultiplication(&p, &exp)
	return out
}

// G2Sub returns a - b in G2.
func G2Sub(a, b G2) G2 {
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.SubAssign(&bj)
	var out G2
	out.FromJacobian(&aj)
	return out
}

// G2ScalarMul returns s * p in G2.
func G2ScalarMul(p G2, s Scalar) G2 {
	var exp big.Int
	s.BigInt(&exp)
	var out G2
	out.ScalarMultiplication(&p, &exp)
	return out
}

// RandScalar draws a uniform element of F from rng. rng is an explicit
// capability rather than a package-level default so that setup and
// verifier randomness can be made deterministic for tests.
func RandScalar(rng io.Reader) (Scalar, error) {
	var s Scalar
	// fr.Element.SetRandom draws from crypto/rand internally; for an
	// injected, possibly-deterministic source we instead sample raw bytes
	// and reduce them modulo r with SetBytes. Sixteen bytes beyond the
	// field width keep the bias of that reduction below 2^-128.
	var buf [fr.Bytes + 16]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, err
	}
	s.SetBytes(buf[:])
	return s, nil
}

// g1Gen, g2Gen return the fixed generators of G1, G2 used as the base of
// every SRS. The scheme does not need a random generator per setup call
// (any two honestly-chosen generators work; gnark-crypto's canonical
// generators keep setups reproducible across runs for a given alpha).
func g1Gen() G1 {
	_, _, g1Aff, _ := bls12381.Generators()
	return g1Aff
}

func g2Gen() G2 {
	_, _, _, g2Aff := bls12381.Generators()
	return g2Aff
}
