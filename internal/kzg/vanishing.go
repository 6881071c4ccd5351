package kzg

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// VanishingTree computes the monic polynomial that vanishes exactly on
// points, prod_{z in points}(X - z), by placing the |points| linear
// factors at the leaves of a balanced binary tree and multiplying pairs
// bottom-up. Each product uses the schoolbook Polynomial.Mul, so the total
// cost is O(n^2), the same order as a left fold; it is not O(n log^2 n).
func VanishingTree(points []Scalar) Polynomial {
	if len(points) == 0 {
		return Polynomial{fr.One()}
	}

	layer := make([]Polynomial, len(points))
	for i, z := range points {
		var negZ Scalar
		negZ.Neg(&z)
		layer[i] = Polynomial{negZ, fr.One()}
	}

	for len(layer) > 1 {
		next := make([]Polynomial, (len(layer)+1)/2)
		for i := range next {
			if 2*i+1 < len(layer) {
				next[i] = layer[2*i].Mul(layer[2*i+1])
			} else {
				next[i] = layer[2*i]
			}
		}
		layer = next
	}
	return layer[0]
}

// LagrangeInterpolate returns the unique polynomial of degree < len(xs)
// passing through (xs[i], ys[i]) for every i, computed as
// L(X) = sum_i y_i * Z_i(X) / Z_i(x_i), where Z is the vanishing
// polynomial over all xs and Z_i = Z / (X - x_i).
//
// Requires distinct xs; a duplicate produces Z_i(x_i) == 0, which cannot
// be inverted, and is reported as ErrDuplicatePoint.
func LagrangeInterpolate(xs, ys []Scalar) (Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) == 0 {
		return nil, ErrEmptyBatch
	}

	z := VanishingTree(xs)
	result := make(Polynomial, len(xs))

	for i := range xs {
		zi, rem := z.DivideLinear(xs[i])
		if !rem.IsZero() {
			// xs[i] is a root of z by construction; a non-zero remainder
			// here means xs[i] was not actually a root, which only
			// happens if xs contains a value that slipped past the
			// caller's duplicate check in a way VanishingTree itself
			// cannot detect (e.g. a prior silent bug upstream).
			return nil, ErrInexactDivision
		}

		denom := zi.Eval(xs[i])
		if denom.IsZero() {
			return nil, ErrDuplicatePoint
		}
		var denomInv, coeff Scalar
		denomInv.Inverse(&denom)
		coeff.Mul(&denomInv, &ys[i])

		result = result.Add(zi.ScalarMul(coeff))
	}

	return result, nil
}

// EvalPolyOverG1 returns sum_i coeff_i(f) * srs[i], the inner product of
// f's coefficient vector with a structured reference string in G1.
// Requires len(srs) >= deg(f) + 1. The zero polynomial evaluates to the
// identity of G1.
func EvalPolyOverG1(f Polynomial, srs []G1) (G1, error) {
	f = f[:f.Degree()+1]
	if len(f) == 0 {
		return G1{}, nil
	}
	if len(f) > len(srs) {
		return G1{}, ErrOverDegree
	}

	return g1MSM(f, srs[:len(f)])
}
