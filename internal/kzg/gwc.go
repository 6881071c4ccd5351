package kzg

import "io"

// GWCOpen batches openings per point: for each point index i it folds the
// polynomials with powers of gamma[i] before dividing once by (X -
// points[i]), producing one proof element per point rather than per
// (polynomial, point) pair.
//
//	h_i(X) = sum_j gamma[i]^j * (polys[j](X) - values[j][i])
//	proof[i] = [h_i(X) / (X - points[i])]_1
func GWCOpen(pk *PublicKey, polys []Polynomial, points []Scalar, values [][]Scalar, gamma []Scalar) ([]G1, error) {
	n := len(points)
	if err := checkBatchShape(len(polys), n); err != nil {
		return nil, err
	}
	if len(gamma) != n || len(values) != len(polys) {
		return nil, ErrLengthMismatch
	}
	if err := checkDegrees(pk, polys); err != nil {
		return nil, err
	}

	proof := make([]G1, n)
	err := ParallelFor(n, func(i int) error {
		var h Polynomial
		var gammaPow Scalar
		gammaPow.SetOne()
		for j := range polys {
			if len(values[j]) != n {
				return ErrLengthMismatch
			}
			term := polys[j].Clone()
			if len(term) == 0 {
				term = Polynomial{Scalar{}}
			}
			term[0].Sub(&term[0], &values[j][i])
			h = h.Add(term.ScalarMul(gammaPow))
			gammaPow.Mul(&gammaPow, &gamma[i])
		}

		quotient, _ := h.DivideLinear(points[i])
		w, err := EvalPolyOverG1(quotient, pk.G1Powers)
		if err != nil {
			return err
		}
		proof[i] = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proof, nil
}

// GWCVerify folds per-point commitments and claimed values with the same
// gamma powers the prover used, then folds across points with a second,
// verifier-sampled randomness r (r[0] fixed to 1 by convention)
// into one pairing equation:
//
//	F      = sum_i r[i] * (G_i - g1*h_i),  where G_i, h_i are the gamma-folds
//	LHS    = F + sum_i r[i]*points[i]*proof[i]
//	RHS    = sum_i r[i]*proof[i]
//	accept iff e(LHS, g2) == e(RHS, g2^alpha)
//
// In a non-interactive deployment r must be derived from a Fiat-Shamir
// transcript of (C, Z, V, gamma, proof); that derivation is out of scope
// here and rng is whatever the caller injects (crypto/rand in production,
// a deterministic source in tests).
func GWCVerify(commitments []G1, pk *PublicKey, proof []G1, points []Scalar, values [][]Scalar, gamma []Scalar, rng io.Reader) (bool, error) {
	n := len(points)
	if err := checkBatchShape(len(commitments), n); err != nil {
		return false, err
	}
	if len(proof) != n || len(gamma) != n || len(values) != len(commitments) {
		return false, ErrLengthMismatch
	}

	r := make([]Scalar, n)
	r[0].SetOne()
	for i := 1; i < n; i++ {
		s, err := RandScalar(rng)
		if err != nil {
			return false, err
		}
		r[i] = s
	}

	var f, lhsExtra, rhs G1
	for i := range points {
		gammaPowers := make([]Scalar, len(commitments))
		var gammaPow Scalar
		gammaPow.SetOne()
		var h Scalar
		for j := range commitments {
			if len(values[j]) != n {
				return false, ErrLengthMismatch
			}
			gammaPowers[j] = gammaPow
			var t Scalar
			t.Mul(&gammaPow, &values[j][i])
			h.Add(&h, &t)
			gammaPow.Mul(&gammaPow, &gamma[i])
		}

		gi, err := g1MSM(gammaPowers, commitments)
		if err != nil {
			return false, err
		}

		term := G1Sub(gi, G1ScalarMul(pk.G1Powers[0], h))
		f = G1Add(f, G1ScalarMul(term, r[i]))

		var riz Scalar
		riz.Mul(&r[i], &points[i])
		lhsExtra = G1Add(lhsExtra, G1ScalarMul(proof[i], riz))
		rhs = G1Add(rhs, G1ScalarMul(proof[i], r[i]))
	}

	lhs := G1Add(f, lhsExtra)
	ok, err := PairingCheck([]G1{lhs, G1Neg(rhs)}, []G2{pk.G2Gen, pk.G2Alpha})
	if err != nil {
		return false, err
	}
	return ok, nil
}
