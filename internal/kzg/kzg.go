package kzg

// KZGProof is the n x n matrix of witness commitments, one per
// (polynomial, point) pair: Proof[i][j] opens polynomial i at point j.
type KZGProof [][]G1

// KZGCommit commits to each polynomial in polys, yielding one G1 element
// per polynomial.
func KZGCommit(pk *PublicKey, polys []Polynomial) ([]G1, error) {
	commitments := make([]G1, len(polys))
	for i, p := range polys {
		if p.Degree() > pk.MaxDegree() {
			return nil, ErrOverDegree
		}
		c, err := EvalPolyOverG1(p, pk.G1Powers)
		if err != nil {
			return nil, err
		}
		commitments[i] = c
	}
	return commitments, nil
}

// KZGEvaluate returns the matrix V where V[i][j] = polys[i](points[j]).
func KZGEvaluate(polys []Polynomial, points []Scalar) ([][]Scalar, error) {
	values := make([][]Scalar, len(polys))
	for i, p := range polys {
		row := make([]Scalar, len(points))
		for j, z := range points {
			row[j] = p.Eval(z)
		}
		values[i] = row
	}
	return values, nil
}

// KZGOpen computes, for every (i, j), the witness commitment to
// (poly[i](X) - values[i][j]) / (X - points[j]).
//
// polys.len() must equal points.len() (the structural n x n shape every
// scheme shares); the batch size must be a power of two, matching the
// other two schemes' reliance on the balanced vanishing-tree construction
// even though KZG's own per-pair quotient does not itself build one. The
// restriction is part of the uniform contract, not of this algorithm.
func KZGOpen(pk *PublicKey, polys []Polynomial, points []Scalar, values [][]Scalar) (KZGProof, error) {
	if err := checkBatchShape(len(polys), len(points)); err != nil {
		return nil, err
	}
	if len(values) != len(polys) {
		return nil, ErrLengthMismatch
	}
	if err := checkDegrees(pk, polys); err != nil {
		return nil, err
	}

	proof := make(KZGProof, len(polys))
	err := ParallelFor(len(polys), func(i int) error {
		if len(values[i]) != len(points) {
			return ErrLengthMismatch
		}
		row := make([]G1, len(points))
		for j, z := range points {
			numerator := polys[i].Clone()
			if len(numerator) == 0 {
				numerator = Polynomial{Scalar{}}
			}
			numerator[0].Sub(&numerator[0], &values[i][j])
			quotient, _ := numerator.DivideLinear(z)
			w, err := EvalPolyOverG1(quotient, pk.G1Powers)
			if err != nil {
				return err
			}
			row[j] = w
		}
		proof[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return proof, nil
}

// KZGVerify checks, for every (i, j):
//
//	e(C[i] - g1*V[i][j], g2) == e(proof[i][j], g2^alpha - g2*points[j])
//
// Accepts iff all n^2 checks pass. No verifier randomness is used.
func KZGVerify(commitments []G1, pk *PublicKey, proof KZGProof, points []Scalar, values [][]Scalar) (bool, error) {
	if err := checkBatchShape(len(commitments), len(points)); err != nil {
		return false, err
	}
	if len(proof) != len(commitments) || len(values) != len(commitments) {
		return false, ErrLengthMismatch
	}

	for i := range commitments {
		if len(proof[i]) != len(points) || len(values[i]) != len(points) {
			return false, ErrLengthMismatch
		}
		for j, z := range points {
			lhsG1 := G1Sub(commitments[i], G1ScalarMul(pk.G1Powers[0], values[i][j]))
			rhsG2 := G2Sub(pk.G2Alpha, G2ScalarMul(pk.G2Gen, z))

			negProof := G1Neg(proof[i][j])
			ok, err := PairingCheck([]G1{lhsG1, negProof}, []G2{pk.G2Gen, rhsG2})
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// G1Neg returns -p in G1.
func G1Neg(p G1) G1 {
	var out G1
	out.Neg(&p)
	return out
}

// checkDegrees rejects any polynomial whose exact degree exceeds the
// key's d_max. The quotient a witness is built from has degree one below
// the dividend's, so without this check a polynomial of degree d_max+1
// would slip through the SRS length check on its quotient alone.
func checkDegrees(pk *PublicKey, polys []Polynomial) error {
	for _, p := range polys {
		if p.Degree() > pk.MaxDegree() {
			return ErrOverDegree
		}
	}
	return nil
}

// checkBatchShape enforces the two preconditions every scheme's open/verify
// shares: equal polynomial/point counts, and a power-of-two batch size.
func checkBatchShape(nPolys, nPoints int) error {
	if nPolys == 0 || nPoints == 0 {
		return ErrEmptyBatch
	}
	if nPolys != nPoints {
		return ErrLengthMismatch
	}
	if nPolys&(nPolys-1) != 0 {
		return ErrNonPowerOfTwo
	}
	return nil
}
