package kzg

// MBBProof is the constant-size, two-element proof for a full batch: W
// witnesses that the folded difference vanishes on the point set, W'
// witnesses that the folded claimed-value polynomial agrees with the
// folded evaluation at the challenge point chi.
type MBBProof struct {
	W  G1
	Wp G1
}

// MBBEvaluate produces, for each polynomial, the degree-<n polynomial V_i
// interpolating {(points[j], polys[i](points[j]))}_j, not a list of
// values, a single polynomial per input polynomial. It rejects an empty
// batch and unequal lengths; the power-of-two batch size is checked by
// MBBOpen and MBBVerify.
func MBBEvaluate(polys []Polynomial, points []Scalar) ([]Polynomial, error) {
	if len(polys) == 0 || len(points) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(polys) != len(points) {
		return nil, ErrLengthMismatch
	}

	result := make([]Polynomial, len(polys))
	err := ParallelFor(len(polys), func(i int) error {
		ys := make([]Scalar, len(points))
		for j, z := range points {
			ys[j] = polys[i].Eval(z)
		}
		interp, err := LagrangeInterpolate(points, ys)
		if err != nil {
			return err
		}
		result[i] = interp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MBBOpen builds the constant-size proof for the whole batch:
//
//  1. fold polys and evaluations with powers of lambda:
//     f(X) = sum_i lambda^i * (polys[i](X) - V[i](X))
//     L(X) = sum_i lambda^i * polys[i](X) - (sum_i lambda^i * V[i](chi))
//  2. Z_T(X) = vanishing polynomial over points
//  3. w(X) = f(X) / Z_T(X)            (exact: f vanishes on points by construction)
//  4. W = [w(alpha)]_1
//  5. L'(X) = L(X) - Z_T(chi)*w(X), r(X) = L'(X) / (X - chi)
//  6. W' = [r(alpha)]_1
func MBBOpen(pk *PublicKey, polys []Polynomial, points []Scalar, values []Polynomial, lambda, chi Scalar) (MBBProof, error) {
	if err := checkBatchShape(len(polys), len(points)); err != nil {
		return MBBProof{}, err
	}
	if len(values) != len(polys) {
		return MBBProof{}, ErrLengthMismatch
	}
	if err := checkDegrees(pk, polys); err != nil {
		return MBBProof{}, err
	}

	var f, l Polynomial
	var foldedVAtChi Scalar
	var lambdaPow Scalar
	lambdaPow.SetOne()

	for i := range polys {
		diff := polys[i].Sub(values[i])
		f = f.Add(diff.ScalarMul(lambdaPow))
		l = l.Add(polys[i].Clone().ScalarMul(lambdaPow))

		vAtChi := values[i].Eval(chi)
		var t Scalar
		t.Mul(&vAtChi, &lambdaPow)
		foldedVAtChi.Add(&foldedVAtChi, &t)

		lambdaPow.Mul(&lambdaPow, &lambda)
	}
	if len(l) == 0 {
		l = Polynomial{Scalar{}}
	}
	l[0].Sub(&l[0], &foldedVAtChi)

	zt := VanishingTree(points)
	w, err := f.DivideExact(zt)
	if err != nil {
		return MBBProof{}, err
	}
	W, err := EvalPolyOverG1(w, pk.G1Powers)
	if err != nil {
		return MBBProof{}, err
	}

	ztAtChi := zt.Eval(chi)
	lPrime := l.Sub(w.ScalarMul(ztAtChi))
	r, _ := lPrime.DivideLinear(chi)

	Wp, err := EvalPolyOverG1(r, pk.G1Powers)
	if err != nil {
		return MBBProof{}, err
	}

	return MBBProof{W: W, Wp: Wp}, nil
}

// MBBVerify rebuilds Z_T(X) independently of the prover (it must not trust
// the prover's vanishing polynomial) and checks:
//
//	F   = sum_i lambda^i*C[i] - g1*(sum_i lambda^i*V[i](chi)) - W*Z_T(chi)
//	accept iff e(F + W'*chi, g2) == e(W', g2^alpha)
func MBBVerify(commitments []G1, pk *PublicKey, proof MBBProof, points []Scalar, values []Polynomial, lambda, chi Scalar) (bool, error) {
	if err := checkBatchShape(len(commitments), len(points)); err != nil {
		return false, err
	}
	if len(values) != len(commitments) {
		return false, ErrLengthMismatch
	}

	coeffs := make([]Scalar, len(commitments))
	var foldedVAtChi Scalar
	var lambdaPow Scalar
	lambdaPow.SetOne()
	for i := range commitments {
		coeffs[i] = lambdaPow
		vAtChi := values[i].Eval(chi)
		var t Scalar
		t.Mul(&vAtChi, &lambdaPow)
		foldedVAtChi.Add(&foldedVAtChi, &t)
		lambdaPow.Mul(&lambdaPow, &lambda)
	}

	foldedC, err := g1MSM(coeffs, commitments)
	if err != nil {
		return false, err
	}

	zt := VanishingTree(points)
	ztAtChi := zt.Eval(chi)

	f := G1Sub(foldedC, G1ScalarMul(pk.G1Powers[0], foldedVAtChi))
	f = G1Sub(f, G1ScalarMul(proof.W, ztAtChi))

	lhs := G1Add(f, G1ScalarMul(proof.Wp, chi))
	ok, err := PairingCheck([]G1{lhs, G1Neg(proof.Wp)}, []G2{pk.G2Gen, pk.G2Alpha})
	if err != nil {
		return false, err
	}
	return ok, nil
}
