package kzg

// Polynomial is a dense univariate polynomial over F, coefficients in
// increasing order of degree: Polynomial[i] is the coefficient of X^i.
// The zero polynomial is represented by a nil or empty slice.
type Polynomial []Scalar

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
// Trailing zero coefficients are not trimmed automatically by arithmetic
// operations below; callers that need an exact degree call Degree, which
// walks back past any trailing zeros.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// Eval evaluates p at x using Horner's method.
func (p Polynomial) Eval(x Scalar) Scalar {
	var result Scalar
	for i := len(p) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &p[i])
	}
	return result
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b Scalar
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Add(&a, &b)
	}
	return out
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		var a, b Scalar
		if i < len(p) {
			a = p[i]
		}
		if i < len(q) {
			b = q[i]
		}
		out[i].Sub(&a, &b)
	}
	return out
}

// ScalarMul returns c * p.
func (p Polynomial) ScalarMul(c Scalar) Polynomial {
	out := make(Polynomial, len(p))
	for i := range p {
		out[i].Mul(&p[i], &c)
	}
	return out
}

// Mul returns the schoolbook product p * q. Batches handled by this
// library are small (n, d <= 256 per the correctness scenarios), so the
// naive O(len(p)*len(q)) product is not a bottleneck worth an FFT.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	out := make(Polynomial, len(p)+len(q)-1)
	for i, a := range p {
		if a.IsZero() {
			continue
		}
		for j, b := range q {
			var t Scalar
			t.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &t)
		}
	}
	return out
}

// DivideLinear computes the quotient of p by the linear factor (X - z),
// using synthetic division, and returns the remainder p(z) alongside it.
// This is exact iff the remainder is subtracted first, i.e. iff the caller
// wants (p - p(z))/(X - z); DivideLinear always returns the true quotient
// and true remainder of p / (X - z) so callers can choose.
func (p Polynomial) DivideLinear(z Scalar) (quotient Polynomial, remainder Scalar) {
	if len(p) == 0 {
		return nil, Scalar{}
	}
	quotient = make(Polynomial, len(p)-1)
	var carry Scalar
	for i := len(p) - 1; i >= 1; i-- {
		// carry holds the coefficient fed down from the term above.
		var t Scalar
		t.Mul(&carry, &z)
		t.Add(&t, &p[i])
		quotient[i-1] = t
		carry = t
	}
	var t Scalar
	t.Mul(&carry, &z)
	remainder.Add(&t, &p[0])
	return quotient, remainder
}

// QuotientAtPoint computes (p - p(z)) / (X - z) exactly, the standard
// witness-polynomial construction used by KZG and GWC: (X - z) always
// divides p - p(z), so the remainder is discarded without error checking.
func (p Polynomial) QuotientAtPoint(z Scalar) Polynomial {
	quotient, _ := p.DivideLinear(z)
	return quotient
}

// DivideExact performs polynomial long division of p by g and returns the
// quotient, erroring with ErrInexactDivision if the remainder is non-zero.
// Used by MBB for w(X) = f(X) / Z_T(X), which is exact by construction of
// the dividend (it vanishes everywhere the divisor does); MBB's division
// by (X - chi) uses DivideLinear instead.
func (p Polynomial) DivideExact(g Polynomial) (Polynomial, error) {
	gDeg := g.Degree()
	if gDeg < 0 {
		return nil, ErrInexactDivision
	}
	remainder := p.Clone()
	remDeg := remainder.Degree()
	if remDeg < gDeg {
		if remDeg < 0 {
			return Polynomial{}, nil
		}
		return nil, ErrInexactDivision
	}

	quotient := make(Polynomial, remDeg-gDeg+1)
	var leadInv Scalar
	leadInv.Inverse(&g[gDeg])

	for remDeg >= gDeg {
		var coeff Scalar
		coeff.Mul(&remainder[remDeg], &leadInv)
		quotient[remDeg-gDeg] = coeff

		for i := 0; i <= gDeg; i++ {
			var t Scalar
			t.Mul(&coeff, &g[i])
			remainder[remDeg-gDeg+i].Sub(&remainder[remDeg-gDeg+i], &t)
		}

		remDeg = remainder.Degree()
	}

	if remDeg >= 0 {
		return nil, ErrInexactDivision
	}
	return quotient, nil
}
