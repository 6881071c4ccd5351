package kzgcommitments

import (
	"io"
	"testing"

	"github.com/nokotan8/kzg-commitments/internal/kzg"
	"github.com/stretchr/testify/require"
)

func oneScalarT() Scalar {
	var s Scalar
	s.SetOne()
	return s
}

func addOneScalarT(s Scalar) Scalar {
	one := oneScalarT()
	var out Scalar
	out.Add(&s, &one)
	return out
}

func randPolyFromRNG(t *testing.T, rng io.Reader, degree int) Polynomial {
	t.Helper()
	p := make(Polynomial, degree+1)
	for i := range p {
		s, err := kzg.RandScalar(rng)
		require.NoError(t, err)
		p[i] = s
	}
	if p[degree].IsZero() {
		p[degree] = oneScalarT()
	}
	return p
}

func randPolysFromRNG(t *testing.T, rng io.Reader, n, degree int) []Polynomial {
	t.Helper()
	out := make([]Polynomial, n)
	for i := range out {
		out[i] = randPolyFromRNG(t, rng, degree)
	}
	return out
}

func randDistinctScalarsFromRNG(t *testing.T, rng io.Reader, n int) []Scalar {
	t.Helper()
	seen := make(map[Scalar]bool)
	out := make([]Scalar, 0, n)
	for len(out) < n {
		s, err := kzg.RandScalar(rng)
		require.NoError(t, err)
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
