// Package shamir implements the Shamir secret-sharing encoder (C3):
// polynomial evaluation and Lagrange interpolation at zero over the
// secp256k1 scalar field, grounded in the original implementation's
// shamir_poly/poly_eval/lagrange_coefficients_at_zero/interpolate_zero
// (wallet/bekd_crypto.py) and mirrored in spirit by the teacher's
// pkg/math/polynomial.Lagrange.
package shamir

import (
	"crypto/rand"
	"io"

	"github.com/luxfi/bekd/internal/curve"
)

// Polynomial is P(x) = secret + a_1 x + ... + a_degree x^degree.
type Polynomial struct {
	coeffs []*curve.Scalar // coeffs[0] is the constant term
}

// NewPolynomial samples a random polynomial of the given degree with
// secret as its constant term. Used both for the biometric sketch (C6,
// degree tbio-1) and the simulated DKG (C4, degree t).
func NewPolynomial(degree int, secret *curve.Scalar, rnd io.Reader) (*Polynomial, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	coeffs := make([]*curve.Scalar, degree+1)
	coeffs[0] = secret.Clone()
	for i := 1; i <= degree; i++ {
		a, err := curve.RandomScalar(rnd)
		if err != nil {
			return nil, err
		}
		coeffs[i] = a
	}
	return &Polynomial{coeffs: coeffs}, nil
}

// Evaluate computes P(x) via Horner's method.
func (p *Polynomial) Evaluate(x *curve.Scalar) *curve.Scalar {
	acc := curve.NewScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(x)
		acc.Add(p.coeffs[i])
	}
	return acc
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// LagrangeAtZero computes, for each index in indices, the Lagrange
// coefficient λ_i = ∏_{j≠i} (-j) · (i-j)^-1 mod N, such that
// Σ λ_i · P(i) = P(0) for any polynomial of degree < len(indices).
func LagrangeAtZero(indices []int) map[int]*curve.Scalar {
	out := make(map[int]*curve.Scalar, len(indices))
	for _, i := range indices {
		num := curve.ScalarFromUint64(1)
		den := curve.ScalarFromUint64(1)
		for _, j := range indices {
			if i == j {
				continue
			}
			negJ := curve.ScalarFromUint64(uint64(j)).Negate()
			num.Mul(negJ)

			diff := curve.ScalarFromUint64(uint64(i)).Sub(curve.ScalarFromUint64(uint64(j)))
			den.Mul(diff)
		}
		out[i] = num.Mul(den.Inverse())
	}
	return out
}

// Point is a single (index, value) Shamir share, used as input to
// InterpolateZero.
type Point struct {
	Index int
	Value *curve.Scalar
}

// InterpolateZero reconstructs P(0) = Σ y_i · λ_i from a set of points,
// given a consistent polynomial of degree < len(points).
func InterpolateZero(points []Point) *curve.Scalar {
	indices := make([]int, len(points))
	for i, pt := range points {
		indices[i] = pt.Index
	}
	lagrange := LagrangeAtZero(indices)

	acc := curve.NewScalar()
	for _, pt := range points {
		term := pt.Value.Clone().Mul(lagrange[pt.Index])
		acc.Add(term)
	}
	return acc
}
