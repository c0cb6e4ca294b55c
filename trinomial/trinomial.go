// Package trinomial implements the algebraic objects attached to the family
// x^n = x + 1: the trinomials themselves, their dominant (Pisot) roots, the
// minimal polynomials of products of such roots, and the norm form of the
// golden ratio ring Z[phi].
package trinomial

import (
	"fmt"
	"math/big"

	"github.com/pisotlab/spectral/poly"
)

// New returns the trinomial x^n - x - 1 for n >= 2.
func New(n int) poly.Poly {
	if n < 2 {
		panic(fmt.Errorf("cannot New: n must be >= 2, got %d", n))
	}
	p := poly.Monomial(big.NewInt(1), n)
	return p.Sub(poly.NewPoly(1, 1))
}

// Golden returns t^2 - t - 1, the minimal polynomial of the golden ratio.
func Golden() poly.Poly {
	return poly.NewPoly(-1, -1, 1)
}

// ProductMinPoly returns P_{m,n}(t), the minimal polynomial of r_m * r_n
// where r_k is the dominant real root of x^k - x - 1, for 2 <= m < n. It is
// the resultant in x of
//
//	x^m - x - 1   and   t^n - t*x^(n-1) - x^n,
//
// the second polynomial encoding t = x*y for y a root of y^n = y + 1. For
// m = 2 the product is phi * r_n, the object of the spectral law.
func ProductMinPoly(m, n int) (poly.Poly, error) {
	if m < 2 || n <= m {
		return nil, fmt.Errorf("cannot ProductMinPoly: want 2 <= m < n, got (%d,%d)", m, n)
	}

	// Coefficient slices in x, entries in Z[t].
	f := make([]poly.Poly, m+1)
	for i := range f {
		f[i] = poly.Poly{}
	}
	f[0] = poly.NewPoly(-1)
	f[1] = poly.NewPoly(-1)
	f[m] = poly.NewPoly(1)

	g := make([]poly.Poly, n+1)
	for i := range g {
		g[i] = poly.Poly{}
	}
	g[0] = poly.Monomial(big.NewInt(1), n) // t^n
	g[n-1] = poly.NewPoly(0, -1)           // -t
	g[n] = poly.NewPoly(-1)

	p, err := poly.Resultant(f, g)
	if err != nil {
		return nil, fmt.Errorf("cannot ProductMinPoly(%d,%d): %w", m, n, err)
	}
	return p, nil
}

// GoldenRemainder divides p by t^2 - t - 1 and returns the remainder a*t + b
// as the pair (a, b). It errors if the division leaves a remainder of degree
// >= 2 or if quotient*(t^2-t-1) + remainder fails to reconstruct p, either of
// which would indicate a broken division.
func GoldenRemainder(p poly.Poly) (a, b *big.Int, err error) {
	golden := Golden()
	quo, rem, err := p.QuoRem(golden)
	if err != nil {
		return nil, nil, err
	}
	if rem.Degree() > 1 {
		return nil, nil, fmt.Errorf("cannot GoldenRemainder: remainder %s has degree %d", rem, rem.Degree())
	}
	if !quo.Mul(golden).Add(rem).Equal(p) {
		return nil, nil, fmt.Errorf("cannot GoldenRemainder: reconstruction failed for %s", p)
	}
	return rem.Coeff(1), rem.Coeff(0), nil
}

// Norm returns the field norm of a*phi + b in Z[phi]: the product of a*t + b
// over both roots of t^2 - t - 1, which is -a^2 + a*b + b^2.
func Norm(a, b *big.Int) (n *big.Int) {
	n = new(big.Int).Mul(a, a)
	n.Neg(n)
	tmp := new(big.Int).Mul(a, b)
	n.Add(n, tmp)
	n.Add(n, tmp.Mul(b, b))
	return
}
