// Package poly implements exact arithmetic on univariate polynomials with
// arbitrary-precision integer coefficients: ring operations, Euclidean
// division by monic divisors, resultants of bivariate systems via
// fraction-free elimination, and irreducibility witnesses modulo small
// primes. All operations are exact; there is no rounding anywhere.
package poly

import (
	"fmt"
	"math/big"
	"strings"
)

// Poly is a univariate polynomial over the integers, stored as a coefficient
// slice indexed by exponent. A normalized Poly carries no trailing zero
// coefficients; the zero polynomial is the empty (or nil) slice and has
// degree -1 by convention.
type Poly []*big.Int

// NewPoly returns the polynomial with the given coefficients, coeffs[i]
// being the coefficient of the i-th power.
func NewPoly(coeffs ...int64) (p Poly) {
	p = make(Poly, len(coeffs))
	for i := range coeffs {
		p[i] = big.NewInt(coeffs[i])
	}
	return p.normalize()
}

// FromBig returns the polynomial with the given *big.Int coefficients,
// coeffs[i] being the coefficient of the i-th power. The coefficients are
// deep-copied.
func FromBig(coeffs []*big.Int) (p Poly) {
	p = make(Poly, len(coeffs))
	for i := range coeffs {
		p[i] = new(big.Int).Set(coeffs[i])
	}
	return p.normalize()
}

// Monomial returns c * x^k.
func Monomial(c *big.Int, k int) (p Poly) {
	if k < 0 {
		panic(fmt.Errorf("cannot Monomial: negative exponent %d", k))
	}
	p = make(Poly, k+1)
	for i := 0; i < k; i++ {
		p[i] = new(big.Int)
	}
	p[k] = new(big.Int).Set(c)
	return p.normalize()
}

// normalize drops trailing zero coefficients in place.
func (p Poly) normalize() Poly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

// Degree returns the degree of p, with -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p) == 0
}

// Lead returns a copy of the leading coefficient of p, and 0 for the zero
// polynomial.
func (p Poly) Lead() *big.Int {
	if len(p) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(p[len(p)-1])
}

// Coeff returns a copy of the coefficient of the k-th power (zero beyond the
// degree).
func (p Poly) Coeff(k int) *big.Int {
	if k < 0 || k >= len(p) {
		return new(big.Int)
	}
	return new(big.Int).Set(p[k])
}

// CopyNew returns a deep copy of p.
func (p Poly) CopyNew() (q Poly) {
	q = make(Poly, len(p))
	for i := range p {
		q[i] = new(big.Int).Set(p[i])
	}
	return
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) (r Poly) {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r = make(Poly, n)
	for i := range r {
		r[i] = new(big.Int)
		if i < len(p) {
			r[i].Add(r[i], p[i])
		}
		if i < len(q) {
			r[i].Add(r[i], q[i])
		}
	}
	return r.normalize()
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) (r Poly) {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r = make(Poly, n)
	for i := range r {
		r[i] = new(big.Int)
		if i < len(p) {
			r[i].Add(r[i], p[i])
		}
		if i < len(q) {
			r[i].Sub(r[i], q[i])
		}
	}
	return r.normalize()
}

// Neg returns -p.
func (p Poly) Neg() (r Poly) {
	r = make(Poly, len(p))
	for i := range p {
		r[i] = new(big.Int).Neg(p[i])
	}
	return
}

// Mul returns p * q.
func (p Poly) Mul(q Poly) (r Poly) {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	r = make(Poly, len(p)+len(q)-1)
	for i := range r {
		r[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := range p {
		if p[i].Sign() == 0 {
			continue
		}
		for j := range q {
			r[i+j].Add(r[i+j], tmp.Mul(p[i], q[j]))
		}
	}
	return r.normalize()
}

// MulScalar returns c * p.
func (p Poly) MulScalar(c *big.Int) (r Poly) {
	r = make(Poly, len(p))
	for i := range p {
		r[i] = new(big.Int).Mul(p[i], c)
	}
	return r.normalize()
}

// ShiftedNew returns x^k * p.
func (p Poly) ShiftedNew(k int) (r Poly) {
	if p.IsZero() {
		return Poly{}
	}
	r = make(Poly, len(p)+k)
	for i := 0; i < k; i++ {
		r[i] = new(big.Int)
	}
	for i := range p {
		r[i+k] = new(big.Int).Set(p[i])
	}
	return
}

// Evaluate returns p(x) by Horner's rule.
func (p Poly) Evaluate(x *big.Int) (y *big.Int) {
	y = new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p[i])
	}
	return
}

// EvaluateFloat returns p(x) by Horner's rule at the precision of x.
func (p Poly) EvaluateFloat(x *big.Float) (y *big.Float) {
	y = new(big.Float).SetPrec(x.Prec())
	tmp := new(big.Float).SetPrec(x.Prec())
	for i := len(p) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, tmp.SetInt(p[i]))
	}
	return
}

// String renders p in descending powers, with x as the variable.
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(c)
		if sb.Len() == 0 {
			if c.Sign() < 0 {
				sb.WriteString("-")
			}
		} else {
			if c.Sign() < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
		}
		switch {
		case i == 0:
			sb.WriteString(abs.String())
		case abs.Cmp(oneInt) == 0:
			sb.WriteString(varName(i))
		default:
			sb.WriteString(abs.String() + "*" + varName(i))
		}
	}
	return sb.String()
}

var oneInt = big.NewInt(1)

func varName(i int) string {
	if i == 1 {
		return "x"
	}
	return fmt.Sprintf("x^%d", i)
}
