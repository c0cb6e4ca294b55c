package trinomial

import (
	"fmt"
	"math/big"

	"github.com/pisotlab/spectral/poly"
	"github.com/pisotlab/spectral/utils/bignum"
)

// DominantRoot returns the unique real root greater than 1 of x^n - x - 1 at
// prec bits of precision, by Newton iteration started at 1.3. For n = 2 this
// is the golden ratio and for n = 3 the plastic number; the root decreases
// towards 1 as n grows, and 1.3 sits inside the basin of attraction for
// every n >= 2.
func DominantRoot(n int, prec uint) *big.Float {
	if n < 2 {
		panic(fmt.Errorf("cannot DominantRoot: n must be >= 2, got %d", n))
	}

	// Work with guard bits so the result is correct at prec.
	wprec := prec + 64
	x := bignum.NewFloat(1.3, wprec)
	eps := bignum.NewFloat(1, wprec)
	eps.SetMantExp(eps, -int(prec)-32)

	f := New(n)
	df := derivative(f)

	step := new(big.Float).SetPrec(wprec)
	for i := 0; i < 4*int(prec); i++ {
		step.Quo(f.EvaluateFloat(x), df.EvaluateFloat(x))
		x.Sub(x, step)
		if step.Abs(step).Cmp(eps) < 0 {
			break
		}
	}
	return x.SetPrec(prec)
}

// Entropy returns ln(r_n), the topological entropy attached to the dominant
// root of x^n - x - 1, at prec bits of precision.
func Entropy(n int, prec uint) *big.Float {
	return bignum.Log(DominantRoot(n, prec))
}

func derivative(p poly.Poly) poly.Poly {
	if p.Degree() < 1 {
		return poly.Poly{}
	}
	coeffs := make([]*big.Int, p.Degree())
	for k := 1; k <= p.Degree(); k++ {
		c := p.Coeff(k)
		coeffs[k-1] = c.Mul(c, big.NewInt(int64(k)))
	}
	return poly.FromBig(coeffs)
}
