package verifier

import (
	"math/big"

	"github.com/pisotlab/spectral/trinomial"
)

// Range of n for the spectral law check. Theorem 2 holds for all n >= 3; the
// verification sweeps the same window as the paper.
const (
	spectralMin = 3
	spectralMax = 13
)

// SpectralLaw verifies Theorem 2 for n = 3..13: the remainder of the minimal
// polynomial of phi*r_n modulo t^2 - t - 1 is
//
//	(-F(2n) + (-1)^(n+1)) * t - F(2n-1)
//
// and its Z[phi] norm is (-1)^(n+1) * L(2n-1). Any mismatch is reported with
// the offending n.
func (r *Runner) SpectralLaw() (checks []Check) {
	for n := spectralMin; n <= spectralMax; n++ {
		checks = append(checks, r.report(spectralLawAt(n)))
	}
	return
}

func spectralLawAt(n int) Check {
	const name = "spectral-law"

	p, err := trinomial.ProductMinPoly(2, n)
	if err != nil {
		return fail(name, "n=%d: %s", n, err)
	}
	if p.Degree() != 2*n {
		return fail(name, "n=%d: minimal polynomial has degree %d, want %d", n, p.Degree(), 2*n)
	}

	a, b, err := trinomial.GoldenRemainder(p)
	if err != nil {
		return fail(name, "n=%d: %s", n, err)
	}

	sign := int64(1)
	if n%2 == 0 {
		sign = -1
	}
	wantA := new(big.Int).Neg(trinomial.Fibonacci(2 * n))
	wantA.Add(wantA, big.NewInt(sign))
	wantB := new(big.Int).Neg(trinomial.Fibonacci(2*n - 1))

	norm := trinomial.Norm(a, b)
	wantNorm := new(big.Int).Mul(big.NewInt(sign), trinomial.Lucas(2*n-1))

	if a.Cmp(wantA) != 0 || b.Cmp(wantB) != 0 || norm.Cmp(wantNorm) != 0 {
		return fail(name, "counterexample at n=%d: a=%s b=%s N=%s, want a=%s b=%s N=%s",
			n, a, b, norm, wantA, wantB, wantNorm)
	}
	return pass(name, "n=%d: a=%s b=%s N=%s=(-1)^%d*L(%d)", n, a, b, norm, n+1, 2*n-1)
}
