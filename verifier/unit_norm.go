package verifier

import (
	"math/big"

	"github.com/pisotlab/spectral/poly"
	"github.com/pisotlab/spectral/trinomial"
)

// UnitNorm verifies Theorem 4, the unit-norm remainder identity at (3,4):
// dividing P_{3,4}(t) by t^2 - t - 1 leaves exactly t - 1, whose Z[phi] norm
// is -1, i.e. phi - 1 is a unit of Z[phi]. The quotient and the
// reconstruction identity are checked as well.
func (r *Runner) UnitNorm() (checks []Check) {
	const name = "unit-norm"

	p, err := trinomial.ProductMinPoly(3, 4)
	if err != nil {
		return []Check{r.report(fail(name, "%s", err))}
	}

	golden := trinomial.Golden()
	quo, rem, err := p.QuoRem(golden)
	if err != nil {
		return []Check{r.report(fail(name, "%s", err))}
	}

	// t - 1
	if wantRem := poly.NewPoly(-1, 1); !rem.Equal(wantRem) {
		checks = append(checks, fail(name, "remainder is %s, want %s", rem, wantRem))
	} else {
		checks = append(checks, pass(name, "remainder of P_{3,4} mod t^2-t-1 is %s", rem))
	}

	// t^10 + t^9 + 2t^8 + 2t^4 + t^3
	wantQuo := poly.NewPoly(0, 0, 0, 1, 2, 0, 0, 0, 2, 1, 1)
	if !quo.Equal(wantQuo) {
		checks = append(checks, fail(name, "quotient is %s, want %s", quo, wantQuo))
	} else {
		checks = append(checks, pass(name, "quotient is %s", quo))
	}

	if norm := trinomial.Norm(big.NewInt(1), big.NewInt(-1)); norm.Cmp(big.NewInt(-1)) != 0 {
		checks = append(checks, fail(name, "N(phi - 1) = %s, want -1", norm))
	} else {
		checks = append(checks, pass(name, "N(phi - 1) = -1"))
	}

	if !quo.Mul(golden).Add(rem).Equal(p) {
		checks = append(checks, fail(name, "(t^2-t-1)*q + r does not reconstruct P_{3,4}"))
	} else {
		checks = append(checks, pass(name, "(t^2-t-1)*q + r reconstructs P_{3,4}"))
	}

	for i := range checks {
		checks[i] = r.report(checks[i])
	}
	return
}
