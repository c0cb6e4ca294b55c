package verifier

import (
	"math/big"

	"github.com/pisotlab/spectral/poly"
	"github.com/pisotlab/spectral/trinomial"
)

// irreducibilityWitnesses are the primes scanned for a mod-p irreducibility
// certificate of P_{3,4}. Irreducibility modulo any of them lifts to Q;
// P_{3,4} is in fact irreducible mod 2 already.
var irreducibilityWitnesses = []uint64{2, 3, 5, 7, 11, 13}

// Coefficients verifies Proposition 3: the coefficient list of P_{3,4}(t)
// matches the closed form of the paper, P_{3,4} has no rational roots
// (P(1) = -7, P(-1) = 1), it is irreducible over Q (certified by a mod-p
// witness), and its value at the high-precision product rho*r_4 vanishes to
// within 10^-45.
func (r *Runner) Coefficients() (checks []Check) {
	const name = "coefficients"

	p, err := trinomial.ProductMinPoly(3, 4)
	if err != nil {
		return []Check{r.report(fail(name, "%s", err))}
	}

	// Ascending powers of eq. (11): t^12 - 3t^9 - 2t^8 + 2t^6 - t^5 - 3t^4 - t^3 + t - 1.
	want := poly.NewPoly(-1, 1, 0, -1, -3, -1, 2, 0, -2, -3, 0, 0, 1)
	if !p.Equal(want) {
		checks = append(checks, fail(name, "P_{3,4} = %s, want %s", p, want))
	} else {
		checks = append(checks, pass(name, "P_{3,4} = %s", p))
	}

	atOne := p.Evaluate(big.NewInt(1))
	atMinusOne := p.Evaluate(big.NewInt(-1))
	if atOne.Cmp(big.NewInt(-7)) != 0 || atMinusOne.Cmp(big.NewInt(1)) != 0 {
		checks = append(checks, fail(name, "rational root check: P(1)=%s P(-1)=%s, want -7 and 1", atOne, atMinusOne))
	} else {
		checks = append(checks, pass(name, "no rational roots: P(1)=%s, P(-1)=%s", atOne, atMinusOne))
	}

	witness := uint64(0)
	for _, q := range irreducibilityWitnesses {
		irred, err := p.IrreducibleMod(q)
		if err != nil {
			checks = append(checks, fail(name, "irreducibility mod %d: %s", q, err))
			break
		}
		if irred {
			witness = q
			break
		}
	}
	if witness != 0 {
		checks = append(checks, pass(name, "P_{3,4} irreducible over Q (witness: irreducible mod %d)", witness))
	} else {
		checks = append(checks, fail(name, "no irreducibility witness among %v", irreducibilityWitnesses))
	}

	// |P_{3,4}(rho * r_4)| must vanish to within 10^-45 at 256-bit precision.
	prod := new(big.Float).SetPrec(FloatPrec)
	prod.Mul(trinomial.DominantRoot(3, FloatPrec), trinomial.DominantRoot(4, FloatPrec))
	val := p.EvaluateFloat(prod)
	tol, _ := new(big.Float).SetPrec(FloatPrec).SetString("1e-45")
	if val.Abs(val).Cmp(tol) >= 0 {
		checks = append(checks, fail(name, "|P_{3,4}(rho*r_4)| = %s, want < 1e-45", val.Text('e', 3)))
	} else {
		checks = append(checks, pass(name, "|P_{3,4}(rho*r_4)| = %s < 1e-45", val.Text('e', 3)))
	}

	for i := range checks {
		checks[i] = r.report(checks[i])
	}
	return
}
