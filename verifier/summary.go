package verifier

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pisotlab/spectral/trinomial"
)

// NumericalSummary returns the closing table of the verification: the
// dominant roots rho, r_4 and phi, the product rho*r_4 and its gap to phi.
// Informational only; it asserts nothing.
func NumericalSummary() string {
	phi := trinomial.DominantRoot(2, FloatPrec)
	rho := trinomial.DominantRoot(3, FloatPrec)
	r4 := trinomial.DominantRoot(4, FloatPrec)

	prod := new(big.Float).SetPrec(FloatPrec).Mul(rho, r4)
	gap := new(big.Float).SetPrec(FloatPrec).Sub(phi, prod)
	rel := new(big.Float).SetPrec(FloatPrec).Quo(gap, phi)
	relF, _ := rel.Float64()

	var sb strings.Builder
	fmt.Fprintf(&sb, "rho          = %s\n", rho.Text('f', 15))
	fmt.Fprintf(&sb, "r4           = %s\n", r4.Text('f', 15))
	fmt.Fprintf(&sb, "rho * r4     = %s\n", prod.Text('f', 15))
	fmt.Fprintf(&sb, "phi          = %s\n", phi.Text('f', 15))
	fmt.Fprintf(&sb, "phi - rho*r4 = %s\n", gap.Text('f', 15))
	fmt.Fprintf(&sb, "relative gap = %.4f%%", relF*100)
	return sb.String()
}
