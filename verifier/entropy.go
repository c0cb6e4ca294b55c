package verifier

import (
	"math/big"

	"github.com/montanaflynn/stats"
	"github.com/pisotlab/spectral/trinomial"
	"github.com/pisotlab/spectral/utils"
)

// Tolerances of the entropy stacking check. The measured surplus of the
// (2,3,4) triple is 0.1146% of h_2, so 0.002 leaves a comfortable margin;
// every other consecutive triple misses additivity by more than 25%.
const (
	entropySurplusTol = 0.002
	entropyDeficitMin = 0.25
	entropyMaxIndex   = 8
)

// EntropyStacking verifies Corollary 8: among the consecutive triples
// (r_k, r_(k+1), r_(k+2)), only k = 2 is near-additive, with
// |h_2 - (h_3 + h_4)| / h_2 below 0.2%, while every other triple misses by
// more than 25%.
func (r *Runner) EntropyStacking() (checks []Check) {
	const name = "entropy-stacking"

	h := make(map[int]*big.Float, entropyMaxIndex-1)
	for n := 2; n <= entropyMaxIndex; n++ {
		h[n] = trinomial.Entropy(n, FloatPrec)
	}

	var deficits []float64
	for _, k := range utils.GetSortedKeys(h) {
		if k+2 > entropyMaxIndex {
			break
		}
		surplus := new(big.Float).SetPrec(FloatPrec).Sub(h[k+1], h[k])
		surplus.Add(surplus, h[k+2])
		surplus.Neg(surplus)
		surplus.Quo(surplus, h[k])
		rel, _ := surplus.Float64()

		if k == 2 {
			if abs(rel) >= entropySurplusTol {
				checks = append(checks, fail(name, "counterexample at k=2: |h2-(h3+h4)|/h2 = %.6f, want < %.3f", abs(rel), entropySurplusTol))
			} else {
				checks = append(checks, pass(name, "h2-(h3+h4) = %.4f%% of h2 (near-additive)", rel*100))
			}
			continue
		}

		deficits = append(deficits, abs(rel))
		if abs(rel) <= entropyDeficitMin {
			checks = append(checks, fail(name, "counterexample at k=%d: deficit %.4f within 25%% additivity", k, abs(rel)))
		} else {
			checks = append(checks, pass(name, "k=%d: h%d-(h%d+h%d) misses by %.1f%% of h%d", k, k, k+1, k+2, abs(rel)*100, k))
		}
	}

	mean, _ := stats.Mean(deficits)
	median, _ := stats.Median(deficits)
	checks = append(checks, pass(name, "deficit of the non-additive triples: mean %.3f, median %.3f", mean, median))

	for i := range checks {
		checks[i] = r.report(checks[i])
	}
	return
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
