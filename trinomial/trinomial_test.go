package trinomial_test

import (
	"math/big"
	"testing"

	"github.com/pisotlab/spectral/poly"
	"github.com/pisotlab/spectral/trinomial"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.True(t, trinomial.New(2).Equal(poly.NewPoly(-1, -1, 1)))
	require.True(t, trinomial.New(5).Equal(poly.NewPoly(-1, -1, 0, 0, 0, 1)))
	require.True(t, trinomial.Golden().Equal(trinomial.New(2)))
	require.Panics(t, func() { trinomial.New(1) })
}

func TestFibonacciLucas(t *testing.T) {

	t.Run("Literal", func(t *testing.T) {
		fib := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
		luc := []int64{1, 3, 4, 7, 11, 18, 29, 47, 76, 123}
		for i := 0; i < 10; i++ {
			require.Equal(t, fib[i], trinomial.Fibonacci(i+1).Int64(), "F(%d)", i+1)
			require.Equal(t, luc[i], trinomial.Lucas(i+1).Int64(), "L(%d)", i+1)
		}
	})

	t.Run("Recurrence", func(t *testing.T) {
		for k := 3; k <= 40; k++ {
			sum := new(big.Int).Add(trinomial.Fibonacci(k-1), trinomial.Fibonacci(k-2))
			require.Zero(t, sum.Cmp(trinomial.Fibonacci(k)), "F(%d)", k)
			sum.Add(trinomial.Lucas(k-1), trinomial.Lucas(k-2))
			require.Zero(t, sum.Cmp(trinomial.Lucas(k)), "L(%d)", k)
		}
	})

	t.Run("Identity", func(t *testing.T) {
		// L(k) = F(k-1) + F(k+1)
		for k := 2; k <= 30; k++ {
			sum := new(big.Int).Add(trinomial.Fibonacci(k-1), trinomial.Fibonacci(k+1))
			require.Zero(t, sum.Cmp(trinomial.Lucas(k)), "L(%d)", k)
		}
	})
}

func TestProductMinPoly(t *testing.T) {

	t.Run("P34", func(t *testing.T) {
		p, err := trinomial.ProductMinPoly(3, 4)
		require.NoError(t, err)
		// t^12 - 3t^9 - 2t^8 + 2t^6 - t^5 - 3t^4 - t^3 + t - 1
		require.True(t, p.Equal(poly.NewPoly(-1, 1, 0, -1, -3, -1, 2, 0, -2, -3, 0, 0, 1)))
	})

	t.Run("DegreeAndMonic", func(t *testing.T) {
		for _, mn := range [][2]int{{2, 3}, {2, 5}, {3, 5}, {4, 5}} {
			p, err := trinomial.ProductMinPoly(mn[0], mn[1])
			require.NoError(t, err)
			require.Equal(t, mn[0]*mn[1], p.Degree(), "(%d,%d)", mn[0], mn[1])
			require.Equal(t, int64(1), p.Lead().Int64(), "(%d,%d)", mn[0], mn[1])
		}
	})

	t.Run("RootVanishes", func(t *testing.T) {
		// P_{2,3}(phi * rho) = 0 numerically.
		p, err := trinomial.ProductMinPoly(2, 3)
		require.NoError(t, err)
		x := new(big.Float).SetPrec(256)
		x.Mul(trinomial.DominantRoot(2, 256), trinomial.DominantRoot(3, 256))
		val := p.EvaluateFloat(x)
		tol, _ := new(big.Float).SetPrec(256).SetString("1e-45")
		require.True(t, val.Abs(val).Cmp(tol) < 0, "got %s", val.Text('e', 5))
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := trinomial.ProductMinPoly(1, 3)
		require.Error(t, err)
		_, err = trinomial.ProductMinPoly(3, 3)
		require.Error(t, err)
	})
}

func TestGoldenRemainder(t *testing.T) {

	literal := map[int][2]int64{
		3: {-7, -5},
		4: {-22, -13},
	}
	norms := map[int]int64{
		3: 11,
		4: -29,
	}

	for n, want := range literal {
		p, err := trinomial.ProductMinPoly(2, n)
		require.NoError(t, err)
		a, b, err := trinomial.GoldenRemainder(p)
		require.NoError(t, err)
		require.Equal(t, want[0], a.Int64(), "a for n=%d", n)
		require.Equal(t, want[1], b.Int64(), "b for n=%d", n)
		require.Equal(t, norms[n], trinomial.Norm(a, b).Int64(), "norm for n=%d", n)
	}
}

// TestNormAgainstResultant cross-checks the closed norm form against the
// resultant definition Res_t(t^2 - t - 1, a*t + b).
func TestNormAgainstResultant(t *testing.T) {
	golden := []poly.Poly{poly.NewPoly(-1), poly.NewPoly(-1), poly.NewPoly(1)}
	for _, ab := range [][2]int64{{1, -1}, {-7, -5}, {-22, -13}, {-54, -34}, {2, 7}} {
		a, b := big.NewInt(ab[0]), big.NewInt(ab[1])
		res, err := poly.Resultant(golden, []poly.Poly{poly.NewPoly(ab[1]), poly.NewPoly(ab[0])})
		require.NoError(t, err)
		require.True(t, res.Equal(poly.FromBig([]*big.Int{trinomial.Norm(a, b)})), "a=%d b=%d", ab[0], ab[1])
	}
}

func TestDominantRoot(t *testing.T) {

	t.Run("Golden", func(t *testing.T) {
		// r_2 = (1 + sqrt 5) / 2
		phi := trinomial.DominantRoot(2, 256)
		want := new(big.Float).SetPrec(256).SetInt64(5)
		want.Sqrt(want)
		want.Add(want, new(big.Float).SetPrec(256).SetInt64(1))
		want.Quo(want, new(big.Float).SetPrec(256).SetInt64(2))
		diff := new(big.Float).Sub(phi, want)
		tol := new(big.Float).SetMantExp(new(big.Float).SetInt64(1), -250)
		require.True(t, diff.Abs(diff).Cmp(tol) < 0, "phi off by %s", diff.Text('e', 5))
	})

	t.Run("Plastic", func(t *testing.T) {
		rho, _ := trinomial.DominantRoot(3, 256).Float64()
		require.InDelta(t, 1.3247179572447460, rho, 1e-14)
	})

	t.Run("Residual", func(t *testing.T) {
		for n := 2; n <= 8; n++ {
			r := trinomial.DominantRoot(n, 256)
			res := trinomial.New(n).EvaluateFloat(r)
			tol := new(big.Float).SetMantExp(new(big.Float).SetInt64(1), -240)
			require.True(t, res.Abs(res).Cmp(tol) < 0, "residual at n=%d is %s", n, res.Text('e', 5))
		}
	})
}

func TestEntropy(t *testing.T) {
	h2, _ := trinomial.Entropy(2, 256).Float64()
	require.InDelta(t, 0.4812118250596035, h2, 1e-14)
	h3, _ := trinomial.Entropy(3, 256).Float64()
	require.InDelta(t, 0.2811995743229619, h3, 1e-14)
}
