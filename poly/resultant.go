package poly

import (
	"fmt"
)

// Resultant computes the resultant with respect to x of two polynomials in x
// whose coefficients are themselves integer polynomials in a second variable
// t. The inputs are coefficient slices indexed by the power of x, each entry
// an element of Z[t] (a nil or empty entry is the zero coefficient). The
// result is an element of Z[t]: the determinant of the Sylvester matrix of f
// and g, computed by fraction-free Bareiss elimination so that every
// intermediate division is exact in Z[t].
//
// Both inputs must have degree >= 1 in x and a nonzero leading coefficient.
func Resultant(f, g []Poly) (res Poly, err error) {
	m, n := len(f)-1, len(g)-1
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("cannot Resultant: degrees in x must be >= 1, got %d and %d", m, n)
	}
	if f[m].IsZero() || g[n].IsZero() {
		return nil, fmt.Errorf("cannot Resultant: zero leading coefficient")
	}

	// Sylvester matrix: n rows of f coefficients, m rows of g coefficients,
	// each row shifted one column right from the previous, coefficients in
	// descending powers of x.
	N := m + n
	M := make([][]Poly, N)
	for i := range M {
		M[i] = make([]Poly, N)
		for j := range M[i] {
			M[i][j] = Poly{}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= m; j++ {
			M[i][i+j] = f[m-j].CopyNew()
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= n; j++ {
			M[n+i][i+j] = g[n-j].CopyNew()
		}
	}

	sign := 1
	prev := NewPoly(1)
	for k := 0; k < N-1; k++ {
		if M[k][k].IsZero() {
			pivot := -1
			for r := k + 1; r < N; r++ {
				if !M[r][k].IsZero() {
					pivot = r
					break
				}
			}
			if pivot < 0 {
				// A zero column means the determinant, hence the
				// resultant, vanishes: f and g share a root.
				return Poly{}, nil
			}
			M[k], M[pivot] = M[pivot], M[k]
			sign = -sign
		}
		for i := k + 1; i < N; i++ {
			for j := k + 1; j < N; j++ {
				num := M[i][j].Mul(M[k][k]).Sub(M[i][k].Mul(M[k][j]))
				if num.IsZero() {
					M[i][j] = Poly{}
					continue
				}
				if M[i][j], err = num.quoExact(prev); err != nil {
					return nil, fmt.Errorf("cannot Resultant: %w", err)
				}
			}
			M[i][k] = Poly{}
		}
		prev = M[k][k]
	}

	res = M[N-1][N-1]
	if sign < 0 {
		res = res.Neg()
	}
	return res, nil
}
