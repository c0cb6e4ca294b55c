package poly

import (
	"fmt"
	"math/big"
)

// IrreducibleMod reports whether the reduction of p modulo the prime q is
// irreducible over GF(q), using Rabin's irreducibility test. Since a
// polynomial that is irreducible modulo a prime not dividing its leading
// coefficient is irreducible over the rationals, a true result is a
// certificate of irreducibility over Q; a false result is inconclusive for
// Q. It is an error for q to divide the leading coefficient (the reduction
// would drop degree) or for p to have degree < 1.
func (p Poly) IrreducibleMod(q uint64) (bool, error) {
	if q < 2 {
		return false, fmt.Errorf("cannot IrreducibleMod: modulus %d is not a prime", q)
	}
	if p.Degree() < 1 {
		return false, fmt.Errorf("cannot IrreducibleMod: degree %d < 1", p.Degree())
	}

	f := reduceMod(p, q)
	d := len(f) - 1
	if d != p.Degree() {
		return false, fmt.Errorf("cannot IrreducibleMod: %d divides the leading coefficient of %s", q, p)
	}
	if d == 1 {
		return true, nil
	}

	// Rabin: f of degree d is irreducible over GF(q) iff x^(q^d) = x (mod f)
	// and gcd(x^(q^(d/l)) - x, f) = 1 for every prime divisor l of d.
	x := gfpPoly{0, 1}
	for _, l := range primeDivisors(d) {
		h := frobeniusPower(f, q, d/l)
		if g := gfpGCD(f, gfpSub(h, x, q), q); len(g)-1 > 0 {
			return false, nil
		}
	}
	h := frobeniusPower(f, q, d)
	return len(gfpSub(h, x, q)) == 0, nil
}

func primeDivisors(d int) (ps []int) {
	for p := 2; p*p <= d; p++ {
		if d%p == 0 {
			ps = append(ps, p)
			for d%p == 0 {
				d /= p
			}
		}
	}
	if d > 1 {
		ps = append(ps, d)
	}
	return
}

// gfpPoly is a polynomial over GF(q), coefficients in [0, q), no trailing
// zeros.
type gfpPoly []uint64

func reduceMod(p Poly, q uint64) gfpPoly {
	mod := new(big.Int).SetUint64(q)
	tmp := new(big.Int)
	f := make(gfpPoly, len(p))
	for i := range p {
		f[i] = tmp.Mod(p[i], mod).Uint64()
	}
	return gfpTrim(f)
}

func gfpTrim(f gfpPoly) gfpPoly {
	n := len(f)
	for n > 0 && f[n-1] == 0 {
		n--
	}
	return f[:n]
}

func gfpSub(a, b gfpPoly, q uint64) gfpPoly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	r := make(gfpPoly, n)
	for i := range r {
		var x, y uint64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		r[i] = (x + q - y) % q
	}
	return gfpTrim(r)
}

func gfpMulMod(a, b, f gfpPoly, q uint64) gfpPoly {
	if len(a) == 0 || len(b) == 0 {
		return gfpPoly{}
	}
	r := make(gfpPoly, len(a)+len(b)-1)
	for i := range a {
		if a[i] == 0 {
			continue
		}
		for j := range b {
			r[i+j] = (r[i+j] + a[i]*b[j]) % q
		}
	}
	return gfpMod(r, f, q)
}

func gfpMod(a, f gfpPoly, q uint64) gfpPoly {
	a = gfpTrim(append(gfpPoly{}, a...))
	inv := gfpInv(f[len(f)-1], q)
	for len(a) >= len(f) {
		k := len(a) - len(f)
		c := a[len(a)-1] * inv % q
		for i := range f {
			a[i+k] = (a[i+k] + q - c*f[i]%q) % q
		}
		a = gfpTrim(a)
	}
	return a
}

func gfpGCD(a, b gfpPoly, q uint64) gfpPoly {
	a = gfpTrim(append(gfpPoly{}, a...))
	b = gfpTrim(append(gfpPoly{}, b...))
	for len(b) > 0 {
		a, b = b, gfpMod(a, b, q)
	}
	return a
}

// gfpInv returns c^-1 mod q for prime q by Fermat's little theorem.
func gfpInv(c, q uint64) uint64 {
	r, e := uint64(1), q-2
	base := c % q
	for e > 0 {
		if e&1 == 1 {
			r = r * base % q
		}
		base = base * base % q
		e >>= 1
	}
	return r
}

// frobeniusPower returns x^(q^e) mod f over GF(q).
func frobeniusPower(f gfpPoly, q uint64, e int) gfpPoly {
	exp := new(big.Int).Exp(new(big.Int).SetUint64(q), big.NewInt(int64(e)), nil)
	r := gfpPoly{1}
	base := gfpMod(gfpPoly{0, 1}, f, q)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			r = gfpMulMod(r, base, f, q)
		}
		base = gfpMulMod(base, base, f, q)
	}
	return r
}
