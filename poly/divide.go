package poly

import (
	"fmt"
	"math/big"
)

// QuoRem returns the quotient and remainder of the Euclidean division of p
// by d, with deg(rem) < deg(d). The divisor must be monic so that the
// division stays in integer coefficients; a non-monic or zero divisor is an
// error.
func (p Poly) QuoRem(d Poly) (quo, rem Poly, err error) {
	if d.IsZero() {
		return nil, nil, fmt.Errorf("cannot QuoRem: division by the zero polynomial")
	}
	if d[len(d)-1].Cmp(oneInt) != 0 {
		return nil, nil, fmt.Errorf("cannot QuoRem: divisor %s is not monic", d)
	}

	rem = p.CopyNew()
	if p.Degree() < d.Degree() {
		return Poly{}, rem, nil
	}

	quo = make(Poly, p.Degree()-d.Degree()+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for rem.Degree() >= d.Degree() {
		k := rem.Degree() - d.Degree()
		c := rem[len(rem)-1]
		quo[k].Set(c)
		for i := range d {
			rem[i+k].Sub(rem[i+k], tmp.Mul(c, d[i]))
		}
		rem = rem.normalize()
	}
	return quo.normalize(), rem, nil
}

// quoExact returns p / d when the division is exact over the integers, and
// an error otherwise. Used by the fraction-free elimination in Resultant,
// whose intermediate divisions are guaranteed exact.
func (p Poly) quoExact(d Poly) (quo Poly, err error) {
	if d.IsZero() {
		return nil, fmt.Errorf("cannot quoExact: division by the zero polynomial")
	}
	if p.IsZero() {
		return Poly{}, nil
	}
	if p.Degree() < d.Degree() {
		return nil, fmt.Errorf("cannot quoExact: degree %d < divisor degree %d", p.Degree(), d.Degree())
	}

	rem := p.CopyNew()
	quo = make(Poly, p.Degree()-d.Degree()+1)
	for i := range quo {
		quo[i] = new(big.Int)
	}

	c, tmp := new(big.Int), new(big.Int)
	lead := d[len(d)-1]
	for rem.Degree() >= d.Degree() {
		c.QuoRem(rem[len(rem)-1], lead, tmp)
		if tmp.Sign() != 0 {
			return nil, fmt.Errorf("cannot quoExact: leading coefficient %s not divisible by %s", rem[len(rem)-1], lead)
		}
		k := rem.Degree() - d.Degree()
		quo[k].Set(c)
		for i := range d {
			rem[i+k].Sub(rem[i+k], tmp.Mul(c, d[i]))
		}
		rem = rem.normalize()
	}
	if !rem.IsZero() {
		return nil, fmt.Errorf("cannot quoExact: nonzero remainder %s", rem)
	}
	return quo.normalize(), nil
}
