package ratcomplex

import (
	"fmt"
	"math/big"
)

// LimitDenominator returns the value whose parts are the closest fractions to c's
// parts with denominators at most maxDen. It is used for display; arithmetic never
// calls it.
func (c *Complex) LimitDenominator(maxDen int64) (*Complex, error) {
	if maxDen < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrMaxDenominator, maxDen)
	}
	bound := big.NewInt(maxDen)
	return FromRats(LimitRat(&c.re, bound), LimitRat(&c.im, bound)), nil
}

// LimitRat returns the closest fraction to r with denominator at most bound (>= 1).
// It walks the continued fraction convergents of r and compares the last convergent
// within the bound against the best semiconvergent; on a tie the convergent wins.
// r is not modified.
func LimitRat(r *big.Rat, bound *big.Int) *big.Rat {
	if r.Denom().Cmp(bound) <= 0 {
		return new(big.Rat).Set(r)
	}

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	n := new(big.Int).Set(r.Num())
	d := new(big.Int).Set(r.Denom())
	a, q2, t := new(big.Int), new(big.Int), new(big.Int)
	for {
		// d > 0 throughout, so Euclidean division is floor division.
		a.Div(n, d)
		q2.Add(q0, t.Mul(a, q1))
		if q2.Cmp(bound) > 0 {
			break
		}
		p0, p1 = p1, new(big.Int).Add(p0, t.Mul(a, p1))
		q0, q1 = q1, new(big.Int).Set(q2)
		n, d = d, new(big.Int).Sub(n, t.Mul(a, d))
	}

	k := new(big.Int).Sub(bound, q0)
	k.Div(k, q1)
	semi := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	conv := new(big.Rat).SetFrac(p1, q1)

	var dConv, dSemi big.Rat
	dConv.Abs(dConv.Sub(conv, r))
	dSemi.Abs(dSemi.Sub(semi, r))
	if dConv.Cmp(&dSemi) <= 0 {
		return conv
	}
	return semi
}
