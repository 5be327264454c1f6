package ratcomplex

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
)

// Neg returns -c.
func (c *Complex) Neg() *Complex {
	z := new(Complex)
	z.re.Neg(&c.re)
	z.im.Neg(&c.im)
	return z
}

// Pos returns c. Values are immutable so no copy is made.
func (c *Complex) Pos() *Complex { return c }

// Conj returns the complex conjugate of c.
func (c *Complex) Conj() *Complex {
	z := new(Complex)
	z.re.Set(&c.re)
	z.im.Neg(&c.im)
	return z
}

// Add returns c + y.
func (c *Complex) Add(y *Complex) *Complex {
	z := new(Complex)
	z.re.Add(&c.re, &y.re)
	z.im.Add(&c.im, &y.im)
	return z
}

// Sub returns c - y.
func (c *Complex) Sub(y *Complex) *Complex {
	z := new(Complex)
	z.re.Sub(&c.re, &y.re)
	z.im.Sub(&c.im, &y.im)
	return z
}

// Mul returns c * y = (ac - bd) + (ad + bc)j.
func (c *Complex) Mul(y *Complex) *Complex {
	var ac, bd, ad, bc big.Rat
	ac.Mul(&c.re, &y.re)
	bd.Mul(&c.im, &y.im)
	ad.Mul(&c.re, &y.im)
	bc.Mul(&c.im, &y.re)
	z := new(Complex)
	z.re.Sub(&ac, &bd)
	z.im.Add(&ad, &bc)
	return z
}

// MagnitudeSquared returns re² + im², the exact squared modulus.
func (c *Complex) MagnitudeSquared() *big.Rat {
	var r2, i2 big.Rat
	r2.Mul(&c.re, &c.re)
	i2.Mul(&c.im, &c.im)
	return r2.Add(&r2, &i2)
}

// Abs returns |c| as a float64. This is the one place exactness is given up:
// a square root of a rational is in general irrational.
func (c *Complex) Abs() float64 {
	m, _ := c.MagnitudeSquared().Float64()
	return math.Sqrt(m)
}

// Reciprocal returns 1/c = conj(c) / |c|².
func (c *Complex) Reciprocal() (*Complex, error) {
	m := c.MagnitudeSquared()
	if m.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return c.Conj().quoRat(m), nil
}

// Quo returns c / y. A real divisor divides each component directly; otherwise
// the result is c * y.Reciprocal().
func (c *Complex) Quo(y *Complex) (*Complex, error) {
	if y.IsReal() {
		if y.re.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return c.quoRat(&y.re), nil
	}
	inv, err := y.Reciprocal()
	if err != nil {
		return nil, err
	}
	return c.Mul(inv), nil
}

// quoRat divides both components by the nonzero r.
func (c *Complex) quoRat(r *big.Rat) *Complex {
	z := new(Complex)
	z.re.Quo(&c.re, r)
	z.im.Quo(&c.im, r)
	return z
}

// PowInt returns c**n exactly. c**0 is 1 for every c, including 0.
// A negative n gives the reciprocal of c**|n|.
func (c *Complex) PowInt(n int64) (*Complex, error) {
	e := new(big.Int).SetInt64(n)
	neg := e.Sign() < 0
	e.Abs(e)
	res := FromRats(big.NewRat(1, 1), nil)
	base := c
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			res = res.Mul(base)
		}
		if i+1 < e.BitLen() {
			base = base.Mul(base)
		}
	}
	if neg {
		return res.Reciprocal()
	}
	return res, nil
}

// Pow returns c**p. Integer exponents (Go integer kinds, or any operand whose value
// is a real integer fitting in int64) use PowInt and stay exact.
//
// Any other exponent leaves the rational domain: c and p are converted to
// complex128, raised with cmplx.Pow, and the float result is converted back
// exactly. The result then carries float64 rounding error.
func (c *Complex) Pow(p any) (*Complex, error) {
	if n, ok := integerOf(p); ok {
		return c.PowInt(n)
	}
	q, err := operand(p)
	if err != nil {
		return nil, err
	}
	if n, ok := integerOf(q); ok {
		return c.PowInt(n)
	}
	return powFloat(c.Complex128(), q.Complex128())
}

// RPow returns base**c, coercing base like New does.
func (c *Complex) RPow(base any) (*Complex, error) {
	b, err := operand(base)
	if err != nil {
		return nil, err
	}
	return b.Pow(c)
}

func powFloat(x, y complex128) (*Complex, error) {
	z, err := FromComplex128(cmplx.Pow(x, y))
	if err != nil {
		return nil, fmt.Errorf("%v ** %v: %w", x, y, err)
	}
	return z, nil
}

// Add returns x + y for any operands accepted by New.
func Add(x, y any) (*Complex, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return a.Add(b), nil
}

// Sub returns x - y for any operands accepted by New.
func Sub(x, y any) (*Complex, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return a.Sub(b), nil
}

// Mul returns x * y for any operands accepted by New.
func Mul(x, y any) (*Complex, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return a.Mul(b), nil
}

// Quo returns x / y for any operands accepted by New.
func Quo(x, y any) (*Complex, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return nil, err
	}
	return a.Quo(b)
}

// Pow returns x ** y; see (*Complex).Pow for when the result is exact.
func Pow(x, y any) (*Complex, error) {
	a, err := operand(x)
	if err != nil {
		return nil, err
	}
	return a.Pow(y)
}

// Equal reports whether x and y denote the same value.
func Equal(x, y any) (bool, error) {
	a, b, err := operands(x, y)
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}

func operands(x, y any) (*Complex, *Complex, error) {
	a, err := operand(x)
	if err != nil {
		return nil, nil, err
	}
	b, err := operand(y)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
