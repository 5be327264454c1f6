// Package ratcomplex provides exact complex arithmetic over rational numbers.
//
// A Complex pairs two math/big.Rat values (real, imaginary) that are always kept in
// lowest terms. Addition, subtraction, multiplication, division and integer powers are
// exact; only Abs and non-integer powers go through float64.
//
// Values are immutable: every operation returns a new *Complex, so a value may be
// shared between goroutines without locking. Accumulator is provided for callers that
// need a shared running value.
//
// Minimal usage:
//
//	z := ratcomplex.MustParse("1/3-1/4j")
//	w, _ := z.Quo(ratcomplex.MustParse("-1/2j"))
//	fmt.Println(w) // 1/2+2/3j
//
// The parser reads "1/3j" as (1/3)*j, not 1/(3j).
//
// SPDX-License-Identifier: MIT
package ratcomplex

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultMaxDenominator bounds the denominators used by String.
const DefaultMaxDenominator = 1000000

// Complex is an exact complex number re + im*j with rational components.
// The zero value is 0. Values returned by this package are never modified.
type Complex struct {
	re big.Rat
	im big.Rat
}

// New builds a Complex from one or two arguments.
//
// With one argument it accepts a string (see Parse), a complex128 or complex64,
// a *Complex, or a real number (int and uint kinds, float32, float64, *big.Int,
// *big.Rat). With two arguments each one is a real number or a fraction/decimal
// string and they become the real and imaginary parts.
func New(args ...any) (*Complex, error) {
	switch len(args) {
	case 1:
		return coerce(args[0])
	case 2:
		return FromParts(args[0], args[1])
	default:
		return nil, fmt.Errorf("%w, got %d", ErrArity, len(args))
	}
}

// MustNew is like New but panics on error.
func MustNew(args ...any) *Complex {
	z, err := New(args...)
	if err != nil {
		panic(err)
	}
	return z
}

// Parse parses a complex literal such as "1.2-1/3*1j", "-11/10j+2.1", "1/3" or "-1j".
func Parse(s string) (*Complex, error) {
	re, im := SplitComplexString(s)
	z, err := FromParts(re, im)
	if err != nil {
		return nil, fmt.Errorf("%w (in %q)", err, s)
	}
	return z, nil
}

// MustParse panics on error.
func MustParse(s string) *Complex {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// FromParts returns re + im*j where each part is a real number or a fraction string.
func FromParts(re, im any) (*Complex, error) {
	r, err := ratOf(re)
	if err != nil {
		return nil, fmt.Errorf("real part: %w", err)
	}
	i, err := ratOf(im)
	if err != nil {
		return nil, fmt.Errorf("imaginary part: %w", err)
	}
	return FromRats(r, i), nil
}

// FromRats returns re + im*j. The arguments are copied; nil means 0.
func FromRats(re, im *big.Rat) *Complex {
	z := new(Complex)
	if re != nil {
		z.re.Set(re)
	}
	if im != nil {
		z.im.Set(im)
	}
	return z
}

// FromComplex128 converts z exactly: each float64 part becomes the rational it denotes.
func FromComplex128(z complex128) (*Complex, error) {
	out := new(Complex)
	if out.re.SetFloat64(real(z)) == nil || out.im.SetFloat64(imag(z)) == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, z)
	}
	return out, nil
}

// Real returns a copy of the real part.
func (c *Complex) Real() *big.Rat { return new(big.Rat).Set(&c.re) }

// Imag returns a copy of the imaginary part.
func (c *Complex) Imag() *big.Rat { return new(big.Rat).Set(&c.im) }

// IsZero reports whether c == 0.
func (c *Complex) IsZero() bool { return c.re.Sign() == 0 && c.im.Sign() == 0 }

// IsReal reports whether the imaginary part is zero.
func (c *Complex) IsReal() bool { return c.im.Sign() == 0 }

// Complex128 returns the nearest complex128.
func (c *Complex) Complex128() complex128 {
	re, _ := c.re.Float64()
	im, _ := c.im.Float64()
	return complex(re, im)
}

// String renders c after limiting both denominators to DefaultMaxDenominator:
// "0", "<im>j", "<re>", "<re>+<im>j" or "<re>-<|im|>j".
func (c *Complex) String() string {
	lim := &Complex{}
	bound := big.NewInt(DefaultMaxDenominator)
	lim.re.Set(LimitRat(&c.re, bound))
	lim.im.Set(LimitRat(&c.im, bound))
	return lim.text()
}

// Repr renders both exact components: ComplexRational('<re>','<im>').
func (c *Complex) Repr() string {
	return "ComplexRational('" + c.re.RatString() + "','" + c.im.RatString() + "')"
}

// GoString implements fmt.GoStringer (used by %#v).
func (c *Complex) GoString() string { return c.Repr() }

// Text returns the exact form, without the denominator limiting String applies.
// Parse reads it back to an equal value, so it also serves as a map key.
func (c *Complex) Text() string { return c.text() }

// text formats c exactly, without limiting denominators.
func (c *Complex) text() string {
	switch {
	case c.IsZero():
		return "0"
	case c.re.Sign() == 0:
		return c.im.RatString() + "j"
	case c.im.Sign() == 0:
		return c.re.RatString()
	}
	var b strings.Builder
	b.WriteString(c.re.RatString())
	if c.im.Sign() > 0 {
		b.WriteByte('+')
		b.WriteString(c.im.RatString())
	} else {
		b.WriteByte('-')
		b.WriteString(new(big.Rat).Neg(&c.im).RatString())
	}
	b.WriteByte('j')
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the exact form.
func (c *Complex) MarshalText() ([]byte, error) { return []byte(c.text()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. It is meant for decoding into a
// fresh value; values already handed out must not be reused as decode targets.
func (c *Complex) UnmarshalText(b []byte) error {
	z, err := Parse(string(b))
	if err != nil {
		return err
	}
	c.re.Set(&z.re)
	c.im.Set(&z.im)
	return nil
}

// Equal reports whether c and y have the same components.
func (c *Complex) Equal(y *Complex) bool {
	return c.re.Cmp(&y.re) == 0 && c.im.Cmp(&y.im) == 0
}

// EqualTo compares c with any value accepted by New's one-argument form.
// A real number equals c iff c has no imaginary part and the real parts match; a
// string is parsed first. Other types give ErrUnsupportedOperand.
func (c *Complex) EqualTo(v any) (bool, error) {
	y, err := operand(v)
	if err != nil {
		return false, err
	}
	return c.Equal(y), nil
}

// Hash returns a hash consistent with Equal.
func (c *Complex) Hash() uint64 {
	d := xxhash.New()
	writeRat(d, &c.re)
	writeRat(d, &c.im)
	return d.Sum64()
}

// writeRat feeds sign, numerator and denominator magnitudes, each length-prefixed.
func writeRat(d *xxhash.Digest, r *big.Rat) {
	var hdr [9]byte
	hdr[0] = byte(r.Sign() + 1)
	for _, x := range []*big.Int{r.Num(), r.Denom()} {
		mag := x.Bytes()
		binary.BigEndian.PutUint64(hdr[1:], uint64(len(mag)))
		_, _ = d.Write(hdr[:])
		_, _ = d.Write(mag)
	}
}
