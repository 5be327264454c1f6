package ratcomplex

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// coerce converts one argument of the closed operand set to a *Complex.
func coerce(v any) (*Complex, error) {
	switch x := v.(type) {
	case *Complex:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Complex", ErrType)
		}
		return FromRats(&x.re, &x.im), nil
	case string:
		return Parse(x)
	case complex128:
		return FromComplex128(x)
	case complex64:
		return FromComplex128(complex128(x))
	}
	r, err := ratOf(v)
	if err != nil {
		return nil, err
	}
	return FromRats(r, nil), nil
}

// operand is coerce for operator arguments: a type outside the operand set is
// reported as ErrUnsupportedOperand, while a malformed string keeps its ErrSyntax.
func operand(v any) (*Complex, error) {
	z, err := coerce(v)
	if errors.Is(err, ErrType) {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
	}
	return z, err
}

// ratOf converts a real number or a fraction/decimal string to a fresh *big.Rat.
func ratOf(v any) (*big.Rat, error) {
	r := new(big.Rat)
	switch x := v.(type) {
	case int:
		return r.SetInt64(int64(x)), nil
	case int8:
		return r.SetInt64(int64(x)), nil
	case int16:
		return r.SetInt64(int64(x)), nil
	case int32:
		return r.SetInt64(int64(x)), nil
	case int64:
		return r.SetInt64(x), nil
	case uint:
		return r.SetUint64(uint64(x)), nil
	case uint8:
		return r.SetUint64(uint64(x)), nil
	case uint16:
		return r.SetUint64(uint64(x)), nil
	case uint32:
		return r.SetUint64(uint64(x)), nil
	case uint64:
		return r.SetUint64(x), nil
	case float32:
		return ratOfFloat(float64(x))
	case float64:
		return ratOfFloat(x)
	case *big.Int:
		if x == nil {
			break
		}
		return r.SetInt(x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return r.Set(x), nil
	case string:
		return ratOfString(x)
	}
	return nil, fmt.Errorf("%w: %T", ErrType, v)
}

func ratOfFloat(f float64) (*big.Rat, error) {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFinite, f)
	}
	return r, nil
}

// ratOfString parses a decimal fraction "[+-]a/b" or a decimal number such as
// "-1.25" or "3e-2". Both forms are base 10: "010/3" is 10/3, and base prefixes
// and '_' separators are rejected.
func ratOfString(s string) (*big.Rat, error) {
	t := strings.TrimSpace(s)
	if num, den, ok := strings.Cut(t, "/"); ok {
		n, nok := new(big.Int).SetString(num, 10)
		d, dok := new(big.Int).SetString(den, 10)
		// the denominator is unsigned and nonzero
		if !nok || !dok || !isDigit(den[0]) || d.Sign() == 0 {
			return nil, syntaxError(s)
		}
		return new(big.Rat).SetFrac(n, d), nil
	}
	if t == "" || strings.ContainsFunc(t, func(r rune) bool { return !strings.ContainsRune(decimalChars, r) }) {
		return nil, syntaxError(s)
	}
	r, ok := new(big.Rat).SetString(t)
	if !ok {
		return nil, syntaxError(s)
	}
	return r, nil
}

const decimalChars = "0123456789+-.eE"

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func syntaxError(s string) error {
	return fmt.Errorf("%w: %q is not a fraction or decimal", ErrSyntax, s)
}

// integerOf reports the int64 value of integer kinds and of real integral Complex
// values. It is how Pow decides between the exact and the float path.
func integerOf(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case *Complex:
		if x == nil || !x.IsReal() || !x.re.IsInt() || !x.re.Num().IsInt64() {
			return 0, false
		}
		return x.re.Num().Int64(), true
	}
	return 0, false
}
