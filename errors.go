package ratcomplex

import "errors"

var (
	// ErrArity is returned by New when it gets neither one nor two arguments.
	ErrArity = errors.New("ratcomplex: expected 1 or 2 arguments")
	// ErrType is returned by constructors given an argument of an unsupported type.
	ErrType = errors.New("ratcomplex: unsupported argument type")
	// ErrSyntax is returned when a component string is not a fraction or decimal.
	ErrSyntax = errors.New("ratcomplex: invalid syntax")
	// ErrNotFinite is returned when a float input or result is NaN or infinite.
	ErrNotFinite = errors.New("ratcomplex: non-finite value")
	// ErrDivisionByZero is returned by Reciprocal, Quo and negative powers of zero.
	ErrDivisionByZero = errors.New("ratcomplex: division by zero")
	// ErrUnsupportedOperand is returned by operators whose operand cannot be coerced
	// to a Complex. It is the analogue of an operator not being defined for a type.
	ErrUnsupportedOperand = errors.New("ratcomplex: unsupported operand type")
	// ErrMaxDenominator is returned by LimitDenominator for bounds below 1.
	ErrMaxDenominator = errors.New("ratcomplex: max denominator must be at least 1")
)
