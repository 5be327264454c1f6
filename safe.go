package ratcomplex

import "sync"

// Accumulator holds a running *Complex behind a mutex so multiple goroutines can fold
// values into it. Each update swaps in a new immutable *Complex; values returned by
// Value are never changed afterwards.
type Accumulator struct {
	mu sync.RWMutex
	v  *Complex
}

// NewAccumulator returns an Accumulator holding init (0 if init is nil).
func NewAccumulator(init *Complex) *Accumulator {
	if init == nil {
		init = new(Complex)
	}
	return &Accumulator{v: init}
}

// Value returns the current value.
func (a *Accumulator) Value() *Complex {
	a.mu.RLock()
	v := a.v
	a.mu.RUnlock()
	return v
}

// Reset replaces the current value and returns the previous one.
func (a *Accumulator) Reset(v *Complex) *Complex {
	if v == nil {
		v = new(Complex)
	}
	a.mu.Lock()
	old := a.v
	a.v = v
	a.mu.Unlock()
	return old
}

// apply coerces x outside the lock, then replaces the value with f(value, x).
func (a *Accumulator) apply(x any, f func(v, y *Complex) (*Complex, error)) error {
	y, err := operand(x)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	res, err := f(a.v, y)
	if err != nil {
		return err
	}
	a.v = res
	return nil
}

// Add adds x (any operand accepted by New) to the value.
func (a *Accumulator) Add(x any) error {
	return a.apply(x, func(v, y *Complex) (*Complex, error) { return v.Add(y), nil })
}

// Sub subtracts x from the value.
func (a *Accumulator) Sub(x any) error {
	return a.apply(x, func(v, y *Complex) (*Complex, error) { return v.Sub(y), nil })
}

// Mul multiplies the value by x.
func (a *Accumulator) Mul(x any) error {
	return a.apply(x, func(v, y *Complex) (*Complex, error) { return v.Mul(y), nil })
}

// Quo divides the value by x. On ErrDivisionByZero the value is left unchanged.
func (a *Accumulator) Quo(x any) error {
	return a.apply(x, (*Complex).Quo)
}

// Merge adds b's current value into a. b is read before a is locked, so two
// accumulators merging into each other cannot deadlock.
func (a *Accumulator) Merge(b *Accumulator) error {
	return a.Add(b.Value())
}
