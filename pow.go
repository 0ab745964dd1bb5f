// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"math"

	"github.com/pkg/errors"

	mu "github.com/avdva/apdecimal/internal/mathutil"
)

// PowInt returns d^n rounded half-up to prec fractional digits.
// With FullPrecision and n >= 0 the result is exact.
func (d Decimal) PowInt(n int, prec int) (Decimal, error) {
	return d.PowIntRound(n, prec, true)
}

// PowIntRound returns d^n with prec fractional digits.
// If round is true, the result is rounded half-up, otherwise the digits after prec are cut off.
// A negative n inverts the base first.
func (d Decimal) PowIntRound(n int, prec int, round bool) (Decimal, error) {
	if prec < 0 && prec != FullPrecision && prec != FixedPrecision {
		return Zero, errors.Wrapf(ErrInvalidPrecision, "%d", prec)
	}
	switch {
	case n == 0:
		return One, nil
	case d.IsZero():
		if n < 0 {
			return Zero, errors.Wrapf(ErrDivisionByZero, "0^%d", n)
		}
		return Zero, nil
	}
	if n > 0 && prec == FullPrecision {
		return powUint(d, uint64(n), -1), nil
	}
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	un := uint64(mu.AbsInt64(int64(n)))
	// every multiplication may lose one unit in the last digit,
	// and the error grows with the magnitude of the intermediate values, that have
	// up to n*(e+1) integer digits, where e is the exponent of the base.
	e := d.exponent()
	if n < 0 {
		e = -e
	}
	extra := 0
	if e >= 0 {
		extra = int(un) * (e + 1)
	}
	wp := p + mu.DecimalDigits(un) + 2 + extra
	base := d
	if n < 0 {
		base = One.DivRound(d, wp+mu.DecimalDigits(un)+extra, false)
	}
	result := powUint(base, un, wp)
	if round {
		return result.Round(p), nil
	}
	return result.trunc(p), nil
}

// powUint calculates x^n using binary exponentiation.
func powUint(x Decimal, n uint64, prec int) Decimal {
	result := One
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(x, prec)
		}
		if n >>= 1; n > 0 {
			x = x.Mul(x, prec)
		}
	}
	return result
}

// Pow returns d^exp. Only integer exponents are supported.
// A fractional exponent results in ErrDomain for a negative base, and in ErrNotImplemented otherwise.
func (d Decimal) Pow(exp Decimal, prec int) (Decimal, error) {
	if !exp.IsInteger() {
		if d.IsNeg() {
			return Zero, errors.Wrapf(ErrDomain, "negative base %s with fractional exponent %s", d, exp)
		}
		return Zero, errors.Wrapf(ErrNotImplemented, "fractional exponent %s", exp)
	}
	n, err := exp.Int64()
	if err != nil || int64(int(n)) != n {
		return Zero, errors.Wrapf(ErrRange, "exponent %s is too big", exp)
	}
	return d.PowInt(int(n), prec)
}

// Sqrt returns the square root of d rounded half-up to prec fractional digits.
// For prec <= 15 and numbers, that are exactly representable as float64, math.Sqrt is used.
func (d Decimal) Sqrt(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	switch {
	case d.IsNeg():
		return Zero, errors.Wrapf(ErrDomain, "square root of negative number %s", d)
	case d.IsZero():
		return Zero, nil
	case d.IsOne():
		return One, nil
	}
	if r, ok := d.nativeRoot(2, p); ok {
		return r, nil
	}
	return scaledRoot(d, 2, p, func(x Decimal, wp int) (Decimal, error) {
		// t = (t + x/t) / 2
		return converge(One, func(t Decimal) Decimal {
			return t.Add(x.DivRound(t, wp, false), FullPrecision).Mul(half, wp)
		})
	})
}

// Root returns the n-th root of d rounded half-up to prec fractional digits.
// Root(0) is 0, and a negative n gives the root of 1/d.
func (d Decimal) Root(n int, prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	switch {
	case n == 0:
		return Zero, nil
	case n == 1:
		return d.Round(p), nil
	case n == 2:
		return d.Sqrt(p)
	case d.IsNeg():
		return Zero, errors.Wrapf(ErrDomain, "root of negative number %s", d)
	case n < 0:
		if d.IsZero() {
			return Zero, errors.Wrapf(ErrDivisionByZero, "root %d of zero", n)
		}
		// the error of r is multiplied by 1/r^2 in 1/r.
		extra := 2 + 2*max(0, 1-d.exponent()/-n)
		r, err := d.Root(-n, p+extra)
		if err != nil {
			return Zero, err
		}
		return One.Div(r, p), nil
	case d.IsZero():
		return Zero, nil
	case d.IsOne():
		return One, nil
	}
	if r, ok := d.nativeRoot(n, p); ok {
		return r, nil
	}
	m := FromInt64(int64(n))
	m1 := FromInt64(int64(n - 1))
	return scaledRoot(d, n, p, func(x Decimal, wp int) (Decimal, error) {
		// t = ((n-1)*t + x/t^(n-1)) / n
		return converge(One, func(t Decimal) Decimal {
			tn := powUint(t, uint64(n-1), wp+2)
			sum := m1.Mul(t, FullPrecision).Add(x.DivRound(tn, wp, false), FullPrecision)
			return sum.DivRound(m, wp, false)
		})
	})
}

// RootDec returns the n-th root of d for an integer n.
// Fractional roots result in ErrNotImplemented.
func (d Decimal) RootDec(n Decimal, prec int) (Decimal, error) {
	if !n.IsInteger() {
		return Zero, errors.Wrapf(ErrNotImplemented, "fractional root %s", n)
	}
	i, err := n.Int64()
	if err != nil || int64(int(i)) != i {
		return Zero, errors.Wrapf(ErrRange, "root %s is too big", n)
	}
	return d.Root(int(i), prec)
}

// nativeRoot calculates the root using float64 math, if the precision allows it.
func (d Decimal) nativeRoot(n, prec int) (Decimal, bool) {
	const maxNativeDigits = 15
	if prec > maxNativeDigits || len(d.digits) > maxNativeDigits {
		return Zero, false
	}
	f, err := d.Float64()
	if err != nil || f == 0 || math.IsInf(f, 0) || f < 0x1p-1022 {
		return Zero, false
	}
	var r float64
	if n == 2 {
		r = math.Sqrt(f)
	} else {
		r = math.Pow(f, 1/float64(n))
	}
	// the result must have at most maxNativeDigits significant digits.
	if int(math.Floor(math.Log10(r)))+1+prec > maxNativeDigits {
		return Zero, false
	}
	result, err := FromFloat64(r)
	if err != nil {
		return Zero, false
	}
	return result.Round(prec), true
}

// scaledRoot moves the decimal point of x, so that the n-th root of the scaled value is in [1, 10),
// calls root for it, and moves the point of the result back.
func scaledRoot(x Decimal, n, prec int, root func(x Decimal, wp int) (Decimal, error)) (Decimal, error) {
	k := mu.FloorDiv(x.exponent(), n)
	// the root of x*10^(-n*k) is the root of x multiplied by 10^(-k).
	wp := max(prec+k, 0) + 1
	r, err := root(x.ShiftLeft(n*k), wp)
	if err != nil {
		return Zero, errors.WithMessagef(err, "root %d of %s", n, x)
	}
	return r.ShiftRight(k).Round(prec), nil
}

// converge repeats step starting from x, until it returns its argument.
// A sequence, that alternates between two values because of the truncation, also stops.
func converge(x Decimal, step func(Decimal) Decimal) (Decimal, error) {
	var prev Decimal
	for i := 0; i < MaxIterations; i++ {
		next := step(x)
		if next.Equal(x) || (i > 0 && next.Equal(prev)) {
			return next, nil
		}
		prev, x = x, next
	}
	return x, errors.Wrapf(ErrNoConvergence, "%d iterations", MaxIterations)
}

// exponent returns the power of ten of the most significant digit.
func (d Decimal) exponent() int {
	return len(d.digits) + d.shift - 1
}
