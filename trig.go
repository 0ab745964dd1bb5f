// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"github.com/pkg/errors"
)

// Pi returns π rounded half-up to prec fractional digits.
func Pi(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	result, err := pi(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	return result.Round(p), nil
}

// pi calculates π with prec fractional digits using Machin's formula:
//	π = 16*atan(1/5) - 4*atan(1/239)
func pi(prec int) (Decimal, error) {
	a, err := atanInv(5, prec)
	if err != nil {
		return Zero, errors.WithMessage(err, "atan(1/5)")
	}
	b, err := atanInv(239, prec)
	if err != nil {
		return Zero, errors.WithMessage(err, "atan(1/239)")
	}
	return a.Mul(FromInt64(16), FullPrecision).Sub(b.Mul(FromInt64(4), FullPrecision), FullPrecision), nil
}

// atanInv calculates atan(1/n) = 1/n - 1/(3n^3) + 1/(5n^5) - ...
func atanInv(n int64, prec int) (Decimal, error) {
	x := FromInt64(n)
	x2 := x.Mul(x, FullPrecision)
	pow := One.DivRound(x, prec, false)
	return sumSeries(pow, func(k int) Decimal {
		pow = pow.DivRound(x2, prec, false).Neg()
		return pow.DivRound(FromInt64(int64(2*k+1)), prec, false)
	})
}

// Sin returns the sine of d rounded half-up to prec fractional digits.
func (d Decimal) Sin(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	result, err := d.sin(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	return result.Round(p), nil
}

// Cos returns the cosine of d rounded half-up to prec fractional digits.
func (d Decimal) Cos(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	result, err := d.cos(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	return result.Round(p), nil
}

// Tan returns the tangent of d rounded half-up to prec fractional digits.
// If the cosine is zero with the working precision, an error wrapping ErrDivisionByZero is returned.
func (d Decimal) Tan(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	s, c, err := d.sinCos(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	if c.IsZero() {
		return Zero, errors.Wrapf(ErrDivisionByZero, "tan(%s)", d)
	}
	return s.Div(c, p), nil
}

// Cot returns the cotangent of d rounded half-up to prec fractional digits.
// If the sine is zero with the working precision, an error wrapping ErrDivisionByZero is returned.
func (d Decimal) Cot(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	s, c, err := d.sinCos(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	if s.IsZero() {
		return Zero, errors.Wrapf(ErrDivisionByZero, "cot(%s)", d)
	}
	return c.Div(s, p), nil
}

func (d Decimal) sinCos(prec int) (s, c Decimal, err error) {
	if s, err = d.sin(prec); err != nil {
		return Zero, Zero, err
	}
	if c, err = d.cos(prec); err != nil {
		return Zero, Zero, err
	}
	return s, c, nil
}

// sin sums x - x^3/3! + x^5/5! - ... for x reduced to [-π, π].
func (d Decimal) sin(prec int) (Decimal, error) {
	x, err := d.reduceAngle(prec)
	if err != nil {
		return Zero, err
	}
	x2 := x.Mul(x, prec)
	term := x
	result, err := sumSeries(x, func(k int) Decimal {
		term = term.Mul(x2, prec).DivRound(FromInt64(int64(2*k*(2*k+1))), prec, false).Neg()
		return term
	})
	if err != nil {
		return Zero, errors.WithMessagef(err, "sin(%s)", d)
	}
	return result, nil
}

// cos sums 1 - x^2/2! + x^4/4! - ... for x reduced to [-π, π].
func (d Decimal) cos(prec int) (Decimal, error) {
	x, err := d.reduceAngle(prec)
	if err != nil {
		return Zero, err
	}
	x2 := x.Mul(x, prec)
	term := One
	result, err := sumSeries(One, func(k int) Decimal {
		term = term.Mul(x2, prec).DivRound(FromInt64(int64((2*k-1)*2*k)), prec, false).Neg()
		return term
	})
	if err != nil {
		return Zero, errors.WithMessagef(err, "cos(%s)", d)
	}
	return result, nil
}

// reduceAngle returns x - 2πk, that is in [-π, π].
func (d Decimal) reduceAngle(prec int) (Decimal, error) {
	if d.Abs().Cmp(three) <= 0 {
		return d, nil
	}
	// the error of π is multiplied by k.
	wp := prec + max(d.intLen(), 1) + 1
	p, err := pi(wp)
	if err != nil {
		return Zero, errors.WithMessage(err, "π")
	}
	twoPi := p.Mul(Two, FullPrecision)
	x := d.Sub(d.DivRound(twoPi, 0, false).Mul(twoPi, FullPrecision), FullPrecision)
	switch {
	case x.Cmp(p) > 0:
		x = x.Sub(twoPi, FullPrecision)
	case x.Cmp(p.Neg()) < 0:
		x = x.Add(twoPi, FullPrecision)
	}
	return x.trunc(prec), nil
}

var three = Decimal{digits: []byte{3}}
