// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"github.com/pkg/errors"

	mu "github.com/avdva/apdecimal/internal/mathutil"
)

// seriesGuard is the number of extra digits, the series are summed with.
const seriesGuard = 3

// Exp returns e^d rounded half-up to prec fractional digits.
// All the integer digits of the result are calculated, so the cost grows quickly with d:
// e^100000 has more than 43000 digits.
func (d Decimal) Exp(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	if d.IsZero() {
		return One, nil
	}
	if d.IsNeg() {
		// e^-x = 1/e^x, and e^x >= 1.
		e, err := d.Neg().Exp(p + 2)
		if err != nil {
			return Zero, err
		}
		return One.Div(e, p), nil
	}
	// x = r*2^k, where r < 1, and e^x = (e^r)^(2^k).
	r, k := d, 0
	for r.Cmp(One) >= 0 {
		r = r.Mul(half, FullPrecision)
		k++
	}
	// every squaring doubles the relative error, and e^x has about x*log10(e) integer digits.
	intDigits, err := d.Mul(log10E, 0).Int64()
	if err != nil {
		return Zero, errors.Wrapf(ErrRange, "e^%s is too big", d)
	}
	wp := p + int(intDigits) + k/3 + seriesGuard
	result, err := expSeries(r, wp)
	if err != nil {
		return Zero, errors.WithMessagef(err, "e^%s", d)
	}
	for ; k > 0; k-- {
		result = result.Mul(result, wp)
	}
	return result.Round(p), nil
}

// log10E is slightly greater than log10(e).
var log10E = Decimal{digits: []byte{4, 3, 4, 3}, shift: -4}

// expSeries sums the Taylor series 1 + x + x^2/2! + ... with prec fractional digits.
func expSeries(x Decimal, prec int) (Decimal, error) {
	term := One
	return sumSeries(One, func(k int) Decimal {
		term = term.Mul(x, prec).DivRound(FromInt64(int64(k)), prec, false)
		return term
	})
}

// E returns Euler's number rounded half-up to prec fractional digits.
func E(prec int) (Decimal, error) {
	return One.Exp(prec)
}

// Log returns the natural logarithm of d rounded half-up to prec fractional digits.
func (d Decimal) Log(prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	if d.Sign() <= 0 {
		return Zero, errors.Wrapf(ErrDomain, "logarithm of non-positive number %s", d)
	}
	if d.IsOne() {
		return Zero, nil
	}
	// d = m*2^j*10^e, where m is in [0.75, 1.5), so the series converges fast.
	e := d.exponent()
	m := d.ShiftLeft(e)
	j := 0
	for m.Cmp(threeHalves) >= 0 {
		m = m.Mul(half, FullPrecision)
		j++
	}
	wp := p + mu.DecimalDigits(uint64(mu.AbsInt(e))) + seriesGuard
	result, err := logSeries(m, wp)
	if err != nil {
		return Zero, errors.WithMessagef(err, "ln(%s)", d)
	}
	if j > 0 || e != 0 {
		ln2, ln10, err := logConstants(wp)
		if err != nil {
			return Zero, err
		}
		result = result.
			Add(FromInt64(int64(j)).Mul(ln2, wp), FullPrecision).
			Add(FromInt64(int64(e)).Mul(ln10, wp), FullPrecision)
	}
	return result.Round(p), nil
}

var threeHalves = Decimal{digits: []byte{1, 5}, shift: -1}

// logConstants returns ln(2) and ln(10) with prec fractional digits.
func logConstants(prec int) (ln2, ln10 Decimal, err error) {
	if ln2, err = logSeries(Two, prec+1); err != nil {
		return Zero, Zero, errors.WithMessage(err, "ln(2)")
	}
	// ln(10) = 3*ln(2) + ln(1.25)
	ln125, err := logSeries(Decimal{digits: []byte{1, 2, 5}, shift: -2}, prec+1)
	if err != nil {
		return Zero, Zero, errors.WithMessage(err, "ln(1.25)")
	}
	ln10 = ln2.Mul(FromInt64(3), FullPrecision).Add(ln125, FullPrecision)
	return ln2.trunc(prec), ln10.trunc(prec), nil
}

// logSeries calculates ln(x) = 2 * (t + t^3/3 + t^5/5 + ...), where t = (x-1)/(x+1).
func logSeries(x Decimal, prec int) (Decimal, error) {
	t := x.Dec().DivRound(x.Inc(), prec, false)
	t2 := t.Mul(t, prec)
	tn := t
	sum, err := sumSeries(t, func(k int) Decimal {
		tn = tn.Mul(t2, prec)
		return tn.DivRound(FromInt64(int64(2*k+1)), prec, false)
	})
	if err != nil {
		return Zero, err
	}
	return sum.Mul(Two, FullPrecision), nil
}

// LogBase returns the logarithm of d to given base rounded half-up to prec fractional digits.
func (d Decimal) LogBase(base Decimal, prec int) (Decimal, error) {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		return Zero, err
	}
	x, err := d.Log(p + seriesGuard)
	if err != nil {
		return Zero, err
	}
	b, err := base.Log(p + seriesGuard)
	if err != nil {
		return Zero, errors.WithMessage(err, "bad base")
	}
	if b.IsZero() {
		return Zero, errors.Wrapf(ErrDivisionByZero, "logarithm to base %s", base)
	}
	return x.Div(b, p), nil
}

// Log10 returns the decimal logarithm of d rounded half-up to prec fractional digits.
func (d Decimal) Log10(prec int) (Decimal, error) {
	return d.LogBase(Ten, prec)
}

// sumSeries adds the terms returned by next to sum, until a term becomes zero.
func sumSeries(sum Decimal, next func(k int) Decimal) (Decimal, error) {
	for k := 1; k <= MaxIterations; k++ {
		term := next(k)
		if term.IsZero() {
			return sum, nil
		}
		sum = sum.Add(term, FullPrecision)
	}
	return sum, errors.Wrapf(ErrNoConvergence, "%d iterations", MaxIterations)
}
