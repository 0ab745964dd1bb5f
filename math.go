// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"github.com/pkg/errors"
)

// Factorial returns d!. d must be a non-negative integer.
func (d Decimal) Factorial() (Decimal, error) {
	if d.IsNeg() || !d.IsInteger() {
		return Zero, errors.Wrapf(ErrDomain, "factorial of %s", d)
	}
	n, err := d.Int64()
	if err != nil {
		return Zero, errors.WithMessage(err, "factorial")
	}
	result := One
	for ; n > 1; n-- {
		result = result.Mul(FromInt64(n), FullPrecision)
	}
	return result, nil
}

// Mod returns d - trunc(d/other)*other, so the result has the sign of d.
// The difference is calculated with at most prec fractional digits of the operands.
// If other == 0, Mod panics.
func (d Decimal) Mod(other Decimal, prec int) Decimal {
	q := d.DivRound(other, 0, false)
	return d.Sub(q.Mul(other, FullPrecision), prec)
}
