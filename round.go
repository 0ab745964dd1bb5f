// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

// Round rounds the value half-up to prec fractional digits,
// so that 0.5 becomes 1, and -0.5 becomes -1.
// If prec is negative, the value is returned as is.
func (d Decimal) Round(prec int) Decimal {
	if prec < 0 || d.fracLen() <= prec {
		return d
	}
	var carry int
	if d.digitAt(-prec-1) >= 5 {
		carry = 1
	}
	maxPow := d.intLen() - 1
	// one more digit for the carry.
	result := make([]byte, maxPow+prec+2)
	for pow, i := -prec, len(result)-1; pow <= maxPow; pow, i = pow+1, i-1 {
		r := d.digitAt(pow) + carry
		carry = 0
		if r == 10 {
			r = 0
			carry = 1
		}
		result[i] = mustDigit(r)
	}
	result[0] = byte(carry)
	return newDecimal(result, -prec, d.neg)
}

// Trunc cuts off the fractional digits after prec.
// Trunc(0) returns the integer part of the value.
func (d Decimal) Trunc(prec int) Decimal {
	return d.trunc(resolvePrec(prec))
}

func (d Decimal) trunc(prec int) Decimal {
	if prec < 0 || d.fracLen() <= prec {
		return d
	}
	keep := len(d.digits) + d.shift + prec
	if keep <= 0 {
		return Zero
	}
	return newDecimal(d.digits[:keep:keep], -prec, d.neg)
}

// Floor returns the greatest integer value less than or equal to d.
func (d Decimal) Floor() Decimal {
	if d.IsInteger() {
		return d
	}
	if d.neg {
		return d.Trunc(0).Dec()
	}
	return d.Trunc(0)
}

// Ceil returns the least integer value greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	if d.IsInteger() {
		return d
	}
	if d.neg {
		return d.Trunc(0)
	}
	return d.Trunc(0).Inc()
}

// Frac returns the fractional part of the value with at most prec digits.
// The sign of the result is the sign of d.
func (d Decimal) Frac(prec int) Decimal {
	return d.Sub(d.Trunc(0), prec).Trunc(prec)
}
