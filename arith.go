// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

// Add returns d + other.
// If prec >= 0, the fractional digits of both operands after prec are ignored.
func (d Decimal) Add(other Decimal, prec int) Decimal {
	return addSigned(d, other, resolvePrec(prec))
}

// Sub returns d - other.
// If prec >= 0, the fractional digits of both operands after prec are ignored.
func (d Decimal) Sub(other Decimal, prec int) Decimal {
	return addSigned(d, other.Neg(), resolvePrec(prec))
}

// Inc returns d + 1.
func (d Decimal) Inc() Decimal {
	return d.Add(One, FullPrecision)
}

// Dec returns d - 1.
func (d Decimal) Dec() Decimal {
	return d.Sub(One, FullPrecision)
}

// addSigned reduces every sign combination of a + b
// to either a sum or an ordered difference of magnitudes.
func addSigned(a, b Decimal, prec int) Decimal {
	if a.IsZero() {
		return b.trunc(prec)
	}
	if b.IsZero() {
		return a.trunc(prec)
	}
	if a.neg == b.neg {
		// a+b
		// or -a+(-b) = -(a+b)
		return addMagnitude(a, b, a.neg, prec)
	}
	switch cmpMagnitude(a, b, prec) {
	case 1: // a+(-b) = a-b, or -a+b = -(a-b)
		return subMagnitude(a, b, a.neg, prec)
	case -1: // a+(-b) = -(b-a), or -a+b = b-a
		return subMagnitude(b, a, b.neg, prec)
	default:
		return Zero
	}
}

// window returns the powers of ten of the most significant and the least significant digits,
// that cover both a and b.
func window(a, b Decimal, prec int) (maxPow, minPow int) {
	fa, fb := a.fracLen(), b.fracLen()
	if prec >= 0 {
		fa, fb = min(fa, prec), min(fb, prec)
	}
	return max(a.intLen(), b.intLen()) - 1, -max(fa, fb)
}

// addMagnitude returns |a|+|b| with given sign.
func addMagnitude(a, b Decimal, neg bool, prec int) Decimal {
	maxPow, minPow := window(a, b, prec)
	// one more digit for the carry.
	result := make([]byte, maxPow-minPow+2)
	var carry int
	for pow, i := minPow, len(result)-1; pow <= maxPow; pow, i = pow+1, i-1 {
		r := a.digitAt(pow) + b.digitAt(pow) + carry
		carry = 0
		if r >= 10 {
			r -= 10
			carry = 1
		}
		result[i] = mustDigit(r)
	}
	result[0] = byte(carry)
	return newDecimal(result, minPow, neg)
}

// subMagnitude returns |a|-|b| with given sign. It requires |a| >= |b|.
func subMagnitude(a, b Decimal, neg bool, prec int) Decimal {
	maxPow, minPow := window(a, b, prec)
	result := make([]byte, maxPow-minPow+1)
	var borrow int
	for pow, i := minPow, len(result)-1; pow <= maxPow; pow, i = pow+1, i-1 {
		r := a.digitAt(pow) - b.digitAt(pow) - borrow
		borrow = 0
		if r < 0 {
			r += 10
			borrow = 1
		}
		result[i] = mustDigit(r)
	}
	if borrow != 0 {
		panic("apdecimal: internal error: subtrahend is greater than minuend")
	}
	return newDecimal(result, minPow, neg)
}

// Mul returns d * other.
// If prec >= 0, the fractional digits of the product after prec are cut off.
func (d Decimal) Mul(other Decimal, prec int) Decimal {
	prec = resolvePrec(prec)
	if d.IsZero() || other.IsZero() {
		return Zero
	}
	if d.IsOne() {
		if d.neg {
			other = other.Neg()
		}
		return other.trunc(prec)
	}
	if other.IsOne() {
		if other.neg {
			d = d.Neg()
		}
		return d.trunc(prec)
	}

	// a*10^e1 * b*10^e2 = a * b * 10^(e1+e2)
	// cols[i+j+1] collects the products of d.digits[i] and other.digits[j],
	// the carry is propagated once, when all the columns are summed.
	cols := make([]int, len(d.digits)+len(other.digits))
	for i := len(d.digits) - 1; i >= 0; i-- {
		x := int(d.digits[i])
		if x == 0 {
			continue
		}
		for j, y := range other.digits {
			cols[i+j+1] += x * int(y)
		}
	}
	result := make([]byte, len(cols))
	var carry int
	for i := len(cols) - 1; i >= 0; i-- {
		r := cols[i] + carry
		result[i] = mustDigit(r % 10)
		carry = r / 10
	}
	if carry != 0 {
		panic("apdecimal: internal error: product overflow")
	}
	return newDecimal(result, d.shift+other.shift, d.neg != other.neg).trunc(prec)
}

// Div returns d / other, rounded half-up to prec fractional digits.
// FullPrecision has no meaning for a division, and is replaced with Precision.
// If other == 0, Div panics.
func (d Decimal) Div(other Decimal, prec int) Decimal {
	return d.DivRound(other, prec, true)
}

// IDiv returns the integer part of d / other. If other == 0, IDiv panics.
func (d Decimal) IDiv(other Decimal) Decimal {
	return d.DivRound(other, 0, false)
}

// DivRound returns d / other with prec fractional digits.
// If round is true, one more digit is calculated, and the result is rounded half-up,
// otherwise the digits after prec are cut off.
// If other == 0, DivRound panics.
func (d Decimal) DivRound(other Decimal, prec int, round bool) Decimal {
	prec = mustResolveBoundedPrec(prec)
	if other.IsZero() {
		panic(ErrDivisionByZero)
	}
	if d.IsZero() {
		return Zero
	}
	if other.IsOne() {
		if other.neg {
			d = d.Neg()
		}
		if round {
			return d.Round(prec)
		}
		return d.trunc(prec)
	}
	if round {
		prec++
	}
	result := divMagnitude(d, other, prec)
	result.neg = d.neg != other.neg
	if round {
		return result.Round(prec - 1)
	}
	return result.trunc(prec)
}

// divMagnitude calculates |a|/|b| using long division.
// The result has at least prec fractional digits, unless the division is exact.
func divMagnitude(a, b Decimal, prec int) Decimal {
	// a*10^e1 / b*10^e2 = (a/b) * 10^(e1-e2).
	// a/b is calculated with the number of fractional digits, that gives
	// prec digits after the shift by e1-e2.
	divisor := Decimal{digits: b.digits}
	fracDigits := max(prec+a.shift-b.shift, 0)
	lastNonZero := len(a.digits) - 1
	for lastNonZero > 0 && a.digits[lastNonZero] == 0 {
		lastNonZero--
	}

	quo := make([]byte, 0, len(a.digits)+fracDigits)
	rem := Zero
	for i := 0; i < len(a.digits)+fracDigits; i++ {
		// bring down the next digit of the dividend.
		var next byte
		if i < len(a.digits) {
			next = a.digits[i]
		}
		remDigits := make([]byte, len(rem.digits)+1)
		copy(remDigits, rem.digits)
		remDigits[len(rem.digits)] = next
		rem = newDecimal(remDigits, 0, false)

		// find such q, that q*divisor <= rem < (q+1)*divisor.
		q, sum := 0, Zero
		for {
			nextSum := addMagnitude(sum, divisor, false, FullPrecision)
			if cmpMagnitude(nextSum, rem, -1) > 0 {
				break
			}
			sum = nextSum
			if q++; q > 9 {
				panic("apdecimal: internal error: quotient digit out of range")
			}
		}
		if q > 0 {
			rem = subMagnitude(rem, sum, false, FullPrecision)
		}
		quo = append(quo, byte(q))

		if i >= lastNonZero && rem.IsZero() {
			break
		}
	}

	// quo[i] is multiplied by 10^(len(a.digits)-1-i).
	return newDecimal(quo, len(a.digits)-len(quo)+a.shift-b.shift, false)
}
