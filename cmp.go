// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

// Cmp compares two values using all their digits.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (d Decimal) Cmp(other Decimal) int {
	return d.CmpPrec(other, FullPrecision)
}

// CmpPrec compares two values using at most prec fractional digits.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (d Decimal) CmpPrec(other Decimal, prec int) int {
	prec = resolvePrec(prec)
	n1, n2 := d.IsNeg(), other.IsNeg()
	switch {
	case n1 && !n2:
		return -1
	case !n1 && n2:
		return 1
	}
	result := cmpMagnitude(d, other, prec)
	if n1 {
		return -result
	}
	return result
}

// Equal returns true if both values represent the same number.
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// Min returns the smaller value.
func (d Decimal) Min(other Decimal) Decimal {
	if d.Cmp(other) <= 0 {
		return d
	}
	return other
}

// Max returns the greater value.
func (d Decimal) Max(other Decimal) Decimal {
	if d.Cmp(other) >= 0 {
		return d
	}
	return other
}

// cmpMagnitude compares |a| and |b| digit by digit, starting from the most significant one.
// The digits after prec fractional digits are ignored, if prec >= 0.
func cmpMagnitude(a, b Decimal, prec int) int {
	maxI := max(a.intLen(), b.intLen())
	minPow := -max(a.fracLen(), b.fracLen())
	if prec >= 0 && minPow < -prec {
		minPow = -prec
	}
	for pow := maxI - 1; pow >= minPow; pow-- {
		v1, v2 := a.digitAt(pow), b.digitAt(pow)
		switch {
		case v1 > v2:
			return 1
		case v1 < v2:
			return -1
		}
	}
	return 0
}
