// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

// String returns all the digits of the value.
func (d Decimal) String() string {
	return d.Text(FullPrecision)
}

// Text returns a string representation of the value with at most prec fractional digits.
// The digits after prec are cut off, there is no rounding.
// Trailing fractional zeros are omitted.
func (d Decimal) Text(prec int) string {
	return d.format(resolvePrec(prec), DecimalSeparator)
}

// format formats the value with given separator. prec < 0 means all the digits.
func (d Decimal) format(prec int, sep byte) string {
	n := len(d.digits)
	point := n + d.shift
	buf := make([]byte, 0, max(n, point)-min(0, point)+3)
	if point <= 0 {
		buf = append(buf, '0')
	}
	frac := -1 // number of fractional digits written, -1 before the separator.
	for i := min(0, point); i < max(n, point); i++ {
		if i == point {
			if prec == 0 {
				break
			}
			buf = append(buf, sep)
			frac = 0
		}
		if frac >= 0 {
			if prec >= 0 && frac >= prec {
				break
			}
			frac++
		}
		if i >= 0 && i < n {
			buf = append(buf, '0'+d.digits[i])
		} else {
			buf = append(buf, '0')
		}
	}

	// trim leading zeros, but keep one before the separator.
	start := 0
	for start < len(buf) && buf[start] == '0' {
		start++
	}
	buf = buf[start:]
	if len(buf) == 0 || buf[0] == sep {
		buf = append([]byte{'0'}, buf...)
	}
	if frac >= 0 { // trim fractional trailing zeros and a bare separator.
		end := len(buf)
		for buf[end-1] == '0' {
			end--
		}
		if buf[end-1] == sep {
			end--
		}
		buf = buf[:end]
	}

	if d.neg && !(len(buf) == 1 && buf[0] == '0') {
		return "-" + string(buf)
	}
	return string(buf)
}
