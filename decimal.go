// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package apdecimal implements arbitrary-precision decimal numbers.
// A Decimal stores its magnitude as a sequence of decimal digits together
// with the position of the decimal point, so there is no limit on the
// number of digits before or after the point, and no binary rounding.
// Most operations accept a precision, that is the number of fractional digits
// they are allowed to compute, see FullPrecision and FixedPrecision.
package apdecimal

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"

	mu "github.com/avdva/apdecimal/internal/mathutil"
)

var (
	// Precision is the default working precision, used when FixedPrecision is passed to an operation,
	// and by the functions, which cannot work with an unbounded precision.
	// This variable is not thread-safe, so this should be changed on program start.
	Precision = 50

	// MaxIterations limits the number of iterations of every convergence loop.
	// If a loop does not converge within the limit, ErrNoConvergence is returned.
	// This variable is not thread-safe, so this should be changed on program start.
	MaxIterations = 10000

	// DecimalSeparator is written by Text and String between integer and fractional parts.
	// Both '.' and ',' are always accepted by Parse.
	// This variable is not thread-safe, so this should be changed on program start.
	DecimalSeparator byte = '.'
)

const (
	// FullPrecision makes an operation keep all the digits it produces.
	// The functions, that cannot terminate with an unbounded precision, use Precision instead.
	FullPrecision = -1
	// FixedPrecision makes an operation use the current value of Precision.
	FixedPrecision = -2
)

var (
	// Zero is 0.
	Zero = Decimal{digits: []byte{0}}
	// One is 1.
	One = Decimal{digits: []byte{1}}
	// Two is 2.
	Two = Decimal{digits: []byte{2}}
	// Ten is 10.
	Ten = Decimal{digits: []byte{1}, shift: 1}

	half = Decimal{digits: []byte{5}, shift: -1}
)

// Decimal is an arbitrary-precision decimal number.
// Its value is
//	(-1)^neg * digits * 10^shift
// where digits are read as a decimal integer, most significant digit first.
// The decimal point is located len(digits)+shift positions from the start of digits.
//
// Decimal has value semantics: operations never modify their operands,
// and the digits of a value are never written after the value has been created,
// so values can be copied and shared between goroutines.
// The zero value is 0.
type Decimal struct {
	digits []byte
	shift  int
	neg    bool
}

// newDecimal creates a value from digits, that are owned by the result.
// Leading zeros and fractional trailing zeros are dropped, zero is canonicalized.
func newDecimal(digits []byte, shift int, neg bool) Decimal {
	start := 0
	for start < len(digits)-1 && digits[start] == 0 {
		start++
	}
	digits = digits[start:]
	end := len(digits)
	for end > 1 && shift < 0 && digits[end-1] == 0 {
		end--
		shift++
	}
	digits = digits[:end]
	if len(digits) == 0 || len(digits) == 1 && digits[0] == 0 {
		return Zero
	}
	return Decimal{digits: digits, shift: shift, neg: neg}
}

// mustDigit converts v to a digit. A value outside of 0..9 means a defect in the engine.
func mustDigit(v int) byte {
	if v < 0 || v > 9 {
		panic(fmt.Sprintf("apdecimal: internal error: digit %d out of range", v))
	}
	return byte(v)
}

// FromInt64 returns a value for given int64 number.
func FromInt64(v int64) Decimal {
	d := FromUint64(uint64(mu.AbsInt64(v)))
	d.neg = v < 0
	return d
}

// FromUint64 returns a value for given uint64 number.
func FromUint64(v uint64) Decimal {
	return newDecimal(mu.Digits(v), 0, false)
}

// FromFloat64 returns a value for given float64.
// The shortest decimal representation, that rounds back to v, is used.
// Returns an error for infinities and not-a-numbers.
func FromFloat64(v float64) (Decimal, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Zero, errors.Wrapf(ErrRange, "bad float number %v", v)
	}
	if v == 0 {
		return Zero, nil
	}
	return Parse(strconv.FormatFloat(v, 'g', -1, 64))
}

// MustFromFloat64 calls FromFloat64 and panics on error.
func MustFromFloat64(v float64) Decimal {
	d, err := FromFloat64(v)
	if err != nil {
		panic(err)
	}
	return d
}

// Float64 returns the nearest float64 value.
// Returns ErrRange if the value is out of float64 range.
func (d Decimal) Float64() (float64, error) {
	f, err := strconv.ParseFloat(d.format(FullPrecision, '.'), 64)
	if err != nil {
		return f, errors.Wrapf(ErrRange, "%s does not fit float64", d)
	}
	return f, nil
}

// Int64 returns the integer part of the value.
// Returns ErrRange if it does not fit int64.
func (d Decimal) Int64() (int64, error) {
	i, err := strconv.ParseInt(d.format(0, '.'), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRange, "%s does not fit int64", d.Trunc(0))
	}
	return i, nil
}

// IsZero returns true if all the digits are zero.
func (d Decimal) IsZero() bool {
	for _, v := range d.digits {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsOne returns true if the value is 1 or -1.
func (d Decimal) IsOne() bool {
	return d.Abs().Cmp(One) == 0
}

// IsInteger returns true if the value has no non-zero fractional digits.
func (d Decimal) IsInteger() bool {
	if d.shift >= 0 {
		return true
	}
	for i := max(len(d.digits)+d.shift, 0); i < len(d.digits); i++ {
		if d.digits[i] != 0 {
			return false
		}
	}
	return true
}

// IsOdd returns true if the value is an odd integer.
// Returns ErrDomain for fractional numbers.
func (d Decimal) IsOdd() (bool, error) {
	if !d.IsInteger() {
		return false, errors.Wrapf(ErrDomain, "fractional number %s cannot be odd or even", d)
	}
	return d.digitAt(0)%2 == 1, nil
}

// IsEven returns true if the value is an even integer.
// Returns ErrDomain for fractional numbers.
func (d Decimal) IsEven() (bool, error) {
	odd, err := d.IsOdd()
	return !odd && err == nil, err
}

// IsNeg returns true if the value is less than zero.
func (d Decimal) IsNeg() bool {
	return d.neg && !d.IsZero()
}

// Sign returns -1 if d < 0, 0 if d == 0, 1 if d > 0.
func (d Decimal) Sign() int {
	if d.IsZero() {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return Zero
	}
	d.neg = !d.neg
	return d
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// ShiftLeft moves the decimal point n positions to the left, that is divides d by 10^n.
func (d Decimal) ShiftLeft(n int) Decimal {
	if d.IsZero() {
		return Zero
	}
	return newDecimal(d.digits, d.shift-n, d.neg)
}

// ShiftRight moves the decimal point n positions to the right, that is multiplies d by 10^n.
func (d Decimal) ShiftRight(n int) Decimal {
	return d.ShiftLeft(-n)
}

// GoString returns debug string representation.
func (d Decimal) GoString() string {
	return d.String() + fmt.Sprintf(" {%v, %v, %v}", d.digits, d.shift, d.neg)
}

// digitAt returns the digit, that is multiplied by 10^pow in the value.
func (d Decimal) digitAt(pow int) int {
	i := len(d.digits) + d.shift - 1 - pow
	if i < 0 || i >= len(d.digits) {
		return 0
	}
	return int(d.digits[i])
}

// intLen returns the number of integer digits. Purely fractional values have one implied zero.
func (d Decimal) intLen() int {
	if l := len(d.digits) + d.shift; l > 0 {
		return l
	}
	return 1
}

// fracLen returns the number of fractional digits.
func (d Decimal) fracLen() int {
	if d.shift < 0 {
		return -d.shift
	}
	return 0
}
