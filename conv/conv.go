// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package conv converts decimal values between apdecimal and other decimal libraries.
// All the conversions go through the text form of a value.
package conv

import (
	"github.com/cockroachdb/apd/v3"
	gv "github.com/govalues/decimal"
	"github.com/pkg/errors"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	"github.com/avdva/apdecimal"
)

// text returns the value with '.' as the separator, regardless of apdecimal.DecimalSeparator.
func text(d apdecimal.Decimal) string {
	b, _ := d.MarshalText()
	return string(b)
}

// ToShopspring converts d to a shopspring decimal. The conversion is exact.
func ToShopspring(d apdecimal.Decimal) (decimal.Decimal, error) {
	result, err := decimal.NewFromString(text(d))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "converting %s", d)
	}
	return result, nil
}

// FromShopspring converts a shopspring decimal to apdecimal.
func FromShopspring(d decimal.Decimal) (apdecimal.Decimal, error) {
	return apdecimal.Parse(d.String())
}

// ToAPD converts d to an apd decimal. The conversion is exact.
func ToAPD(d apdecimal.Decimal) (*apd.Decimal, error) {
	result, _, err := apd.NewFromString(text(d))
	if err != nil {
		return nil, errors.Wrapf(err, "converting %s", d)
	}
	return result, nil
}

// FromAPD converts a finite apd decimal to apdecimal.
func FromAPD(d *apd.Decimal) (apdecimal.Decimal, error) {
	if d.Form != apd.Finite {
		return apdecimal.Zero, errors.Wrapf(apdecimal.ErrRange, "non-finite value %s", d)
	}
	return apdecimal.Parse(d.Text('f'))
}

// ToGovalues converts d to a govalues decimal.
// Fractional digits, that do not fit the 19-digit coefficient, are rounded.
// Returns an error wrapping apdecimal.ErrRange if the integer part is too big.
func ToGovalues(d apdecimal.Decimal) (gv.Decimal, error) {
	result, err := gv.Parse(text(d))
	if err != nil {
		return gv.Decimal{}, errors.Wrapf(apdecimal.ErrRange, "converting %s: %v", d, err)
	}
	return result, nil
}

// FromGovalues converts a govalues decimal to apdecimal.
func FromGovalues(d gv.Decimal) (apdecimal.Decimal, error) {
	return apdecimal.Parse(d.String())
}

// ToFixed converts d to a fixed-point value with 7 fractional digits.
// The digits after the 7th are cut off.
// Returns an error wrapping apdecimal.ErrRange if the value does not fit.
func ToFixed(d apdecimal.Decimal) (fixed.Fixed, error) {
	if d.Abs().Cmp(maxFixed) > 0 {
		return fixed.Fixed{}, errors.Wrapf(apdecimal.ErrRange, "%s does not fit fixed", d)
	}
	result, err := fixed.NewSErr(text(d.Trunc(fixedPlaces)))
	if err == nil && result.IsNaN() {
		err = errors.New("NaN")
	}
	if err != nil {
		return fixed.Fixed{}, errors.Wrapf(apdecimal.ErrRange, "converting %s: %v", d, err)
	}
	return result, nil
}

// FromFixed converts a fixed-point value to apdecimal.
func FromFixed(f fixed.Fixed) (apdecimal.Decimal, error) {
	if f.IsNaN() {
		return apdecimal.Zero, errors.Wrap(apdecimal.ErrRange, "NaN")
	}
	return apdecimal.Parse(f.String())
}

const fixedPlaces = 7

// maxFixed is the greatest integer part of a fixed value, (2^63-1)/10^7.
var maxFixed = apdecimal.MustParse("922337203685")
