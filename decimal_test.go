// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		res string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{1200, "1200"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := FromInt64(test.v)
			a.Equal(test.res, d.String())
			v, err := d.Int64()
			if a.NoError(err) {
				a.Equal(test.v, v)
			}
		})
	}
	a.Equal("18446744073709551615", FromUint64(math.MaxUint64).String())
	_, err := FromUint64(math.MaxUint64).Int64()
	a.True(errors.Is(err, ErrRange))
}

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res string
		err string
	}{
		{0, "0", ""},
		{0.1, "0.1", ""},
		{-2.5, "-2.5", ""},
		{1e21, "1000000000000000000000", ""},
		{1.5e-7, "0.00000015", ""},
		{math.Inf(1), "", "bad float number +Inf: value out of range"},
		{math.Inf(-1), "", "bad float number -Inf: value out of range"},
		{math.NaN(), "", "bad float number NaN: value out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d, err := FromFloat64(test.f)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.res, d.String())
					f, err := d.Float64()
					a.NoError(err)
					a.Equal(test.f, f)
				}
			} else {
				a.EqualError(err, test.err)
				a.True(errors.Is(err, ErrRange))
			}
		})
	}
	a.Panics(func() {
		MustFromFloat64(math.NaN())
	})
}

func TestInt64(t *testing.T) {
	a := assert.New(t)
	v, err := MustParse("-123.999").Int64()
	a.NoError(err)
	a.Equal(int64(-123), v)
	v, err = MustParse("0.5").Int64()
	a.NoError(err)
	a.Equal(int64(0), v)
	_, err = MustParse("1e19").Int64()
	a.True(errors.Is(err, ErrRange))
	_, err = MustParse("1e400").Float64()
	a.True(errors.Is(err, ErrRange))
}

func TestQueries(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s                  string
		zero, one, integer bool
		sign               int
		odd                bool
		oddErr             bool
	}{
		{s: "0", zero: true, integer: true},
		{s: "0.000", zero: true, integer: true},
		{s: "1", one: true, integer: true, sign: 1, odd: true},
		{s: "-1", one: true, integer: true, sign: -1, odd: true},
		{s: "1.000", one: true, integer: true, sign: 1, odd: true},
		{s: "10", integer: true, sign: 1},
		{s: "0.1", sign: 1, oddErr: true},
		{s: "11", integer: true, sign: 1, odd: true},
		{s: "-2.5", sign: -1, oddErr: true},
		{s: "1200", integer: true, sign: 1},
		{s: "1.0001", sign: 1, oddErr: true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := MustParse(test.s)
			a.Equal(test.zero, d.IsZero())
			a.Equal(test.one, d.IsOne())
			a.Equal(test.integer, d.IsInteger())
			a.Equal(test.sign, d.Sign())
			odd, err := d.IsOdd()
			even, err2 := d.IsEven()
			if test.oddErr {
				a.True(errors.Is(err, ErrDomain))
				a.True(errors.Is(err2, ErrDomain))
			} else if a.NoError(err) && a.NoError(err2) {
				a.Equal(test.odd, odd)
				a.Equal(!test.odd, even)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	a := assert.New(t)
	var d Decimal
	a.True(d.IsZero())
	a.Equal("0", d.String())
	a.Equal(0, d.Cmp(Zero))
	a.Equal("1.5", d.Add(MustParse("1.5"), FullPrecision).String())
	negZero := Decimal{digits: []byte{0}, neg: true}
	a.Equal("0", negZero.String())
	a.Equal(0, negZero.Cmp(Zero))
	a.Equal(0, negZero.Sign())
	a.False(negZero.IsNeg())
	a.Equal(Zero, Zero.Neg())
}

func TestValueSemantics(t *testing.T) {
	a := assert.New(t)
	x := MustParse("-123.456")
	y := MustParse("7.89")
	orig := x.GoString()
	x.Neg()
	x.Abs()
	x.ShiftLeft(5)
	x.Add(y, FullPrecision)
	x.Sub(y, FullPrecision)
	x.Mul(y, 1)
	x.Div(y, 3)
	x.Round(1)
	x.Trunc(0)
	x.Floor()
	x.Ceil()
	x.Frac(2)
	x.Inc()
	a.Equal(orig, x.GoString())
}

func TestShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		n   int
		res string
	}{
		{"123.456", 2, "1.23456"},
		{"123.456", -2, "12345.6"},
		{"123.456", -5, "12345600"},
		{"100", 3, "0.1"},
		{"0", 3, "0"},
		{"-5", 1, "-0.5"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			d := MustParse(test.s)
			a.Equal(test.res, d.ShiftLeft(test.n).String())
			a.Equal(test.res, d.ShiftRight(-test.n).String())
		})
	}
}

func TestGoString(t *testing.T) {
	a := assert.New(t)
	a.Equal("-1.5 {[1 5], -1, true}", MustParse("-1.5").GoString())
	a.Equal("-1.5 {[1 5], -1, true}", fmt.Sprintf("%#v", MustParse("-1.5")))
}
