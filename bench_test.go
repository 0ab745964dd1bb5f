// Copyright 2020 Aleksandr Demakin. All rights reserved.

package apdecimal

import (
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	gv "github.com/govalues/decimal"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

const (
	benchX = "123456789.123456789"
	benchY = "1234.987654321"
)

func BenchmarkAdd(b *testing.B) {
	x, y := MustParse(benchX), MustParse(benchY)
	for i := 0; i < b.N; i++ {
		x.Add(y, FullPrecision)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	x, y := mustShopspring(b, benchX), mustShopspring(b, benchY)
	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}


func BenchmarkMul(b *testing.B) {
	x, y := MustParse(benchX), MustParse(benchY)
	for i := 0; i < b.N; i++ {
		x.Mul(y, FullPrecision)
	}
}

func BenchmarkMulLong(b *testing.B) {
	x := MustParse(strings.Repeat("123456789", 100))
	y := MustParse("0." + strings.Repeat("987654321", 100))
	for i := 0; i < b.N; i++ {
		x.Mul(y, FullPrecision)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	x, y := of.NewS("123456789.1234567"), of.NewS("1234.9876543")
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	x, y := mustShopspring(b, benchX), mustShopspring(b, benchY)
	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkDiv(b *testing.B) {
	x, y := MustParse(benchX), MustParse(benchY)
	for i := 0; i < b.N; i++ {
		x.Div(y, 20)
	}
}

func BenchmarkDivAPD(b *testing.B) {
	x, _, err := apd.NewFromString(benchX)
	if err != nil {
		b.Fatal(err)
	}
	y, _, err := apd.NewFromString(benchY)
	if err != nil {
		b.Fatal(err)
	}
	ctx := apd.BaseContext.WithPrecision(30)
	var res apd.Decimal
	for i := 0; i < b.N; i++ {
		_, _ = ctx.Quo(&res, x, y)
	}
}

func BenchmarkSqrt(b *testing.B) {
	x := MustParse(benchX)
	for i := 0; i < b.N; i++ {
		_, _ = x.Sqrt(30)
	}
}

func BenchmarkExp(b *testing.B) {
	x := MustParse("12.345")
	for i := 0; i < b.N; i++ {
		_, _ = x.Exp(30)
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse(benchX)
	}
}

func BenchmarkParseGovalues(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = gv.Parse(benchX)
	}
}

func mustShopspring(b *testing.B, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		b.Fatal(err)
	}
	return d
}
