package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{999999999999999999, 18},
		{1000000000000000000, 19},
		{math.MaxUint64, 20},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, DecimalDigits(test.v))
		})
	}
}

func TestDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   uint64
		res []byte
	}{
		{0, []byte{0}},
		{7, []byte{7}},
		{120, []byte{1, 2, 0}},
		{9223372036854775808, []byte{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8}},
		{math.MaxUint64, []byte{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 5}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Digits(test.v))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b, res int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-1, 2, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FloorDiv(test.a, test.b))
		})
	}
}

func TestAbs(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(-5))
	a.Equal(5, AbsInt(5))
	a.Equal(0, AbsInt(0))
	a.Equal(int64(42), AbsInt64(-42))
	a.Equal(uint64(1<<63), uint64(AbsInt64(math.MinInt64)))
}

func BenchmarkDigits(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(Digits(uint64(i)))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
