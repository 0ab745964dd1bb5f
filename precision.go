package apdecimal

import (
	"github.com/pkg/errors"
)

// resolvePrec resolves the precision of an operation, that can work with an unbounded precision.
// -1 is returned for FullPrecision. Invalid precisions cause a panic.
func resolvePrec(prec int) int {
	switch {
	case prec >= 0:
		return prec
	case prec == FullPrecision:
		return -1
	case prec == FixedPrecision:
		return defaultPrec()
	}
	panic(errors.Wrapf(ErrInvalidPrecision, "%d", prec))
}

// resolveBoundedPrec resolves the precision of an operation, that needs a finite precision.
// Both FullPrecision and FixedPrecision are replaced with Precision.
func resolveBoundedPrec(prec int) (int, error) {
	switch {
	case prec >= 0:
		return prec, nil
	case prec == FullPrecision, prec == FixedPrecision:
		return defaultPrec(), nil
	}
	return 0, errors.Wrapf(ErrInvalidPrecision, "%d", prec)
}

func mustResolveBoundedPrec(prec int) int {
	p, err := resolveBoundedPrec(prec)
	if err != nil {
		panic(err)
	}
	return p
}

func defaultPrec() int {
	if Precision < 0 {
		return 0
	}
	return Precision
}
