package apdecimal

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrSyntax is returned for a text, that is not a decimal number.
	ErrSyntax = errors.New("invalid syntax")
	// ErrDivisionByZero is the panic value of a division by zero.
	// Functions, that return an error, wrap it instead of panicking.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain is returned, if an argument is outside of the domain of a function.
	ErrDomain = errors.New("argument out of domain")
	// ErrNotImplemented is returned for the arguments, for which a result exists,
	// but the algorithm does not compute it.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoConvergence is returned, if a loop has not converged within MaxIterations.
	ErrNoConvergence = errors.New("failed to converge")
	// ErrInvalidPrecision is returned for a negative precision other than FullPrecision and FixedPrecision.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrRange is returned, if a value does not fit a target type.
	ErrRange = errors.New("value out of range")
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe *posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe *posError) Unwrap() error {
	return ErrSyntax
}
