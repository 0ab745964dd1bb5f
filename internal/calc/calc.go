// Package calc maps operation names to apdecimal functions.
package calc

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/avdva/apdecimal"
)

// ErrUnknownOp is returned for an operation, that is not in the table.
var ErrUnknownOp = errors.New("unknown operation")

// Op describes an operation.
type Op struct {
	Name string
	// Arity is the number of operands.
	Arity int
	Help  string
	Fn    func(args []apdecimal.Decimal, prec int) (apdecimal.Decimal, error)
}

func unary(fn func(x apdecimal.Decimal, prec int) (apdecimal.Decimal, error)) func([]apdecimal.Decimal, int) (apdecimal.Decimal, error) {
	return func(args []apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return fn(args[0], prec)
	}
}

func binary(fn func(x, y apdecimal.Decimal, prec int) (apdecimal.Decimal, error)) func([]apdecimal.Decimal, int) (apdecimal.Decimal, error) {
	return func(args []apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return fn(args[0], args[1], prec)
	}
}

// divide converts a division by zero panic to an error.
func divide(fn func(x, y apdecimal.Decimal, prec int) apdecimal.Decimal) func([]apdecimal.Decimal, int) (apdecimal.Decimal, error) {
	return func(args []apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		if args[1].IsZero() {
			return apdecimal.Zero, errors.Wrapf(apdecimal.ErrDivisionByZero, "%s / 0", args[0])
		}
		return fn(args[0], args[1], prec), nil
	}
}

var ops = map[string]Op{}

func register(op Op) {
	ops[op.Name] = op
}

func init() {
	register(Op{Name: "add", Arity: 2, Help: "x + y", Fn: binary(func(x, y apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Add(y, prec), nil
	})})
	register(Op{Name: "sub", Arity: 2, Help: "x - y", Fn: binary(func(x, y apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Sub(y, prec), nil
	})})
	register(Op{Name: "mul", Arity: 2, Help: "x * y", Fn: binary(func(x, y apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Mul(y, prec), nil
	})})
	register(Op{Name: "div", Arity: 2, Help: "x / y, rounded half-up", Fn: divide(apdecimal.Decimal.Div)})
	register(Op{Name: "idiv", Arity: 2, Help: "integer part of x / y", Fn: divide(func(x, y apdecimal.Decimal, _ int) apdecimal.Decimal {
		return x.IDiv(y)
	})})
	register(Op{Name: "mod", Arity: 2, Help: "x - trunc(x/y)*y", Fn: divide(apdecimal.Decimal.Mod)})
	register(Op{Name: "cmp", Arity: 2, Help: "-1, 0, or 1", Fn: binary(func(x, y apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return apdecimal.FromInt64(int64(x.CmpPrec(y, prec))), nil
	})})
	register(Op{Name: "pow", Arity: 2, Help: "x ^ y for an integer y", Fn: binary(apdecimal.Decimal.Pow)})
	register(Op{Name: "root", Arity: 2, Help: "y-th root of x", Fn: binary(apdecimal.Decimal.RootDec)})
	register(Op{Name: "logb", Arity: 2, Help: "logarithm of x to base y", Fn: binary(apdecimal.Decimal.LogBase)})

	register(Op{Name: "round", Arity: 1, Help: "x rounded half-up", Fn: unary(func(x apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Round(prec), nil
	})})
	register(Op{Name: "trunc", Arity: 1, Help: "x without the digits after precision", Fn: unary(func(x apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Trunc(prec), nil
	})})
	register(Op{Name: "floor", Arity: 1, Help: "greatest integer <= x", Fn: unary(func(x apdecimal.Decimal, _ int) (apdecimal.Decimal, error) {
		return x.Floor(), nil
	})})
	register(Op{Name: "ceil", Arity: 1, Help: "least integer >= x", Fn: unary(func(x apdecimal.Decimal, _ int) (apdecimal.Decimal, error) {
		return x.Ceil(), nil
	})})
	register(Op{Name: "frac", Arity: 1, Help: "fractional part of x", Fn: unary(func(x apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return x.Frac(prec), nil
	})})
	register(Op{Name: "neg", Arity: 1, Help: "-x", Fn: unary(func(x apdecimal.Decimal, _ int) (apdecimal.Decimal, error) {
		return x.Neg(), nil
	})})
	register(Op{Name: "abs", Arity: 1, Help: "|x|", Fn: unary(func(x apdecimal.Decimal, _ int) (apdecimal.Decimal, error) {
		return x.Abs(), nil
	})})
	register(Op{Name: "fact", Arity: 1, Help: "x!", Fn: unary(func(x apdecimal.Decimal, _ int) (apdecimal.Decimal, error) {
		return x.Factorial()
	})})
	register(Op{Name: "sqrt", Arity: 1, Help: "square root of x", Fn: unary(apdecimal.Decimal.Sqrt)})
	register(Op{Name: "exp", Arity: 1, Help: "e ^ x", Fn: unary(apdecimal.Decimal.Exp)})
	register(Op{Name: "ln", Arity: 1, Help: "natural logarithm of x", Fn: unary(apdecimal.Decimal.Log)})
	register(Op{Name: "log10", Arity: 1, Help: "decimal logarithm of x", Fn: unary(apdecimal.Decimal.Log10)})
	register(Op{Name: "sin", Arity: 1, Help: "sine of x", Fn: unary(apdecimal.Decimal.Sin)})
	register(Op{Name: "cos", Arity: 1, Help: "cosine of x", Fn: unary(apdecimal.Decimal.Cos)})
	register(Op{Name: "tan", Arity: 1, Help: "tangent of x", Fn: unary(apdecimal.Decimal.Tan)})
	register(Op{Name: "cot", Arity: 1, Help: "cotangent of x", Fn: unary(apdecimal.Decimal.Cot)})

	register(Op{Name: "pi", Arity: 0, Help: "π", Fn: func(_ []apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return apdecimal.Pi(prec)
	}})
	register(Op{Name: "e", Arity: 0, Help: "Euler's number", Fn: func(_ []apdecimal.Decimal, prec int) (apdecimal.Decimal, error) {
		return apdecimal.E(prec)
	}})
}

// Lookup returns the operation with given name.
func Lookup(name string) (Op, error) {
	op, found := ops[name]
	if !found {
		return Op{}, errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	return op, nil
}

// Names returns sorted names of all the operations.
func Names() []string {
	result := make([]string, 0, len(ops))
	for name := range ops {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Eval parses the operands, and applies the operation to them.
func Eval(name string, args []string, prec int) (apdecimal.Decimal, error) {
	op, err := Lookup(name)
	if err != nil {
		return apdecimal.Zero, err
	}
	if len(args) != op.Arity {
		return apdecimal.Zero, errors.Errorf("%s: expected %d operands, got %d", name, op.Arity, len(args))
	}
	operands := make([]apdecimal.Decimal, len(args))
	for i, arg := range args {
		if operands[i], err = apdecimal.Parse(arg); err != nil {
			return apdecimal.Zero, errors.WithMessagef(err, "operand %d", i+1)
		}
	}
	if prec < 0 && prec != apdecimal.FullPrecision && prec != apdecimal.FixedPrecision {
		return apdecimal.Zero, errors.Wrapf(apdecimal.ErrInvalidPrecision, "%d", prec)
	}
	result, err := op.Fn(operands, prec)
	if err != nil {
		return apdecimal.Zero, errors.WithMessage(err, name)
	}
	return result, nil
}
