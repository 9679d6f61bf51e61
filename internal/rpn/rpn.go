// Package rpn evaluates reverse-Polish-notation expressions over bignum.Int.
//
// An expression is a whitespace-separated list of tokens. Decimal literals are
// pushed onto a stack; operators pop two operands (left pushed first) and push
// their result. Comparison operators push 1 for true and 0 for false.
package rpn

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	bignum "github.com/shabbyrobe/go-bignum"
)

var (
	ErrStackUnderflow = errors.New("rpn: not enough operands")
	ErrEmpty          = errors.New("rpn: empty expression")
	ErrLeftover       = errors.New("rpn: too many operands")
)

type OpKind int

const (
	Push OpKind = iota
	Add
	Sub
	Mul
	Quo
	Rem
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
	Equal
	NotEqual
	Pow
)

var operators = map[string]OpKind{
	"+":   Add,
	"-":   Sub,
	"*":   Mul,
	"/":   Quo,
	"%%":  Rem,
	"<":   Less,
	"<=":  LessOrEqual,
	">":   Greater,
	">=":  GreaterOrEqual,
	"==":  Equal,
	"!=":  NotEqual,
	"pow": Pow,
}

func (k OpKind) String() string {
	if k == Push {
		return "push"
	}
	for tok, op := range operators {
		if op == k {
			return tok
		}
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

type Op struct {
	Kind OpKind
	Arg  bignum.Int // Only set for Push
}

// ParseOperator reports whether tok is an operator, and which one.
func ParseOperator(tok string) (OpKind, bool) {
	op, ok := operators[tok]
	return op, ok
}

// Parse splits expr into operations. Any token that is not an operator must
// be a valid decimal literal.
func Parse(expr string) ([]Op, error) {
	fields := strings.Fields(expr)
	ops := make([]Op, 0, len(fields))
	for _, tok := range fields {
		if kind, ok := ParseOperator(tok); ok {
			ops = append(ops, Op{Kind: kind})
			continue
		}
		v, err := bignum.IntFromString(tok)
		if err != nil {
			return nil, err
		}
		ops = append(ops, Op{Kind: Push, Arg: v})
	}
	return ops, nil
}

// Evaluate runs ops against an empty stack and returns the single value left
// on it.
func Evaluate(ops []Op) (bignum.Int, error) {
	var stack []bignum.Int
	for _, op := range ops {
		if op.Kind == Push {
			stack = append(stack, op.Arg)
			continue
		}
		if len(stack) < 2 {
			return bignum.Int{}, fmt.Errorf("%w for %q", ErrStackUnderflow, op.Kind)
		}
		lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		result, err := Apply(op.Kind, lhs, rhs)
		if err != nil {
			return bignum.Int{}, err
		}
		stack = append(stack, result)
	}

	switch len(stack) {
	case 0:
		return bignum.Int{}, ErrEmpty
	case 1:
		return stack[0], nil
	default:
		return bignum.Int{}, fmt.Errorf("%w: %d left on stack", ErrLeftover, len(stack))
	}
}

// Eval parses and evaluates expr.
func Eval(expr string) (bignum.Int, error) {
	ops, err := Parse(expr)
	if err != nil {
		return bignum.Int{}, err
	}
	return Evaluate(ops)
}

// Apply performs a single binary operation.
func Apply(kind OpKind, lhs, rhs bignum.Int) (bignum.Int, error) {
	switch kind {
	case Add:
		return lhs.Add(rhs), nil
	case Sub:
		return lhs.Sub(rhs), nil
	case Mul:
		return lhs.Mul(rhs), nil
	case Quo:
		return lhs.Quo(rhs)
	case Rem:
		return lhs.Rem(rhs)
	case Less:
		return fromBool(lhs.LessThan(rhs)), nil
	case LessOrEqual:
		return fromBool(lhs.LessOrEqualTo(rhs)), nil
	case Greater:
		return fromBool(lhs.GreaterThan(rhs)), nil
	case GreaterOrEqual:
		return fromBool(lhs.GreaterOrEqualTo(rhs)), nil
	case Equal:
		return fromBool(lhs.Equal(rhs)), nil
	case NotEqual:
		return fromBool(lhs.NotEqual(rhs)), nil
	case Pow:
		// The exponent goes through its decimal rendering into a native int.
		n, err := strconv.ParseInt(rhs.String(), 10, 64)
		if err != nil {
			return bignum.Int{}, fmt.Errorf("rpn: pow exponent %s: %w", rhs, bignum.ErrRange)
		}
		return lhs.Pow(n)
	default:
		return bignum.Int{}, fmt.Errorf("rpn: %v is not a binary operation", kind)
	}
}

func fromBool(b bool) bignum.Int {
	if b {
		return bignum.IntFromWord(1)
	}
	return bignum.IntFromWord(0)
}
