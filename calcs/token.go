package calcs

import (
	"fmt"
	"math"
)

// OpKind is a binary operator.
type OpKind uint8

const (
	OpAdd OpKind = iota + 1
	OpSub
	OpMul
	OpDiv
	OpPercent
)

var opSymbols = map[string]OpKind{
	"+": OpAdd,
	"-": OpSub,
	"×": OpMul,
	"÷": OpDiv,
	"%": OpPercent,
}

func (o OpKind) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	case OpPercent:
		return "%"
	}
	return ""
}

func (o OpKind) String() string {
	if s := o.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("OpKind(%d)", o)
}

func (o OpKind) Valid() bool {
	return o >= OpAdd && o <= OpPercent
}

// Priority reports whether o is reduced in the first pass.
func (o OpKind) Priority() bool {
	return o == OpMul || o == OpDiv || o == OpPercent
}

// Apply follows IEEE 754: division by zero gives an infinity or NaN.
func (o OpKind) Apply(a, b float64) float64 {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpPercent:
		return a * b / 100
	}
	panic(fmt.Errorf("bad operator: %v", o))
}

// UnaryKind is a transform applied to the trailing number.
type UnaryKind uint8

const (
	UnarySquare UnaryKind = iota + 1
	UnaryReciprocal
	UnarySquareRoot
)

func (u UnaryKind) Symbol() string {
	switch u {
	case UnarySquare:
		return "x²"
	case UnaryReciprocal:
		return "1/x"
	case UnarySquareRoot:
		return "√"
	}
	return ""
}

func (u UnaryKind) String() string {
	if s := u.Symbol(); s != "" {
		return s
	}
	return fmt.Sprintf("UnaryKind(%d)", u)
}

func (u UnaryKind) Valid() bool {
	return u >= UnarySquare && u <= UnarySquareRoot
}

// Apply does not special-case 1/0 or the root of a negative number.
func (u UnaryKind) Apply(x float64) float64 {
	switch u {
	case UnarySquare:
		return x * x
	case UnaryReciprocal:
		return 1 / x
	case UnarySquareRoot:
		return math.Sqrt(x)
	}
	panic(fmt.Errorf("bad unary operator: %v", u))
}

type TokenKind uint8

const (
	TokenNumber TokenKind = iota + 1
	TokenOperator
)

type Token struct {
	Kind   TokenKind
	Text   string
	Number float64
	Op     OpKind
}

func (t Token) String() string {
	return t.Text
}
