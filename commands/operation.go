package commands

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned when dividing by zero.
var ErrDivideByZero = errors.New("division by zero")

// Operation is an arithmetic operation supported by the calculator.
type Operation int

const (
	Add Operation = iota
	Subtract
	Multiply
	Divide
)

var operationTokens = map[string]Operation{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"/": Divide,
}

// ParseOperation converts an operator token into an Operation. Tokens must
// match exactly.
func ParseOperation(token string) (Operation, bool) {
	op, ok := operationTokens[token]
	return op, ok
}

// String returns the operator token.
func (o Operation) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

// Apply computes a <op> b using Go's signed integer semantics, division
// truncates toward zero.
func (o Operation) Apply(a, b int64) (int64, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("unknown operation %v", o)
	}
}
