package calcs

import (
	"fmt"
	"slices"
)

// Evaluate reduces tokens in two passes: priority operators (%, ×, ÷) left to
// right, then the additive ones left to right.
func Evaluate(tokens []Token) (float64, error) {
	if len(tokens)%2 == 0 {
		return 0, fmt.Errorf("%w: %d tokens", ErrMalformedExpression, len(tokens))
	}

	numbers := make([]float64, 0, len(tokens)/2+1)
	ops := make([]OpKind, 0, len(tokens)/2)
	for i, token := range tokens {
		switch {
		case i%2 == 0 && token.Kind == TokenNumber:
			numbers = append(numbers, token.Number)
		case i%2 == 1 && token.Kind == TokenOperator && token.Op.Valid():
			ops = append(ops, token.Op)
		default:
			return 0, fmt.Errorf("%w: unexpected %q at token %d", ErrMalformedExpression, token.Text, i)
		}
	}

	// the i-th operator sits between numbers[i] and numbers[i+1]
	for i := 0; i < len(ops); {
		if !ops[i].Priority() {
			i++
			continue
		}
		numbers[i] = ops[i].Apply(numbers[i], numbers[i+1])
		numbers = slices.Delete(numbers, i+1, i+2)
		ops = slices.Delete(ops, i, i+1)
	}

	for _, op := range ops {
		numbers[1] = op.Apply(numbers[0], numbers[1])
		numbers = numbers[1:]
	}

	return numbers[0], nil
}

// Calculate tokenizes and evaluates expr.
func Calculate(expr string) (float64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens)
}
