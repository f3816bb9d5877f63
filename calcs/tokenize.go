package calcs

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Tokenize splits buffer into numbers and operators, scanning space separated
// runs from the end. The result reads left to right and alternates
// Number, Operator, ..., Number.
func Tokenize(buffer string) ([]Token, error) {
	var tokens []Token
	rest := buffer
	for {
		rest = strings.TrimRight(rest, " ")
		if rest == "" {
			break
		}
		start := strings.LastIndexByte(rest, ' ') + 1
		token, err := classify(rest[start:])
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		rest = rest[:start]
	}
	slices.Reverse(tokens)

	if len(tokens)%2 == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedExpression, buffer)
	}
	for i, token := range tokens {
		expected := TokenNumber
		if i%2 == 1 {
			expected = TokenOperator
		}
		if token.Kind != expected {
			return nil, fmt.Errorf("%w: %q at token %d", ErrMalformedExpression, buffer, i)
		}
	}

	return tokens, nil
}

func classify(text string) (Token, error) {
	if op, ok := opSymbols[text]; ok {
		return Token{
			Kind: TokenOperator,
			Text: text,
			Op:   op,
		}, nil
	}
	n, err := parseNumber(text)
	if err != nil {
		return Token{}, err
	}
	return Token{
		Kind:   TokenNumber,
		Text:   text,
		Number: n,
	}, nil
}

func parseNumber(text string) (float64, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, text)
	}
	return n, nil
}
