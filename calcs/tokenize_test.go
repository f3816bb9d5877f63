package calcs

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	for _, c := range []struct {
		buffer   string
		expected string
	}{
		{"0", "[0]"},
		{"12 + 3.5", "[12 + 3.5]"},
		{"2 + 3 × 4", "[2 + 3 × 4]"},
		{"-5 × -3 ÷ 2 % 10", "[-5 × -3 ÷ 2 % 10]"},
		{"NaN + +Inf - -Inf", "[NaN + +Inf - -Inf]"},
		{"9.9999998e+15 - 1", "[9.9999998e+15 - 1]"},
		{"12.", "[12.]"},
	} {
		tokens, err := Tokenize(c.buffer)
		if err != nil {
			t.Fatalf("%q: %v", c.buffer, err)
		}
		if str := fmt.Sprintf("%v", tokens); str != c.expected {
			t.Fatalf("%q: got %s", c.buffer, str)
		}
		for i, token := range tokens {
			if (i%2 == 0) != (token.Kind == TokenNumber) {
				t.Fatalf("%q: bad token %d %+v", c.buffer, i, token)
			}
		}
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := Tokenize("-1.5 ÷ +Inf % NaN")
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Number != -1.5 {
		t.Fatalf("got %v", tokens[0].Number)
	}
	if tokens[1].Op != OpDiv || tokens[3].Op != OpPercent {
		t.Fatalf("got %v %v", tokens[1].Op, tokens[3].Op)
	}
	if !math.IsInf(tokens[2].Number, 1) {
		t.Fatalf("got %v", tokens[2].Number)
	}
	if !math.IsNaN(tokens[4].Number) {
		t.Fatalf("got %v", tokens[4].Number)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, c := range []struct {
		buffer   string
		expected error
	}{
		{"", ErrMalformedExpression},
		{"5 + ", ErrMalformedExpression},
		{"+ 5", ErrMalformedExpression},
		{"5 5 5", ErrMalformedExpression},
		{"5 + + 5", ErrMalformedExpression},
		{"3 + -", ErrMalformedExpression},
		{"5 + abc", ErrParse},
		{"2 + 3 = 5", ErrParse},
		{".", ErrParse},
	} {
		_, err := Tokenize(c.buffer)
		if !errors.Is(err, c.expected) {
			t.Fatalf("%q: got %v", c.buffer, err)
		}
	}
}
