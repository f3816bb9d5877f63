package calcs

import (
	"fmt"
	"strings"
)

type KeyKind uint8

const (
	KeyDigit KeyKind = iota + 1
	KeyDecimalPoint
	KeyOperator
	KeyUnary
	KeyInvertSign
	KeyEquals
	KeyBackspace
	KeyClear
)

// Key is one input event.
type Key struct {
	Kind  KeyKind
	Digit rune
	Op    OpKind
	Unary UnaryKind
}

func DigitKey(d rune) Key {
	return Key{Kind: KeyDigit, Digit: d}
}

func OperatorKey(op OpKind) Key {
	return Key{Kind: KeyOperator, Op: op}
}

func UnaryKey(kind UnaryKind) Key {
	return Key{Kind: KeyUnary, Unary: kind}
}

var namedKeys = map[string]Key{
	".":     {Kind: KeyDecimalPoint},
	",":     {Kind: KeyDecimalPoint},
	"+":     OperatorKey(OpAdd),
	"-":     OperatorKey(OpSub),
	"×":     OperatorKey(OpMul),
	"*":     OperatorKey(OpMul),
	"x":     OperatorKey(OpMul),
	"÷":     OperatorKey(OpDiv),
	"/":     OperatorKey(OpDiv),
	"%":     OperatorKey(OpPercent),
	"x²":    UnaryKey(UnarySquare),
	"sqr":   UnaryKey(UnarySquare),
	"1/x":   UnaryKey(UnaryReciprocal),
	"inv":   UnaryKey(UnaryReciprocal),
	"√":     UnaryKey(UnarySquareRoot),
	"sqrt":  UnaryKey(UnarySquareRoot),
	"±":     {Kind: KeyInvertSign},
	"neg":   {Kind: KeyInvertSign},
	"=":     {Kind: KeyEquals},
	"⌫":     {Kind: KeyBackspace},
	"bs":    {Kind: KeyBackspace},
	"C":     {Kind: KeyClear},
	"clear": {Kind: KeyClear},
}

func ParseKey(s string) (Key, error) {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return DigitKey(rune(s[0])), nil
	}
	if key, ok := namedKeys[s]; ok {
		return key, nil
	}
	return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// ParseKeys parses whitespace separated keys. A word of digits and decimal
// points, such as "12.5", is read as one key per character.
func ParseKeys(line string) (keys []Key, err error) {
	for _, word := range strings.Fields(line) {
		if key, err := ParseKey(word); err == nil {
			keys = append(keys, key)
			continue
		}
		if !isNumberWord(word) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, word)
		}
		for _, r := range word {
			if r == '.' {
				keys = append(keys, Key{Kind: KeyDecimalPoint})
			} else {
				keys = append(keys, DigitKey(r))
			}
		}
	}
	return
}

func isNumberWord(word string) bool {
	for _, r := range word {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return word != ""
}

func (k Key) String() string {
	switch k.Kind {
	case KeyDigit:
		return string(k.Digit)
	case KeyDecimalPoint:
		return "."
	case KeyOperator:
		return k.Op.String()
	case KeyUnary:
		return k.Unary.String()
	case KeyInvertSign:
		return "±"
	case KeyEquals:
		return "="
	case KeyBackspace:
		return "⌫"
	case KeyClear:
		return "C"
	}
	return fmt.Sprintf("Key(%d)", k.Kind)
}

// Press dispatches key to the matching input operation.
func (e *Engine) Press(key Key) (string, error) {
	switch key.Kind {
	case KeyDigit:
		return e.InputDigit(key.Digit), nil
	case KeyDecimalPoint:
		return e.InputDecimalPoint(), nil
	case KeyOperator:
		return e.InputOperator(key.Op), nil
	case KeyUnary:
		return e.InputUnary(key.Unary)
	case KeyInvertSign:
		return e.InvertSign()
	case KeyEquals:
		return e.Equals()
	case KeyBackspace:
		return e.Backspace(), nil
	case KeyClear:
		return e.Clear(), nil
	}
	return e.buffer, fmt.Errorf("%w: %v", ErrUnknownKey, key)
}
