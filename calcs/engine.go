package calcs

import (
	"strings"
	"unicode/utf8"
)

// MaxBufferLength is the default limit, in runes, of the editable buffer.
const MaxBufferLength = 21

// Engine is the expression buffer of one calculator session. Rejected inputs
// are silent no-ops. An Engine must not be used concurrently.
type Engine struct {
	buffer      string
	locked      bool
	resultShown bool

	maxLength int
	precision int
}

// State is a snapshot of an Engine.
type State struct {
	Buffer string
	// Locked means the buffer ends in an operator or a bare minus sign.
	Locked bool
	// ResultShown means the buffer ends in " = result".
	ResultShown bool
}

type Option func(*Engine)

func WithMaxLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxLength = n
		}
	}
}

func WithPrecision(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.precision = n
		}
	}
}

func New(options ...Option) *Engine {
	e := &Engine{
		maxLength: MaxBufferLength,
		precision: DefaultPrecision,
	}
	for _, option := range options {
		option(e)
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.buffer = "0"
	e.locked = true
	e.resultShown = false
}

func (e *Engine) Display() string {
	return e.buffer
}

func (e *Engine) State() State {
	return State{
		Buffer:      e.buffer,
		Locked:      e.locked,
		ResultShown: e.resultShown,
	}
}

func (e *Engine) MaxLength() int {
	return e.maxLength
}

func (e *Engine) fits(extra int) bool {
	return utf8.RuneCountInString(e.buffer)+extra <= e.maxLength
}

func (e *Engine) endsWithOperator() bool {
	return strings.HasSuffix(e.buffer, " ")
}

// literal splits off the trailing number. Only valid when the buffer does not
// end with an operator.
func (e *Engine) literal() (head, lit string) {
	i := strings.LastIndexByte(e.buffer, ' ') + 1
	return e.buffer[:i], e.buffer[i:]
}

// plainLiteral reports whether lit is typed input: an optional minus, digits
// and at most one decimal point. Formatted results such as NaN, +Inf or
// 1e+21 are not plain.
func plainLiteral(lit string) bool {
	lit = strings.TrimPrefix(lit, "-")
	if lit == "" {
		return false
	}
	dots := 0
	for _, r := range lit {
		switch {
		case r == '.':
			dots++
		case r < '0' || r > '9':
			return false
		}
	}
	return dots <= 1
}

func (e *Engine) updateLocked() {
	if e.endsWithOperator() {
		e.locked = true
		return
	}
	_, lit := e.literal()
	e.locked = lit == "-"
}

// collapse keeps only the shown result, which becomes the operand to edit.
func (e *Engine) collapse() {
	if !e.resultShown {
		return
	}
	_, e.buffer = e.literal()
	e.resultShown = false
	e.locked = false
}

func (e *Engine) InputDigit(d rune) string {
	if d < '0' || d > '9' {
		return e.buffer
	}
	if e.resultShown {
		e.buffer = string(d)
		e.locked = false
		e.resultShown = false
		return e.buffer
	}

	if e.endsWithOperator() {
		if !e.fits(1) {
			return e.buffer
		}
		e.buffer += string(d)
		e.locked = false
		return e.buffer
	}

	head, lit := e.literal()
	switch {
	case lit == "0" || lit == "-0":
		e.buffer = head + strings.TrimSuffix(lit, "0") + string(d)
	case lit != "-" && !plainLiteral(lit):
		e.buffer = head + string(d)
	default:
		if !e.fits(1) {
			return e.buffer
		}
		e.buffer += string(d)
	}
	e.locked = false
	return e.buffer
}

func (e *Engine) InputDecimalPoint() string {
	e.collapse()
	if e.endsWithOperator() {
		return e.buffer
	}
	_, lit := e.literal()
	if !plainLiteral(lit) || strings.Contains(lit, ".") || !e.fits(1) {
		return e.buffer
	}
	e.buffer += "."
	e.updateLocked()
	return e.buffer
}

func (e *Engine) InputOperator(op OpKind) string {
	if !op.Valid() {
		return e.buffer
	}
	e.collapse()
	if e.locked {
		return e.buffer
	}
	padded := " " + op.Symbol() + " "
	if !e.fits(utf8.RuneCountInString(padded)) {
		return e.buffer
	}
	e.buffer += padded
	e.locked = true
	return e.buffer
}

// InputUnary replaces the trailing number with kind applied to it.
func (e *Engine) InputUnary(kind UnaryKind) (string, error) {
	if !kind.Valid() {
		return e.buffer, nil
	}
	e.collapse()
	if e.endsWithOperator() {
		return e.buffer, nil
	}
	head, lit := e.literal()
	if lit == "-" {
		return e.buffer, nil
	}
	n, err := parseNumber(lit)
	if err != nil {
		return e.buffer, wrap(err)
	}
	e.buffer = head + FormatNumber(kind.Apply(n), e.precision)
	return e.buffer, nil
}

// InvertSign negates the trailing number, or starts a negative operand after
// a trailing operator.
func (e *Engine) InvertSign() (string, error) {
	e.collapse()
	if e.buffer == "0" {
		return e.buffer, nil
	}

	if e.endsWithOperator() {
		if e.fits(1) {
			e.buffer += "-"
			e.locked = true
		}
		return e.buffer, nil
	}

	head, lit := e.literal()
	switch {
	case lit == "-":
		e.buffer = head
		if e.buffer == "" {
			e.reset()
			return e.buffer, nil
		}
		e.updateLocked()
	case plainLiteral(lit) && strings.HasPrefix(lit, "-"):
		e.buffer = head + lit[1:]
	case plainLiteral(lit):
		if e.fits(1) {
			e.buffer = head + "-" + lit
		}
	default:
		n, err := parseNumber(lit)
		if err != nil {
			return e.buffer, wrap(err)
		}
		e.buffer = head + FormatNumber(-n, e.precision)
	}
	return e.buffer, nil
}

// Equals appends " = result". It does nothing while an operand is expected or
// a result is already shown.
func (e *Engine) Equals() (string, error) {
	if e.locked || e.resultShown {
		return e.buffer, nil
	}
	result, err := Calculate(e.buffer)
	if err != nil {
		return e.buffer, wrap(err)
	}
	e.buffer += " = " + FormatNumber(result, e.precision)
	e.resultShown = true
	e.locked = false
	return e.buffer, nil
}

// Backspace removes a trailing operator with its padding, or the last
// character of the trailing number. Formatted results are removed whole.
func (e *Engine) Backspace() string {
	e.collapse()
	if e.buffer == "0" {
		return e.buffer
	}

	if e.endsWithOperator() {
		s := strings.TrimSuffix(e.buffer, " ")
		_, size := utf8.DecodeLastRuneInString(s)
		e.buffer = strings.TrimSuffix(s[:len(s)-size], " ")
	} else {
		head, lit := e.literal()
		if lit == "-" || plainLiteral(lit) {
			_, size := utf8.DecodeLastRuneInString(lit)
			e.buffer = head + lit[:len(lit)-size]
		} else {
			e.buffer = head
		}
	}

	if e.buffer == "" {
		e.reset()
		return e.buffer
	}
	e.updateLocked()
	return e.buffer
}

func (e *Engine) Clear() string {
	e.reset()
	return e.buffer
}

// Result returns the shown result, if any.
func (e *Engine) Result() (float64, bool) {
	if !e.resultShown {
		return 0, false
	}
	_, lit := e.literal()
	n, err := parseNumber(lit)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Expression returns the buffer without the " = result" suffix.
func (e *Engine) Expression() string {
	if !e.resultShown {
		return e.buffer
	}
	expr, _, _ := strings.Cut(e.buffer, " = ")
	return expr
}
