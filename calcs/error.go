package calcs

import (
	"errors"

	"github.com/reusee/e5"
)

var (
	// ErrMalformedExpression means the buffer does not alternate numbers and operators.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrParse means a numeric literal in the buffer could not be parsed.
	ErrParse = errors.New("parse error")
	ErrUnknownKey = errors.New("unknown key")
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)
