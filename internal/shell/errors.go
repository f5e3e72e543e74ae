package shell

import (
	"github.com/cockroachdb/errors"

	"mvdan.cc/sh/v3/syntax"
)

// Parse failure classifications. These are upstream failures: the input never
// becomes a tree and batch callers skip it after logging the class.
var (
	// ErrEmptyCommand is returned for empty or whitespace-only input.
	ErrEmptyCommand = errors.New("empty command")

	// ErrMismatchedDelimiter is returned when the parser hits end of input
	// inside an unclosed quote, substitution, or similar paired construct.
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")

	// ErrParse is returned for general grammar errors.
	ErrParse = errors.New("shell grammar error")

	// ErrUnimplementedConstruct is returned for syntax the parser understands
	// but this pipeline does not model.
	ErrUnimplementedConstruct = errors.New("unimplemented shell construct")

	// ErrMalformedShape is returned when the parse produces a tree shape the
	// converter cannot map onto the generic contract.
	ErrMalformedShape = errors.New("malformed syntax tree shape")
)

// classifyParseError maps an mvdan parser error onto the contract's failure
// classes.
func classifyParseError(err error) error {
	var langErr syntax.LangError
	if errors.As(err, &langErr) {
		return errors.Wrap(ErrUnimplementedConstruct, langErr.Error())
	}

	var perrPtr *syntax.ParseError
	if errors.As(err, &perrPtr) {
		if perrPtr.Incomplete {
			return errors.Wrap(ErrMismatchedDelimiter, perrPtr.Text)
		}

		return errors.Wrap(ErrParse, perrPtr.Text)
	}

	var perr syntax.ParseError
	if errors.As(err, &perr) {
		if perr.Incomplete {
			return errors.Wrap(ErrMismatchedDelimiter, perr.Text)
		}

		return errors.Wrap(ErrParse, perr.Text)
	}

	return errors.Wrap(ErrParse, err.Error())
}
