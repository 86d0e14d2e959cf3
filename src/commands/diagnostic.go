package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eriklarko/booleval/src/boolexpr"
)

// ExpressionError ties an error to the expression it was found in so the
// offending position can be pointed out.
type ExpressionError struct {
	Expression string
	Err        error
}

func NewExpressionError(expression string, err error) error {
	return &ExpressionError{Expression: expression, Err: err}
}

func (e ExpressionError) Error() string {
	return e.Err.Error()
}

func (e ExpressionError) Unwrap() error {
	return e.Err
}

// PrintError writes err to w. Errors with a position in an expression get the
// expression and a caret under the position:
//
//	error: failed to parse expression 'a && b': unexpected token at position 4: expected operand, found '&'
//	  a && b
//	     ^
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	var expressionErr *ExpressionError
	if !errors.As(err, &expressionErr) {
		return
	}

	var parseErr boolexpr.ParseError
	if !errors.As(err, &parseErr) || parseErr.Position() < 0 {
		return
	}

	fmt.Fprintf(w, "  %s\n", expressionErr.Expression)
	fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", parseErr.Position()))
}
