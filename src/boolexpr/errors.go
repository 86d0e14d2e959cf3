package boolexpr

import (
	"fmt"
)

// ParseError is implemented by every error the tokenizer and parser return.
// Position is the rune offset the error refers to, or -1 if there is none.
type ParseError interface {
	error
	Position() int
}

// InvalidCharacterError is returned when the input contains a character that
// is not part of the expression grammar.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

// NewInvalidCharacterError creates a new InvalidCharacterError for the given character and position.
func NewInvalidCharacterError(char rune, pos int) error {
	return &InvalidCharacterError{Char: char, Pos: pos}
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character '%c' at position %d", e.Char, e.Pos+1)
}

func (e InvalidCharacterError) Position() int {
	return e.Pos
}

// EmptyExpressionError is returned when there is nothing but whitespace to parse.
type EmptyExpressionError struct{}

func NewEmptyExpressionError() error {
	return &EmptyExpressionError{}
}

func (e EmptyExpressionError) Error() string {
	return "empty expression"
}

func (e EmptyExpressionError) Position() int {
	return -1
}

// UnexpectedTokenError is returned when a token shows up where the grammar
// doesn't allow it.
type UnexpectedTokenError struct {
	Expected string
	Found    Token
}

func NewUnexpectedTokenError(expected string, found Token) error {
	return &UnexpectedTokenError{Expected: expected, Found: found}
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token at position %d: expected %s, found %s", e.Found.Pos+1, e.Expected, e.Found)
}

func (e UnexpectedTokenError) Position() int {
	return e.Found.Pos
}

// UnexpectedEndOfInputError is returned when the expression ends while an
// operand or closing parenthesis is still required.
type UnexpectedEndOfInputError struct {
	Expected string
	Pos      int
}

func NewUnexpectedEndOfInputError(expected string, pos int) error {
	return &UnexpectedEndOfInputError{Expected: expected, Pos: pos}
}

func (e UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input: expected %s", e.Expected)
}

func (e UnexpectedEndOfInputError) Position() int {
	return e.Pos
}

// UnmatchedParenthesisError is returned for a ')' without a matching '(' and
// for a '(' that is never closed. Pos points at the offending parenthesis.
type UnmatchedParenthesisError struct {
	Pos int
}

func NewUnmatchedParenthesisError(pos int) error {
	return &UnmatchedParenthesisError{Pos: pos}
}

func (e UnmatchedParenthesisError) Error() string {
	return fmt.Sprintf("unmatched parenthesis at position %d", e.Pos+1)
}

func (e UnmatchedParenthesisError) Position() int {
	return e.Pos
}

// UnboundIdentifierError is returned when an identifier has no value in the
// binding passed to Solve.
type UnboundIdentifierError struct {
	Identifier rune
}

// NewUnboundIdentifierError creates a new UnboundIdentifierError with the given identifier.
func NewUnboundIdentifierError(identifier rune) error {
	return &UnboundIdentifierError{Identifier: identifier}
}

func (e UnboundIdentifierError) Error() string {
	return fmt.Sprintf("unbound identifier: %c", e.Identifier)
}
