package assignment

import (
	"errors"
	"fmt"
)

var ErrMissingValues = errors.New("missing identifier values")

// InvalidInputError is returned for a value that is neither a boolean, a
// binary string nor a decimal number. Index is the argument's position.
type InvalidInputError struct {
	Input string
	Index int
}

func NewInvalidInputError(input string, index int) error {
	return &InvalidInputError{Input: input, Index: index}
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input '%s' at argument %d: expected true, false, 1, 0, a binary string or a decimal number", e.Input, e.Index+1)
}

// TooManyValuesError is returned when more values are given than the
// expression has identifiers.
type TooManyValuesError struct {
	Got int
	Max int
}

func NewTooManyValuesError(got, limit int) error {
	return &TooManyValuesError{Got: got, Max: limit}
}

func (e TooManyValuesError) Error() string {
	return fmt.Sprintf("too many values: got %d, but the expression only has %d identifiers", e.Got, e.Max)
}
