// Package assignment turns the values given on the command line into a
// binding for an expression's identifiers.
//
// Values can be given in any of these forms, where identifier i is the i:th
// identifier of the expression in order of appearance:
//
//	booleval truth 011 'a & !b | c'                # bit i of the binary number is identifier i
//	booleval truth 3 'a & !b | c'                  # bit i of the decimal number is identifier i
//	booleval truth true true false 'a & !b | c'    # argument i is identifier i
//
// All three bind a and b to true and c to false.
package assignment

import (
	"log/slog"
	"math/bits"
	"strconv"
	"strings"

	"github.com/eriklarko/booleval/src/boolexpr"
	"github.com/samber/lo"
)

// Parse binds the identifiers in order to the values in inputs. Identifiers
// without a value are false, but at least one value is needed when there are
// identifiers.
func Parse(inputs []string, order []rune) (boolexpr.Binding, error) {
	counter, err := Counter(inputs, len(order))
	if err != nil {
		return nil, err
	}
	return boolexpr.BindingFor(order, counter), nil
}

// Counter converts inputs into a truth table counter for k identifiers, where
// bit i holds the value of identifier i.
func Counter(inputs []string, k int) (uint64, error) {
	switch len(inputs) {
	case 0:
		if k > 0 {
			return 0, ErrMissingValues
		}
		return 0, nil
	case 1:
		return single(inputs[0], k)
	}

	if len(inputs) > k {
		return 0, NewTooManyValuesError(len(inputs), k)
	}

	var counter uint64
	for i, input := range inputs {
		value, ok := parseBool(input)
		if !ok {
			return 0, NewInvalidInputError(input, i)
		}
		if value {
			counter |= 1 << i
		}
	}
	return counter, nil
}

func single(input string, k int) (uint64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, NewInvalidInputError(input, 0)
	}

	if isBinary(input) {
		return binary(input, k)
	}

	if value, ok := parseBool(input); ok {
		return fits(lo.Ternary[uint64](value, 1, 0), k)
	}

	number, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return 0, NewInvalidInputError(input, 0)
	}
	return truncate(number, k), nil
}

// binary reads a string of 0s and 1s as a base 2 number, so the last
// character is identifier 0
func binary(input string, k int) (uint64, error) {
	counter, err := strconv.ParseUint(input, 2, 64)
	if err != nil {
		return 0, NewInvalidInputError(input, 0)
	}
	return fits(counter, k)
}

func fits(counter uint64, k int) (uint64, error) {
	if used := bits.Len64(counter); used > k {
		return 0, NewTooManyValuesError(used, k)
	}
	return counter, nil
}

func truncate(number uint64, k int) uint64 {
	if k >= 64 {
		return number
	}

	mask := uint64(1)<<k - 1
	if number&^mask != 0 {
		slog.Debug("ignoring bits beyond the number of identifiers", "value", number, "identifiers", k, "used", number&mask)
	}
	return number & mask
}

func isBinary(input string) bool {
	return strings.Trim(input, "01") == ""
}

func parseBool(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}
