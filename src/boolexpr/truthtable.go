package boolexpr

import (
	"fmt"
	"iter"

	"github.com/samber/lo"
)

// MaxIdentifiers is the number of distinct identifiers an expression can
// have, one per lowercase letter.
const MaxIdentifiers = 26

type IdentifierValue struct {
	Identifier rune
	Value      bool
}

// TruthRow is one line of a truth table. Assignment follows the order of
// Node.Identifiers and Counter is the number the assignment was derived from.
type TruthRow struct {
	Counter    uint64
	Assignment []IdentifierValue
	Result     bool
}

// Binding converts the row's assignment back into a Binding.
func (r TruthRow) Binding() Binding {
	binding := make(Binding, len(r.Assignment))
	for _, iv := range r.Assignment {
		binding[iv.Identifier] = iv.Value
	}
	return binding
}

// BindingFor gives identifier order[i] the value of bit i of counter.
func BindingFor(order []rune, counter uint64) Binding {
	binding := make(Binding, len(order))
	for i, identifier := range order {
		binding[identifier] = counter>>i&1 == 1
	}
	return binding
}

// RowCount returns the number of rows in the truth table, 2^k for k
// identifiers.
func (n *Node) RowCount() uint64 {
	return uint64(1) << len(n.Identifiers())
}

// TruthTable lazily enumerates every assignment of the expression's
// identifiers. Counter values run from 0 to 2^k-1 and identifier i takes bit i
// of the counter, so the first identifier changes fastest. The sequence can be
// ranged over any number of times and always yields the same rows.
//
//	for row := range tree.TruthTable() {
//		fmt.Println(row.Assignment, row.Result)
//	}
func (n *Node) TruthTable() iter.Seq[TruthRow] {
	order := n.Identifiers()
	rows := uint64(1) << len(order)

	return func(yield func(TruthRow) bool) {
		for counter := uint64(0); counter < rows; counter++ {
			if !yield(n.row(order, counter)) {
				return
			}
		}
	}
}

// RowFor evaluates the single row with the given counter value.
func (n *Node) RowFor(counter uint64) (TruthRow, error) {
	order := n.Identifiers()
	if rows := uint64(1) << len(order); counter >= rows {
		return TruthRow{}, fmt.Errorf("row %d is out of range, the expression has %d rows", counter, rows)
	}
	return n.row(order, counter), nil
}

func (n *Node) row(order []rune, counter uint64) TruthRow {
	binding := BindingFor(order, counter)

	result, err := n.Solve(binding)
	if err != nil {
		// the binding is built from the tree's own identifiers
		panic(fmt.Sprintf("failed to solve row %d of %s: %v", counter, n, err))
	}

	return TruthRow{
		Counter: counter,
		Assignment: lo.Map(order, func(identifier rune, _ int) IdentifierValue {
			return IdentifierValue{Identifier: identifier, Value: binding[identifier]}
		}),
		Result: result,
	}
}

// FilterRows keeps the rows whose result is want, in their original order.
func FilterRows(rows iter.Seq[TruthRow], want bool) iter.Seq[TruthRow] {
	return func(yield func(TruthRow) bool) {
		for row := range rows {
			if row.Result != want {
				continue
			}
			if !yield(row) {
				return
			}
		}
	}
}
