package boolexpr

import (
	"fmt"
)

// Binding maps identifiers to their values for one evaluation.
type Binding map[rune]bool

// Solve evaluates the tree with the identifiers bound to the values in
// binding. Both operands of binary operators are always evaluated.
func (n *Node) Solve(binding Binding) (bool, error) {
	switch n.Operator {
	case LITERAL:
		return n.Value, nil

	case IDENTIFIER:
		value, ok := binding[n.Identifier]
		if !ok {
			return false, NewUnboundIdentifierError(n.Identifier)
		}
		return value, nil

	case GROUP:
		return n.Left.Solve(binding)

	case NOT:
		result, err := n.Left.Solve(binding)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(binding)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(binding)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	case XOR:
		return leftResult != rightResult, nil
	}

	return false, fmt.Errorf("unknown operator: %v", n.Operator)
}
