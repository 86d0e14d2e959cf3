package boolexpr

import (
	"iter"

	"github.com/samber/lo"
)

// All walks the tree in pre-order, left before right.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.Children() {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

// Identifiers returns the distinct identifiers of the expression in the order
// they first appear when reading it from left to right. Position i in the
// returned slice is bit i of a truth table counter.
func (n *Node) Identifiers() []rune {
	var all []rune
	for node := range n.All() {
		if node.Operator == IDENTIFIER {
			all = append(all, node.Identifier)
		}
	}
	return lo.Uniq(all)
}

// CountNodes returns the number of nodes in the tree, groups included.
func (n *Node) CountNodes() int {
	count := 0
	for range n.All() {
		count++
	}
	return count
}
