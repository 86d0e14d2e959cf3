package boolexpr

import (
	"fmt"
	"strings"
	"unicode"
)

type Operator int

const (
	LITERAL Operator = iota
	IDENTIFIER
	NOT
	AND
	OR
	XOR
	// GROUP marks an explicit pair of parentheses. It doesn't change the
	// value of its child but is kept so it can be drawn.
	GROUP
)

var operatorNames = map[Operator]string{
	LITERAL:    "LIT",
	IDENTIFIER: "ID",
	NOT:        "NOT",
	AND:        "AND",
	OR:         "OR",
	XOR:        "XOR",
	GROUP:      "GRP",
}

var operatorSymbols = map[Operator]string{
	NOT:   "!",
	AND:   "&",
	OR:    "|",
	XOR:   "^",
	GROUP: "()",
}

// Name returns the upper case name of the operator, e.g. "AND" or "GRP".
func (o Operator) Name() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}
	return fmt.Sprintf("OP(%d)", int(o))
}

// Symbol returns the operator as it is written in an expression. Leaves have
// no symbol.
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

func (o Operator) String() string {
	return o.Name()
}

// Node is one node of the expression tree. Unary operators (NOT and GROUP)
// keep their operand in Left. Value is only meaningful for LITERAL nodes and
// Identifier only for IDENTIFIER nodes.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	Value      bool
	Identifier rune
}

// Parse creates the expression tree for the given input string
// Example usage:
//
//	tree, err := boolexpr.Parse("a & (b | !c)")
//	if err != nil {
//		log.Fatalf("failed to parse expression: %v", err)
//	}
//	fmt.Println(tree.Identifiers()) // Output: [97 98 99]
func Parse(expression string) (*Node, error) {
	return ParseWithOptions(expression, DefaultTokenizeOptions)
}

func ParseWithOptions(expression string, opts TokenizeOptions) (*Node, error) {
	tokens, err := TokensWithOptions(expression, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}

	end := len([]rune(strings.TrimRightFunc(expression, unicode.IsSpace)))
	root, err := newParser(tokens, end).parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression '%s': %w", expression, err)
	}
	return root, nil
}

// ParseTokens builds the expression tree from an already tokenized expression.
func ParseTokens(tokens []Token) (*Node, error) {
	end := 0
	if len(tokens) > 0 {
		end = tokens[len(tokens)-1].End()
	}
	return newParser(tokens, end).parse()
}

// Literal, Identifier, Not, And, Or, Xor and Group build nodes by hand,
// mostly useful in tests.
func Literal(value bool) *Node {
	return &Node{Operator: LITERAL, Value: value}
}

func Identifier(identifier rune) *Node {
	return &Node{Operator: IDENTIFIER, Identifier: identifier}
}

func Not(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

func And(left, right *Node) *Node {
	return &Node{Operator: AND, Left: left, Right: right}
}

func Or(left, right *Node) *Node {
	return &Node{Operator: OR, Left: left, Right: right}
}

func Xor(left, right *Node) *Node {
	return &Node{Operator: XOR, Left: left, Right: right}
}

func Group(inner *Node) *Node {
	return &Node{Operator: GROUP, Left: inner}
}

func (n *Node) IsLeaf() bool {
	return n.Operator == LITERAL || n.Operator == IDENTIFIER
}

// Children returns the operands of the node from left to right.
func (n *Node) Children() []*Node {
	switch n.Operator {
	case NOT, GROUP:
		return []*Node{n.Left}
	case AND, OR, XOR:
		return []*Node{n.Left, n.Right}
	default:
		return nil
	}
}

// Equal reports whether both trees have the same shape, operators and leaves.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Operator != other.Operator {
		return false
	}

	switch n.Operator {
	case LITERAL:
		return n.Value == other.Value
	case IDENTIFIER:
		return n.Identifier == other.Identifier
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// String returns an unambiguous prefix form of the tree, e.g.
// "(and a (group (or b c)))".
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	switch n.Operator {
	case LITERAL:
		fmt.Fprintf(sb, "%t", n.Value)
		return
	case IDENTIFIER:
		sb.WriteRune(n.Identifier)
		return
	}

	name := strings.ToLower(n.Operator.Name())
	if n.Operator == GROUP {
		name = "group"
	}
	sb.WriteString("(" + name)
	for _, child := range n.Children() {
		sb.WriteString(" ")
		child.writeTo(sb)
	}
	sb.WriteString(")")
}
