package treeprint

import (
	"github.com/eriklarko/booleval/src/boolexpr"
	"github.com/samber/lo"
)

// minSlotWidth keeps sibling leaves far enough apart for a branch glyph to
// fit between them and their parent
const minSlotWidth = 4

// Placement is where a single node ends up in the drawing. Col is the center
// column of the label.
type Placement struct {
	Node     *boolexpr.Node
	Label    string
	Depth    int
	Col      int
	Children []*Placement
}

// Start is the first column covered by the label.
func (p *Placement) Start() int {
	return p.Col - (len([]rune(p.Label))-1)/2
}

// End is the last column covered by the label.
func (p *Placement) End() int {
	return p.Start() + len([]rune(p.Label)) - 1
}

// Layout holds the placement of every node of a tree.
type Layout struct {
	Root      *Placement
	SlotWidth int
	Leaves    int
	MaxDepth  int
}

// Width is the number of columns needed to fit every label.
func (l *Layout) Width() int {
	return l.Leaves * l.SlotWidth
}

// ByDepth groups the placements per depth, each group from left to right.
func (l *Layout) ByDepth() [][]*Placement {
	levels := make([][]*Placement, l.MaxDepth+1)
	var visit func(p *Placement)
	visit = func(p *Placement) {
		levels[p.Depth] = append(levels[p.Depth], p)
		for _, child := range p.Children {
			visit(child)
		}
	}
	visit(l.Root)
	return levels
}

// NewLayout assigns every leaf its own slot, left to right. A parent with two
// children is centered between them and a parent with one child sits right
// above it. Since a subtree only ever spans its own leaves' slots, subtrees
// never overlap and wide subtrees push their neighbours apart.
func NewLayout(node *boolexpr.Node, style Style) *Layout {
	widest := 0
	for n := range node.All() {
		widest = max(widest, len([]rune(label(n, style))))
	}

	slotWidth := widest + 1
	if slotWidth%2 != 0 {
		// an even slot width lets balanced branches meet in the middle
		slotWidth++
	}
	slotWidth = max(slotWidth, minSlotWidth)

	l := &Layout{SlotWidth: slotWidth}
	l.Root = l.place(node, style, 0)
	return l
}

func (l *Layout) place(node *boolexpr.Node, style Style, depth int) *Placement {
	p := &Placement{
		Node:  node,
		Label: label(node, style),
		Depth: depth,
	}
	l.MaxDepth = max(l.MaxDepth, depth)

	if node.IsLeaf() {
		p.Col = l.Leaves*l.SlotWidth + l.SlotWidth/2
		l.Leaves++
		return p
	}

	p.Children = lo.Map(node.Children(), func(child *boolexpr.Node, _ int) *Placement {
		return l.place(child, style, depth+1)
	})
	first, last := p.Children[0], p.Children[len(p.Children)-1]
	p.Col = (first.Col + last.Col) / 2

	return p
}

func label(node *boolexpr.Node, style Style) string {
	switch node.Operator {
	case boolexpr.LITERAL:
		if style.IsExtended() {
			return lo.Ternary(node.Value, "true", "false")
		}
		return lo.Ternary(node.Value, "1", "0")
	case boolexpr.IDENTIFIER:
		return string(node.Identifier)
	}

	if style.IsExtended() {
		return node.Operator.Name()
	}
	return node.Operator.Symbol()
}
