package treeprint

import (
	"strings"

	"github.com/eriklarko/booleval/src/boolexpr"
)

// Grid is a rendered tree, one slice of runes per line. All rows have the
// same length.
type Grid struct {
	Rows [][]rune
}

func newGrid(height, width int) *Grid {
	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}
	return &Grid{Rows: rows}
}

func (g *Grid) Height() int {
	return len(g.Rows)
}

func (g *Grid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// At returns the rune at the given position, or a space outside the grid.
func (g *Grid) At(row, col int) rune {
	if row < 0 || row >= g.Height() || col < 0 || col >= len(g.Rows[row]) {
		return ' '
	}
	return g.Rows[row][col]
}

// Lines returns every row with trailing spaces removed.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g *Grid) set(row, col int, r rune) {
	g.Rows[row][col] = r
}

func (g *Grid) write(row, col int, text string) {
	for i, r := range []rune(text) {
		g.set(row, col+i, r)
	}
}

// trimLeft removes the blank columns every row starts with and returns how
// many were removed
func (g *Grid) trimLeft() int {
	margin := g.Width()
	for _, row := range g.Rows {
		for i, r := range row {
			if r != ' ' {
				margin = min(margin, i)
				break
			}
		}
	}
	for i := range g.Rows {
		g.Rows[i] = g.Rows[i][margin:]
	}
	return margin
}

// Render draws the expression tree. Every node gets a label on the row of its
// depth and the rows in between hold the branches.
//
// Default style:
//
//	  &
//	 / \
//	a   b
//
// Pretty style:
//
//	  &
//	┌─┴─┐
//	a   b
func Render(node *boolexpr.Node, style Style) *Grid {
	grid, _ := render(NewLayout(node, style), style)
	return grid
}

// render draws the layout and returns the grid along with the row every depth
// was written to
func render(layout *Layout, style Style) (*Grid, []int) {
	levels := layout.ByDepth()
	rows, gaps := labelRows(levels, style)

	g := style.glyphs()
	grid := newGrid(rows[len(rows)-1]+1, layout.Width())
	for depth, level := range levels {
		for _, p := range level {
			grid.write(rows[depth], p.Start(), p.Label)

			if style.IsPretty() {
				drawBoxBranches(grid, g, p, rows[depth])
			} else {
				drawSlashBranches(grid, g, p, rows[depth], gaps[depth])
			}
		}
	}

	margin := grid.trimLeft()
	for depth := range levels {
		for _, p := range levels[depth] {
			p.Col -= margin
		}
	}
	return grid, rows
}

// labelRows returns the grid row of every depth and the number of branch rows
// below it
func labelRows(levels [][]*Placement, style Style) (rows, gaps []int) {
	gaps = make([]int, len(levels))
	rows = make([]int, len(levels))
	for depth := range levels {
		if depth > 0 {
			rows[depth] = rows[depth-1] + 1 + gaps[depth-1]
		}
		gaps[depth] = branchRows(levels[depth], style)
	}
	return rows, gaps
}

// branchRows is how many rows are needed below a level. Box branches always
// fit in one row, slashes need one row per column they travel.
func branchRows(level []*Placement, style Style) int {
	if style.IsPretty() {
		return 1
	}

	needed := 1
	for _, p := range level {
		if len(p.Children) != 2 {
			continue
		}
		left, right := p.Children[0], p.Children[1]
		needed = max(needed, p.Col-left.Col-1, right.Col-p.Col-1)
	}
	return needed
}

func drawSlashBranches(grid *Grid, g glyphs, p *Placement, row, height int) {
	switch len(p.Children) {
	case 1:
		for j := 1; j <= height; j++ {
			grid.set(row+j, p.Col, g.vertical)
		}

	case 2:
		left, right := p.Children[0], p.Children[1]
		for j := 1; j <= height; j++ {
			// a branch that reached its child's column continues straight down
			if p.Col-j > left.Col {
				grid.set(row+j, p.Col-j, g.leftBranch)
			} else {
				grid.set(row+j, left.Col, g.vertical)
			}

			if p.Col+j < right.Col {
				grid.set(row+j, p.Col+j, g.rightBranch)
			} else {
				grid.set(row+j, right.Col, g.vertical)
			}
		}
	}
}

func drawBoxBranches(grid *Grid, g glyphs, p *Placement, row int) {
	r := row + 1

	switch len(p.Children) {
	case 1:
		grid.set(r, p.Col, g.vertical)

	case 2:
		left, right := p.Children[0], p.Children[1]
		for col := left.Col + 1; col < right.Col; col++ {
			grid.set(r, col, g.horizontal)
		}
		grid.set(r, left.Col, g.leftCorner)
		grid.set(r, p.Col, g.join)
		grid.set(r, right.Col, g.rightCorner)
	}
}
