package treeprint

import (
	"fmt"
	"strings"
)

// Style selects the glyphs and labels used to draw a tree. Pretty and
// Extended can be combined.
type Style int

const (
	// Pretty draws branches with box drawing characters instead of slashes.
	Pretty Style = 1 << iota
	// Extended labels operators by name (AND, OR, ...) instead of by symbol.
	Extended
)

const (
	Default        Style = 0
	PrettyExtended       = Pretty | Extended
)

var styleNames = map[Style]string{
	Default:        "default",
	Pretty:         "pretty",
	Extended:       "extended",
	PrettyExtended: "pretty-extended",
}

func (s Style) IsPretty() bool {
	return s&Pretty != 0
}

func (s Style) IsExtended() bool {
	return s&Extended != 0
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(name string) (Style, error) {
	for style, styleName := range styleNames {
		if strings.EqualFold(name, styleName) {
			return style, nil
		}
	}
	return Default, fmt.Errorf("unknown render style '%s'", name)
}

// StyleFromFlags combines the two command line switches into a Style.
func StyleFromFlags(pretty, extended bool) Style {
	style := Default
	if pretty {
		style |= Pretty
	}
	if extended {
		style |= Extended
	}
	return style
}

type glyphs struct {
	leftBranch, rightBranch, vertical rune

	// only used by pretty styles
	leftCorner, rightCorner, horizontal, join rune
}

var (
	asciiGlyphs = glyphs{
		leftBranch:  '/',
		rightBranch: '\\',
		vertical:    '|',
	}
	boxGlyphs = glyphs{
		vertical:    '│',
		leftCorner:  '┌',
		rightCorner: '┐',
		horizontal:  '─',
		join:        '┴',
	}
)

func (s Style) glyphs() glyphs {
	if s.IsPretty() {
		return boxGlyphs
	}
	return asciiGlyphs
}
