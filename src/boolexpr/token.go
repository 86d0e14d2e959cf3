package boolexpr

import (
	"fmt"
)

type TokenType int

const (
	IDENTIFIER_TOKEN TokenType = iota
	LITERAL_TOKEN
	AND_TOKEN
	OR_TOKEN
	XOR_TOKEN
	NOT_TOKEN
	LPAREN_TOKEN
	RPAREN_TOKEN
)

var tokenTypeNames = map[TokenType]string{
	IDENTIFIER_TOKEN: "identifier",
	LITERAL_TOKEN:    "literal",
	AND_TOKEN:        "'&'",
	OR_TOKEN:         "'|'",
	XOR_TOKEN:        "'^'",
	NOT_TOKEN:        "'!'",
	LPAREN_TOKEN:     "'('",
	RPAREN_TOKEN:     "')'",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// Token is a single lexical unit of an expression. Only one of Value and
// Identifier is meaningful, depending on Type.
type Token struct {
	Type       TokenType
	Value      bool
	Identifier rune

	// Pos is the rune offset of the token's first character in the input
	Pos   int
	// Width is the number of runes the token spans, 4 for `true`
	Width int
}

// End is the rune offset just past the token. Tokens built without a width
// count as one rune.
func (t Token) End() int {
	return t.Pos + max(t.Width, 1)
}

func (t Token) String() string {
	switch t.Type {
	case IDENTIFIER_TOKEN:
		return fmt.Sprintf("identifier '%c'", t.Identifier)
	case LITERAL_TOKEN:
		return fmt.Sprintf("literal %t", t.Value)
	default:
		return t.Type.String()
	}
}
