package boolexpr

import (
	"fmt"
	"iter"
	"unicode"
)

// TokenizeOptions tweaks what the tokenizer accepts.
type TokenizeOptions struct {
	// AllowIdentifiers makes single lowercase letters valid identifiers. When
	// false only literals and operators are accepted.
	AllowIdentifiers bool
}

var DefaultTokenizeOptions = TokenizeOptions{AllowIdentifiers: true}

var symbols = map[rune]TokenType{
	'&': AND_TOKEN,
	'|': OR_TOKEN,
	'^': XOR_TOKEN,
	'!': NOT_TOKEN,
	'(': LPAREN_TOKEN,
	')': RPAREN_TOKEN,
}

// the word literals win over identifiers, so "true" is never t, r, u, e
var keywords = []struct {
	word  []rune
	value bool
}{
	{[]rune("true"), true},
	{[]rune("false"), false},
}

// Tokenize lazily splits the input into tokens. The sequence stops after the
// first error.
//
//	for token, err := range boolexpr.Tokenize("a & !b") {
//		if err != nil {
//			return err
//		}
//		fmt.Println(token)
//	}
func Tokenize(input string) iter.Seq2[Token, error] {
	return TokenizeWithOptions(input, DefaultTokenizeOptions)
}

func TokenizeWithOptions(input string, opts TokenizeOptions) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		runes := []rune(input)
		produced := 0

		for pos := 0; pos < len(runes); {
			if unicode.IsSpace(runes[pos]) {
				pos++
				continue
			}

			token, err := lexOne(runes, pos, opts)
			if err != nil {
				yield(Token{}, err)
				return
			}
			produced++
			if !yield(token, nil) {
				return
			}
			pos += token.Width
		}

		if produced == 0 {
			yield(Token{}, NewEmptyExpressionError())
		}
	}
}

// Tokens collects the whole token sequence of the input.
func Tokens(input string) ([]Token, error) {
	return TokensWithOptions(input, DefaultTokenizeOptions)
}

func TokensWithOptions(input string, opts TokenizeOptions) ([]Token, error) {
	var tokens []Token
	for token, err := range TokenizeWithOptions(input, opts) {
		if err != nil {
			return nil, fmt.Errorf("failed to tokenize expression: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// lexOne reads the token starting at pos.
func lexOne(runes []rune, pos int, opts TokenizeOptions) (Token, error) {
	c := runes[pos]

	if typ, ok := symbols[c]; ok {
		return Token{Type: typ, Pos: pos, Width: 1}, nil
	}

	switch c {
	case '1':
		return Token{Type: LITERAL_TOKEN, Value: true, Pos: pos, Width: 1}, nil
	case '0':
		return Token{Type: LITERAL_TOKEN, Value: false, Pos: pos, Width: 1}, nil
	}

	for _, keyword := range keywords {
		if hasPrefixAt(runes, pos, keyword.word) {
			return Token{Type: LITERAL_TOKEN, Value: keyword.value, Pos: pos, Width: len(keyword.word)}, nil
		}
	}

	if c >= 'a' && c <= 'z' && opts.AllowIdentifiers {
		return Token{Type: IDENTIFIER_TOKEN, Identifier: c, Pos: pos, Width: 1}, nil
	}

	return Token{}, NewInvalidCharacterError(c, pos)
}

func hasPrefixAt(runes []rune, pos int, prefix []rune) bool {
	if pos+len(prefix) > len(runes) {
		return false
	}
	for i, r := range prefix {
		if runes[pos+i] != r {
			return false
		}
	}
	return true
}
