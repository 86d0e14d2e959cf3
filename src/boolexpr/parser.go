package boolexpr

// binaryLevels lists the binary operators from the loosest to the tightest
// binding. NOT binds tighter than all of them.
var binaryLevels = []struct {
	token    TokenType
	operator Operator
}{
	{XOR_TOKEN, XOR},
	{OR_TOKEN, OR},
	{AND_TOKEN, AND},
}

type parser struct {
	tokens   []Token
	position int

	// open parentheses at the current position
	depth int
	// rune offset just past the input, reported when the input runs out
	end int
}

func newParser(tokens []Token, end int) *parser {
	return &parser{
		tokens: tokens,
		end:    end,
	}
}

func (p *parser) peek() (Token, bool) {
	if p.position >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.position], true
}

func (p *parser) consume() (Token, bool) {
	token, ok := p.peek()
	if ok {
		p.position++
	}
	return token, ok
}

func (p *parser) parse() (*Node, error) {
	if len(p.tokens) == 0 {
		return nil, NewEmptyExpressionError()
	}

	root, err := p.parseLevel(0)
	if err != nil {
		return nil, err
	}

	// everything must be consumed, whatever is left over is misplaced
	if token, ok := p.peek(); ok {
		if token.Type == RPAREN_TOKEN {
			return nil, NewUnmatchedParenthesisError(token.Pos)
		}
		return nil, NewUnexpectedTokenError("operator or end of input", token)
	}

	return root, nil
}

// parseLevel parses a left associative chain of the binary operator at the
// given level, with operands from the next tighter level.
func (p *parser) parseLevel(level int) (*Node, error) {
	if level == len(binaryLevels) {
		return p.parseNot()
	}

	left, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}

	for {
		token, ok := p.peek()
		if !ok || token.Type != binaryLevels[level].token {
			return left, nil
		}
		p.consume()

		right, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		left = &Node{
			Operator: binaryLevels[level].operator,
			Left:     left,
			Right:    right,
		}
	}
}

func (p *parser) parseNot() (*Node, error) {
	token, ok := p.peek()
	if !ok || token.Type != NOT_TOKEN {
		return p.parsePrimary()
	}
	p.consume()

	operand, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not(operand), nil
}

func (p *parser) parsePrimary() (*Node, error) {
	token, ok := p.consume()
	if !ok {
		return nil, NewUnexpectedEndOfInputError("operand", p.end)
	}

	switch token.Type {
	case LITERAL_TOKEN:
		return Literal(token.Value), nil
	case IDENTIFIER_TOKEN:
		return Identifier(token.Identifier), nil
	case LPAREN_TOKEN:
		return p.parseGroup(token)
	case RPAREN_TOKEN:
		if p.depth == 0 {
			return nil, NewUnmatchedParenthesisError(token.Pos)
		}
		return nil, NewUnexpectedTokenError("operand", token)
	default:
		return nil, NewUnexpectedTokenError("operand", token)
	}
}

func (p *parser) parseGroup(open Token) (*Node, error) {
	p.depth++
	inner, err := p.parseLevel(0)
	if err != nil {
		return nil, err
	}
	p.depth--

	closing, ok := p.consume()
	if !ok {
		return nil, NewUnmatchedParenthesisError(open.Pos)
	}
	if closing.Type != RPAREN_TOKEN {
		return nil, NewUnexpectedTokenError("')'", closing)
	}
	return Group(inner), nil
}
