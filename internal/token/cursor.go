package token

// Cursor walks a token stream with one token of lookahead.
// Once the stream is exhausted the cursor keeps returning EOF.
type Cursor struct {
	tokens []Token
	pos    int
	eof    Token
}

// NewCursor returns a cursor positioned on the first token.
// A trailing EOF token is optional; one is synthesized after the last token.
func NewCursor(tokens []Token) *Cursor {
	c := &Cursor{tokens: tokens, eof: Token{Kind: EOF}}

	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Kind == EOF {
			c.tokens = tokens[:n-1]
			c.eof = last
		} else {
			c.eof.Pos = last.Pos
		}
	}

	return c
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() Token {
	if c.pos >= len(c.tokens) {
		return c.eof
	}

	return c.tokens[c.pos]
}

// Advance consumes the current token and returns it.
func (c *Cursor) Advance() Token {
	tok := c.Peek()
	if c.pos < len(c.tokens) {
		c.pos++
	}

	return tok
}

// IsIdent reports whether the current token is an identifier.
func (c *Cursor) IsIdent() bool {
	return c.Peek().Kind == Ident
}

// Eat consumes the current token if it has the given kind.
func (c *Cursor) Eat(kind Kind) bool {
	if c.Peek().Kind != kind {
		return false
	}

	c.Advance()

	return true
}

// AtEOF reports whether every token has been consumed.
func (c *Cursor) AtEOF() bool {
	return c.Peek().Kind == EOF
}
