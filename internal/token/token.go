package token

import (
	"fmt"
	"strconv"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a token.
type Kind int

const (
	Illegal Kind = iota // a character the lexer could not classify
	EOF
	Ident
	Colon  // :
	Slash  // /
	LArrow // <-
	Comma  // ,
)

// Pos is a 1-based line and column in the schema source.
// The zero value means the position is unknown.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position refers to a real location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}

	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token is a single lexical token.
type Token struct {
	Kind Kind
	// Text is the literal source text; empty for EOF.
	Text string
	Pos  Pos
}

// String returns a human-readable description used in error messages.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

// New returns a token of the given kind at pos.
func New(kind Kind, text string, pos Pos) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}

// IdentToken is a shorthand for an identifier token without a position.
func IdentToken(name string) Token {
	return Token{Kind: Ident, Text: name}
}
