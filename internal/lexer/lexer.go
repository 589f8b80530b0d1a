// Package lexer turns component schema text into a token stream.
//
// The lexer never fails. Characters it cannot classify become token.Illegal
// tokens so the parser reports them with the error that fits their position.
package lexer

import (
	"unicode/utf8"

	"component-store/internal/token"
)

// Tokenize splits src into tokens. The result always ends with token.EOF.
// Whitespace separates tokens and "//" starts a comment running to the end
// of the line.
func Tokenize(src string) []token.Token {
	l := &lexer{src: src, line: 1, col: 1}

	var tokens []token.Token

	for {
		tok := l.next()

		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

func (l *lexer) next() token.Token {
	l.skipSpaceAndComments()

	pos := token.Pos{Line: l.line, Column: l.col}
	if l.off >= len(l.src) {
		return token.New(token.EOF, "", pos)
	}

	c := l.src[l.off]

	switch {
	case isIdentStart(c):
		start := l.off
		for l.off < len(l.src) && isIdentPart(l.src[l.off]) {
			l.bump(1)
		}

		return token.New(token.Ident, l.src[start:l.off], pos)
	case c == ':':
		l.bump(1)
		return token.New(token.Colon, ":", pos)
	case c == '/':
		l.bump(1)
		return token.New(token.Slash, "/", pos)
	case c == ',':
		l.bump(1)
		return token.New(token.Comma, ",", pos)
	case c == '<' && l.peekAt(1) == '-':
		l.bump(2)
		return token.New(token.LArrow, "<-", pos)
	}

	_, size := utf8.DecodeRuneInString(l.src[l.off:])
	text := l.src[l.off : l.off+size]
	l.bump(size)

	return token.New(token.Illegal, text, pos)
}

func (l *lexer) skipSpaceAndComments() {
	for l.off < len(l.src) {
		c := l.src[l.off]

		switch {
		case c == '\n':
			l.off++
			l.line++
			l.col = 1
		case c == ' ' || c == '\t' || c == '\r':
			l.bump(1)
		case c == '/' && l.peekAt(1) == '/':
			for l.off < len(l.src) && l.src[l.off] != '\n' {
				l.bump(1)
			}
		default:
			return
		}
	}
}

// bump advances n bytes on the current line.
func (l *lexer) bump(n int) {
	l.off += n
	l.col += n
}

func (l *lexer) peekAt(n int) byte {
	if l.off+n >= len(l.src) {
		return 0
	}

	return l.src[l.off+n]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
