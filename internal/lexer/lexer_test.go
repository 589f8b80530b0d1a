package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-store/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}

	return out
}

func TestTokenize_Schema(t *testing.T) {
	src := "components:\n  Color\n  Position/Positions <- Range, Area\n"

	tokens := Tokenize(src)

	assert.Equal(t, []token.Kind{
		token.Ident, token.Colon,
		token.Ident,
		token.Ident, token.Slash, token.Ident, token.LArrow, token.Ident, token.Comma, token.Ident,
		token.EOF,
	}, kinds(tokens))

	assert.Equal(t, "components", tokens[0].Text)
	assert.Equal(t, "Positions", tokens[5].Text)
	assert.Equal(t, "<-", tokens[6].Text)
}

func TestTokenize_Positions(t *testing.T) {
	tokens := Tokenize("components:\n  Color/Colours")

	require.Len(t, tokens, 6)
	assert.Equal(t, token.Pos{Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, token.Pos{Line: 1, Column: 11}, tokens[1].Pos)
	assert.Equal(t, token.Pos{Line: 2, Column: 3}, tokens[2].Pos)
	assert.Equal(t, token.Pos{Line: 2, Column: 8}, tokens[3].Pos)
	assert.Equal(t, token.Pos{Line: 2, Column: 9}, tokens[4].Pos)
	assert.Equal(t, token.Pos{Line: 2, Column: 16}, tokens[5].Pos)
}

func TestTokenize_Comments(t *testing.T) {
	tokens := Tokenize("// store schema\ncomponents: // header\n  Color // the only one\n")

	assert.Equal(t, []token.Kind{token.Ident, token.Colon, token.Ident, token.EOF}, kinds(tokens))
	assert.Equal(t, 3, tokens[2].Pos.Line)
}

func TestTokenize_Empty(t *testing.T) {
	tokens := Tokenize("")

	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestTokenize_Illegal(t *testing.T) {
	tests := []struct {
		name string
		src  string
		text string
	}{
		{name: "lone less-than", src: "Color < Range", text: "<"},
		{name: "digit start", src: "9lives", text: "9"},
		{name: "semicolon", src: "Color;", text: ";"},
		{name: "multibyte", src: "Ğ", text: "Ğ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var illegal []token.Token

			for _, tok := range Tokenize(tt.src) {
				if tok.Kind == token.Illegal {
					illegal = append(illegal, tok)
				}
			}

			require.NotEmpty(t, illegal)
			assert.Equal(t, tt.text, illegal[0].Text)
		})
	}
}

func TestTokenize_IdentifierCharacters(t *testing.T) {
	tokens := Tokenize("_private Vec3 snake_case")

	require.Len(t, tokens, 4)
	assert.Equal(t, "_private", tokens[0].Text)
	assert.Equal(t, "Vec3", tokens[1].Text)
	assert.Equal(t, "snake_case", tokens[2].Text)
}
