package schema

import "component-store/internal/token"

// Parse consumes a whole schema from the cursor.
// On success every token up to EOF has been consumed and the components are
// returned in declaration order. On failure the returned error is a
// *ParseError and the component list is nil.
func Parse(c *token.Cursor) ([]ComponentSpec, error) {
	if err := parseHeader(c); err != nil {
		return nil, err
	}

	var specs []ComponentSpec

	for {
		spec, err := parseComponent(c)
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)

		switch tok := c.Peek(); tok.Kind {
		case token.Ident:
			continue
		case token.EOF:
			return specs, nil
		default:
			return nil, newParseError(CodeUnexpectedTrailingToken, tok)
		}
	}
}

func parseHeader(c *token.Cursor) error {
	tok := c.Peek()
	if tok.Kind != token.Ident || tok.Text != HeaderKeyword {
		return newParseError(CodeMissingOrWrongHeader, tok)
	}

	c.Advance()

	if !c.Eat(token.Colon) {
		return newParseError(CodeMissingHeaderColon, c.Peek())
	}

	return nil
}

// parseComponent parses `Ident ["/" Ident] ["<-" identList]`.
func parseComponent(c *token.Cursor) (ComponentSpec, error) {
	nameTok, ok := expectIdent(c)
	if !ok {
		return ComponentSpec{}, newParseError(CodeMalformedComponentName, nameTok)
	}

	plural, err := parseOptionalPlural(c)
	if err != nil {
		return ComponentSpec{}, err
	}

	indices, err := parseOptionalIndices(c)
	if err != nil {
		return ComponentSpec{}, err
	}

	spec := NewComponentSpec(nameTok.Text, plural, indices)
	spec.Pos = nameTok.Pos

	return spec, nil
}

// parseOptionalPlural returns "" when no `/` follows the name.
func parseOptionalPlural(c *token.Cursor) (string, error) {
	if !c.Eat(token.Slash) {
		return "", nil
	}

	tok, ok := expectIdent(c)
	if !ok {
		return "", newParseError(CodeMissingPluralAfterSeparator, tok)
	}

	return tok.Text, nil
}

// parseOptionalIndices returns nil when no `<-` follows.
func parseOptionalIndices(c *token.Cursor) ([]string, error) {
	if !c.Eat(token.LArrow) {
		return nil, nil
	}

	var indices []string

	code := CodeMalformedIndexList

	for {
		tok, ok := expectIdent(c)
		if !ok {
			return nil, newParseError(code, tok)
		}

		indices = append(indices, tok.Text)

		if !c.Eat(token.Comma) {
			return indices, nil
		}

		code = CodeMissingIndexAfterComma
	}
}

// expectIdent consumes the current token if it is an identifier.
// Otherwise it returns the offending token and leaves the cursor in place.
func expectIdent(c *token.Cursor) (token.Token, bool) {
	tok := c.Peek()
	if tok.Kind != token.Ident {
		return tok, false
	}

	return c.Advance(), true
}
