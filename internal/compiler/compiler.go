// Package compiler connects schema text to the synthesis pipeline.
//
// It is the host side of the pipeline: it owns file access and tokenizing,
// while internal/schema and internal/plan only ever see a token cursor.
package compiler

import (
	"errors"
	"fmt"
	"os"

	"component-store/internal/diagnostic"
	"component-store/internal/lexer"
	"component-store/internal/match"
	"component-store/internal/plan"
	"component-store/internal/schema"
	"component-store/internal/token"
)

// Result is the outcome of compiling one schema.
type Result struct {
	Plan        *plan.SynthesisPlan
	Diagnostics diagnostic.Diagnostics
}

// headerTypoDistance bounds how far a header word may be from `components`
// and still earn a suggestion.
const headerTypoDistance = 2

// Parse tokenizes src and parses its components.
func Parse(src string) ([]schema.ComponentSpec, error) {
	specs, err := schema.Parse(cursor(src))
	if err != nil {
		return nil, withHint(err)
	}

	return specs, nil
}

// ParseFile reads the schema at path and parses its components.
func ParseFile(path string) ([]schema.ComponentSpec, error) {
	src, err := ReadSchema(path)
	if err != nil {
		return nil, err
	}

	specs, err := Parse(src)
	if err != nil {
		return nil, withPath(path, err)
	}

	return specs, nil
}

// Compile tokenizes src and synthesizes its plan. Diagnostics are gathered
// from the parsed components but never affect the plan.
func Compile(src string, opts plan.Options) (*Result, error) {
	specs, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return &Result{
		Plan:        plan.Build(specs, opts),
		Diagnostics: plan.Check(specs),
	}, nil
}

// CompileFile reads and compiles the schema at path.
func CompileFile(path string, opts plan.Options) (*Result, error) {
	src, err := ReadSchema(path)
	if err != nil {
		return nil, err
	}

	res, err := Compile(src, opts)
	if err != nil {
		return nil, withPath(path, err)
	}

	return res, nil
}

// ReadSchema reads schema text from path.
func ReadSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", path, err)
	}

	return string(data), nil
}

// withPath prefixes err with path, compiler style when a position is known.
func withPath(path string, err error) error {
	var perr *schema.ParseError
	if errors.As(err, &perr) && perr.Pos.IsValid() {
		return fmt.Errorf("%s:%w", path, err)
	}

	return fmt.Errorf("%s: %w", path, err)
}

// withHint appends a suggestion when the header looks like a misspelled
// `components`.
func withHint(err error) error {
	var perr *schema.ParseError
	if !errors.As(err, &perr) || perr.Code != schema.CodeMissingOrWrongHeader {
		return err
	}

	if perr.Found.Kind != token.Ident {
		return err
	}

	if _, ok := match.Closest(perr.Found.Text, []string{schema.HeaderKeyword}, headerTypoDistance); !ok {
		return err
	}

	return fmt.Errorf("%w; did you mean `%s:`?", err, schema.HeaderKeyword)
}

func cursor(src string) *token.Cursor {
	return token.NewCursor(lexer.Tokenize(src))
}
