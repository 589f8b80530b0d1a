package schema

import (
	"errors"
	"fmt"

	"component-store/internal/token"
)

// Code identifies the kind of parse failure.
type Code string

const (
	// CodeMissingOrWrongHeader indicates the schema does not start with `components`.
	CodeMissingOrWrongHeader Code = "missing-header"
	// CodeMissingHeaderColon indicates the header is not followed by `:`.
	CodeMissingHeaderColon Code = "missing-header-colon"
	// CodeMalformedComponentName indicates a component declaration did not start with an identifier.
	CodeMalformedComponentName Code = "malformed-component-name"
	// CodeMissingPluralAfterSeparator indicates `/` was not followed by an identifier.
	CodeMissingPluralAfterSeparator Code = "missing-plural"
	// CodeMalformedIndexList indicates `<-` was not followed by an identifier.
	CodeMalformedIndexList Code = "malformed-index-list"
	// CodeMissingIndexAfterComma indicates `,` in an index list was not followed by an identifier.
	CodeMissingIndexAfterComma Code = "missing-index-after-comma"
	// CodeUnexpectedTrailingToken indicates a token that can neither start a component nor end the schema.
	CodeUnexpectedTrailingToken Code = "unexpected-token"
)

var (
	ErrMissingOrWrongHeader        = errors.New("expected header to be `components:`")
	ErrMissingHeaderColon          = errors.New("expected header to be followed by a colon")
	ErrMalformedComponentName      = errors.New("failed to parse component name")
	ErrMissingPluralAfterSeparator = errors.New("pluralization name not found after slash")
	ErrMalformedIndexList          = errors.New("failed to parse index name after `<-`")
	ErrMissingIndexAfterComma      = errors.New("failed to parse index name after comma")
	ErrUnexpectedTrailingToken     = errors.New("failed to parse list of components")

	// ErrIndexList matches both index list failures.
	ErrIndexList = errors.New("malformed index list")
)

var sentinels = map[Code]error{
	CodeMissingOrWrongHeader:        ErrMissingOrWrongHeader,
	CodeMissingHeaderColon:          ErrMissingHeaderColon,
	CodeMalformedComponentName:      ErrMalformedComponentName,
	CodeMissingPluralAfterSeparator: ErrMissingPluralAfterSeparator,
	CodeMalformedIndexList:          ErrMalformedIndexList,
	CodeMissingIndexAfterComma:      ErrMissingIndexAfterComma,
	CodeUnexpectedTrailingToken:     ErrUnexpectedTrailingToken,
}

// Sentinel returns the sentinel error for the code, or nil for an unknown code.
func (c Code) Sentinel() error {
	return sentinels[c]
}

// ParseError is the single failure a parse can produce.
type ParseError struct {
	Code Code
	// Pos is the position of the offending token.
	Pos token.Pos
	// Found is the token the parser rejected.
	Found token.Token
}

func newParseError(code Code, found token.Token) *ParseError {
	return &ParseError{Code: code, Pos: found.Pos, Found: found}
}

// Error formats the error as "line:col: message (found ...)".
func (e *ParseError) Error() string {
	msg := string(e.Code)
	if s := e.Code.Sentinel(); s != nil {
		msg = s.Error()
	}

	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s (found %s)", e.Pos, msg, e.Found)
	}

	return fmt.Sprintf("%s (found %s)", msg, e.Found)
}

// Unwrap returns the sentinel for the error code.
func (e *ParseError) Unwrap() error {
	return e.Code.Sentinel()
}

// Is lets both index list failures match ErrIndexList.
func (e *ParseError) Is(target error) bool {
	if target != ErrIndexList {
		return false
	}

	return e.Code == CodeMalformedIndexList || e.Code == CodeMissingIndexAfterComma
}
