// Package token defines the token stream a component schema is parsed from.
//
// The parser only needs a cursor exposing the current token, an advance
// operation and an identifier discriminator; any host lexer that can fill a
// []Token satisfies it.
package token
