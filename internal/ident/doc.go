// Package ident derives the identifiers a component store is built from.
//
// All transforms are ASCII-only. Schema identifiers are restricted to source
// identifier characters by the lexer, so non-ASCII input is left untouched
// rather than folded.
package ident
