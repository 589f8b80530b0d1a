// Package schema parses component schemas into ComponentSpec values.
//
// Grammar:
//
//	schema     := Header component+
//	Header     := Ident(="components") ":"
//	component  := Ident ["/" Ident] ["<-" identList]
//	identList  := Ident ("," Ident)*
//
// Parsing is fail-fast: the first malformed construct aborts the whole parse
// and no partial component list is ever returned.
package schema
