package ident

import "strings"

const separator = '_'

// LowerCase folds ASCII upper-case letters to lower case, byte by byte.
func LowerCase(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		b.WriteByte(lowerByte(s[i]))
	}

	return b.String()
}

// SnakeCase converts an identifier to snake_case.
// Examples:
//   - "AbcDefGhi" -> "abc_def_ghi"
//   - "Abc  Def_Ghi-jkl" -> "abc_def_ghi_jkl"
//   - "  _ Abc" -> "abc"
//   - "bc d  " -> "bc_d"
//
// An upper-case letter starts a new word unless the output is empty or
// already ends in a separator. Runs of spaces, hyphens and underscores
// collapse into one underscore and are dropped at the start. A single
// trailing underscore is stripped; leading ones never appear.
func SnakeCase(s string) string {
	out := make([]byte, 0, len(s)+len(s)/2)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case isUpper(c):
			out = appendSeparator(out)
			out = append(out, lowerByte(c))
		case isSeparator(c):
			out = appendSeparator(out)
		default:
			out = append(out, c)
		}
	}

	if n := len(out); n > 0 && out[n-1] == separator {
		out = out[:n-1]
	}

	return string(out)
}

// TypeCase converts a snake_case identifier into an exported CamelCase one.
// Examples:
//   - "colors" -> "Colors"
//   - "find_all_positions" -> "FindAllPositions"
//   - "http_server" -> "HttpServer"
//
// Input that is not already snake_case is converted first.
func TypeCase(s string) string {
	words := strings.Split(SnakeCase(s), string(separator))

	var b strings.Builder

	b.Grow(len(s))

	for _, w := range words {
		if w == "" {
			continue
		}

		b.WriteByte(upperByte(w[0]))
		b.WriteString(w[1:])
	}

	return b.String()
}

// appendSeparator appends an underscore unless out is empty or already ends in one.
func appendSeparator(out []byte) []byte {
	if len(out) == 0 || out[len(out)-1] == separator {
		return out
	}

	return append(out, separator)
}

// isSeparator returns true if the byte is a word separator.
func isSeparator(c byte) bool {
	return c == ' ' || c == '-' || c == separator
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func lowerByte(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}

	return c
}

func upperByte(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}

	return c
}
