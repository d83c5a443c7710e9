// Package shared provides small cross-package helpers (currently
// imported by the parser) without introducing a dependency cycle.
package shared

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateIdentifier checks that value matches the ID token grammar of
// spec.md §3: non-empty, starting with a letter (any case), digit, or
// underscore, and continuing with letters, digits, underscores,
// hyphens, or dots.
func ValidateIdentifier(value string) bool {
	if value == "" {
		return false
	}
	for i, r := range value {
		if i == 0 {
			if !isIdentStart(r) {
				return false
			}
			continue
		}
		if !isIdentStart(r) && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// ValidateNonVersionIdentifier reports whether value is a legal
// identifier that additionally satisfies spec.md §3's extra
// restriction on package, variant, compiler, and architecture names:
// "must not contain '.'; only version identifiers may." The parser
// calls this immediately after consuming any such ID token (§4.2
// "Context-sensitive ID rule"), since the lexer itself stays
// context-free and cannot make this distinction (§9 "Lex/parse
// separation").
func ValidateNonVersionIdentifier(value string) bool {
	return ValidateIdentifier(value) && !strings.ContainsRune(value, '.')
}

// WrapPosition formats a position-qualified error message
// ("column N: ..."). The lexer and parser do not call it; their
// error types format the column themselves.
func WrapPosition(column int, format string, args ...any) string {
	return fmt.Sprintf("column %d: %s", column, fmt.Sprintf(format, args...))
}
