// Package strings provides string utility functions for identifier naming.
package strings

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func ToLowerCamel(s string) string {
	i := 0
	for i < len(s) && unicode.IsUpper(rune(s[i])) {
		i++
	}

	return strings.ToLower(s[:i]) + s[i:]
}

// Receiver returns the conventional one-letter receiver identifier for
// a type name, or "" when the name has no letter to build one from.
func Receiver(typeName string) string {
	for _, r := range typeName {
		if unicode.IsLetter(r) {
			lower := unicode.ToLower(r)
			buf := make([]byte, utf8.RuneLen(lower))
			utf8.EncodeRune(buf, lower)
			return string(buf)
		}
	}

	return ""
}
