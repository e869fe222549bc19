package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DashesToCamelCase converts a dash-separated name to CamelCase: the first
// rune and every rune following a '-' are uppercased, then the dashes are
// removed. Other runes keep their case, so already camel-cased input is
// returned unchanged. When capitalizeFirst is false the first rune is
// lowercased instead.
//
//	DashesToCamelCase("list-events", true)  // "ListEvents"
//	DashesToCamelCase("donor-report", false) // "donorReport"
func DashesToCamelCase(s string, capitalizeFirst bool) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	upperNext := true
	for _, r := range s {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}

	out := b.String()
	if capitalizeFirst || out == "" {
		return out
	}

	first, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToLower(first)) + out[size:]
}
