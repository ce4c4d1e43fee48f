// Package slug derives URL slugs from display names.
package slug

import (
	"strings"
	"unicode"
)

// Make lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming leading and trailing hyphens.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
