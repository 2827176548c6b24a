// Package blocks parses the free-text "blocks" field of a bug form into an
// ordered list of blocking-bug identifiers.
package blocks

import (
	"regexp"
	"strings"
)

// delimiters matches one or more commas and/or spaces.
var delimiters = regexp.MustCompile(`[ ,]+`)

// Parse splits text on runs of commas and spaces. It always returns at least
// one element: empty input yields [""], and leading or trailing delimiters
// produce empty tokens at the edges.
func Parse(text string) []string {
	return delimiters.Split(text, -1)
}

// Identifiers returns the non-empty tokens of text in order.
func Identifiers(text string) []string {
	tokens := Parse(text)
	ids := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		ids = append(ids, tok)
	}
	return ids
}

// Join renders identifiers in the canonical "a, b, c" form.
func Join(ids []string) string {
	return strings.Join(ids, ", ")
}
