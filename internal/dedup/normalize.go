package dedup

import (
	"regexp"
	"strings"
)

// minorPunct matches punctuation that carries no meaning for comparison.
// Parentheses are kept because they hold release years.
var minorPunct = regexp.MustCompile(`[,.!?\-:]`)

// Normalize lowercases text, strips minor punctuation, and collapses runs of
// whitespace to single spaces. It is idempotent and total on all inputs.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = minorPunct.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
