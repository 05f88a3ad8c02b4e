package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// Fold normalizes text for case-insensitive matching. Plain ASCII lowering
// is not enough for the German corpora (ß, umlauts in mixed case), so this
// goes through Unicode case folding.
func Fold(s string) string {
	return folder.String(s)
}

// ContainsFold reports whether text contains substr under case folding.
func ContainsFold(text, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(Fold(text), Fold(substr))
}

// Tokens splits text into folded word tokens, dropping punctuation and
// anything without a letter or digit. Used for term counting.
func Tokens(text string) []string {
	fields := strings.FieldsFunc(Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '#' && r != '@'
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "#@")
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}
