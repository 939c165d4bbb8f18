// Package textutil provides small, total string cleanup helpers.
package textutil

import (
	"strings"
	"unicode"

	"github.com/avivilloz/commonutils/internal/constants"
)

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, isSpace))
}

// RemoveQuotes deletes every double quote.
func RemoveQuotes(text string) string {
	return strings.ReplaceAll(text, `"`, "")
}

// RemoveNewlines deletes every line feed.
func RemoveNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}

// RemoveSpaces deletes every ASCII space. Other whitespace is kept.
func RemoveSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// RemoveDoubleSpaces replaces each pair of consecutive spaces with one space
// in a single left-to-right pass. Runs of three or more spaces shrink but are
// not collapsed: "a   b" becomes "a  b".
func RemoveDoubleSpaces(text string) string {
	return strings.ReplaceAll(text, constants.DoubleSpace, " ")
}

// RemovePunctuation drops every rune that is neither a word rune (letter,
// number, underscore) nor whitespace.
func RemovePunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if isWord(r) || isSpace(r) {
			return r
		}
		return -1
	}, text)
}

// RemoveEndPunctuation trims trailing ASCII punctuation.
func RemoveEndPunctuation(text string) string {
	return strings.TrimRight(text, constants.ASCIIPunctuation)
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSpace(r rune) bool {
	// Information separators U+001C..U+001F split words too
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
