package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/avivilloz/commonutils/internal/constants"
)

// DefaultIndexDecimals is the width used by FormatIndexDefault.
const DefaultIndexDecimals = constants.DefaultIndexDecimals

// StrToFileName turns free text into a lowercase, underscore-separated name:
// "Hello, World!" becomes "hello_world".
func StrToFileName(text string) string {
	return strings.ReplaceAll(lower(RemovePunctuation(text)), " ", "_")
}

// StrToTagName turns free text into a compact lowercase tag:
// "Hello, World!" becomes "helloworld".
func StrToTagName(text string) string {
	return lower(RemoveSpaces(RemovePunctuation(text)))
}

// FormatIndex zero-pads index to at least decimals digits. Wider values are
// not truncated.
func FormatIndex(index, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return fmt.Sprintf("%0*d", decimals, index)
}

// FormatIndexDefault is FormatIndex with DefaultIndexDecimals.
func FormatIndexDefault(index int) string {
	return FormatIndex(index, DefaultIndexDecimals)
}

// Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
