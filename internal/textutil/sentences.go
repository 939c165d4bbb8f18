package textutil

import (
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// A period not preceded by a digit, followed by optional whitespace and
	// then an uppercase letter or the end of the text.
	sentencePeriodRe = regexp2.MustCompile(`(?<![0-9])\.\s*(?=[A-Z]|$)`, regexp2.None)

	// Whitespace after terminal punctuation and before an uppercase letter.
	sentenceBoundaryRe = regexp2.MustCompile(`(?<=[.!?])\s+(?=[A-Z])`, regexp2.None)
)

// CountSentencePeriods counts the periods that end a sentence. Periods inside
// numbers such as "3.14" are not counted.
func CountSentencePeriods(text string) int {
	n := 0
	m, _ := sentencePeriodRe.FindStringMatch(text)
	for m != nil {
		n++
		m, _ = sentencePeriodRe.FindNextMatch(m)
	}
	return n
}

// GetSentences splits text at sentence boundaries and returns the trimmed,
// non-empty sentences. The result is freshly allocated on every call.
func GetSentences(text string) []string {
	// regexp2 reports match offsets in runes; map them to byte offsets so
	// pieces are sliced from text itself, invalid bytes included
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	sentences := []string{}
	add := func(piece string) {
		if s := strings.TrimSpace(piece); s != "" {
			sentences = append(sentences, s)
		}
	}

	last := 0
	m, _ := sentenceBoundaryRe.FindStringMatch(text)
	for m != nil {
		add(text[offsets[last]:offsets[m.Index]])
		last = m.Index + m.Length
		m, _ = sentenceBoundaryRe.FindNextMatch(m)
	}
	add(text[offsets[last]:])

	return sentences
}
