package domain

import (
	"time"
	"unicode"
	"unicode/utf8"
)

// QueryState tracks the text a field is searching for.
type QueryState struct {
	// Text is the current input text.
	Text string

	// MinLength is the effective minimum length for Text.
	MinLength int

	// LastIssuedAt is when the last remote search for this field was dispatched.
	LastIssuedAt time.Time
}

// Searchable reports whether Text is long enough to issue a remote search.
func (q QueryState) Searchable() bool {
	return q.Text != "" && TextLength(q.Text) >= q.MinLength
}

// TextLength returns the number of characters in text.
func TextLength(text string) int {
	return utf8.RuneCountInString(text)
}

// ContainsCJK reports whether text has any Chinese, Japanese or Korean character.
func ContainsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}

// EffectiveMinLength returns the CJK minimum when text contains CJK characters,
// the latin minimum otherwise.
func EffectiveMinLength(text string, latin, cjk int) int {
	if ContainsCJK(text) {
		return cjk
	}
	return latin
}
