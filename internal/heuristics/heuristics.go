// Package heuristics holds the text predicates used to score prompts.
//
// Every function is pure. Keyword checks are literal substring matches on
// the case-folded text, so "like" also matches inside "likely". Question
// mark and word-count checks look at the raw text.
package heuristics

import (
	"strings"
	"unicode/utf8"
)

// Text is a prompt together with its case-folded form.
type Text struct {
	Raw    string
	Folded string
}

// Normalize builds the Text view of raw.
func Normalize(raw string) Text {
	return Text{Raw: raw, Folded: strings.ToLower(raw)}
}

// ContainsAny reports whether any keyword occurs in s.
// No keywords means false.
func ContainsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every keyword occurs in s.
// No keywords means true.
func ContainsAll(s string, keywords ...string) bool {
	for _, k := range keywords {
		if !strings.Contains(s, k) {
			return false
		}
	}
	return true
}

// WordCount returns the number of whitespace-delimited non-empty tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// HasQuestionMark reports whether s contains a literal '?'.
func HasQuestionMark(s string) bool {
	return strings.ContainsRune(s, '?')
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
