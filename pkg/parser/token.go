package parser

import (
	"iter"
)

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// isSpace matches the C locale isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Tokens yields every maximal run of ASCII letters in b, lowercased.
// The sequence can be ranged over any number of times.
func Tokens(b []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		word := make([]byte, 0, 32)
		i := 0
		for i < len(b) {
			for i < len(b) && !isAlpha(b[i]) {
				i++
			}
			if i >= len(b) {
				return
			}

			word = word[:0]
			for i < len(b) && isAlpha(b[i]) {
				word = append(word, toLower(b[i]))
				i++
			}
			if !yield(string(word)) {
				return
			}
		}
	}
}

func ParseTokens(b []byte) []string {
	tokens := []string{}
	for token := range Tokens(b) {
		tokens = append(tokens, token)
	}
	return tokens
}

// Normalize drops surrounding whitespace, then lowercases ASCII letters and
// leaves every other byte alone, so a query with digits or punctuation
// never matches an indexed word.
func Normalize(word string) string {
	start, end := 0, len(word)
	for start < end && isSpace(word[start]) {
		start++
	}
	for end > start && isSpace(word[end-1]) {
		end--
	}
	b := []byte(word[start:end])
	for i := range b {
		b[i] = toLower(b[i])
	}
	return string(b)
}
