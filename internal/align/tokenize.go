package align

import (
	"iter"
	"slices"
	"strings"
)

// DefaultDelimiters is the delimiter set used to split lines into words.
const DefaultDelimiters = " "

// Tokenize returns the non-empty runs of s separated by one or more
// characters from delimiters. Leading and trailing delimiter runs are
// skipped. An empty delimiters string means DefaultDelimiters.
//
// The sequence is lazy and can be ranged over any number of times.
func Tokenize(s, delimiters string) iter.Seq[string] {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	isDelim := func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	}

	return func(yield func(string) bool) {
		rest := s
		for {
			start := strings.IndexFunc(rest, func(r rune) bool { return !isDelim(r) })
			if start < 0 {
				return
			}
			rest = rest[start:]

			end := strings.IndexFunc(rest, isDelim)
			if end < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:end]) {
				return
			}
			rest = rest[end:]
		}
	}
}

// Words splits s on runs of DefaultDelimiters and returns the words.
func Words(s string) []string {
	return slices.Collect(Tokenize(s, DefaultDelimiters))
}
