package align

import "strings"

// Direction selects which end of the input the Bounded Replacer starts from.
type Direction int

const (
	// FromStart replaces the leftmost occurrences first.
	FromStart Direction = iota

	// FromEnd replaces the rightmost occurrences first.
	FromEnd
)

// MaxReplacements is the largest replacement budget Replace honours.
// Larger budgets are clamped.
const MaxReplacements = 255

// Replace substitutes up to maxCount non-overlapping occurrences of pattern
// with replacement, scanning in the given direction. Text produced by a
// substitution is never rescanned.
//
// An empty pattern or a non-positive budget returns input unchanged.
//
// Scanning FromEnd gives the same result as reversing input, pattern and
// replacement, scanning forward, and reversing the result back, without
// ever reversing bytes (so multi-byte characters stay intact).
func Replace(input, pattern, replacement string, maxCount int, dir Direction) string {
	if pattern == "" || maxCount <= 0 {
		return input
	}
	if maxCount > MaxReplacements {
		maxCount = MaxReplacements
	}

	if dir == FromEnd {
		return replaceFromEnd(input, pattern, replacement, maxCount)
	}
	return replaceFromStart(input, pattern, replacement, maxCount)
}

func replaceFromStart(input, pattern, replacement string, maxCount int) string {
	var b strings.Builder
	rest := input
	replaced := 0
	for ; replaced < maxCount; replaced++ {
		idx := strings.Index(rest, pattern)
		if idx < 0 {
			break
		}
		b.WriteString(rest[:idx])
		b.WriteString(replacement)
		rest = rest[idx+len(pattern):]
	}
	if replaced == 0 {
		return input
	}
	b.WriteString(rest)
	return b.String()
}

// replaceFromEnd works right to left. Everything at or after limit has
// already been emitted (or replaced) and is kept in tail.
func replaceFromEnd(input, pattern, replacement string, maxCount int) string {
	limit := len(input)
	var tail []string
	for replaced := 0; replaced < maxCount; replaced++ {
		idx := strings.LastIndex(input[:limit], pattern)
		if idx < 0 {
			break
		}
		tail = append(tail, input[idx+len(pattern):limit], replacement)
		limit = idx
	}
	if len(tail) == 0 {
		return input
	}

	var b strings.Builder
	b.WriteString(input[:limit])
	for i := len(tail) - 1; i >= 0; i-- {
		b.WriteString(tail[i])
	}
	return b.String()
}
