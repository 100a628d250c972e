package align

import (
	"iter"
	"strings"
)

// slug accumulates the words of one output line.
type slug struct {
	words  []string
	length int // rendered length: word lengths plus single separators
}

// fits reports whether word can be appended without exceeding width.
// An empty slug accepts any word, so an over-long word gets a line of its own.
func (s *slug) fits(word string, width int) bool {
	if len(s.words) == 0 {
		return true
	}
	return s.length+1+len(word) <= width
}

func (s *slug) add(word string) {
	if len(s.words) > 0 {
		s.length++
	}
	s.words = append(s.words, word)
	s.length += len(word)
}

func (s *slug) empty() bool {
	return len(s.words) == 0
}

// close renders the slug and resets the accumulator.
func (s *slug) close() string {
	out := strings.Join(s.words, " ")
	s.words = s.words[:0]
	s.length = 0
	return out
}

// BuildSlugs greedily packs words into lines no longer than width.
//
// Words are taken in order and never split. A slug is closed as soon as
// the next word would push it past width; the final slug is closed at the
// end of input. A word longer than width ends up alone on its line.
// No words means no slugs.
func BuildSlugs(words iter.Seq[string], width int) []string {
	var (
		slugs []string
		cur   slug
	)
	for word := range words {
		if !cur.fits(word, width) {
			slugs = append(slugs, cur.close())
		}
		cur.add(word)
	}
	if !cur.empty() {
		slugs = append(slugs, cur.close())
	}
	return slugs
}
