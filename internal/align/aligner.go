package align

import (
	"log/slog"
	"strings"

	"github.com/shinji-kodama/align/internal/model"
)

// asciiSpace is the whitespace trimmed from a line before it is inspected.
const asciiSpace = " \t\n\v\f\r"

// passThroughMarkers are the leading characters that mark a line as
// markup: table rows, list items and headings.
const passThroughMarkers = "|*-#"

// Aligner reformats lines to a fixed width using one alignment mode.
// Its fields are read-only once processing starts.
type Aligner struct {
	// Width is the target column count. Must be at least 1.
	Width int

	// Mode selects the per-slug post-processing.
	Mode model.Alignment

	// Logger receives debug diagnostics. Nil disables logging.
	Logger *slog.Logger
}

// New returns an Aligner for the given width and mode without logging.
func New(width int, mode model.Alignment) *Aligner {
	return &Aligner{Width: width, Mode: mode}
}

// AlignLine reformats a single line with a throwaway Aligner.
func AlignLine(line string, width int, mode model.Alignment) string {
	return New(width, mode).AlignLine(line)
}

// IsPassThrough reports whether line must be emitted verbatim: it is blank,
// or its first non-whitespace character is one of '|', '*', '-' or '#'.
func IsPassThrough(line string) bool {
	trimmed := strings.Trim(line, asciiSpace)
	return trimmed == "" || strings.IndexByte(passThroughMarkers, trimmed[0]) >= 0
}

// AlignLine wraps line into slugs of at most a.Width columns, applies the
// alignment mode and joins the slugs with "\n". Pass-through lines are
// returned unchanged, including their original surrounding whitespace.
func (a *Aligner) AlignLine(line string) string {
	if IsPassThrough(line) {
		return line
	}

	trimmed := strings.Trim(line, asciiSpace)
	slugs := BuildSlugs(Tokenize(trimmed, DefaultDelimiters), a.Width)

	last := len(slugs) - 1
	for i, s := range slugs {
		slugs[i] = a.finish(s, i, i == last)
	}
	return strings.Join(slugs, "\n")
}

// finish applies the mode-specific post-processing to the slug at index i.
func (a *Aligner) finish(s string, i int, last bool) string {
	switch a.Mode {
	case model.AlignRight:
		return RightSlug(s, a.Width)
	case model.AlignCenter:
		return CenterSlug(s, a.Width)
	case model.AlignJustify:
		if last {
			return s
		}
		out, ok := justify(s, a.Width, slugDirection(i))
		if !ok && a.Logger != nil {
			a.Logger.Debug("justify gave up before reaching width",
				slog.Int("slug", i),
				slog.Int("width", a.Width),
				slog.Int("length", len(out)))
		}
		return out
	default:
		return s
	}
}

// slugDirection alternates the justification scan direction so that extra
// spaces are spread across both sides of a paragraph.
func slugDirection(i int) Direction {
	if i%2 == 1 {
		return FromEnd
	}
	return FromStart
}
