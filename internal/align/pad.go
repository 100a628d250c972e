package align

import "strings"

// RightSlug prepends spaces so that s ends at column width.
// A slug already at or beyond width is returned unchanged.
func RightSlug(s string, width int) string {
	padding := width - len(s)
	if padding <= 0 {
		return s
	}
	return strings.Repeat(" ", padding) + s
}

// CenterSlug pads s on both sides to width. The left side gets
// floor(padding/2) spaces and the right side gets the rest.
func CenterSlug(s string, width int) string {
	padding := width - len(s)
	if padding <= 0 {
		return s
	}
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
