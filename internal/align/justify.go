package align

// Rule is one justification step: every match of Pattern may be widened
// into Expansion, which is Pattern with one extra space after its delimiter.
type Rule struct {
	Pattern   string
	Expansion string
}

// justifyRules are tried in this order, wrapping around. Sentence breaks
// are widened first and plain word gaps last.
var justifyRules = [...]Rule{
	{Pattern: ". ", Expansion: ".  "},
	{Pattern: "; ", Expansion: ";  "},
	{Pattern: ", ", Expansion: ",  "},
	{Pattern: " ", Expansion: "  "},
}

// JustifyRules returns a copy of the justification rule table in priority
// order.
func JustifyRules() []Rule {
	return append([]Rule(nil), justifyRules[:]...)
}

// JustifySlug widens the interior spacing of s until it is width bytes
// long. Slugs that are already at least width long are returned unchanged.
//
// If s cannot be widened (a single word, for instance) the best-effort
// result is returned, which may be shorter than width.
func JustifySlug(s string, width int, dir Direction) string {
	out, _ := justify(s, width, dir)
	return out
}

// justify is JustifySlug that also reports whether width was reached.
//
// The loop stops when padding runs out, when a full round over the rule
// table changes nothing, or after maxJustifySteps rule applications.
func justify(s string, width int, dir Direction) (string, bool) {
	padding := width - len(s)
	if padding <= 0 {
		return s, true
	}

	roundStart := len(s)
	for step := 0; step < maxJustifySteps(width); step++ {
		r := justifyRules[step%len(justifyRules)]
		s = Replace(s, r.Pattern, r.Expansion, padding, dir)
		padding = width - len(s)
		if padding <= 0 {
			return s, true
		}

		if (step+1)%len(justifyRules) == 0 {
			if len(s) == roundStart {
				return s, false
			}
			roundStart = len(s)
		}
	}
	return s, false
}

// maxJustifySteps bounds the number of rule applications for one slug.
// Every productive round adds at least one byte, so width+1 rounds are
// always enough to finish.
func maxJustifySteps(width int) int {
	return len(justifyRules) * (width + 1)
}
