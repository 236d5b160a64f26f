package define

import "unicode/utf8"

// MaxLabelLength is Discord's limit for select labels, descriptions and
// autocomplete choice names.
const MaxLabelLength = 100

const ellipsis = "…"

// truncate cuts s to max characters, the last one being an ellipsis.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + ellipsis
}
