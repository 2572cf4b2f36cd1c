package normalize

import (
	"strings"
	"unicode"
)

// Whitespace replaces every maximal run of whitespace code points with
// a single ASCII space. Leading and trailing whitespace is preserved as
// one space each rather than trimmed, since it can carry meaning for
// callers joining fragments; trim separately when unwanted.
func Whitespace(s string) string {
	if !needsCollapse(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return b.String()
}

func needsCollapse(s string) bool {
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if prevSpace || r != ' ' {
				return true
			}
			prevSpace = true
			continue
		}
		prevSpace = false
	}
	return false
}
