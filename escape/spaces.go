package escape

import (
	"strings"

	"typograph/french"
)

// NBSpaces escapes the no-break space classes the french formatter
// inserts with HTML entities wrapped in classed spans, so a font or
// browser without narrow no-break support still renders something
// sensible. For the narrow space to actually prevent wrapping, style
// the class with:
//
//	.nnbsp {
//	    white-space: nowrap;
//	}
func NBSpaces(s string) string {
	if !containsNBSpace(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for _, r := range s {
		b.WriteString(SpaceHTML(r))
	}
	return b.String()
}

// NBSpacesTeX replaces every no-break space class with the LaTeX
// tie "~".
func NBSpacesTeX(s string) string {
	if !containsNBSpace(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteString(SpaceTeX(r))
	}
	return b.String()
}

// SpaceHTML is the per-rune form of NBSpaces, suitable for passing to
// french.Formatter.FormatWith. Runes outside the no-break classes come
// back unchanged.
func SpaceHTML(r rune) string {
	switch r {
	case french.NarrowNoBreakSpace:
		return `<span class = "nnbsp">&#8201;</span>`
	case french.EnSpace:
		return `<span class = "ensp">&#8194;</span>`
	case french.NoBreakSpace:
		return `<span class = "nbsp">&#160;</span>`
	}
	return string(r)
}

// SpaceTeX is the per-rune form of NBSpacesTeX.
func SpaceTeX(r rune) string {
	switch r {
	case french.NoBreakSpace, french.NarrowNoBreakSpace, french.EnSpace:
		return "~"
	}
	return string(r)
}

func containsNBSpace(s string) bool {
	return strings.ContainsAny(s, "   ")
}
