package quotes

import "unicode"

// charClass orders the contexts a quote can sit between. The ordering
// matters: an opening quote has a "lighter" character before it than
// after it (whitespace before, a word after), so prev < next reads as
// "opening". Start and end of text classify as whitespace.
type charClass int

const (
	classWhitespace charClass = iota
	classPunctuation
	classAlphanumeric
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsLetter(r) || unicode.IsNumber(r):
		return classAlphanumeric
	case unicode.IsSpace(r):
		return classWhitespace
	default:
		return classPunctuation
	}
}
