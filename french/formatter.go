package french

import (
	"strings"
	"unicode"

	"typograph/normalize"
)

// Space classes used by French typography. Callers supplying a space
// escaper to FormatWith receive exactly these runes.
const (
	// NoBreakSpace binds guillemets to their content and incise dashes
	// to the surrounding sentence.
	NoBreakSpace = ' '
	// NarrowNoBreakSpace precedes : ; ! ? and separates number groups.
	NarrowNoBreakSpace = ' '
	// EnSpace follows a dialog dash at the start of a line.
	EnSpace = ' '
)

// Formatter holds the tunable guesses the spacing rules rely on. The
// zero value disables the guessing entirely; New returns the defaults.
type Formatter struct {
	// ThresholdCurrency is the maximum length of an all-uppercase word
	// still assumed to be a currency code after a number (EUR, not
	// BALLES). Default 3.
	ThresholdCurrency int
	// ThresholdUnit is the maximum length of a lowercase word still
	// assumed to be a unit after a number (km, not euros). Default 2.
	ThresholdUnit int
	// ThresholdRealWord is the maximum length of a capitalized word
	// still assumed to be an abbreviation (M. Dupuis) rather than the
	// end of a sentence, when scanning for a closing incise dash.
	// Default 3.
	ThresholdRealWord int
}

// New returns a Formatter with default thresholds.
func New() *Formatter {
	return &Formatter{
		ThresholdCurrency: 3,
		ThresholdUnit:     2,
		ThresholdRealWord: 3,
	}
}

// Format applies French spacing rules and returns the display variant,
// with actual no-break space code points inserted. Whitespace runs are
// collapsed first. Existing no-break spaces of the correct class are
// left alone; the formatter never stacks spaces.
func (f *Formatter) Format(s string) string {
	s = normalize.Whitespace(s)

	hasTrouble := strings.ContainsAny(s, "?!;:«»—–")
	hasDigit := strings.ContainsAny(s, "0123456789")
	if !hasTrouble && !hasDigit {
		return s
	}

	rs := []rune(s)
	if hasDigit {
		f.spaceNumbers(rs)
	}
	if hasTrouble {
		f.spacePunctuation(rs)
		rs = f.insertMissing(rs)
	}
	return string(rs)
}

// FormatWith applies Format, then renders every no-break space class in
// the result through esc. Only the space tokens are escaped; the rest
// of the text passes through untouched, so callers remain free to run a
// full format escaper before or after. A nil esc is the identity.
func (f *Formatter) FormatWith(s string, esc func(rune) string) string {
	s = f.Format(s)
	if esc == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case NoBreakSpace, NarrowNoBreakSpace, EnSpace:
			b.WriteString(esc(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatTeX is FormatWith rendering every no-break space class as the
// LaTeX tie "~".
func (f *Formatter) FormatTeX(s string) string {
	return f.FormatWith(s, func(rune) string { return "~" })
}

// spaceNumbers makes spaces inside number series no-break: between
// digit groups (10 000) and before a unit or currency symbol (50 km,
// 10 000 €). Mutates rs in place.
func (f *Formatter) spaceNumbers(rs []rune) {
	inNumber := false
	for i := 0; i+1 < len(rs); i++ {
		c, next := rs[i], rs[i+1]
		switch {
		case c >= '0' && c <= '9':
			if i == 0 || !unicode.IsLetter(rs[i-1]) {
				inNumber = true
			}
		case unicode.IsSpace(c):
			if inNumber && (unicode.IsDigit(next) || f.unitSymbolAt(rs, i+1)) {
				rs[i] = NarrowNoBreakSpace
			}
		default:
			inNumber = false
		}
	}
}

// spacePunctuation converts existing plain spaces around trouble
// punctuation to the proper no-break class, and handles dash spacing.
// Mutates rs in place; insertion of missing spaces happens afterwards
// in insertMissing.
func (f *Formatter) spacePunctuation(rs []rune) {
	for i := 0; i+1 < len(rs); i++ {
		c, next := rs[i], rs[i+1]
		if isSpaceChar(c) {
			switch next {
			case '?', '!', ';', ':':
				rs[i] = NarrowNoBreakSpace
			case '»':
				if c == ' ' {
					// A space that is already non-breaking was put
					// there deliberately; keep it.
					rs[i] = NoBreakSpace
				}
			}
			continue
		}
		switch c {
		case '«':
			if isSpaceChar(next) {
				rs[i+1] = NoBreakSpace
			}
		case '—', '–', '-':
			if !isSpaceChar(next) {
				continue
			}
			switch {
			case i <= 1:
				// Dialog dash at line start.
				rs[i+1] = EnSpace
			case rs[i-1] == NoBreakSpace:
				// Closing dash of an incise: bound on its left, so the
				// space after it may break.
				rs[i+1] = ' '
			default:
				if closing := f.findClosingDash(rs, i+1); closing >= 0 {
					rs[closing] = NoBreakSpace
				}
				rs[i+1] = NoBreakSpace
			}
		}
	}
}

// insertMissing adds the no-break space the rules call for when the
// input had no space at all next to the mark: before : ; ! ? (narrow)
// and inside guillemets (full). Times and URLs stay intact because
// insertion before : ; ! ? only happens when the mark ends a word, and
// punctuation clusters like ?! get a single space before the cluster.
func (f *Formatter) insertMissing(rs []rune) []rune {
	out := make([]rune, 0, len(rs)+4)
	for i, c := range rs {
		switch c {
		case '?', '!', ';', ':':
			if wantsSpaceBefore(out) && !isHighPunct(last(out)) && last(out) != '«' && clusterEnds(rs, i) {
				out = append(out, NarrowNoBreakSpace)
			}
			out = append(out, c)
		case '»':
			if wantsSpaceBefore(out) && last(out) != '«' && last(out) != '»' {
				out = append(out, NoBreakSpace)
			}
			out = append(out, c)
		case '«':
			out = append(out, c)
			if i+1 < len(rs) && !isSpaceChar(rs[i+1]) && rs[i+1] != '«' {
				out = append(out, NoBreakSpace)
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

// clusterEnds reports whether the mark at i is the tail of its
// punctuation cluster for insertion purposes: followed by whitespace,
// end of text, or more high punctuation. A colon inside 14:30 or
// http:// fails this test and gets no inserted space.
func clusterEnds(rs []rune, i int) bool {
	if i+1 >= len(rs) {
		return true
	}
	next := rs[i+1]
	return isSpaceChar(next) || unicode.IsSpace(next) || isHighPunct(next) || next == '»'
}

func wantsSpaceBefore(out []rune) bool {
	return len(out) > 0 && !isSpaceChar(last(out))
}

func last(out []rune) rune {
	if len(out) == 0 {
		return 0
	}
	return out[len(out)-1]
}

func isHighPunct(r rune) bool {
	return r == '?' || r == '!' || r == ';' || r == ':'
}

// isSpaceChar matches the space classes the formatter manages. Tabs and
// newlines are deliberately excluded; whitespace collapsing has already
// dealt with them.
func isSpaceChar(r rune) bool {
	return r == ' ' || r == NoBreakSpace || r == NarrowNoBreakSpace || r == EnSpace
}
