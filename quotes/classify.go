package quotes

import (
	"strings"
	"unicode"
)

// Directional marks substituted for straight quotes.
const (
	openDouble  = '“'
	closeDouble = '”'
	openSingle  = '‘'
	closeSingle = '’' // also the apostrophe glyph
)

// Classify replaces qualifying straight quotes in s with directional
// quotation marks. threshold bounds, in code points, how far the
// pairing heuristic may scan forward for the closing half of an
// ambiguous quote; 0 disables pairing entirely, leaving ambiguous
// quotes untouched. Double and single quotes keep independent pairing
// state, and strict nesting is never enforced.
//
// Double quotes classify well from their neighbours alone. Single
// quotes are harder, since an apostrophe and a closing single quote
// share a glyph: a quote flanked by word characters is always rendered
// as an apostrophe, and a quote that looks like an opening one is only
// committed as such when a plausible closing partner exists within the
// threshold.
func Classify(s string, threshold int) string {
	if !strings.ContainsAny(s, `"'`) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	openDoubles := 0
	var pending []int // positions already committed as closing singles

	for i, c := range rs {
		switch c {
		case '"':
			b.WriteRune(classifyDouble(rs, i, &openDoubles, threshold))
		case '\'':
			if k := indexOf(pending, i); k >= 0 {
				pending = append(pending[:k], pending[k+1:]...)
				b.WriteRune(closeSingle)
				continue
			}
			r, closing := classifySingle(rs, i, len(pending) > 0, pending, threshold)
			if closing >= 0 {
				pending = append(pending, closing)
			}
			b.WriteRune(r)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func classifyDouble(rs []rune, i int, open *int, threshold int) rune {
	prev, next := neighbours(rs, i)
	switch {
	case prev < next:
		*open++
		return openDouble
	case *open > 0:
		*open--
		return closeDouble
	case prev == next && findClosingQuote(rs, i, '"', threshold, nil) >= 0:
		*open++
		return openDouble
	default:
		return '"'
	}
}

func classifySingle(rs []rune, i int, hasOpen bool, pending []int, threshold int) (rune, int) {
	prev, next := neighbours(rs, i)
	switch {
	case prev == classAlphanumeric && next == classAlphanumeric:
		// Contraction or possessive: a plain apostrophe, never a quote.
		return closeSingle, -1
	case prev < next:
		if threshold <= 0 {
			// Pairing disabled: not enough context to tell an opening
			// quote from an elision apostrophe, so leave it alone.
			return '\'', -1
		}
		if j := findClosingQuote(rs, i, '\'', threshold, pending); j >= 0 {
			if hasOpen {
				return closeSingle, j
			}
			return openSingle, j
		}
		// No partner in range; assume elision ('mam, '60s).
		return closeSingle, -1
	case prev > next:
		return closeSingle, -1
	default:
		return '\'', -1
	}
}

// findClosingQuote scans forward for a straight quote that plausibly
// closes a span opened at i: preceded by a non-space and followed by a
// non-word character or the end of text. Positions already committed as
// closings are skipped.
func findClosingQuote(rs []rune, i int, quote rune, threshold int, pending []int) int {
	for j := i + 1; j < len(rs) && j-i <= threshold; j++ {
		if rs[j] != quote || committed(pending, j) {
			continue
		}
		if unicode.IsSpace(rs[j-1]) {
			continue
		}
		if j == len(rs)-1 || classOf(rs[j+1]) != classAlphanumeric {
			return j
		}
	}
	return -1
}

func committed(pending []int, j int) bool {
	return indexOf(pending, j) >= 0
}

func indexOf(pending []int, j int) int {
	for k, p := range pending {
		if p == j {
			return k
		}
	}
	return -1
}

func neighbours(rs []rune, i int) (prev, next charClass) {
	prev, next = classWhitespace, classWhitespace
	if i > 0 {
		prev = classOf(rs[i-1])
	}
	if i < len(rs)-1 {
		next = classOf(rs[i+1])
	}
	return prev, next
}
