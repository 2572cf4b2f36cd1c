package french

import "unicode"

// unitSymbolAt reports whether the character at i is a symbol that
// belongs to the number before it and should be bound to it with a
// no-break space: °, %, currency signs, short units (km), short
// all-uppercase currency codes (EUR), or a lone uppercase letter.
func (f *Formatter) unitSymbolAt(rs []rune, i int) bool {
	c := rs[i]
	nextIsLetter := i+1 < len(rs) && unicode.IsLetter(rs[i+1])
	if nextIsLetter {
		switch {
		case c == '°':
			return true
		case unicode.IsUpper(c):
			word := nextWord(rs, i)
			if len(word) > f.ThresholdCurrency {
				return false
			}
			for _, r := range word {
				if !unicode.IsUpper(r) {
					return false
				}
			}
			return true
		case unicode.IsLetter(c):
			return len(nextWord(rs, i)) <= f.ThresholdUnit
		default:
			return false
		}
	}
	switch {
	case !unicode.IsLetter(c) && !unicode.IsSpace(c):
		return true // special symbol such as € or %
	case unicode.IsUpper(c):
		return true // single uppercase letter
	default:
		return false
	}
}

// findClosingDash scans from n for the dash closing an incise, giving
// up when what looks like the end of the sentence arrives first.
// Returns the index of the space before the closing dash, or -1.
func (f *Formatter) findClosingDash(rs []rune, n int) int {
	var word []rune
	for j := n; j < len(rs); j++ {
		switch c := rs[j]; c {
		case '!', '?':
			if isNextUpper(rs, j+1) {
				return -1
			}
		case '-', '–', '—':
			if unicode.IsSpace(rs[j-1]) {
				return j - 1
			}
		case '.':
			if !isNextUpper(rs, j+1) {
				continue
			}
			if len(word) > 0 {
				// A short capitalized word before the period reads as
				// an abbreviation (M. Dupuis), not a sentence end.
				if !unicode.IsUpper(word[0]) || len(word) > f.ThresholdRealWord {
					return -1
				}
			}
		default:
			if unicode.IsSpace(c) {
				word = word[:0]
			} else {
				word = append(word, c)
			}
		}
	}
	return -1
}

// isNextUpper reports whether the first cased character at or after n
// is uppercase.
func isNextUpper(rs []rune, n int) bool {
	for j := n; j < len(rs); j++ {
		c := rs[j]
		switch {
		case unicode.IsUpper(c):
			return true
		case unicode.IsLower(c):
			return false
		}
	}
	return false
}

// nextWord returns the run of non-space characters starting at the
// first letter at or after n.
func nextWord(rs []rune, n int) []rune {
	start := n
	for start < len(rs) && !unicode.IsLetter(rs[start]) {
		start++
	}
	end := start
	for end < len(rs) && !unicode.IsSpace(rs[end]) {
		end++
	}
	return rs[start:end]
}
