// Package caps converts words written in all uppercase to small-caps
// markup for the target output format. Only words of two or more
// uppercase letters qualify, plus dotted acronyms such as A.W.D; the
// wrapped text is lowercased, so formats that want the first letter
// kept uppercase must handle that themselves.
package caps

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TeX wraps uppercase words in \textsc{...}, lowercased.
func TeX(s string) string {
	return replaceCaps(s, func(word string) string {
		return `\textsc{` + word + `}`
	})
}

// HTML wraps uppercase words in a classed span, lowercased. Style the
// class with font-variant: small-caps.
func HTML(s string) string {
	return replaceCaps(s, func(word string) string {
		return `<span class = "smallcaps">` + word + `</span>`
	})
}

// replaceCaps scans word by word rather than using a regular
// expression: word boundaries must hold for the full Unicode letter
// range (CAFÉ, ÉTÉ), not just ASCII.
func replaceCaps(s string, wrap func(string) string) string {
	if !strings.ContainsFunc(s, unicode.IsUpper) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	lower := cases.Lower(language.Und)

	for i := 0; i < len(rs); {
		if !isWordRune(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		if end := acronymEnd(rs, i); end >= 0 {
			b.WriteString(wrap(lower.String(string(rs[i:end]))))
			i = end
			continue
		}
		end := i
		for end < len(rs) && isWordRune(rs[end]) {
			end++
		}
		word := rs[i:end]
		if isCapsWord(word) {
			b.WriteString(wrap(lower.String(string(word))))
		} else {
			b.WriteString(string(word))
		}
		i = end
	}
	return b.String()
}

// acronymEnd reports where a dotted acronym beginning at i ends, or -1
// when there is none. An acronym is two or more single uppercase
// letters joined by periods (A.W.D); the trailing period, if any, is
// not part of the match. i must sit on a word boundary.
func acronymEnd(rs []rune, i int) int {
	letters := 0
	end := -1
	for j := i; j < len(rs) && unicode.IsUpper(rs[j]); {
		if j+1 < len(rs) && isWordRune(rs[j+1]) {
			break
		}
		letters++
		end = j + 1
		if j+2 < len(rs) && rs[j+1] == '.' && unicode.IsUpper(rs[j+2]) {
			j += 2
			continue
		}
		break
	}
	if letters < 2 {
		return -1
	}
	return end
}

// isCapsWord reports whether word is all uppercase letters, two or
// more. Mixed-case words (BEGINning) and words carrying digits stay
// untouched.
func isCapsWord(word []rune) bool {
	if len(word) < 2 {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
