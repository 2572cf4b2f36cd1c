package escape

import "strings"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// HTML escapes &, < and > with their HTML entities.
//
// This was written for trusted text in a local publishing pipeline; it
// is not a sanitizer and must not be used on untrusted content.
func HTML(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	return htmlReplacer.Replace(s)
}

// TeX escapes the characters LaTeX reserves. A double hyphen gets an
// empty group between the hyphens so TeX does not collapse it into a
// ligature; the lookahead makes this a manual scan rather than a
// Replacer table.
func TeX(s string) string {
	if !strings.ContainsAny(s, `&%$#_{}[]~^\-`) {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)
	for i, c := range rs {
		switch c {
		case '-':
			if i+1 < len(rs) && rs[i+1] == '-' {
				b.WriteString("-{}")
			} else {
				b.WriteByte('-')
			}
		case '&':
			b.WriteString(`\&`)
		case '%':
			b.WriteString(`\%`)
		case '$':
			b.WriteString(`\$`)
		case '#':
			b.WriteString(`\#`)
		case '_':
			b.WriteString(`\_`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '[':
			b.WriteString(`{[}`)
		case ']':
			b.WriteString(`{]}`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		case '\\':
			b.WriteString(`\textbackslash{}`)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Quotes flattens double quotes to single quotes, for targets where a
// double quote would terminate an attribute or string.
func Quotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	return strings.ReplaceAll(s, `"`, `'`)
}
