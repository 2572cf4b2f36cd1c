package normalize

import "strings"

// Space classes inserted by the spaced-ellipsis rule. The narrow and
// wide no-break constants used by French formatting live in package
// french; only the plain no-break space is needed here.
const noBreakSpace = ' '

// Ellipsis replaces a run of three or more periods with a single
// ellipsis character. The whole run collapses into one mark, so four
// dots still yield a single ellipsis. The spaced form ". . . " is kept
// but its inner spaces become no-break spaces so the mark cannot wrap.
func Ellipsis(s string) string {
	if !strings.Contains(s, "...") && !strings.Contains(s, ". . . ") {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		if rs[i] != '.' {
			b.WriteRune(rs[i])
			i++
			continue
		}
		run := i
		for run < len(rs) && rs[run] == '.' {
			run++
		}
		if run-i >= 3 {
			b.WriteRune('…')
			i = run
			continue
		}
		if spacedEllipsisAt(rs, i) {
			b.WriteByte('.')
			b.WriteRune(noBreakSpace)
			b.WriteByte('.')
			b.WriteRune(noBreakSpace)
			b.WriteByte('.')
			if i+6 < len(rs) && rs[i+6] == '.' {
				// A fourth dot follows; bind it to the others too.
				b.WriteRune(noBreakSpace)
			} else {
				b.WriteByte(' ')
			}
			i += 6
			continue
		}
		for ; i < run; i++ {
			b.WriteByte('.')
		}
	}
	return b.String()
}

func spacedEllipsisAt(rs []rune, i int) bool {
	if i+6 > len(rs) {
		return false
	}
	return rs[i] == '.' && rs[i+1] == ' ' &&
		rs[i+2] == '.' && rs[i+3] == ' ' &&
		rs[i+4] == '.' && rs[i+5] == ' '
}

// Dashes replaces double hyphens with an en dash and triple hyphens
// with an em dash, longest run first. Longer runs are consumed greedily
// three at a time, so four hyphens become an em dash followed by a
// literal hyphen and five become em dash plus en dash.
func Dashes(s string) string {
	if !strings.Contains(s, "--") {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		if rs[i] != '-' {
			b.WriteRune(rs[i])
			i++
			continue
		}
		switch {
		case i+2 < len(rs) && rs[i+1] == '-' && rs[i+2] == '-':
			b.WriteRune('—')
			i += 3
		case i+1 < len(rs) && rs[i+1] == '-':
			b.WriteRune('–')
			i += 2
		default:
			b.WriteByte('-')
			i++
		}
	}
	return b.String()
}

// Guillemets replaces "<<" with an opening guillemet and ">>" with a
// closing one. Useful when the characters are hard to type, but apply
// with care: the same sequences also mean "much less/greater than".
func Guillemets(s string) string {
	if !strings.Contains(s, "<<") && !strings.Contains(s, ">>") {
		return s
	}
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		switch {
		case rs[i] == '<' && i+1 < len(rs) && rs[i+1] == '<':
			b.WriteRune('«')
			i += 2
		case rs[i] == '>' && i+1 < len(rs) && rs[i+1] == '>':
			b.WriteRune('»')
			i += 2
		default:
			b.WriteRune(rs[i])
			i++
		}
	}
	return b.String()
}
