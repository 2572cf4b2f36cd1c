// Package quotes implements the quote-direction classifier: a single
// left-to-right pass that decides, for each straight quote character,
// whether it opens or closes a quoted span and substitutes the matching
// directional mark.
//
// The classifier is heuristic. It prefers leaving a straight quote
// untouched over emitting a wrong direction, so genuinely ambiguous
// occurrences pass through unchanged. All classifier state lives in
// locals scoped to one call; nothing is shared between calls.
package quotes
