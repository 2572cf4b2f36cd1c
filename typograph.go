// Package typograph turns loosely typed prose into typographically
// correct text: it collapses whitespace, substitutes ellipses, dashes
// and guillemets, replaces straight quotes with directional ones, and
// can apply French no-break spacing rules. Escaping the result for a
// target format (HTML, LaTeX) is the separate package escape.
//
// Every operation is a pure function from string to string, with
// behavior selected by an explicit Config value; nothing is stored
// between calls, so one Config may back any number of concurrent
// calls.
//
//	cfg := typograph.DefaultConfig()
//	s := typograph.Format(`Some "quoted string" -- and more...`, cfg)
//	// s == "Some “quoted string” – and more…"
package typograph

import (
	"typograph/french"
	"typograph/normalize"
	"typograph/quotes"
)

// DefaultQuoteThreshold is how far, in code points, the quote
// classifier scans for the closing half of an ambiguous quote before
// falling back to adjacency rules.
const DefaultQuoteThreshold = 20

// Config selects which substitutions run and tunes the quote
// classifier. It is a plain immutable value: construct one, pass it
// into each call. The zero value disables every substitution.
type Config struct {
	// Quotes enables the quote-direction classifier.
	Quotes bool
	// Ellipsis enables replacing runs of periods with "…".
	Ellipsis bool
	// Dashes enables replacing -- and --- with en and em dashes.
	Dashes bool
	// Guillemets enables replacing << and >> with « and ».
	Guillemets bool
	// QuoteThreshold bounds the classifier's pairing scan, in code
	// points. 0 disables pairing, leaving ambiguous quotes untouched.
	QuoteThreshold int
}

// DefaultConfig enables every substitution with the default quote
// threshold.
func DefaultConfig() Config {
	return Config{
		Quotes:         true,
		Ellipsis:       true,
		Dashes:         true,
		Guillemets:     true,
		QuoteThreshold: DefaultQuoteThreshold,
	}
}

// NormalizeWhitespace collapses every run of whitespace to a single
// space without trimming the ends.
func NormalizeWhitespace(s string) string {
	return normalize.Whitespace(s)
}

// CleanPunctuation applies the fixed punctuation substitutions enabled
// in cfg: ellipsis, dashes, guillemets. Disabled rules are full
// pass-throughs.
func CleanPunctuation(s string, cfg Config) string {
	if cfg.Ellipsis {
		s = normalize.Ellipsis(s)
	}
	if cfg.Dashes {
		s = normalize.Dashes(s)
	}
	if cfg.Guillemets {
		s = normalize.Guillemets(s)
	}
	return s
}

// ClassifyQuotes replaces straight quotes with directional quotation
// marks when cfg.Quotes is set; otherwise the input passes through
// unchanged.
func ClassifyQuotes(s string, cfg Config) string {
	if !cfg.Quotes {
		return s
	}
	return quotes.Classify(s, cfg.QuoteThreshold)
}

// FormatFrench applies French spacing rules and returns the display
// variant with actual no-break space code points. The quote classifier
// runs first when cfg.Quotes is set; when it is not, straight quotes
// pass through and guillemet spacing applies only to guillemets already
// in the input.
func FormatFrench(s string, cfg Config) string {
	return french.New().Format(ClassifyQuotes(s, cfg))
}

// FormatFrenchMarkup is FormatFrench with the inserted no-break space
// classes rendered through the caller-supplied escaper, for targets
// where a raw no-break space code point needs escaping of its own. Only
// the spacing tokens are escaped, never the surrounding text.
func FormatFrenchMarkup(s string, cfg Config, escapeSpace func(rune) string) string {
	return french.New().FormatWith(ClassifyQuotes(s, cfg), escapeSpace)
}

// Format runs the full normalization pipeline: whitespace collapsing,
// punctuation cleanup, then quote classification. French spacing and
// format escaping are separate, caller-sequenced steps.
func Format(s string, cfg Config) string {
	s = NormalizeWhitespace(s)
	s = CleanPunctuation(s, cfg)
	return ClassifyQuotes(s, cfg)
}
