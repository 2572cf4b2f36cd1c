package quotes_test

import (
	"testing"

	"typograph/quotes"
)

const defaultThreshold = 20

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"isolated quotes untouched", "Some string without ' typographic ' quotes", "Some string without ' typographic ' quotes"},
		{"double pair", `"foo"`, "“foo”"},
		{"single pair", "'foo'", "‘foo’"},
		{"leading elision", "'mam, how are you?", "’mam, how are you?"},
		{"quoted characters", "some char: 'c', '4', '&'", "some char: ‘c’, ‘4’, ‘&’"},
		{"contraction and pair", "It's a good day to say 'hi'", "It’s a good day to say ‘hi’"},
		{"decade elision", "The '60s were nice, weren't they?", "The ’60s were nice, weren’t they?"},
		{"trailing possessive", "Plurals' possessive", "Plurals’ possessive"},
		{"nested with elision", `"I like 'That '70s show'", she said`, "“I like ‘That ’70s show’”, she said"},
		{"quoted punctuation", "some char: '!', '?', ','", "some char: ‘!’, ‘?’, ‘,’"},
		{"quotes after closing double", `Enhanced "quotes"'s heuristics`, "Enhanced “quotes”’s heuristics"},
		{"double within dashes", `A quote--"within" dashes--would be nice.`, "A quote--“within” dashes--would be nice."},
		{"paired doubles and singles", `Some "quoted string" and 'another one'.`, "Some “quoted string” and ‘another one’."},
		{"accented contraction", "l'été de l'année", "l’été de l’année"},
		{"multibyte neighbours", `"élan" était sûr`, "“élan” était sûr"},
		{"digit neighbours", "a '4' b", "a ‘4’ b"},
		{"empty", "", ""},
		{"no quotes", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quotes.Classify(tt.in, defaultThreshold); got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyNestedLongSpan(t *testing.T) {
	in := `"'Let's try "nested" quotes,' he said."`

	// The opening single's partner sits 27 code points away, so the
	// default scan distance treats it as an elision apostrophe while a
	// wider scan pairs it.
	want := "“’Let’s try “nested” quotes,’ he said.”"
	if got := quotes.Classify(in, defaultThreshold); got != want {
		t.Fatalf("Classify(%q, %d) = %q, want %q", in, defaultThreshold, got, want)
	}

	want = "“‘Let’s try “nested” quotes,’ he said.”"
	if got := quotes.Classify(in, 40); got != want {
		t.Fatalf("Classify(%q, 40) = %q, want %q", in, got, want)
	}
}

func TestClassifyZeroThresholdDisablesPairing(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ambiguous single left alone", "'foo'", "'foo’"},
		{"contraction still classified", "It's fine", "It’s fine"},
		{"possessive still classified", "Plurals' possessive", "Plurals’ possessive"},
		{"doubles unaffected", `"foo"`, "“foo”"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quotes.Classify(tt.in, 0); got != tt.want {
				t.Fatalf("Classify(%q, 0) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyThresholdBoundsScan(t *testing.T) {
	// Partner at distance 4: paired at threshold 4, elision below it.
	in := "'abc' x"
	if got := quotes.Classify(in, 4); got != "‘abc’ x" {
		t.Fatalf("Classify(%q, 4) = %q, want %q", in, got, "‘abc’ x")
	}
	if got := quotes.Classify(in, 3); got != "’abc’ x" {
		t.Fatalf("Classify(%q, 3) = %q, want %q", in, got, "’abc’ x")
	}
}
