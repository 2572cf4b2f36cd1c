package typograph_test

import (
	"sync"
	"testing"

	"typograph"
	"typograph/escape"
)

func TestFormatPipeline(t *testing.T) {
	in := "Some 'text' whose formatting    could be enhanced..."
	want := "Some ‘text’ whose formatting could be enhanced…"
	if got := typograph.Format(in, typograph.DefaultConfig()); got != want {
		t.Fatalf("Format(%q) = %q, want %q", in, got, want)
	}
}

func TestFormatZeroConfigOnlyCollapsesWhitespace(t *testing.T) {
	in := `keep "quotes",   dots... and <<marks>>`
	want := `keep "quotes", dots... and <<marks>>`
	if got := typograph.Format(in, typograph.Config{}); got != want {
		t.Fatalf("Format(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanPunctuationToggles(t *testing.T) {
	in := "wait... -- <<here>>"

	cfg := typograph.DefaultConfig()
	if got := typograph.CleanPunctuation(in, cfg); got != "wait… – «here»" {
		t.Fatalf("all rules: got %q", got)
	}

	cfg.Ellipsis = false
	if got := typograph.CleanPunctuation(in, cfg); got != "wait... – «here»" {
		t.Fatalf("ellipsis off: got %q", got)
	}

	cfg = typograph.Config{Dashes: true}
	if got := typograph.CleanPunctuation(in, cfg); got != "wait... – <<here>>" {
		t.Fatalf("dashes only: got %q", got)
	}
}

func TestCleanPunctuationIdempotent(t *testing.T) {
	cfg := typograph.DefaultConfig()
	inputs := []string{
		"wait... -- <<here>>",
		"foo----bar",
		"foo. . . .",
	}
	for _, in := range inputs {
		once := typograph.CleanPunctuation(in, cfg)
		if twice := typograph.CleanPunctuation(once, cfg); twice != once {
			t.Fatalf("CleanPunctuation not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestClassifyQuotesDisabled(t *testing.T) {
	in := `"foo"`
	cfg := typograph.DefaultConfig()
	cfg.Quotes = false
	if got := typograph.ClassifyQuotes(in, cfg); got != in {
		t.Fatalf("disabled classifier changed input: %q", got)
	}
}

func TestFormatFrench(t *testing.T) {
	cfg := typograph.DefaultConfig()

	in := `il répondit: "oui"`
	want := "il répondit : “oui”"
	if got := typograph.FormatFrench(in, cfg); got != want {
		t.Fatalf("FormatFrench(%q) = %q, want %q", in, got, want)
	}
}

func TestFormatFrenchMarkup(t *testing.T) {
	cfg := typograph.DefaultConfig()

	got := typograph.FormatFrenchMarkup("Bonjour!", cfg, escape.SpaceTeX)
	if got != "Bonjour~!" {
		t.Fatalf("FormatFrenchMarkup = %q, want %q", got, "Bonjour~!")
	}
}

func TestFormatConcurrentConfigs(t *testing.T) {
	in := "Some 'text' whose formatting    could be enhanced..."

	full := typograph.DefaultConfig()
	bare := typograph.Config{Dashes: true}
	wantFull := typograph.Format(in, full)
	wantBare := typograph.Format(in, bare)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := typograph.Format(in, full); got != wantFull {
					t.Errorf("concurrent Format = %q, want %q", got, wantFull)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := typograph.Format(in, bare); got != wantBare {
					t.Errorf("concurrent Format = %q, want %q", got, wantBare)
					return
				}
			}
		}()
	}
	wg.Wait()
}
