package l33t

import (
	"testing"

	"github.com/rsilva/zxcvbn/internal/match"
)

func findL33t(t *testing.T, matches []match.Match, token string) *match.DictionaryData {
	t.Helper()
	for _, m := range matches {
		if m.Token == token {
			return m.Data.Dictionary
		}
	}
	t.Fatalf("no l33t match found for token %q in %+v", token, matches)
	return nil
}

// "pa$$w0rd" -> Dictionary match with l33t present, l33t_subs = {'$':
// "s", '0': "o"}.
func TestMatchUnambiguousSubstitutions(t *testing.T) {
	d := findL33t(t, Match("pa$$w0rd", nil), "pa$$w0rd")
	if d.MatchedWord != "password" {
		t.Fatalf("matched_word = %q, want %q", d.MatchedWord, "password")
	}
	if d.L33t == nil {
		t.Fatal("expected L33t data to be set")
	}
	want := map[rune]rune{'$': 's', '0': 'o'}
	if len(d.L33t.Subs) != len(want) {
		t.Fatalf("subs = %v, want %v", d.L33t.Subs, want)
	}
	for sym, letter := range want {
		if got := d.L33t.Subs[sym]; got != letter {
			t.Fatalf("subs[%q] = %q, want %q", sym, got, letter)
		}
	}
}

func TestMatchAmbiguousSubstitutionEnumeratesBothReadings(t *testing.T) {
	// '1' can stand for 'i' or 'l'; "l1on" should still resolve to "lion"
	// via the 'i' reading without requiring every symbol to be ambiguous.
	matches := Match("l1on", nil)
	d := findL33t(t, matches, "l1on")
	if d.MatchedWord != "lion" {
		t.Fatalf("matched_word = %q, want %q", d.MatchedWord, "lion")
	}
}

func TestMatchNoSubstitutionNoL33tHit(t *testing.T) {
	for _, m := range Match("password", nil) {
		if m.Data.Dictionary != nil && m.Data.Dictionary.L33t != nil {
			t.Fatalf("plain dictionary word should not produce an l33t hit: %+v", m)
		}
	}
}
