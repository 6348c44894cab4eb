package optimizer

import (
	"testing"

	"github.com/rsilva/zxcvbn/internal/match"
)

func TestOptimizeEmptyPassword(t *testing.T) {
	r := Optimize("", nil)
	if r.Guesses != 1 {
		t.Errorf("Guesses = %d, want 1", r.Guesses)
	}
}

func TestOptimizePrefersDictionaryOverBruteforce(t *testing.T) {
	password := "password"
	m := match.Match{
		Pattern: match.PatternDictionary,
		Start:   0,
		End:     7,
		Token:   password,
		Data:    match.Data{Dictionary: &match.DictionaryData{Rank: 1}},
	}
	r := Optimize(password, []match.Match{m})

	if len(r.Sequence) != 1 {
		t.Fatalf("expected a single-match sequence, got %d matches", len(r.Sequence))
	}
	if r.Sequence[0].Pattern != match.PatternDictionary {
		t.Errorf("expected the dictionary match to win over bruteforce, got %s", r.Sequence[0].Pattern)
	}
	if r.Guesses != 1 {
		t.Errorf("Guesses = %d, want 1 for a rank-1 whole-password dictionary hit", r.Guesses)
	}
}

func TestOptimizeCoversEntirePasswordWithBruteforceFallback(t *testing.T) {
	password := "x7q"
	r := Optimize(password, nil)

	total := 0
	for _, m := range r.Sequence {
		total += m.End - m.Start + 1
	}
	if total != len(password) {
		t.Errorf("sequence covers %d runes, want %d", total, len(password))
	}
	for _, m := range r.Sequence {
		if m.Pattern != match.PatternBruteforce {
			t.Errorf("expected only bruteforce matches with no candidates, got %s", m.Pattern)
		}
	}
}

func TestOptimizeSequenceIsContiguousAndNonOverlapping(t *testing.T) {
	password := "abcpassword123"
	m := match.Match{
		Pattern: match.PatternDictionary,
		Start:   3,
		End:     10,
		Token:   "password",
		Data:    match.Data{Dictionary: &match.DictionaryData{Rank: 1}},
	}
	r := Optimize(password, []match.Match{m})

	prevEnd := -1
	for _, mm := range r.Sequence {
		if mm.Start != prevEnd+1 {
			t.Errorf("gap or overlap: previous end %d, next start %d", prevEnd, mm.Start)
		}
		prevEnd = mm.End
	}
	if prevEnd != len(password)-1 {
		t.Errorf("sequence ends at %d, want %d", prevEnd, len(password)-1)
	}
}

func TestOptimizeFillsSingleTrailingBruteforceCharacter(t *testing.T) {
	// "passwordx": a rank-1 dictionary hit over [0,7] plus one leftover
	// character at the end must combine into dictionary+single-char
	// bruteforce, not fall back to a whole-string bruteforce run.
	password := "passwordx"
	m := match.Match{
		Pattern: match.PatternDictionary,
		Start:   0,
		End:     7,
		Token:   "password",
		Data:    match.Data{Dictionary: &match.DictionaryData{Rank: 1}},
	}
	r := Optimize(password, []match.Match{m})

	if len(r.Sequence) != 2 {
		t.Fatalf("expected dictionary match + single trailing bruteforce char, got %d matches: %+v", len(r.Sequence), r.Sequence)
	}
	last := r.Sequence[len(r.Sequence)-1]
	if last.Pattern != match.PatternBruteforce || last.Start != 8 || last.End != 8 {
		t.Fatalf("expected a single bruteforce char at [8,8], got %+v", last)
	}
	if r.Guesses >= 1e8 {
		t.Errorf("Guesses = %d, should be far below a whole-string bruteforce estimate", r.Guesses)
	}
}
