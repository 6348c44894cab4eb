// Package l33t undoes leetspeak substitutions ('@' for 'a', '0' for 'o',
// ...) before handing the result to the dictionary matcher, so that
// "p4ssw0rd" is recognized as "password" with substitutions noted.
package l33t

import (
	"fmt"
	"strings"

	"github.com/rsilva/zxcvbn/internal/data"
	"github.com/rsilva/zxcvbn/internal/match"
	"github.com/rsilva/zxcvbn/internal/matchers/dictionary"
)

// Match finds Dictionary matches hidden behind leetspeak substitutions.
//
// Symbols with exactly one possible letter (e.g. '@' can only mean 'a')
// are substituted unconditionally. Symbols that are ambiguous between
// several letters (e.g. '1' could mean 'i' or 'l') are resolved by
// enumerating every injective assignment of ambiguous symbols to
// letters and running the dictionary matcher once per assignment, so
// every reading of an ambiguous password is considered exactly once.
func Match(password string, userWords []string) []match.Match {
	runes := []rune(password)
	lowered := []rune(strings.ToLower(password))
	n := len(runes)

	unambiguous := make([]rune, n)
	var ambiguousSymbols []rune
	seenAmbiguous := make(map[rune]bool)
	anySubstituted := false

	for i, r := range lowered {
		letters, isSym := data.LeetSubstitutions[r]
		switch {
		case !isSym:
			unambiguous[i] = r
		case len(letters) == 1:
			unambiguous[i] = letters[0]
			anySubstituted = true
		default:
			unambiguous[i] = r
			if !seenAmbiguous[r] {
				seenAmbiguous[r] = true
				ambiguousSymbols = append(ambiguousSymbols, r)
			}
		}
	}

	seen := make(map[string]match.Match)

	if anySubstituted && len(ambiguousSymbols) == 0 {
		subs := diffSubs(lowered, unambiguous)
		for _, m := range runSubstituted(runes, unambiguous, subs, userWords) {
			seen[key(m)] = m
		}
	}

	if len(ambiguousSymbols) > 0 {
		choices := make([][]rune, len(ambiguousSymbols))
		for i, sym := range ambiguousSymbols {
			choices[i] = []rune(data.LeetSubstitutions[sym])
		}

		forEachAssignment(choices, func(assignment []rune) {
			if !injective(assignment) {
				return
			}
			symToLetter := make(map[rune]rune, len(ambiguousSymbols))
			for i, sym := range ambiguousSymbols {
				symToLetter[sym] = assignment[i]
			}

			attempt := make([]rune, n)
			copy(attempt, unambiguous)
			for i, r := range lowered {
				if letter, ok := symToLetter[r]; ok {
					attempt[i] = letter
				}
			}

			subs := diffSubs(lowered, attempt)
			for _, m := range runSubstituted(runes, attempt, subs, userWords) {
				k := key(m)
				if existing, ok := seen[k]; !ok || len(m.Data.Dictionary.L33t.Subs) < len(existing.Data.Dictionary.L33t.Subs) {
					seen[k] = m
				}
			}
		})
	}

	out := make([]match.Match, 0, len(seen))
	for _, m := range seen {
		out = append(out, m)
	}
	match.ByStartEnd(out)
	return out
}

// diffSubs records, for every position where attempt differs from the
// original lowercase password, the symbol -> letter substitution made
// there.
func diffSubs(lowered, attempt []rune) map[rune]rune {
	subs := make(map[rune]rune)
	for i, r := range lowered {
		if attempt[i] != r {
			subs[r] = attempt[i]
		}
	}
	return subs
}

func runSubstituted(original, substituted []rune, subs map[rune]rune, userWords []string) []match.Match {
	if len(subs) == 0 {
		return nil
	}
	hits := dictionary.Match(string(substituted), userWords)

	out := make([]match.Match, 0, len(hits))
	for _, h := range hits {
		usedSubs := subsUsedIn(original[h.Start:h.End+1], subs)
		if len(usedSubs) == 0 {
			continue // this particular hit didn't actually involve any substitution
		}
		d := *h.Data.Dictionary
		d.L33t = &match.L33tData{Subs: usedSubs}
		out = append(out, match.Match{
			Pattern: match.PatternDictionary,
			Start:   h.Start,
			End:     h.End,
			Token:   string(original[h.Start : h.End+1]),
			Data:    match.Data{Dictionary: &d},
		})
	}
	return out
}

// subsUsedIn returns the subset of subs whose symbol actually appears
// (case-insensitively) within token, since a dictionary hit may span
// only part of the substituted region.
func subsUsedIn(token []rune, subs map[rune]rune) map[rune]rune {
	used := make(map[rune]rune)
	for _, r := range token {
		lr := toLowerRune(r)
		if letter, ok := subs[lr]; ok {
			used[lr] = letter
		}
	}
	return used
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func key(m match.Match) string {
	return fmt.Sprintf("%d\x00%d\x00%s", m.Start, m.End, m.Data.Dictionary.MatchedWord)
}

// forEachAssignment calls fn once for every combination in the cartesian
// product of choices, visiting each combination exactly once.
func forEachAssignment(choices [][]rune, fn func(assignment []rune)) {
	assignment := make([]rune, len(choices))
	var recurse func(i int)
	recurse = func(i int) {
		if i == len(choices) {
			fn(append([]rune(nil), assignment...))
			return
		}
		for _, c := range choices[i] {
			assignment[i] = c
			recurse(i + 1)
		}
	}
	if len(choices) > 0 {
		recurse(0)
	}
}

// injective reports whether assignment maps every distinct ambiguous
// symbol to a distinct letter: two symbols collapsing onto the same
// letter within one attempt is not a valid reading of the password.
func injective(assignment []rune) bool {
	seen := make(map[rune]bool, len(assignment))
	for _, letter := range assignment {
		if seen[letter] {
			return false
		}
		seen[letter] = true
	}
	return true
}
