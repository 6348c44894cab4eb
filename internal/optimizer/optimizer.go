// Package optimizer picks, out of every candidate Match a password
// yields, the single non-overlapping sequence that covers the whole
// password with the fewest expected guesses. It is a textbook shortest-
// path dynamic program: minimize factorial(length) * product(guesses)
// over every way of tiling the password with matches end to end, filling
// any gap a matcher left uncovered with a synthetic Bruteforce match.
package optimizer

import (
	"math"

	"github.com/rsilva/zxcvbn/internal/guesses"
	"github.com/rsilva/zxcvbn/internal/match"
)

// scoreEntry is one candidate decomposition of password[0:end+1] ending
// exactly at end with a sequence of the given length: pi is the running
// product of per-match guesses, g is the full factorial(length)*pi cost
// used to rank decompositions against each other.
type scoreEntry struct {
	m      match.Match
	length int
	pi     uint64
	g      uint64
}

// table accumulates, for every end-of-password index, the best scoreEntry
// seen so far for each distinct sequence length ending there. Keeping one
// entry per length (not just the global best) is what lets a later match
// of length l extend any of several differently-shaped prefixes of length
// l-1.
type table struct {
	scores map[int][]scoreEntry
}

func newTable() *table {
	return &table{scores: make(map[int][]scoreEntry)}
}

// update considers placing m as the length-th match in a decomposition.
// It is discarded if an entry at m.End with the same or a shorter length
// is already no more expensive; otherwise it replaces the entry at m.End
// with the same length, or is added if there is none. m.Guesses is set
// to its own estimate. passwordRuneLen is needed to size the submatch
// guess floor inside guesses.Estimate.
func (t *table) update(m match.Match, length, passwordRuneLen int) {
	pi := guesses.Estimate(m, passwordRuneLen)
	m.Guesses = pi

	if length > 1 {
		if prev, ok := t.scores[m.Start-1]; ok {
			for _, p := range prev {
				if p.length == length-1 {
					pi *= p.pi
					break
				}
			}
		}
	}

	g := guesses.Factorial(uint64(length)) * pi

	if existing, ok := t.scores[m.End]; ok {
		for _, e := range existing {
			if e.length > length {
				continue
			}
			if e.g <= g {
				return // an existing entry already dominates this one
			}
		}
	}

	entry := scoreEntry{m: m, length: length, pi: pi, g: g}
	for i, e := range t.scores[m.End] {
		if e.length == length {
			t.scores[m.End][i] = entry
			return
		}
	}
	t.scores[m.End] = append(t.scores[m.End], entry)
}

// unwind walks backward from the end of an n-rune password to recover
// the lowest-cost decomposition as an ordered, non-overlapping slice of
// matches.
func (t *table) unwind(n int) []match.Match {
	var result []match.Match

	k := n - 1
	length := 0
	best := uint64(math.MaxUint64)
	if list, ok := t.scores[k]; ok {
		for _, e := range list {
			if e.g < best {
				best = e.g
				length = e.length
			}
		}
	}

	for k >= 0 {
		list, ok := t.scores[k]
		if !ok {
			break
		}
		var found *scoreEntry
		for i := range list {
			if list[i].length == length {
				found = &list[i]
				break
			}
		}
		if found == nil {
			break
		}
		result = append([]match.Match{found.m}, result...)
		k = found.m.Start - 1
		length--
	}

	return result
}

// Result is the outcome of finding the most guessable match sequence for
// a password: the chosen decomposition plus its total guess count.
type Result struct {
	Sequence     []match.Match
	Guesses      uint64
	GuessesLog10 float64
}

// Optimize finds the sequence of non-overlapping matches covering the
// whole password that minimizes total expected guesses, filling any gap
// left uncovered by a real match with a synthetic Bruteforce match.
func Optimize(password string, candidates []match.Match) Result {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Result{Guesses: 1, GuessesLog10: 0}
	}

	t := newTable()

	matchesByEnd := make([][]match.Match, n)
	for _, m := range candidates {
		if m.End < 0 || m.End >= n {
			continue
		}
		matchesByEnd[m.End] = append(matchesByEnd[m.End], m)
	}

	for k := 0; k < n; k++ {
		for _, m := range matchesByEnd[k] {
			if m.Start > 0 {
				if prev, ok := t.scores[m.Start-1]; ok {
					seenLen := make(map[int]bool)
					for _, p := range prev {
						if seenLen[p.length] {
							continue
						}
						seenLen[p.length] = true
						t.update(m, p.length+1, n)
					}
				}
			} else {
				t.update(m, 1, n)
			}
		}

		bm := match.Bruteforce(runes, 0, k)
		t.update(bm, 1, n)

		for i := 1; i <= k; i++ {
			bm := match.Bruteforce(runes, i, k)
			prev, ok := t.scores[i-1]
			if !ok {
				continue
			}
			seenLen := make(map[int]bool)
			for _, p := range prev {
				if p.m.Pattern == match.PatternBruteforce {
					continue // never chain two adjacent bruteforce runs, merge them instead
				}
				if seenLen[p.length] {
					continue
				}
				seenLen[p.length] = true
				t.update(bm, p.length+1, n)
			}
		}
	}

	sequence := t.unwind(n)

	g := uint64(1)
	if list, ok := t.scores[n-1]; ok {
		for _, e := range list {
			if e.length == len(sequence) {
				g = e.g
				break
			}
		}
	}

	return Result{
		Sequence:     sequence,
		Guesses:      g,
		GuessesLog10: math.Log10(float64(g)),
	}
}
