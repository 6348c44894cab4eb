// Package guesses turns a single Match into an estimate of how many
// guesses an attacker would need to produce that exact token, following
// the per-pattern formulas from the zxcvbn family of password strength
// estimators.
package guesses

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/rsilva/zxcvbn/internal/data"
	"github.com/rsilva/zxcvbn/internal/match"
)

const (
	bruteforceCardinality        = 10
	minSubmatchGuessesSingleChar = 10
	minSubmatchGuessesMultiChar  = 50
	minYearSpace                 = 20
)

// Factorial returns n!. Used by the sequence optimizer to weight a
// decomposition by the number of ways its matches could be ordered.
func Factorial(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	result := uint64(1)
	for i := uint64(2); i <= n; i++ {
		result *= i
	}
	return result
}

// NCk returns the binomial coefficient "n choose k".
func NCk(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k == 0 {
		return 1
	}
	result := uint64(1)
	for d := uint64(1); d <= k; d++ {
		n--
		result = (result * (n + 1)) / d
	}
	return result
}

// Estimate returns the number of guesses required to produce m.Token,
// given the rune length of the whole password it was found in. The
// result is floored so that a submatch never reports fewer guesses than
// the minimum needed to simply enumerate short strings (10 for a single
// character, 50 otherwise) unless the match spans the entire password.
func Estimate(m match.Match, passwordRuneLen int) uint64 {
	tokenLen := utf8.RuneCountInString(m.Token)

	minGuesses := uint64(1)
	if tokenLen < passwordRuneLen {
		if tokenLen == 1 {
			minGuesses = minSubmatchGuessesSingleChar
		} else {
			minGuesses = minSubmatchGuessesMultiChar
		}
	}

	var g uint64
	switch m.Pattern {
	case match.PatternBruteforce:
		g = bruteforceGuesses(m)
	case match.PatternDictionary:
		g = dictionaryGuesses(m)
	case match.PatternRepeat:
		g = repeatGuesses(m)
	case match.PatternSequence:
		g = sequenceGuesses(m)
	case match.PatternRegex:
		g = regexGuesses(m)
	case match.PatternDate:
		g = dateGuesses(m)
	case match.PatternSpatial:
		g = spatialGuesses(m)
	}

	if g < minGuesses {
		return minGuesses
	}
	return g
}

func bruteforceGuesses(m match.Match) uint64 {
	tokenLen := utf8.RuneCountInString(m.Token)

	floor := uint64(minSubmatchGuessesMultiChar + 1)
	if tokenLen == 1 {
		floor = minSubmatchGuessesSingleChar + 1
	}

	guesses := uint64(1)
	for i := 0; i < tokenLen; i++ {
		guesses *= bruteforceCardinality
		if guesses > 1e18 {
			break // saturate rather than overflow on pathological input
		}
	}
	if guesses < floor {
		return floor
	}
	return guesses
}

func dictionaryGuesses(m match.Match) uint64 {
	d := m.Data.Dictionary
	if d == nil {
		return 0
	}
	rank := uint64(d.Rank)
	u := uppercaseVariations(m.Token)
	l := uint64(1)
	if d.L33t != nil {
		l = l33tVariations(m.Token, d.L33t.Subs)
	}
	reversedFactor := uint64(1)
	if d.Reversed {
		reversedFactor = 2
	}
	return rank * u * l * reversedFactor
}

// uppercaseVariations counts the ways a token's letters could have been
// capitalized to arrive at its actual mix of upper/lower case, using the
// same shortcuts zxcvbn does: an all-lower token counts 1, and an
// all-upper token, or one with just the first or just the last letter
// capitalized, is one of a few "obvious" capitalizations and counts 2.
func uppercaseVariations(token string) uint64 {
	runes := []rune(token)

	hasUpper := false
	hasLower := false
	for _, r := range runes {
		if r >= 'A' && r <= 'Z' {
			hasUpper = true
		}
		if r >= 'a' && r <= 'z' {
			hasLower = true
		}
	}
	if !hasUpper {
		return 1
	}
	if !hasLower {
		return 2
	}

	if isFirstUpperRestLower(runes) || isLastUpperRestLower(runes) {
		return 2
	}

	var upperCount, lowerCount uint64
	for _, r := range runes {
		switch {
		case r >= 'A' && r <= 'Z':
			upperCount++
		case r >= 'a' && r <= 'z':
			lowerCount++
		}
	}

	limit := upperCount
	if lowerCount < limit {
		limit = lowerCount
	}

	var variations uint64
	for i := uint64(1); i <= limit; i++ {
		variations += NCk(upperCount+lowerCount, i)
	}
	return variations
}

func isFirstUpperRestLower(runes []rune) bool {
	if len(runes) < 2 {
		return false
	}
	if runes[0] < 'A' || runes[0] > 'Z' {
		return false
	}
	for _, r := range runes[1:] {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}

func isLastUpperRestLower(runes []rune) bool {
	if len(runes) < 2 {
		return false
	}
	last := runes[len(runes)-1]
	if last < 'A' || last > 'Z' {
		return false
	}
	for _, r := range runes[:len(runes)-1] {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}

// l33tVariations counts the ways a l33t-substituted token could have
// been typed, by the same combinatorial logic as uppercaseVariations:
// for each substituted symbol, count its occurrences (S) against the
// occurrences of the letter it replaced that were left untouched (U),
// and sum nCk(S+U, i) for i from 1 to min(S, U). A symbol with zero
// plain occurrences doubles the guess count, the same way an
// all-substituted token still cost more than a wholly plain one.
func l33tVariations(token string, subs map[rune]rune) uint64 {
	if len(subs) == 0 {
		return 1
	}
	runes := []rune(token)
	variations := uint64(1)
	for sym, letter := range subs {
		var s, u uint64
		for _, r := range runes {
			if r == sym {
				s++
			}
			if r == letter {
				u++
			}
		}
		if u == 0 {
			variations *= 2
			continue
		}
		limit := s
		if u < limit {
			limit = u
		}
		var possibilities uint64
		for i := uint64(1); i <= limit; i++ {
			possibilities += NCk(s+u, i)
		}
		if possibilities == 0 {
			possibilities = 1
		}
		variations *= possibilities
	}
	return variations
}

func repeatGuesses(m match.Match) uint64 {
	r := m.Data.Repeat
	if r == nil {
		return 0
	}
	return r.BaseGuesses * uint64(r.RepeatCount)
}

// sequenceGuesses scores an arithmetic run (runs like "abc" or "987")
// by the size of the alphabet it was drawn from, doubled when the run
// descends (since ascending is the more "obvious" direction to guess
// first), times the number of characters in the run.
func sequenceGuesses(m match.Match) uint64 {
	s := m.Data.Sequence
	tokenLen := uint64(utf8.RuneCountInString(m.Token))
	if tokenLen == 0 || s == nil {
		return 0
	}

	var base uint64
	switch s.Name {
	case match.SequenceDigits:
		base = 10
	case match.SequenceLower, match.SequenceUpper:
		base = 26
	default:
		base = 26
	}

	if !s.Ascending {
		base *= 2
	}
	return base * tokenLen
}

func regexGuesses(m match.Match) uint64 {
	r := m.Data.Regex
	if r == nil {
		return 1
	}
	if r.Name == "recent year" {
		year := parseYear(m.Token)
		space := int(math.Abs(float64(year - referenceYear())))
		if space < minYearSpace {
			space = minYearSpace
		}
		return uint64(space)
	}
	return 1
}

func dateGuesses(m match.Match) uint64 {
	d := m.Data.Date
	if d == nil {
		return 1
	}
	space := d.Year - referenceYear()
	if space < 0 {
		space = -space
	}
	if space < minYearSpace {
		space = minYearSpace
	}
	guesses := uint64(space) * 365
	if d.Separator != 0 {
		guesses *= 4
	}
	return guesses
}

// spatialGuesses implements the zxcvbn keyboard-walk formula directly
// against the graph's own shape (starting positions = key count,
// average degree = mean neighbor count) rather than hard-coded
// constants, so adding a new KeyboardGraph to internal/data
// automatically gets a correctly scaled estimate.
func spatialGuesses(m match.Match) uint64 {
	s := m.Data.Spatial
	if s == nil {
		return 1
	}
	graph := graphByName(s.Graph)
	if graph == nil {
		return 1
	}

	startingPositions := float64(len(graph.Adjacency))
	totalDegree := 0
	for _, neighbors := range graph.Adjacency {
		totalDegree += len(neighbors)
	}
	avgDegree := float64(totalDegree) / startingPositions

	tokenLen := utf8.RuneCountInString(m.Token)
	turns := s.Turns
	if turns < 1 {
		turns = 1
	}

	var guesses float64
	for i := 2; i <= tokenLen; i++ {
		possibleTurns := turns
		if i-1 < possibleTurns {
			possibleTurns = i - 1
		}
		for j := 1; j <= possibleTurns; j++ {
			guesses += float64(NCk(uint64(i-1), uint64(j-1))) * startingPositions * math.Pow(avgDegree, float64(j))
		}
	}

	if s.ShiftedCount > 0 {
		shifted := s.ShiftedCount
		unshifted := tokenLen - shifted
		if unshifted == 0 {
			guesses *= 2
		} else {
			limit := shifted
			if unshifted < limit {
				limit = unshifted
			}
			var variations uint64
			for i := 1; i <= limit; i++ {
				variations += NCk(uint64(shifted+unshifted), uint64(i))
			}
			if variations == 0 {
				variations = 1
			}
			guesses *= float64(variations)
		}
	}

	if guesses < 1 {
		return 1
	}
	return uint64(guesses)
}

func graphByName(name string) *data.KeyboardGraph {
	for i := range data.Graphs {
		if data.Graphs[i].Name == name {
			return &data.Graphs[i]
		}
	}
	return nil
}

// referenceYear anchors "how far is this year from now" for date and
// recent-year regex guesses; a date close to the current year is much
// more guessable than one decades away.
func referenceYear() int {
	return time.Now().Year()
}

func parseYear(token string) int {
	y := 0
	for _, r := range token {
		if r < '0' || r > '9' {
			continue
		}
		y = y*10 + int(r-'0')
	}
	return y
}
