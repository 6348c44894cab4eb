// Package reverse finds dictionary words spelled backwards, by running
// the dictionary matcher on the reversed password and mapping the hits
// back onto the original coordinates.
package reverse

import (
	"github.com/rsilva/zxcvbn/internal/match"
	"github.com/rsilva/zxcvbn/internal/matchers/dictionary"
)

// Match reverses password, runs the dictionary matcher against the
// reversed string, then reflects every hit back to the original
// password's coordinates and marks it Reversed. A palindrome word (e.g.
// "racecar") also matches as a plain, non-reversed Dictionary match, and
// callers are expected to keep both: the optimizer picks whichever is
// cheaper.
func Match(password string, userWords []string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	reversed := reverseRunes(runes)

	hits := dictionary.Match(string(reversed), userWords)

	out := make([]match.Match, 0, len(hits))
	for _, h := range hits {
		start := n - 1 - h.End
		end := n - 1 - h.Start
		d := *h.Data.Dictionary
		d.Reversed = true
		out = append(out, match.Match{
			Pattern: match.PatternDictionary,
			Start:   start,
			End:     end,
			Token:   string(runes[start : end+1]),
			Data:    match.Data{Dictionary: &d},
		})
	}

	match.ByStartEnd(out)
	return out
}

func reverseRunes(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[len(runes)-1-i] = r
	}
	return out
}
