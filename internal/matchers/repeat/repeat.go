// Package repeat finds runs built from one repeated unit: a single
// character repeated ("aaaa"), or a short block repeated back to back
// ("abcabcabc").
package repeat

import (
	"github.com/rsilva/zxcvbn/internal/guesses"
	"github.com/rsilva/zxcvbn/internal/match"
	"github.com/rsilva/zxcvbn/internal/matchers/date"
	"github.com/rsilva/zxcvbn/internal/matchers/dictionary"
	"github.com/rsilva/zxcvbn/internal/matchers/l33t"
	"github.com/rsilva/zxcvbn/internal/matchers/regexmatch"
	"github.com/rsilva/zxcvbn/internal/matchers/reverse"
	"github.com/rsilva/zxcvbn/internal/matchers/sequence"
	"github.com/rsilva/zxcvbn/internal/matchers/spatial"
	"github.com/rsilva/zxcvbn/internal/optimizer"
)

// MaxBlockLen bounds how long a candidate repeated unit can be, so the
// scan stays O(n * MaxBlockLen) instead of O(n^2).
const MaxBlockLen = 64

// Match finds every maximal repeated-unit run in password of two or
// more repetitions, choosing at each starting position the unit that
// covers the most characters and, among units that cover equally many,
// the shortest, so "aaaa" is reported once, as "a" repeated four times.
func Match(password string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	var out []match.Match

	i := 0
	for i < n {
		bestLen, bestUnit := longestRepeatAt(runes, i)
		if bestUnit == 0 {
			i++
			continue
		}
		end := i + bestUnit*bestLen - 1
		baseToken := string(runes[i : i+bestUnit])
		baseGuesses := estimateBaseGuesses(baseToken)

		out = append(out, match.Match{
			Pattern: match.PatternRepeat,
			Start:   i,
			End:     end,
			Token:   string(runes[i : end+1]),
			Data: match.Data{Repeat: &match.RepeatData{
				BaseToken:   baseToken,
				BaseGuesses: baseGuesses,
				RepeatCount: bestLen,
			}},
		})
		i = end + 1
	}

	return out
}

// longestRepeatAt finds, for the run starting at i, the repeated unit
// length (in runes) that produces the longest total match and how many
// times it repeats. Returns (0, 0) if no unit repeats at least twice.
func longestRepeatAt(runes []rune, i int) (repeatCount, unitLen int) {
	n := len(runes)
	maxUnit := MaxBlockLen
	if maxUnit > (n-i)/2 {
		maxUnit = (n - i) / 2
	}

	bestTotal := 0
	for u := 1; u <= maxUnit; u++ {
		count := 1
		for i+(count+1)*u <= n && matchesUnit(runes, i, u, count) {
			count++
		}
		if count < 2 {
			continue
		}
		if count*u > bestTotal {
			bestTotal = count * u
			repeatCount = count
			unitLen = u
		}
	}
	return repeatCount, unitLen
}

func matchesUnit(runes []rune, start, unitLen, priorCount int) bool {
	base := runes[start : start+unitLen]
	candidateStart := start + priorCount*unitLen
	for k := 0; k < unitLen; k++ {
		if runes[candidateStart+k] != base[k] {
			return false
		}
	}
	return true
}

// estimateBaseGuesses recursively runs the repeated unit back through
// the full matching pipeline (every other matcher, then the optimizer's
// cheapest-decomposition search), so a repeated sequence or dictionary
// word ("abcabc" from the sequence "abc") costs what "abc" itself costs
// rather than being priced as if "abc" were a random bruteforce string.
// The repeat matcher is left out of this recursive pass, which bounds
// the recursion to a single extra level; a repeat inside the unit (the
// "aa" of "aab") is priced by the other matchers or as bruteforce.
func estimateBaseGuesses(unit string) uint64 {
	runes := []rune(unit)
	n := len(runes)

	candidates := match.Aggregate(
		dictionary.Match(unit, nil),
		reverse.Match(unit, nil),
		l33t.Match(unit, nil),
		spatial.Match(unit),
		sequence.Match(unit),
		regexmatch.Match(unit),
		date.Match(unit),
	)

	opt := optimizer.Optimize(unit, candidates)
	if opt.Guesses > 0 {
		return opt.Guesses
	}

	m := match.Match{Pattern: match.PatternBruteforce, Start: 0, End: n - 1, Token: unit}
	return guesses.Estimate(m, n)
}
