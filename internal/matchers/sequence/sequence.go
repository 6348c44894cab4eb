// Package sequence finds runs of characters that form an arithmetic
// progression with a constant step of +-1 to +-5 ("abcdef", "87654",
// "ACEGI"), the kind of pattern a finger produces by sliding along a
// single row of letters or digits rather than typing them independently.
package sequence

import (
	"github.com/rsilva/zxcvbn/internal/match"
)

// MinLength is the shortest run considered a sequence; two characters
// are always "in sequence" by coincidence.
const MinLength = 3

// Match finds every maximal arithmetic run of MinLength or more
// characters drawn from a single alphabet class (lowercase, uppercase,
// digit, or other).
func Match(password string) []match.Match {
	runes := []rune(password)
	n := len(runes)
	var out []match.Match

	i := 0
	for i < n-1 {
		step := int(runes[i+1]) - int(runes[i])
		if step == 0 || !sameClass(runes[i], runes[i+1]) || abs(step) > 5 {
			i++
			continue
		}

		j := i + 1
		for j+1 < n && sameClass(runes[j], runes[j+1]) && int(runes[j+1])-int(runes[j]) == step {
			j++
		}

		if j-i+1 >= MinLength {
			name := classify(runes[i])
			out = append(out, match.Match{
				Pattern: match.PatternSequence,
				Start:   i,
				End:     j,
				Token:   string(runes[i : j+1]),
				Data: match.Data{Sequence: &match.SequenceData{
					Name:      name,
					Space:     alphabetSize(name),
					Ascending: step > 0,
				}},
			})
			i = j + 1
		} else {
			i++
		}
	}

	return out
}

func sameClass(a, b rune) bool {
	return classify(a) == classify(b)
}

func classify(r rune) match.SequenceName {
	switch {
	case r >= '0' && r <= '9':
		return match.SequenceDigits
	case r >= 'a' && r <= 'z':
		return match.SequenceLower
	case r >= 'A' && r <= 'Z':
		return match.SequenceUpper
	default:
		return match.SequenceUnicode
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// alphabetSize reports the size of the alphabet a sequence class is
// drawn from, mirroring the base switch in guesses.sequenceGuesses:
// digits run 0-9 (space 10), everything else is treated as a 26-symbol
// alphabet (upper, lower, and unicode alike, per the open-question
// decision to avoid guessing at script-specific alphabet sizes).
func alphabetSize(name match.SequenceName) int {
	if name == match.SequenceDigits {
		return 10
	}
	return 26
}
