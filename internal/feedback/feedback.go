// Package feedback turns the winning match sequence from the optimizer
// into user-facing advice: why the password is weak and how to make it
// stronger.
package feedback

import (
	"github.com/rsilva/zxcvbn/internal/match"
)

// Feedback carries the advice shown to a user. Both fields may be empty
// for a password that is already strong enough, or for a match pattern
// the reference implementation has no specific advice about.
type Feedback struct {
	Advice      string
	Suggestions string
}

// defaultSuggestions is shown when the match sequence is empty, which
// the optimizer produces only for the empty password. A sequence made
// only of bruteforce matches gets no feedback.
const defaultSuggestions = "Use a few words, avoid common phrases.\nNo need for symbols, digits, or uppercase letters."

// Default returns the feedback for an empty match sequence.
func Default() Feedback {
	return Feedback{Suggestions: defaultSuggestions}
}

// None is returned for passwords strong enough that no feedback is
// warranted.
func None() Feedback {
	return Feedback{}
}

// Generate produces feedback from the winning match sequence. strong
// indicates the password's score already clears the "strong" bucket, in
// which case no suggestions are offered regardless of sequence.
// guessesLog10 is the overall password's guess estimate, used to decide
// whether a near-miss on the Passwords list is still worth flagging.
func Generate(sequence []match.Match, strong bool, guessesLog10 float64) Feedback {
	if strong {
		return None()
	}
	if len(sequence) == 0 {
		return Default()
	}

	longest := longestMatch(sequence)
	return matchFeedback(longest, len(sequence) == 1, guessesLog10)
}

func longestMatch(sequence []match.Match) match.Match {
	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len([]rune(m.Token)) > len([]rune(longest.Token)) {
			longest = m
		}
	}
	return longest
}

func matchFeedback(m match.Match, onlyMatch bool, guessesLog10 float64) Feedback {
	switch m.Pattern {
	case match.PatternDictionary:
		return dictionaryFeedback(m, onlyMatch, guessesLog10)
	case match.PatternSpatial:
		advice := "Short keyboard patterns are easy to guess"
		if m.Data.Spatial.Turns == 1 {
			advice = "Straight rows of keys are easier to guess"
		}
		return Feedback{
			Advice:      advice,
			Suggestions: "Use a longer keyboard pattern with more turns",
		}
	case match.PatternRepeat:
		advice := "Repeats like abcabc are only slightly harder to guess than abc"
		if len([]rune(m.Data.Repeat.BaseToken)) == 1 {
			advice = "Repeats like aaaa are easy to guess"
		}
		return Feedback{
			Advice:      advice,
			Suggestions: "Avoid repeated words and characters",
		}
	case match.PatternSequence:
		return Feedback{
			Advice:      "Sequences like abc or 7654 are easy to guess",
			Suggestions: "Avoid sequences",
		}
	case match.PatternRegex:
		if m.Data.Regex.Name == "recent year" {
			return Feedback{
				Advice:      "Recent years are easy to guess",
				Suggestions: "Avoid recent years or years associated with you",
			}
		}
		return None()
	case match.PatternDate:
		return Feedback{
			Advice:      "Dates are often easy to guess",
			Suggestions: "Avoid dates and years associated with you",
		}
	default:
		return None()
	}
}

func dictionaryFeedback(m match.Match, onlyMatch bool, guessesLog10 float64) Feedback {
	d := m.Data.Dictionary

	var advice string
	switch d.DictionaryName {
	case "Passwords":
		switch {
		case onlyMatch && d.L33t == nil && !d.Reversed:
			switch {
			case d.Rank <= 10:
				advice = "This is a top-10 common password"
			case d.Rank <= 100:
				advice = "This is a top-100 common password"
			default:
				advice = "This is a very common password"
			}
		case guessesLog10 <= 4.0:
			advice = "This is similar to a commonly used password"
		}
	case "Wikipedia":
		if onlyMatch {
			advice = "A word by itself is easy to guess"
		}
	case "Male names", "Female names", "Surnames":
		if onlyMatch {
			advice = "Names and surnames by themselves are easy to guess"
		} else {
			advice = "Common names and surnames are easy to guess"
		}
	}

	var suggestions string
	switch {
	case d.Reversed:
		suggestions = "Reversed words aren't much harder to guess"
	case d.L33t != nil:
		suggestions = "Predictable substitutions like '@' instead of 'a' don't help much"
	}

	return Feedback{Advice: advice, Suggestions: suggestions}
}
