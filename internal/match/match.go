// Package match defines the structured representation of a candidate
// weakness found in a password, shared by every matcher, the guess
// estimator, and the sequence optimizer.
package match

import "sort"

// Pattern identifies which family of weakness a Match describes.
type Pattern string

const (
	PatternDictionary Pattern = "dictionary"
	PatternSpatial    Pattern = "spatial"
	PatternRepeat     Pattern = "repeat"
	PatternSequence   Pattern = "sequence"
	PatternRegex      Pattern = "regex"
	PatternDate       Pattern = "date"
	PatternBruteforce Pattern = "bruteforce"
)

// Match is an immutable record describing one candidate weakness found
// in a password: the substring it covers, its pattern tag, and
// pattern-specific metadata in Data.
//
// Token always equals password[Start:End+1] (inclusive end, like the
// zxcvbn reference). Guesses is filled in by the optimizer from
// internal/guesses when it prices the match; until then it is zero.
type Match struct {
	Pattern  Pattern
	Start    int
	End      int
	Token    string
	Data     Data
	Guesses  uint64
}

// Data is the tagged variant carrying pattern-specific fields. Exactly
// one of the pointer fields is non-nil, selected by Match.Pattern.
// A Bruteforce match has every field nil.
type Data struct {
	Dictionary *DictionaryData
	Spatial    *SpatialData
	Repeat     *RepeatData
	Sequence   *SequenceData
	Regex      *RegexData
	Date       *DateData
}

// DictionaryData describes a Dictionary-pattern match (including
// leetspeak and reversed variants, which are Dictionary matches with
// extra annotation rather than distinct patterns).
type DictionaryData struct {
	MatchedWord    string
	Rank           int
	DictionaryName string
	Reversed       bool
	L33t           *L33tData
}

// L33tData records which symbols were substituted for which letters to
// produce MatchedWord from Token. Each symbol maps to exactly one letter:
// ambiguous symbols (e.g. '1' standing for either 'i' or 'l') are already
// resolved to the specific letter chosen for this match.
type L33tData struct {
	Subs map[rune]rune
}

// SpatialData describes a keyboard-walk match.
type SpatialData struct {
	Graph        string
	Turns        int
	ShiftedCount int
}

// RepeatData describes a repeated-unit match.
type RepeatData struct {
	BaseToken   string
	BaseGuesses uint64
	RepeatCount int
}

// SequenceName classifies the alphabet a Sequence match was drawn from.
type SequenceName string

const (
	SequenceLower   SequenceName = "lower"
	SequenceUpper   SequenceName = "upper"
	SequenceDigits  SequenceName = "digits"
	SequenceUnicode SequenceName = "unicode"
)

// SequenceData describes an arithmetic-progression match.
type SequenceData struct {
	Name      SequenceName
	Space     int
	Ascending bool
}

// RegexData describes a named-pattern match (e.g. "recent year").
type RegexData struct {
	Name string
}

// DateData describes a date match. Separator is 0 when the date had no
// separator characters (e.g. "19900101").
type DateData struct {
	Separator rune
	Year      int
	Month     int
	Day       int
}

// ByStartEnd sorts matches by (Start, End) ascending, the order every
// matcher and the aggregator must produce.
func ByStartEnd(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End < matches[j].End
	})
}

// Bruteforce builds a synthetic Bruteforce match spanning [start, end]
// of password (inclusive), used by the optimizer to guarantee full
// coverage.
func Bruteforce(password []rune, start, end int) Match {
	return Match{
		Pattern: PatternBruteforce,
		Start:   start,
		End:     end,
		Token:   string(password[start : end+1]),
	}
}
