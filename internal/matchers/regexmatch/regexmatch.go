// Package regexmatch finds password substrings matching a small set of
// named patterns that are common and guessable but don't fit any other
// matcher, most notably bare four-digit years.
package regexmatch

import (
	"github.com/coregx/coregex"

	"github.com/rsilva/zxcvbn/internal/match"
)

// Patterns maps a named pattern to its compiled form. Only the first
// occurrence of each named pattern is reported per password, mirroring
// the zxcvbn reference: a password rarely contains two distinct "recent
// year" substrings worth separately penalizing.
var Patterns = map[string]*coregex.Regex{
	"recent year": coregex.MustCompile(`19\d\d|200\d|201\d`),
}

// Match runs every named pattern against password and emits a Regex
// match for its first hit, if any.
func Match(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match

	for name, re := range Patterns {
		loc := re.FindStringIndex(password)
		if loc == nil {
			continue
		}
		start, end := byteRangeToRuneRange(password, runes, loc[0], loc[1])
		out = append(out, match.Match{
			Pattern: match.PatternRegex,
			Start:   start,
			End:     end,
			Token:   string(runes[start : end+1]),
			Data:    match.Data{Regex: &match.RegexData{Name: name}},
		})
	}

	match.ByStartEnd(out)
	return out
}

// byteRangeToRuneRange converts a [start, end) byte offset pair (as
// returned by FindStringIndex) into an inclusive [start, end] rune
// range, since Match and every other matcher index by rune position.
func byteRangeToRuneRange(s string, runes []rune, byteStart, byteEnd int) (runeStart, runeEnd int) {
	b := 0
	for i, r := range []rune(s) {
		if b == byteStart {
			runeStart = i
		}
		b += runeLen(r)
		if b == byteEnd {
			runeEnd = i
			break
		}
	}
	return runeStart, runeEnd
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
