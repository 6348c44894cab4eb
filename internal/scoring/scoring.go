// Package scoring turns an estimated guess count into the outward-facing
// verdict: a 0-4 score bucket and the time an attacker would need at four
// different guessing rates.
package scoring

import (
	"fmt"
	"math"
)

// Score buckets a password's estimated guesses into a human verdict.
// Thresholds sit 5 guesses above each power of ten so a guess count that
// lands exactly on the boundary (1e3, 1e6, ...) still falls in the safer
// bucket.
type Score int

const (
	VeryWeak Score = iota
	Weak
	Medium
	Strong
	VeryStrong
)

func (s Score) String() string {
	switch s {
	case VeryWeak:
		return "very weak"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

const scoreDelta = 5.0

// FromGuesses buckets a guess count into a Score.
func FromGuesses(guesses uint64) Score {
	g := float64(guesses)
	switch {
	case g < 1e3+scoreDelta:
		return VeryWeak
	case g < 1e6+scoreDelta:
		return Weak
	case g < 1e8+scoreDelta:
		return Medium
	case g < 1e10+scoreDelta:
		return Strong
	default:
		return VeryStrong
	}
}

// CrackTimes estimates the wall-clock time to exhaust the guess count
// under four attacker models, ordered from most to least constrained.
type CrackTimes struct {
	// OnlineThrottled models an online attack against a service that
	// rate-limits to 100 guesses/hour.
	OnlineThrottled float64
	// OnlineUnthrottled models an online attack with no effective rate
	// limiting, at 10 guesses/second.
	OnlineUnthrottled float64
	// OfflineSlowHashing models an offline attack against a slow,
	// intentionally expensive hash (e.g. bcrypt), at 1e4 guesses/second
	// across multiple attacking machines.
	OfflineSlowHashing float64
	// OfflineFastHashing models an offline attack against a fast hash
	// with no work factor, at 1e10 guesses/second.
	OfflineFastHashing float64
}

// NewCrackTimes computes crack times, in seconds, for guesses.
func NewCrackTimes(guesses uint64) CrackTimes {
	g := float64(guesses)
	return CrackTimes{
		OnlineThrottled:    g / (100.0 / 3600.0),
		OnlineUnthrottled:  g / 10.0,
		OfflineSlowHashing: g / 1e4,
		OfflineFastHashing: g / 1e10,
	}
}

// String renders the four crack-time estimates, mirroring
// original_source/src/result.rs's impl fmt::Display for CrackTimes.
func (ct CrackTimes) String() string {
	return fmt.Sprintf(
		"  Online throttled:\t%s\n  Online unthrottled:\t%s\n  Offline slow:\t\t%s\n  Offline fast:\t\t%s",
		DisplayString(ct.OnlineThrottled),
		DisplayString(ct.OnlineUnthrottled),
		DisplayString(ct.OfflineSlowHashing),
		DisplayString(ct.OfflineFastHashing),
	)
}

// GuessesLog10 reports guesses in log10 space, the unit most of the
// guess-estimation math is carried out in internally.
func GuessesLog10(guesses uint64) float64 {
	if guesses == 0 {
		return 0
	}
	return math.Log10(float64(guesses))
}

// DisplayString renders a duration in seconds as a short, human phrase
// ("3 hour(s)", "centuries"), matching the coarse granularity the rest of
// the result is reported at.
func DisplayString(seconds float64) string {
	const (
		minute  = 60.0
		hour    = minute * 60.0
		day     = hour * 24.0
		month   = day * 31.0
		year    = month * 12.0
		century = year * 100.0
	)
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return fmt.Sprintf("%.0fs", seconds)
	case seconds < hour:
		return fmt.Sprintf("%.0f minute(s)", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%.0f hour(s)", seconds/hour)
	case seconds < month:
		return fmt.Sprintf("%.0f day(s)", seconds/day)
	case seconds < year:
		return fmt.Sprintf("%.0f month(s)", seconds/month)
	case seconds < century:
		return fmt.Sprintf("%.0f year(s)", seconds/year)
	default:
		return "centuries"
	}
}
