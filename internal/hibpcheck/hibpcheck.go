// Package hibpcheck turns an optional breach-database lookup into a
// synthetic Dictionary match, so a password found in a real-world
// breach corpus is scored exactly as cheaply as one found in the
// built-in Passwords list, without requiring network access for the
// core estimator to function.
package hibpcheck

import (
	"github.com/rsilva/zxcvbn/internal/match"
)

// breachedDictionaryName is the DictionaryName used for the synthetic
// match, distinguishing it from any built-in list in feedback and
// reporting.
const breachedDictionaryName = "Breached"

// Checker looks up whether password appears in a breach corpus and how
// many times. [github.com/rsilva/zxcvbn/hibp.Client] implements this.
type Checker interface {
	Check(password string) (breached bool, count int, err error)
}

// Options configures the optional breach check. The zero value performs
// no check at all: Checker and Result are both nil.
type Options struct {
	// Checker is consulted if non-nil and Result is nil.
	Checker Checker
	// MinOccurrences is the minimum breach count required to treat the
	// password as breached (default 1 if <= 0).
	MinOccurrences int
	// Result, if non-nil, is used directly instead of calling Checker —
	// useful when the caller already looked the password up elsewhere.
	Result *Result
}

// Result is a pre-computed breach lookup outcome.
type Result struct {
	Breached bool
	Count    int
}

// Match runs the configured breach check and, if the password is
// reported breached at least MinOccurrences times, returns a single
// synthetic Dictionary match covering the whole password at rank 1 —
// the cheapest possible dictionary guess, since a breached password is
// already at the top of any real attacker's list.
//
// Checker errors are swallowed: a network or API failure degrades to
// "not breached" rather than interrupting evaluation, since this check
// is always optional and the rest of the estimator must stay total.
func Match(password string, opts Options) []match.Match {
	breached, count := lookup(password, opts)

	minOcc := opts.MinOccurrences
	if minOcc < 1 {
		minOcc = 1
	}
	if !breached || count < minOcc {
		return nil
	}

	runes := []rune(password)
	if len(runes) == 0 {
		return nil
	}

	return []match.Match{{
		Pattern: match.PatternDictionary,
		Start:   0,
		End:     len(runes) - 1,
		Token:   password,
		Data: match.Data{Dictionary: &match.DictionaryData{
			MatchedWord:    password,
			Rank:           1,
			DictionaryName: breachedDictionaryName,
		}},
	}}
}

func lookup(password string, opts Options) (breached bool, count int) {
	if opts.Result != nil {
		return opts.Result.Breached, opts.Result.Count
	}
	if opts.Checker == nil {
		return false, 0
	}
	breached, count, err := opts.Checker.Check(password)
	if err != nil {
		return false, 0
	}
	return breached, count
}
