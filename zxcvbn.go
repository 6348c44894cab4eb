// Package zxcvbn estimates password strength by realistic attack cost
// rather than composition rules. It decomposes a password into the
// patterns an attacker's cracking dictionary would exploit — common
// passwords, dictionary words, keyboard walks, repeats, sequences,
// dates, and l33t/reversed variants of all of the above — picks the
// cheapest non-overlapping way to cover the whole password with those
// patterns, and reports the resulting guess count, crack times, and
// targeted feedback.
//
// # Usage
//
//	res := zxcvbn.Evaluate("P@ssw0rd123", nil)
//	fmt.Println(res.Score)              // Score(1) "weak"
//	fmt.Println(res.Guesses)            // estimated guesses to crack
//	fmt.Println(res.Feedback.Advice)    // "This is similar to a commonly used password"
//
// # Custom configuration
//
//	cfg := zxcvbn.DefaultConfig()
//	cfg.MaxPasswordLength = 64
//	result, err := zxcvbn.EvaluateWithConfig("mypassword", nil, cfg)
//
// # User dictionary
//
// The second argument to Evaluate/EvaluateWithConfig is a list of
// context-specific words (username, site name, company) that should be
// penalized as if they were in the common-password dictionary, exactly
// like passing a user_inputs list to the reference zxcvbn.
//
// # Security considerations
//
// Evaluate never logs, prints, or persists the password. The result
// contains only aggregate scores, the matched pattern types, and the
// substrings that were matched — the same substrings the password
// itself already contains, never anything synthesized from outside it.
//
// A maximum input length ([Config.MaxPasswordLength]) bounds CPU usage;
// inputs beyond it are truncated before matching.
package zxcvbn

import (
	"time"

	"github.com/rsilva/zxcvbn/internal/hibpcheck"
	"github.com/rsilva/zxcvbn/internal/match"
	"github.com/rsilva/zxcvbn/internal/matchers/date"
	"github.com/rsilva/zxcvbn/internal/matchers/dictionary"
	"github.com/rsilva/zxcvbn/internal/matchers/l33t"
	"github.com/rsilva/zxcvbn/internal/matchers/regexmatch"
	"github.com/rsilva/zxcvbn/internal/matchers/repeat"
	"github.com/rsilva/zxcvbn/internal/matchers/reverse"
	"github.com/rsilva/zxcvbn/internal/matchers/sequence"
	"github.com/rsilva/zxcvbn/internal/matchers/spatial"
	"github.com/rsilva/zxcvbn/internal/optimizer"
	"github.com/rsilva/zxcvbn/internal/safemem"
)

// Evaluate estimates the strength of password, treating userDictionary
// as additional context-specific words (username, email, site name)
// that should count against it just like a common-password entry.
//
// This is a convenience wrapper around [EvaluateWithConfig] using
// [DefaultConfig]. It never returns an error because the default
// configuration is always valid.
func Evaluate(password string, userDictionary []string) Result {
	result, _ := EvaluateWithConfig(password, userDictionary, DefaultConfig())
	return result
}

// EvaluateWithConfig estimates the strength of password using a custom
// configuration. It returns an error if the configuration is invalid.
//
// Passwords longer than cfg.MaxPasswordLength runes are truncated
// before analysis to bound algorithmic complexity.
func EvaluateWithConfig(password string, userDictionary []string, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	pw := truncate(password, cfg.MaxPasswordLength)

	candidates := allMatches(pw, userDictionary, cfg)
	opt := optimizer.Optimize(pw, candidates)

	elapsed := time.Since(start).Seconds() * 1000
	return newResult(pw, opt.Sequence, opt.Guesses, elapsed), nil
}

// EvaluateBytes estimates the strength of a password read into a
// mutable byte slice, using the default configuration.
//
// After converting the input to a string for analysis, the original
// byte slice is immediately zeroed to minimize the time plaintext
// resides in process memory. The caller should not reuse the slice
// after this call.
func EvaluateBytes(password []byte, userDictionary []string) Result {
	s := string(password)
	safemem.Zero(password)
	return Evaluate(s, userDictionary)
}

// EvaluateBytesWithConfig is like [EvaluateBytes] but with a custom
// configuration. The input is zeroed as soon as it has been copied,
// before analysis.
func EvaluateBytesWithConfig(password []byte, userDictionary []string, cfg Config) (Result, error) {
	s := string(password)
	safemem.Zero(password)
	return EvaluateWithConfig(s, userDictionary, cfg)
}

// allMatches runs every matcher over pw and aggregates the results,
// dropping dictionary/reverse/l33t hits against any dictionary the
// config has disabled.
func allMatches(pw string, userDictionary []string, cfg Config) []match.Match {
	dictHits := filterDisabled(dictionary.Match(pw, userDictionary), cfg)
	reverseHits := filterDisabled(reverse.Match(pw, userDictionary), cfg)
	l33tHits := filterDisabled(l33t.Match(pw, userDictionary), cfg)

	hibpHits := hibpcheck.Match(pw, hibpcheck.Options{
		Checker:        cfg.HIBPChecker,
		MinOccurrences: cfg.HIBPMinOccurrences,
		Result:         cfg.HIBPResult,
	})

	return match.Aggregate(
		dictHits,
		reverseHits,
		l33tHits,
		hibpHits,
		spatial.Match(pw),
		repeat.Match(pw),
		sequence.Match(pw),
		regexmatch.Match(pw),
		date.Match(pw),
	)
}

func filterDisabled(matches []match.Match, cfg Config) []match.Match {
	if len(cfg.DisabledDictionaries) == 0 {
		return matches
	}
	out := matches[:0:0]
	for _, m := range matches {
		if m.Data.Dictionary != nil && cfg.disabled(m.Data.Dictionary.DictionaryName) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// truncate returns password unchanged if it is within maxLen runes, or
// the first maxLen runes otherwise.
func truncate(password string, maxLen int) string {
	runes := []rune(password)
	if len(runes) <= maxLen {
		return password
	}
	return string(runes[:maxLen])
}
