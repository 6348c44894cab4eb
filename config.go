package zxcvbn

import (
	"fmt"

	"github.com/rsilva/zxcvbn/internal/hibpcheck"
)

// Config holds tunables for password evaluation. The matching and
// scoring algorithms themselves are not configurable — only the things
// spec.md treats as static data the caller may legitimately override.
//
// Use [DefaultConfig] to obtain a Config with recommended defaults, then
// override individual fields:
//
//	cfg := zxcvbn.DefaultConfig()
//	cfg.MaxPasswordLength = 64
//	result, err := zxcvbn.EvaluateWithConfig("mypassword", nil, cfg)
type Config struct {
	// MaxPasswordLength is the maximum number of runes analyzed.
	// Inputs longer than this are truncated before matching to bound
	// the algorithmic complexity of the matchers (default: 1024).
	MaxPasswordLength int

	// DisabledDictionaries names built-in dictionaries (by
	// internal/data.Dictionary.Name, e.g. "Surnames") to exclude from
	// the dictionary and reverse-dictionary matchers. Nil or empty
	// means every built-in dictionary is used.
	DisabledDictionaries []string

	// HIBPChecker, if set, is consulted to check whether the password
	// appears in a real-world breach corpus (e.g. a
	// [github.com/rsilva/zxcvbn/hibp.Client]). A hit is folded in as a
	// rank-1 dictionary match. This is strictly optional: the estimator
	// never makes network calls on its own, and a nil Checker (the
	// default) disables this entirely.
	HIBPChecker hibpcheck.Checker

	// HIBPMinOccurrences is the minimum breach count required before a
	// HIBPChecker hit counts as a match (default 1).
	HIBPMinOccurrences int

	// HIBPResult, if set, is used in place of calling HIBPChecker —
	// useful when the caller already performed the lookup.
	HIBPResult *hibpcheck.Result
}

// DefaultConfig returns the recommended configuration: every built-in
// dictionary enabled, a generous max length.
func DefaultConfig() Config {
	return Config{
		MaxPasswordLength: 1024,
	}
}

// Validate checks the configuration for invalid values and returns an
// error describing the first problem found.
func (c Config) Validate() error {
	if c.MaxPasswordLength < 1 {
		return fmt.Errorf("zxcvbn: MaxPasswordLength must be >= 1, got %d", c.MaxPasswordLength)
	}
	return nil
}

func (c Config) disabled(name string) bool {
	for _, d := range c.DisabledDictionaries {
		if d == name {
			return true
		}
	}
	return false
}
