package zxcvbn

import (
	"fmt"
	"strings"

	"github.com/rsilva/zxcvbn/internal/feedback"
	"github.com/rsilva/zxcvbn/internal/match"
	"github.com/rsilva/zxcvbn/internal/scoring"
)

// Score is the overall strength verdict, from VeryWeak to VeryStrong.
type Score = scoring.Score

// Re-export the Score constants so callers never need to import the
// internal scoring package directly.
const (
	VeryWeak   = scoring.VeryWeak
	Weak       = scoring.Weak
	Medium     = scoring.Medium
	Strong     = scoring.Strong
	VeryStrong = scoring.VeryStrong
)

// CrackTimes estimates, in seconds, how long exhausting Result.Guesses
// would take under four attacker models.
type CrackTimes = scoring.CrackTimes

// Feedback carries user-facing advice about a password's weaknesses.
type Feedback = feedback.Feedback

// MatchSummary is the public view of one entry in the winning match
// sequence: enough to render a breakdown without exposing internal
// match bookkeeping.
type MatchSummary struct {
	Pattern string
	Token   string
	Start   int
	End     int
	Guesses uint64
}

// Result holds the outcome of evaluating a password.
type Result struct {
	// Password is the (possibly truncated) input that was evaluated.
	Password string

	// Guesses is the estimated number of guesses an attacker needs to
	// find this password, following the lowest-cost match decomposition.
	Guesses uint64

	// GuessesLog10 is Guesses in log10 space.
	GuessesLog10 float64

	// Score buckets Guesses into a human verdict.
	Score Score

	// CrackTimes estimates cracking time under four attacker models.
	CrackTimes CrackTimes

	// Feedback offers advice based on the winning match sequence.
	Feedback Feedback

	// Sequence is the winning, non-overlapping decomposition of the
	// password into matches, in left-to-right order.
	Sequence []MatchSummary

	// CalculationTimeMs is how long evaluation took, in milliseconds.
	CalculationTimeMs float64
}

func newResult(password string, seq []match.Match, guesses uint64, elapsedMs float64) Result {
	score := scoring.FromGuesses(guesses)
	strong := score == Strong || score == VeryStrong

	summaries := make([]MatchSummary, len(seq))
	for i, m := range seq {
		summaries[i] = MatchSummary{
			Pattern: string(m.Pattern),
			Token:   m.Token,
			Start:   m.Start,
			End:     m.End,
			Guesses: m.Guesses,
		}
	}

	return Result{
		Password:          password,
		Guesses:           guesses,
		GuessesLog10:      scoring.GuessesLog10(guesses),
		Score:             score,
		CrackTimes:        scoring.NewCrackTimes(guesses),
		Feedback:          feedback.Generate(seq, strong, scoring.GuessesLog10(guesses)),
		Sequence:          summaries,
		CalculationTimeMs: elapsedMs,
	}
}

// String renders Result the way original_source/src/result.rs's
// PasswordResult Display impl does: a labeled block with guesses, crack
// times under each attacker model, and feedback.
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Guesses:\t\t%d\n", r.Guesses)
	fmt.Fprintf(&b, "Guesses log10:\t\t%.2f\n", r.GuessesLog10)
	fmt.Fprintf(&b, "Score:\t\t\t%s\n", r.Score)
	b.WriteString("Crack times:\n")
	b.WriteString(r.CrackTimes.String())
	if r.Feedback.Advice != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Feedback.Advice)
	}
	if r.Feedback.Suggestions != "" {
		fmt.Fprintf(&b, "%s\n", r.Feedback.Suggestions)
	}
	return b.String()
}
