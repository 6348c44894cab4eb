package sequence

import (
	"testing"

	"github.com/rsilva/zxcvbn/internal/match"
)

func findSequence(t *testing.T, matches []match.Match, start, end int) *match.SequenceData {
	t.Helper()
	for _, m := range matches {
		if m.Start == start && m.End == end {
			return m.Data.Sequence
		}
	}
	t.Fatalf("no sequence match covering [%d,%d] in %+v", start, end, matches)
	return nil
}

// "123456789" -> one Sequence match [0,8], name="digits", space=10, ascending=true.
func TestMatchAscendingDigits(t *testing.T) {
	s := findSequence(t, Match("123456789"), 0, 8)
	if s.Name != match.SequenceDigits {
		t.Fatalf("name = %q, want digits", s.Name)
	}
	if s.Space != 10 {
		t.Fatalf("space = %d, want 10", s.Space)
	}
	if !s.Ascending {
		t.Fatal("expected ascending = true")
	}
}

func TestMatchDescendingLetters(t *testing.T) {
	s := findSequence(t, Match("fedcba"), 0, 5)
	if s.Name != match.SequenceLower {
		t.Fatalf("name = %q, want lower", s.Name)
	}
	if s.Space != 26 {
		t.Fatalf("space = %d, want 26", s.Space)
	}
	if s.Ascending {
		t.Fatal("expected ascending = false")
	}
}

func TestMatchUppercaseSequenceSpace(t *testing.T) {
	s := findSequence(t, Match("ACEGI"), 0, 4)
	if s.Name != match.SequenceUpper {
		t.Fatalf("name = %q, want upper", s.Name)
	}
	if s.Space != 26 {
		t.Fatalf("space = %d, want 26", s.Space)
	}
}

func TestMatchIgnoresRunsBelowMinLength(t *testing.T) {
	for _, m := range Match("ab") {
		t.Fatalf("a 2-char run should never count as a sequence: %+v", m)
	}
}
