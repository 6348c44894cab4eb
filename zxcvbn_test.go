package zxcvbn

import (
	"errors"
	"testing"

	"github.com/rsilva/zxcvbn/hibp"
)

var errTestHIBP = errors.New("network down")

func TestEvaluateEmptyPassword(t *testing.T) {
	r := Evaluate("", nil)
	if r.Guesses != 1 {
		t.Fatalf("Guesses = %d, want 1", r.Guesses)
	}
	if r.Score != VeryWeak {
		t.Fatalf("Score = %v, want VeryWeak", r.Score)
	}
	if len(r.Sequence) != 0 {
		t.Fatalf("Sequence = %+v, want empty", r.Sequence)
	}
}

func TestEvaluateCommonPasswordIsVeryWeak(t *testing.T) {
	r := Evaluate("password", nil)
	if r.Score != VeryWeak {
		t.Fatalf("Score for 'password' = %v, want VeryWeak", r.Score)
	}
}

func TestEvaluateRandomLongPasswordScoresHigher(t *testing.T) {
	weak := Evaluate("password", nil)
	strong := Evaluate("xK9$mQ2#vL7pT4&wR", nil)
	if strong.Guesses <= weak.Guesses {
		t.Fatalf("expected random password to need more guesses: weak=%d strong=%d", weak.Guesses, strong.Guesses)
	}
}

func TestEvaluateUserDictionaryPenalizesContextWord(t *testing.T) {
	withoutContext := Evaluate("mycompanyname", nil)
	withContext := Evaluate("mycompanyname", []string{"mycompanyname"})
	if withContext.Guesses >= withoutContext.Guesses {
		t.Fatalf("context word should reduce guesses: without=%d with=%d", withoutContext.Guesses, withContext.Guesses)
	}
}

func TestEvaluateWithConfigRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPasswordLength = 0
	if _, err := EvaluateWithConfig("x", nil, cfg); err == nil {
		t.Fatal("expected an error for MaxPasswordLength = 0")
	}
}

func TestEvaluateTruncatesLongInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPasswordLength = 4
	long := "abcdefghijklmnop"
	r, err := EvaluateWithConfig(long, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if r.Password != "abcd" {
		t.Fatalf("Password = %q, want truncated to 4 runes", r.Password)
	}
}

func TestEvaluateBytesZeroesInput(t *testing.T) {
	b := []byte("hunter2")
	Evaluate("warmup", nil) // ensure package init has run
	_ = EvaluateBytes(b, nil)
	for _, c := range b {
		if c != 0 {
			t.Fatal("EvaluateBytes did not zero its input slice")
		}
	}
}

func TestEvaluateDisabledDictionarySkipsMatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisabledDictionaries = []string{"Passwords"}
	withAll := Evaluate("password", nil)
	withDisabled, err := EvaluateWithConfig("password", nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if withDisabled.Guesses <= withAll.Guesses {
		t.Fatalf("disabling the Passwords list should raise the guess count: all=%d disabled=%d",
			withAll.Guesses, withDisabled.Guesses)
	}
}

func TestEvaluateHIBPCheckerPenalizesBreachedPassword(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HIBPChecker = &hibp.MockClient{
		CheckFunc: func(_ string) (bool, int, error) { return true, 9001, nil },
	}
	strongRandom := "xK9$mQ2#vL7pT4&wR"
	without, err := EvaluateWithConfig(strongRandom, nil, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	with, err := EvaluateWithConfig(strongRandom, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if with.Guesses >= without.Guesses {
		t.Fatalf("a reported breach should collapse guesses to rank 1: without=%d with=%d",
			without.Guesses, with.Guesses)
	}
}

func TestEvaluateHIBPCheckerErrorDegradesGracefully(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HIBPChecker = &hibp.MockClient{
		CheckFunc: func(_ string) (bool, int, error) { return true, 9001, errTestHIBP },
	}
	if _, err := EvaluateWithConfig("xK9$mQ2#vL7pT4&wR", nil, cfg); err != nil {
		t.Fatalf("HIBP errors must never surface as an evaluation error: %v", err)
	}
}

func TestResultStringContainsScore(t *testing.T) {
	s := Evaluate("password", nil).String()
	if s == "" {
		t.Fatal("String() should not be empty")
	}
}
