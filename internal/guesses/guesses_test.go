package guesses

import (
	"testing"

	"github.com/rsilva/zxcvbn/internal/match"
)

func TestFactorial(t *testing.T) {
	cases := map[uint64]uint64{0: 1, 1: 1, 2: 2, 3: 6, 10: 3628800}
	for n, want := range cases {
		if got := Factorial(n); got != want {
			t.Errorf("Factorial(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNCk(t *testing.T) {
	cases := []struct{ n, k, want uint64 }{
		{2, 1, 2},
		{2, 2, 1},
		{2, 3, 0},
		{85, 5, 32801517},
	}
	for _, c := range cases {
		if got := NCk(c.n, c.k); got != c.want {
			t.Errorf("NCk(%d, %d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestDictionaryGuessesTopHit(t *testing.T) {
	m := match.Match{
		Pattern: match.PatternDictionary,
		Token:   "password",
		Data: match.Data{Dictionary: &match.DictionaryData{
			MatchedWord: "password",
			Rank:        1,
		}},
	}
	if got := Estimate(m, 8); got != 1 {
		t.Errorf("Estimate = %d, want 1", got)
	}
}

func TestDictionaryGuessesReversedDoubles(t *testing.T) {
	plain := match.Match{
		Pattern: match.PatternDictionary,
		Token:   "password",
		Data:    match.Data{Dictionary: &match.DictionaryData{Rank: 3}},
	}
	reversed := plain
	reversed.Data.Dictionary = &match.DictionaryData{Rank: 3, Reversed: true}

	if Estimate(reversed, 8) != 2*Estimate(plain, 8) {
		t.Errorf("reversed match should cost exactly 2x a non-reversed match of the same rank")
	}
}

func TestUppercaseVariationsAllLowerIsOne(t *testing.T) {
	if got := uppercaseVariations("password"); got != 1 {
		t.Errorf("uppercaseVariations(\"password\") = %d, want 1", got)
	}
}

func TestUppercaseVariationsFirstCapital(t *testing.T) {
	if got := uppercaseVariations("Password"); got != 2 {
		t.Errorf("uppercaseVariations(\"Password\") = %d, want 2", got)
	}
}

func TestSubmatchFloor(t *testing.T) {
	m := match.Match{
		Pattern: match.PatternRegex,
		Token:   "a",
		Data:    match.Data{Regex: &match.RegexData{Name: "unused"}},
	}
	if got := Estimate(m, 10); got != minSubmatchGuessesSingleChar {
		t.Errorf("Estimate = %d, want floor %d", got, minSubmatchGuessesSingleChar)
	}
}

func TestBruteforceGuessesGrowsWithLength(t *testing.T) {
	short := match.Bruteforce([]rune("ab"), 0, 1)
	long := match.Bruteforce([]rune("abcd"), 0, 3)
	if Estimate(long, 4) <= Estimate(short, 2) {
		t.Error("longer bruteforce token must require more guesses")
	}
}
