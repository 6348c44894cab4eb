package date

import (
	"testing"

	"github.com/rsilva/zxcvbn/internal/match"
)

func findDate(t *testing.T, matches []match.Match, token string) *match.DateData {
	t.Helper()
	for _, m := range matches {
		if m.Token == token {
			return m.Data.Date
		}
	}
	t.Fatalf("no date match found for token %q in %+v", token, matches)
	return nil
}

func TestMatchNoSeparatorFullDate(t *testing.T) {
	d := findDate(t, Match("19900101"), "19900101")
	if d.Year != 1990 || d.Month != 1 || d.Day != 1 {
		t.Fatalf("got %+v, want 1990-01-01", d)
	}
}

func TestMatchNoSeparatorShortYear(t *testing.T) {
	d := findDate(t, Match("010199"), "010199")
	if d.Day != 1 || d.Month != 1 || d.Year != 1999 {
		t.Fatalf("got %+v, want 1999-01-01", d)
	}
}

func TestMatchWithSeparatorSlash(t *testing.T) {
	d := findDate(t, Match("1/1/1990"), "1/1/1990")
	if d.Year != 1990 || d.Month != 1 || d.Day != 1 || d.Separator != '/' {
		t.Fatalf("got %+v, want 1990-01-01 with '/'", d)
	}
}

func TestMatchWithSeparatorDash(t *testing.T) {
	d := findDate(t, Match("1990-01-01"), "1990-01-01")
	if d.Year != 1990 || d.Month != 1 || d.Day != 1 || d.Separator != '-' {
		t.Fatalf("got %+v, want 1990-01-01 with '-'", d)
	}
}

func TestMatchWithSeparatorRequiresMatchingSeparators(t *testing.T) {
	for _, m := range Match("1990-01/01") {
		if m.Token == "1990-01/01" {
			t.Fatalf("mismatched separators should not match: %+v", m)
		}
	}
}

func TestMapIntsToDMYRejectsInvalidDate(t *testing.T) {
	if _, _, _, ok := mapIntsToDMY(2, 31, 90); ok {
		t.Fatal("February 31 should never be a valid date")
	}
}

func TestMapIntsToDMYPrefersYearNearPresent(t *testing.T) {
	year, _, _, ok := mapIntsToDMY(1, 2, 3)
	if !ok {
		t.Fatal("expected a valid interpretation of 1-2-3")
	}
	if year != 2003 {
		t.Fatalf("year = %d, want 2003 (closer to the present than 2001)", year)
	}
}

func TestTwoToFourDigitYear(t *testing.T) {
	if got := twoToFourDigitYear(90); got != 1990 {
		t.Fatalf("twoToFourDigitYear(90) = %d, want 1990", got)
	}
	if got := twoToFourDigitYear(5); got != 2005 {
		t.Fatalf("twoToFourDigitYear(5) = %d, want 2005", got)
	}
}

func TestMatchIgnoresPlainDigitsTooShort(t *testing.T) {
	if len(Match("123")) != 0 {
		t.Fatal("3-digit run should never match as a date")
	}
}
