package regexmatch

import "testing"

func TestMatchFindsRecentYear(t *testing.T) {
	matches := Match("my1987password")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Token != "1987" {
		t.Fatalf("token = %q, want 1987", m.Token)
	}
	if m.Data.Regex.Name != "recent year" {
		t.Fatalf("pattern name = %q, want 'recent year'", m.Data.Regex.Name)
	}
	if m.Start != 2 || m.End != 5 {
		t.Fatalf("range = [%d,%d], want [2,5]", m.Start, m.End)
	}
}

func TestMatchIgnoresNonYearDigits(t *testing.T) {
	if matches := Match("abc123"); len(matches) != 0 {
		t.Fatalf("got %d matches, want 0: %+v", len(matches), matches)
	}
}

func TestMatchHandlesUnicodePrefix(t *testing.T) {
	matches := Match("café1999")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Token != "1999" {
		t.Fatalf("token = %q, want 1999", matches[0].Token)
	}
}
