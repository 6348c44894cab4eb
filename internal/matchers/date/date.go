// Package date finds dates embedded in a password, with or without
// separator characters ("19900101", "1990-01-01", "1/1/90").
package date

import (
	"time"

	"github.com/coregx/coregex"

	"github.com/rsilva/zxcvbn/internal/match"
)

// separatorPattern captures a date with a separator between each
// component. The reference zxcvbn pattern uses a backreference (\2) to
// require both separators to be identical; coregex, like most
// from-scratch regex engines, doesn't support backreferences, so the
// separator is captured twice and compared for equality after the fact.
var separatorPattern = coregex.MustCompile(`^(\d{1,4})([\s/\\_.\-])(\d{1,2})([\s/\\_.\-])(\d{1,4})$`)

// minWindow and maxWindow bound the length of a window tried by the
// separator-date scan, from 6 characters ("1/1/90") to 10
// ("1990-01-01"); shorter and longer windows are not tried.
const (
	minWindow = 6
	maxWindow = 10
)

// Match finds every Date match in password: digit-only runs of 4-8
// characters that decompose into a plausible day/month/year, and
// separator-delimited windows of 6-10 characters of the same shape.
func Match(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match

	out = append(out, matchNoSeparator(runes)...)
	out = append(out, matchWithSeparator(runes)...)

	match.ByStartEnd(out)
	return out
}

func matchNoSeparator(runes []rune) []match.Match {
	n := len(runes)
	var out []match.Match

	i := 0
	for i < n {
		if !isDigit(runes[i]) {
			i++
			continue
		}
		j := i
		for j+1 < n && isDigit(runes[j+1]) && j-i+1 < 8 {
			j++
		}
		length := j - i + 1

		for l := length; l >= 4; l-- {
			if l > 8 {
				continue
			}
			token := runes[i : i+l]
			if d, ok := bestDateInDigits(token); ok {
				out = append(out, match.Match{
					Pattern: match.PatternDate,
					Start:   i,
					End:     i + l - 1,
					Token:   string(token),
					Data:    match.Data{Date: &d},
				})
				break
			}
		}

		i = j + 1
	}

	return out
}

func bestDateInDigits(token []rune) (match.DateData, bool) {
	for _, split := range splitsFor(len(token)) {
		a := atoi(token[0:split[0]])
		b := atoi(token[split[0]:split[1]])
		c := atoi(token[split[1]:])
		if year, month, day, ok := mapIntsToDMY(a, b, c); ok {
			return match.DateData{Year: year, Month: month, Day: day}, true
		}
	}
	return match.DateData{}, false
}

// splitsFor returns the predefined positions at which a digit run of
// the given length can be divided into three day/month/year components.
func splitsFor(length int) [][2]int {
	switch length {
	case 4:
		return [][2]int{{1, 2}, {2, 3}}
	case 5:
		return [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}}
	case 6:
		return [][2]int{{1, 2}, {2, 4}, {4, 5}}
	case 7:
		return [][2]int{{1, 3}, {2, 3}, {4, 5}, {4, 6}}
	case 8:
		return [][2]int{{2, 4}, {4, 6}}
	default:
		return nil
	}
}

func matchWithSeparator(runes []rune) []match.Match {
	n := len(runes)
	var out []match.Match

	for size := minWindow; size <= maxWindow; size++ {
		for i := 0; i+size <= n; i++ {
			window := string(runes[i : i+size])
			idx := separatorPattern.FindStringSubmatchIndex(window)
			if idx == nil {
				continue
			}
			sep1 := window[idx[4]:idx[5]]
			sep2 := window[idx[8]:idx[9]]
			if sep1 != sep2 {
				continue
			}
			a := atoiString(window[idx[2]:idx[3]])
			b := atoiString(window[idx[6]:idx[7]])
			c := atoiString(window[idx[10]:idx[11]])
			year, month, day, ok := mapIntsToDMY(a, b, c)
			if !ok {
				continue
			}
			out = append(out, match.Match{
				Pattern: match.PatternDate,
				Start:   i,
				End:     i + size - 1,
				Token:   window,
				Data: match.Data{Date: &match.DateData{
					Separator: []rune(sep1)[0],
					Year:      year,
					Month:     month,
					Day:       day,
				}},
			})
		}
	}

	return out
}

// mapIntsToDMY tries to read three integers as a day, month, and year in
// either of the two plausible orders zxcvbn considers, preferring
// whichever produces a valid calendar date with a year closest to now.
func mapIntsToDMY(a, b, c int) (year, month, day int, ok bool) {
	type candidate struct{ year, month, day int }
	var candidates []candidate

	tryYear := func(yearRaw, x, y int) {
		var year int
		switch {
		case yearRaw >= 1000 && yearRaw <= 2050:
			year = yearRaw
		case yearRaw >= 0 && yearRaw <= 99:
			year = twoToFourDigitYear(yearRaw)
		default:
			return
		}
		day, month, ok := mapIntsToDM(x, y)
		if !ok || !validCalendarDate(year, month, day) {
			return
		}
		candidates = append(candidates, candidate{year: year, month: month, day: day})
	}

	tryYear(c, a, b)
	tryYear(a, b, c)

	if len(candidates) == 0 {
		return 0, 0, 0, false
	}

	now := time.Now().Year()
	best := candidates[0]
	bestDiff := abs(best.year - now)
	for _, cand := range candidates[1:] {
		if d := abs(cand.year - now); d < bestDiff {
			best, bestDiff = cand, d
		}
	}
	return best.year, best.month, best.day, true
}

// mapIntsToDM accepts x, y as (day, month) or (month, day), whichever
// orientation is in range, preferring (day, month) when both are.
func mapIntsToDM(x, y int) (day, month int, ok bool) {
	if x >= 1 && x <= 31 && y >= 1 && y <= 12 {
		return x, y, true
	}
	if y >= 1 && y <= 31 && x >= 1 && x <= 12 {
		return y, x, true
	}
	return 0, 0, false
}

func twoToFourDigitYear(y int) int {
	if y > 50 {
		return 1900 + y
	}
	return 2000 + y
}

func validCalendarDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func atoi(runes []rune) int {
	return atoiString(string(runes))
}

func atoiString(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
