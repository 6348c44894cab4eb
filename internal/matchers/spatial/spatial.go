// Package spatial finds keyboard walks: runs of characters that trace a
// short path across adjacent keys on a physical keyboard ("qwerty",
// "1qaz2wsx", "zxcvbn").
package spatial

import (
	"strings"

	"github.com/rsilva/zxcvbn/internal/data"
	"github.com/rsilva/zxcvbn/internal/match"
)

// MinLength is the shortest run considered a spatial match; two adjacent
// keys alone are too likely to occur by coincidence to be worth flagging.
const MinLength = 3

// Match scans password against every built-in keyboard graph and reports
// every maximal run of MinLength or more characters that traces a
// connected path through that graph. reversed walks are layout-adjacent
// like repeats: index 0 stays index 0 (a run in the other direction is
// already found when the scan reaches its start).
func Match(password string) []match.Match {
	runes := []rune(password)
	var out []match.Match

	for _, g := range data.Graphs {
		out = append(out, matchGraph(runes, g)...)
	}

	match.ByStartEnd(out)
	return out
}

func matchGraph(runes []rune, g data.KeyboardGraph) []match.Match {
	n := len(runes)
	var out []match.Match

	i := 0
	for i < n {
		j := i
		turns := 1
		shifted := 0
		if isShiftedIn(runes[i], g) {
			shifted++
		}
		var prevDir [2]float64
		haveDir := false

		for j+1 < n && adjacentIn(runes[j], runes[j+1], g) {
			dir := direction(runes[j], runes[j+1], g)
			if haveDir && dir != prevDir {
				turns++
			}
			prevDir = dir
			haveDir = true
			j++
			if isShiftedIn(runes[j], g) {
				shifted++
			}
		}

		if j-i+1 >= MinLength {
			out = append(out, match.Match{
				Pattern: match.PatternSpatial,
				Start:   i,
				End:     j,
				Token:   string(runes[i : j+1]),
				Data: match.Data{Spatial: &match.SpatialData{
					Graph:        g.Name,
					Turns:        turns,
					ShiftedCount: shifted,
				}},
			})
			i = j + 1
		} else {
			i++
		}
	}

	return out
}

func normalize(r rune, g data.KeyboardGraph) rune {
	lower := toLower(r)
	if _, ok := g.Adjacency[lower]; ok {
		return lower
	}
	for base, shifted := range g.Shifted {
		if shifted == r {
			return base
		}
	}
	return lower
}

func adjacentIn(a, b rune, g data.KeyboardGraph) bool {
	na := normalize(a, g)
	nb := normalize(b, g)
	for _, n := range g.Adjacency[na] {
		if n == nb {
			return true
		}
	}
	return false
}

func direction(a, b rune, g data.KeyboardGraph) [2]float64 {
	pa, okA := g.Positions[normalize(a, g)]
	pb, okB := g.Positions[normalize(b, g)]
	if !okA || !okB {
		return [2]float64{}
	}
	return [2]float64{sign(pb[0] - pa[0]), sign(pb[1] - pa[1])}
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}

func isShiftedIn(r rune, g data.KeyboardGraph) bool {
	for _, shifted := range g.Shifted {
		if shifted == r {
			return true
		}
	}
	return false
}

func toLower(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}
