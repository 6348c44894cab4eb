// Package dictionary finds every substring of a password that appears,
// verbatim, in one of the built-in ranked word lists.
package dictionary

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/rsilva/zxcvbn/internal/data"
	"github.com/rsilva/zxcvbn/internal/match"
)

// automatons caches one Aho-Corasick automaton per dictionary so
// repeated calls to Match don't rebuild the trie every time; building
// it once lets a password with no dictionary words at all skip the
// exhaustive substring scan entirely.
var automatons = buildAutomatons()

func buildAutomatons() map[string]*ahocorasick.Automaton {
	out := make(map[string]*ahocorasick.Automaton, len(data.Dictionaries))
	for _, d := range data.Dictionaries {
		builder := ahocorasick.NewBuilder()
		for w := range d.Rank {
			builder.AddPattern([]byte(w))
		}
		auto, err := builder.Build()
		if err != nil {
			continue
		}
		out[d.Name] = auto
	}
	return out
}

// Match finds every Dictionary match in password across all built-in
// dictionaries plus any extra words the caller supplies. password is
// matched case-insensitively; Token preserves the original casing of
// the matched region, matchedWord is always lowercase.
//
// Per spec, every (i, j) substring is tested against every dictionary,
// independent of any other match found; overlapping and nested matches
// are all reported and left for the optimizer to choose between.
func Match(password string, userWords []string) []match.Match {
	lowered := strings.ToLower(password)
	runes := []rune(password)
	loweredRunes := []rune(lowered)

	var out []match.Match

	loweredBytes := []byte(lowered)
	for _, d := range data.Dictionaries {
		if auto := automatons[d.Name]; auto != nil && !auto.IsMatch(loweredBytes) {
			continue
		}
		out = append(out, scanDictionary(runes, loweredRunes, d)...)
	}

	if len(userWords) > 0 {
		out = append(out, scanDictionary(runes, loweredRunes, userDictionary(userWords))...)
	}

	match.ByStartEnd(out)
	return out
}

// userDictionary builds an ad hoc, unranked dictionary from caller-
// supplied context words (username, email, company name, ...), ranked
// in the order given since there is no independent frequency signal.
func userDictionary(words []string) *data.Dictionary {
	d := &data.Dictionary{Name: "User words", Rank: make(map[string]int, len(words))}
	rank := 1
	for _, w := range words {
		lw := strings.ToLower(w)
		if lw == "" {
			continue
		}
		if _, exists := d.Rank[lw]; exists {
			continue
		}
		d.Rank[lw] = rank
		rank++
	}
	return d
}

func scanDictionary(runes, loweredRunes []rune, d *data.Dictionary) []match.Match {
	n := len(runes)
	var out []match.Match
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			word := string(loweredRunes[i : j+1])
			rank, ok := d.Rank[word]
			if !ok {
				continue
			}
			out = append(out, match.Match{
				Pattern: match.PatternDictionary,
				Start:   i,
				End:     j,
				Token:   string(runes[i : j+1]),
				Data: match.Data{Dictionary: &match.DictionaryData{
					MatchedWord:    word,
					Rank:           rank,
					DictionaryName: d.Name,
				}},
			})
		}
	}
	return out
}
