package data

// Dictionary is a ranked word list: Rank maps a lowercase word to its
// 1-based position in the source list, where 1 is the most common entry.
// Lower rank means fewer guesses for an attacker who tries common words
// first.
type Dictionary struct {
	Name string
	Rank map[string]int
}

// Lookup reports the rank of word in the dictionary, if present.
func (d *Dictionary) Lookup(word string) (rank int, ok bool) {
	rank, ok = d.Rank[word]
	return rank, ok
}

// rawDictionary is an unprocessed source list before cross-dictionary
// deduplication and per-list truncation are applied.
type rawDictionary struct {
	name  string
	words []string
	cap   int // 0 means untruncated
}

// Per-list truncation limits. The male and female name lists are left
// untruncated.
const (
	capTVAndFilm = 30000
	capWikipedia = 30000
	capPasswords = 30000
	capSurnames  = 10000
)

var rawDictionaries = []rawDictionary{
	{name: "Passwords", words: passwordsRaw, cap: capPasswords},
	{name: "Wikipedia", words: wikipediaRaw, cap: capWikipedia},
	{name: "US TV and film", words: tvAndFilmRaw, cap: capTVAndFilm},
	{name: "Surnames", words: surnamesRaw, cap: capSurnames},
	{name: "Male names", words: maleNamesRaw, cap: 0},
	{name: "Female names", words: femaleNamesRaw, cap: 0},
}

// Dictionaries holds every built-in dictionary after cross-list
// deduplication (each word kept only in the list where it has its best
// rank) and per-list truncation, in the fixed order of rawDictionaries
// so the dictionary matcher iterates deterministically.
var Dictionaries []*Dictionary

// Passwords, Wikipedia, TVAndFilm, Surnames, MaleNames, and FemaleNames
// are the six built-in dictionaries, exposed individually for callers
// that need a specific list (e.g. feedback generation branching on
// dictionary name).
var (
	Passwords   *Dictionary
	Wikipedia   *Dictionary
	TVAndFilm   *Dictionary
	Surnames    *Dictionary
	MaleNames   *Dictionary
	FemaleNames *Dictionary
)

func init() {
	type owner struct {
		list string
		rank int
	}
	best := make(map[string]owner)

	for _, rd := range rawDictionaries {
		for i, w := range rd.words {
			rank := i + 1
			if o, ok := best[w]; !ok || rank < o.rank {
				best[w] = owner{list: rd.name, rank: rank}
			}
		}
	}

	byName := make(map[string]*Dictionary, len(rawDictionaries))
	for _, rd := range rawDictionaries {
		d := &Dictionary{Name: rd.name, Rank: make(map[string]int)}
		next := 1
		for _, w := range rd.words {
			if best[w].list != rd.name {
				continue // owned by a list where this word ranks better
			}
			if rd.cap > 0 && next > rd.cap {
				break
			}
			d.Rank[w] = next
			next++
		}
		byName[rd.name] = d
		Dictionaries = append(Dictionaries, d)
	}

	Passwords = byName["Passwords"]
	Wikipedia = byName["Wikipedia"]
	TVAndFilm = byName["US TV and film"]
	Surnames = byName["Surnames"]
	MaleNames = byName["Male names"]
	FemaleNames = byName["Female names"]
}
