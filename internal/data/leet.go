package data

// Leet maps each plain letter to every symbol commonly substituted for it
// ("leetspeak"), mirroring the zxcvbn reference table: several symbols can
// stand in for the same letter ('a' is written "4" or "@"), and the l33t
// matcher must consider every substitution when undoing them, not just the
// first one found.
var Leet = map[rune]string{
	'a': "4@",
	'b': "8",
	'c': "({[<",
	'e': "3",
	'g': "69",
	'i': "1!|",
	'l': "1!7",
	'o': "0",
	's': "$5",
	't': "+7",
	'x': "%",
	'z': "2",
}

// LeetSubstitutions is the inverse of Leet: each substitute symbol maps to
// the set of plain letters it can stand for. A symbol like '1' is
// ambiguous between 'i' and 'l', which is why the l33t matcher must
// enumerate every combination rather than picking one substitution
// per symbol.
var LeetSubstitutions = buildLeetSubstitutions()

func buildLeetSubstitutions() map[rune][]rune {
	subs := make(map[rune][]rune)
	for letter, symbols := range Leet {
		for _, sym := range symbols {
			subs[sym] = append(subs[sym], letter)
		}
	}
	return subs
}
