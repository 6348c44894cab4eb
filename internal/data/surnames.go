package data

// surnamesRaw is the "Surnames" dictionary, ordered by approximate US
// census surname-frequency rank.
var surnamesRaw = []string{
	"smith", "johnson", "williams", "brown", "jones",
	"garcia", "miller", "davis", "rodriguez", "martinez",
	"hernandez", "lopez", "gonzalez", "wilson", "anderson",
	"thomas", "taylor", "moore", "jackson", "martin",
	"lee", "perez", "thompson", "white", "harris",
	"sanchez", "clark", "ramirez", "lewis", "robinson",
	"walker", "young", "allen", "king", "wright",
	"scott", "torres", "nguyen", "hill", "flores",
	"green", "adams", "nelson", "baker", "hall",
	"rivera", "campbell", "mitchell", "carter", "roberts",
}
