package data

// tvAndFilmRaw is the "US TV and film" dictionary: titles and proper
// nouns from popular American television and film, the same pop-culture
// category the teacher's word lists drew from (startrek, gotham, arkham,
// and similar franchise terms).
var tvAndFilmRaw = []string{
	"starwars", "startrek", "terminator", "avatar", "gandalf",
	"frodo", "legolas", "aragorn", "sauron", "hogwarts",
	"dumbledore", "voldemort", "snape", "hermione", "gryffindor",
	"slytherin", "naruto", "sasuke", "goku", "vegeta",
	"dragonball", "onepiece", "luffy", "deadpool", "wolverine",
	"magneto", "thanos", "hulk", "captain", "gotham",
	"arkham", "simpsons", "familyguy", "southpark", "futurama",
	"frozen", "moana", "stargate", "breakingbad", "thesopranos",
	"seinfeld", "friends", "thewalkingdead", "gameofthrones", "strangerthings",
	"theoffice", "parksandrec", "westworld", "mandalorian",
}
