package data

// maleNamesRaw is the "Male names" dictionary, ordered by approximate US
// census name-frequency rank.
var maleNamesRaw = []string{
	"michael", "daniel", "robert", "william", "thomas",
	"james", "joseph", "richard", "charles", "david",
	"christopher", "anthony", "john", "alexander", "benjamin",
	"nicholas", "jonathan", "jacob", "ethan", "nathan",
	"kevin", "jason", "brian", "brandon", "justin",
	"tyler", "aaron", "adam", "patrick", "ryan",
	"timothy", "eric", "steven", "mark", "scott",
	"paul", "kenneth", "jeffrey", "frank", "raymond",
	"gregory", "samuel", "henry", "peter", "douglas",
	"dennis", "jerry", "walter", "arthur", "albert",
	"gerald", "lawrence", "larry", "matthew", "joshua",
	"andrew", "george", "charlie", "jordan", "harley",
}
