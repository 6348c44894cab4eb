package data

// femaleNamesRaw is the "Female names" dictionary, ordered by approximate
// US census name-frequency rank, mirroring how the teacher's password
// list already mixed in the same given names (jennifer, samantha,
// michelle, ...) as common password material.
var femaleNamesRaw = []string{
	"mary", "jennifer", "michelle", "jessica", "samantha",
	"elizabeth", "sarah", "hannah", "rachel", "stephanie",
	"lauren", "natalie", "alexis", "alyssa", "abigail",
	"olivia", "madison", "isabella", "sophia", "emma",
	"mia", "maria", "patricia", "linda", "barbara",
	"margaret", "susan", "dorothy", "betty", "sandra",
	"carol", "nancy", "deborah", "karen", "helen",
	"donna", "emily", "abby", "grace", "lily",
	"chloe", "victoria", "natasha", "rebecca", "christina",
	"heather", "angela", "diana", "crystal", "andrea",
	"amber", "vanessa", "tiffany", "brittany", "mercedes",
	"chelsea", "nicole", "amanda", "ashley", "katherine",
}
