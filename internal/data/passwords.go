package data

// passwordsRaw is the "Passwords" dictionary: well-known weak passwords
// compiled from public breach data (RockYou, LinkedIn, Adobe, and similar
// corpora), ordered roughly by real-world frequency. Rank is the 1-based
// position among the entries kept after cross-list deduplication, so a
// word kept in another list does not take up a rank here.
//
// All entries are lowercase; callers must lowercase before lookup.
var passwordsRaw = []string{
	"password", "123456", "12345678", "qwerty", "123456789",
	"12345", "1234", "111111", "1234567", "dragon",
	"123123", "baseball", "abc123", "football", "monkey",
	"letmein", "shadow", "master", "666666", "qwertyuiop",
	"123321", "mustang", "1234567890", "michael", "654321",
	"superman", "1qaz2wsx", "7777777", "121212", "000000",
	"qazwsx", "123qwe", "killer", "trustno1", "jordan",
	"jennifer", "zxcvbnm", "asdfgh", "hunter", "buster",
	"soccer", "harley", "batman", "andrew", "tigger",
	"sunshine", "iloveyou", "charlie", "robert", "thomas",
	"hockey", "ranger", "daniel", "starwars", "klaster",
	"112233", "george", "computer", "michelle", "jessica",
	"pepper", "zxcvbn", "555555", "11111111", "131313",
	"freedom", "777777", "pass", "maggie", "159753",
	"aaaaaa", "ginger", "princess", "joshua", "cheese",
	"amanda", "summer", "love", "ashley", "nicole",
	"chelsea", "biteme", "matthew", "access", "yankees",
	"dallas", "austin", "thunder", "taylor", "matrix",
	"minecraft", "william", "password1", "password12", "password123",
	"abc1234", "qwerty123", "qwerty1", "admin", "admin123",
	"root", "toor", "pass123", "changeme", "welcome",
	"welcome1", "login", "hello", "test", "guest",
	"master123", "monkey123", "dragon123", "shadow123", "sunshine1",
	"princess1", "passw0rd", "p@ssword", "p@ssw0rd", "1q2w3e4r",
	"q1w2e3r4", "zaq1xsw2", "qweasdzxc", "asdf1234", "zxcv1234",
	"asdfghjkl", "poiuytrewq", "1234qwer", "qwer1234", "102030",
	"010203", "252525", "101010", "999999", "123654",
	"456789", "789456", "147258369", "321654987", "159357",
	"951753", "christopher", "anthony", "david", "james",
	"john", "joseph", "richard", "charles", "elizabeth",
	"samantha", "sarah", "hannah", "rachel", "stephanie",
	"lauren", "natalie", "alexis", "alyssa", "abigail",
	"olivia", "madison", "isabella", "sophia", "emma",
	"mia", "alexander", "benjamin", "nicholas", "jonathan",
	"jacob", "ethan", "nathan", "kevin", "jason",
	"brian", "brandon", "justin", "tyler", "aaron",
	"adam", "patrick", "ryan", "timothy", "eric",
	"steven", "mark", "scott", "paul", "kenneth",
	"pokemon", "spiderman", "ironman", "avengers", "fortnite",
	"roblox", "mario", "zelda", "pikachu", "playstation",
	"xbox", "nintendo", "sonic", "pacman", "tetris",
	"lakers", "cowboys", "eagles", "patriots", "ronaldo",
	"messi", "arsenal", "liverpool", "barcelona", "champion",
	"fuckyou", "whatever", "nothing", "secret", "internet",
	"google", "facebook", "twitter", "youtube", "amazon",
	"apple", "microsoft", "instagram", "tiktok", "snapchat",
	"reddit", "linkedin", "netflix", "spotify", "twitch",
	"2001", "2002", "2003", "2004", "2005",
	"2010", "2015", "2020", "2021", "2022",
	"2023", "2024", "2025", "2026", "1990",
	"1991", "1995", "1999", "tiger", "falcon",
	"eagle", "wolf", "panther", "cobra", "viper",
	"kitten", "puppy", "doggy", "kitty", "bunny",
	"horse", "stallion", "pony", "dolphin", "whale",
	"shark", "octopus", "butterfly", "phoenix", "unicorn",
	"linux", "windows", "macos", "android", "iphone",
	"laptop", "desktop", "server", "network", "wifi",
	"bluetooth", "database", "python", "java", "html",
	"coding", "hacker", "cyber", "crypto", "bitcoin",
	"ethereum", "blockchain", "wallet", "chocolate", "coffee",
	"banana", "cherry", "lemon", "mango", "pizza",
	"burger", "candy", "cookie", "butter", "chicken",
	"america", "london", "paris", "tokyo", "berlin",
	"moscow", "sydney", "toronto", "chicago", "boston",
	"guitar", "piano", "drums", "violin", "trumpet",
	"eminem", "drake", "beyonce", "rihanna", "madonna",
	"beatles", "metallica", "nirvana", "queen", "flower",
	"garden", "river", "ocean", "mountain", "forest",
	"beach", "island", "castle", "tower", "sunrise",
	"sunset", "rainbow", "diamond", "emerald", "ruby",
	"sapphire", "pearl", "wizard", "magic", "merlin",
	"excalibur", "camelot", "knight", "paladin", "fairy",
	"goblin", "troll", "demon", "vampire", "werewolf",
	"zombie", "ghost", "warrior", "legend", "phantom",
	"samurai", "ninja", "pirate", "treasure", "dungeon",
	"marine", "soldier", "general", "colonel", "sergeant",
	"sniper", "rifle", "pistol", "bullet", "weapon",
	"corvette", "camaro", "mustang1", "ferrari", "porsche",
	"lamborghini", "tesla", "harley1", "yamaha", "blahblah",
	"passwd", "golden", "sparky", "spartan", "silver",
	"midnight", "purple", "orange", "prince", "trustme",
	"opendoor", "opensesame", "letmepass", "security", "safety",
	"anonymous", "nobody", "someone", "mybaby", "myangel",
	"aaa", "abcabc", "xyzxyz", "qweqwe", "asdasd",
	"aaaa", "bbbb", "cccc", "aaaaa", "bbbbb",
}

