package data

// wikipediaRaw stands in for the "Wikipedia" dictionary: common English
// words frequent enough in ordinary text that using one bare is barely
// better than using no word at all. Ordered roughly by frequency, the same
// way the original password checker's common-word list was assembled
// category by category.
var wikipediaRaw = []string{
	"password", "passwd", "secret", "private", "admin",
	"login", "access", "secure", "master", "credential",
	"computer", "internet", "system", "server", "network",
	"phone", "mobile", "laptop", "email", "account",
	"software", "hardware", "program", "database", "cloud",
	"digital", "online", "website", "browser", "download",
	"upload", "wireless", "bluetooth", "keyboard", "monitor",
	"printer", "router", "modem", "money", "dollar",
	"credit", "bank", "gold", "silver", "diamond",
	"crystal", "magic", "power", "bitcoin", "crypto",
	"wallet", "stock", "market", "profit", "business",
	"company", "corporate", "manager", "finance", "invest",
	"wealth", "fortune", "million", "billion", "salary",
	"energy", "fire", "water", "earth", "storm",
	"thunder", "shadow", "light", "dark", "night",
	"star", "moon", "heaven", "angel", "devil",
	"sunrise", "sunset", "ocean", "river", "mountain",
	"forest", "garden", "flower", "island", "beach",
	"desert", "jungle", "valley", "meadow", "canyon",
	"volcano", "glacier", "waterfall", "horizon", "aurora",
	"eclipse", "nebula", "comet", "meteor", "asteroid",
	"tornado", "hurricane", "blizzard", "avalanche", "rainbow",
	"snowflake", "lightning", "breeze", "frost", "dragon",
	"tiger", "eagle", "falcon", "wolf", "panther",
	"cobra", "viper", "monkey", "horse", "chicken",
	"kitten", "puppy", "bear", "lion", "shark",
	"phoenix", "unicorn", "dolphin", "whale", "elephant",
	"giraffe", "penguin", "parrot", "turtle", "butterfly",
	"spider", "scorpion", "gorilla", "leopard", "cheetah",
	"stallion", "mustang", "hawk", "raven", "sparrow",
	"robin", "owl", "flamingo", "pelican", "jaguar",
	"cougar", "coyote", "buffalo", "moose", "football",
	"baseball", "soccer", "hockey", "basketball", "tennis",
	"golf", "rugby", "cricket", "volleyball", "player",
	"winner", "champion", "legend", "warrior", "ninja",
	"pirate", "wizard", "samurai", "spartan", "boxing",
	"wrestling", "karate", "marathon", "sprint", "trophy",
	"medal", "victory", "defeat", "tournament", "batman",
	"superman", "spiderman", "ironman", "avengers", "starwars",
	"pokemon", "minecraft", "fortnite", "roblox", "marvel",
	"disney", "hogwarts", "naruto", "gandalf", "wolverine",
	"deadpool", "captain", "shield", "gotham", "joker",
	"thanos", "hulk", "summer", "winter", "spring",
	"autumn", "october", "november", "december", "january",
	"february", "forever", "today", "tomorrow", "yesterday",
	"morning", "midnight", "evening", "afternoon", "weekend",
	"holiday", "vacation", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday", "sunday", "love",
	"trust", "friend", "happy", "lucky", "freedom",
	"peace", "welcome", "hello", "sunshine", "smile",
	"dream", "hope", "faith", "courage", "strength",
	"honor", "glory", "destiny", "passion", "desire",
	"wonder", "inspire", "believe", "imagine", "create",
	"discover", "explore", "adventure", "journey", "spirit",
	"grace", "beauty", "truth", "wisdom", "knowledge",
	"justice", "mercy", "purple", "orange", "yellow",
	"green", "blue", "black", "white", "golden",
	"crimson", "scarlet", "violet", "indigo", "turquoise",
	"magenta", "cookie", "butter", "pepper", "ginger",
	"cheese", "chocolate", "coffee", "apple", "banana",
	"cherry", "lemon", "mango", "pizza", "burger",
	"candy", "vanilla", "caramel", "cinnamon", "nutmeg",
	"saffron", "steak", "sushi", "pasta", "noodle",
	"bacon", "waffle", "pancake", "brownie", "cupcake",
	"donut", "espresso", "latte", "smoothie", "cocktail",
	"google", "facebook", "twitter", "youtube", "amazon",
	"america", "london", "paris", "tokyo", "berlin",
	"sydney", "toronto", "chicago", "boston", "netflix",
	"spotify", "instagram", "tiktok", "music", "guitar",
	"piano", "dance", "rock", "metal", "jazz",
	"concert", "rhythm", "melody", "harmony", "symphony",
	"orchestra", "chorus", "lyric", "knight", "paladin",
	"sorcerer", "warlock", "shaman", "vampire", "werewolf",
	"zombie", "ghost", "demon", "goblin", "troll",
	"fairy", "treasure", "quest", "dungeon", "castle",
	"tower", "throne", "crown", "scepter", "artifact",
	"relic", "enchant", "mystical", "arcane", "divine",
	"eternal", "immortal", "soldier", "marine", "general",
	"colonel", "commander", "sniper", "rifle", "bullet",
	"weapon", "corvette", "ferrari", "porsche", "lamborghini",
	"tesla", "harley", "yamaha", "kawasaki", "killer",
	"hunter", "ranger", "charlie", "buster", "buddy",
	"prince", "hacker", "cyber", "matrix", "maverick",
	"rebel", "outlaw", "rogue", "stealth", "silent",
	"venom", "toxic", "chaos", "havoc", "fury",
	"rage", "blaze", "inferno", "nitro", "turbo",
	"rocket", "laser", "bolt", "flash", "spark", "flame",
}
