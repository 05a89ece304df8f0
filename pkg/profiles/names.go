package profiles

// KnownCiphers is the canonical recognized cipher-name set. Names are
// case-sensitive and whitespace-preserving; the classifier and the display
// catalog must use these exact spellings.
var KnownCiphers = []string{
	"6x6bifid",
	"6x6playfair",
	"Autokey",
	"Bazeries",
	"Beaufort",
	"CONDI",
	"Grandpre",
	"Grandpre10x10",
	"Gromark",
	"NihilistSub6x6",
	"Patristocrat",
	"Quagmire I",
	"Quagmire II",
	"Quagmire III",
	"Quagmire IV",
	"Slidefair",
	"Swagman",
	"Variant",
	"Vigenere",
	"amsco",
	"bifid",
	"cadenus",
	"checkerboard",
	"cmBifid",
	"columnar",
	"compressocrat",
	"digrafid",
	"foursquare",
	"fractionatedMorse",
	"grille",
	"homophonic",
	"keyphrase",
	"monomeDinome",
	"morbit",
	"myszkowski",
	"nicodemus",
	"nihilistSub",
	"nihilistTramp",
	"numberedKey",
	"periodicGromark",
	"phillips",
	"playfair",
	"pollux",
	"porta",
	"portax",
	"progressiveKey",
	"ragbaby",
	"redefence",
	"routeTramp",
	"runningKey",
	"sequenceTramp",
	"seriatedPlayfair",
	"simplesubstitution",
	"syllabary",
	"tridigital",
	"trifid",
	"trisquare",
	"twosquare",
}
