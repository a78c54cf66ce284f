package script

// Registered names of the builtin tables.
const (
	// KannadaName keys the Kannada table.
	KannadaName = "kannada"
	// SanskritDevanagariName keys the Sanskrit-in-Devanagari table.
	SanskritDevanagariName = "sanskrit-devanagari"
	// PrakritDevanagariName keys the Prakrit-in-Devanagari table.
	PrakritDevanagariName = "prakrit-devanagari"
)

// The three traditional 64-code tables. Each constructor builds a fresh
// Table from its Spec; the specs are total over [1,64], so Complete()
// holds for all three.

// Kannada returns the Kannada script table. Codes 61..63 are the combining
// signs: virāma, anusvāra, visarga.
func Kannada() *Table {
	t, err := New(Spec{
		Name: KannadaName,
		Glyphs: map[int]string{
			1: "ಅ", 2: "ಆ", 3: "ಇ", 4: "ಈ", 5: "ಉ", 6: "ಊ",
			7: "ಋ", 8: "ಎ", 9: "ಏ", 10: "ಐ", 11: "ಒ", 12: "ಓ",
			13: "ಔ", 14: "ಕ", 15: "ಖ", 16: "ಗ", 17: "ಘ",
			18: "ಙ", 19: "ಚ", 20: "ಛ", 21: "ಜ", 22: "ಝ",
			23: "ಞ", 24: "ಟ", 25: "ಠ", 26: "ಡ", 27: "ಢ",
			28: "ಣ", 29: "ತ", 30: "ಥ", 31: "ದ", 32: "ಧ",
			33: "ನ", 34: "ಪ", 35: "ಫ", 36: "ಬ", 37: "ಭ",
			38: "ಮ", 39: "ಯ", 40: "ರ", 41: "ಲ", 42: "ವ",
			43: "ಶ", 44: "ಷ", 45: "ಸ", 46: "ಹ", 47: "ಳ",
			48: "೦", 49: "೧", 50: "೨", 51: "೩", 52: "೪",
			53: "೫", 54: "೬", 55: "೭", 56: "೮", 57: "೯",
			58: "॰", 59: "।", 60: "॥", 61: "್", 62: "ಂ",
			63: "ಃ", 64: "ೱ",
		},
		Combining: []int{61, 62, 63},
	})
	if err != nil {
		panic(err) // builtin specs are total and constant
	}

	return t
}

// SanskritDevanagari returns the Sanskrit table in Devanagari. Its
// transcription carries no dependent signs (code 64 is the standalone
// avagraha), so the combining set is empty.
func SanskritDevanagari() *Table {
	t, err := New(Spec{
		Name: SanskritDevanagariName,
		Glyphs: map[int]string{
			1: "अ", 2: "आ", 3: "इ", 4: "ई", 5: "उ", 6: "ऊ",
			7: "ऋ", 8: "ॠ", 9: "ऌ", 10: "ॡ", 11: "ए", 12: "ऐ",
			13: "ओ", 14: "औ", 15: "क", 16: "ख", 17: "ग",
			18: "घ", 19: "ङ", 20: "च", 21: "छ", 22: "ज",
			23: "झ", 24: "ञ", 25: "ट", 26: "ठ", 27: "ड",
			28: "ढ", 29: "ण", 30: "त", 31: "थ", 32: "द",
			33: "ध", 34: "न", 35: "प", 36: "फ", 37: "ब",
			38: "भ", 39: "म", 40: "य", 41: "र", 42: "ल",
			43: "व", 44: "श", 45: "ष", 46: "स", 47: "ह",
			48: "ळ", 49: "क्ष", 50: "ज्ञ", 51: "०", 52: "१",
			53: "२", 54: "३", 55: "४", 56: "५", 57: "६",
			58: "७", 59: "८", 60: "९", 61: "॰", 62: "।",
			63: "॥", 64: "ऽ",
		},
	})
	if err != nil {
		panic(err)
	}

	return t
}

// PrakritDevanagari returns the Prakrit table in Devanagari. Codes 62..64
// are the combining signs: virāma, anusvāra, visarga.
func PrakritDevanagari() *Table {
	t, err := New(Spec{
		Name: PrakritDevanagariName,
		Glyphs: map[int]string{
			1: "अ", 2: "आ", 3: "इ", 4: "ई", 5: "उ", 6: "ऊ",
			7: "ऋ", 8: "ए", 9: "ऐ", 10: "ओ", 11: "औ", 12: "अं",
			13: "क", 14: "ख", 15: "ग", 16: "घ", 17: "ङ",
			18: "च", 19: "छ", 20: "ज", 21: "झ", 22: "ञ",
			23: "ट", 24: "ठ", 25: "ड", 26: "ढ", 27: "ण",
			28: "त", 29: "थ", 30: "द", 31: "ध", 32: "न",
			33: "प", 34: "फ", 35: "ब", 36: "भ", 37: "म",
			38: "य", 39: "र", 40: "ल", 41: "व", 42: "श",
			43: "ष", 44: "स", 45: "ह", 46: "क्ष", 47: "त्र",
			48: "ज्ञ", 49: "०", 50: "१", 51: "२", 52: "३",
			53: "४", 54: "५", 55: "६", 56: "७", 57: "८",
			58: "९", 59: "॰", 60: "।", 61: "॥", 62: "्",
			63: "ं", 64: "ः",
		},
		Combining: []int{62, 63, 64},
	})
	if err != nil {
		panic(err)
	}

	return t
}
