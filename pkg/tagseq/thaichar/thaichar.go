// Package thaichar classifies runes into the single-letter character
// type codes used as the second column of the corpus format.
package thaichar

import "unicode"

// Character type codes.
const (
	Consonant = "c"
	Vowel     = "v"
	ToneMark  = "t"
	Diacritic = "d"
	Digit     = "n"
	Punct     = "q"
	Space     = "s"
	Other     = "o"
)

// Class returns the type code for a rune. Thai codepoints are mapped by
// their position in the Thai Unicode block (U+0E00–U+0E7F); everything
// else falls back to broad Unicode categories.
func Class(r rune) string {
	switch {
	case r >= 0x0E01 && r <= 0x0E2E: // ก..ฮ
		return Consonant
	case r >= 0x0E30 && r <= 0x0E3A: // sara a..phinthu, incl. mai han akat
		return Vowel
	case r >= 0x0E40 && r <= 0x0E45: // leading vowels, lakkhangyao
		return Vowel
	case r == 0x0E47: // maitaikhu
		return Vowel
	case r >= 0x0E48 && r <= 0x0E4B: // mai ek..mai chattawa
		return ToneMark
	case r >= 0x0E4C && r <= 0x0E4E: // thanthakhat, nikhahit, yamakkan
		return Diacritic
	case r >= 0x0E50 && r <= 0x0E59: // Thai digits
		return Digit
	case r == 0x0E2F || r == 0x0E46 || r == 0x0E4F || r == 0x0E5A || r == 0x0E5B:
		// paiyannoi, maiyamok, fongman, angkhankhu, khomut
		return Punct
	case unicode.IsDigit(r):
		return Digit
	case unicode.IsSpace(r):
		return Space
	case unicode.IsPunct(r) || unicode.IsSymbol(r):
		return Punct
	default:
		return Other
	}
}
