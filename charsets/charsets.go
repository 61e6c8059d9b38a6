// Package charsets defines the character sets of the supported encoding
// schemes: Arabic script, Buckwalter, Safe Buckwalter, XML Buckwalter and
// Habash-Soudi-Buckwalter, as well as Unicode punctuation and symbol
// classification helpers.
package charsets

import "unicode"

// Set is a set of runes belonging to one encoding scheme.
type Set map[rune]struct{}

func newSet(chars string) Set {
	s := make(Set, len(chars))
	for _, r := range chars {
		s[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is a member of the set.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// ContainsAll reports whether every rune of str is a member of the set.
func (s Set) ContainsAll(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !s.Contains(r) {
			return false
		}
	}
	return true
}

var (
	// ARLetters is the set of Arabic script letters.
	ARLetters = newSet(
		"ءآأؤإئابةت" +
			"ثجحخدذرزسش" +
			"صضطظعغـفقك" +
			"لمنهوىي" +
			"ٱپچڤگ")

	// ARDiac is the set of Arabic diacritical marks (tanwin, harakat,
	// shadda, sukun and the dagger alef).
	ARDiac = newSet("ًٌٍَُِّْٰ")

	// AR is the set of all Arabic script characters handled by the
	// transliteration schemes.
	AR = union(ARLetters, ARDiac)

	// BWLetters is the set of Buckwalter letter characters.
	BWLetters = newSet("$&'*<>ADEGHJPSTVYZ_bdfghjklmnpqrstvwxyz{|}")

	// BWDiac is the set of Buckwalter diacritic characters.
	BWDiac = newSet("FKN`aiou~")

	// BW is the full Buckwalter character set.
	BW = union(BWLetters, BWDiac)

	// SafeBWLetters is the set of Safe Buckwalter letter characters.
	SafeBWLetters = newSet("ABCDEGHIJLMOPQSTVWYZ_bcdfghjklmnpqrstvwxyz")

	// SafeBWDiac is the set of Safe Buckwalter diacritic characters.
	SafeBWDiac = newSet("FKNaeiou~")

	// SafeBW is the full Safe Buckwalter character set.
	SafeBW = union(SafeBWLetters, SafeBWDiac)

	// XMLBWLetters is the set of XML Buckwalter letter characters.
	XMLBWLetters = newSet("$'*ABDEGHIJOPSTWYZ_bdfghjklmnpqrstvwxyz{|}")

	// XMLBWDiac is the set of XML Buckwalter diacritic characters.
	XMLBWDiac = newSet("FKN`aiou~")

	// XMLBW is the full XML Buckwalter character set.
	XMLBW = union(XMLBWLetters, XMLBWDiac)

	// HSBLetters is the set of Habash-Soudi-Buckwalter letter characters.
	HSBLetters = newSet("'ADHST_bcdfghjklmnpqrstvwxyz" +
		"ÂÄðýĀĂĎħšŵ" +
		"ŷγθς")

	// HSBDiac is the set of Habash-Soudi-Buckwalter diacritic characters.
	HSBDiac = newSet(".aiu~áãĩũ")

	// HSB is the full Habash-Soudi-Buckwalter character set.
	HSB = union(HSBLetters, HSBDiac)
)

func union(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for r := range s {
			out[r] = struct{}{}
		}
	}
	return out
}

// IsPunctSymbol reports whether r is categorized as Unicode punctuation or
// symbol.
func IsPunctSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// IsPunctSymbolString reports whether str is nonempty and made up entirely of
// punctuation and symbol characters.
func IsPunctSymbolString(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !IsPunctSymbol(r) {
			return false
		}
	}
	return true
}

// HasPunctSymbol reports whether str contains at least one punctuation or
// symbol character.
func HasPunctSymbol(str string) bool {
	for _, r := range str {
		if IsPunctSymbol(r) {
			return true
		}
	}
	return false
}
