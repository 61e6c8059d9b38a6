package charmap

import (
	"sort"
	"strings"
)

// Scheme tables map each Arabic script character to its counterpart in one of
// the ASCII transliteration schemes. Cross-scheme maps are derived from these
// tables by composition.

var bwTable = map[rune]rune{
	'ء': '\'',
	'آ': '|',
	'أ': '>',
	'ؤ': '&',
	'إ': '<',
	'ئ': '}',
	'ا': 'A',
	'ب': 'b',
	'ة': 'p',
	'ت': 't',
	'ث': 'v',
	'ج': 'j',
	'ح': 'H',
	'خ': 'x',
	'د': 'd',
	'ذ': '*',
	'ر': 'r',
	'ز': 'z',
	'س': 's',
	'ش': '$',
	'ص': 'S',
	'ض': 'D',
	'ط': 'T',
	'ظ': 'Z',
	'ع': 'E',
	'غ': 'g',
	'ـ': '_',
	'ف': 'f',
	'ق': 'q',
	'ك': 'k',
	'ل': 'l',
	'م': 'm',
	'ن': 'n',
	'ه': 'h',
	'و': 'w',
	'ى': 'Y',
	'ي': 'y',
	'ً': 'F',
	'ٌ': 'N',
	'ٍ': 'K',
	'َ': 'a',
	'ُ': 'u',
	'ِ': 'i',
	'ّ': '~',
	'ْ': 'o',
	'ٰ': '`',
	'ٱ': '{',
	'پ': 'P',
	'چ': 'J',
	'ڤ': 'V',
	'گ': 'G',
}

// Safe Buckwalter replaces the characters of Buckwalter that clash with
// markup, shells and file names.
var safeBWTable = override(bwTable, map[rune]rune{
	'ء': 'C',
	'آ': 'M',
	'أ': 'O',
	'ؤ': 'W',
	'إ': 'I',
	'ئ': 'Q',
	'ذ': 'V',
	'ش': 'c',
	'ٰ': 'e',
	'ٱ': 'L',
	'ڤ': 'B',
})

// XML Buckwalter only replaces the XML-reserved characters.
var xmlBWTable = override(bwTable, map[rune]rune{
	'أ': 'O',
	'ؤ': 'W',
	'إ': 'I',
})

var hsbTable = override(bwTable, map[rune]rune{
	'آ': 'Ā',
	'أ': 'Â',
	'ؤ': 'ŵ',
	'إ': 'Ă',
	'ئ': 'ŷ',
	'ة': 'ħ',
	'ث': 'θ',
	'ذ': 'ð',
	'ش': 'š',
	'ظ': 'Ď',
	'ع': 'ς',
	'غ': 'γ',
	'ى': 'ý',
	'ً': 'ã',
	'ٌ': 'ũ',
	'ٍ': 'ĩ',
	'ْ': '.',
	'ٰ': 'á',
	'ٱ': 'Ä',
	'پ': 'p',
	'چ': 'c',
	'ڤ': 'v',
	'گ': 'g',
})

var schemeTables = map[string]map[rune]rune{
	"bw":     bwTable,
	"safebw": safeBWTable,
	"xmlbw":  xmlBWTable,
	"hsb":    hsbTable,
}

func override(base, repl map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range repl {
		out[k] = v
	}
	return out
}

func str(s string) *string { return &s }

// arcleanMap cleans Arabic text: anything outside Arabic, ASCII and Latin-1
// is deleted, spacing characters become an ASCII space, Arabic-Indic digits
// become ASCII digits, extended Arabic letters become basic letters, and
// presentation forms are folded to their basic shapes.
var arcleanMap = map[string]*string{
	"\u0000-\u007f": nil,
	"¡-ÿ": nil,
	"؀-ۿ": nil,

	// Spacing.
	"\u00a0": str(" "),
	"\u1680": str(" "),
	"\u2000-\u200a": str(" "),
	"\u200b-\u200f": str(""),
	"\u2028": str(" "),
	"\u2029": str(" "),
	"\u202f": str(" "),
	"\u205f": str(" "),
	"\u3000": str(" "),

	// Arabic-Indic digits.
	"٠": str("0"),
	"١": str("1"),
	"٢": str("2"),
	"٣": str("3"),
	"٤": str("4"),
	"٥": str("5"),
	"٦": str("6"),
	"٧": str("7"),
	"٨": str("8"),
	"٩": str("9"),
	"۰": str("0"),
	"۱": str("1"),
	"۲": str("2"),
	"۳": str("3"),
	"۴": str("4"),
	"۵": str("5"),
	"۶": str("6"),
	"۷": str("7"),
	"۸": str("8"),
	"۹": str("9"),

	// Extended Arabic letters.
	"ٱ": str("ا"),
	"ک": str("ك"),
	"ہ": str("ه"),
	"ۃ": str("ة"),
	"ی": str("ي"),
	"ے": str("ي"),

	// Presentation forms A/B diacritics.
	"ﹰ-ﹱ": str("ً"),
	"ﹲ":        str("ٌ"),
	"ﹴ":        str("ٍ"),
	"ﹶ-ﹷ": str("َ"),
	"ﹸ-ﹹ": str("ُ"),
	"ﹺ-ﹻ": str("ِ"),
	"ﹼ-ﹽ": str("ّ"),
	"ﹾ-ﹿ": str("ْ"),

	// Presentation forms B letters.
	"ﺀ":        str("ء"),
	"ﺁ-ﺂ": str("آ"),
	"ﺃ-ﺄ": str("أ"),
	"ﺅ-ﺆ": str("ؤ"),
	"ﺇ-ﺈ": str("إ"),
	"ﺉ-ﺌ": str("ئ"),
	"ﺍ-ﺎ": str("ا"),
	"ﺏ-ﺒ": str("ب"),
	"ﺓ-ﺔ": str("ة"),
	"ﺕ-ﺘ": str("ت"),
	"ﺙ-ﺜ": str("ث"),
	"ﺝ-ﺠ": str("ج"),
	"ﺡ-ﺤ": str("ح"),
	"ﺥ-ﺨ": str("خ"),
	"ﺩ-ﺪ": str("د"),
	"ﺫ-ﺬ": str("ذ"),
	"ﺭ-ﺮ": str("ر"),
	"ﺯ-ﺰ": str("ز"),
	"ﺱ-ﺴ": str("س"),
	"ﺵ-ﺸ": str("ش"),
	"ﺹ-ﺼ": str("ص"),
	"ﺽ-ﻀ": str("ض"),
	"ﻁ-ﻄ": str("ط"),
	"ﻅ-ﻈ": str("ظ"),
	"ﻉ-ﻌ": str("ع"),
	"ﻍ-ﻐ": str("غ"),
	"ﻑ-ﻔ": str("ف"),
	"ﻕ-ﻘ": str("ق"),
	"ﻙ-ﻜ": str("ك"),
	"ﻝ-ﻠ": str("ل"),
	"ﻡ-ﻤ": str("م"),
	"ﻥ-ﻨ": str("ن"),
	"ﻩ-ﻬ": str("ه"),
	"ﻭ-ﻮ": str("و"),
	"ﻯ-ﻰ": str("ى"),
	"ﻱ-ﻴ": str("ي"),
	"ﻵ-ﻶ": str("لآ"),
	"ﻷ-ﻸ": str("لأ"),
	"ﻹ-ﻺ": str("لإ"),
	"ﻻ-ﻼ": str("لا"),
}

var builtinNames = func() []string {
	schemes := []string{"ar", "bw", "safebw", "xmlbw", "hsb"}
	names := []string{"arclean"}
	for _, src := range schemes {
		for _, tgt := range schemes {
			if src != tgt {
				names = append(names, src+"2"+tgt)
			}
		}
	}
	sort.Strings(names)
	return names
}()

// BuiltinNames returns the sorted names of all builtin character maps.
func BuiltinNames() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

// Builtin returns the builtin Mapper with the given name. Names are either
// "arclean" or transliteration pairs of the form "<src>2<tgt>" where src and
// tgt are one of ar, bw, safebw, xmlbw and hsb.
func Builtin(name string) (*Mapper, error) {
	if name == "arclean" {
		return New(arcleanMap, str(""))
	}

	src, tgt, ok := strings.Cut(name, "2")
	if !ok || src == tgt {
		return nil, &BuiltinNotFoundError{Name: name}
	}
	if src != "ar" {
		if _, ok := schemeTables[src]; !ok {
			return nil, &BuiltinNotFoundError{Name: name}
		}
	}
	if tgt != "ar" {
		if _, ok := schemeTables[tgt]; !ok {
			return nil, &BuiltinNotFoundError{Name: name}
		}
	}

	charMap := make(map[string]*string, len(bwTable))
	for ar := range bwTable {
		from, to := ar, ar
		if src != "ar" {
			from = schemeTables[src][ar]
		}
		if tgt != "ar" {
			to = schemeTables[tgt][ar]
		}
		charMap[string(from)] = str(string(to))
	}

	return New(charMap, nil)
}
