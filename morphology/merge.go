package morphology

import (
	"regexp"
	"strings"
)

// Feature classes controlling how prefix, stem and suffix values combine.
var (
	joinFeats = []string{"gloss", "bw"}

	concatFeats = []string{"diac", "pattern", "caphi", "catib6", "ud"}

	concatFeatsNone = []string{"d3tok", "d3seg", "atbseg", "d2seg", "d1seg",
		"d1tok", "d2tok", "atbtok", "bwtok"}

	logProbFeats = []string{"pos_logprob", "lex_logprob", "pos_lex_logprob"}

	// Schemes taking both the sun-letter and the fatha-after-alef rewrites.
	tokSchemesFull = []string{"d1tok", "d2tok", "atbtok", "d1seg", "d2seg",
		"d3seg", "atbseg"}

	// Schemes taking only the fatha-after-alef rewrite.
	tokSchemesPlain = []string{"d3tok", "d3seg"}
)

var stripLexRe = regexp.MustCompile(`_|-`)

// stripLex drops the sense and variant markers from a lemma.
func stripLex(lex string) string {
	return stripLexRe.Split(lex, 2)[0]
}

var (
	// Sun letters following the definite article.
	rewriteDiacSun = regexp.MustCompile(`#\+*([تثدذرزسشصضطظلن])`)
	// Moon letters following the definite article.
	rewriteDiacMoon = regexp.MustCompile(`#\+*`)
	// Fatha before alef folds onto the following teh or teh marbuta.
	rewriteDiacFatha = regexp.MustCompile(`ا\+?َ([ةت])`)
	rewriteDiacWasl  = regexp.MustCompile(`ٱ`)
	rewriteDiacPlus  = regexp.MustCompile(`\+`)
	rewriteDiacShadda = regexp.MustCompile(`ّ+`)
)

func rewriteDiac(word string) string {
	word = rewriteDiacSun.ReplaceAllString(word, "${1}ّ")
	word = rewriteDiacMoon.ReplaceAllString(word, "")
	word = rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
	word = rewriteDiacWasl.ReplaceAllString(word, "ا")
	word = rewriteDiacPlus.ReplaceAllString(word, "")
	word = rewriteDiacShadda.ReplaceAllString(word, "ّ")
	return word
}

func rewriteTokFull(word string) string {
	word = rewriteDiacSun.ReplaceAllString(word, "${1}ّ")
	word = rewriteDiacMoon.ReplaceAllString(word, "")
	word = rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
	return word
}

func rewriteTokPlain(word string) string {
	return rewriteDiacFatha.ReplaceAllString(word, "ا${1}")
}

func rewritePattern(word string) string {
	return rewriteDiacMoon.ReplaceAllString(word, "")
}

var (
	rewriteCaphiSun     = regexp.MustCompile(`(l-)\+(t_|th_|d_|th\._|r_|z_|s_|sh_|s\._|d\._|t\._|dh\._|l_|n_|dh_)`)
	rewriteCaphiShadda  = regexp.MustCompile(`(\S)[-]*\+~`)
	rewriteCaphiIY      = regexp.MustCompile(`i_y-\+([^iau]+|$)`)
	rewriteCaphiUW      = regexp.MustCompile(`u_w-\+([^iau]+|$)`)
	rewriteCaphiWaslV   = regexp.MustCompile(`([iua])\+-2_[iua]`)
	rewriteCaphiWaslC   = regexp.MustCompile(`(.+)\+-2_([iua])`)
	rewriteCaphiUWC     = regexp.MustCompile(`u\+w(_+[^ioua])`)
	rewriteCaphiTeh     = regexp.MustCompile(`p-\+([iua])`)
	rewriteCaphiMadda   = regexp.MustCompile(`aa\+a[_]*`)
	rewriteCaphiSeps    = regexp.MustCompile(`[\+-]`)
	rewriteCaphiUnders  = regexp.MustCompile(`_+`)
	rewriteCaphiEdges   = regexp.MustCompile(`((^_+)|(_p?_*$))`)
)

func rewriteCaphi(word string) string {
	word = rewriteCaphiSun.ReplaceAllString(word, "${2}${2}")
	word = rewriteCaphiShadda.ReplaceAllString(word, "${1}_${1}")
	word = rewriteCaphiIY.ReplaceAllString(word, "ii_${1}")
	word = rewriteCaphiUW.ReplaceAllString(word, "uu_${1}")
	word = rewriteCaphiWaslV.ReplaceAllString(word, "${1}")
	word = rewriteCaphiWaslC.ReplaceAllString(word, "${1}_${2}")
	word = rewriteCaphiUWC.ReplaceAllString(word, "uu${1}")
	word = rewriteCaphiTeh.ReplaceAllString(word, "t_${1}")
	word = rewriteCaphiMadda.ReplaceAllString(word, "aa_")
	word = rewriteCaphiSeps.ReplaceAllString(word, "_")
	word = rewriteCaphiUnders.ReplaceAllString(word, "_")
	word = rewriteCaphiEdges.ReplaceAllString(word, "")
	return word
}

// Simple Arabic script to CAPHI phone map.
var ar2caphi = map[rune]string{
	'ء': "2", 'آ': "2_aa", 'أ': "2", 'ؤ': "2", 'إ': "2", 'ئ': "2",
	'ا': "aa", 'ب': "b", 'ت': "t", 'ث': "th", 'ج': "j", 'ح': "7",
	'خ': "kh", 'د': "d", 'ذ': "dh", 'ر': "r", 'ز': "z", 'س': "s",
	'ش': "sh", 'ص': "s.", 'ض': "d.", 'ط': "t.", 'ظ': "dh.", 'ع': "3",
	'غ': "gh", 'ف': "f", 'ق': "q", 'ك': "k", 'ل': "l", 'م': "m",
	'ن': "n", 'ه': "h", 'و': "w", 'ى': "aa", 'ي': "y",
}

// simpleArToCaphi converts bare Arabic script to a CAPHI phone sequence.
func simpleArToCaphi(s string) string {
	// A leading bare alef is pronounced as a hamza.
	if strings.HasPrefix(s, "ا") {
		s = "أ" + strings.TrimPrefix(s, "ا")
	}

	phones := make([]string, 0, len(s)/2)
	for _, r := range s {
		if phone, ok := ar2caphi[r]; ok {
			phones = append(phones, phone)
		}
	}
	return strings.Join(phones, "_")
}

var (
	tanwynFA = regexp.MustCompile(`ًا`)
	tanwynFY = regexp.MustCompile(`ًى`)
	tanwynAF = regexp.MustCompile(`اً`)
	tanwynYF = regexp.MustCompile(`ىً`)
)

// normalizeTanwyn fixes the order of fathatan relative to alef. Mode "FA"
// places the fathatan before the alef, any other mode after.
func normalizeTanwyn(word, mode string) string {
	if mode == "FA" {
		word = tanwynAF.ReplaceAllString(word, "ًا")
		word = tanwynYF.ReplaceAllString(word, "ًى")
	} else {
		word = tanwynFA.ReplaceAllString(word, "اً")
		word = tanwynFY.ReplaceAllString(word, "ىً")
	}
	return word
}

// mergeFeatures combines prefix, stem and suffix features into a single
// analysis, applying the join, concatenation and rewrite rules of each
// feature class.
func mergeFeatures(db *DB, prefixFeats, stemFeats, suffixFeats Analysis, diacMode string) Analysis {
	result := stemFeats.Clone()

	for feat := range stemFeats {
		if v := suffixFeats[feat]; v != "-" && v != "" {
			result[feat] = v
		}
		if v := prefixFeats[feat]; v != "-" && v != "" {
			result[feat] = v
		}
	}

	for _, feat := range joinFeats {
		if !db.hasFeat(feat) {
			continue
		}
		vals := make([]string, 0, 3)
		for _, feats := range []Analysis{prefixFeats, stemFeats, suffixFeats} {
			if v, ok := feats[feat]; ok && v != "" {
				vals = append(vals, v)
			}
		}
		result[feat] = strings.Join(vals, "+")
	}

	for _, feat := range concatFeats {
		if !db.hasFeat(feat) {
			continue
		}
		vals := make([]string, 0, 3)
		for _, feats := range []Analysis{prefixFeats, stemFeats, suffixFeats} {
			if v := feats[feat]; v != "" {
				vals = append(vals, v)
			}
		}
		result[feat] = strings.Join(vals, "+")
	}

	for _, feat := range concatFeatsNone {
		if !db.hasFeat(feat) {
			continue
		}
		stemVal, ok := stemFeats[feat]
		if !ok {
			stemVal = stemFeats["diac"]
		}
		result[feat] = prefixFeats[feat] + stemVal + suffixFeats[feat]
	}

	result["stem"] = stemFeats["diac"]
	result["stemgloss"] = stemFeats["gloss"]

	result["diac"] = normalizeTanwyn(rewriteDiac(result["diac"]), diacMode)

	for _, feat := range tokSchemesFull {
		if db.hasFeat(feat) {
			result[feat] = rewriteTokFull(result[feat])
		}
	}
	for _, feat := range tokSchemesPlain {
		if db.hasFeat(feat) {
			result[feat] = rewriteTokPlain(result[feat])
		}
	}

	if db.hasFeat("caphi") {
		result["caphi"] = rewriteCaphi(result["caphi"])
	}

	if db.hasFeat("form_gen") && result["gen"] == "-" {
		result["gen"] = result["form_gen"]
	}
	if db.hasFeat("form_num") && result["num"] == "-" {
		result["num"] = result["form_num"]
	}

	if db.isComputeFeat("pattern") {
		stemVal, ok := stemFeats["pattern"]
		if !ok {
			stemVal = stemFeats["diac"]
		}
		pattern := prefixFeats["diac"] + stemVal + suffixFeats["diac"]
		result["pattern"] = rewritePattern(pattern)
	}

	for _, feat := range logProbFeats {
		if db.hasFeat(feat) && result[feat] == "" {
			result[feat] = "-99.0"
		}
	}

	return result
}
