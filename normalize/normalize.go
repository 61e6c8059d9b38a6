// Package normalize collapses common spelling variants in each of the
// supported encoding schemes.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Unicode normalizes s to a canonical Unicode form. With compatibility set it
// applies NFKC, otherwise NFC.
func Unicode(s string, compatibility bool) string {
	if compatibility {
		return norm.NFKC.String(s)
	}
	return norm.NFC.String(s)
}

var (
	alefAR     = strings.NewReplacer("آ", "ا", "أ", "ا", "إ", "ا", "ٱ", "ا")
	alefBW     = strings.NewReplacer("|", "A", ">", "A", "<", "A", "{", "A")
	alefSafeBW = strings.NewReplacer("M", "A", "O", "A", "I", "A", "L", "A")
	alefXMLBW  = strings.NewReplacer("|", "A", "O", "A", "I", "A", "{", "A")
	alefHSB    = strings.NewReplacer("Ā", "A", "Â", "A", "Ă", "A", "Ä", "A")
)

// AlefAR replaces all alef variants with a bare alef.
func AlefAR(s string) string { return alefAR.Replace(s) }

// AlefBW replaces all Buckwalter alef variants with A.
func AlefBW(s string) string { return alefBW.Replace(s) }

// AlefSafeBW replaces all Safe Buckwalter alef variants with A.
func AlefSafeBW(s string) string { return alefSafeBW.Replace(s) }

// AlefXMLBW replaces all XML Buckwalter alef variants with A.
func AlefXMLBW(s string) string { return alefXMLBW.Replace(s) }

// AlefHSB replaces all Habash-Soudi-Buckwalter alef variants with A.
func AlefHSB(s string) string { return alefHSB.Replace(s) }

// AlefMaksuraAR replaces alef maksura with yeh.
func AlefMaksuraAR(s string) string { return strings.ReplaceAll(s, "ى", "ي") }

// AlefMaksuraBW replaces Buckwalter alef maksura with yeh.
func AlefMaksuraBW(s string) string { return strings.ReplaceAll(s, "Y", "y") }

// AlefMaksuraSafeBW replaces Safe Buckwalter alef maksura with yeh.
func AlefMaksuraSafeBW(s string) string { return strings.ReplaceAll(s, "Y", "y") }

// AlefMaksuraXMLBW replaces XML Buckwalter alef maksura with yeh.
func AlefMaksuraXMLBW(s string) string { return strings.ReplaceAll(s, "Y", "y") }

// AlefMaksuraHSB replaces Habash-Soudi-Buckwalter alef maksura with yeh.
func AlefMaksuraHSB(s string) string { return strings.ReplaceAll(s, "ý", "y") }

// TehMarbutaAR replaces teh marbuta with heh.
func TehMarbutaAR(s string) string { return strings.ReplaceAll(s, "ة", "ه") }

// TehMarbutaBW replaces Buckwalter teh marbuta with heh.
func TehMarbutaBW(s string) string { return strings.ReplaceAll(s, "p", "h") }

// TehMarbutaSafeBW replaces Safe Buckwalter teh marbuta with heh.
func TehMarbutaSafeBW(s string) string { return strings.ReplaceAll(s, "p", "h") }

// TehMarbutaXMLBW replaces XML Buckwalter teh marbuta with heh.
func TehMarbutaXMLBW(s string) string { return strings.ReplaceAll(s, "p", "h") }

// TehMarbutaHSB replaces Habash-Soudi-Buckwalter teh marbuta with heh.
func TehMarbutaHSB(s string) string { return strings.ReplaceAll(s, "ħ", "h") }
