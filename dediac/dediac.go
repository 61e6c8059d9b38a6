// Package dediac removes diacritical marks from strings in each of the
// supported encoding schemes.
package dediac

import (
	"strings"

	"github.com/camel-lab/camelgo/charsets"
)

func strip(s string, diac charsets.Set) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !diac.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AR removes Arabic script diacritics from s.
func AR(s string) string { return strip(s, charsets.ARDiac) }

// BW removes Buckwalter diacritics from s.
func BW(s string) string { return strip(s, charsets.BWDiac) }

// SafeBW removes Safe Buckwalter diacritics from s.
func SafeBW(s string) string { return strip(s, charsets.SafeBWDiac) }

// XMLBW removes XML Buckwalter diacritics from s.
func XMLBW(s string) string { return strip(s, charsets.XMLBWDiac) }

// HSB removes Habash-Soudi-Buckwalter diacritics from s.
func HSB(s string) string { return strip(s, charsets.HSBDiac) }
