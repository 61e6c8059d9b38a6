// Package transliterate converts strings between encoding schemes with
// support for excluding individual tokens from transliteration.
package transliterate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/camel-lab/camelgo/charmap"
)

// DefaultMarker prefixes tokens that should not be transliterated.
const DefaultMarker = "@@IGNORE@@"

// ErrInvalidMarker is returned when an ignore marker is empty or contains
// whitespace.
var ErrInvalidMarker = errors.New("transliterate: marker must be nonempty and contain no whitespace")

// Transliterator applies a character map to a string, skipping tokens
// prefixed with an ignore marker.
type Transliterator struct {
	mapper *charmap.Mapper
	marker string
	markRe *regexp.Regexp
}

// New builds a Transliterator around mapper. An empty marker selects
// DefaultMarker. Markers must contain no whitespace.
func New(mapper *charmap.Mapper, marker string) (*Transliterator, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	if strings.IndexFunc(marker, unicode.IsSpace) >= 0 {
		return nil, ErrInvalidMarker
	}
	return &Transliterator{
		mapper: mapper,
		marker: marker,
		markRe: regexp.MustCompile(regexp.QuoteMeta(marker) + `\S+`),
	}, nil
}

// NewBuiltin builds a Transliterator around the named builtin character map.
func NewBuiltin(name, marker string) (*Transliterator, error) {
	mapper, err := charmap.Builtin(name)
	if err != nil {
		return nil, err
	}
	return New(mapper, marker)
}

// Transliterate converts s, leaving marked tokens as is. A marked token is
// the marker followed by at least one non-space character, up to the next
// whitespace. When stripMarkers is set, markers are removed from the output.
// When ignoreMarkers is set, markers receive no special treatment and the
// whole string is transliterated.
func (t *Transliterator) Transliterate(s string, stripMarkers, ignoreMarkers bool) string {
	if ignoreMarkers {
		return t.mapper.Map(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, loc := range t.markRe.FindAllStringIndex(s, -1) {
		b.WriteString(t.mapper.Map(s[last:loc[0]]))
		token := s[loc[0]:loc[1]]
		if stripMarkers {
			b.WriteString(token[len(t.marker):])
		} else {
			b.WriteString(token)
		}
		last = loc[1]
	}
	b.WriteString(t.mapper.Map(s[last:]))

	return b.String()
}
