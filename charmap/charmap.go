// Package charmap maps characters in a string to replacement strings. It is
// the base layer for all transliteration schemes.
package charmap

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oarkflow/json"
)

// InvalidMapKeyError is returned when a character map key is neither a single
// character nor a valid character range of the form "a-b".
type InvalidMapKeyError struct {
	Key string
}

func (e *InvalidMapKeyError) Error() string {
	return fmt.Sprintf("charmap: invalid character or character range %q", e.Key)
}

// BuiltinNotFoundError is returned by Builtin when no builtin map exists with
// the given name.
type BuiltinNotFoundError struct {
	Name string
}

func (e *BuiltinNotFoundError) Error() string {
	return fmt.Sprintf("charmap: no builtin mapping with name %q", e.Name)
}

// Mapper maps each character of a string to a replacement string.
//
// Map values distinguish three cases: a non-nil pointer to a nonempty string
// replaces the character, a non-nil pointer to an empty string deletes it, and
// a nil pointer maps the character to itself. Characters absent from the map
// fall back to the default value, with the same three-way semantics.
type Mapper struct {
	charMap map[rune]*string
	def     *string
}

// New builds a Mapper from a character map and a default value. Keys must be
// single characters or inclusive ranges written "a-b" where a precedes b.
func New(charMap map[string]*string, def *string) (*Mapper, error) {
	expanded, err := expand(charMap)
	if err != nil {
		return nil, err
	}
	return &Mapper{charMap: expanded, def: def}, nil
}

// expand flattens range keys into per-rune entries. Ranges are applied first
// so that a single-character key always wins over a range containing it.
func expand(charMap map[string]*string) (map[rune]*string, error) {
	expanded := make(map[rune]*string, len(charMap))
	var singles []rune

	for key, val := range charMap {
		runes := []rune(key)
		switch {
		case len(runes) == 1:
			singles = append(singles, runes[0])
		case len(runes) == 3 && runes[1] == '-':
			if runes[0] >= runes[2] {
				return nil, &InvalidMapKeyError{Key: key}
			}
			for r := runes[0]; r <= runes[2]; r++ {
				expanded[r] = val
			}
		default:
			return nil, &InvalidMapKeyError{Key: key}
		}
	}

	for _, r := range singles {
		expanded[r] = charMap[string(r)]
	}

	return expanded, nil
}

// Map applies the character map to every character of s.
func (m *Mapper) Map(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		repl, ok := m.charMap[r]
		if !ok {
			repl = m.def
		}
		if repl == nil {
			b.WriteRune(r)
		} else {
			b.WriteString(*repl)
		}
	}

	return b.String()
}

type jsonMap struct {
	Default *string            `json:"default"`
	CharMap map[string]*string `json:"charMap"`
}

// FromJSON reads a character map in the JSON schema
//
//	{"default": ..., "charMap": {...}}
//
// where "default" and map values follow the semantics described on Mapper,
// with JSON null standing for identity.
func FromJSON(r io.Reader) (*Mapper, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var jm jsonMap
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("charmap: decoding map file: %w", err)
	}
	if jm.CharMap == nil {
		jm.CharMap = map[string]*string{}
	}

	return New(jm.CharMap, jm.Default)
}

// FromJSONFile loads a JSON character map from the file at path.
func FromJSONFile(path string) (*Mapper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromJSON(f)
}
