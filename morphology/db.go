// Package morphology provides analysis, generation and reinflection of
// Arabic words backed by flat-file morphology databases.
package morphology

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/oarkflow/maps"

	"github.com/camel-lab/camelgo/data"
)

// Analysis is a single morphological analysis: a map from feature names to
// values.
type Analysis map[string]string

// Clone returns a shallow copy of a.
func (a Analysis) Clone() Analysis {
	out := make(Analysis, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// DBFlags describes which components a database was opened for.
type DBFlags struct {
	Analysis     bool
	Generation   bool
	Reinflection bool
}

// ParseDBFlags parses a flag string. 'a' selects analysis, 'g' generation
// and 'r' reinflection. 'r' implies both 'a' and 'g', as does combining 'a'
// with 'g'.
func ParseDBFlags(flags string) (DBFlags, error) {
	var f DBFlags
	for _, flag := range flags {
		switch flag {
		case 'a':
			f.Analysis = true
		case 'g':
			f.Generation = true
		case 'r':
			f.Reinflection = true
			f.Analysis = true
			f.Generation = true
		default:
			return DBFlags{}, &InvalidDatabaseFlagError{Flag: flag}
		}
	}
	if f.Analysis && f.Generation {
		f.Reinflection = true
	}
	return f, nil
}

// AffixEntry is a single prefix, stem or suffix entry: its category and
// feature values.
type AffixEntry struct {
	Category string
	Feats    Analysis
}

// DB holds the indexes parsed from a morphology database file.
type DB struct {
	Flags DBFlags

	// Defines maps each feature to its closed value set. A nil slice marks
	// an open-class feature.
	Defines       map[string][]string
	Defaults      map[string]Analysis
	Order         []string
	Tokenizations map[string]struct{}
	ComputeFeats  map[string]struct{}
	StemBackoffs  map[string][]string

	PrefixHash map[string][]AffixEntry
	SuffixHash map[string][]AffixEntry
	StemHash   map[string][]AffixEntry

	PrefixCatHash map[string][]Analysis
	SuffixCatHash map[string][]Analysis
	LemmaHash     map[string][]Analysis

	PrefixStemCompat   map[string]map[string]struct{}
	StemSuffixCompat   map[string]map[string]struct{}
	PrefixSuffixCompat map[string]map[string]struct{}
	StemPrefixCompat   map[string]map[string]struct{}

	MaxPrefixSize int
	MaxSuffixSize int
}

// AllFeats returns the set of features defined by the database.
func (db *DB) AllFeats() map[string]struct{} {
	feats := make(map[string]struct{}, len(db.Defines))
	for feat := range db.Defines {
		feats[feat] = struct{}{}
	}
	return feats
}

// TokFeats returns the set of tokenization features defined by the database.
func (db *DB) TokFeats() map[string]struct{} {
	return db.Tokenizations
}

func (db *DB) hasFeat(feat string) bool {
	_, ok := db.Defines[feat]
	return ok
}

func (db *DB) isComputeFeat(feat string) bool {
	_, ok := db.ComputeFeats[feat]
	return ok
}

var dbRegistry = maps.New[string, *DB]()

// OpenDB parses the database at path with the given flag string, caching
// parsed databases so repeated opens are cheap.
func OpenDB(path, flags string) (*DB, error) {
	key := flags + "\x00" + path
	if db, ok := dbRegistry.Get(key); ok {
		return db, nil
	}

	db, err := LoadDB(path, flags)
	if err != nil {
		return nil, err
	}
	dbRegistry.Set(key, db)
	return db, nil
}

// BuiltinDB opens one of the catalogued morphology databases by name. An
// empty name selects the catalogue default.
func BuiltinDB(name, flags string) (*DB, error) {
	cat, err := data.Default()
	if err != nil {
		return nil, err
	}

	path, err := cat.DatasetPath("MorphologyDB", name)
	if err != nil {
		return nil, err
	}

	return OpenDB(filepath.Join(path, "morphology.db"), flags)
}

// LoadDB parses the database at path with the given flag string.
func LoadDB(path, flags string) (*DB, error) {
	f, err := ParseDBFlags(flags)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	db := &DB{
		Flags:              f,
		Defines:            map[string][]string{},
		Defaults:           map[string]Analysis{},
		Tokenizations:      map[string]struct{}{},
		ComputeFeats:       map[string]struct{}{},
		StemBackoffs:       map[string][]string{},
		PrefixHash:         map[string][]AffixEntry{},
		SuffixHash:         map[string][]AffixEntry{},
		StemHash:           map[string][]AffixEntry{},
		PrefixCatHash:      map[string][]Analysis{},
		SuffixCatHash:      map[string][]Analysis{},
		LemmaHash:          map[string][]Analysis{},
		PrefixStemCompat:   map[string]map[string]struct{}{},
		StemSuffixCompat:   map[string]map[string]struct{}{},
		PrefixSuffixCompat: map[string]map[string]struct{}{},
		StemPrefixCompat:   map[string]map[string]struct{}{},
	}

	if err := db.parse(file); err != nil {
		return nil, err
	}
	return db, nil
}

const (
	sectionDefines = iota
	sectionDefaults
	sectionOrder
	sectionTokenizations
	sectionStemBackoffs
	sectionPrefixes
	sectionSuffixes
	sectionStems
	sectionTableAB
	sectionTableBC
	sectionTableAC
)

var sectionHeaders = map[string]int{
	"###DEFINES###":       sectionDefines,
	"###DEFAULTS###":      sectionDefaults,
	"###ORDER###":         sectionOrder,
	"###TOKENIZATIONS###": sectionTokenizations,
	"###STEMBACKOFF###":   sectionStemBackoffs,
	"###PREFIXES###":      sectionPrefixes,
	"###SUFFIXES###":      sectionSuffixes,
	"###STEMS###":         sectionStems,
	"###TABLE AB###":      sectionTableAB,
	"###TABLE BC###":      sectionTableBC,
	"###TABLE AC###":      sectionTableAC,
}

func (db *DB) parse(file *os.File) error {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	section := sectionDefines
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		trimmed := strings.TrimSpace(line)

		if next, ok := sectionHeaders[trimmed]; ok {
			if section == sectionOrder && next == sectionTokenizations {
				for _, feat := range db.Order {
					db.ComputeFeats[feat] = struct{}{}
				}
			}
			section = next
			continue
		}
		if trimmed == "" {
			continue
		}

		var err error
		switch section {
		case sectionDefines:
			err = db.parseDefine(trimmed)
		case sectionDefaults:
			err = db.parseDefault(trimmed)
		case sectionOrder:
			err = db.parseOrder(trimmed)
		case sectionTokenizations:
			err = db.parseTokenization(trimmed)
		case sectionStemBackoffs:
			err = db.parseStemBackoff(trimmed)
		case sectionPrefixes:
			err = db.parseAffix(line, "PREFIXES", db.PrefixHash, db.PrefixCatHash)
		case sectionSuffixes:
			err = db.parseAffix(line, "SUFFIXES", db.SuffixHash, db.SuffixCatHash)
		case sectionStems:
			err = db.parseStem(trimmed)
		case sectionTableAB:
			err = db.parseCompat(trimmed, "TABLE AB", db.PrefixStemCompat, db.StemPrefixCompat)
		case sectionTableBC:
			err = db.parseCompat(trimmed, "TABLE BC", db.StemSuffixCompat, nil)
		case sectionTableAC:
			err = db.parseCompat(trimmed, "TABLE AC", db.PrefixSuffixCompat, nil)
		}
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if db.Flags.Analysis {
		for prefix := range db.PrefixHash {
			if n := utf8.RuneCountInString(prefix); n > db.MaxPrefixSize {
				db.MaxPrefixSize = n
			}
		}
		for suffix := range db.SuffixHash {
			if n := utf8.RuneCountInString(suffix); n > db.MaxSuffixSize {
				db.MaxSuffixSize = n
			}
		}
	}

	return nil
}

func parseFeats(toks []string, section string) (Analysis, error) {
	feats := make(Analysis, len(toks))
	for _, tok := range toks {
		if tok == "" {
			continue
		}
		feat, val, ok := strings.Cut(tok, ":")
		if !ok {
			return nil, parseErrorf("invalid key value pair %q in %s", tok, section)
		}
		feats[feat] = val
	}
	return feats, nil
}

func (db *DB) parseDefine(line string) error {
	toks := strings.Split(line, " ")
	if len(toks) < 3 || toks[0] != "DEFINE" {
		return parseErrorf("invalid DEFINES line %q", line)
	}

	feat := toks[1]
	vals := make([]string, 0, len(toks)-2)
	open := false

	for _, tok := range toks[2:] {
		name, val, ok := strings.Cut(tok, ":")
		if !ok || name != feat {
			return parseErrorf("invalid key value pair %q in DEFINES", tok)
		}
		if len(toks) == 3 && val == "*open*" {
			open = true
			break
		}
		vals = append(vals, val)
	}

	if open {
		db.Defines[feat] = nil
	} else {
		db.Defines[feat] = vals
	}
	return nil
}

func (db *DB) parseDefault(line string) error {
	toks := strings.Split(line, " ")
	if len(toks) < 2 || toks[0] != "DEFAULT" {
		return parseErrorf("invalid DEFAULTS line %q", line)
	}

	feats := make(Analysis, len(toks)-1)
	for _, tok := range toks[1:] {
		feat, val, ok := strings.Cut(tok, ":")
		if !ok {
			return parseErrorf("invalid key value pair %q in DEFAULTS", tok)
		}
		if val == "*" {
			val = ""
		}
		feats[feat] = val
	}

	pos, ok := feats["pos"]
	if !ok {
		return parseErrorf("DEFAULTS line %q missing pos value", line)
	}
	db.Defaults[pos] = feats
	return nil
}

func (db *DB) parseOrder(line string) error {
	toks := strings.Split(line, " ")
	if len(toks) < 2 || toks[0] != "ORDER" {
		return parseErrorf("invalid ORDER line %q", line)
	}
	for _, feat := range toks[1:] {
		if !db.hasFeat(feat) {
			return parseErrorf("invalid feature %q in ORDER line", feat)
		}
	}
	db.Order = toks[1:]
	return nil
}

func (db *DB) parseTokenization(line string) error {
	toks := strings.Split(line, " ")
	if len(toks) < 2 || toks[0] != "TOKENIZATION" {
		return parseErrorf("invalid TOKENIZATION line %q", line)
	}
	for _, feat := range toks[1:] {
		if !db.hasFeat(feat) {
			return parseErrorf("invalid feature %q in TOKENIZATION line", feat)
		}
		db.Tokenizations[feat] = struct{}{}
	}
	return nil
}

func (db *DB) parseStemBackoff(line string) error {
	toks := strings.Split(line, " ")
	if len(toks) < 3 || toks[0] != "STEMBACKOFF" {
		return parseErrorf("invalid STEMBACKOFF line %q", line)
	}
	db.StemBackoffs[toks[1]] = toks[2:]
	return nil
}

func (db *DB) parseAffix(line, section string, surfaceHash map[string][]AffixEntry, catHash map[string][]Analysis) error {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return parseErrorf("invalid %s line %q", section, line)
	}

	surface := strings.TrimSpace(parts[0])
	category := parts[1]
	feats, err := parseFeats(strings.Split(strings.TrimSpace(parts[2]), " "), section)
	if err != nil {
		return err
	}

	if db.Flags.Analysis {
		surfaceHash[surface] = append(surfaceHash[surface], AffixEntry{
			Category: category,
			Feats:    feats,
		})
	}
	if db.Flags.Generation {
		catHash[category] = append(catHash[category], feats)
	}
	return nil
}

func (db *DB) parseStem(line string) error {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return parseErrorf("invalid STEMS line %q", line)
	}

	stem := parts[0]
	category := parts[1]
	feats, err := parseFeats(strings.Split(parts[2], " "), "STEMS")
	if err != nil {
		return err
	}

	lex, ok := feats["lex"]
	if !ok {
		return parseErrorf("STEMS line %q missing lex value", line)
	}
	feats["lex"] = stripLex(lex)

	if db.Flags.Analysis {
		db.StemHash[stem] = append(db.StemHash[stem], AffixEntry{
			Category: category,
			Feats:    feats,
		})
	}
	if db.Flags.Generation {
		lemma := feats["lex"]
		feats["stemcat"] = category
		db.LemmaHash[lemma] = append(db.LemmaHash[lemma], feats)
	}
	return nil
}

func (db *DB) parseCompat(line, section string, fwd, rev map[string]map[string]struct{}) error {
	toks := strings.Fields(line)
	if len(toks) != 2 {
		return parseErrorf("invalid %s line %q", section, line)
	}

	addCompat(fwd, toks[0], toks[1])
	if rev != nil {
		addCompat(rev, toks[1], toks[0])
	}
	return nil
}

func addCompat(table map[string]map[string]struct{}, from, to string) {
	set, ok := table[from]
	if !ok {
		set = map[string]struct{}{}
		table[from] = set
	}
	set[to] = struct{}{}
}
