package morphology

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDB = `###DEFINES###
DEFINE pos pos:noun pos:noun_prop pos:verb pos:digit pos:punc pos:latin pos:foreign
DEFINE lex lex:*open*
DEFINE diac diac:*open*
DEFINE bw bw:*open*
DEFINE gloss gloss:*open*
DEFINE gen gen:m gen:f gen:-
DEFINE num num:s num:d num:p num:-
DEFINE rat rat:y rat:n rat:na
DEFINE vox vox:a vox:p vox:na
DEFINE asp asp:p asp:i asp:c asp:na
DEFINE per per:1 per:2 per:3 per:na
DEFINE mod mod:i mod:j mod:s mod:na
DEFINE stt stt:d stt:i stt:c stt:na
DEFINE cas cas:n cas:a cas:g cas:u
DEFINE prc0 prc0:0 prc0:Al_det
DEFINE prc1 prc1:0
DEFINE prc2 prc2:0
DEFINE prc3 prc3:0
DEFINE enc0 enc0:0 enc0:3ms_poss
DEFINE source source:lex source:spvar source:backoff source:digit source:punc source:foreign
DEFINE atbtok atbtok:*open*
###DEFAULTS###
DEFAULT pos:noun gen:m num:s rat:y vox:na asp:na per:na mod:na stt:i cas:u prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
DEFAULT pos:noun_prop gen:m num:s rat:y vox:na asp:na per:na mod:na stt:i cas:u prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
DEFAULT pos:verb gen:m num:s rat:na vox:a asp:p per:3 mod:i stt:na cas:na prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
DEFAULT pos:digit gen:- num:- rat:n vox:na asp:na per:na mod:na stt:i cas:u prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
DEFAULT pos:punc gen:- num:- rat:n vox:na asp:na per:na mod:na stt:na cas:na prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
DEFAULT pos:latin gen:- num:- rat:n vox:na asp:na per:na mod:na stt:na cas:na prc0:0 prc1:0 prc2:0 prc3:0 enc0:0 source:lex
###ORDER###
ORDER pos lex diac bw gloss gen num rat vox asp per mod stt cas prc0 prc1 prc2 prc3 enc0 source atbtok
###TOKENIZATIONS###
TOKENIZATION atbtok
###STEMBACKOFF###
STEMBACKOFF ALL NawPropBackoff
STEMBACKOFF PROP NawPropBackoff
###PREFIXES###
	P0	diac: bw: gloss:
ال	P1	diac:الْ bw:الْ/DET gloss:the prc0:Al_det
###SUFFIXES###
	S0	diac: bw: gloss:
ه	S1	diac:هُ bw:هُ/POSS_PRON_3MS gloss:his enc0:3ms_poss
###STEMS###
كتاب	N0	diac:كِتاب lex:كِتاب_1 bw:كِتاب/NOUN gloss:book pos:noun gen:m num:s rat:y source:lex
NOAN	NawPropBackoff	diac:NOAN lex:NOAN_0 bw:NOAN/NOUN_PROP gloss:NO_ANALYSIS pos:noun_prop gen:m num:s rat:y source:lex
###TABLE AB###
P0 N0
P1 N0
P0 NawPropBackoff
###TABLE BC###
N0 S0
N0 S1
NawPropBackoff S0
###TABLE AC###
P0 S0
P0 S1
P1 S0
`

func writeTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "morphology.db")
	require.NoError(t, os.WriteFile(path, []byte(testDB), 0o644))
	return path
}

func loadTestDB(t *testing.T, flags string) *DB {
	t.Helper()
	db, err := LoadDB(writeTestDB(t), flags)
	require.NoError(t, err)
	return db
}

func TestParseDBFlags(t *testing.T) {
	f, err := ParseDBFlags("a")
	require.NoError(t, err)
	assert.True(t, f.Analysis)
	assert.False(t, f.Generation)
	assert.False(t, f.Reinflection)

	f, err = ParseDBFlags("r")
	require.NoError(t, err)
	assert.True(t, f.Analysis)
	assert.True(t, f.Generation)
	assert.True(t, f.Reinflection)

	f, err = ParseDBFlags("ag")
	require.NoError(t, err)
	assert.True(t, f.Reinflection)

	_, err = ParseDBFlags("x")
	var flagErr *InvalidDatabaseFlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Equal(t, 'x', flagErr.Flag)
}

func TestLoadDBDefines(t *testing.T) {
	db := loadTestDB(t, "a")

	assert.Equal(t, []string{"m", "f", "-"}, db.Defines["gen"])
	// Open-class features carry a nil value set.
	vals, ok := db.Defines["lex"]
	assert.True(t, ok)
	assert.Nil(t, vals)

	_, ok = db.AllFeats()["pos"]
	assert.True(t, ok)
}

func TestLoadDBDefaults(t *testing.T) {
	db := loadTestDB(t, "a")

	noun := db.Defaults["noun"]
	require.NotNil(t, noun)
	assert.Equal(t, "noun", noun["pos"])
	assert.Equal(t, "0", noun["prc0"])
	assert.Equal(t, "u", noun["cas"])
}

func TestLoadDBOrderAndTokenizations(t *testing.T) {
	db := loadTestDB(t, "a")

	assert.Equal(t, "pos", db.Order[0])
	_, ok := db.ComputeFeats["diac"]
	assert.True(t, ok)
	_, ok = db.Tokenizations["atbtok"]
	assert.True(t, ok)
}

func TestLoadDBAffixes(t *testing.T) {
	db := loadTestDB(t, "a")

	empty, ok := db.PrefixHash[""]
	require.True(t, ok)
	assert.Equal(t, "P0", empty[0].Category)

	al, ok := db.PrefixHash["ال"]
	require.True(t, ok)
	assert.Equal(t, "Al_det", al[0].Feats["prc0"])

	assert.Equal(t, 2, db.MaxPrefixSize)
	assert.Equal(t, 1, db.MaxSuffixSize)
}

func TestLoadDBStems(t *testing.T) {
	db := loadTestDB(t, "ag")

	stems, ok := db.StemHash["كتاب"]
	require.True(t, ok)
	// Sense markers are stripped from lemmas.
	assert.Equal(t, "كِتاب", stems[0].Feats["lex"])

	lemmas, ok := db.LemmaHash["كِتاب"]
	require.True(t, ok)
	assert.Equal(t, "N0", lemmas[0]["stemcat"])
}

func TestLoadDBCompat(t *testing.T) {
	db := loadTestDB(t, "a")

	_, ok := db.PrefixStemCompat["P1"]["N0"]
	assert.True(t, ok)
	_, ok = db.StemPrefixCompat["N0"]["P1"]
	assert.True(t, ok)
	_, ok = db.StemSuffixCompat["N0"]["S1"]
	assert.True(t, ok)
	_, ok = db.PrefixSuffixCompat["P1"]["S0"]
	assert.True(t, ok)
	_, ok = db.PrefixSuffixCompat["P1"]["S1"]
	assert.False(t, ok)
}

func TestLoadDBStemBackoffs(t *testing.T) {
	db := loadTestDB(t, "a")
	assert.Equal(t, []string{"NawPropBackoff"}, db.StemBackoffs["ALL"])
	assert.Equal(t, []string{"NawPropBackoff"}, db.StemBackoffs["PROP"])
}

func TestOpenDBCachesParsedDatabases(t *testing.T) {
	path := writeTestDB(t)

	db1, err := OpenDB(path, "a")
	require.NoError(t, err)
	db2, err := OpenDB(path, "a")
	require.NoError(t, err)
	assert.Same(t, db1, db2)

	db3, err := OpenDB(path, "g")
	require.NoError(t, err)
	assert.NotSame(t, db1, db3)
}

func TestLoadDBParseErrors(t *testing.T) {
	dir := t.TempDir()

	bad := "###DEFINES###\nDEFINE gen bogus\n"
	path := filepath.Join(dir, "bad.db")
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := LoadDB(path, "a")
	var parseErr *DatabaseParseError
	assert.ErrorAs(t, err, &parseErr)
}
