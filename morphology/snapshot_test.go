package morphology

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	db := loadTestDB(t, "a")
	path := writeTestDB(t) + SnapshotExt

	require.NoError(t, db.WriteSnapshot(path))

	restored, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, db.Flags, restored.Flags)
	assert.Equal(t, db.Order, restored.Order)
	assert.Equal(t, db.MaxPrefixSize, restored.MaxPrefixSize)
	assert.Equal(t, len(db.StemHash), len(restored.StemHash))
	assert.Equal(t, db.Defaults["noun"]["cas"], restored.Defaults["noun"]["cas"])
}

func TestOpenDBCachedWritesSnapshot(t *testing.T) {
	path := writeTestDB(t)

	db, err := OpenDBCached(path, "a")
	require.NoError(t, err)
	require.NotNil(t, db)

	_, err = os.Stat(path + SnapshotExt)
	assert.NoError(t, err)
}

func TestOpenDBCachedUsesFreshSnapshot(t *testing.T) {
	path := writeTestDB(t)

	db1, err := OpenDBCached(path, "a")
	require.NoError(t, err)

	// The snapshot is newer than the source, so a second open restores it.
	db2, err := OpenDBCached(path, "a")
	require.NoError(t, err)
	assert.Equal(t, db1.Order, db2.Order)

	analyzer, err := NewAnalyzer(db2, AnalyzerConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, analyzer.Analyze("كتاب"))
}
