package morphology

import (
	"os"

	"github.com/oarkflow/log"

	"github.com/camel-lab/camelgo/lib"
)

// SnapshotExt is appended to a database path to locate its snapshot.
const SnapshotExt = ".snap"

// WriteSnapshot stores a compressed MessagePack image of the parsed database
// at path.
func (db *DB) WriteSnapshot(path string) error {
	raw, err := lib.Serialize(db)
	if err != nil {
		return err
	}

	compressed, err := lib.Compress(raw)
	if err != nil {
		return err
	}

	return os.WriteFile(path, compressed, 0o644)
}

// LoadSnapshot restores a database from a snapshot written by WriteSnapshot.
func LoadSnapshot(path string) (*DB, error) {
	compressed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw, err := lib.Decompress(compressed)
	if err != nil {
		return nil, err
	}

	return lib.Deserialize[*DB](raw)
}

// OpenDBCached opens the database at path, restoring from a snapshot next to
// it when one is newer than the source file. When the snapshot is missing or
// stale, the source is parsed and a fresh snapshot written.
func OpenDBCached(path, flags string) (*DB, error) {
	f, err := ParseDBFlags(flags)
	if err != nil {
		return nil, err
	}

	snapPath := path + SnapshotExt
	srcInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if snapInfo, err := os.Stat(snapPath); err == nil &&
		snapInfo.ModTime().After(srcInfo.ModTime()) {
		db, err := LoadSnapshot(snapPath)
		if err == nil && db.Flags == f {
			return db, nil
		}
		if err != nil {
			log.Warn().Str("path", snapPath).Err(err).Msg("discarding unreadable db snapshot")
		}
	}

	db, err := LoadDB(path, flags)
	if err != nil {
		return nil, err
	}

	if err := db.WriteSnapshot(snapPath); err != nil {
		log.Warn().Str("path", snapPath).Err(err).Msg("could not write db snapshot")
	}

	return db, nil
}
