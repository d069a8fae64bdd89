package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the schema version recorded in the database, or 0
// when nothing has been written yet.
func (s *BoltStore) SchemaVersion() (int, error) {
	var version int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &version)
	})
	return version, err
}

func putSchemaVersion(tx *bbolt.Tx) error {
	data, err := json.Marshal(CurrentSchemaVersion)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
}

func checkSchemaVersion(tx *bbolt.Tx) error {
	data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
	if data == nil {
		return fmt.Errorf("index has no schema version")
	}
	var version int
	if err := json.Unmarshal(data, &version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version != CurrentSchemaVersion {
		return fmt.Errorf("unsupported schema version %d (expected %d)", version, CurrentSchemaVersion)
	}
	return nil
}
