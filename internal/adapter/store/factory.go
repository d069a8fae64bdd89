package store

import (
	"fmt"
	"path/filepath"

	"poorcene/internal/port"
)

const (
	BackendBolt = "bolt"
	BackendJSON = "json"
)

// BoltFile is the database file name inside the data directory.
const BoltFile = "index.db"

// Open returns the snapshot store for backend rooted at dataDir.
func Open(backend, dataDir string) (port.SnapshotStore, error) {
	switch backend {
	case BackendBolt, "":
		st, err := NewBoltStore(filepath.Join(dataDir, BoltFile))
		if err != nil {
			return nil, err
		}
		return st, nil
	case BackendJSON:
		st, err := NewJSONStore(dataDir)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}
