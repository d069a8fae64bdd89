package port

import "poorcene/internal/domain"

type SnapshotStore interface {
	// Load returns the stored snapshot and whether one existed.
	Load() (domain.Snapshot, bool, error)

	Save(snap domain.Snapshot) error

	LoadList() ([]string, bool, error)

	SaveList(words []string) error

	Close() error
}
