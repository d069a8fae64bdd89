package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"poorcene/internal/domain"
)

const (
	indexFile = "index.json"
	wordsFile = "words.json"
	listFile  = "list.json"
)

// JSONStore keeps a snapshot as plain JSON files in one directory: the stem
// buckets in index.json, the word log in words.json and the baseline list in
// list.json.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// Save writes words.json before index.json so a crash between the two never
// leaves buckets pointing past the stored log.
func (s *JSONStore) Save(snap domain.Snapshot) error {
	words := snap.Words
	if words == nil {
		words = []string{}
	}
	index := snap.Index
	if index == nil {
		index = map[string][]int{}
	}
	if err := saveAtomic(filepath.Join(s.dir, wordsFile), words); err != nil {
		return fmt.Errorf("failed to write %s: %w", wordsFile, err)
	}
	if err := saveAtomic(filepath.Join(s.dir, indexFile), index); err != nil {
		return fmt.Errorf("failed to write %s: %w", indexFile, err)
	}
	return nil
}

// Load reads the snapshot. Both files must exist for a snapshot to count as
// present.
func (s *JSONStore) Load() (domain.Snapshot, bool, error) {
	var snap domain.Snapshot
	foundIndex, err := load(filepath.Join(s.dir, indexFile), &snap.Index)
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	foundWords, err := load(filepath.Join(s.dir, wordsFile), &snap.Words)
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	if !foundIndex || !foundWords {
		return domain.Snapshot{}, false, nil
	}
	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, false, err
	}
	return snap, true, nil
}

func (s *JSONStore) SaveList(words []string) error {
	if words == nil {
		words = []string{}
	}
	return saveAtomic(filepath.Join(s.dir, listFile), words)
}

func (s *JSONStore) LoadList() ([]string, bool, error) {
	var words []string
	found, err := load(filepath.Join(s.dir, listFile), &words)
	if err != nil {
		return nil, false, err
	}
	return words, found, nil
}

func (s *JSONStore) Close() error {
	return nil
}

// saveAtomic marshals v and writes it through a temp file and rename.
func saveAtomic(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// load unmarshals a JSON file into v. A missing file is not an error.
func load(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, domain.Errorf(domain.ErrSnapshotFormat, "%s: %v", filepath.Base(path), err)
	}
	return true, nil
}
