package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
	"poorcene/internal/domain"
)

var (
	bucketWords = []byte("words")
	bucketStems = []byte("stems")
	bucketList  = []byte("list")
	bucketMeta  = []byte("meta")
	keyWordLen  = []byte("word_count")
	keyListLen  = []byte("list_count")
)

// BoltStore persists index snapshots in a bbolt database. Words are keyed by
// their big-endian position so a cursor walks them in log order.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketWords, bucketStems, bucketList, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

// Save replaces the stored index with snap in a single transaction.
func (s *BoltStore) Save(snap domain.Snapshot) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		words, err := resetBucket(tx, bucketWords)
		if err != nil {
			return err
		}
		for i, w := range snap.Words {
			if err := words.Put(positionKey(i), []byte(w)); err != nil {
				return err
			}
		}

		stems, err := resetBucket(tx, bucketStems)
		if err != nil {
			return err
		}
		for stem, positions := range snap.Index {
			data, err := json.Marshal(positions)
			if err != nil {
				return err
			}
			if err := stems.Put([]byte(stem), data); err != nil {
				return err
			}
		}

		if err := putSchemaVersion(tx); err != nil {
			return err
		}
		return putCount(tx, keyWordLen, len(snap.Words))
	})
}

// Load reads the stored index. The bool is false when nothing was saved yet.
func (s *BoltStore) Load() (domain.Snapshot, bool, error) {
	var snap domain.Snapshot
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		count, ok, err := getCount(tx, keyWordLen)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := checkSchemaVersion(tx); err != nil {
			return err
		}
		found = true

		words, err := readSequence(tx.Bucket(bucketWords), count)
		if err != nil {
			return err
		}
		snap.Words = words

		snap.Index = make(map[string][]int)
		return tx.Bucket(bucketStems).ForEach(func(k, v []byte) error {
			var positions []int
			if err := json.Unmarshal(v, &positions); err != nil {
				return domain.Errorf(domain.ErrSnapshotFormat, "stem %q: %v", k, err)
			}
			snap.Index[string(k)] = positions
			return nil
		})
	})
	if err != nil {
		return domain.Snapshot{}, false, err
	}
	if found {
		if err := snap.Validate(); err != nil {
			return domain.Snapshot{}, false, err
		}
	}
	return snap, found, nil
}

func (s *BoltStore) SaveList(words []string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := resetBucket(tx, bucketList)
		if err != nil {
			return err
		}
		for i, w := range words {
			if err := b.Put(positionKey(i), []byte(w)); err != nil {
				return err
			}
		}
		if err := putSchemaVersion(tx); err != nil {
			return err
		}
		return putCount(tx, keyListLen, len(words))
	})
}

func (s *BoltStore) LoadList() ([]string, bool, error) {
	var words []string
	found := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		count, ok, err := getCount(tx, keyListLen)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := checkSchemaVersion(tx); err != nil {
			return err
		}
		found = true
		words, err = readSequence(tx.Bucket(bucketList), count)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return words, found, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func resetBucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
		return nil, fmt.Errorf("failed to clear bucket %s: %w", name, err)
	}
	b, err := tx.CreateBucket(name)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %s: %w", name, err)
	}
	return b, nil
}

// readSequence reads count values keyed 0..count-1 and rejects gaps.
func readSequence(b *bbolt.Bucket, count int) ([]string, error) {
	out := make([]string, 0, count)
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if len(k) != 8 || binary.BigEndian.Uint64(k) != uint64(len(out)) {
			return nil, domain.Errorf(domain.ErrSnapshotFormat, "unexpected key %x at position %d", k, len(out))
		}
		out = append(out, string(v))
	}
	if len(out) != count {
		return nil, domain.Errorf(domain.ErrSnapshotFormat, "expected %d entries, found %d", count, len(out))
	}
	return out, nil
}

func positionKey(i int) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, uint64(i))
	return key
}

func putCount(tx *bbolt.Tx, key []byte, n int) error {
	data, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketMeta).Put(key, data)
}

// getCount reports whether key is present. A present value that does not
// decode to a non-negative count is a format error.
func getCount(tx *bbolt.Tx, key []byte) (int, bool, error) {
	data := tx.Bucket(bucketMeta).Get(key)
	if data == nil {
		return 0, false, nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, false, domain.Errorf(domain.ErrSnapshotFormat, "meta %s: %v", key, err)
	}
	if n < 0 {
		return 0, false, domain.Errorf(domain.ErrSnapshotFormat, "meta %s: negative count %d", key, n)
	}
	return n, true, nil
}
